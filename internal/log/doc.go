// Package log provides the slog setup of pdfproof.
//
// SecureHandler wraps any slog.Handler and masks credentials before a record
// reaches the output: attributes with sensitive key names, values that look
// like tokens, and API keys embedded in request URLs. The proofreading
// client logs its request URL at debug level, so the key must never appear
// verbatim even with --verbose.
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
package log
