package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and the loaders, and
// are checked with errors.Is().
var (
	// ErrNoTarget is returned when no PDF was given or picked.
	ErrNoTarget = errors.New("no target specified: provide a PDF file or directory")

	// ErrInvalidMarkSet is returned when the mark set is not "latin" or "japanese".
	ErrInvalidMarkSet = errors.New("invalid mark set: must be \"latin\" or \"japanese\"")

	// ErrInvalidTimeout is returned when the proofreading timeout is not positive.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidConcurrency is returned when fewer than one request may be in flight.
	ErrInvalidConcurrency = errors.New("invalid concurrency: must be at least 1")

	// ErrInvalidIndentThreshold is returned when the indentation threshold is negative.
	ErrInvalidIndentThreshold = errors.New("invalid indentation threshold: must be non-negative")

	// ErrEmptySuffix is returned when the highlighted copy would overwrite the source.
	ErrEmptySuffix = errors.New("invalid suffix: must not be empty")

	// ErrEmptySummaryPath is returned when no summary file name is set.
	ErrEmptySummaryPath = errors.New("invalid summary path: must not be empty")

	// ErrMissingEndpoint is returned when typo checking is on without an endpoint.
	ErrMissingEndpoint = errors.New("missing proofreading endpoint")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
