// Package model defines the core data structures used throughout pdfproof.
//
// This package contains the following main types:
//   - Rect: An axis-aligned rectangle in PDF user space
//   - Issue: One detected anomaly (punctuation mark, flagged word, indentation outlier)
//   - MarkSet: The closed set of punctuation families that can be flagged
//   - LogEntry: One human-readable line of the run log
//   - DocumentReport: Everything collected while processing one PDF
//   - RunReport: The ordered list of DocumentReports for one invocation
//
// The models live in their own package because the scanners, the annotator
// and the report writers all exchange them.
package model
