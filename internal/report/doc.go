// Package report renders the results of a run.
//
// This package contains writers for different outputs:
//   - PDFWriter: the summary PDF holding the run log
//   - SimpleWriter: per-document progress lines and a closing summary for the terminal
//   - MarkdownWriter: a Markdown summary with issue counts per document
//   - JSONWriter: the run report as JSON for tool integration
//
// The text writers implement the Writer interface and can be combined
// with MultiWriter. The report data itself lives in the model package.
package report
