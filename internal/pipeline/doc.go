// Package pipeline runs the checks for one document as ordered steps.
//
// A document is processed by the steps punctuation, typo (optional),
// indentation (optional), merge and annotate. Each Step receives the
// DocumentReport and adds its issues and log entries to it. The Runner
// opens each document, builds a fresh Pipeline for it, closes the document
// exactly once, and collects the reports of a run in processing order.
package pipeline
