package model

import (
	"path/filepath"
	"time"
)

// DocumentReport accumulates everything produced while processing one PDF.
// It is created when the document is picked up, filled by the pipeline
// steps, consumed by the report writers and then discarded.
type DocumentReport struct {
	// Path is the source PDF as given on the command line or discovered.
	Path string `json:"path"`

	// Digest is the hex SHA3-256 of the source file bytes.
	Digest string `json:"digest,omitempty"`

	// PageCount is the number of pages of the source document.
	PageCount int `json:"page_count"`

	// DateScanned is when processing of the document started.
	DateScanned time.Time `json:"date_scanned"`

	// PunctuationIssues are the issues produced by the punctuation scan.
	PunctuationIssues []Issue `json:"-"`

	// TypoIssues are the issues produced by the typo scan.
	TypoIssues []Issue `json:"-"`

	// IndentationIssues are the issues produced by the indentation scan.
	IndentationIssues []Issue `json:"-"`

	// Issues is the merged list handed to the annotator.
	Issues []Issue `json:"issues"`

	// Log holds the run log entries for this document in production order.
	Log []LogEntry `json:"log"`

	// HighlightedPath is the written copy with highlight annotations.
	// Empty if the document could not be annotated.
	HighlightedPath string `json:"highlighted_path,omitempty"`

	// PerformedSteps lists the pipeline steps that ran, in order.
	PerformedSteps []string `json:"performed_steps,omitempty"`

	// Cancelled is true if the run context was cancelled mid-document.
	Cancelled bool `json:"cancelled,omitempty"`

	// Error is the fatal error for this document, if any.
	Error error `json:"-"`

	// ErrorMessage is Error rendered for serialization.
	ErrorMessage string `json:"error,omitempty"`
}

// NewDocumentReport creates an empty report for the PDF at path.
func NewDocumentReport(path string) *DocumentReport {
	return &DocumentReport{
		Path:        path,
		DateScanned: time.Now(),
		Issues:      make([]Issue, 0),
		Log:         make([]LogEntry, 0),
	}
}

// Name returns the base name of the source file.
func (r *DocumentReport) Name() string {
	return filepath.Base(r.Path)
}

// AddLog appends entries to the document log.
func (r *DocumentReport) AddLog(entries ...LogEntry) {
	r.Log = append(r.Log, entries...)
}

// SetError records a fatal error for the document.
func (r *DocumentReport) SetError(err error) {
	r.Error = err
	if err != nil {
		r.ErrorMessage = err.Error()
	}
}

// Failed reports whether the document hit a fatal error.
func (r *DocumentReport) Failed() bool {
	return r.Error != nil
}

// RunReport is the ordered list of documents processed by one invocation.
type RunReport struct {
	// Started is when the run began. The summary title uses it.
	Started time.Time `json:"started"`

	// Documents are in processing order.
	Documents []*DocumentReport `json:"documents"`
}

// NewRunReport creates an empty run report starting now.
func NewRunReport() *RunReport {
	return &RunReport{
		Started:   time.Now(),
		Documents: make([]*DocumentReport, 0),
	}
}

// Add appends a document report.
func (r *RunReport) Add(doc *DocumentReport) {
	r.Documents = append(r.Documents, doc)
}

// Log returns the log entries of every document concatenated in
// processing order.
func (r *RunReport) Log() []LogEntry {
	var out []LogEntry
	for _, d := range r.Documents {
		out = append(out, d.Log...)
	}
	return out
}

// TotalIssues returns the number of merged issues over all documents.
func (r *RunReport) TotalIssues() int {
	total := 0
	for _, d := range r.Documents {
		total += len(d.Issues)
	}
	return total
}

// AllFailed reports whether the run had documents and every one failed.
func (r *RunReport) AllFailed() bool {
	if len(r.Documents) == 0 {
		return false
	}
	for _, d := range r.Documents {
		if !d.Failed() {
			return false
		}
	}
	return true
}
