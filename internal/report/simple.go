package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/pdfproof/internal/model"
)

// SimpleWriter prints human-readable progress while documents are
// processed and a short summary when the run ends.
type SimpleWriter struct {
	baseWriter

	// verbose prints every issue before it is highlighted.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose prints each issue as "Page: X, Character: Y, Rect: Z".
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// DocumentStarted prints the file being processed.
func (w *SimpleWriter) DocumentStarted(doc *model.DocumentReport) {
	fmt.Fprintf(w.output, "Processing File: %s\n", doc.Path)
}

// IssuesFound prints the issue count, and each issue when verbose, right
// before the document is annotated.
func (w *SimpleWriter) IssuesFound(doc *model.DocumentReport) {
	fmt.Fprintf(w.output, "Found %d issues.\n", len(doc.Issues))
	if !w.verbose {
		return
	}
	for _, issue := range doc.Issues {
		fmt.Fprintln(w.output, issue.String())
	}
}

// DocumentFinished prints where the highlighted copy went, or why the
// document failed.
func (w *SimpleWriter) DocumentFinished(doc *model.DocumentReport) {
	switch {
	case doc.Failed():
		fmt.Fprintf(w.output, "Failed to process %s: %s\n", doc.Path, doc.ErrorMessage)
	case doc.Cancelled:
		fmt.Fprintf(w.output, "Cancelled while processing %s\n", doc.Path)
	case doc.HighlightedPath != "":
		fmt.Fprintf(w.output, "Highlighted PDF saved as: %s\n", doc.HighlightedPath)
	}
}

// Write prints the closing summary of the run.
func (w *SimpleWriter) Write(run *model.RunReport) (int, error) {
	var sb strings.Builder

	failed := 0
	for _, doc := range run.Documents {
		if doc.Failed() {
			failed++
		}
	}

	sb.WriteString(strings.Repeat("-", 60))
	sb.WriteString("\n")
	fmt.Fprintf(&sb, "Documents: %d (failed: %d)\n", len(run.Documents), failed)
	fmt.Fprintf(&sb, "Issues:    %d\n", run.TotalIssues())
	for _, doc := range run.Documents {
		counts := model.CountByKind(doc.Issues)
		fmt.Fprintf(&sb, "  %s: punctuation %d, typo %d, indentation %d\n",
			doc.Name(),
			counts[model.KindPunctuation],
			counts[model.KindTypo],
			counts[model.KindIndentation],
		)
	}

	return w.output.Write([]byte(sb.String()))
}
