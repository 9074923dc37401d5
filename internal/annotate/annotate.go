// Package annotate writes the highlighted copy of a document.
package annotate

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/nao1215/pdfproof/internal/model"
)

// DefaultSuffix is appended to the source stem to name the highlighted copy.
const DefaultSuffix = "_highlighted"

// Target is a document that can receive highlights and be saved.
// *pdfdoc.Document implements it.
type Target interface {
	PageCount() int
	AddHighlight(page int, rect model.Rect, kind model.Kind, contents string) error
	SaveAs(ctx context.Context, path string) error
}

// Annotator highlights issues on a copy of the source document.
type Annotator struct {
	suffix string
	logger *slog.Logger
}

// Option configures an Annotator.
type Option func(*Annotator)

// WithSuffix sets the suffix of the output file name.
func WithSuffix(suffix string) Option {
	return func(a *Annotator) {
		a.suffix = suffix
	}
}

// WithLogger sets the logger for out-of-range warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Annotator) {
		a.logger = logger
	}
}

// New creates an Annotator.
func New(opts ...Option) *Annotator {
	a := &Annotator{suffix: DefaultSuffix}
	for _, opt := range opts {
		opt(a)
	}
	if a.logger == nil {
		a.logger = slog.Default()
	}
	return a
}

// OutputPath returns where the highlighted copy of source is written:
// the same directory, the stem followed by suffix, the same extension.
func OutputPath(source, suffix string) string {
	dir := filepath.Dir(source)
	ext := filepath.Ext(source)
	stem := strings.TrimSuffix(filepath.Base(source), ext)
	return filepath.Join(dir, stem+suffix+ext)
}

// Annotate adds one highlight per issue to doc and saves it next to
// sourcePath. Issues on pages outside the document are skipped; each one
// produces a warning entry. The copy is written even when no issue was
// highlighted. The caller keeps ownership of doc and closes it.
func (a *Annotator) Annotate(ctx context.Context, doc Target, sourcePath string, issues []model.Issue) (string, []model.LogEntry, error) {
	var warnings []model.LogEntry
	pages := doc.PageCount()

	for _, issue := range issues {
		if issue.Page < 0 || issue.Page >= pages {
			a.logger.Warn("issue page out of range",
				"page", issue.Page,
				"pages", pages,
				"character", issue.Character,
			)
			warnings = append(warnings, model.Entry("Warning: Page %d is out of range.", issue.Page))
			continue
		}
		if err := doc.AddHighlight(issue.Page, issue.Rect, issue.Kind, issue.Character); err != nil {
			return "", warnings, fmt.Errorf("failed to highlight %s: %w", issue, err)
		}
		a.logger.Debug("highlighted issue", "issue", issue.String())
	}

	out := OutputPath(sourcePath, a.suffix)
	if err := doc.SaveAs(ctx, out); err != nil {
		return "", warnings, fmt.Errorf("failed to save highlighted copy: %w", err)
	}
	return out, warnings, nil
}
