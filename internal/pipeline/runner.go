package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/pdfproof/internal/annotate"
	"github.com/nao1215/pdfproof/internal/model"
	"github.com/nao1215/pdfproof/internal/scan"
)

// Document is an opened PDF as used by the steps.
// *pdfdoc.Document implements it.
type Document interface {
	scan.TextSource
	scan.WordSource
	annotate.Target

	Digest() string
	Close() error
}

// Opener opens the document at path.
type Opener func(path string) (Document, error)

// Observer is notified while documents are processed.
// *report.SimpleWriter implements it.
type Observer interface {
	DocumentStarted(doc *model.DocumentReport)
	IssuesFound(doc *model.DocumentReport)
	DocumentFinished(doc *model.DocumentReport)
}

// Runner processes documents one after another.
type Runner struct {
	open      Opener
	annotator *annotate.Annotator
	marks     model.MarkSet
	typo      *scan.TypoScanner
	indent    bool
	threshold float64
	observer  Observer
	logger    *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithMarkSet sets the punctuation family treated as wrong.
func WithMarkSet(marks model.MarkSet) RunnerOption {
	return func(r *Runner) {
		r.marks = marks
	}
}

// WithTypoScanner enables the typo step. Without it no sentence is sent
// to the proofreading service.
func WithTypoScanner(s *scan.TypoScanner) RunnerOption {
	return func(r *Runner) {
		r.typo = s
	}
}

// WithIndentation enables the indentation step with the given threshold
// in points.
func WithIndentation(threshold float64) RunnerOption {
	return func(r *Runner) {
		r.indent = true
		r.threshold = threshold
	}
}

// WithObserver sets the progress observer.
func WithObserver(o Observer) RunnerOption {
	return func(r *Runner) {
		r.observer = o
	}
}

// WithRunnerLogger sets the logger for the runner and its pipelines.
func WithRunnerLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner. The default MarkSet is MarkSetJapanese.
func NewRunner(open Opener, annotator *annotate.Annotator, opts ...RunnerOption) *Runner {
	r := &Runner{
		open:      open,
		annotator: annotator,
		marks:     model.MarkSetJapanese,
		threshold: scan.DefaultIndentThreshold,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	if r.observer == nil {
		r.observer = nopObserver{}
	}
	return r
}

// Run processes paths in order and returns the run report. Documents not
// yet started when ctx is cancelled are left out.
func (r *Runner) Run(ctx context.Context, paths []string) *model.RunReport {
	run := model.NewRunReport()
	for _, path := range paths {
		if ctx.Err() != nil {
			r.logger.Warn("run cancelled", "remaining", len(paths)-len(run.Documents))
			break
		}
		run.Add(r.Process(ctx, path))
	}
	return run
}

// Process runs the pipeline for one document. A document that cannot be
// opened is reported as failed; its error is also added to the log.
func (r *Runner) Process(ctx context.Context, path string) *model.DocumentReport {
	report := model.NewDocumentReport(path)
	r.observer.DocumentStarted(report)
	defer r.observer.DocumentFinished(report)

	doc, err := r.open(path)
	if err != nil {
		r.logger.Error("failed to open document", "document", path, "error", err)
		report.SetError(err)
		report.AddLog(model.Entry("Failed to open %s: %v", path, err))
		return report
	}
	defer func() {
		if err := doc.Close(); err != nil {
			r.logger.Warn("failed to close document", "document", path, "error", err)
		}
	}()

	report.Digest = doc.Digest()
	report.PageCount = doc.PageCount()

	p := r.pipeline(doc)
	r.logger.Debug("processing document",
		"document", path,
		"pages", report.PageCount,
		"steps", p.StepNames(),
	)
	_ = p.Execute(ctx, report) //nolint:errcheck // recorded in the report
	return report
}

// pipeline builds the steps for one document.
func (r *Runner) pipeline(doc Document) *Pipeline {
	p := New(WithLogger(r.logger))
	p.AddStep(NewPunctuationStep(doc, r.marks))
	if r.typo != nil {
		p.AddStep(NewTypoStep(doc, r.typo))
	}
	if r.indent {
		p.AddStep(NewIndentationStep(doc, r.threshold))
	}
	p.AddSteps(
		NewMergeStep(),
		NewAnnotateStep(doc, r.annotator,
			WithBeforeAnnotate(r.observer.IssuesFound),
			WithAnnotateLogger(r.logger),
		),
	)
	return p
}

type nopObserver struct{}

func (nopObserver) DocumentStarted(*model.DocumentReport)  {}
func (nopObserver) IssuesFound(*model.DocumentReport)      {}
func (nopObserver) DocumentFinished(*model.DocumentReport) {}
