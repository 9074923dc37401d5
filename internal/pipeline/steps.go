package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/pdfproof/internal/annotate"
	"github.com/nao1215/pdfproof/internal/model"
	"github.com/nao1215/pdfproof/internal/scan"
)

// Step names, as recorded in DocumentReport.PerformedSteps.
const (
	StepPunctuation = "punctuation"
	StepTypo        = "typo"
	StepIndentation = "indentation"
	StepMerge       = "merge"
	StepAnnotate    = "annotate"
)

// PunctuationStep flags every mark of the active MarkSet.
type PunctuationStep struct {
	doc   scan.TextSource
	marks model.MarkSet
}

// NewPunctuationStep creates a PunctuationStep for doc.
func NewPunctuationStep(doc scan.TextSource, marks model.MarkSet) *PunctuationStep {
	return &PunctuationStep{doc: doc, marks: marks}
}

// Name implements Step.
func (s *PunctuationStep) Name() string {
	return StepPunctuation
}

// Do implements Step.
func (s *PunctuationStep) Do(_ context.Context, report *model.DocumentReport) error {
	issues, entries := scan.Punctuation(s.doc, s.marks)
	report.PunctuationIssues = issues
	report.AddLog(entries...)
	return nil
}

// TypoStep checks every sentence with the proofreading service.
type TypoStep struct {
	doc     scan.TextSource
	scanner *scan.TypoScanner
}

// NewTypoStep creates a TypoStep for doc.
func NewTypoStep(doc scan.TextSource, scanner *scan.TypoScanner) *TypoStep {
	return &TypoStep{doc: doc, scanner: scanner}
}

// Name implements Step.
func (s *TypoStep) Name() string {
	return StepTypo
}

// Do implements Step. Whatever was gathered before a cancellation is kept
// in the report.
func (s *TypoStep) Do(ctx context.Context, report *model.DocumentReport) error {
	issues, entries, err := s.scanner.Scan(ctx, s.doc)
	report.TypoIssues = issues
	report.AddLog(entries...)
	return err
}

// IndentationStep flags lines that start right of the threshold.
type IndentationStep struct {
	doc       scan.WordSource
	threshold float64
}

// NewIndentationStep creates an IndentationStep for doc.
func NewIndentationStep(doc scan.WordSource, threshold float64) *IndentationStep {
	return &IndentationStep{doc: doc, threshold: threshold}
}

// Name implements Step.
func (s *IndentationStep) Name() string {
	return StepIndentation
}

// Do implements Step.
func (s *IndentationStep) Do(_ context.Context, report *model.DocumentReport) error {
	issues, entries := scan.Indentation(s.doc, s.threshold)
	report.IndentationIssues = issues
	report.AddLog(entries...)
	return nil
}

// MergeStep combines the issue lists into report.Issues.
type MergeStep struct{}

// NewMergeStep creates a MergeStep.
func NewMergeStep() *MergeStep {
	return &MergeStep{}
}

// Name implements Step.
func (s *MergeStep) Name() string {
	return StepMerge
}

// Do implements Step.
func (s *MergeStep) Do(_ context.Context, report *model.DocumentReport) error {
	report.Issues = scan.Merge(report.PunctuationIssues, report.TypoIssues, report.IndentationIssues)
	return nil
}

// AnnotateStep writes the highlighted copy of the document.
type AnnotateStep struct {
	doc       annotate.Target
	annotator *annotate.Annotator
	before    func(*model.DocumentReport)
	logger    *slog.Logger
}

// AnnotateStepOption configures an AnnotateStep.
type AnnotateStepOption func(*AnnotateStep)

// WithBeforeAnnotate registers a callback run with the merged issues
// right before highlights are added.
func WithBeforeAnnotate(fn func(*model.DocumentReport)) AnnotateStepOption {
	return func(s *AnnotateStep) {
		s.before = fn
	}
}

// WithAnnotateLogger sets the logger.
func WithAnnotateLogger(logger *slog.Logger) AnnotateStepOption {
	return func(s *AnnotateStep) {
		s.logger = logger
	}
}

// NewAnnotateStep creates an AnnotateStep for doc.
func NewAnnotateStep(doc annotate.Target, annotator *annotate.Annotator, opts ...AnnotateStepOption) *AnnotateStep {
	s := &AnnotateStep{doc: doc, annotator: annotator}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Name implements Step.
func (s *AnnotateStep) Name() string {
	return StepAnnotate
}

// Do implements Step.
func (s *AnnotateStep) Do(ctx context.Context, report *model.DocumentReport) error {
	if s.before != nil {
		s.before(report)
	}

	out, warnings, err := s.annotator.Annotate(ctx, s.doc, report.Path, report.Issues)
	report.AddLog(warnings...)
	if err != nil {
		return err
	}
	report.HighlightedPath = out
	s.logger.Info("highlighted copy written",
		"document", report.Path,
		"output", out,
		"issues", len(report.Issues),
	)
	return nil
}
