package pipeline

import (
	"context"
	"errors"
	"log/slog"

	"github.com/nao1215/pdfproof/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, with each step receiving the accumulated
// report from previous steps.
type Step interface {
	// Do executes the pipeline step.
	// Returns an error if the step fails critically; non-critical errors
	// should be recorded in the report log and return nil.
	Do(ctx context.Context, report *model.DocumentReport) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given options.
func New(opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: make([]Step, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.logger == nil {
		p.logger = slog.Default()
	}
	return p
}

// AddStep appends a step to the pipeline.
func (p *Pipeline) AddStep(step Step) {
	p.steps = append(p.steps, step)
}

// AddSteps appends multiple steps to the pipeline.
func (p *Pipeline) AddSteps(steps ...Step) {
	p.steps = append(p.steps, steps...)
}

// Execute runs all pipeline steps in sequence and stops at the first
// failing step, whose error is recorded in the report.
// Cancellation is checked before each step; a cancelled run marks the
// report as cancelled rather than failed.
func (p *Pipeline) Execute(ctx context.Context, report *model.DocumentReport) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"document", report.Path,
				"reason", err,
			)
			report.Cancelled = true
			return err
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"document", report.Path,
		)

		err := step.Do(ctx, report)
		report.PerformedSteps = append(report.PerformedSteps, step.Name())
		if err == nil {
			continue
		}

		if isCancellation(ctx, err) {
			p.logger.Warn("step cancelled",
				"step", step.Name(),
				"document", report.Path,
			)
			report.Cancelled = true
			return err
		}

		p.logger.Error("step failed",
			"step", step.Name(),
			"document", report.Path,
			"error", err,
		)
		if !report.Failed() {
			report.SetError(err)
		}
		return err
	}
	return nil
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}

// isCancellation reports whether err stems from ctx being done.
func isCancellation(ctx context.Context, err error) bool {
	if ctx.Err() == nil {
		return false
	}
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
