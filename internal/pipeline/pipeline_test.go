package pipeline

import (
	"context"
	"errors"
	"slices"
	"testing"

	"github.com/nao1215/pdfproof/internal/model"
)

// mockStep is a test helper that implements the Step interface.
type mockStep struct {
	name      string
	doFunc    func(ctx context.Context, report *model.DocumentReport) error
	callCount int
}

// Do implements Step.Do.
func (m *mockStep) Do(ctx context.Context, report *model.DocumentReport) error {
	m.callCount++
	if m.doFunc != nil {
		return m.doFunc(ctx, report)
	}
	return nil
}

// Name implements Step.Name.
func (m *mockStep) Name() string {
	return m.name
}

// TestPipelineNew tests the Pipeline constructor.
func TestPipelineNew(t *testing.T) {
	t.Parallel()

	t.Run("creates pipeline with default settings", func(t *testing.T) {
		t.Parallel()

		p := New()
		if len(p.StepNames()) != 0 {
			t.Errorf("expected no steps, got %v", p.StepNames())
		}
	})

	t.Run("nil logger falls back to default", func(t *testing.T) {
		t.Parallel()

		p := New(WithLogger(nil))
		if p.logger == nil {
			t.Error("expected default logger")
		}
	})
}

// TestPipelineExecute tests step execution.
func TestPipelineExecute(t *testing.T) {
	t.Parallel()

	t.Run("executes all steps in order", func(t *testing.T) {
		t.Parallel()

		var order []string
		record := func(name string) *mockStep {
			return &mockStep{
				name: name,
				doFunc: func(_ context.Context, _ *model.DocumentReport) error {
					order = append(order, name)
					return nil
				},
			}
		}

		p := New()
		p.AddSteps(record("step-1"), record("step-2"))

		report := model.NewDocumentReport("a.pdf")
		if err := p.Execute(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(order, []string{"step-1", "step-2"}) {
			t.Errorf("wrong execution order: %v", order)
		}
		if !slices.Equal(report.PerformedSteps, []string{"step-1", "step-2"}) {
			t.Errorf("unexpected performed steps: %v", report.PerformedSteps)
		}
		if p.StepNames()[1] != "step-2" {
			t.Errorf("unexpected step names: %v", p.StepNames())
		}
	})

	t.Run("stops on first error by default", func(t *testing.T) {
		t.Parallel()

		expectedErr := errors.New("step failed")
		second := &mockStep{name: "should-not-run"}

		p := New()
		p.AddStep(&mockStep{
			name: "failing-step",
			doFunc: func(_ context.Context, _ *model.DocumentReport) error {
				return expectedErr
			},
		})
		p.AddStep(second)

		report := model.NewDocumentReport("a.pdf")
		err := p.Execute(context.Background(), report)
		if !errors.Is(err, expectedErr) {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if second.callCount != 0 {
			t.Error("second step should not have been called")
		}
		if !errors.Is(report.Error, expectedErr) || report.ErrorMessage != "step failed" {
			t.Errorf("expected error recorded in report, got %v", report.Error)
		}
	})

	t.Run("cancelled context marks report cancelled", func(t *testing.T) {
		t.Parallel()

		step := &mockStep{name: "never"}
		p := New()
		p.AddStep(step)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		report := model.NewDocumentReport("a.pdf")
		err := p.Execute(ctx, report)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
		if !report.Cancelled || report.Failed() {
			t.Errorf("expected cancelled and not failed, got cancelled=%v failed=%v", report.Cancelled, report.Failed())
		}
		if step.callCount != 0 {
			t.Error("step should not run after cancellation")
		}
	})

	t.Run("cancellation inside a step is not a failure", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		p := New()
		p.AddStep(&mockStep{
			name: "cancelling",
			doFunc: func(ctx context.Context, _ *model.DocumentReport) error {
				cancel()
				return ctx.Err()
			},
		})

		report := model.NewDocumentReport("a.pdf")
		_ = p.Execute(ctx, report)
		if !report.Cancelled || report.Failed() {
			t.Errorf("expected cancelled and not failed, got cancelled=%v failed=%v", report.Cancelled, report.Failed())
		}
	})
}
