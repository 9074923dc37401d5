package annotate

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/nao1215/pdfproof/internal/model"
)

type fakeTarget struct {
	pages      int
	highlights []model.Issue
	savedTo    []string
	saveErr    error
}

func (f *fakeTarget) PageCount() int { return f.pages }

func (f *fakeTarget) AddHighlight(page int, rect model.Rect, kind model.Kind, contents string) error {
	f.highlights = append(f.highlights, model.Issue{Page: page, Rect: rect, Kind: kind, Character: contents})
	return nil
}

func (f *fakeTarget) SaveAs(_ context.Context, path string) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.savedTo = append(f.savedTo, path)
	return nil
}

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		source string
		suffix string
		want   string
	}{
		{"docs/thesis.pdf", DefaultSuffix, filepath.Join("docs", "thesis_highlighted.pdf")},
		{"thesis.PDF", "_checked", "thesis_checked.PDF"},
		{"/tmp/a.b.pdf", DefaultSuffix, filepath.Join("/tmp", "a.b_highlighted.pdf")},
	}
	for _, tt := range tests {
		if got := OutputPath(tt.source, tt.suffix); got != tt.want {
			t.Errorf("OutputPath(%q, %q) = %q, want %q", tt.source, tt.suffix, got, tt.want)
		}
	}
}

func TestAnnotate(t *testing.T) {
	t.Parallel()

	t.Run("highlights every in-range issue", func(t *testing.T) {
		t.Parallel()
		target := &fakeTarget{pages: 2}
		issues := []model.Issue{
			{Page: 0, Character: ",", Kind: model.KindPunctuation},
			{Page: 1, Character: "teh", Kind: model.KindTypo},
		}

		out, warnings, err := New().Annotate(context.Background(), target, "docs/a.pdf", issues)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out != filepath.Join("docs", "a_highlighted.pdf") {
			t.Errorf("unexpected output path %q", out)
		}
		if len(warnings) != 0 {
			t.Errorf("expected no warnings, got %v", warnings)
		}
		if len(target.highlights) != 2 {
			t.Errorf("expected 2 highlights, got %d", len(target.highlights))
		}
	})

	t.Run("out of range pages are skipped with a warning", func(t *testing.T) {
		t.Parallel()
		target := &fakeTarget{pages: 1}
		issues := []model.Issue{
			{Page: -1, Character: ","},
			{Page: 0, Character: ","},
			{Page: 1, Character: "."},
		}

		_, warnings, err := New().Annotate(context.Background(), target, "a.pdf", issues)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(target.highlights) != 1 {
			t.Errorf("expected 1 highlight, got %d", len(target.highlights))
		}
		want := []string{"Warning: Page -1 is out of range.", "Warning: Page 1 is out of range."}
		got := model.Messages(warnings)
		if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
			t.Errorf("expected %q, got %q", want, got)
		}
	})

	t.Run("no issues still saves a copy", func(t *testing.T) {
		t.Parallel()
		target := &fakeTarget{pages: 0}
		out, _, err := New(WithSuffix("_x")).Annotate(context.Background(), target, "empty.pdf", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(target.savedTo) != 1 || target.savedTo[0] != out || out != "empty_x.pdf" {
			t.Errorf("expected one save to empty_x.pdf, got %v", target.savedTo)
		}
	})

	t.Run("save failure is returned", func(t *testing.T) {
		t.Parallel()
		saveErr := errors.New("disk full")
		target := &fakeTarget{pages: 1, saveErr: saveErr}
		_, _, err := New().Annotate(context.Background(), target, "a.pdf", nil)
		if !errors.Is(err, saveErr) {
			t.Errorf("expected save error, got %v", err)
		}
	})
}
