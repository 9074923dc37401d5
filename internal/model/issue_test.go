package model

import "testing"

func TestNewRect(t *testing.T) {
	t.Parallel()

	r := NewRect(10, 20, 5, 2)
	if r.X0 != 5 || r.X1 != 10 || r.Y0 != 2 || r.Y1 != 20 {
		t.Errorf("expected ordered corners, got %s", r)
	}
	if r.Width() != 5 {
		t.Errorf("expected width 5, got %v", r.Width())
	}
	if r.Height() != 18 {
		t.Errorf("expected height 18, got %v", r.Height())
	}
}

func TestRectUnion(t *testing.T) {
	t.Parallel()

	a := Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	b := Rect{X0: 5, Y0: -5, X1: 20, Y1: 8}
	got := a.Union(b)
	want := Rect{X0: 0, Y0: -5, X1: 20, Y1: 10}
	if got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind Kind
		want string
	}{
		{KindPunctuation, "punctuation"},
		{KindTypo, "typo"},
		{KindIndentation, "indentation"},
		{Kind(99), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestIssueString(t *testing.T) {
	t.Parallel()

	issue := Issue{Page: 2, Character: ",", Rect: Rect{X0: 1, Y0: 2, X1: 3, Y1: 4}}
	want := "Page: 2, Character: ,, Rect: (1.00, 2.00, 3.00, 4.00)"
	if got := issue.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestCountByKind(t *testing.T) {
	t.Parallel()

	issues := []Issue{
		{Kind: KindPunctuation},
		{Kind: KindTypo},
		{Kind: KindPunctuation},
	}
	counts := CountByKind(issues)
	if counts[KindPunctuation] != 2 {
		t.Errorf("expected 2 punctuation issues, got %d", counts[KindPunctuation])
	}
	if counts[KindTypo] != 1 {
		t.Errorf("expected 1 typo issue, got %d", counts[KindTypo])
	}
	if counts[KindIndentation] != 0 {
		t.Errorf("expected 0 indentation issues, got %d", counts[KindIndentation])
	}
}
