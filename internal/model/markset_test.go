package model

import (
	"errors"
	"slices"
	"testing"
)

// TestMarkSetMarks verifies the characters each mark set flags.
func TestMarkSetMarks(t *testing.T) {
	t.Parallel()

	t.Run("latin flags comma then full stop", func(t *testing.T) {
		t.Parallel()
		got := MarkSetLatin.Marks()
		want := []string{",", "."}
		if !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("japanese flags touten then kuten", func(t *testing.T) {
		t.Parallel()
		got := MarkSetJapanese.Marks()
		want := []string{"、", "。"}
		if !slices.Equal(got, want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		t.Parallel()
		marks := MarkSetLatin.Marks()
		marks[0] = "x"
		if MarkSetLatin.Marks()[0] != "," {
			t.Error("modifying the returned slice changed the mark set")
		}
	})

	t.Run("invalid mark set has no marks", func(t *testing.T) {
		t.Parallel()
		if marks := MarkSet(42).Marks(); marks != nil {
			t.Errorf("expected nil, got %v", marks)
		}
	})
}

// TestParseMarkSet tests parsing of mark set names.
func TestParseMarkSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  MarkSet
	}{
		{"latin", MarkSetLatin},
		{"LATIN", MarkSetLatin},
		{"en", MarkSetLatin},
		{"japanese", MarkSetJapanese},
		{" Japanese ", MarkSetJapanese},
		{"ja", MarkSetJapanese},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, err := ParseMarkSet(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}

	t.Run("unknown name returns ErrUnknownMarkSet", func(t *testing.T) {
		t.Parallel()
		_, err := ParseMarkSet("french")
		if !errors.Is(err, ErrUnknownMarkSet) {
			t.Errorf("expected ErrUnknownMarkSet, got %v", err)
		}
	})
}

// TestMarkSetText tests the text marshaling round trip used by config files.
func TestMarkSetText(t *testing.T) {
	t.Parallel()

	t.Run("unmarshal sets value", func(t *testing.T) {
		t.Parallel()
		var m MarkSet
		if err := m.UnmarshalText([]byte("japanese")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m != MarkSetJapanese {
			t.Errorf("expected japanese, got %v", m)
		}
	})

	t.Run("marshal invalid fails", func(t *testing.T) {
		t.Parallel()
		if _, err := MarkSet(7).MarshalText(); !errors.Is(err, ErrUnknownMarkSet) {
			t.Errorf("expected ErrUnknownMarkSet, got %v", err)
		}
	})

	t.Run("string of invalid value", func(t *testing.T) {
		t.Parallel()
		if got := MarkSet(7).String(); got != "MarkSet(7)" {
			t.Errorf("expected MarkSet(7), got %q", got)
		}
	})
}
