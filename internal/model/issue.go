package model

import "fmt"

// Rect is an axis-aligned rectangle in PDF user space.
// Coordinates are in points with the origin at the bottom-left corner of
// the page and Y increasing upwards, which is the space highlight
// annotations are expressed in.
type Rect struct {
	X0 float64 `json:"x0"`
	Y0 float64 `json:"y0"`
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
}

// NewRect returns a Rect with its corners ordered so that X0 <= X1 and Y0 <= Y1.
func NewRect(x0, y0, x1, y1 float64) Rect {
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return Rect{X0: x0, Y0: y0, X1: x1, Y1: y1}
}

// Width returns the horizontal extent of the rectangle.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the vertical extent of the rectangle.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// String returns the rectangle as "(x0, y0, x1, y1)".
func (r Rect) String() string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f, %.2f)", r.X0, r.Y0, r.X1, r.Y1)
}

// Kind classifies where an Issue came from.
type Kind int

const (
	// KindPunctuation marks a punctuation character from the wrong MarkSet.
	KindPunctuation Kind = iota

	// KindTypo marks a word flagged by the proofreading service.
	KindTypo

	// KindIndentation marks a line whose first word starts right of the
	// expected left indentation.
	KindIndentation
)

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	switch k {
	case KindPunctuation:
		return "punctuation"
	case KindTypo:
		return "typo"
	case KindIndentation:
		return "indentation"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so kinds serialize by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Issue is one detected anomaly on one page.
type Issue struct {
	// Page is the zero-based page index the issue was found on.
	Page int `json:"page"`

	// Character is the offending literal: a punctuation mark, a flagged
	// word, or the first word of an over-indented line.
	Character string `json:"character"`

	// Rect is the on-page bounding box of the offending literal.
	Rect Rect `json:"rect"`

	// Kind tells which scanner produced the issue.
	Kind Kind `json:"kind"`
}

// String returns the console form used while annotating.
func (i Issue) String() string {
	return fmt.Sprintf("Page: %d, Character: %s, Rect: %s", i.Page, i.Character, i.Rect)
}

// CountByKind returns how many issues of each kind are in issues.
func CountByKind(issues []Issue) map[Kind]int {
	counts := make(map[Kind]int, 3)
	for _, issue := range issues {
		counts[issue.Kind]++
	}
	return counts
}
