package model

// Word is a run of non-space characters on one text line of a page,
// together with its bounding box.
type Word struct {
	// Text is the NFC-normalised word.
	Text string

	// Rect is the union of the word's glyph boxes.
	Rect Rect

	// Line is the zero-based index of the text line the word belongs to,
	// counted in content order.
	Line int
}
