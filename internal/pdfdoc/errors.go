package pdfdoc

import "errors"

var (
	// ErrOpen is returned when a file cannot be parsed as a PDF.
	ErrOpen = errors.New("cannot open PDF")

	// ErrClosed is returned when a closed Document is used for writing.
	ErrClosed = errors.New("document is closed")

	// ErrPageOutOfRange is returned by AddHighlight for a page index outside
	// [0, PageCount).
	ErrPageOutOfRange = errors.New("page out of range")

	// ErrSameFile is returned when SaveAs is asked to overwrite the source.
	ErrSameFile = errors.New("output path is the source document")
)
