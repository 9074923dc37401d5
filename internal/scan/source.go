package scan

import (
	"context"

	"github.com/nao1215/pdfproof/internal/model"
	"github.com/nao1215/pdfproof/internal/proofread"
)

// TextSource is a document as seen by the punctuation and typo scanners.
// Pages are zero-based.
type TextSource interface {
	PageCount() int
	PageText(page int) string
	Search(page int, literal string) []model.Rect
}

// WordSource is a document as seen by the indentation scanner.
type WordSource interface {
	PageCount() int
	Words(page int) []model.Word
}

// Checker submits one sentence to the proofreading service.
// *proofread.Client implements it.
type Checker interface {
	Check(ctx context.Context, sentence string) (*proofread.Result, error)
}

// Segmenter splits page text into sentences.
// *segment.Segmenter implements it.
type Segmenter interface {
	Split(text string) []string
}
