package scan

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/nao1215/pdfproof/internal/model"
	"github.com/nao1215/pdfproof/internal/proofread"
)

// fakeDoc is an in-memory document. Search reports the byte offset of a
// match as X0 and the page index as Y0.
type fakeDoc struct {
	pages []string
	words [][]model.Word
}

func (d *fakeDoc) PageCount() int {
	if d.words != nil {
		return len(d.words)
	}
	return len(d.pages)
}

func (d *fakeDoc) PageText(page int) string {
	if page < 0 || page >= len(d.pages) {
		return ""
	}
	return d.pages[page]
}

func (d *fakeDoc) Search(page int, literal string) []model.Rect {
	if page < 0 || page >= len(d.pages) || literal == "" {
		return nil
	}
	var (
		rects []model.Rect
		text  = d.pages[page]
		off   int
	)
	for {
		i := strings.Index(text[off:], literal)
		if i < 0 {
			return rects
		}
		x := float64(off + i)
		rects = append(rects, model.Rect{X0: x, Y0: float64(page), X1: x + float64(len(literal)), Y1: float64(page) + 1})
		off += i + len(literal)
	}
}

func (d *fakeDoc) Words(page int) []model.Word {
	if page < 0 || page >= len(d.words) {
		return nil
	}
	return d.words[page]
}

// lineSegmenter treats every non-empty line as a sentence.
type lineSegmenter struct{}

func (lineSegmenter) Split(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

// fakeChecker answers from a table keyed by sentence. Unknown sentences
// get a result without alerts.
type fakeChecker struct {
	answers map[string]fakeAnswer
	delay   func(sentence string) time.Duration

	mu    sync.Mutex
	calls []string
}

type fakeAnswer struct {
	words []string
	err   error
}

func (c *fakeChecker) Check(ctx context.Context, sentence string) (*proofread.Result, error) {
	c.mu.Lock()
	c.calls = append(c.calls, sentence)
	c.mu.Unlock()

	if c.delay != nil {
		select {
		case <-time.After(c.delay(sentence)):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	answer := c.answers[sentence]
	if answer.err != nil {
		return nil, answer.err
	}
	result := &proofread.Result{Status: 0, Message: "ok"}
	for _, w := range answer.words {
		result.Status = 1
		result.Alerts = append(result.Alerts, proofread.Alert{Word: w})
	}
	return result, nil
}

func (c *fakeChecker) Calls() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.calls...)
}
