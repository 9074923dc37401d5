package pdfdoc

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/nao1215/pdfproof/internal/model"
)

// Layout thresholds, relative to the font size of the glyphs involved.
const (
	// lineBreakFactor is how far the baseline must move for a new line.
	lineBreakFactor = 0.5

	// spaceGapFactor is the horizontal gap that counts as a word break.
	spaceGapFactor = 0.3

	// descentFactor and ascentFactor size a glyph box around its baseline.
	descentFactor = 0.25
	ascentFactor  = 0.85
)

// noGlyph marks a rune of the assembled text that was inserted by the
// layout pass (a space or a line break) and has no glyph behind it.
const noGlyph = -1

// glyphBox is the on-page box of one glyph and the line it sits on.
type glyphBox struct {
	rect model.Rect
	line int
}

// pageIndex is the searchable text of one page.
// text and owner have the same length; owner[i] is the glyph that
// produced text[i], or noGlyph.
type pageIndex struct {
	text   []rune
	owner  []int
	glyphs []glyphBox
	lines  int
}

// newPageIndex assembles the glyphs of a page in content order.
func newPageIndex(texts []pdf.Text) *pageIndex {
	idx := &pageIndex{}
	var prev *pdf.Text
	line := 0

	for i := range texts {
		t := &texts[i]
		// Codes without a Unicode mapping decode to U+FFFD.
		s := norm.NFC.String(strings.ReplaceAll(t.S, string(utf8.RuneError), ""))
		if s == "" {
			continue
		}

		if prev != nil {
			size := math.Max(math.Max(prev.FontSize, t.FontSize), 1)
			switch {
			case math.Abs(t.Y-prev.Y) > lineBreakFactor*size:
				line++
				idx.appendSynthetic('\n')
			case t.X-(prev.X+prev.W) > spaceGapFactor*size:
				idx.appendSynthetic(' ')
			}
		}

		g := len(idx.glyphs)
		idx.glyphs = append(idx.glyphs, glyphBox{rect: glyphRect(t), line: line})
		for _, r := range s {
			idx.text = append(idx.text, r)
			idx.owner = append(idx.owner, g)
		}
		prev = t
	}
	if len(idx.glyphs) > 0 {
		idx.lines = line + 1
	}
	return idx
}

// appendSynthetic adds a layout separator unless the text already ends
// with whitespace.
func (idx *pageIndex) appendSynthetic(r rune) {
	if n := len(idx.text); n > 0 && unicode.IsSpace(idx.text[n-1]) {
		if r == '\n' && idx.text[n-1] != '\n' {
			idx.text[n-1] = '\n'
			idx.owner[n-1] = noGlyph
		}
		return
	}
	idx.text = append(idx.text, r)
	idx.owner = append(idx.owner, noGlyph)
}

// glyphRect returns the box of a glyph. The extracted Y is the baseline,
// so the box extends below it by the descent and above it by the ascent.
func glyphRect(t *pdf.Text) model.Rect {
	size := t.FontSize
	if size <= 0 {
		size = 1
	}
	return model.NewRect(t.X, t.Y-descentFactor*size, t.X+t.W, t.Y+ascentFactor*size)
}

// Text returns the assembled plain text.
func (idx *pageIndex) Text() string {
	return string(idx.text)
}

// Search returns one rectangle per line segment of every non-overlapping
// occurrence of literal, left to right. Occurrences made only of inserted
// separators have no box and are skipped.
func (idx *pageIndex) Search(literal string) []model.Rect {
	needle := []rune(norm.NFC.String(literal))
	if len(needle) == 0 || len(needle) > len(idx.text) {
		return nil
	}

	var rects []model.Rect
	for i := 0; i+len(needle) <= len(idx.text); {
		if !runesEqual(idx.text[i:i+len(needle)], needle) {
			i++
			continue
		}
		rects = append(rects, idx.spanRects(i, i+len(needle))...)
		i += len(needle)
	}
	return rects
}

// spanRects merges the glyph boxes of text[start:end] into one rectangle
// per line.
func (idx *pageIndex) spanRects(start, end int) []model.Rect {
	var (
		rects []model.Rect
		cur   model.Rect
		line  = -1
		last  = noGlyph
	)
	for i := start; i < end; i++ {
		g := idx.owner[i]
		if g == noGlyph || g == last {
			continue
		}
		last = g
		box := idx.glyphs[g]
		switch {
		case line == -1:
			cur, line = box.rect, box.line
		case box.line == line:
			cur = cur.Union(box.rect)
		default:
			rects = append(rects, cur)
			cur, line = box.rect, box.line
		}
	}
	if line != -1 {
		rects = append(rects, cur)
	}
	return rects
}

// Words splits the page into whitespace-separated words.
func (idx *pageIndex) Words() []model.Word {
	var (
		words []model.Word
		start = -1
	)
	flush := func(end int) {
		if start < 0 {
			return
		}
		rects := idx.spanRects(start, end)
		if len(rects) > 0 {
			words = append(words, model.Word{
				Text: string(idx.text[start:end]),
				Rect: rects[0],
				Line: idx.glyphs[idx.owner[start]].line,
			})
		}
		start = -1
	}
	for i, r := range idx.text {
		if unicode.IsSpace(r) {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(idx.text))
	return words
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
