package pdfdoc

import (
	"strings"

	"github.com/ledongthuc/pdf"
)

// Glyph space widths, in thousandths of the font size.
const (
	// cidDefaultWidth is the advance of a CID glyph when the descendant
	// font has neither a /W entry for it nor a /DW.
	cidDefaultWidth = 1000

	// simpleDefaultWidth approximates glyphs of simple fonts without a
	// width table, such as the standard 14 fonts.
	simpleDefaultWidth = 500
)

// matrix is a PDF transformation matrix in row-vector form.
type matrix [3][3]float64

var identity = matrix{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

func (m matrix) mul(o matrix) matrix {
	var out matrix
	for i := range 3 {
		for j := range 3 {
			for k := range 3 {
				out[i][j] += m[i][k] * o[k][j]
			}
		}
	}
	return out
}

func translate(tx, ty float64) matrix {
	return matrix{{1, 0, 0}, {0, 1, 0}, {tx, ty, 1}}
}

// textState is the part of the graphics state that positions glyphs.
type textState struct {
	ctm     matrix
	tm      matrix
	tlm     matrix
	font    *fontMetrics
	size    float64
	charSp  float64
	wordSp  float64
	hScale  float64
	leading float64
	rise    float64
}

// rawEncoding passes codes through unchanged.
type rawEncoding struct{}

func (rawEncoding) Decode(raw string) string { return raw }

// fontMetrics decodes the codes of one font resource and returns their
// advances.
type fontMetrics struct {
	name      string
	enc       pdf.TextEncoding
	composite bool

	// Composite fonts.
	cidWidths    map[int]float64
	defaultWidth float64

	// Simple fonts.
	font pdf.Font
}

// glyphCode is one character code of a shown string.
type glyphCode struct {
	raw  string
	code int
}

func newFontMetrics(f pdf.Font) *fontMetrics {
	name := f.BaseFont()
	if i := strings.Index(name, "+"); i >= 0 {
		name = name[i+1:]
	}
	m := &fontMetrics{name: name, font: f, enc: f.Encoder()}
	if m.enc == nil {
		m.enc = rawEncoding{}
	}

	if f.V.Key("Subtype").Name() != "Type0" {
		return m
	}
	m.composite = true
	desc := f.V.Key("DescendantFonts").Index(0)
	m.defaultWidth = cidDefaultWidth
	if dw := desc.Key("DW"); dw.Kind() == pdf.Integer || dw.Kind() == pdf.Real {
		m.defaultWidth = dw.Float64()
	}
	m.cidWidths = parseCIDWidths(desc.Key("W"))
	return m
}

// parseCIDWidths reads a /W array. Entries have the forms
// "c [w1 w2 ...]" for consecutive CIDs starting at c and
// "cFirst cLast w" for a range sharing one width.
func parseCIDWidths(w pdf.Value) map[int]float64 {
	widths := make(map[int]float64)
	n := w.Len()
	for i := 0; i+1 < n; {
		first := int(w.Index(i).Int64())
		next := w.Index(i + 1)
		if next.Kind() == pdf.Array {
			for j := range next.Len() {
				widths[first+j] = next.Index(j).Float64()
			}
			i += 2
			continue
		}
		if i+2 >= n {
			break
		}
		last := int(next.Int64())
		width := w.Index(i + 2).Float64()
		for c := first; c <= last; c++ {
			widths[c] = width
		}
		i += 3
	}
	return widths
}

// codes splits a shown string into character codes. Composite fonts use
// two-byte codes; a trailing odd byte is dropped.
func (m *fontMetrics) codes(s string) []glyphCode {
	if !m.composite {
		out := make([]glyphCode, len(s))
		for i := range len(s) {
			out[i] = glyphCode{raw: s[i : i+1], code: int(s[i])}
		}
		return out
	}
	out := make([]glyphCode, 0, len(s)/2)
	for i := 0; i+1 < len(s); i += 2 {
		out = append(out, glyphCode{raw: s[i : i+2], code: int(s[i])<<8 | int(s[i+1])})
	}
	return out
}

// width returns the advance of code in glyph space units.
func (m *fontMetrics) width(code int) float64 {
	if m.composite {
		if w, ok := m.cidWidths[code]; ok {
			return w
		}
		return m.defaultWidth
	}
	if w := m.font.Width(code); w > 0 {
		return w
	}
	if w := m.font.V.Key("FontDescriptor").Key("MissingWidth").Float64(); w > 0 {
		return w
	}
	return simpleDefaultWidth
}

// pageGlyphs walks the content streams of p and returns one Text per
// glyph in content order, positioned in user space.
func pageGlyphs(p pdf.Page) []pdf.Text {
	var (
		out   []pdf.Text
		stack []textState
		fonts = make(map[string]*fontMetrics)
		g     = textState{ctm: identity, tm: identity, tlm: identity, hScale: 1}
	)

	show := func(s string) {
		if g.font == nil {
			return
		}
		for _, c := range g.font.codes(s) {
			w0 := g.font.width(c.code)
			trm := matrix{{g.size * g.hScale, 0, 0}, {0, g.size, 0}, {0, g.rise, 1}}.mul(g.tm).mul(g.ctm)
			out = append(out, pdf.Text{
				Font:     g.font.name,
				FontSize: trm[0][0],
				X:        trm[2][0],
				Y:        trm[2][1],
				W:        w0 / 1000 * trm[0][0],
				S:        g.font.enc.Decode(c.raw),
			})

			tx := w0/1000*g.size + g.charSp
			if !g.font.composite && c.code == ' ' {
				tx += g.wordSp
			}
			g.tm = translate(tx*g.hScale, 0).mul(g.tm)
		}
	}
	nextLine := func() {
		g.tlm = translate(0, -g.leading).mul(g.tlm)
		g.tm = g.tlm
	}

	do := func(stk *pdf.Stack, op string) {
		args := make([]pdf.Value, stk.Len())
		for i := len(args) - 1; i >= 0; i-- {
			args[i] = stk.Pop()
		}

		switch op {
		case "cm":
			if len(args) == 6 {
				g.ctm = matrixOf(args).mul(g.ctm)
			}
		case "q":
			stack = append(stack, g)
		case "Q":
			if n := len(stack); n > 0 {
				g = stack[n-1]
				stack = stack[:n-1]
			}
		case "BT":
			g.tm, g.tlm = identity, identity
		case "Tf":
			if len(args) != 2 {
				return
			}
			name := args[0].Name()
			f, ok := fonts[name]
			if !ok {
				f = newFontMetrics(p.Font(name))
				fonts[name] = f
			}
			g.font = f
			g.size = args[1].Float64()
		case "Tc":
			if len(args) == 1 {
				g.charSp = args[0].Float64()
			}
		case "Tw":
			if len(args) == 1 {
				g.wordSp = args[0].Float64()
			}
		case "Tz":
			if len(args) == 1 {
				g.hScale = args[0].Float64() / 100
			}
		case "TL":
			if len(args) == 1 {
				g.leading = args[0].Float64()
			}
		case "Ts":
			if len(args) == 1 {
				g.rise = args[0].Float64()
			}
		case "Td", "TD":
			if len(args) != 2 {
				return
			}
			if op == "TD" {
				g.leading = -args[1].Float64()
			}
			g.tlm = translate(args[0].Float64(), args[1].Float64()).mul(g.tlm)
			g.tm = g.tlm
		case "Tm":
			if len(args) == 6 {
				g.tm = matrixOf(args)
				g.tlm = g.tm
			}
		case "T*":
			nextLine()
		case "Tj":
			if len(args) == 1 {
				show(args[0].RawString())
			}
		case "'":
			if len(args) == 1 {
				nextLine()
				show(args[0].RawString())
			}
		case "\"":
			if len(args) == 3 {
				g.wordSp = args[0].Float64()
				g.charSp = args[1].Float64()
				nextLine()
				show(args[2].RawString())
			}
		case "TJ":
			if len(args) != 1 {
				return
			}
			arr := args[0]
			for i := range arr.Len() {
				v := arr.Index(i)
				if v.Kind() == pdf.String {
					show(v.RawString())
					continue
				}
				tx := -v.Float64() / 1000 * g.size * g.hScale
				g.tm = translate(tx, 0).mul(g.tm)
			}
		}
	}

	contents := p.V.Key("Contents")
	switch contents.Kind() {
	case pdf.Stream:
		pdf.Interpret(contents, do)
	case pdf.Array:
		for i := range contents.Len() {
			if s := contents.Index(i); s.Kind() == pdf.Stream {
				pdf.Interpret(s, do)
			}
		}
	}
	return out
}

func matrixOf(args []pdf.Value) matrix {
	var m matrix
	for i := range 6 {
		m[i/2][i%2] = args[i].Float64()
	}
	m[2][2] = 1
	return m
}
