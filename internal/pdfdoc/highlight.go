package pdfdoc

import (
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/color"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"

	pmodel "github.com/nao1215/pdfproof/internal/model"
)

// annotationTitle is written as the author (/T) of every highlight.
const annotationTitle = "pdfproof"

// Highlight colours per issue kind.
var (
	colorPunctuation = color.SimpleColor{R: 1, G: 0.92, B: 0.23}
	colorTypo        = color.SimpleColor{R: 1, G: 0.55, B: 0.62}
	colorIndentation = color.SimpleColor{R: 0.6, G: 0.8, B: 1}
)

// highlight is a buffered highlight annotation.
type highlight struct {
	page     int
	rect     pmodel.Rect
	kind     pmodel.Kind
	contents string
}

// colorFor returns the fill colour used for kind.
func colorFor(kind pmodel.Kind) color.SimpleColor {
	switch kind {
	case pmodel.KindTypo:
		return colorTypo
	case pmodel.KindIndentation:
		return colorIndentation
	default:
		return colorPunctuation
	}
}

// annotationID returns the /NM value of the n-th highlight on page.
// pdfcpu rejects duplicate ids on the same page.
func annotationID(page, n int) string {
	return fmt.Sprintf("pdfproof-%d-%d", page, n)
}

// renderers converts buffered highlights to pdfcpu annotations keyed by
// 1-based page number.
func renderers(hs []highlight) map[int][]model.AnnotationRenderer {
	if len(hs) == 0 {
		return nil
	}
	m := make(map[int][]model.AnnotationRenderer)
	for _, h := range hs {
		pageNr := h.page + 1
		r := types.NewRectangle(h.rect.X0, h.rect.Y0, h.rect.X1, h.rect.Y1)
		ql := types.NewQuadLiteralForRect(r)
		col := colorFor(h.kind)

		ann := model.NewHighlightAnnotation(
			*r,
			0,
			h.contents,
			annotationID(h.page, len(m[pageNr])),
			"",
			model.AnnPrint,
			&col,
			0, 0, 0,
			annotationTitle,
			nil,
			nil,
			"",
			h.kind.String(),
			types.QuadPoints{*ql},
		)
		m[pageNr] = append(m[pageNr], ann)
	}
	return m
}
