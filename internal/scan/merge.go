package scan

import "github.com/nao1215/pdfproof/internal/model"

// Merge concatenates punctuation issues, typo issues and any extra lists
// in that order. Each list keeps its internal order.
func Merge(punctuation, typo []model.Issue, extra ...[]model.Issue) []model.Issue {
	n := len(punctuation) + len(typo)
	for _, e := range extra {
		n += len(e)
	}
	out := make([]model.Issue, 0, n)
	out = append(out, punctuation...)
	out = append(out, typo...)
	for _, e := range extra {
		out = append(out, e...)
	}
	return out
}
