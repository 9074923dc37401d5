package scan

import "github.com/nao1215/pdfproof/internal/model"

// DefaultIndentThreshold is the expected left indentation in points
// (one inch).
const DefaultIndentThreshold = 72.0

// Indentation flags every line whose first word starts right of
// threshold. Only the first word of a line is considered, so ordinary
// words later in the line never count as indented.
func Indentation(doc WordSource, threshold float64) ([]model.Issue, []model.LogEntry) {
	var (
		issues  []model.Issue
		entries []model.LogEntry
	)
	for page := range doc.PageCount() {
		seen := make(map[int]bool)
		for _, w := range doc.Words(page) {
			if seen[w.Line] {
				continue
			}
			seen[w.Line] = true
			if w.Rect.X0 <= threshold {
				continue
			}
			issues = append(issues, model.Issue{
				Page:      page,
				Character: w.Text,
				Rect:      w.Rect,
				Kind:      model.KindIndentation,
			})
			entries = append(entries, model.PageEntry(page,
				"The line starting with '%s' is indented at %.1fpt, expected %.1fpt.",
				w.Text, w.Rect.X0, threshold))
		}
	}
	return issues, entries
}
