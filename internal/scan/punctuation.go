package scan

import "github.com/nao1215/pdfproof/internal/model"

// Punctuation returns one issue and one log entry for every occurrence of
// every mark in marks. Marks are scanned in MarkSet order and, for each
// mark, pages in document order.
func Punctuation(doc TextSource, marks model.MarkSet) ([]model.Issue, []model.LogEntry) {
	var (
		issues  []model.Issue
		entries []model.LogEntry
	)
	pages := doc.PageCount()
	for _, mark := range marks.Marks() {
		for page := range pages {
			for _, rect := range doc.Search(page, mark) {
				issues = append(issues, model.Issue{
					Page:      page,
					Character: mark,
					Rect:      rect,
					Kind:      model.KindPunctuation,
				})
				entries = append(entries, model.PageEntry(page, "The punctuation mark '%s' is incorrect.", mark))
			}
		}
	}
	return issues, entries
}
