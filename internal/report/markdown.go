package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/nao1215/pdfproof/internal/model"
)

// MarkdownWriter outputs the run in Markdown format.
// This format is designed for sharing results in reviews and issues.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run report in Markdown format.
func (w *MarkdownWriter) Write(run *model.RunReport) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, run)
	w.writeSummary(md, run)
	for _, doc := range run.Documents {
		w.writeDocument(md, doc)
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the title and the run-wide alert.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, run *model.RunReport) {
	md.H1("Proofreading Report")
	md.PlainText("")
	md.PlainTextf("Run started %s.", run.Started.Format("2006-01-02 15:04:05 MST"))
	md.PlainText("")

	switch total := run.TotalIssues(); {
	case run.AllFailed():
		md.Caution("No document could be processed.")
	case total > 0:
		md.Warningf("%d issue(s) found in %d document(s).", total, len(run.Documents))
	default:
		md.Tip("No issues found.")
	}
	md.PlainText("")
}

// writeSummary writes one table row per document with counts by kind.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, run *model.RunReport) {
	md.H2("Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(run.Documents))
	for _, doc := range run.Documents {
		counts := model.CountByKind(doc.Issues)
		rows = append(rows, []string{
			"`" + doc.Name() + "`",
			strconv.Itoa(doc.PageCount),
			strconv.Itoa(counts[model.KindPunctuation]),
			strconv.Itoa(counts[model.KindTypo]),
			strconv.Itoa(counts[model.KindIndentation]),
			w.statusText(doc),
		})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Document", "Pages", "Punctuation", "Typo", "Indentation", "Status"},
		Rows:   rows,
	})
	md.PlainText("")
}

// statusText returns the status cell of a document.
func (w *MarkdownWriter) statusText(doc *model.DocumentReport) string {
	switch {
	case doc.Failed():
		return "❌ " + doc.ErrorMessage
	case doc.Cancelled:
		return "⚠️ Cancelled"
	default:
		return "✅ " + doc.HighlightedPath
	}
}

// writeDocument writes the log of one document as a list.
func (w *MarkdownWriter) writeDocument(md *markdown.Markdown, doc *model.DocumentReport) {
	md.H2(doc.Name())
	md.PlainText("")

	if len(doc.Log) == 0 {
		md.PlainText("Nothing to report.")
		md.PlainText("")
		return
	}

	md.BulletList(model.Messages(doc.Log)...)
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [pdfproof](https://github.com/nao1215/pdfproof)*")
}
