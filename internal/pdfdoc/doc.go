// Package pdfdoc adapts PDF files to the page-oriented view the scanners use.
//
// A Document is opened once per processed file. Reading goes through
// github.com/ledongthuc/pdf, which yields positioned glyphs for each page.
// The glyphs are normalised to NFC and assembled into a per-page index that
// serves three queries:
//
//   - PageText returns the plain text of a page.
//   - Search returns the bounding rectangles of every occurrence of a literal.
//   - Words returns the positioned words of a page.
//
// Highlights are buffered on the Document and written with
// github.com/pdfcpu/pdfcpu when SaveAs is called. The source file is never
// modified.
package pdfdoc
