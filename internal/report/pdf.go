package report

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/signintech/gopdf"

	"github.com/nao1215/pdfproof/internal/model"
)

const (
	// DefaultSummaryPath is the summary file name used when none is configured.
	DefaultSummaryPath = "summary_report.pdf"

	// titleLayout formats the run time in the summary title.
	titleLayout = "2006-01-02 15:04:05"

	fontFamily = "summary"
	titleSize  = 16.0
	bodySize   = 11.0

	// lineSpacing is the line height as a multiple of the font size.
	lineSpacing = 1.4

	// spacer separates the title and every paragraph.
	spacer = 12.0

	// margin is the page margin on every side, in points.
	margin = 72.0
)

// PDFWriter renders the run log as a paginated Letter-size PDF.
type PDFWriter struct {
	fontPath string
	fontDirs []string
	logger   *slog.Logger
}

// PDFWriterOption configures a PDFWriter.
type PDFWriterOption func(*PDFWriter)

// WithFont sets the TTF file used for all text.
func WithFont(path string) PDFWriterOption {
	return func(w *PDFWriter) {
		w.fontPath = path
	}
}

// WithFontDirs replaces the directories searched for a default font.
func WithFontDirs(dirs ...string) PDFWriterOption {
	return func(w *PDFWriter) {
		w.fontDirs = dirs
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) PDFWriterOption {
	return func(w *PDFWriter) {
		w.logger = logger
	}
}

// NewPDFWriter creates a PDFWriter.
func NewPDFWriter(opts ...PDFWriterOption) *PDFWriter {
	w := &PDFWriter{fontDirs: fontDirs()}
	for _, opt := range opts {
		opt(w)
	}
	if w.logger == nil {
		w.logger = slog.Default()
	}
	return w
}

// Title returns the summary title for a run started at now.
func Title(now time.Time) string {
	return "Log Report - " + now.Format(titleLayout)
}

// WriteLog writes the title and one paragraph per entry to path,
// replacing any existing file.
func (w *PDFWriter) WriteLog(path string, entries []model.LogEntry, now time.Time) error {
	fontName, fontData, err := loadFont(w.fontPath, w.fontDirs)
	if err != nil {
		return err
	}
	w.logger.Debug("summary font", "font", fontName)

	pdf := &gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeLetter})
	pdf.SetInfo(gopdf.PdfInfo{
		Title:        Title(now),
		Creator:      "pdfproof",
		CreationDate: now,
	})
	if err := pdf.AddTTFFontData(fontFamily, fontData); err != nil {
		return fmt.Errorf("failed to load font %s: %w", fontName, err)
	}
	if err := pdf.SetFont(fontFamily, "", bodySize); err != nil {
		return fmt.Errorf("failed to set font: %w", err)
	}

	split := func(text string, size float64) ([]string, error) {
		if strings.TrimSpace(text) == "" {
			return []string{""}, nil
		}
		if err := pdf.SetFontSize(size); err != nil {
			return nil, err
		}
		return pdf.SplitText(text, letter.width-2*margin)
	}

	lines, err := layoutLog(split, Title(now), model.Messages(entries), letter)
	if err != nil {
		return fmt.Errorf("failed to lay out summary: %w", err)
	}

	page := -1
	for _, l := range lines {
		for page < l.page {
			pdf.AddPage()
			page++
		}
		if err := pdf.SetFontSize(l.size); err != nil {
			return fmt.Errorf("failed to set font size: %w", err)
		}
		pdf.SetXY(margin, l.y)
		if err := pdf.Cell(nil, l.text); err != nil {
			return fmt.Errorf("failed to write summary text: %w", err)
		}
	}

	if err := pdf.WritePdf(path); err != nil {
		return fmt.Errorf("failed to write summary %s: %w", path, err)
	}
	return nil
}

// pageGeometry is the printable page size in points.
type pageGeometry struct {
	width  float64
	height float64
}

// letter is US Letter, 8.5 x 11 inches.
var letter = pageGeometry{width: 612, height: 792}

// placedLine is one line of text at its final position.
type placedLine struct {
	page int
	y    float64
	size float64
	text string
}

// splitFunc wraps text to the text width at the given font size.
type splitFunc func(text string, size float64) ([]string, error)

// layoutLog places the title and the paragraphs top to bottom, starting a
// new page whenever the next line would cross the bottom margin.
func layoutLog(split splitFunc, title string, paragraphs []string, g pageGeometry) ([]placedLine, error) {
	var (
		lines []placedLine
		page  int
		y     = margin
	)

	place := func(text string, size float64) error {
		wrapped, err := split(text, size)
		if err != nil {
			return err
		}
		height := size * lineSpacing
		for _, t := range wrapped {
			if y+height > g.height-margin && y > margin {
				page++
				y = margin
			}
			lines = append(lines, placedLine{page: page, y: y, size: size, text: t})
			y += height
		}
		y += spacer
		return nil
	}

	if err := place(title, titleSize); err != nil {
		return nil, err
	}
	for _, p := range paragraphs {
		if err := place(p, bodySize); err != nil {
			return nil, err
		}
	}
	return lines, nil
}
