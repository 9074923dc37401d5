package pdfdoc

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"golang.org/x/crypto/sha3"

	pmodel "github.com/nao1215/pdfproof/internal/model"
)

// Document is an opened PDF file.
// Reads are safe for concurrent use. AddHighlight, SaveAs and Close must
// be called from the goroutine that owns the document.
type Document struct {
	path   string
	digest string
	logger *slog.Logger

	mu     sync.Mutex
	file   *os.File
	reader *pdf.Reader
	pages  []*pageIndex
	closed bool

	highlights []highlight
}

// Option configures a Document.
type Option func(*Document)

// WithLogger sets the logger used for recoverable read problems.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Document) {
		d.logger = logger
	}
}

// Open opens the PDF at path and computes its SHA3-256 digest.
// The returned Document must be closed by the caller.
func Open(path string, opts ...Option) (*Document, error) {
	d := &Document{path: path}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = slog.Default()
	}

	raw, err := os.ReadFile(path) //nolint:gosec // path is chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrOpen, err)
	}
	sum := sha3.Sum256(raw)
	d.digest = hex.EncodeToString(sum[:])

	if err := d.openReader(); err != nil {
		return nil, err
	}
	d.pages = make([]*pageIndex, d.reader.NumPage())
	return d, nil
}

// openReader parses the file. The PDF reader panics on some malformed
// cross-reference tables, which is reported as ErrOpen.
func (d *Document) openReader() (err error) {
	defer func() {
		if r := recover(); r != nil {
			if d.file != nil {
				_ = d.file.Close()
				d.file = nil
			}
			err = fmt.Errorf("%w: %s: %v", ErrOpen, d.path, r)
		}
	}()

	f, r, err := pdf.Open(d.path)
	if err != nil {
		if f != nil {
			_ = f.Close()
		}
		return fmt.Errorf("%w: %s: %w", ErrOpen, d.path, err)
	}
	d.file = f
	d.reader = r
	return nil
}

// Path returns the source path.
func (d *Document) Path() string {
	return d.path
}

// Digest returns the hex SHA3-256 of the source bytes.
func (d *Document) Digest() string {
	return d.digest
}

// PageCount returns the number of pages.
func (d *Document) PageCount() int {
	return len(d.pages)
}

// PageText returns the plain text of the zero-based page.
func (d *Document) PageText(page int) string {
	return d.page(page).Text()
}

// Search returns the rectangles of every occurrence of literal on page.
func (d *Document) Search(page int, literal string) []pmodel.Rect {
	return d.page(page).Search(literal)
}

// Words returns the positioned words of page.
func (d *Document) Words(page int) []pmodel.Word {
	return d.page(page).Words()
}

// page returns the index of a page, building it on first use.
// Out-of-range pages and closed documents yield an empty index.
func (d *Document) page(i int) *pageIndex {
	d.mu.Lock()
	defer d.mu.Unlock()

	if i < 0 || i >= len(d.pages) || d.closed {
		return &pageIndex{}
	}
	if d.pages[i] == nil {
		d.pages[i] = d.loadPage(i)
	}
	return d.pages[i]
}

func (d *Document) loadPage(i int) (idx *pageIndex) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Warn("unreadable page content",
				"path", d.path,
				"page", i,
				"panic", r,
			)
			idx = &pageIndex{}
		}
	}()

	p := d.reader.Page(i + 1)
	if p.V.IsNull() {
		return &pageIndex{}
	}
	return newPageIndex(pageGlyphs(p))
}

// AddHighlight buffers a highlight over rect on the zero-based page.
// Highlights are written by SaveAs.
func (d *Document) AddHighlight(page int, rect pmodel.Rect, kind pmodel.Kind, contents string) error {
	if d.closed {
		return ErrClosed
	}
	if page < 0 || page >= len(d.pages) {
		return fmt.Errorf("%w: %d", ErrPageOutOfRange, page)
	}
	d.highlights = append(d.highlights, highlight{
		page:     page,
		rect:     rect,
		kind:     kind,
		contents: contents,
	})
	return nil
}

// SaveAs writes a copy of the source with the buffered highlights to out.
// The copy is written to a temporary file next to out and renamed into
// place, so out is either the complete new file or untouched.
func (d *Document) SaveAs(ctx context.Context, out string) error {
	if d.closed {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if same, _ := samePath(d.path, out); same {
		return fmt.Errorf("%w: %s", ErrSameFile, out)
	}

	src, err := os.Open(d.path) //nolint:gosec // path is chosen by the operator
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer src.Close() //nolint:errcheck

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	pctx, err := api.ReadValidateAndOptimize(src, conf)
	if err != nil {
		return fmt.Errorf("failed to read %s for writing: %w", d.path, err)
	}

	if m := renderers(d.highlights); m != nil {
		if _, err := pdfcpu.AddAnnotationsMap(pctx, m, false); err != nil {
			return fmt.Errorf("failed to add highlights: %w", err)
		}
	}

	if err := writeAtomic(out, func(w io.Writer) error {
		return api.WriteContext(pctx, w)
	}); err != nil {
		return err
	}
	d.logger.Debug("saved highlighted copy",
		"path", out,
		"highlights", len(d.highlights),
	)
	return nil
}

// Close releases the underlying file. Calling Close more than once is a
// no-op.
func (d *Document) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil
	}
	d.closed = true
	if d.file == nil {
		return nil
	}
	return d.file.Close()
}

// writeAtomic writes through fn into a temporary file in the directory of
// path and renames it over path.
func writeAtomic(path string, fn func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create output: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck

	if err := fn(tmp); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// samePath reports whether a and b name the same file.
func samePath(a, b string) (bool, error) {
	absA, err := filepath.Abs(a)
	if err != nil {
		return false, err
	}
	absB, err := filepath.Abs(b)
	if err != nil {
		return false, err
	}
	if absA == absB {
		return true, nil
	}
	infoA, errA := os.Stat(absA)
	infoB, errB := os.Stat(absB)
	if errA != nil || errB != nil {
		return false, nil
	}
	return os.SameFile(infoA, infoB), nil
}
