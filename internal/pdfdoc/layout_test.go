package pdfdoc

import (
	"testing"

	"github.com/ledongthuc/pdf"
)

func TestMatrix(t *testing.T) {
	t.Parallel()

	t.Run("translations compose", func(t *testing.T) {
		t.Parallel()
		m := translate(3, 4).mul(translate(1, 2))
		if m[2][0] != 4 || m[2][1] != 6 {
			t.Errorf("expected offset (4, 6), got (%v, %v)", m[2][0], m[2][1])
		}
	})

	t.Run("scale then translate", func(t *testing.T) {
		t.Parallel()
		scale := matrix{{2, 0, 0}, {0, 2, 0}, {0, 0, 1}}
		m := translate(5, 0).mul(scale)
		if m[2][0] != 10 {
			t.Errorf("expected scaled offset 10, got %v", m[2][0])
		}
		if m[0][0] != 2 {
			t.Errorf("expected scale 2, got %v", m[0][0])
		}
	})
}

func TestFontMetricsCodes(t *testing.T) {
	t.Parallel()

	t.Run("composite fonts use two-byte codes", func(t *testing.T) {
		t.Parallel()
		m := &fontMetrics{composite: true}
		codes := m.codes("\x00\x2a\x01\x02\x05")
		if len(codes) != 2 {
			t.Fatalf("expected 2 codes, got %d", len(codes))
		}
		if codes[0].code != 0x2a || codes[1].code != 0x0102 {
			t.Errorf("unexpected codes: %#x %#x", codes[0].code, codes[1].code)
		}
		if codes[1].raw != "\x01\x02" {
			t.Errorf("unexpected raw bytes %q", codes[1].raw)
		}
	})

	t.Run("simple fonts use one-byte codes", func(t *testing.T) {
		t.Parallel()
		m := &fontMetrics{}
		codes := m.codes("ab")
		if len(codes) != 2 || codes[0].code != 'a' || codes[1].code != 'b' {
			t.Errorf("unexpected codes: %+v", codes)
		}
	})
}

func TestFontMetricsWidth(t *testing.T) {
	t.Parallel()

	t.Run("composite widths fall back to the default width", func(t *testing.T) {
		t.Parallel()
		m := &fontMetrics{
			composite:    true,
			cidWidths:    map[int]float64{42: 278},
			defaultWidth: cidDefaultWidth,
		}
		if got := m.width(42); got != 278 {
			t.Errorf("expected 278, got %v", got)
		}
		if got := m.width(43); got != cidDefaultWidth {
			t.Errorf("expected %v, got %v", float64(cidDefaultWidth), got)
		}
	})

	t.Run("simple font without a width table", func(t *testing.T) {
		t.Parallel()
		m := &fontMetrics{font: pdf.Font{}}
		if got := m.width('a'); got != simpleDefaultWidth {
			t.Errorf("expected %v, got %v", float64(simpleDefaultWidth), got)
		}
	})
}
