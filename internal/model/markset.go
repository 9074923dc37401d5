package model

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownMarkSet is returned when a mark set name is not recognised.
var ErrUnknownMarkSet = errors.New("unknown mark set: must be \"latin\" or \"japanese\"")

// MarkSet selects which punctuation family is treated as wrong.
// Exactly one MarkSet is active per run; the scanning algorithm is the same
// for every value, only the searched characters change.
type MarkSet int

const (
	// MarkSetLatin flags the Latin comma and full stop.
	// Use it for documents that must be punctuated with "、" and "。".
	MarkSetLatin MarkSet = iota

	// MarkSetJapanese flags the Japanese comma and full stop.
	// Use it for documents that must be punctuated with "," and ".".
	MarkSetJapanese
)

// latinMarks and japaneseMarks are the characters searched for, in the
// order they are scanned.
var (
	latinMarks    = []string{",", "."}
	japaneseMarks = []string{"、", "。"}
)

// Marks returns the characters this MarkSet flags, in scan order.
// The returned slice is a copy and may be modified by the caller.
func (m MarkSet) Marks() []string {
	switch m {
	case MarkSetLatin:
		return append([]string(nil), latinMarks...)
	case MarkSetJapanese:
		return append([]string(nil), japaneseMarks...)
	default:
		return nil
	}
}

// Valid reports whether m is one of the declared mark sets.
func (m MarkSet) Valid() bool {
	return m == MarkSetLatin || m == MarkSetJapanese
}

// String returns "latin" or "japanese".
func (m MarkSet) String() string {
	switch m {
	case MarkSetLatin:
		return "latin"
	case MarkSetJapanese:
		return "japanese"
	default:
		return fmt.Sprintf("MarkSet(%d)", int(m))
	}
}

// ParseMarkSet parses a mark set name. Matching is case-insensitive and
// accepts the short aliases "en" and "ja".
func ParseMarkSet(s string) (MarkSet, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "latin", "en":
		return MarkSetLatin, nil
	case "japanese", "ja":
		return MarkSetJapanese, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMarkSet, s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (m MarkSet) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMarkSet, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so a MarkSet can be
// read directly from YAML or JSON.
func (m *MarkSet) UnmarshalText(text []byte) error {
	parsed, err := ParseMarkSet(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
