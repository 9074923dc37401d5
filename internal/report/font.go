package report

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"golang.org/x/image/font/gofont/goregular"
)

// DefaultFontFiles are looked up in the font directories, in order, when
// no font is configured. Japanese fonts come first so both punctuation
// families render in the summary.
var DefaultFontFiles = []string{
	"ipaexg.ttf",
	"ipag.ttf",
	"NotoSansJP-Regular.ttf",
	"DejaVuSans.ttf",
	"LiberationSans-Regular.ttf",
}

// embeddedFontName is reported when the built-in Go font is used.
const embeddedFontName = "Go Regular (embedded)"

// loadFont returns the TTF data for the summary document.
// A configured path must be readable. Otherwise the first of
// DefaultFontFiles found under dirs is used, and the embedded Go Regular
// font if none is.
func loadFont(path string, dirs []string) (string, []byte, error) {
	if path != "" {
		data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the operator
		if err != nil {
			return "", nil, fmt.Errorf("failed to read font: %w", err)
		}
		return path, data, nil
	}

	if found := findFont(dirs, DefaultFontFiles); found != "" {
		data, err := os.ReadFile(found) //nolint:gosec // found under a font directory
		if err == nil {
			return found, data, nil
		}
	}
	return embeddedFontName, goregular.TTF, nil
}

// findFont walks dirs and returns the path of the highest-priority
// candidate file name present, matched case-insensitively.
func findFont(dirs []string, candidates []string) string {
	rank := make(map[string]int, len(candidates))
	for i, c := range candidates {
		rank[strings.ToLower(c)] = i
	}

	best, bestRank := "", len(candidates)
	for _, dir := range dirs {
		_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if r, ok := rank[strings.ToLower(d.Name())]; ok && r < bestRank {
				best, bestRank = path, r
			}
			return nil
		})
		if bestRank == 0 {
			break
		}
	}
	return best
}

// fontDirs returns the platform font directories.
func fontDirs() []string {
	return xdg.FontDirs
}
