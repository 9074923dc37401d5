// Package discover turns command line paths into the list of PDFs to check,
// and lets an operator pick one interactively when no path was given.
package discover

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/term"
)

var (
	// ErrNotPDF is returned when an explicit file argument is not a PDF.
	ErrNotPDF = errors.New("not a PDF file")

	// ErrNoPDF is returned when there is nothing to choose from.
	ErrNoPDF = errors.New("no PDF files found")

	// ErrInvalidChoice is returned when the operator gave no usable answer.
	ErrInvalidChoice = errors.New("invalid choice")
)

// IsPDF reports whether name has a .pdf extension, ignoring case.
func IsPDF(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".pdf")
}

// Find expands paths into PDF files, keeping argument order.
// Directories are walked recursively in lexical order. Files whose stem
// ends with skipSuffix are left out of directory walks, so highlighted
// copies from an earlier run are not checked again. Duplicates are dropped.
func Find(paths []string, skipSuffix string) ([]string, error) {
	var found []string
	seen := make(map[string]struct{})

	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, fmt.Errorf("failed to access %s: %w", p, err)
		}
		if !info.IsDir() {
			if !IsPDF(p) {
				return nil, fmt.Errorf("%w: %s", ErrNotPDF, p)
			}
			found = appendUnique(found, seen, p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, entry os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if entry.IsDir() || !IsPDF(entry.Name()) || isDerived(entry.Name(), skipSuffix) {
				return nil
			}
			found = appendUnique(found, seen, path)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("failed to walk %s: %w", p, err)
		}
	}
	return found, nil
}

func isDerived(name, suffix string) bool {
	if suffix == "" {
		return false
	}
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	return strings.HasSuffix(stem, suffix)
}

func appendUnique(paths []string, seen map[string]struct{}, path string) []string {
	normalized := filepath.Clean(path)
	if _, ok := seen[normalized]; ok {
		return paths
	}
	seen[normalized] = struct{}{}
	return append(paths, normalized)
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f any) bool {
	if f == nil {
		return false
	}
	if file, ok := f.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	if fder, ok := f.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(fder.Fd()))
	}
	return false
}

// Pick lists candidates on out and reads a 1-based choice from in.
// Unusable answers are reported and the prompt is repeated until a valid
// number is read or the input ends.
func Pick(in io.Reader, out io.Writer, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoPDF
	}
	if len(candidates) == 1 {
		return candidates[0], nil
	}

	for i, c := range candidates {
		fmt.Fprintf(out, "%3d) %s\n", i+1, c)
	}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprintf(out, "Select a PDF [1-%d]: ", len(candidates))
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", fmt.Errorf("failed to read choice: %w", err)
			}
			return "", ErrInvalidChoice
		}
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		if err == nil && n >= 1 && n <= len(candidates) {
			return candidates[n-1], nil
		}
		fmt.Fprintf(out, "Please enter a number between 1 and %d.\n", len(candidates))
	}
}
