// Package segment splits page text into sentences.
//
// Latin text is split with the English Punkt model of
// github.com/neurosnap/sentences. Japanese text has no spaces after its
// terminators, so every Punkt sentence is split again after 。, ！ and ？.
package segment

import (
	"fmt"
	"strings"

	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

// japaneseTerminators end a sentence regardless of what follows.
const japaneseTerminators = "。！？"

// Segmenter splits text into sentences. It is safe for concurrent use.
type Segmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// New loads the English Punkt model.
func New() (*Segmenter, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load sentence model: %w", err)
	}
	return &Segmenter{tokenizer: tokenizer}, nil
}

// Split returns the non-blank sentences of text in order, with
// surrounding whitespace trimmed.
func (s *Segmenter) Split(text string) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var out []string
	for _, sentence := range s.tokenizer.Tokenize(text) {
		for _, part := range splitJapanese(sentence.Text) {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// splitJapanese cuts s after every Japanese terminator, keeping the
// terminator with the sentence it ends.
func splitJapanese(s string) []string {
	var (
		parts []string
		start int
	)
	for i, r := range s {
		if strings.ContainsRune(japaneseTerminators, r) {
			end := i + len(string(r))
			parts = append(parts, s[start:end])
			start = end
		}
	}
	if start < len(s) {
		parts = append(parts, s[start:])
	}
	return parts
}
