package model

import "fmt"

// NoPage is the Page value of a LogEntry that is not bound to a page.
const NoPage = -1

// LogEntry is one human-readable line of the run log.
// Entries describe either a detected problem or a processing failure and
// are kept in the order they were produced.
type LogEntry struct {
	// Page is the zero-based page index the entry refers to, or NoPage.
	Page int `json:"page"`

	// Message is the text written to the summary document.
	Message string `json:"message"`
}

// String returns the message.
func (e LogEntry) String() string {
	return e.Message
}

// PageEntry builds a page-bound LogEntry whose message starts with "Page {n}: ".
func PageEntry(page int, format string, args ...any) LogEntry {
	return LogEntry{
		Page:    page,
		Message: fmt.Sprintf("Page %d: ", page) + fmt.Sprintf(format, args...),
	}
}

// Entry builds a LogEntry that is not bound to a page.
func Entry(format string, args ...any) LogEntry {
	return LogEntry{Page: NoPage, Message: fmt.Sprintf(format, args...)}
}

// Messages returns the message of every entry, in order.
func Messages(entries []LogEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Message
	}
	return out
}
