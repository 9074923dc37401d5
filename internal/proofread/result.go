package proofread

// ServiceErrorStatus is the lowest status value that denotes a
// service-level error.
const ServiceErrorStatus = 1000

// Alert is one word the service flagged.
type Alert struct {
	// Pos is the rune offset of the word in the submitted sentence.
	Pos int `json:"pos"`

	// Word is the flagged literal.
	Word string `json:"word"`

	// Score is the service's confidence that the word is wrong.
	Score float64 `json:"score"`

	// Suggestions are replacement candidates, best first.
	Suggestions []string `json:"suggestions,omitempty"`
}

// Result is the decoded answer for one sentence.
type Result struct {
	// Status is 0 when nothing was found, 1 when alerts are present,
	// and ServiceErrorStatus or more on failure.
	Status int `json:"status"`

	// Message is the service's human-readable status.
	Message string `json:"message"`

	// InputSentence echoes the submitted sentence.
	InputSentence string `json:"inputSentence,omitempty"` //nolint:tagliatelle // field name set by the service

	// CheckedSentence is the sentence with flagged words marked up.
	CheckedSentence string `json:"checkedSentence,omitempty"` //nolint:tagliatelle // field name set by the service

	// Alerts are the flagged words in sentence order.
	Alerts []Alert `json:"alerts"`
}

// HasAlerts reports whether the service flagged any word.
func (r *Result) HasAlerts() bool {
	return r != nil && len(r.Alerts) > 0
}
