package output

import (
	"github.com/manav03panchal/murmur/internal/model"
)

// JSONFormatter provides JSON-specific formatting.
type JSONFormatter struct {
	*Formatter
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(f *Formatter) *JSONFormatter {
	return &JSONFormatter{Formatter: f}
}

// EntriesResponse is the list output in JSON.
type EntriesResponse struct {
	Entries []model.Entry `json:"entries"`
	Shown   int           `json:"shown"`
	Total   int           `json:"total"`
}

// RecordResponse is the add output in JSON.
type RecordResponse struct {
	Status string      `json:"status"`
	Entry  model.Entry `json:"entry"`
	Total  int         `json:"total"`
}

// EraseResponse is the erase output in JSON.
type EraseResponse struct {
	Status string `json:"status"`
	Erased int    `json:"erased"`
}

// ErrorResponse represents an error in JSON output.
type ErrorResponse struct {
	Status     string `json:"status"`
	Error      string `json:"error"`
	Suggestion string `json:"suggestion,omitempty"`
}

// PrintEntries outputs entries oldest first.
func (j *JSONFormatter) PrintEntries(entries []model.Entry, total int) error {
	if entries == nil {
		entries = []model.Entry{}
	}
	return j.JSON(EntriesResponse{Entries: entries, Shown: len(entries), Total: total})
}

// PrintRecorded outputs a newly recorded entry.
func (j *JSONFormatter) PrintRecorded(e model.Entry, total int) error {
	return j.JSON(RecordResponse{Status: "recorded", Entry: e, Total: total})
}

// PrintErased outputs the result of an erase.
func (j *JSONFormatter) PrintErased(count int, erased bool) error {
	status := "erased"
	if !erased {
		status = "cancelled"
	}
	return j.JSON(EraseResponse{Status: status, Erased: count})
}

// PrintError outputs an error.
func (j *JSONFormatter) PrintError(errMsg, suggestion string) error {
	return j.JSON(ErrorResponse{Status: "error", Error: errMsg, Suggestion: suggestion})
}
