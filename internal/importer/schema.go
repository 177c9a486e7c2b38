package importer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/alexanderramin/tally/internal/domain"
)

// ImportSchema is the top-level JSON structure for syllabus import.
type ImportSchema struct {
	Syllabus     SyllabusImport         `json:"syllabus"`
	Phases       []PhaseImport          `json:"phases"`
	Events       []EventImport          `json:"events"`
	Requirements map[string]MinuteValue `json:"requirements,omitempty"`
}

// SyllabusImport defines the syllabus-level fields in the import file.
type SyllabusImport struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// PhaseImport defines a phase in the import file.
type PhaseImport struct {
	Ref   string `json:"ref"`
	Title string `json:"title"`
	Order int    `json:"order"`
}

// EventImport defines a training event in the import file. Minutes are
// keyed by category name.
type EventImport struct {
	Ref      string                 `json:"ref"`
	PhaseRef string                 `json:"phase_ref"`
	Code     string                 `json:"code,omitempty"`
	Title    string                 `json:"title"`
	Order    int                    `json:"order"`
	Minutes  map[string]MinuteValue `json:"minutes,omitempty"`
}

// MinuteValue accepts either a JSON number of minutes or an "H:MM" string.
type MinuteValue int

func (v *MinuteValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		m, err := domain.ParseClock(s)
		if err != nil {
			return err
		}
		*v = MinuteValue(m)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("minutes must be an integer or \"H:MM\": %w", err)
	}
	*v = MinuteValue(n)
	return nil
}

// LoadImportSchema reads and parses a syllabus import JSON file.
func LoadImportSchema(path string) (*ImportSchema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseImportSchema(data)
}

// ParseImportSchema parses raw syllabus JSON. Unknown fields are rejected so
// typos in category-independent keys surface early.
func ParseImportSchema(data []byte) (*ImportSchema, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	var schema ImportSchema
	if err := dec.Decode(&schema); err != nil {
		return nil, fmt.Errorf("parsing import file: %w", err)
	}
	return &schema, nil
}
