package domain

import (
	"fmt"
	"time"
)

// TrainingEvent is one lesson of a phase. Its minutes are fixed when the
// catalog is loaded.
type TrainingEvent struct {
	ID         string
	PhaseID    string
	Seq        int
	Code       string // short lesson code printed in the syllabus, e.g. "IR-05"
	Title      string
	OrderIndex int
	Minutes    Minutes
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Validate checks that every minute value uses a known category and is non-negative.
func (e *TrainingEvent) Validate() error {
	for c, v := range e.Minutes {
		if !c.Valid() {
			return fmt.Errorf("event %q: %w: %q", e.Title, ErrUnknownCategory, string(c))
		}
		if v < 0 {
			return fmt.Errorf("event %q: %s minutes must be non-negative, got %d", e.Title, c, v)
		}
	}
	return nil
}

// Label returns "CODE Title" when a code is set, otherwise the title.
func (e *TrainingEvent) Label() string {
	if e.Code == "" {
		return e.Title
	}
	return e.Code + " " + e.Title
}
