package domain

import (
	"fmt"
	"regexp"
	"time"
)

var syllabusCodePattern = regexp.MustCompile(`^[A-Z]{3,6}[0-9]{2,4}$`)

type Syllabus struct {
	ID          string
	Code        string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ValidateCode checks that Code is non-empty and matches the required
// format: 3-6 uppercase letters followed by 2-4 digits (e.g. IFR01, CPLME02).
func (s *Syllabus) ValidateCode() error {
	if s.Code == "" {
		return fmt.Errorf("syllabus code is required")
	}
	if !syllabusCodePattern.MatchString(s.Code) {
		return fmt.Errorf("syllabus code %q must be 3-6 uppercase letters followed by 2-4 digits (e.g. IFR01)", s.Code)
	}
	return nil
}

// DisplayID returns the best short identifier for display.
// It prefers Code; if empty it truncates ID to 8 characters.
func (s *Syllabus) DisplayID() string {
	if s.Code != "" {
		return s.Code
	}
	if len(s.ID) >= 8 {
		return s.ID[:8]
	}
	return s.ID
}

// Requirement is the number of minutes a syllabus requires in one category.
type Requirement struct {
	SyllabusID string
	Category   TimeCategory
	Minutes    int
}

// RequirementsToMinutes folds requirement rows into a Minutes map.
// Categories without a row are present with zero.
func RequirementsToMinutes(reqs []Requirement) Minutes {
	m := NewMinutes()
	for _, r := range reqs {
		m[r.Category] = r.Minutes
	}
	return m
}
