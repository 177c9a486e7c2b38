package testutil

import (
	"fmt"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/google/uuid"
)

var testCodeCounter atomic.Int64

// Syllabus options
type SyllabusOption func(*domain.Syllabus)

func WithCode(code string) SyllabusOption {
	return func(s *domain.Syllabus) {
		s.Code = code
	}
}

func WithDescription(d string) SyllabusOption {
	return func(s *domain.Syllabus) {
		s.Description = d
	}
}

func defaultCode(name string) string {
	upper := strings.ToUpper(name)
	var letters []byte
	for i := 0; i < len(upper) && len(letters) < 3; i++ {
		if upper[i] >= 'A' && upper[i] <= 'Z' {
			letters = append(letters, upper[i])
		}
	}
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	n := testCodeCounter.Add(1)
	return fmt.Sprintf("%s%02d", string(letters), n)
}

func NewTestSyllabus(name string, opts ...SyllabusOption) *domain.Syllabus {
	now := time.Now().UTC()
	s := &domain.Syllabus{
		ID:        uuid.New().String(),
		Code:      defaultCode(name),
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Phase options
type PhaseOption func(*domain.Phase)

func WithPhaseOrder(i int) PhaseOption {
	return func(p *domain.Phase) {
		p.OrderIndex = i
	}
}

func WithPhaseID(id string) PhaseOption {
	return func(p *domain.Phase) {
		p.ID = id
	}
}

func NewTestPhase(syllabusID, title string, opts ...PhaseOption) *domain.Phase {
	now := time.Now().UTC()
	p := &domain.Phase{
		ID:         uuid.New().String(),
		SyllabusID: syllabusID,
		Title:      title,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// TrainingEvent options
type EventOption func(*domain.TrainingEvent)

func WithEventID(id string) EventOption {
	return func(e *domain.TrainingEvent) {
		e.ID = id
	}
}

func WithEventCode(code string) EventOption {
	return func(e *domain.TrainingEvent) {
		e.Code = code
	}
}

func WithEventOrder(i int) EventOption {
	return func(e *domain.TrainingEvent) {
		e.OrderIndex = i
	}
}

// WithMinutes sets the minutes for one category, keeping any others.
func WithMinutes(c domain.TimeCategory, m int) EventOption {
	return func(e *domain.TrainingEvent) {
		e.Minutes[c] = m
	}
}

func NewTestEvent(phaseID, title string, opts ...EventOption) *domain.TrainingEvent {
	now := time.Now().UTC()
	e := &domain.TrainingEvent{
		ID:        uuid.New().String(),
		PhaseID:   phaseID,
		Title:     title,
		Minutes:   domain.Minutes{},
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func NewTestRequirement(syllabusID string, c domain.TimeCategory, minutes int) domain.Requirement {
	return domain.Requirement{SyllabusID: syllabusID, Category: c, Minutes: minutes}
}
