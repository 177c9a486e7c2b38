// Package credit reconciles credited prior training against syllabus
// requirements for a single in-memory editing session.
package credit

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/tally/internal/domain"
)

// Lesson is a catalog training event plus its session-scoped credited flag.
type Lesson struct {
	Event    *domain.TrainingEvent
	Credited bool
}

// PhaseGroup is a phase and its lessons in syllabus order. Membership is
// fixed once the registry is built.
type PhaseGroup struct {
	Phase   *domain.Phase
	Lessons []*Lesson
}

// Registry is the lesson catalog for one session. Only the Credited flags
// of its lessons change after construction.
type Registry struct {
	phases        []*PhaseGroup
	phaseByID     map[string]*PhaseGroup
	lessonByID    map[string]*Lesson
	phaseOfLesson map[string]*PhaseGroup
}

// NewRegistry groups events under their phases. Phases are ordered by
// OrderIndex, events by OrderIndex within a phase; ties keep input order.
// Every event must reference one of the given phases.
func NewRegistry(phases []*domain.Phase, events []*domain.TrainingEvent) (*Registry, error) {
	r := &Registry{
		phaseByID:     make(map[string]*PhaseGroup, len(phases)),
		lessonByID:    make(map[string]*Lesson, len(events)),
		phaseOfLesson: make(map[string]*PhaseGroup, len(events)),
	}

	sortedPhases := make([]*domain.Phase, len(phases))
	copy(sortedPhases, phases)
	sort.SliceStable(sortedPhases, func(i, j int) bool {
		return sortedPhases[i].OrderIndex < sortedPhases[j].OrderIndex
	})
	for _, p := range sortedPhases {
		if _, dup := r.phaseByID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate phase id %q", p.ID)
		}
		g := &PhaseGroup{Phase: p}
		r.phases = append(r.phases, g)
		r.phaseByID[p.ID] = g
	}

	sortedEvents := make([]*domain.TrainingEvent, len(events))
	copy(sortedEvents, events)
	sort.SliceStable(sortedEvents, func(i, j int) bool {
		return sortedEvents[i].OrderIndex < sortedEvents[j].OrderIndex
	})
	for _, e := range sortedEvents {
		if _, dup := r.lessonByID[e.ID]; dup {
			return nil, fmt.Errorf("duplicate event id %q", e.ID)
		}
		if err := e.Validate(); err != nil {
			return nil, err
		}
		g, ok := r.phaseByID[e.PhaseID]
		if !ok {
			return nil, fmt.Errorf("event %q: %w %q", e.ID, ErrUnknownPhase, e.PhaseID)
		}
		l := &Lesson{Event: e}
		g.Lessons = append(g.Lessons, l)
		r.lessonByID[e.ID] = l
		r.phaseOfLesson[e.ID] = g
	}
	return r, nil
}

// Phases returns the phase groups in syllabus order.
func (r *Registry) Phases() []*PhaseGroup {
	return r.phases
}

// Phase looks up a phase group by id.
func (r *Registry) Phase(id string) (*PhaseGroup, bool) {
	g, ok := r.phaseByID[id]
	return g, ok
}

// Lesson looks up a lesson by event id.
func (r *Registry) Lesson(id string) (*Lesson, bool) {
	l, ok := r.lessonByID[id]
	return l, ok
}

// PhaseOf returns the phase group that owns the given event.
func (r *Registry) PhaseOf(eventID string) (*PhaseGroup, bool) {
	g, ok := r.phaseOfLesson[eventID]
	return g, ok
}

// LessonCount returns the number of lessons across all phases.
func (r *Registry) LessonCount() int {
	return len(r.lessonByID)
}
