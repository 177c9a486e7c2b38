package credit

import (
	"fmt"

	"github.com/alexanderramin/tally/internal/domain"
)

// Session holds the mutable crediting state for one editor: the credited
// flags inside the registry and the override overlay. Every derived value
// is computed on read, so there is no window where totals disagree with
// the flags. A Session is not safe for concurrent use.
type Session struct {
	registry     *Registry
	requirements domain.Minutes
	overrides    *Overrides

	revision uint64
	pending  *ResetTicket
}

// ResetTicket identifies a staged reset. It is only honoured while the
// session is unchanged since the ticket was issued.
type ResetTicket struct {
	revision uint64
}

// NewSession starts a session over registry with fixed requirements.
// Categories missing from requirements are required at zero.
func NewSession(registry *Registry, requirements domain.Minutes) *Session {
	req := domain.NewMinutes()
	for c, v := range requirements {
		req[c] = v
	}
	return &Session{
		registry:     registry,
		requirements: req,
		overrides:    NewOverrides(),
	}
}

func (s *Session) Registry() *Registry { return s.registry }

// Requirements returns a copy of the syllabus requirements.
func (s *Session) Requirements() domain.Minutes {
	return s.requirements.Clone()
}

// ToggleEvent sets one lesson's credited flag.
func (s *Session) ToggleEvent(eventID string, credited bool) error {
	l, ok := s.registry.Lesson(eventID)
	if !ok {
		return fmt.Errorf("toggle event: %w %q", ErrUnknownEvent, eventID)
	}
	l.Credited = credited
	s.touch()
	return nil
}

// TogglePhase sets the credited flag of every lesson in the phase.
func (s *Session) TogglePhase(phaseID string, credited bool) error {
	g, ok := s.registry.Phase(phaseID)
	if !ok {
		return fmt.Errorf("toggle phase: %w %q", ErrUnknownPhase, phaseID)
	}
	setPhaseCredited(g, credited)
	s.touch()
	return nil
}

// IsCredited reports an event's current flag.
func (s *Session) IsCredited(eventID string) (bool, error) {
	l, ok := s.registry.Lesson(eventID)
	if !ok {
		return false, fmt.Errorf("%w %q", ErrUnknownEvent, eventID)
	}
	return l.Credited, nil
}

// PhaseState derives the tri-state of the named phase.
func (s *Session) PhaseState(phaseID string) (domain.PhaseState, error) {
	g, ok := s.registry.Phase(phaseID)
	if !ok {
		return "", fmt.Errorf("%w %q", ErrUnknownPhase, phaseID)
	}
	return PhaseStateOf(g), nil
}

// SetOverride records a manual credited total for category.
func (s *Session) SetOverride(category domain.TimeCategory, minutes int) error {
	if err := s.overrides.Set(category, minutes); err != nil {
		return err
	}
	s.touch()
	return nil
}

// SetOverrideText parses an "H:MM" entry and records it. Malformed text
// leaves the previous override (or its absence) untouched.
func (s *Session) SetOverrideText(category domain.TimeCategory, text string) error {
	minutes, err := domain.ParseClock(text)
	if err != nil {
		return err
	}
	return s.SetOverride(category, minutes)
}

// Override returns the manual total for category, if any.
func (s *Session) Override(category domain.TimeCategory) (int, bool) {
	return s.overrides.Get(category)
}

// Overrides returns a copy of the override overlay.
func (s *Session) Overrides() domain.Minutes {
	return s.overrides.Snapshot()
}

// Aggregate sums credited lesson minutes across every phase.
func (s *Session) Aggregate() domain.Minutes {
	return ComputeAggregate(s.registry.Phases())
}

// EffectiveTotal is the override for category when set, else the aggregate.
func (s *Session) EffectiveTotal(category domain.TimeCategory) int {
	return s.overrides.EffectiveTotal(category, s.Aggregate())
}

func (s *Session) EffectiveTotals() domain.Minutes {
	return s.overrides.EffectiveTotals(s.Aggregate())
}

// Remaining is the requirement still to be trained, floored at zero.
func (s *Session) Remaining() domain.Minutes {
	return ComputeRemaining(s.EffectiveTotals(), s.requirements)
}

func (s *Session) OverCredit() domain.Minutes {
	return ComputeOverCredit(s.EffectiveTotals(), s.requirements)
}

// RequestReset stages a reset. The returned ticket must be passed to
// ConfirmReset before anything else changes the session.
func (s *Session) RequestReset() ResetTicket {
	t := ResetTicket{revision: s.revision}
	s.pending = &t
	return t
}

// ResetPending reports whether a reset is staged.
func (s *Session) ResetPending() bool {
	return s.pending != nil
}

// CancelReset drops a staged reset.
func (s *Session) CancelReset() {
	s.pending = nil
}

// ConfirmReset performs a staged reset. A ticket issued before the latest
// mutation is rejected and the staged reset is dropped.
func (s *Session) ConfirmReset(t ResetTicket) error {
	if s.pending == nil {
		return ErrNoPendingReset
	}
	if s.pending.revision != t.revision || t.revision != s.revision {
		s.pending = nil
		return ErrStaleReset
	}
	s.ResetAll()
	return nil
}

// ResetAll clears every credited flag and every override in one step.
func (s *Session) ResetAll() {
	for _, g := range s.registry.Phases() {
		setPhaseCredited(g, false)
	}
	s.overrides.Clear()
	s.pending = nil
	s.revision++
}

func (s *Session) touch() {
	s.revision++
}
