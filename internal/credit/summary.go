package credit

import "github.com/alexanderramin/tally/internal/domain"

// CategoryLine is the reconciliation of one time category.
type CategoryLine struct {
	Category   domain.TimeCategory `json:"category"`
	Required   int                 `json:"required_min"`
	Aggregate  int                 `json:"aggregate_min"`
	Override   *int                `json:"override_min,omitempty"`
	Effective  int                 `json:"effective_min"`
	Remaining  int                 `json:"remaining_min"`
	OverCredit int                 `json:"over_credit_min"`
}

// PhaseLine is the selection state of one phase.
type PhaseLine struct {
	PhaseID      string            `json:"phase_id"`
	Title        string            `json:"title"`
	State        domain.PhaseState `json:"state"`
	Credited     int               `json:"credited"`
	Total        int               `json:"total"`
	Contribution domain.Minutes    `json:"contribution_min"`
}

// Summary is a point-in-time view of every derived value in a session.
type Summary struct {
	Categories      []CategoryLine `json:"categories"`
	Phases          []PhaseLine    `json:"phases"`
	CreditedLessons int            `json:"credited_lessons"`
	TotalLessons    int            `json:"total_lessons"`
}

// Summary computes the full reconciliation in category display order.
func (s *Session) Summary() Summary {
	aggregate := s.Aggregate()
	effective := s.overrides.EffectiveTotals(aggregate)
	remaining := ComputeRemaining(effective, s.requirements)
	over := ComputeOverCredit(effective, s.requirements)

	out := Summary{TotalLessons: s.registry.LessonCount()}
	for _, c := range domain.Categories {
		line := CategoryLine{
			Category:   c,
			Required:   s.requirements.Get(c),
			Aggregate:  aggregate.Get(c),
			Effective:  effective.Get(c),
			Remaining:  remaining.Get(c),
			OverCredit: over.Get(c),
		}
		if v, ok := s.overrides.Get(c); ok {
			line.Override = &v
		}
		out.Categories = append(out.Categories, line)
	}
	for _, g := range s.registry.Phases() {
		credited := CreditedCount(g)
		out.CreditedLessons += credited
		out.Phases = append(out.Phases, PhaseLine{
			PhaseID:      g.Phase.ID,
			Title:        g.Phase.Title,
			State:        PhaseStateOf(g),
			Credited:     credited,
			Total:        len(g.Lessons),
			Contribution: PhaseContribution(g),
		})
	}
	return out
}
