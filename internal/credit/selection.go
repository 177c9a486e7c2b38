package credit

import "github.com/alexanderramin/tally/internal/domain"

// PhaseStateOf reduces a phase's lesson flags to all, none or partial.
// An empty phase is none.
func PhaseStateOf(g *PhaseGroup) domain.PhaseState {
	credited := CreditedCount(g)
	switch {
	case credited == 0:
		return domain.PhaseNone
	case credited == len(g.Lessons):
		return domain.PhaseAll
	default:
		return domain.PhasePartial
	}
}

// CreditedCount counts the credited lessons in a phase.
func CreditedCount(g *PhaseGroup) int {
	n := 0
	for _, l := range g.Lessons {
		if l.Credited {
			n++
		}
	}
	return n
}

func setPhaseCredited(g *PhaseGroup, credited bool) {
	for _, l := range g.Lessons {
		l.Credited = credited
	}
}
