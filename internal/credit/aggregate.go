package credit

import "github.com/alexanderramin/tally/internal/domain"

// ComputeAggregate sums each category's minutes over every credited lesson.
// Every category is present in the result; categories with no credited
// contribution are zero.
func ComputeAggregate(phases []*PhaseGroup) domain.Minutes {
	total := domain.NewMinutes()
	for _, g := range phases {
		PhaseContribution(g).AddInto(total)
	}
	return total
}

// PhaseContribution sums the credited lessons of a single phase.
func PhaseContribution(g *PhaseGroup) domain.Minutes {
	sum := domain.NewMinutes()
	for _, l := range g.Lessons {
		if !l.Credited {
			continue
		}
		for _, c := range domain.Categories {
			sum[c] += l.Event.Minutes.Get(c)
		}
	}
	return sum
}
