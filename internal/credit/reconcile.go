package credit

import "github.com/alexanderramin/tally/internal/domain"

// ComputeRemaining returns max(0, requirement - effective) per category.
func ComputeRemaining(effective, requirements domain.Minutes) domain.Minutes {
	out := domain.NewMinutes()
	for _, c := range domain.Categories {
		out[c] = max(0, requirements.Get(c)-effective.Get(c))
	}
	return out
}

// ComputeOverCredit returns max(0, effective - requirement) per category.
// Over-credit is allowed; this only lets callers show it.
func ComputeOverCredit(effective, requirements domain.Minutes) domain.Minutes {
	out := domain.NewMinutes()
	for _, c := range domain.Categories {
		out[c] = max(0, effective.Get(c)-requirements.Get(c))
	}
	return out
}
