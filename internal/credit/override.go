package credit

import (
	"fmt"

	"github.com/alexanderramin/tally/internal/domain"
)

// Overrides is a sparse overlay of manually entered category totals.
// A category without an entry falls through to the computed aggregate.
type Overrides struct {
	values map[domain.TimeCategory]int
}

func NewOverrides() *Overrides {
	return &Overrides{values: make(map[domain.TimeCategory]int)}
}

// Set records a manual total for category. The prior value is kept when
// the input is rejected.
func (o *Overrides) Set(category domain.TimeCategory, minutes int) error {
	if !category.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, string(category))
	}
	if minutes < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeMinutes, minutes)
	}
	o.values[category] = minutes
	return nil
}

// Get returns the override for category and whether one exists.
func (o *Overrides) Get(category domain.TimeCategory) (int, bool) {
	v, ok := o.values[category]
	return v, ok
}

// Clear removes every override.
func (o *Overrides) Clear() {
	clear(o.values)
}

// Len returns the number of overridden categories.
func (o *Overrides) Len() int {
	return len(o.values)
}

// Snapshot returns a copy of the overlay.
func (o *Overrides) Snapshot() domain.Minutes {
	out := make(domain.Minutes, len(o.values))
	for k, v := range o.values {
		out[k] = v
	}
	return out
}

// EffectiveTotal returns the override for category when present, otherwise
// the aggregate value.
func (o *Overrides) EffectiveTotal(category domain.TimeCategory, aggregate domain.Minutes) int {
	if v, ok := o.values[category]; ok {
		return v
	}
	return aggregate.Get(category)
}

// EffectiveTotals merges the overlay onto aggregate for every category.
// Neither input is modified.
func (o *Overrides) EffectiveTotals(aggregate domain.Minutes) domain.Minutes {
	out := domain.NewMinutes()
	for _, c := range domain.Categories {
		out[c] = o.EffectiveTotal(c, aggregate)
	}
	return out
}
