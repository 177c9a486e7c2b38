package domain

import (
	"errors"
	"fmt"
	"strings"
)

// TimeCategory is one independently tracked dimension of training time.
type TimeCategory string

const (
	CategoryVFRDual      TimeCategory = "vfr_dual"
	CategoryIFRDual      TimeCategory = "ifr_dual"
	CategorySimulator    TimeCategory = "simulator"
	CategoryCrossCountry TimeCategory = "cross_country"
	CategoryNight        TimeCategory = "night"
	CategorySolo         TimeCategory = "solo"
)

// Categories is the fixed set of time categories in canonical display order.
var Categories = []TimeCategory{
	CategoryVFRDual,
	CategoryIFRDual,
	CategorySimulator,
	CategoryCrossCountry,
	CategoryNight,
	CategorySolo,
}

// ValidCategories is the canonical set of accepted category strings.
var ValidCategories = map[string]bool{
	"vfr_dual": true, "ifr_dual": true, "simulator": true,
	"cross_country": true, "night": true, "solo": true,
}

var categoryLabels = map[TimeCategory]string{
	CategoryVFRDual:      "VFR Dual",
	CategoryIFRDual:      "IFR Dual",
	CategorySimulator:    "Simulator",
	CategoryCrossCountry: "Cross-Country",
	CategoryNight:        "Night",
	CategorySolo:         "Solo",
}

// ErrUnknownCategory is returned when a category string is not one of Categories.
var ErrUnknownCategory = errors.New("unknown time category")

// ParseCategory normalizes user input such as "IFR-dual" or "cross country"
// into a TimeCategory.
func ParseCategory(s string) (TimeCategory, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "_", " ", "_").Replace(norm)
	if !ValidCategories[norm] {
		return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
	}
	return TimeCategory(norm), nil
}

// Valid reports whether c is one of the fixed categories.
func (c TimeCategory) Valid() bool {
	return ValidCategories[string(c)]
}

// Label returns the human-facing name of the category.
func (c TimeCategory) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// PhaseState is the derived bulk-selection status of a phase.
type PhaseState string

const (
	PhaseNone    PhaseState = "none"
	PhaseAll     PhaseState = "all"
	PhasePartial PhaseState = "partial"
)
