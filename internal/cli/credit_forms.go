package cli

import (
	"github.com/alexanderramin/tally/internal/domain"
	"github.com/charmbracelet/huh"
)

// newOverrideForm asks for a category and an "H:MM" credited total.
// Input that ParseClock rejects keeps the form open.
func newOverrideForm(category *domain.TimeCategory, text *string) *huh.Form {
	options := make([]huh.Option[domain.TimeCategory], 0, len(domain.Categories))
	for _, c := range domain.Categories {
		options = append(options, huh.NewOption(c.Label(), c))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.TimeCategory]().
				Title("Override which category?").
				Options(options...).
				Value(category),
			huh.NewInput().
				Title("Credited time").
				Description("H:MM, replaces the lesson total for this category").
				Placeholder("0:00").
				Value(text).
				Validate(validateClockInput),
		),
	).WithTheme(tallyHuhTheme()).WithShowHelp(false)
}

func validateClockInput(s string) error {
	_, err := domain.ParseClock(s)
	return err
}

// newResetForm asks to confirm a staged reset.
func newResetForm(confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Reset every credited lesson and override?").
				Affirmative("Reset").
				Negative("Keep").
				Value(confirmed),
		),
	).WithTheme(tallyHuhTheme()).WithShowHelp(false)
}
