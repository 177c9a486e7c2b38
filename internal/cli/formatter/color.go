package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen      = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow     = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleYellowBold = lipgloss.NewStyle().Foreground(ColorYellow).Bold(true)
	StyleRed        = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue       = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple     = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim        = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg         = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader     = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold       = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PhaseStateStyle returns the style used for a phase in the given state.
func PhaseStateStyle(state domain.PhaseState) lipgloss.Style {
	switch state {
	case domain.PhaseAll:
		return StyleGreen
	case domain.PhasePartial:
		return StyleYellow
	default:
		return StyleDim
	}
}

// Checkbox renders the tri-state box for a phase: [x], [-] or [ ].
func Checkbox(state domain.PhaseState) string {
	switch state {
	case domain.PhaseAll:
		return StyleGreen.Render("[x]")
	case domain.PhasePartial:
		return StyleYellow.Render("[-]")
	default:
		return StyleDim.Render("[ ]")
	}
}

// LessonCheckbox renders a two-state box for a single lesson.
func LessonCheckbox(credited bool) string {
	if credited {
		return Checkbox(domain.PhaseAll)
	}
	return Checkbox(domain.PhaseNone)
}

// PhaseStatePill returns a colored label such as "● ALL".
func PhaseStatePill(state domain.PhaseState) string {
	switch state {
	case domain.PhaseAll:
		return StyleGreen.Render("● ALL")
	case domain.PhasePartial:
		return StyleYellow.Render("◐ PARTIAL")
	default:
		return StyleDim.Render("○ NONE")
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
