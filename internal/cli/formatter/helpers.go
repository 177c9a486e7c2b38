package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// Clock renders minutes as "H:MM".
func Clock(minutes int) string {
	return domain.FormatClock(minutes)
}

// ClockOrDash renders zero as a dimmed dash so sparse tables stay readable.
func ClockOrDash(minutes int) string {
	if minutes == 0 {
		return Dim("--")
	}
	return Clock(minutes)
}

// FormatMinutes converts raw minutes into human-friendly format.
func FormatMinutes(min int) string {
	if min <= 0 {
		return "0m"
	}
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// MinutesBreakdown lists the non-zero categories of m, e.g.
// "IFR Dual 1:30 · Night 0:45". Empty minutes render as a dimmed dash.
func MinutesBreakdown(m domain.Minutes) string {
	var parts []string
	for _, c := range domain.Categories {
		if v := m.Get(c); v != 0 {
			parts = append(parts, fmt.Sprintf("%s %s", c.Label(), Clock(v)))
		}
	}
	if len(parts) == 0 {
		return Dim("--")
	}
	return strings.Join(parts, Dim(" · "))
}
