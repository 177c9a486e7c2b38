package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/credit"
	"github.com/alexanderramin/tally/internal/domain"
)

// FormatCategoryTable renders one row per time category with the credited,
// override, effective and remaining columns. Over-credit is shown in yellow
// next to the zero remaining value.
func FormatCategoryTable(lines []credit.CategoryLine) string {
	headers := []string{"CATEGORY", "REQUIRED", "CREDITED", "OVERRIDE", "EFFECTIVE", "REMAINING", "PROGRESS"}
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		override := Dim("--")
		if l.Override != nil {
			override = StylePurple.Render(Clock(*l.Override))
		}

		remaining := ClockOrDash(l.Remaining)
		switch {
		case l.OverCredit > 0:
			remaining = StyleGreen.Render("0:00") + " " + StyleYellow.Render("+"+Clock(l.OverCredit))
		case l.Remaining == 0 && l.Required > 0:
			remaining = StyleGreen.Render("0:00")
		case l.Remaining > 0:
			remaining = StyleRed.Render(Clock(l.Remaining))
		}

		progress := Dim("--")
		if l.Required > 0 {
			progress = RenderCompactBar(CompletionPct(l.Effective, l.Required), 10, false)
		}

		rows = append(rows, []string{
			l.Category.Label(),
			ClockOrDash(l.Required),
			ClockOrDash(l.Aggregate),
			override,
			ClockOrDash(l.Effective),
			remaining,
			progress,
		})
	}
	return RenderAlignedTable(headers, rows,
		[]Align{AlignLeft, AlignRight, AlignRight, AlignRight, AlignRight, AlignRight, AlignLeft})
}

// FormatPhaseStates renders each phase's tri-state and credited count.
func FormatPhaseStates(phases []credit.PhaseLine) string {
	if len(phases) == 0 {
		return Dim("(no phases)") + "\n"
	}
	var b strings.Builder
	for _, p := range phases {
		fmt.Fprintf(&b, "%s %s  %s  %s\n",
			Checkbox(p.State),
			PhaseStateStyle(p.State).Render(p.Title),
			Dim(fmt.Sprintf("%d/%d", p.Credited, p.Total)),
			Dim(plainBreakdown(p.Contribution)),
		)
	}
	return b.String()
}

// FormatReconciliation renders a full session summary for a syllabus.
func FormatReconciliation(syllabus *domain.Syllabus, s credit.Summary) string {
	var b strings.Builder
	b.WriteString(StyleBold.Render(syllabus.Name) + "  " + StylePurple.Render(syllabus.DisplayID()) + "\n")
	b.WriteString(Dim(fmt.Sprintf("%d of %d lessons credited", s.CreditedLessons, s.TotalLessons)) + "\n\n")

	b.WriteString(Header("Phases") + "\n")
	b.WriteString(FormatPhaseStates(s.Phases))
	b.WriteString("\n" + Header("Reconciliation") + "\n")
	b.WriteString(FormatCategoryTable(s.Categories))

	if over := OverCreditNote(s.Categories); over != "" {
		b.WriteString("\n" + over + "\n")
	}
	return RenderBox("", b.String())
}

// OverCreditNote lists the categories credited beyond their requirement, or
// returns "" when none are.
func OverCreditNote(lines []credit.CategoryLine) string {
	var parts []string
	for _, l := range lines {
		if l.OverCredit > 0 {
			parts = append(parts, fmt.Sprintf("%s +%s", l.Category.Label(), Clock(l.OverCredit)))
		}
	}
	if len(parts) == 0 {
		return ""
	}
	return StyleYellow.Render("Credited beyond requirement: " + strings.Join(parts, ", "))
}
