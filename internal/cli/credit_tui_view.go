package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/cli/formatter"
	"github.com/alexanderramin/tally/internal/credit"
)

func (m *creditModel) View() string {
	if m.quitting {
		return ""
	}

	summary := m.session.Summary()

	var b strings.Builder
	b.WriteString(formatter.StyleBold.Render(m.syllabus.Name) + "  " +
		formatter.StylePurple.Render(m.syllabus.DisplayID()) + "  " +
		formatter.Dim(fmt.Sprintf("%d of %d lessons credited", summary.CreditedLessons, summary.TotalLessons)) + "\n\n")

	if m.mode == creditForm && m.form != nil {
		b.WriteString(m.form.View())
		b.WriteString("\n" + formatter.Dim("esc cancel") + "\n")
		return b.String()
	}

	if m.mode == creditFiltering || m.filter.Value() != "" {
		b.WriteString(m.filter.View() + "\n\n")
	}

	b.WriteString(m.renderRows())

	b.WriteString("\n" + formatter.Header("Reconciliation") + "\n")
	b.WriteString(formatter.FormatCategoryTable(summary.Categories))
	if note := formatter.OverCreditNote(summary.Categories); note != "" {
		b.WriteString(note + "\n")
	}

	if m.status != "" {
		b.WriteString("\n" + formatter.StyleYellow.Render(m.status) + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys))
	return b.String()
}

// renderRows renders the visible tree, windowed around the cursor when
// the terminal is too short to show everything.
func (m *creditModel) renderRows() string {
	rows := m.rows()
	if len(rows) == 0 {
		if m.filter.Value() != "" {
			return formatter.Dim("No lessons match the filter.") + "\n"
		}
		return formatter.Dim("This syllabus has no phases.") + "\n"
	}

	start, end := 0, len(rows)
	if budget := m.rowBudget(); budget > 0 && len(rows) > budget {
		start = max(0, m.cursor-budget/2)
		end = min(len(rows), start+budget)
		start = max(0, end-budget)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		b.WriteString(m.renderRow(rows[i], i == m.cursor) + "\n")
	}
	if start > 0 || end < len(rows) {
		b.WriteString(formatter.Dim(fmt.Sprintf("  %d-%d of %d", start+1, end, len(rows))) + "\n")
	}
	return b.String()
}

func (m *creditModel) renderRow(row creditRow, selected bool) string {
	marker := "  "
	if selected {
		marker = formatter.StyleHeader.Render("› ")
	}

	if row.lesson != nil {
		l := row.lesson
		title := l.Event.Label()
		if selected {
			title = formatter.Bold(title)
		}
		return fmt.Sprintf("%s    %s %s  %s",
			marker,
			formatter.LessonCheckbox(l.Credited),
			title,
			formatter.MinutesBreakdown(l.Event.Minutes),
		)
	}

	g := row.group
	state := credit.PhaseStateOf(g)
	arrow := "▸"
	if m.expanded[g.Phase.ID] || m.filter.Value() != "" {
		arrow = "▾"
	}
	return fmt.Sprintf("%s%s %s %s  %s  %s",
		marker,
		formatter.Dim(arrow),
		formatter.Checkbox(state),
		formatter.PhaseStateStyle(state).Bold(selected).Render(g.Phase.Title),
		formatter.Dim(fmt.Sprintf("%d/%d", credit.CreditedCount(g), len(g.Lessons))),
		formatter.MinutesBreakdown(credit.PhaseContribution(g)),
	)
}

// rowBudget is the number of tree lines that fit above the footer.
// Zero means unknown height.
func (m *creditModel) rowBudget() int {
	if m.height == 0 {
		return 0
	}
	// header, category table, status and help lines
	chrome := 16
	if m.mode == creditFiltering || m.filter.Value() != "" {
		chrome += 2
	}
	return max(3, m.height-chrome)
}
