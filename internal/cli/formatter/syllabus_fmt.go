package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/tally/internal/app"
	"github.com/alexanderramin/tally/internal/domain"
)

// FormatImportResult renders the confirmation shown after a catalog import.
func FormatImportResult(res *app.ImportResult) string {
	return fmt.Sprintf("%s Imported %s %s: %d phases, %d events, %d requirements\n",
		StyleGreen.Render("✔"),
		Bold(res.Syllabus.Code),
		res.Syllabus.Name,
		res.PhaseCount,
		res.EventCount,
		res.RequirementCount,
	)
}

// FormatSyllabusList renders the catalog as a table inside a bordered box.
func FormatSyllabusList(items []app.SyllabusListItem) string {
	if len(items) == 0 {
		return Dim("No syllabi in the catalog. Import one with `tally syllabus import FILE`.") + "\n"
	}

	headers := []string{"CODE", "NAME", "PHASES", "EVENTS", "TIME"}
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			Bold(it.Syllabus.DisplayID()),
			it.Syllabus.Name,
			fmt.Sprint(it.PhaseCount),
			fmt.Sprint(it.EventCount),
			Clock(it.TotalMinutes),
		})
	}
	table := RenderAlignedTable(headers, rows, []Align{AlignLeft, AlignLeft, AlignRight, AlignRight, AlignRight})
	return RenderBox("Syllabi", table)
}

// FormatSyllabusShow renders a syllabus header, its phase/event tree and
// the per-category totals against requirements.
func FormatSyllabusShow(d *app.SyllabusDetail) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(d.Syllabus.Name) + "  " + StylePurple.Render(d.Syllabus.DisplayID()) + "\n")
	if d.Syllabus.Description != "" {
		b.WriteString(Dim(d.Syllabus.Description) + "\n")
	}
	b.WriteString(Dim(fmt.Sprintf("%d phases · %d events", len(d.Phases), d.EventCount())) + "\n\n")

	var items []TreeItem
	for _, p := range d.Phases {
		items = append(items, TreeItem{
			Title:  p.Phase.Title,
			Seq:    p.Phase.Seq,
			Detail: Clock(p.Minutes.Total()),
		})
		for i, e := range p.Events {
			items = append(items, TreeItem{
				Title:  e.Label(),
				Seq:    e.Seq,
				Level:  1,
				IsLast: i == len(p.Events)-1,
				Detail: plainBreakdown(e.Minutes),
			})
		}
	}
	if len(items) == 0 {
		b.WriteString(Dim("(no phases)") + "\n")
	} else {
		b.WriteString(RenderTree(items))
	}

	b.WriteString("\n" + Header("Totals") + "\n")
	headers := []string{"CATEGORY", "SYLLABUS", "REQUIRED"}
	var rows [][]string
	for _, c := range domain.Categories {
		rows = append(rows, []string{
			c.Label(),
			ClockOrDash(d.Minutes.Get(c)),
			ClockOrDash(d.Requirements.Get(c)),
		})
	}
	b.WriteString(RenderAlignedTable(headers, rows, []Align{AlignLeft, AlignRight, AlignRight}))

	return RenderBox("", b.String())
}

// plainBreakdown is MinutesBreakdown without styling, for use inside badges.
func plainBreakdown(m domain.Minutes) string {
	var parts []string
	for _, c := range domain.Categories {
		if v := m.Get(c); v != 0 {
			parts = append(parts, fmt.Sprintf("%s %s", c.Label(), Clock(v)))
		}
	}
	if len(parts) == 0 {
		return "no time"
	}
	return strings.Join(parts, ", ")
}
