package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TreeItem is one line of a phase/lesson tree.
type TreeItem struct {
	Title  string
	Seq    int // syllabus-scoped sequential ID; 0 means don't display
	Level  int
	IsLast bool
	// Mark is an optional pre-rendered prefix such as a checkbox.
	Mark   string
	Detail string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
)

// RenderTree renders TreeItems as an indented tree using box-drawing
// connectors, with detail badges right-aligned in one column.
func RenderTree(items []TreeItem) string {
	if len(items) == 0 {
		return ""
	}

	contents := make([]string, len(items))
	maxWidth := 0
	for idx, item := range items {
		var prefix string
		if item.Level > 0 {
			prefix = strings.Repeat(treePipe, item.Level-1)
			if item.IsLast {
				prefix += treeCorner
			} else {
				prefix += treeBranch
			}
		}

		title := item.Title
		if item.Level == 0 {
			title = Bold(title)
		}
		if item.Seq > 0 {
			title = StyleDim.Render(fmt.Sprintf("#%d ", item.Seq)) + title
		}
		if item.Mark != "" {
			title = item.Mark + " " + title
		}

		contents[idx] = prefix + title
		maxWidth = max(maxWidth, lipgloss.Width(contents[idx]))
	}

	var b strings.Builder
	for idx, item := range items {
		line := contents[idx]
		if item.Detail != "" {
			pad := maxWidth - lipgloss.Width(line)
			line += strings.Repeat(" ", pad) + "  " + StyleBlue.Render("[ "+item.Detail+" ]")
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}
