package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampPct(pct float64) float64 {
	return min(max(pct, 0), 1)
}

func bar(pct float64, width int) string {
	width = max(width, 2)
	filled := min(int(pct*float64(width)), width)
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// RenderProgress renders a progress bar like [████░░░░]  45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct = clampPct(pct)

	style := StyleGreen
	if pct < 0.33 {
		style = StyleRed
	} else if pct < 0.66 {
		style = StyleYellow
	}

	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar(pct, width)), pct*100)
}

// RenderCompactBar renders a bracketless bar for dense rows. A dimmed bar
// ignores the percentage coloring.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clampPct(pct)
	if dim {
		return StyleDim.Render(bar(pct, width))
	}
	if pct >= 1 {
		return StyleGreen.Render(bar(pct, width))
	}
	return StyleBlue.Render(bar(pct, width))
}

// CompletionPct returns effective/required clamped to [0,1]. A zero
// requirement counts as complete.
func CompletionPct(effective, required int) float64 {
	if required <= 0 {
		return 1
	}
	return clampPct(float64(effective) / float64(required))
}
