package components

import (
	"fmt"
	"strings"

	"github.com/apetrov/coursemate/internal/ui/theme"
)

// StepProgress renders a "step N of M" bar for questionnaire flows.
func StepProgress(current, total, width int) string {
	if total <= 0 {
		return ""
	}
	if current < 1 {
		current = 1
	}
	if current > total {
		current = total
	}

	label := fmt.Sprintf(" %d/%d ", current, total)
	barWidth := width - len(label)
	if barWidth < 4 {
		barWidth = 4
	}

	filled := barWidth * current / total
	bar := theme.ProgressFilled.Render(strings.Repeat(" ", filled)) +
		theme.ProgressEmpty.Render(strings.Repeat(" ", barWidth-filled))

	return bar + theme.Hint.Render(label)
}
