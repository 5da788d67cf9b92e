package browse

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/screen"
	"github.com/apetrov/coursemate/internal/ui/layout"
	"github.com/apetrov/coursemate/internal/ui/theme"
)

// BrowseScreen is a read-only catalog listing with a detail pane.
type BrowseScreen struct {
	courses  []catalog.Course
	selected int
	loadErr  error
}

var _ screen.Screen = (*BrowseScreen)(nil)
var _ screen.KeyHintProvider = (*BrowseScreen)(nil)

// New loads the published catalog.
func New(provider catalog.Provider) *BrowseScreen {
	b := &BrowseScreen{}
	if provider == nil {
		return b
	}
	b.courses, b.loadErr = provider.List(context.Background(), catalog.Filter{})
	return b
}

func (b *BrowseScreen) Init() tea.Cmd {
	return nil
}

func (b *BrowseScreen) Title() string {
	return "Catalog"
}

func (b *BrowseScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Browse"},
		{Key: "Esc", Description: "Back"},
	}
}

func (b *BrowseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return b, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if b.selected > 0 {
			b.selected--
		}
	case "down", "j":
		if b.selected < len(b.courses)-1 {
			b.selected++
		}
	}
	return b, nil
}

func (b *BrowseScreen) View(width, height int) string {
	if b.loadErr != nil {
		return theme.Hint.Width(width).Render("Could not load the catalog: " + b.loadErr.Error())
	}
	if len(b.courses) == 0 {
		return theme.Hint.Width(width).Render("The catalog is empty. Run `coursemate catalog seed` first.")
	}

	listWidth := width / 2
	var list strings.Builder
	for i, c := range b.courses {
		label := fmt.Sprintf("%s  (%s)", c.Title, c.Level)
		if i == b.selected {
			list.WriteString(theme.Selected.Render("▸ " + label))
		} else {
			list.WriteString(theme.Unselected.Render("  " + label))
		}
		list.WriteString("\n")
	}

	detail := b.renderDetail(width - listWidth - 6)

	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listWidth).Render(list.String()),
		theme.Card.Render(detail),
	)

	return lipgloss.NewStyle().Width(width).Height(height).Render(row)
}

func (b *BrowseScreen) renderDetail(width int) string {
	c := b.courses[b.selected]

	var d strings.Builder
	d.WriteString(theme.Body.Bold(true).Render(c.Title))
	d.WriteString("\n\n")
	d.WriteString(theme.Body.Render(c.Description))
	d.WriteString("\n\n")
	d.WriteString(theme.Hint.Render(fmt.Sprintf("Category: %s", c.Category)))
	d.WriteString("\n")
	d.WriteString(theme.Hint.Render(fmt.Sprintf("Level: %s", c.Level)))
	d.WriteString("\n")
	d.WriteString(theme.Hint.Render(fmt.Sprintf("Price: $%.0f", c.Price)))
	d.WriteString("\n")
	d.WriteString(theme.Hint.Render(fmt.Sprintf("Duration: %dh %dm", c.DurationMinutes/60, c.DurationMinutes%60)))
	d.WriteString("\n")
	d.WriteString(theme.Hint.Render(fmt.Sprintf("Enrolled: %d, rated %.1f", c.EnrolledCount, c.RatingAverage)))
	if len(c.Skills) > 0 {
		d.WriteString("\n")
		d.WriteString(theme.Hint.Render("Skills: " + strings.Join(c.Skills, ", ")))
	}

	return lipgloss.NewStyle().Width(width).Render(d.String())
}
