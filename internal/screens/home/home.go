package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/chat"
	"github.com/apetrov/coursemate/internal/learner"
	"github.com/apetrov/coursemate/internal/questionnaire"
	"github.com/apetrov/coursemate/internal/router"
	"github.com/apetrov/coursemate/internal/screen"
	"github.com/apetrov/coursemate/internal/screens/browse"
	chatscreen "github.com/apetrov/coursemate/internal/screens/chat"
	"github.com/apetrov/coursemate/internal/screens/guided"
	"github.com/apetrov/coursemate/internal/ui/components"
	"github.com/apetrov/coursemate/internal/ui/theme"
)

// HomeScreen is the landing menu of the application.
type HomeScreen struct {
	menu        components.Menu
	courseCount int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen wired to the orchestrator and catalog.
// guidedEngine runs the full questionnaire behind the GUIDED ADVICE entry.
func New(orchestrator *chat.Orchestrator, guidedEngine *questionnaire.Engine, courses catalog.Provider, profile *learner.Profile) *HomeScreen {
	var courseCount int
	if courses != nil {
		if list, err := courses.List(context.Background(), catalog.Filter{}); err == nil {
			courseCount = len(list)
		}
	}

	items := []components.MenuItem{
		{Label: "CHAT ADVISOR", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: chatscreen.New(orchestrator, profile)}
			}
		}},
		{Label: "GUIDED ADVICE", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: guided.New(guidedEngine)}
			}
		}},
		{Label: "BROWSE CATALOG", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: browse.New(courses)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		courseCount: courseCount,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, theme.Title.Width(width).Render("CourseMate"))
	subtitle := "Your terminal course advisor. Chat freely or take the guided questionnaire."
	if h.courseCount > 0 {
		subtitle = fmt.Sprintf("%d courses in the catalog. Chat freely or take the guided questionnaire.", h.courseCount)
	}
	sections = append(sections, theme.Subtitle.Width(width).Render(subtitle))

	menu := theme.Card.Render(h.menu.View())
	sections = append(sections, lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(menu))

	content := strings.Join(sections, "\n\n")

	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
