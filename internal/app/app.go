package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/apetrov/coursemate/internal/advisor"
	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/chat"
	"github.com/apetrov/coursemate/internal/learner"
	"github.com/apetrov/coursemate/internal/llm"
	"github.com/apetrov/coursemate/internal/questionnaire"
	"github.com/apetrov/coursemate/internal/router"
	"github.com/apetrov/coursemate/internal/screen"
	"github.com/apetrov/coursemate/internal/screens/home"
	"github.com/apetrov/coursemate/internal/store"
	"github.com/apetrov/coursemate/internal/ui/layout"
)

// Options carries the dependencies for the TUI.
type Options struct {
	Courses     catalog.Provider
	Sessions    store.SessionRepo
	Events      store.EventRepo
	LLMProvider llm.Provider
	Profile     *learner.Profile
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router      *router.Router
	width       int
	height      int
	courseCount int
	doneCount   int
}

// newAppModel wires the advisor, orchestrator and questionnaire engines
// and builds the home screen.
func newAppModel(opts Options) AppModel {
	adv := advisor.New(opts.LLMProvider, advisor.DefaultConfig())

	orchestrator := chat.New(chat.Config{
		Courses:  opts.Courses,
		Advisor:  adv,
		Sessions: opts.Sessions,
		Events:   opts.Events,
	})

	guidedEngine := questionnaire.NewEngine(
		questionnaire.FlowGuided,
		questionnaire.GuidedSteps(),
		opts.Courses,
		adv,
	)

	var courseCount int
	if opts.Courses != nil {
		if list, err := opts.Courses.List(context.Background(), catalog.Filter{}); err == nil {
			courseCount = len(list)
		}
	}
	var doneCount int
	if opts.Profile != nil {
		doneCount = len(opts.Profile.CompletedCourseIDs)
	}

	homeScreen := home.New(orchestrator, guidedEngine, opts.Courses, opts.Profile)
	return AppModel{
		router:      router.New(homeScreen),
		courseCount: courseCount,
		doneCount:   doneCount,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.courseCount, m.doneCount, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	}
	if footerHints == nil {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
