package guided

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/apetrov/coursemate/internal/questionnaire"
	"github.com/apetrov/coursemate/internal/router"
	"github.com/apetrov/coursemate/internal/screen"
	"github.com/apetrov/coursemate/internal/ui/components"
	"github.com/apetrov/coursemate/internal/ui/layout"
	"github.com/apetrov/coursemate/internal/ui/theme"
)

// stepDoneMsg carries the engine's result for one answered step. The
// terminal step can block on the advisor, so answers run as commands.
type stepDoneMsg struct {
	Result questionnaire.Result
}

// GuidedScreen walks the learner through the questionnaire flow and
// shows the final recommendations.
type GuidedScreen struct {
	engine *questionnaire.Engine
	sess   *questionnaire.Session

	prompt  string
	options []string
	choice  components.Choice
	input   components.TextInput

	waiting bool
	done    bool
	result  *questionnaire.Result
}

var _ screen.Screen = (*GuidedScreen)(nil)
var _ screen.KeyHintProvider = (*GuidedScreen)(nil)

// New starts a fresh questionnaire session.
func New(engine *questionnaire.Engine) *GuidedScreen {
	sess, first := engine.Start(uuid.NewString())
	g := &GuidedScreen{
		engine: engine,
		sess:   sess,
		input:  components.NewTextInput("Type your answer...", 120),
	}
	g.setStep(first)
	return g
}

func (g *GuidedScreen) setStep(res questionnaire.Result) {
	g.prompt = res.Prompt
	g.options = res.Options
	if len(res.Options) > 0 {
		g.choice = components.NewChoice(res.Prompt, res.Options)
	} else {
		g.input.Reset()
	}
}

func (g *GuidedScreen) Init() tea.Cmd {
	return g.input.Init()
}

func (g *GuidedScreen) Title() string {
	return "Guided Advice"
}

func (g *GuidedScreen) KeyHints() []layout.KeyHint {
	if g.done {
		return []layout.KeyHint{
			{Key: "R", Description: "Start over"},
			{Key: "Esc", Description: "Back"},
		}
	}
	if len(g.options) > 0 {
		return []layout.KeyHint{
			{Key: "↑↓", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back"},
	}
}

func (g *GuidedScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case stepDoneMsg:
		g.waiting = false
		if msg.Result.Done {
			g.done = true
			res := msg.Result
			g.result = &res
			return g, nil
		}
		g.setStep(msg.Result)
		return g, nil

	case tea.KeyMsg:
		if g.waiting {
			return g, nil
		}
		if g.done {
			if msg.String() == "r" {
				return g, func() tea.Msg {
					return router.ReplaceScreenMsg{Screen: New(g.engine)}
				}
			}
			return g, nil
		}
		if len(g.options) > 0 {
			var cmd tea.Cmd
			g.choice, cmd = g.choice.Update(msg)
			if g.choice.Chosen {
				return g, g.answer(g.choice.Value())
			}
			return g, cmd
		}
		if msg.String() == "enter" {
			text := strings.TrimSpace(g.input.Value())
			if text == "" {
				return g, nil
			}
			return g, g.answer(text)
		}
	}

	if len(g.options) == 0 && !g.done {
		var cmd tea.Cmd
		g.input, cmd = g.input.Update(msg)
		return g, cmd
	}
	return g, nil
}

func (g *GuidedScreen) answer(text string) tea.Cmd {
	g.waiting = true
	return func() tea.Msg {
		return stepDoneMsg{Result: g.engine.Step(context.Background(), g.sess, text)}
	}
}

func (g *GuidedScreen) View(width, height int) string {
	if g.done && g.result != nil {
		return g.renderResult(width, height)
	}

	var b strings.Builder
	b.WriteString(components.StepProgress(g.sess.CurrentStep, g.engine.Steps(), width/2))
	b.WriteString("\n\n")

	if g.waiting {
		b.WriteString(theme.Hint.Render("Putting your plan together..."))
	} else if len(g.options) > 0 {
		b.WriteString(g.choice.View())
	} else {
		b.WriteString(theme.Body.Bold(true).Render(g.prompt))
		b.WriteString("\n\n")
		b.WriteString(g.input.View())
	}

	card := theme.Card.Width(width - 8).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(card)
}

func (g *GuidedScreen) renderResult(width, height int) string {
	reply := g.result.Reply

	var b strings.Builder
	b.WriteString(theme.Title.Render("Your course plan"))
	b.WriteString("\n\n")
	b.WriteString(theme.Body.Render(reply.Text))

	if len(reply.Scored) > 0 {
		b.WriteString("\n\n")
		for i, sc := range reply.Scored {
			b.WriteString(theme.Selected.Render(fmt.Sprintf("%d. %s", i+1, sc.Course.Title)))
			b.WriteString(theme.Hint.Render(fmt.Sprintf("  (%s, %.0f pts)", sc.Course.Level, sc.Score)))
			b.WriteString("\n")
			for _, reason := range sc.Reasons {
				b.WriteString(theme.Body.Render("   - " + reason))
				b.WriteString("\n")
			}
		}
	}

	card := theme.Card.Width(width - 8).Render(b.String())
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center).
		Render(card)
}
