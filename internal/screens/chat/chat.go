package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	orch "github.com/apetrov/coursemate/internal/chat"
	"github.com/apetrov/coursemate/internal/learner"
	"github.com/apetrov/coursemate/internal/screen"
	"github.com/apetrov/coursemate/internal/ui/components"
	"github.com/apetrov/coursemate/internal/ui/layout"
	"github.com/apetrov/coursemate/internal/ui/theme"
)

// entry is one line of the transcript.
type entry struct {
	user   bool
	text   string
	source string
}

// ChatScreen is the free-form conversation with the advisor.
type ChatScreen struct {
	orchestrator *orch.Orchestrator
	profile      *learner.Profile
	sessionID    string
	input        components.TextInput
	transcript   []entry
	waiting      bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a chat screen bound to one session.
func New(orchestrator *orch.Orchestrator, profile *learner.Profile) *ChatScreen {
	if profile == nil {
		profile = &learner.Profile{}
	}
	return &ChatScreen{
		orchestrator: orchestrator,
		profile:      profile,
		sessionID:    orch.NewSessionID(),
		input:        components.NewTextInput("Ask me about courses...", 200),
		transcript: []entry{
			{text: "Hey! Tell me what you'd like to learn, or ask for a recommendation."},
		},
	}
}

func (c *ChatScreen) Init() tea.Cmd {
	return c.input.Init()
}

func (c *ChatScreen) Title() string {
	return "Chat"
}

func (c *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (c *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		c.waiting = false
		c.transcript = append(c.transcript, entry{
			text:   msg.Reply.Text,
			source: string(msg.Reply.Source),
		})
		if len(msg.Reply.Options) > 0 {
			c.transcript = append(c.transcript, entry{
				text: "Options: " + strings.Join(msg.Reply.Options, ", "),
			})
		}
		return c, nil

	case tea.KeyMsg:
		if msg.String() == "enter" && !c.waiting {
			text := strings.TrimSpace(c.input.Value())
			if text == "" {
				return c, nil
			}
			c.transcript = append(c.transcript, entry{user: true, text: text})
			c.input.Reset()
			c.waiting = true
			return c, c.send(text)
		}
	}

	var cmd tea.Cmd
	c.input, cmd = c.input.Update(msg)
	return c, cmd
}

// send runs the orchestrator turn off the update loop; the remote
// advisor path can block up to its timeout.
func (c *ChatScreen) send(text string) tea.Cmd {
	return func() tea.Msg {
		reply := c.orchestrator.HandleMessage(context.Background(), c.sessionID, text, c.profile)
		return replyMsg{Reply: reply}
	}
}

func (c *ChatScreen) View(width, height int) string {
	var b strings.Builder

	inputBox := theme.Card.Width(width - 4).Render(c.input.View())
	inputHeight := lipgloss.Height(inputBox)

	transcriptHeight := height - inputHeight - 1
	if transcriptHeight < 1 {
		transcriptHeight = 1
	}

	lines := c.renderTranscript(width - 4)
	if len(lines) > transcriptHeight {
		lines = lines[len(lines)-transcriptHeight:]
	}

	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	if c.waiting {
		b.WriteString(theme.Hint.Render("  thinking..."))
	}
	b.WriteString("\n")
	b.WriteString(inputBox)

	return lipgloss.NewStyle().Width(width).Height(height).Render(b.String())
}

func (c *ChatScreen) renderTranscript(width int) []string {
	var lines []string
	wrap := lipgloss.NewStyle().Width(width)

	for _, e := range c.transcript {
		var rendered string
		if e.user {
			rendered = theme.UserLine.Render("you ") + theme.Body.Render(e.text)
		} else {
			rendered = theme.BotLine.Render(e.text)
			if e.source != "" {
				rendered += " " + theme.SourceTag.Render("("+e.source+")")
			}
		}
		lines = append(lines, strings.Split(wrap.Render(rendered), "\n")...)
		lines = append(lines, "")
	}
	return lines
}
