package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/apetrov/coursemate/internal/advisor"
	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/intent"
	"github.com/apetrov/coursemate/internal/learner"
	"github.com/apetrov/coursemate/internal/store"
)

type staticCatalog struct {
	courses   []catalog.Course
	panicking bool
}

func (s *staticCatalog) List(ctx context.Context, f catalog.Filter) ([]catalog.Course, error) {
	if s.panicking {
		panic("catalog exploded")
	}
	return s.courses, nil
}

type capturedEvents struct {
	chats []store.ChatEventData
}

func (c *capturedEvents) AppendLLMRequest(ctx context.Context, data store.LLMRequestEventData) error {
	return nil
}

func (c *capturedEvents) AppendChat(ctx context.Context, data store.ChatEventData) error {
	c.chats = append(c.chats, data)
	return nil
}

func (c *capturedEvents) QueryLLMEvents(ctx context.Context, opts store.QueryOpts) ([]store.LLMRequestEvent, error) {
	return nil, nil
}

func (c *capturedEvents) QueryChatEvents(ctx context.Context, opts store.QueryOpts) ([]store.ChatEvent, error) {
	return nil, nil
}

func newTestOrchestrator(t *testing.T, courses catalog.Provider, events store.EventRepo) *Orchestrator {
	t.Helper()
	if courses == nil {
		courses = &staticCatalog{courses: catalog.SeedCourses()}
	}
	return New(Config{
		Courses: courses,
		Advisor: advisor.New(nil, advisor.DefaultConfig()),
		Events:  events,
	})
}

func TestHandleMessage_Greeting(t *testing.T) {
	o := newTestOrchestrator(t, nil, nil)
	msg := o.HandleMessage(context.Background(), NewSessionID(), "hello there", nil)

	if msg.Intent.Name != intent.Greeting {
		t.Fatalf("Intent = %q", msg.Intent.Name)
	}
	if msg.Text == "" {
		t.Fatal("empty greeting text")
	}
}

func TestHandleMessage_TechnologyRecommendation(t *testing.T) {
	o := newTestOrchestrator(t, nil, nil)
	msg := o.HandleMessage(context.Background(), NewSessionID(), "I want to learn python for data science", &learner.Profile{})

	if msg.Intent.Name != intent.CourseRecommendation {
		t.Fatalf("Intent = %q", msg.Intent.Name)
	}
	if msg.Source != advisor.SourceFallback {
		t.Errorf("Source = %q without a provider", msg.Source)
	}
	if len(msg.Scored) == 0 {
		t.Fatal("no scored courses on technology recommendation")
	}
	if msg.Options != nil {
		t.Error("technology turn should not start a questionnaire")
	}
}

func TestHandleMessage_DoesNotMutateCallerProfile(t *testing.T) {
	o := newTestOrchestrator(t, nil, nil)
	p := &learner.Profile{Skills: []string{"sql"}}

	msg := o.HandleMessage(context.Background(), NewSessionID(), "I want to learn python for data science", p)
	if len(msg.Scored) == 0 {
		t.Fatal("no scored courses on technology recommendation")
	}
	if len(p.Skills) != 1 || p.Skills[0] != "sql" {
		t.Errorf("caller profile skills mutated: %v", p.Skills)
	}
	if len(p.Interests) != 0 {
		t.Errorf("caller profile interests mutated: %v", p.Interests)
	}
}

func TestHandleMessage_BlankProfileStartsQuestionnaire(t *testing.T) {
	o := newTestOrchestrator(t, nil, nil)
	ctx := context.Background()
	sessionID := NewSessionID()

	msg := o.HandleMessage(ctx, sessionID, "recommend me something", &learner.Profile{})
	if msg.Text == "" || msg.QuestionnaireDone {
		t.Fatalf("expected first questionnaire prompt, got %+v", msg)
	}

	// Subsequent turns route into the active session, whatever they
	// classify as.
	msg = o.HandleMessage(ctx, sessionID, "javascript", nil)
	if msg.QuestionnaireDone {
		t.Fatalf("finished too early: %+v", msg)
	}
	msg = o.HandleMessage(ctx, sessionID, "beginner", nil)
	msg = o.HandleMessage(ctx, sessionID, "steady", nil)

	if !msg.QuestionnaireDone {
		t.Fatalf("questionnaire did not finish: %+v", msg)
	}
	if len(msg.Scored) == 0 || msg.Text == "" {
		t.Fatal("terminal turn carries no recommendations")
	}

	// The session is gone; the next turn dispatches by intent again.
	msg = o.HandleMessage(ctx, sessionID, "hello", nil)
	if msg.Intent.Name != intent.Greeting || msg.Text != greetingText {
		t.Fatalf("session leaked into later turn: %+v", msg)
	}
}

func TestHandleMessage_PanicBecomesApology(t *testing.T) {
	events := &capturedEvents{}
	o := newTestOrchestrator(t, &staticCatalog{panicking: true}, events)

	msg := o.HandleMessage(context.Background(), NewSessionID(), "suggest a python course", &learner.Profile{
		Skills: []string{"python"},
	})
	if msg.Text != apologyText {
		t.Fatalf("Text = %q, want apology", msg.Text)
	}

	if len(events.chats) != 1 {
		t.Fatalf("logged %d chat events, want 1", len(events.chats))
	}
	ev := events.chats[0]
	if !ev.HandlerFailed {
		t.Error("HandlerFailed not set")
	}
	if !strings.Contains(ev.ErrorMessage, "catalog exploded") {
		t.Errorf("ErrorMessage = %q", ev.ErrorMessage)
	}
}

func TestHandleMessage_EventPerTurn(t *testing.T) {
	events := &capturedEvents{}
	o := newTestOrchestrator(t, nil, events)

	o.HandleMessage(context.Background(), "sess-1", "hello", nil)
	o.HandleMessage(context.Background(), "sess-1", "any tips?", nil)

	if len(events.chats) != 2 {
		t.Fatalf("logged %d events, want 2", len(events.chats))
	}
	if events.chats[0].Intent != string(intent.Greeting) {
		t.Errorf("first event intent = %q", events.chats[0].Intent)
	}
	if events.chats[1].Intent != string(intent.LearningTips) {
		t.Errorf("second event intent = %q", events.chats[1].Intent)
	}
	if events.chats[0].SessionID != "sess-1" {
		t.Errorf("SessionID = %q", events.chats[0].SessionID)
	}
}

func TestHandleMessage_TemplateHandlers(t *testing.T) {
	o := newTestOrchestrator(t, nil, nil)
	ctx := context.Background()

	tests := []struct {
		text string
		want intent.Name
	}{
		{"what's my study schedule", intent.StudySchedule},
		{"show my progress", intent.ProgressReport},
		{"tips please", intent.LearningTips},
		{"help", intent.Help},
		{"zzz qqq", intent.Unknown},
	}
	for _, tt := range tests {
		msg := o.HandleMessage(ctx, NewSessionID(), tt.text, nil)
		if msg.Intent.Name != tt.want {
			t.Errorf("%q routed to %q, want %q", tt.text, msg.Intent.Name, tt.want)
		}
		if msg.Text == "" {
			t.Errorf("%q produced empty text", tt.text)
		}
	}
}

func TestScheduleText_PaceAware(t *testing.T) {
	fast := scheduleText(&learner.Profile{LearningPace: "fast"})
	relaxed := scheduleText(&learner.Profile{LearningPace: "relaxed"})
	if fast == relaxed {
		t.Error("schedule ignores pace")
	}
	if !strings.Contains(fast, "10 hours") {
		t.Errorf("fast schedule = %q", fast)
	}
}

func TestProgressText_CountsCompleted(t *testing.T) {
	o := newTestOrchestrator(t, nil, nil)
	none := o.progressText(context.Background(), &learner.Profile{})
	some := o.progressText(context.Background(), &learner.Profile{
		CompletedCourseIDs: []string{"js-foundations", "sql-for-analysts"},
	})
	if none == some {
		t.Error("progress ignores completions")
	}
	if !strings.Contains(some, "2") {
		t.Errorf("progress text = %q", some)
	}
}
