package questionnaire

import (
	"context"
	"reflect"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/apetrov/coursemate/internal/advisor"
	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/scorer"
)

type staticCatalog struct {
	courses []catalog.Course
	err     error
}

func (s *staticCatalog) List(ctx context.Context, f catalog.Filter) ([]catalog.Course, error) {
	return s.courses, s.err
}

func newTestEngine(t *testing.T, flow string, steps []Step) *Engine {
	t.Helper()
	adv := advisor.New(nil, advisor.DefaultConfig())
	return NewEngine(flow, steps, &staticCatalog{courses: catalog.SeedCourses()}, adv)
}

func TestStart_FirstPrompt(t *testing.T) {
	e := newTestEngine(t, FlowConversational, ConversationalSteps())
	sess, res := e.Start(uuid.NewString())

	if sess.CurrentStep != 1 {
		t.Fatalf("CurrentStep = %d, want 1", sess.CurrentStep)
	}
	if sess.Flow != FlowConversational {
		t.Errorf("Flow = %q", sess.Flow)
	}
	if res.Prompt == "" || res.Done {
		t.Fatalf("unexpected first result: %+v", res)
	}
}

func TestConversational_CompletesWithRecommendations(t *testing.T) {
	e := newTestEngine(t, FlowConversational, ConversationalSteps())
	sess, _ := e.Start(uuid.NewString())
	ctx := context.Background()

	res := e.Step(ctx, sess, "python, data science")
	if res.Done || res.Reprompt {
		t.Fatalf("after answer 1: %+v", res)
	}
	res = e.Step(ctx, sess, "beginner")
	if res.Done || res.Reprompt {
		t.Fatalf("after answer 2: %+v", res)
	}
	res = e.Step(ctx, sess, "steady")

	if !res.Done {
		t.Fatalf("expected terminal result, got %+v", res)
	}
	if !sess.Terminal {
		t.Error("session not marked terminal")
	}
	if res.Reply == nil || res.Reply.Text == "" {
		t.Fatal("terminal result has no reply")
	}
	if len(res.Reply.Scored) == 0 {
		t.Fatal("terminal reply carries no scored courses")
	}

	foundReason := false
	for _, sc := range res.Reply.Scored {
		if len(sc.Reasons) > 0 {
			foundReason = true
		}
		if !strings.Contains(res.Reply.Text, sc.Course.Title) {
			t.Errorf("reply text does not mention %q", sc.Course.Title)
		}
	}
	if !foundReason {
		t.Error("no scored course carries a reason")
	}
}

func TestConversational_UsesBaseScoring(t *testing.T) {
	e := newTestEngine(t, FlowConversational, ConversationalSteps())
	sess, _ := e.Start(uuid.NewString())
	ctx := context.Background()

	e.Step(ctx, sess, "go")
	e.Step(ctx, sess, "beginner")
	res := e.Step(ctx, sess, "fast")

	if !res.Done {
		t.Fatalf("flow did not finish: %+v", res)
	}
	want := scorer.Rank(e.BuildProfile(sess), catalog.SeedCourses(), scorer.DefaultTopK)
	if !reflect.DeepEqual(res.Reply.Scored, want) {
		t.Errorf("conversational payload diverges from base ranking:\ngot  %+v\nwant %+v", res.Reply.Scored, want)
	}
}

func TestGuided_UsesExtendedScoring(t *testing.T) {
	e := newTestEngine(t, FlowGuided, GuidedSteps())
	sess := &Session{
		CurrentStep: e.Steps(),
		Answers: map[string]string{
			"goal":          "career change",
			"target_skills": "python",
			"level":         "beginner",
			"pace":          "steady",
			"budget":        "medium",
		},
	}
	res := e.Step(context.Background(), sess, "no")

	if !res.Done {
		t.Fatalf("flow did not finish: %+v", res)
	}
	want := scorer.RankGuided(e.BuildProfile(sess), catalog.SeedCourses(), scorer.DefaultTopK)
	if !reflect.DeepEqual(res.Reply.Scored, want) {
		t.Errorf("guided payload diverges from extended ranking:\ngot  %+v\nwant %+v", res.Reply.Scored, want)
	}
}

func TestStep_InvalidAnswerReprompts(t *testing.T) {
	e := newTestEngine(t, FlowConversational, ConversationalSteps())
	sess, _ := e.Start(uuid.NewString())

	res := e.Step(context.Background(), sess, "   ")
	if !res.Reprompt {
		t.Fatalf("expected reprompt, got %+v", res)
	}
	if sess.CurrentStep != 1 {
		t.Errorf("CurrentStep advanced to %d on invalid answer", sess.CurrentStep)
	}
	if _, ok := sess.Answers["technology"]; ok {
		t.Error("rejected answer was recorded")
	}
}

func TestStep_OutOfRangeResets(t *testing.T) {
	e := newTestEngine(t, FlowConversational, ConversationalSteps())
	sess, _ := e.Start(uuid.NewString())
	e.Step(context.Background(), sess, "go")
	sess.CurrentStep = 99

	res := e.Step(context.Background(), sess, "whatever")
	if sess.CurrentStep != 1 {
		t.Fatalf("CurrentStep = %d after reset, want 1", sess.CurrentStep)
	}
	if res.Done || res.Reprompt {
		t.Fatalf("reset result: %+v", res)
	}
	if sess.Answers["technology"] != "go" {
		t.Error("reset dropped recorded answers")
	}
}

func TestStep_NilAnswersMapSelfHeals(t *testing.T) {
	e := newTestEngine(t, FlowConversational, ConversationalSteps())
	sess := &Session{ID: uuid.NewString(), Flow: FlowConversational, CurrentStep: 1}

	res := e.Step(context.Background(), sess, "sql")
	if res.Reprompt || res.Done {
		t.Fatalf("unexpected result: %+v", res)
	}
	if sess.Answers["technology"] != "sql" {
		t.Error("answer not recorded after healing the map")
	}
}

func TestGuided_TenStepsToTerminal(t *testing.T) {
	e := newTestEngine(t, FlowGuided, GuidedSteps())
	if e.Steps() != 10 {
		t.Fatalf("guided flow has %d steps, want 10", e.Steps())
	}
	sess, _ := e.Start(uuid.NewString())
	ctx := context.Background()

	answers := []string{
		"career change",
		"any",
		"excel",
		"python, sql",
		"beginner",
		"data pipeline",
		"steady",
		"6",
		"medium",
		"yes",
	}
	var res Result
	for i, a := range answers {
		res = e.Step(ctx, sess, a)
		if i < len(answers)-1 && (res.Done || res.Reprompt) {
			t.Fatalf("step %d: %+v", i+1, res)
		}
	}

	if !res.Done || res.Reply == nil {
		t.Fatalf("guided flow did not finish: %+v", res)
	}
	if res.Reply.Source != advisor.SourceFallback {
		t.Errorf("Source = %q without a provider", res.Reply.Source)
	}
}

func TestBuildProfile_FoldsAnswers(t *testing.T) {
	e := newTestEngine(t, FlowGuided, GuidedSteps())
	sess := &Session{
		Answers: map[string]string{
			"goal":          "promotion",
			"industry":      "finance",
			"target_skills": "go, docker",
			"level":         "intermediate",
			"pace":          "fast",
			"budget":        "high",
			"certification": "yes",
		},
	}

	p := e.BuildProfile(sess)
	if p.ExperienceLevel != catalog.LevelIntermediate {
		t.Errorf("ExperienceLevel = %q", p.ExperienceLevel)
	}
	if len(p.Goals) != 1 || p.Goals[0] != "promotion" {
		t.Errorf("Goals = %v", p.Goals)
	}
	if len(p.Skills) != 2 {
		t.Errorf("Skills = %v", p.Skills)
	}
	if p.BudgetRange != "high" {
		t.Errorf("BudgetRange = %q", p.BudgetRange)
	}
	if !p.CertificationRequired {
		t.Error("CertificationRequired = false")
	}
	if p.LearningPace != "fast" {
		t.Errorf("LearningPace = %q", p.LearningPace)
	}
}
