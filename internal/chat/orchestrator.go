package chat

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/apetrov/coursemate/internal/advisor"
	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/intent"
	"github.com/apetrov/coursemate/internal/learner"
	"github.com/apetrov/coursemate/internal/questionnaire"
	"github.com/apetrov/coursemate/internal/scorer"
	"github.com/apetrov/coursemate/internal/store"
)

// apologyText replaces any handler failure. Failure masking is the
// documented contract of HandleMessage, not a silent crash.
const apologyText = "Sorry, something went wrong on my side. Let's try that again. You can also type help to see what I can do."

// Message is the orchestrator's reply to one chat turn.
type Message struct {
	Text string

	// Intent is the classification the turn was routed on.
	Intent intent.Intent

	// Source is set when the advisor produced the text.
	Source advisor.Source

	// Options are suggested answers when a questionnaire step is active.
	Options []string

	// Scored carries ranked courses when the turn produced recommendations.
	Scored []scorer.ScoredCourse

	// QuestionnaireDone is true on the turn a questionnaire finished.
	QuestionnaireDone bool
}

// Config wires the orchestrator's collaborators. Courses and Advisor are
// required; Classifier defaults to the rule classifier, Sessions to an
// in-memory store, Events to none.
type Config struct {
	Classifier intent.Classifier
	Courses    catalog.Provider
	Advisor    *advisor.Advisor
	Sessions   store.SessionRepo
	Events     store.EventRepo
}

// Orchestrator routes chat turns. Classification and scoring are pure;
// the only shared state is the session store, so one orchestrator serves
// many sessions concurrently.
type Orchestrator struct {
	classifier intent.Classifier
	courses    catalog.Provider
	adv        *advisor.Advisor
	engine     *questionnaire.Engine
	sessions   store.SessionRepo
	events     store.EventRepo
}

// New creates an Orchestrator.
func New(cfg Config) *Orchestrator {
	classifier := cfg.Classifier
	if classifier == nil {
		classifier = intent.NewDefaultClassifier()
	}
	sessions := cfg.Sessions
	if sessions == nil {
		sessions = newMemSessions()
	}
	return &Orchestrator{
		classifier: classifier,
		courses:    cfg.Courses,
		adv:        cfg.Advisor,
		engine:     questionnaire.NewEngine(questionnaire.FlowConversational, questionnaire.ConversationalSteps(), cfg.Courses, cfg.Advisor),
		sessions:   sessions,
		events:     cfg.Events,
	}
}

// HandleMessage routes one chat turn and always returns a message.
//
// An active questionnaire session for sessionID takes priority over
// intent dispatch. Any panic inside a handler is replaced with a fixed
// apology and recorded; HandleMessage never propagates a failure.
func (o *Orchestrator) HandleMessage(ctx context.Context, sessionID, text string, profile *learner.Profile) (msg Message) {
	if profile == nil {
		profile = &learner.Profile{}
	}
	in := o.classifier.Classify(text)
	msg.Intent = in

	failed := false
	var failure string
	defer func() {
		if r := recover(); r != nil {
			failed = true
			failure = fmt.Sprint(r)
			msg = Message{Text: apologyText, Intent: in}
		}
		o.logTurn(ctx, sessionID, in, msg, failed, failure)
	}()

	if sess := o.activeSession(ctx, sessionID); sess != nil {
		return o.continueQuestionnaire(ctx, sess, text, in)
	}

	switch in.Name {
	case intent.Greeting:
		msg.Text = greetingText
	case intent.CourseRecommendation:
		msg = o.recommend(ctx, sessionID, in, profile)
	case intent.StudySchedule:
		msg.Text = scheduleText(profile)
	case intent.ProgressReport:
		msg.Text = o.progressText(ctx, profile)
	case intent.LearningTips:
		msg.Text = tipsText(profile)
	case intent.Help:
		msg.Text = helpText
	default:
		msg.Text = unknownText
	}
	return msg
}

// activeSession returns the non-terminal questionnaire session for the
// chat session, or nil. Store errors degrade to "no session".
func (o *Orchestrator) activeSession(ctx context.Context, sessionID string) *questionnaire.Session {
	stored, err := o.sessions.Get(ctx, sessionID)
	if err != nil || stored == nil || stored.Terminal {
		return nil
	}
	return &questionnaire.Session{
		ID:           stored.ID,
		Flow:         stored.Flow,
		CurrentStep:  stored.CurrentStep,
		Answers:      stored.Answers,
		Terminal:     stored.Terminal,
		LastActivity: stored.LastActivity,
	}
}

func (o *Orchestrator) continueQuestionnaire(ctx context.Context, sess *questionnaire.Session, text string, in intent.Intent) Message {
	res := o.engine.Step(ctx, sess, text)
	o.putSession(ctx, sess)
	if res.Done {
		if err := o.sessions.Delete(ctx, sess.ID); err != nil {
			fmt.Fprintf(os.Stderr, "warning: delete session: %v\n", err)
		}
		return Message{
			Text:              res.Reply.Text,
			Intent:            in,
			Source:            res.Reply.Source,
			Scored:            res.Reply.Scored,
			QuestionnaireDone: true,
		}
	}
	return Message{Text: res.Prompt, Intent: in, Options: res.Options}
}

// recommend answers a course_recommendation turn. With a usable profile
// or a detected technology it ranks and asks the advisor directly; a
// blank profile starts the conversational questionnaire instead.
func (o *Orchestrator) recommend(ctx context.Context, sessionID string, in intent.Intent, profile *learner.Profile) Message {
	// Augment a copy so one turn's detected technology never leaks
	// into the caller-held profile.
	profile = profile.Clone()
	if in.Technology != "" {
		profile.AddInterests(in.Technology)
		profile.AddSkills(in.Technology)
	}

	if len(profile.Skills) == 0 && len(profile.Interests) == 0 {
		sess, res := o.engine.Start(sessionID)
		o.putSession(ctx, sess)
		return Message{Text: res.Prompt, Intent: in, Options: res.Options}
	}

	var courses []catalog.Course
	if o.courses != nil {
		courses, _ = o.courses.List(ctx, catalog.Filter{})
	}
	reply := o.adv.Generate(ctx, profile, courses, recommendQuery(in))
	return Message{Text: reply.Text, Intent: in, Source: reply.Source, Scored: reply.Scored}
}

func (o *Orchestrator) putSession(ctx context.Context, sess *questionnaire.Session) {
	err := o.sessions.Put(ctx, &store.Session{
		ID:           sess.ID,
		Flow:         sess.Flow,
		CurrentStep:  sess.CurrentStep,
		Answers:      sess.Answers,
		Terminal:     sess.Terminal,
		LastActivity: sess.LastActivity,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: save session: %v\n", err)
	}
}

func (o *Orchestrator) logTurn(ctx context.Context, sessionID string, in intent.Intent, msg Message, failed bool, failure string) {
	if o.events == nil {
		return
	}
	err := o.events.AppendChat(ctx, store.ChatEventData{
		SessionID:      sessionID,
		Intent:         string(in.Name),
		MatchedPattern: in.MatchedPattern,
		Confidence:     in.Confidence,
		ReplySource:    string(msg.Source),
		HandlerFailed:  failed,
		ErrorMessage:   failure,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: log chat event: %v\n", err)
	}
}

// memSessions is the default SessionRepo when no store is wired, for
// one-shot surfaces and tests.
type memSessions struct {
	mu sync.Mutex
	m  map[string]*store.Session
}

func newMemSessions() *memSessions {
	return &memSessions{m: make(map[string]*store.Session)}
}

func (s *memSessions) Get(ctx context.Context, sessionID string) (*store.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.m[sessionID]
	if !ok {
		return nil, nil
	}
	cp := *sess
	return &cp, nil
}

func (s *memSessions) Put(ctx context.Context, sess *store.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *sess
	s.m[sess.ID] = &cp
	return nil
}

func (s *memSessions) Delete(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.m, sessionID)
	return nil
}

// NewSessionID returns a fresh chat session identifier.
func NewSessionID() string { return uuid.NewString() }
