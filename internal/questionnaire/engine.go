package questionnaire

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/apetrov/coursemate/internal/advisor"
	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/learner"
)

// Step defines one questionnaire question.
type Step struct {
	// Key identifies the answer in Session.Answers.
	Key string

	// Prompt is shown to the learner when the step becomes current.
	Prompt string

	// Options are suggested answers. Free text is always accepted
	// unless Validate rejects it.
	Options []string

	// Validate, when set, checks the raw answer. A ValidationError
	// re-prompts the same step instead of advancing.
	Validate func(answer string) error

	// Apply folds the recorded answer into the profile. It runs once,
	// over all recorded answers, when the session turns terminal.
	Apply func(p *learner.Profile, answer string)
}

// ValidationError marks a rejected answer. The engine recovers locally
// by re-prompting; it never propagates.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Session is the caller-owned state of one questionnaire run.
// CurrentStep is 1-based and only increases until it exceeds the step
// count, at which point the session is terminal.
type Session struct {
	ID           string
	Flow         string
	CurrentStep  int
	Answers      map[string]string
	Terminal     bool
	LastActivity time.Time
}

// Result is the outcome of one Step call.
type Result struct {
	// Done is true once the session reached its terminal step.
	Done bool

	// Prompt and Options describe the next question (or the repeated
	// one after a rejected answer). Empty when Done.
	Prompt  string
	Options []string

	// Reprompt is true when the answer was rejected and the same step
	// is being asked again.
	Reprompt bool

	// Reply is the final recommendation payload. Set only when Done.
	Reply *advisor.Reply
}

// Engine drives a fixed ordered step list. The same engine runs the
// 3-step conversational flow and the 10-step guided flow; only the step
// list differs.
type Engine struct {
	flow    string
	steps   []Step
	courses catalog.Provider
	adv     *advisor.Advisor
	now     func() time.Time
}

// NewEngine creates an engine over the given step list.
func NewEngine(flow string, steps []Step, courses catalog.Provider, adv *advisor.Advisor) *Engine {
	return &Engine{
		flow:    flow,
		steps:   steps,
		courses: courses,
		adv:     adv,
		now:     time.Now,
	}
}

// Flow returns the flow name this engine runs.
func (e *Engine) Flow() string { return e.flow }

// Steps returns the number of steps in the flow.
func (e *Engine) Steps() int { return len(e.steps) }

// Start creates a fresh session and returns it with the first prompt.
func (e *Engine) Start(sessionID string) (*Session, Result) {
	sess := &Session{
		ID:           sessionID,
		Flow:         e.flow,
		CurrentStep:  1,
		Answers:      make(map[string]string),
		LastActivity: e.now(),
	}
	first := e.steps[0]
	return sess, Result{Prompt: first.Prompt, Options: first.Options}
}

// Step processes one answer and advances the session.
//
// Self-healing: a nil session, missing answers map or out-of-range step
// resets to step 1 instead of failing. A rejected answer re-prompts the
// same step. Step never returns an error.
func (e *Engine) Step(ctx context.Context, sess *Session, answer string) Result {
	if sess == nil || sess.Terminal || sess.CurrentStep < 1 || sess.CurrentStep > len(e.steps) {
		return e.reset(sess)
	}
	if sess.Answers == nil {
		sess.Answers = make(map[string]string)
	}

	step := e.steps[sess.CurrentStep-1]
	answer = strings.TrimSpace(answer)

	if step.Validate != nil {
		if err := step.Validate(answer); err != nil {
			return Result{
				Prompt:   fmt.Sprintf("%s %s", err.Error(), step.Prompt),
				Options:  step.Options,
				Reprompt: true,
			}
		}
	}

	sess.Answers[step.Key] = answer
	sess.CurrentStep++
	sess.LastActivity = e.now()

	if sess.CurrentStep > len(e.steps) {
		sess.Terminal = true
		return e.finish(ctx, sess)
	}

	next := e.steps[sess.CurrentStep-1]
	return Result{Prompt: next.Prompt, Options: next.Options}
}

// reset returns the session to step 1, keeping any recorded answers.
func (e *Engine) reset(sess *Session) Result {
	if sess != nil {
		sess.CurrentStep = 1
		sess.Terminal = false
		if sess.Answers == nil {
			sess.Answers = make(map[string]string)
		}
	}
	first := e.steps[0]
	return Result{Prompt: first.Prompt, Options: first.Options}
}

// finish builds the profile from all recorded answers and produces the
// final recommendation payload. Only the guided flow uses the extended
// scoring; the conversational flow ranks with the base weights.
func (e *Engine) finish(ctx context.Context, sess *Session) Result {
	profile := e.BuildProfile(sess)

	var courses []catalog.Course
	if e.courses != nil {
		// A listing failure degrades to an empty catalog; the advisor
		// still produces text.
		courses, _ = e.courses.List(ctx, catalog.Filter{})
	}

	var reply advisor.Reply
	if e.flow == FlowGuided {
		reply = e.adv.GenerateGuided(ctx, profile, courses, sess.Answers["goal"], sess.Answers["technology"])
	} else {
		reply = e.adv.Generate(ctx, profile, courses, conversationalQuery(sess.Answers["technology"]))
	}
	return Result{Done: true, Reply: &reply}
}

// conversationalQuery turns the short flow's recorded topic into the
// advisor query.
func conversationalQuery(technology string) string {
	if technology == "" {
		return "Recommend courses that fit my answers."
	}
	return fmt.Sprintf("Recommend courses for learning %s.", technology)
}

// BuildProfile folds every recorded answer into a fresh profile using
// the step accumulators, in step order.
func (e *Engine) BuildProfile(sess *Session) *learner.Profile {
	profile := &learner.Profile{}
	for _, step := range e.steps {
		answer, ok := sess.Answers[step.Key]
		if !ok || answer == "" || step.Apply == nil {
			continue
		}
		step.Apply(profile, answer)
	}
	return profile
}
