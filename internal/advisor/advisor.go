package advisor

import (
	"context"
	"encoding/json"
	"math/rand/v2"
	"time"

	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/learner"
	"github.com/apetrov/coursemate/internal/llm"
	"github.com/apetrov/coursemate/internal/scorer"
)

// Source tags which path produced a reply, so tests assert the path
// instead of inferring it from text.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Reply is the advisor's answer to a query.
type Reply struct {
	Text   string
	Source Source
	Scored []scorer.ScoredCourse
}

// Config tunes the advisor.
type Config struct {
	// Timeout bounds the single remote attempt.
	Timeout time.Duration

	// UnavailableTTL is how long a remote failure suppresses further
	// remote attempts. After the TTL the next call retries the remote.
	UnavailableTTL time.Duration

	// TopK is how many courses feed prompts and fallback replies.
	TopK int

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the advisor defaults.
func DefaultConfig() Config {
	return Config{
		Timeout:        12 * time.Second,
		UnavailableTTL: 2 * time.Minute,
		TopK:           scorer.DefaultTopK,
		MaxTokens:      600,
		Temperature:    0.4,
	}
}

// Advisor produces narrative course advice. The remote path goes through
// an llm.Provider; every remote failure degrades to the deterministic
// fallback. Generate never returns an error.
type Advisor struct {
	provider llm.Provider
	cfg      Config
	avail    *availability

	// pick selects a variant from n fallback text options. Variety only;
	// scoring stays deterministic. Overridable in tests.
	pick func(n int) int

	now func() time.Time
}

// New creates an Advisor. A nil provider is allowed and pins the advisor
// to the fallback path.
func New(provider llm.Provider, cfg Config) *Advisor {
	now := time.Now
	return &Advisor{
		provider: provider,
		cfg:      cfg,
		avail:    newAvailability(cfg.UnavailableTTL, now),
		pick:     func(n int) int { return rand.IntN(n) },
		now:      now,
	}
}

// adviceOutput is the schema-validated remote reply.
type adviceOutput struct {
	Message string `json:"message"`
}

// Generate answers a free-form query about the catalog.
//
// Contract: never errors, always returns non-empty text. Exactly one
// remote attempt per call; any failure (error, timeout, cancellation,
// empty content) switches to the fallback and marks the backend down
// for UnavailableTTL.
func (a *Advisor) Generate(ctx context.Context, profile *learner.Profile, courses []catalog.Course, query string) Reply {
	scored := scorer.Rank(profile, courses, a.cfg.TopK)
	return a.respond(ctx, profile, scored, query, "advice")
}

// GenerateGuided builds the final questionnaire narrative using the
// extended guided scoring. goal and technology select the fallback
// template when the remote path is unavailable.
func (a *Advisor) GenerateGuided(ctx context.Context, profile *learner.Profile, courses []catalog.Course, goal, technology string) Reply {
	scored := scorer.RankGuided(profile, courses, a.cfg.TopK)
	reply := a.respond(ctx, profile, scored, guidedQuery(goal, technology), "questionnaire-summary")
	if reply.Source == SourceFallback {
		reply.Text = a.fallbackGuided(profile, scored, goal, technology)
	}
	return reply
}

func (a *Advisor) respond(ctx context.Context, profile *learner.Profile, scored []scorer.ScoredCourse, query, purpose string) Reply {
	if text, ok := a.tryRemote(ctx, profile, scored, query, purpose); ok {
		return Reply{Text: text, Source: SourceRemote, Scored: scored}
	}
	return Reply{
		Text:   a.fallback(profile, scored, query),
		Source: SourceFallback,
		Scored: scored,
	}
}

// tryRemote makes at most one backend attempt. It reports (text, true)
// on success and (_, false) on any failure, after recording the outage.
func (a *Advisor) tryRemote(ctx context.Context, profile *learner.Profile, scored []scorer.ScoredCourse, query, purpose string) (string, bool) {
	if a.provider == nil || !a.avail.Available() {
		return "", false
	}

	ctx, cancel := context.WithTimeout(llm.WithPurpose(ctx, purpose), a.cfg.Timeout)
	defer cancel()

	req := llm.Request{
		System: adviceSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildAdvicePrompt(profile, scored, query)},
		},
		Schema:      AdviceSchema,
		MaxTokens:   a.cfg.MaxTokens,
		Temperature: a.cfg.Temperature,
	}

	resp, err := a.provider.Generate(ctx, req)
	if err != nil {
		a.avail.MarkDown()
		return "", false
	}

	var out adviceOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil || out.Message == "" {
		a.avail.MarkDown()
		return "", false
	}

	return out.Message, true
}
