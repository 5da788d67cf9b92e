package store

import (
	"context"
	"time"

	"github.com/apetrov/coursemate/internal/catalog"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit int       // max results (0 = unlimited)
	After int64     // sequence > After
	From  time.Time // timestamp >= From
	To    time.Time // timestamp <= To
}

// CourseRepo provides access to the stored catalog. It satisfies
// catalog.Provider so the engine can be handed the store directly.
type CourseRepo interface {
	catalog.Provider

	// Seed inserts courses that are not already present, keyed by course ID.
	Seed(ctx context.Context, courses []catalog.Course) (int, error)

	// Count returns the number of stored courses, published or not.
	Count(ctx context.Context) (int, error)
}

// Session is the persisted form of a questionnaire session.
type Session struct {
	ID           string
	Flow         string
	CurrentStep  int
	Answers      map[string]string
	Terminal     bool
	LastActivity time.Time
}

// SessionRepo stores questionnaire sessions between chat turns.
// Get returns (nil, nil) for an unknown session; the engine treats that
// as "start from step 1".
type SessionRepo interface {
	Get(ctx context.Context, sessionID string) (*Session, error)
	Put(ctx context.Context, sess *Session) error
	Delete(ctx context.Context, sessionID string) error
}

// LLMRequestEventData captures a single generative backend call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMRequestEvent is a stored backend call event.
type LLMRequestEvent struct {
	ID           int
	Sequence     int64
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// ChatEventData captures one handled chat turn.
type ChatEventData struct {
	SessionID      string
	Intent         string
	MatchedPattern string
	Confidence     float64
	ReplySource    string
	HandlerFailed  bool
	ErrorMessage   string
}

// ChatEvent is a stored chat turn event.
type ChatEvent struct {
	ID             int
	Sequence       int64
	Timestamp      time.Time
	SessionID      string
	Intent         string
	MatchedPattern string
	Confidence     float64
	ReplySource    string
	HandlerFailed  bool
	ErrorMessage   string
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records a generative backend call.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// AppendChat records a handled chat turn.
	AppendChat(ctx context.Context, data ChatEventData) error

	// QueryLLMEvents returns backend call events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// QueryChatEvents returns chat turn events, newest first.
	QueryChatEvents(ctx context.Context, opts QueryOpts) ([]ChatEvent, error)
}
