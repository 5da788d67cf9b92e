package store

import (
	"context"
	"testing"

	"github.com/apetrov/coursemate/internal/catalog"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCourseSeedAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.CourseRepo()
	ctx := context.Background()

	n, err := repo.Seed(ctx, catalog.SeedCourses())
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	if n != len(catalog.SeedCourses()) {
		t.Errorf("inserted %d, want %d", n, len(catalog.SeedCourses()))
	}

	// Seeding again inserts nothing.
	n, err = repo.Seed(ctx, catalog.SeedCourses())
	if err != nil {
		t.Fatalf("re-seed: %v", err)
	}
	if n != 0 {
		t.Errorf("re-seed inserted %d, want 0", n)
	}

	all, err := repo.List(ctx, catalog.Filter{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != len(catalog.SeedCourses()) {
		t.Errorf("listed %d, want %d", len(all), len(catalog.SeedCourses()))
	}

	beginners, err := repo.List(ctx, catalog.Filter{Level: catalog.LevelBeginner})
	if err != nil {
		t.Fatalf("list beginners: %v", err)
	}
	for _, c := range beginners {
		if c.Level != catalog.LevelBeginner {
			t.Errorf("filter leaked level %q for %s", c.Level, c.ID)
		}
	}

	ds, err := repo.List(ctx, catalog.Filter{Category: "data science"})
	if err != nil {
		t.Fatalf("list category: %v", err)
	}
	if len(ds) == 0 {
		t.Error("case-insensitive category filter returned nothing")
	}
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	// Unknown session is (nil, nil), not an error.
	got, err := repo.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if got != nil {
		t.Fatal("expected nil for unknown session")
	}

	sess := &Session{
		ID:          "sess-1",
		Flow:        "conversational",
		CurrentStep: 2,
		Answers:     map[string]string{"goal": "web development"},
	}
	if err := repo.Put(ctx, sess); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err = repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.CurrentStep != 2 {
		t.Fatalf("got %+v, want step 2", got)
	}
	if got.Answers["goal"] != "web development" {
		t.Errorf("answers not persisted: %v", got.Answers)
	}

	// Update in place.
	sess.CurrentStep = 3
	sess.Terminal = true
	if err := repo.Put(ctx, sess); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = repo.Get(ctx, "sess-1")
	if !got.Terminal || got.CurrentStep != 3 {
		t.Errorf("update lost: %+v", got)
	}

	if err := repo.Delete(ctx, "sess-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	got, _ = repo.Get(ctx, "sess-1")
	if got != nil {
		t.Error("session survived delete")
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "advice",
		InputTokens: 100, OutputTokens: 50, LatencyMs: 20, Success: true,
	})
	if err != nil {
		t.Fatalf("append llm: %v", err)
	}
	err = repo.AppendChat(ctx, ChatEventData{
		SessionID: "sess-1", Intent: "greeting", Confidence: 1.0, ReplySource: "handler",
	})
	if err != nil {
		t.Fatalf("append chat: %v", err)
	}
	err = repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider: "mock", Model: "mock", Purpose: "advice",
		Success: false, ErrorMessage: "backend down",
	})
	if err != nil {
		t.Fatalf("append llm failure: %v", err)
	}

	llmEvents, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query llm: %v", err)
	}
	if len(llmEvents) != 2 {
		t.Fatalf("got %d LLM events, want 2", len(llmEvents))
	}
	// Newest first.
	if llmEvents[0].Success || llmEvents[0].ErrorMessage != "backend down" {
		t.Errorf("newest-first ordering broken: %+v", llmEvents[0])
	}
	if llmEvents[0].Sequence <= llmEvents[1].Sequence {
		t.Errorf("sequence not monotonic: %d then %d", llmEvents[1].Sequence, llmEvents[0].Sequence)
	}

	chatEvents, err := repo.QueryChatEvents(ctx, QueryOpts{Limit: 10})
	if err != nil {
		t.Fatalf("query chat: %v", err)
	}
	if len(chatEvents) != 1 || chatEvents[0].Intent != "greeting" {
		t.Fatalf("got %+v, want one greeting event", chatEvents)
	}
}
