package advisor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/learner"
	"github.com/apetrov/coursemate/internal/llm"
)

// newTestAdvisor pins variant selection to the first option so output
// is predictable.
func newTestAdvisor(provider llm.Provider) *Advisor {
	a := New(provider, DefaultConfig())
	a.pick = func(n int) int { return 0 }
	return a
}

func testProfile() *learner.Profile {
	return &learner.Profile{
		Skills:          []string{"python"},
		ExperienceLevel: catalog.LevelBeginner,
	}
}

func TestGenerate_RemotePath(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"message":"Take Python for Everyone first."}`),
	})
	a := newTestAdvisor(mock)

	reply := a.Generate(context.Background(), testProfile(), catalog.SeedCourses(), "what should I learn?")
	if reply.Source != SourceRemote {
		t.Fatalf("got source %q, want %q", reply.Source, SourceRemote)
	}
	if reply.Text != "Take Python for Everyone first." {
		t.Errorf("got text %q", reply.Text)
	}
	if len(reply.Scored) == 0 {
		t.Error("remote reply should still carry scored courses")
	}
}

func TestGenerate_FallbackWhenProviderAlwaysFails(t *testing.T) {
	// Empty mock queue: every attempt returns ErrProviderUnavailable.
	mock := llm.NewMockProvider()
	a := newTestAdvisor(mock)

	reply := a.Generate(context.Background(), testProfile(), catalog.SeedCourses(), "what should I learn?")
	if reply.Source != SourceFallback {
		t.Fatalf("got source %q, want %q", reply.Source, SourceFallback)
	}
	if reply.Text == "" {
		t.Fatal("fallback text must be non-empty")
	}
	if mock.CallCount() != 1 {
		t.Errorf("got %d remote attempts, want exactly 1", mock.CallCount())
	}
}

func TestGenerate_NilProviderUsesFallback(t *testing.T) {
	a := newTestAdvisor(nil)
	reply := a.Generate(context.Background(), testProfile(), catalog.SeedCourses(), "anything")
	if reply.Source != SourceFallback || reply.Text == "" {
		t.Fatalf("got %+v, want non-empty fallback", reply)
	}
}

func TestGenerate_FallbackOnMalformedRemoteReply(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"message":""}`),
	})
	a := newTestAdvisor(mock)

	reply := a.Generate(context.Background(), testProfile(), catalog.SeedCourses(), "q")
	if reply.Source != SourceFallback {
		t.Fatalf("empty remote message should fall back, got %q", reply.Source)
	}
}

func TestGenerate_OutageCachedThenRetried(t *testing.T) {
	mock := llm.NewMockProvider()
	a := newTestAdvisor(mock)

	current := time.Unix(1700000000, 0)
	clock := func() time.Time { return current }
	a.now = clock
	a.avail.now = clock

	// First call attempts remote and fails.
	a.Generate(context.Background(), testProfile(), catalog.SeedCourses(), "q")
	if mock.CallCount() != 1 {
		t.Fatalf("got %d attempts, want 1", mock.CallCount())
	}

	// Within the TTL the cached outage suppresses the remote path.
	current = current.Add(30 * time.Second)
	a.Generate(context.Background(), testProfile(), catalog.SeedCourses(), "q")
	if mock.CallCount() != 1 {
		t.Fatalf("cached outage should skip remote, got %d attempts", mock.CallCount())
	}

	// After the TTL the next call retries the remote.
	current = current.Add(a.cfg.UnavailableTTL)
	a.Generate(context.Background(), testProfile(), catalog.SeedCourses(), "q")
	if mock.CallCount() != 2 {
		t.Fatalf("expected remote retry after TTL, got %d attempts", mock.CallCount())
	}
}

func TestGenerate_EmptyCatalogStillAnswers(t *testing.T) {
	a := newTestAdvisor(nil)
	reply := a.Generate(context.Background(), testProfile(), nil, "q")
	if reply.Text == "" {
		t.Fatal("empty catalog must still produce text")
	}
}

func TestGenerateGuided_GoalTemplate(t *testing.T) {
	a := newTestAdvisor(nil)
	p := testProfile()
	p.AddGoals("career change")

	reply := a.GenerateGuided(context.Background(), p, catalog.SeedCourses(), "career change", "python")
	if reply.Source != SourceFallback {
		t.Fatalf("got source %q, want fallback", reply.Source)
	}
	if reply.Text == "" {
		t.Fatal("guided fallback must be non-empty")
	}
	// The goal-keyed template should be selected.
	if !strings.Contains(reply.Text, "Switching careers is a big move") {
		t.Errorf("guided narrative missing goal template, got:\n%s", reply.Text)
	}
}

func TestFallback_ReasonsIncluded(t *testing.T) {
	a := newTestAdvisor(nil)
	reply := a.Generate(context.Background(), testProfile(), catalog.SeedCourses(), "q")
	if !strings.Contains(reply.Text, "Matches your skill") && !strings.Contains(reply.Text, "Popular choice") {
		t.Errorf("fallback should list reasons, got:\n%s", reply.Text)
	}
}
