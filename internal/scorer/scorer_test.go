package scorer

import (
	"reflect"
	"testing"

	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/learner"
)

func basicCourse(id, title string) catalog.Course {
	return catalog.Course{ID: id, Title: title, Level: catalog.LevelBeginner}
}

func TestScore_SkillAndLevelMatch(t *testing.T) {
	p := &learner.Profile{
		Skills:          []string{"javascript"},
		ExperienceLevel: catalog.LevelBeginner,
	}
	c := catalog.Course{
		ID:     "js-1",
		Title:  "JS Basics",
		Level:  catalog.LevelBeginner,
		Skills: []string{"javascript"},
	}

	score, reasons := Score(p, c)
	if score < 5 {
		t.Errorf("got score %f, want >= 5 (skill +3, level +2)", score)
	}
	if len(reasons) < 2 {
		t.Errorf("got %d reasons, want >= 2: %v", len(reasons), reasons)
	}
}

func TestScore_SkillCrossMatch(t *testing.T) {
	// Substring match works in both directions, case-insensitively.
	p := &learner.Profile{Skills: []string{"JavaScript Frameworks"}}
	c := catalog.Course{ID: "a", Skills: []string{"javascript"}}

	score, _ := Score(p, c)
	if score < 3 {
		t.Errorf("got score %f, want >= 3 for cross-direction skill match", score)
	}
}

func TestScore_InterestInDescription(t *testing.T) {
	p := &learner.Profile{Interests: []string{"automation"}}
	c := catalog.Course{ID: "a", Description: "Learn scripting and automation with small projects."}

	score, reasons := Score(p, c)
	if score != 1 {
		t.Errorf("got score %f, want 1 for a single interest hit", score)
	}
	if len(reasons) != 1 {
		t.Errorf("got %d reasons, want 1", len(reasons))
	}
}

func TestScore_PopularityCapped(t *testing.T) {
	p := &learner.Profile{}
	small := catalog.Course{ID: "a", EnrolledCount: 500}
	huge := catalog.Course{ID: "b", EnrolledCount: 900000}

	s1, _ := Score(p, small)
	s2, _ := Score(p, huge)
	if s1 != 0.5 {
		t.Errorf("got %f for 500 enrolled, want 0.5", s1)
	}
	if s2 != 2 {
		t.Errorf("got %f for 900000 enrolled, want capped 2", s2)
	}
}

func TestScore_RatingCanBeNegative(t *testing.T) {
	p := &learner.Profile{}
	c := catalog.Course{ID: "a", RatingAverage: 2.0}

	score, _ := Score(p, c)
	if score != -0.5 {
		t.Errorf("got %f for rating 2.0, want -0.5", score)
	}
}

func TestScore_CompletedPenaltyExactlyTen(t *testing.T) {
	c := catalog.Course{ID: "done", Skills: []string{"go"}, EnrolledCount: 1000}

	fresh := &learner.Profile{Skills: []string{"go"}}
	repeat := &learner.Profile{Skills: []string{"go"}, CompletedCourseIDs: []string{"done"}}

	sFresh, _ := Score(fresh, c)
	sRepeat, reasons := Score(repeat, c)

	if diff := sFresh - sRepeat; diff != 10 {
		t.Errorf("completed penalty = %f, want exactly 10", diff)
	}
	found := false
	for _, r := range reasons {
		if r == "You already completed this course" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a completed-course reason, got %v", reasons)
	}
}

func TestRank_Deterministic(t *testing.T) {
	p := &learner.Profile{Skills: []string{"python"}, Interests: []string{"data"}}
	courses := catalog.SeedCourses()

	first := Rank(p, courses, 8)
	second := Rank(p, courses, 8)
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different rankings")
	}
}

func TestRank_StableTies(t *testing.T) {
	// Three courses with identical metadata score identically; input
	// order must survive the sort.
	p := &learner.Profile{}
	courses := []catalog.Course{
		basicCourse("a", "First"),
		basicCourse("b", "Second"),
		basicCourse("c", "Third"),
	}

	ranked := Rank(p, courses, 0)
	wantOrder := []string{"a", "b", "c"}
	for i, w := range wantOrder {
		if ranked[i].Course.ID != w {
			t.Errorf("position %d: got %q, want %q (ties must preserve input order)", i, ranked[i].Course.ID, w)
		}
	}
}

func TestRank_DescendingAndTopK(t *testing.T) {
	p := &learner.Profile{Skills: []string{"python"}}
	courses := catalog.SeedCourses()

	ranked := Rank(p, courses, 3)
	if len(ranked) != 3 {
		t.Fatalf("got %d results, want 3", len(ranked))
	}
	for i := 1; i < len(ranked); i++ {
		if ranked[i].Score > ranked[i-1].Score {
			t.Errorf("scores not descending at %d: %f > %f", i, ranked[i].Score, ranked[i-1].Score)
		}
	}
}

func TestRank_DefaultK(t *testing.T) {
	p := &learner.Profile{}
	ranked := Rank(p, catalog.SeedCourses(), 0)
	if len(ranked) != DefaultTopK {
		t.Errorf("got %d results for k=0, want %d", len(ranked), DefaultTopK)
	}
}

func TestRank_CompletedCourseStillSurfaces(t *testing.T) {
	// Demotion, not exclusion: with only one course, the completed one
	// still comes back.
	p := &learner.Profile{CompletedCourseIDs: []string{"only"}}
	courses := []catalog.Course{basicCourse("only", "Only Course")}

	ranked := Rank(p, courses, 5)
	if len(ranked) != 1 || ranked[0].Course.ID != "only" {
		t.Errorf("completed course was filtered out, want demoted but present")
	}
}

func TestScoreGuided_GoalAndIndustry(t *testing.T) {
	p := &learner.Profile{
		Goals:              []string{"machine learning"},
		IndustryPreference: []string{"finance"},
	}
	c := catalog.Course{
		ID:          "ds",
		Title:       "Machine Learning Bootcamp",
		Description: "Applied models for finance teams.",
		Skills:      []string{"machine learning"},
	}

	score, reasons := ScoreGuided(p, c)
	// Goal in title: +5. Industry in description: +4.
	if score < 9 {
		t.Errorf("got score %f, want >= 9", score)
	}
	if len(reasons) < 2 {
		t.Errorf("got %d reasons, want >= 2: %v", len(reasons), reasons)
	}
}

func TestScoreGuided_ClampedToHundred(t *testing.T) {
	p := &learner.Profile{
		Skills:                []string{"python", "machine learning", "deep learning", "ai", "pandas"},
		Interests:             []string{"data", "machine", "learning", "models"},
		Goals:                 []string{"machine learning", "deep learning", "python", "ai"},
		IndustryPreference:    []string{"data"},
		ProjectTypePreference: []string{"machine learning"},
		BudgetRange:           "any",
		ExperienceLevel:       catalog.LevelAdvanced,
	}
	c := catalog.Course{
		ID:            "max",
		Title:         "Python Machine Learning and Deep Learning with AI",
		Description:   "data machine learning models deep learning python ai data machine learning",
		Category:      "Data Science",
		Level:         catalog.LevelAdvanced,
		Skills:        []string{"python", "machine learning", "deep learning", "ai", "pandas"},
		EnrolledCount: 50000,
		RatingAverage: 5,
	}

	score, _ := ScoreGuided(p, c)
	if score > 100 {
		t.Errorf("got score %f, want clamped to 100", score)
	}
}

func TestScoreGuided_ClampedAtZero(t *testing.T) {
	p := &learner.Profile{CompletedCourseIDs: []string{"done"}}
	c := catalog.Course{ID: "done", RatingAverage: 2}

	score, _ := ScoreGuided(p, c)
	if score != 0 {
		t.Errorf("got score %f, want clamped to 0", score)
	}
}

func TestBudgetFits(t *testing.T) {
	tests := []struct {
		budget string
		price  float64
		want   bool
	}{
		{"free", 0, true},
		{"free", 10, false},
		{"low", 49, true},
		{"low", 50, false},
		{"medium", 75, true},
		{"medium", 49, false},
		{"high", 500, true},
		{"", 10, false},
	}
	for _, tt := range tests {
		if got := budgetFits(tt.budget, tt.price); got != tt.want {
			t.Errorf("budgetFits(%q, %f) = %v, want %v", tt.budget, tt.price, got, tt.want)
		}
	}
}

func TestPaceFits(t *testing.T) {
	tests := []struct {
		pace     string
		duration int
		want     bool
	}{
		{"fast", 600, true},
		{"fast", 1200, false},
		{"steady", 1200, true},
		{"relaxed", 1800, true},
		{"relaxed", 600, false},
		{"", 600, false},
	}
	for _, tt := range tests {
		if got := paceFits(tt.pace, tt.duration); got != tt.want {
			t.Errorf("paceFits(%q, %d) = %v, want %v", tt.pace, tt.duration, got, tt.want)
		}
	}
}
