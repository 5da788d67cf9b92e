package intent

import "testing"

func TestClassify_Greeting(t *testing.T) {
	c := NewDefaultClassifier()
	got := c.Classify("Hello there!")
	if got.Name != Greeting {
		t.Errorf("got intent %q, want %q", got.Name, Greeting)
	}
	if got.MatchedPattern != "hello" {
		t.Errorf("got pattern %q, want %q", got.MatchedPattern, "hello")
	}
	if got.Confidence != 1.0 {
		t.Errorf("got confidence %f, want 1.0", got.Confidence)
	}
}

func TestClassify_CaseInsensitive(t *testing.T) {
	c := NewDefaultClassifier()
	upper := c.Classify("RECOMMEND ME A COURSE")
	lower := c.Classify("recommend me a course")
	if upper.Name != lower.Name || upper.Name != CourseRecommendation {
		t.Errorf("case changed classification: upper=%q lower=%q", upper.Name, lower.Name)
	}
}

func TestClassify_TechnologyFallback(t *testing.T) {
	c := NewDefaultClassifier()
	got := c.Classify("I want to learn python for data science")
	if got.Name != CourseRecommendation {
		t.Errorf("got intent %q, want %q", got.Name, CourseRecommendation)
	}
	if got.Technology != "python" {
		t.Errorf("got technology %q, want %q", got.Technology, "python")
	}
	if got.Confidence < 0.9 {
		t.Errorf("got confidence %f, want >= 0.9", got.Confidence)
	}
}

func TestClassify_Unknown(t *testing.T) {
	c := NewDefaultClassifier()
	got := c.Classify("zzz qqq")
	if got.Name != Unknown {
		t.Errorf("got intent %q, want %q", got.Name, Unknown)
	}
	if got.Confidence != 0.1 {
		t.Errorf("got confidence %f, want 0.1", got.Confidence)
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	// The text fires both greeting ("hi") and course_recommendation
	// ("course"); the earlier greeting rule wins. Declaration order is
	// the contract.
	c := NewDefaultClassifier()
	got := c.Classify("hi, which course should I take?")
	if got.Name != Greeting {
		t.Errorf("got intent %q, want %q (first match wins)", got.Name, Greeting)
	}
}

func TestClassify_GreetingTokensNeedWordBoundaries(t *testing.T) {
	c := NewDefaultClassifier()
	tests := []struct {
		text string
		want Name
	}{
		// "hi" inside "something" must not fire the greeting rule.
		{"recommend me something", CourseRecommendation},
		{"machine learning", CourseRecommendation},
		{"this makes no sense at all", Unknown},
		{"they said so", Unknown},
		{"hi", Greeting},
		{"hi there", Greeting},
		{"say hi", Greeting},
	}
	for _, tt := range tests {
		got := c.Classify(tt.text)
		if got.Name != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.text, got.Name, tt.want)
		}
	}
}

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		text, pattern string
		want          bool
	}{
		{"something", "hi", false},
		{"hi there", "hi", true},
		{"oh hi!", "hi", true},
		{"they", "hey", false},
		{"hey you", "hey", true},
		{"i need a study plan", "study plan", true},
		{"hit hi", "hi", true},
		{"", "hi", false},
	}
	for _, tt := range tests {
		if got := containsPattern(tt.text, tt.pattern); got != tt.want {
			t.Errorf("containsPattern(%q, %q) = %v, want %v", tt.text, tt.pattern, got, tt.want)
		}
	}
}

func TestClassify_ConfidenceRange(t *testing.T) {
	c := NewDefaultClassifier()
	inputs := []string{
		"", "   ", "hello", "recommend a course on go", "schedule",
		"random words without meaning", "HELP", "docker and kubernetes",
	}
	for _, in := range inputs {
		got := c.Classify(in)
		if got.Confidence < 0 || got.Confidence > 1 {
			t.Errorf("Classify(%q) confidence %f out of [0,1]", in, got.Confidence)
		}
	}
}

func TestClassify_EmptyInput(t *testing.T) {
	c := NewDefaultClassifier()
	got := c.Classify("")
	if got.Name != Unknown {
		t.Errorf("got intent %q for empty input, want %q", got.Name, Unknown)
	}
}

func TestPatternConfidence_PartialWords(t *testing.T) {
	tests := []struct {
		pattern string
		text    string
		want    float64
	}{
		{"study plan", "i need a study plan", 1.0},
		{"hello", "hello world", 1.0},
		{"good morning", "morning", 0.5},
	}
	for _, tt := range tests {
		got := patternConfidence(tt.pattern, tt.text)
		if got != tt.want {
			t.Errorf("patternConfidence(%q, %q) = %f, want %f", tt.pattern, tt.text, got, tt.want)
		}
	}
}
