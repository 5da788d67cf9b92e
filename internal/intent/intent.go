package intent

// Name identifies the classified purpose of a user message.
type Name string

const (
	Greeting             Name = "greeting"
	CourseRecommendation Name = "course_recommendation"
	StudySchedule        Name = "study_schedule"
	ProgressReport       Name = "progress_report"
	LearningTips         Name = "learning_tips"
	Help                 Name = "help"
	Unknown              Name = "unknown"
)

// Intent is the result of classifying a message.
type Intent struct {
	Name       Name
	Confidence float64 // 0.0 – 1.0
	// MatchedPattern is the trigger that fired, for debugging and event logs.
	MatchedPattern string
	// Technology is set when the technology keyword table produced the match
	// (e.g. "python"). Empty for rule-table matches.
	Technology string
}

// Rule binds an intent to its ordered trigger patterns.
type Rule struct {
	Name     Name
	Patterns []string
}

// Technology groups keyword aliases under a canonical technology name.
type Technology struct {
	Name     string
	Keywords []string
}

// DefaultRules returns the intent rule table in priority order.
//
// Rules are evaluated in declaration order and the first match wins.
// A later, more specific intent can never override an earlier coarse
// match that also fires; that is intentional and keeps classification
// predictable. Patterns match on word boundaries, so short greeting
// tokens do not fire inside ordinary words.
func DefaultRules() []Rule {
	return []Rule{
		{Name: Greeting, Patterns: []string{
			"hello", "hi", "hey", "good morning", "good afternoon", "good evening",
		}},
		{Name: CourseRecommendation, Patterns: []string{
			"recommend", "course", "suggest", "what should i learn", "looking for",
		}},
		{Name: StudySchedule, Patterns: []string{
			"schedule", "study plan", "how many hours", "hours per week", "time table",
		}},
		{Name: ProgressReport, Patterns: []string{
			"progress", "how am i doing", "completed so far", "my stats",
		}},
		{Name: LearningTips, Patterns: []string{
			"tips", "advice", "how to study", "stay motivated", "motivation",
		}},
		{Name: Help, Patterns: []string{
			"help", "what can you do", "how does this work",
		}},
	}
}

// DefaultTechnologies returns the secondary keyword table consulted when no
// rule matched. A hit classifies as course_recommendation at 0.9 confidence
// with the canonical technology attached.
func DefaultTechnologies() []Technology {
	return []Technology{
		{Name: "python", Keywords: []string{"python", "django", "data science", "machine learning", "ai"}},
		{Name: "javascript", Keywords: []string{"javascript", "typescript", "react", "node", "frontend", "web development"}},
		{Name: "go", Keywords: []string{"golang", "go backend"}},
		{Name: "sql", Keywords: []string{"sql", "database", "data analysis"}},
		{Name: "devops", Keywords: []string{"devops", "docker", "kubernetes", "cloud", "aws"}},
		{Name: "design", Keywords: []string{"ux", "ui design", "figma"}},
		{Name: "mobile", Keywords: []string{"flutter", "mobile app", "android", "ios"}},
	}
}
