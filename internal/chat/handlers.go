package chat

import (
	"context"
	"fmt"
	"strings"

	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/intent"
	"github.com/apetrov/coursemate/internal/learner"
)

const greetingText = "Hey! I'm CourseMate, your course advisor. Tell me what you'd like to learn, or ask me to recommend a course."

const helpText = `Here's what I can do:
- recommend courses: "recommend me a python course"
- build a study schedule: "how many hours should I study"
- report your progress: "how am I doing"
- share learning tips: "any tips to stay motivated"
Just tell me what you want to learn and I'll take it from there.`

const unknownText = "I didn't quite get that. I can recommend courses, plan study schedules and share learning tips. Type help to see everything I can do."

// recommendQuery reconstructs a short advisor query from the classified
// turn, so the prompt carries the detected technology.
func recommendQuery(in intent.Intent) string {
	if in.Technology != "" {
		return fmt.Sprintf("Recommend courses for learning %s.", in.Technology)
	}
	return "Recommend courses that fit my profile."
}

// scheduleText is a deterministic study plan keyed by the learner's pace.
func scheduleText(p *learner.Profile) string {
	hours, sessions := 5, 3
	switch strings.ToLower(p.LearningPace) {
	case "fast":
		hours, sessions = 10, 5
	case "relaxed":
		hours, sessions = 3, 2
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Based on your pace, aim for about %d hours a week, split over %d sessions.\n", hours, sessions)
	b.WriteString("Keep sessions under 90 minutes, and end each one by writing down what you built or learned.")
	if len(p.Goals) > 0 {
		fmt.Fprintf(&b, "\nBlock the first session of the week for your main goal: %s.", p.Goals[0])
	}
	return b.String()
}

// progressText summarizes completed courses against the catalog size.
func (o *Orchestrator) progressText(ctx context.Context, p *learner.Profile) string {
	done := len(p.CompletedCourseIDs)
	if done == 0 {
		return "You haven't completed any courses yet. Pick one and I'll check in on your progress as you go."
	}

	total := 0
	if o.courses != nil {
		if courses, err := o.courses.List(ctx, catalog.Filter{}); err == nil {
			total = len(courses)
		}
	}

	var b strings.Builder
	if total > 0 {
		fmt.Fprintf(&b, "You've completed %d of %d courses in the catalog. ", done, total)
	} else {
		fmt.Fprintf(&b, "You've completed %d courses. ", done)
	}
	switch {
	case done >= 5:
		b.WriteString("That's serious momentum. Time to take on something advanced.")
	case done >= 2:
		b.WriteString("Nice streak. Keep the rhythm going with one course at a time.")
	default:
		b.WriteString("Great start. Finishing the first one is the hardest part.")
	}
	return b.String()
}

// tipsText picks tips that fit the learner's level.
func tipsText(p *learner.Profile) string {
	tips := []string{
		"Study in short, regular sessions instead of weekend marathons.",
		"Build something small with every new concept before moving on.",
		"Explain what you learned to someone else, even a rubber duck.",
	}
	switch p.ExperienceLevel {
	case catalog.LevelAdvanced:
		tips = []string{
			"Read source code of tools you use daily.",
			"Teach or mentor, it exposes the gaps in your own understanding.",
			"Pick projects slightly outside your comfort zone.",
		}
	case catalog.LevelIntermediate:
		tips = []string{
			"Rebuild a tool you use from scratch to see how it really works.",
			"Contribute a small fix to an open source project.",
			"Alternate between courses and self-directed projects.",
		}
	}
	var b strings.Builder
	b.WriteString("A few tips that work:\n")
	for i, tip := range tips {
		fmt.Fprintf(&b, "%d. %s\n", i+1, tip)
	}
	b.WriteString("Consistency beats intensity.")
	return b.String()
}
