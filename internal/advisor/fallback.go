package advisor

import (
	"fmt"
	"strings"

	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/learner"
	"github.com/apetrov/coursemate/internal/scorer"
)

// Fallback text variants. The pick function chooses among them for
// variety; course selection and ordering stay fully deterministic.
var fallbackOpenings = []string{
	"Here's what I found for you:",
	"Based on your profile, these courses stand out:",
	"Good news: the catalog has solid matches for you.",
}

var fallbackClosings = []string{
	"Want a study schedule for any of these? Just ask.",
	"Tell me more about your goals and I can narrow this down.",
	"Ask me about any course for more detail.",
}

// levelIntros keys narrative text by experience level.
var levelIntros = map[catalog.Level]string{
	catalog.LevelBeginner:     "Since you're starting out, I've favored courses that assume no prior experience.",
	catalog.LevelIntermediate: "You already have a base to build on, so these picks go beyond the basics.",
	catalog.LevelAdvanced:     "These are in-depth courses that match your advanced background.",
}

// goalIntros keys the guided-flow narrative by goal category.
var goalIntros = map[string]string{
	"career change": "Switching careers is a big move, so this plan front-loads job-ready fundamentals.",
	"promotion":     "To level up in your current role, these courses deepen what you already use.",
	"side project":  "For building things on the side, these are practical, project-driven picks.",
	"curiosity":     "Learning for its own sake is the best reason. These courses reward exploration.",
	"certification": "These picks line up with recognized certificates employers look for.",
	"freelancing":   "To freelance with confidence you need breadth. This plan covers it.",
}

// fallback builds the deterministic reply for free-form queries.
// It always returns non-empty text, even for an empty course list.
func (a *Advisor) fallback(p *learner.Profile, scored []scorer.ScoredCourse, query string) string {
	if len(scored) == 0 {
		return "I couldn't find matching courses for that yet. " +
			"Try telling me a technology you're interested in, like \"python\" or \"javascript\"."
	}

	var b strings.Builder
	b.WriteString(fallbackOpenings[a.pick(len(fallbackOpenings))])
	b.WriteString("\n\n")

	if intro, ok := levelIntros[p.ExperienceLevel]; ok {
		b.WriteString(intro)
		b.WriteString("\n\n")
	}

	writeCourseList(&b, scored)

	b.WriteString("\n")
	b.WriteString(fallbackClosings[a.pick(len(fallbackClosings))])
	return b.String()
}

// fallbackGuided builds the terminal questionnaire narrative, keyed by
// the matched goal category.
func (a *Advisor) fallbackGuided(p *learner.Profile, scored []scorer.ScoredCourse, goal, technology string) string {
	var b strings.Builder

	b.WriteString("Your personalized learning plan is ready.\n\n")

	if intro, ok := goalIntros[strings.ToLower(goal)]; ok {
		b.WriteString(intro)
		b.WriteString("\n\n")
	} else if technology != "" {
		fmt.Fprintf(&b, "I focused on %s, since that's what you want to learn.\n\n", technology)
	}

	if len(scored) == 0 {
		b.WriteString("The catalog does not have a strong match yet. Check back soon, new courses are added regularly.")
		return b.String()
	}

	writeCourseList(&b, scored)

	if p.LearningPace != "" {
		fmt.Fprintf(&b, "\nAt your %s pace, start with the first course and add the next when it feels comfortable.", p.LearningPace)
	} else {
		b.WriteString("\nStart with the first course; the rest build on it.")
	}
	return b.String()
}

func writeCourseList(b *strings.Builder, scored []scorer.ScoredCourse) {
	for i, sc := range scored {
		fmt.Fprintf(b, "%d. %s (%s", i+1, sc.Course.Title, sc.Course.Level)
		if sc.Course.Price > 0 {
			fmt.Fprintf(b, ", $%.0f", sc.Course.Price)
		}
		b.WriteString(")\n")
		for _, reason := range sc.Reasons {
			fmt.Fprintf(b, "   - %s\n", reason)
		}
	}
}
