package questionnaire

import (
	"strings"

	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/learner"
)

// Flow names stored on sessions.
const (
	FlowConversational = "conversational"
	FlowGuided         = "guided"
)

// ConversationalSteps is the short three-question flow the chat
// orchestrator falls into when a learner asks for a recommendation
// without enough profile detail.
func ConversationalSteps() []Step {
	return []Step{
		{
			Key:      "technology",
			Prompt:   "What would you like to learn? Name a technology or topic, for example python, javascript or design.",
			Validate: nonEmpty("Please name at least one topic."),
			Apply: func(p *learner.Profile, answer string) {
				p.AddInterests(splitList(answer)...)
				p.AddSkills(splitList(answer)...)
			},
		},
		{
			Key:      "level",
			Prompt:   "How experienced are you with it?",
			Options:  levelOptions(),
			Validate: validLevel,
			Apply: func(p *learner.Profile, answer string) {
				p.SetExperienceLevel(catalog.ParseLevel(answer), true)
			},
		},
		{
			Key:      "pace",
			Prompt:   "How fast do you want to go?",
			Options:  []string{"fast", "steady", "relaxed"},
			Validate: oneOf("Please pick a pace.", "fast", "steady", "relaxed"),
			Apply: func(p *learner.Profile, answer string) {
				p.LearningPace = strings.ToLower(answer)
			},
		},
	}
}

// GuidedSteps is the full ten-question flow behind the guided advice
// screen. Every answer feeds the guided scorer.
func GuidedSteps() []Step {
	return []Step{
		{
			Key:      "goal",
			Prompt:   "What is your main goal right now?",
			Options:  []string{"career change", "promotion", "side project", "curiosity", "certification", "freelancing"},
			Validate: nonEmpty("Please tell me what you are aiming for."),
			Apply: func(p *learner.Profile, answer string) {
				p.AddGoals(answer)
			},
		},
		{
			Key:      "industry",
			Prompt:   "Which industry do you want to work in? Say any if you have no preference.",
			Validate: nonEmpty("Please name an industry, or say any."),
			Apply: func(p *learner.Profile, answer string) {
				if !strings.EqualFold(answer, "any") {
					p.IndustryPreference = splitList(answer)
				}
			},
		},
		{
			Key:    "current_skills",
			Prompt: "What skills do you already have? Separate several with commas, or say none.",
			Apply: func(p *learner.Profile, answer string) {
				if !strings.EqualFold(answer, "none") {
					p.CurrentSkills = splitList(answer)
				}
			},
		},
		{
			Key:      "target_skills",
			Prompt:   "What skills do you want to pick up?",
			Validate: nonEmpty("Please name at least one skill."),
			Apply: func(p *learner.Profile, answer string) {
				p.AddSkills(splitList(answer)...)
				p.AddInterests(splitList(answer)...)
			},
		},
		{
			Key:      "level",
			Prompt:   "How would you rate your overall experience?",
			Options:  levelOptions(),
			Validate: validLevel,
			Apply: func(p *learner.Profile, answer string) {
				p.SetExperienceLevel(catalog.ParseLevel(answer), true)
			},
		},
		{
			Key:      "project_type",
			Prompt:   "What kind of project would you like to build? For example a web app, a data pipeline or a mobile app.",
			Validate: nonEmpty("Please describe the kind of project."),
			Apply: func(p *learner.Profile, answer string) {
				p.ProjectTypePreference = splitList(answer)
			},
		},
		{
			Key:      "pace",
			Prompt:   "How fast do you want to go?",
			Options:  []string{"fast", "steady", "relaxed"},
			Validate: oneOf("Please pick a pace.", "fast", "steady", "relaxed"),
			Apply: func(p *learner.Profile, answer string) {
				p.LearningPace = strings.ToLower(answer)
			},
		},
		{
			Key:      "hours",
			Prompt:   "How many hours per week can you commit?",
			Validate: nonEmpty("Please give a rough number of hours."),
			Apply:    nil,
		},
		{
			Key:      "budget",
			Prompt:   "What is your budget?",
			Options:  []string{"free", "low", "medium", "high"},
			Validate: oneOf("Please pick a budget range.", "free", "low", "medium", "high"),
			Apply: func(p *learner.Profile, answer string) {
				p.BudgetRange = strings.ToLower(answer)
			},
		},
		{
			Key:      "certification",
			Prompt:   "Do you need a certificate at the end?",
			Options:  []string{"yes", "no"},
			Validate: oneOf("Please answer yes or no.", "yes", "no"),
			Apply: func(p *learner.Profile, answer string) {
				p.CertificationRequired = strings.EqualFold(answer, "yes")
			},
		},
	}
}

func levelOptions() []string {
	opts := make([]string, 0, len(catalog.AllLevels()))
	for _, l := range catalog.AllLevels() {
		opts = append(opts, string(l))
	}
	return opts
}

func nonEmpty(msg string) func(string) error {
	return func(answer string) error {
		if strings.TrimSpace(answer) == "" {
			return &ValidationError{Msg: msg}
		}
		return nil
	}
}

func oneOf(msg string, allowed ...string) func(string) error {
	return func(answer string) error {
		for _, a := range allowed {
			if strings.EqualFold(strings.TrimSpace(answer), a) {
				return nil
			}
		}
		return &ValidationError{Msg: msg}
	}
}

func validLevel(answer string) error {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "beginner", "intermediate", "advanced", "new", "some", "expert", "none":
		return nil
	}
	return &ValidationError{Msg: "Please pick beginner, intermediate or advanced."}
}

// splitList turns "go, docker and kubernetes" style answers into clean
// items. Commas are the primary separator; a bare answer is one item.
func splitList(answer string) []string {
	parts := strings.Split(answer, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			items = append(items, p)
		}
	}
	return items
}
