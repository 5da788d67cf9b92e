package learner

import (
	"strings"

	"github.com/apetrov/coursemate/internal/catalog"
)

// Profile holds the accumulated facts about a learner that the scorer
// ranks courses against. Callers construct a fresh Profile per scoring
// call; the engine never stores one.
type Profile struct {
	Skills                []string
	Interests             []string
	ExperienceLevel       catalog.Level
	Goals                 []string
	CompletedCourseIDs    []string
	IndustryPreference    []string
	CurrentSkills         []string
	ProjectTypePreference []string
	LearningPace          string
	BudgetRange           string
	CertificationRequired bool
}

// AddSkills appends skills that are not already present (case-insensitive).
// Existing entries are never dropped or rewritten.
func (p *Profile) AddSkills(skills ...string) {
	p.Skills = appendUnique(p.Skills, skills)
}

// AddInterests appends interests that are not already present.
func (p *Profile) AddInterests(interests ...string) {
	p.Interests = appendUnique(p.Interests, interests)
}

// AddGoals appends goals that are not already present.
func (p *Profile) AddGoals(goals ...string) {
	p.Goals = appendUnique(p.Goals, goals)
}

// SetExperienceLevel sets the level only when it has not been set before,
// unless force is true. Questionnaire steps that explicitly target the
// level pass force.
func (p *Profile) SetExperienceLevel(level catalog.Level, force bool) {
	if p.ExperienceLevel == "" || force {
		p.ExperienceLevel = level
	}
}

// Clone returns a copy whose slices are independent of the receiver,
// so augmenting the copy never mutates a caller-held profile.
func (p *Profile) Clone() *Profile {
	cp := *p
	cp.Skills = append([]string(nil), p.Skills...)
	cp.Interests = append([]string(nil), p.Interests...)
	cp.Goals = append([]string(nil), p.Goals...)
	cp.CompletedCourseIDs = append([]string(nil), p.CompletedCourseIDs...)
	cp.IndustryPreference = append([]string(nil), p.IndustryPreference...)
	cp.CurrentSkills = append([]string(nil), p.CurrentSkills...)
	cp.ProjectTypePreference = append([]string(nil), p.ProjectTypePreference...)
	return &cp
}

// HasCompleted reports whether the learner already finished the course.
func (p *Profile) HasCompleted(courseID string) bool {
	for _, id := range p.CompletedCourseIDs {
		if id == courseID {
			return true
		}
	}
	return false
}

func appendUnique(existing []string, add []string) []string {
	for _, a := range add {
		a = strings.TrimSpace(a)
		if a == "" {
			continue
		}
		found := false
		for _, e := range existing {
			if strings.EqualFold(e, a) {
				found = true
				break
			}
		}
		if !found {
			existing = append(existing, a)
		}
	}
	return existing
}
