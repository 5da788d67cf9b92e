package scorer

import (
	"fmt"
	"sort"
	"strings"

	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/learner"
)

// DefaultTopK is the number of courses Rank returns when the caller
// passes k <= 0.
const DefaultTopK = 5

// completedPenalty demotes already-finished courses. It is a penalty,
// not a filter: a completed course can still surface when other factors
// dominate.
const completedPenalty = 10

// ScoredCourse pairs a course with its score and the reasons behind it.
type ScoredCourse struct {
	Course  catalog.Course
	Score   float64
	Reasons []string
}

// Score computes the base relevance of a course for a profile.
// It is a pure function of its inputs: same profile and course always
// produce the same score and reason list.
func Score(p *learner.Profile, c catalog.Course) (float64, []string) {
	var score float64
	var reasons []string

	for _, skill := range c.Skills {
		for _, ps := range p.Skills {
			if crossMatch(skill, ps) {
				score += 3
				reasons = append(reasons, fmt.Sprintf("Matches your skill %q", ps))
				break
			}
		}
	}

	if p.ExperienceLevel != "" && c.Level == p.ExperienceLevel {
		score += 2
		reasons = append(reasons, fmt.Sprintf("%s level fits your experience", c.Level))
	}

	desc := strings.ToLower(c.Description)
	for _, interest := range p.Interests {
		kw := strings.ToLower(strings.TrimSpace(interest))
		if kw != "" && strings.Contains(desc, kw) {
			score += 1
			reasons = append(reasons, fmt.Sprintf("Covers your interest in %s", interest))
		}
	}

	popularity := float64(c.EnrolledCount) / 1000
	if popularity > 2 {
		popularity = 2
	}
	if popularity > 0 {
		score += popularity
		reasons = append(reasons, fmt.Sprintf("Popular choice (%d learners enrolled)", c.EnrolledCount))
	}

	if c.RatingAverage > 0 {
		score += (c.RatingAverage - 3) * 0.5
		if c.RatingAverage >= 4 {
			reasons = append(reasons, fmt.Sprintf("Highly rated (%.1f/5)", c.RatingAverage))
		}
	}

	if p.HasCompleted(c.ID) {
		score -= completedPenalty
		reasons = append(reasons, "You already completed this course")
	}

	return score, reasons
}

// crossMatch reports whether either string contains the other,
// case-insensitively. "javascript" matches "JavaScript Basics" and
// vice versa.
func crossMatch(a, b string) bool {
	la := strings.ToLower(strings.TrimSpace(a))
	lb := strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return false
	}
	return strings.Contains(la, lb) || strings.Contains(lb, la)
}

// Rank scores all courses against the profile using Score and returns the
// top k in descending score order. Ties preserve catalog input order.
// k <= 0 uses DefaultTopK.
func Rank(p *learner.Profile, courses []catalog.Course, k int) []ScoredCourse {
	return rankWith(p, courses, k, Score)
}

// RankGuided is Rank with the extended guided-questionnaire scoring.
func RankGuided(p *learner.Profile, courses []catalog.Course, k int) []ScoredCourse {
	return rankWith(p, courses, k, ScoreGuided)
}

func rankWith(p *learner.Profile, courses []catalog.Course, k int, score func(*learner.Profile, catalog.Course) (float64, []string)) []ScoredCourse {
	if k <= 0 {
		k = DefaultTopK
	}

	scored := make([]ScoredCourse, len(courses))
	for i, c := range courses {
		s, reasons := score(p, c)
		scored[i] = ScoredCourse{Course: c, Score: s, Reasons: reasons}
	}

	// SliceStable keeps input order for equal scores.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > k {
		scored = scored[:k]
	}
	return scored
}
