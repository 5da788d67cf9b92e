package scorer

import (
	"fmt"
	"strings"

	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/learner"
)

// ScoreGuided extends Score with the factors collected by the guided
// questionnaire: goals, industry, project type, pace, budget and
// certification. The result is clamped to [0,100].
func ScoreGuided(p *learner.Profile, c catalog.Course) (float64, []string) {
	score, reasons := Score(p, c)

	title := strings.ToLower(c.Title)
	desc := strings.ToLower(c.Description)

	for _, goal := range p.Goals {
		kw := strings.ToLower(strings.TrimSpace(goal))
		if kw == "" {
			continue
		}
		switch {
		case strings.Contains(title, kw) || skillsContain(c.Skills, kw):
			score += 5
			reasons = append(reasons, fmt.Sprintf("Directly targets your goal: %s", goal))
		case strings.Contains(desc, kw):
			score += 3
			reasons = append(reasons, fmt.Sprintf("Relates to your goal: %s", goal))
		}
	}

	for _, industry := range p.IndustryPreference {
		kw := strings.ToLower(strings.TrimSpace(industry))
		if kw == "" {
			continue
		}
		if strings.Contains(strings.ToLower(c.Category), kw) || strings.Contains(desc, kw) {
			score += 4
			reasons = append(reasons, fmt.Sprintf("Relevant to the %s industry", industry))
		}
	}

	for _, project := range p.ProjectTypePreference {
		kw := strings.ToLower(strings.TrimSpace(project))
		if kw == "" {
			continue
		}
		if strings.Contains(desc, kw) || skillsContain(c.Skills, kw) {
			score += 4
			reasons = append(reasons, fmt.Sprintf("Lets you build %s projects", project))
		}
	}

	if paceFits(p.LearningPace, c.DurationMinutes) {
		score += 3
		reasons = append(reasons, fmt.Sprintf("Course length suits your %s pace", p.LearningPace))
	}

	if budgetFits(p.BudgetRange, c.Price) {
		score += 4
		reasons = append(reasons, "Within your budget")
	}

	if p.CertificationRequired && strings.Contains(desc, "certificate") {
		score += 5
		reasons = append(reasons, "Includes a certificate of completion")
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, reasons
}

func skillsContain(skills []string, kw string) bool {
	for _, s := range skills {
		if strings.Contains(strings.ToLower(s), kw) {
			return true
		}
	}
	return false
}

// paceFits matches intensive learners to shorter courses and relaxed
// learners to longer, self-paced ones.
func paceFits(pace string, durationMinutes int) bool {
	switch strings.ToLower(strings.TrimSpace(pace)) {
	case "fast", "intensive":
		return durationMinutes > 0 && durationMinutes <= 900
	case "steady", "moderate":
		return durationMinutes > 900 && durationMinutes <= 1500
	case "relaxed", "slow":
		return durationMinutes > 1500
	default:
		return false
	}
}

// budgetFits checks the course price against a coarse budget range.
func budgetFits(budget string, price float64) bool {
	switch strings.ToLower(strings.TrimSpace(budget)) {
	case "free":
		return price == 0
	case "low", "under 50":
		return price < 50
	case "medium", "50-100":
		return price >= 50 && price <= 100
	case "high", "any", "over 100":
		return true
	default:
		return false
	}
}
