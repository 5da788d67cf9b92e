package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/apetrov/coursemate/internal/learner"
	"github.com/apetrov/coursemate/internal/llm"
	"github.com/apetrov/coursemate/internal/scorer"
)

const adviceSystemPrompt = `You are Coursemate, a friendly advisor for an online-course catalog.
You receive a learner profile, a ranked list of matching courses, and the learner's question.
Recommend only courses from the provided list, referring to them by title.
Explain briefly why each pick fits the learner. Keep the reply under 150 words.
Respond with JSON: {"message": "<your reply>"}.`

// AdviceSchema constrains the remote reply to a single message field.
var AdviceSchema = &llm.Schema{
	Name:        "advice",
	Description: "Narrative course advice for the learner",
	Definition: map[string]any{
		"type":     "object",
		"required": []any{"message"},
		"properties": map[string]any{
			"message": map[string]any{
				"type":        "string",
				"description": "The advisory reply shown to the learner",
			},
		},
	},
}

// promptCourse is the serialized course subset embedded in prompts.
// Descriptions are omitted to keep token usage flat.
type promptCourse struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Level  string   `json:"level"`
	Price  float64  `json:"price"`
	Skills []string `json:"skills,omitempty"`
	Score  float64  `json:"score"`
}

// buildAdvicePrompt assembles the structured user message for the
// remote path.
func buildAdvicePrompt(p *learner.Profile, scored []scorer.ScoredCourse, query string) string {
	var b strings.Builder

	b.WriteString("Learner profile:\n")
	writeProfileLine(&b, "Skills", p.Skills)
	writeProfileLine(&b, "Interests", p.Interests)
	writeProfileLine(&b, "Goals", p.Goals)
	if p.ExperienceLevel != "" {
		fmt.Fprintf(&b, "- Experience level: %s\n", p.ExperienceLevel)
	}
	if p.LearningPace != "" {
		fmt.Fprintf(&b, "- Learning pace: %s\n", p.LearningPace)
	}
	if p.BudgetRange != "" {
		fmt.Fprintf(&b, "- Budget: %s\n", p.BudgetRange)
	}

	b.WriteString("\nRanked matching courses:\n")
	courses := make([]promptCourse, len(scored))
	for i, sc := range scored {
		courses[i] = promptCourse{
			ID:     sc.Course.ID,
			Title:  sc.Course.Title,
			Level:  string(sc.Course.Level),
			Price:  sc.Course.Price,
			Skills: sc.Course.Skills,
			Score:  sc.Score,
		}
	}
	if data, err := json.Marshal(courses); err == nil {
		b.Write(data)
		b.WriteString("\n")
	}

	b.WriteString("\nLearner question: ")
	b.WriteString(query)

	return b.String()
}

func writeProfileLine(b *strings.Builder, label string, values []string) {
	if len(values) == 0 {
		return
	}
	fmt.Fprintf(b, "- %s: %s\n", label, strings.Join(values, ", "))
}

func guidedQuery(goal, technology string) string {
	switch {
	case goal != "" && technology != "":
		return fmt.Sprintf("Based on my questionnaire answers, build me a learning plan for %s with %s.", goal, technology)
	case goal != "":
		return fmt.Sprintf("Based on my questionnaire answers, build me a learning plan for %s.", goal)
	case technology != "":
		return fmt.Sprintf("Based on my questionnaire answers, recommend %s courses.", technology)
	default:
		return "Based on my questionnaire answers, recommend the best courses for me."
	}
}
