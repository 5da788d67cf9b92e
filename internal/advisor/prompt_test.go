package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/learner"
	"github.com/apetrov/coursemate/internal/scorer"
)

func TestBuildAdvicePrompt(t *testing.T) {
	profile := &learner.Profile{
		Skills:          []string{"python"},
		Interests:       []string{"data science"},
		ExperienceLevel: catalog.LevelBeginner,
		LearningPace:    "steady",
	}
	scored := []scorer.ScoredCourse{
		{
			Course: catalog.Course{
				ID:    "python-for-everyone",
				Title: "Python for Everyone",
				Level: catalog.LevelBeginner,
				Price: 39,
			},
			Score: 7.5,
		},
	}

	prompt := buildAdvicePrompt(profile, scored, "what should I take first?")

	assert.Contains(t, prompt, "Skills: python")
	assert.Contains(t, prompt, "Interests: data science")
	assert.Contains(t, prompt, "Experience level: Beginner")
	assert.Contains(t, prompt, "Python for Everyone")
	assert.Contains(t, prompt, "what should I take first?")
	// Descriptions stay out of the prompt to keep token usage flat.
	assert.NotContains(t, prompt, "description\":")
}

func TestAdviceSchema_Shape(t *testing.T) {
	require.NotNil(t, AdviceSchema)
	assert.Equal(t, "advice", AdviceSchema.Name)

	props, ok := AdviceSchema.Definition["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "message")
}

func TestGuidedQuery(t *testing.T) {
	tests := []struct {
		goal, tech string
		want       string
	}{
		{"career change", "python", "Based on my questionnaire answers, build me a learning plan for career change with python."},
		{"career change", "", "Based on my questionnaire answers, build me a learning plan for career change."},
		{"", "go", "Based on my questionnaire answers, recommend go courses."},
		{"", "", "Based on my questionnaire answers, recommend the best courses for me."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, guidedQuery(tt.goal, tt.tech))
	}
}
