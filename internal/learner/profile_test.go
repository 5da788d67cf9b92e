package learner

import (
	"testing"

	"github.com/apetrov/coursemate/internal/catalog"
)

func TestAddSkills_DedupesCaseInsensitive(t *testing.T) {
	p := &Profile{}
	p.AddSkills("Python", "sql")
	p.AddSkills("python", "SQL", "go")

	if len(p.Skills) != 3 {
		t.Fatalf("Skills = %v, want 3 entries", p.Skills)
	}
	if p.Skills[0] != "Python" {
		t.Errorf("first entry rewritten to %q", p.Skills[0])
	}
}

func TestAddSkills_IgnoresBlank(t *testing.T) {
	p := &Profile{}
	p.AddSkills("", "  ", "go")
	if len(p.Skills) != 1 {
		t.Fatalf("Skills = %v, want just go", p.Skills)
	}
}

func TestSetExperienceLevel_NoSilentOverwrite(t *testing.T) {
	p := &Profile{}
	p.SetExperienceLevel(catalog.LevelBeginner, false)
	p.SetExperienceLevel(catalog.LevelAdvanced, false)
	if p.ExperienceLevel != catalog.LevelBeginner {
		t.Errorf("level overwritten without force: %q", p.ExperienceLevel)
	}

	p.SetExperienceLevel(catalog.LevelAdvanced, true)
	if p.ExperienceLevel != catalog.LevelAdvanced {
		t.Errorf("forced set ignored: %q", p.ExperienceLevel)
	}
}

func TestHasCompleted(t *testing.T) {
	p := &Profile{CompletedCourseIDs: []string{"js-foundations"}}
	if !p.HasCompleted("js-foundations") {
		t.Error("completed course not recognized")
	}
	if p.HasCompleted("ml-advanced") {
		t.Error("unknown course reported completed")
	}
}

func TestClone_IndependentSlices(t *testing.T) {
	p := &Profile{
		Skills:             []string{"python"},
		Interests:          []string{"data science"},
		CompletedCourseIDs: []string{"py-basics"},
		ExperienceLevel:    catalog.LevelBeginner,
	}

	cp := p.Clone()
	cp.AddSkills("go")
	cp.AddInterests("backend")
	cp.CompletedCourseIDs = append(cp.CompletedCourseIDs, "go-start")

	if len(p.Skills) != 1 || len(p.Interests) != 1 || len(p.CompletedCourseIDs) != 1 {
		t.Errorf("original mutated through clone: %+v", p)
	}
	if cp.ExperienceLevel != catalog.LevelBeginner {
		t.Errorf("clone lost level: %q", cp.ExperienceLevel)
	}
}
