package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apetrov/coursemate/internal/advisor"
	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/learner"
	"github.com/apetrov/coursemate/internal/llm"
	"github.com/apetrov/coursemate/internal/store"
)

var askCmd = &cobra.Command{
	Use:   "ask <question>",
	Short: "Ask for a course recommendation without entering the TUI",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		query := strings.Join(args, " ")

		skills, _ := cmd.Flags().GetStringSlice("skills")
		interests, _ := cmd.Flags().GetStringSlice("interests")
		level, _ := cmd.Flags().GetString("level")

		profile := &learner.Profile{}
		profile.AddSkills(skills...)
		profile.AddInterests(interests...)
		if level != "" {
			profile.SetExperienceLevel(catalog.ParseLevel(level), true)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		courses, err := st.CourseRepo().List(ctx, catalog.Filter{})
		if err != nil {
			return fmt.Errorf("list courses: %w", err)
		}
		if len(courses) == 0 {
			courses = catalog.SeedCourses()
			fmt.Fprintln(os.Stderr, "Catalog is empty, using the bundled courses. Run `coursemate catalog seed` to persist them.")
		}

		provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
		if err != nil {
			provider = nil
		}

		adv := advisor.New(provider, advisor.DefaultConfig())
		reply := adv.Generate(ctx, profile, courses, query)

		fmt.Println(reply.Text)
		if reply.Source == advisor.SourceFallback && provider != nil {
			fmt.Fprintln(os.Stderr, "\n(The AI advisor was unavailable, this is the built-in reply.)")
		}
		return nil
	},
}

func init() {
	askCmd.Flags().StringSlice("skills", nil, "Skills you already have or want (comma separated)")
	askCmd.Flags().StringSlice("interests", nil, "Topics you are interested in (comma separated)")
	askCmd.Flags().String("level", "", "Your experience level (beginner, intermediate, advanced)")
}
