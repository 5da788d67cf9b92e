package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/apetrov/coursemate/internal/app"
	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/learner"
	"github.com/apetrov/coursemate/internal/llm"
	"github.com/apetrov/coursemate/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	courseRepo := st.CourseRepo()

	// First run gets the bundled catalog so the advisor has something
	// to recommend.
	count, err := courseRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("count courses: %w", err)
	}
	if count == 0 {
		if _, err := courseRepo.Seed(ctx, catalog.SeedCourses()); err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
	}

	opts := app.Options{
		Courses:  courseRepo,
		Sessions: st.SessionRepo(),
		Events:   st.EventRepo(),
		Profile:  &learner.Profile{},
	}

	provider, err := llm.NewProviderFromEnv(ctx, st.EventRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Replies will use the built-in templates.")
	} else {
		opts.LLMProvider = provider
	}

	return app.Run(opts)
}
