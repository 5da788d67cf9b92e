package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apetrov/coursemate/internal/catalog"
	"github.com/apetrov/coursemate/internal/store"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the stored course catalog",
}

var catalogSeedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert the bundled courses into the catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		inserted, err := st.CourseRepo().Seed(cmd.Context(), catalog.SeedCourses())
		if err != nil {
			return fmt.Errorf("seed catalog: %w", err)
		}
		fmt.Printf("Inserted %d courses.\n", inserted)
		return nil
	},
}

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the stored courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		level, _ := cmd.Flags().GetString("level")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		filter := catalog.Filter{Category: category}
		if level != "" {
			filter.Level = catalog.ParseLevel(level)
		}

		courses, err := st.CourseRepo().List(cmd.Context(), filter)
		if err != nil {
			return fmt.Errorf("list courses: %w", err)
		}
		if len(courses) == 0 {
			fmt.Println("No courses found. Run `coursemate catalog seed` first.")
			return nil
		}

		fmt.Printf("%-22s  %-28s  %-14s  %-12s  %6s  %8s\n",
			"ID", "Title", "Category", "Level", "Price", "Enrolled")
		fmt.Println(strings.Repeat("─", 100))
		for _, c := range courses {
			title := c.Title
			if len(title) > 28 {
				title = title[:28]
			}
			fmt.Printf("%-22s  %-28s  %-14s  %-12s  %6.0f  %8d\n",
				c.ID, title, c.Category, c.Level, c.Price, c.EnrolledCount)
		}
		return nil
	},
}

func init() {
	catalogListCmd.Flags().String("category", "", "Filter by category")
	catalogListCmd.Flags().String("level", "", "Filter by level (beginner, intermediate, advanced)")

	catalogCmd.AddCommand(catalogSeedCmd)
	catalogCmd.AddCommand(catalogListCmd)
}
