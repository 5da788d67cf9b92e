package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/apetrov/coursemate/internal/llm"
	"github.com/apetrov/coursemate/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM events found.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-22s  %-28s  %-6s  %-6s  %-7s  %s\n",
			"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "OK")
		fmt.Println(strings.Repeat("─", 110))

		for _, e := range events {
			if purpose != "" && e.Purpose != purpose {
				continue
			}
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			model := e.Model
			if len(model) > 28 {
				model = model[:28]
			}
			fmt.Printf("%-5d  %-19s  %-22s  %-28s  %-6d  %-6d  %-7d  %s\n",
				e.ID,
				e.Timestamp.Local().Format("2006-01-02 15:04:05"),
				e.Purpose,
				model,
				e.InputTokens,
				e.OutputTokens,
				e.LatencyMs,
				ok,
			)
		}
		return nil
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		s, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		events, err := s.EventRepo().QueryLLMEvents(cmd.Context(), store.QueryOpts{})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No LLM usage recorded yet.")
			return nil
		}

		type usage struct {
			calls, in, out int
		}
		byModel := make(map[string]*usage)
		var modelOrder []string
		for _, e := range events {
			u, ok := byModel[e.Model]
			if !ok {
				u = &usage{}
				byModel[e.Model] = u
				modelOrder = append(modelOrder, e.Model)
			}
			u.calls++
			u.in += e.InputTokens
			u.out += e.OutputTokens
		}

		fmt.Println("Usage and Estimated Cost (USD)")
		fmt.Println(strings.Repeat("─", 78))
		fmt.Printf("%-32s  %6s  %10s  %10s  %10s\n",
			"Model", "Calls", "Input", "Output", "Cost")
		fmt.Println(strings.Repeat("─", 78))

		var totalCost float64
		costKnown := true
		for _, model := range modelOrder {
			u := byModel[model]
			name := model
			if len(name) > 32 {
				name = name[:32]
			}
			cost := llm.LookupCost(model)
			if cost == nil {
				costKnown = false
				fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
					name, u.calls, u.in, u.out, "?")
				continue
			}
			c := cost.Cost(u.in, u.out)
			totalCost += c
			fmt.Printf("%-32s  %6d  %10d  %10d  %10s\n",
				name, u.calls, u.in, u.out, formatCost(c))
		}

		fmt.Println(strings.Repeat("─", 78))
		if costKnown {
			fmt.Printf("%-32s  %52s\n", "TOTAL", formatCost(totalCost))
		} else {
			fmt.Printf("%-32s  %52s\n", "TOTAL", "at least "+formatCost(totalCost))
		}
		return nil
	},
}

func formatCost(c float64) string {
	if c < 0.01 {
		return fmt.Sprintf("$%.4f", c)
	}
	return fmt.Sprintf("$%.2f", c)
}

func init() {
	llmListCmd.Flags().Int("limit", 50, "Maximum number of events to show")
	llmListCmd.Flags().String("purpose", "", "Only show events with this purpose")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
