package cmd

import (
	"github.com/spf13/cobra"
)

// chatCmd is an explicit alias for the default action; running the bare
// binary opens the same TUI.
var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Open the chat advisor TUI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}
