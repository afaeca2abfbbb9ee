package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/vimwizard/internal/presentation"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled attempts, newest first",
	Long: `List attempts recorded in the journal as JSON, newest first.

Examples:
  # Last 20 attempts
  vimwizard history

  # Every attempt ever
  vimwizard history --limit 0

  # Only wins
  vimwizard history | jq '.[] | select(.completed)'`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		j, err := openJournal(cmd.Context(), cfg, nil)
		if err != nil {
			return err
		}
		defer func() { _ = j.Close() }()

		attempts, err := j.List(cmd.Context(), historyLimit)
		if err != nil {
			return fmt.Errorf("listing attempts: %w", err)
		}
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatAttempts(presentation.FromAttempts(attempts))
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "maximum attempts to show (0 for all)")
	rootCmd.AddCommand(historyCmd)
}
