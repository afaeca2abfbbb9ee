package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/vimwizard/internal/engine"
	"github.com/zjrosen/vimwizard/internal/presentation"
)

var replayCmd = &cobra.Command{
	Use:   "replay <attempt-id>",
	Short: "Replay a journaled attempt through the engine",
	Long: `Re-run the keystrokes of a journaled attempt from its start text and print the
keys and the buffer they produce as JSON.

Example:
  vimwizard replay 0b6f6a52-4d8e-4c39-a3f5-0f1c4c2b9e11 | jq -r '.lines[]'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		j, err := openJournal(ctx, cfg, nil)
		if err != nil {
			return err
		}
		defer func() { _ = j.Close() }()

		attempt, err := j.Get(ctx, args[0])
		if err != nil {
			return err
		}
		keys, err := j.Keys(ctx, attempt.ID)
		if err != nil {
			return fmt.Errorf("reading keystrokes: %w", err)
		}
		final, err := j.Replay(ctx, attempt.ID, engine.New())
		if err != nil {
			return fmt.Errorf("replaying attempt: %w", err)
		}
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatReplay(presentation.FromReplay(attempt, keys, final))
	},
}

func init() {
	rootCmd.AddCommand(replayCmd)
}
