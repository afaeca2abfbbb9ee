package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zjrosen/vimwizard/internal/level"
	"github.com/zjrosen/vimwizard/internal/presentation"
)

var levelsExport string

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the tutorial and pack levels",
	Long: `List every level the game serves without generation, as JSON: the tutorial
followed by the configured level pack (or the bundled one).

Use --export to write the same levels as a YAML level pack, a starting point for
a pack of your own.

Examples:
  # List all levels
  vimwizard levels

  # Titles only
  vimwizard levels | jq '.[].title'

  # Export as an editable pack
  vimwizard levels --export my-levels.yaml`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		orc, pack, err := newOracle(cfg, nil)
		if err != nil {
			return err
		}
		levels := allLevels(cmd.Context(), orc, pack)

		if levelsExport != "" {
			data, err := level.MarshalPack(levels)
			if err != nil {
				return fmt.Errorf("encoding level pack: %w", err)
			}
			if err := os.WriteFile(levelsExport, data, 0o600); err != nil {
				return fmt.Errorf("writing level pack: %w", err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d levels to %s\n", len(levels), levelsExport)
			return nil
		}

		dtos := make([]presentation.LevelDTO, 0, len(levels))
		for i, l := range levels {
			source := presentation.SourcePack
			if i < orc.TutorialLen() {
				source = presentation.SourceTutorial
			}
			dtos = append(dtos, presentation.FromLevel(i, l, source))
		}
		return presentation.NewFormatter(cmd.OutOrStdout()).FormatLevels(dtos)
	},
}

func init() {
	levelsCmd.Flags().StringVarP(&levelsExport, "export", "e", "", "write the levels as a YAML level pack to this path")
	rootCmd.AddCommand(levelsCmd)
}
