package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillpocket/skillpocket/pkg/presenter"
	"github.com/skillpocket/skillpocket/pkg/reveal"
)

var openCmd = &cobra.Command{
	Use:   "open <skill-id>",
	Short: "Reveal a skill's folder in the file manager",
	Long: `Open a skill's folder in the platform file manager. If no file manager
is available the path is copied to the clipboard instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		skill, err := service.Skill(args[0])
		if err != nil {
			return err
		}

		outcome, err := reveal.New().Show(ctx, skill.Path)
		if err != nil {
			return err
		}

		switch outcome {
		case reveal.OutcomeRevealed:
			presenter.Success(fmt.Sprintf("Revealed %s", skill.Path))
		case reveal.OutcomeOpened:
			presenter.Success(fmt.Sprintf("Opened %s", skill.Path))
		case reveal.OutcomeCopied:
			presenter.Info(fmt.Sprintf("Copied path to clipboard: %s", skill.Path))
		}
		return nil
	},
}
