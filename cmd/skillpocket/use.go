package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillpocket/skillpocket/pkg/presenter"
)

var useCmd = &cobra.Command{
	Use:   "use <skill-id>",
	Short: "Record a use of a skill",
	Long:  `Increment a skill's use counter and stamp the last-used time.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		if err := service.RecordUse(ctx, args[0]); err != nil {
			return err
		}

		skill, err := service.Skill(args[0])
		if err != nil {
			return err
		}
		presenter.Success(fmt.Sprintf("%s used %d times", skill.ID, skill.UseCount))
		return nil
	},
}
