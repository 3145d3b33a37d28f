package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillpocket/skillpocket/pkg/presenter"
)

var favoriteCmd = &cobra.Command{
	Use:   "favorite <skill-id>",
	Short: "Toggle a skill's favorite flag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		favorite, err := service.ToggleFavorite(ctx, args[0])
		if err != nil {
			return err
		}

		if favorite {
			presenter.Success(fmt.Sprintf("%s marked as favorite", args[0]))
		} else {
			presenter.Success(fmt.Sprintf("%s removed from favorites", args[0]))
		}
		return nil
	},
}
