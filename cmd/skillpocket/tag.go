package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillpocket/skillpocket/pkg/presenter"
	"github.com/skillpocket/skillpocket/pkg/tags"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage tags and their assignment to skills",
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		all := service.Tags()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tICON\tCOLOR\tPARENT")
		for _, root := range tags.Roots(all) {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n", root.ID, root.Name, root.Icon, root.Color)
			for _, child := range tags.Children(all, root.ID) {
				fmt.Fprintf(w, "%s\t  %s\t%s\t%s\t%s\n", child.ID, child.Name, child.Icon, child.Color, root.ID)
			}
		}
		return w.Flush()
	},
}

var tagAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a tag",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		icon, _ := cmd.Flags().GetString("icon")
		color, _ := cmd.Flags().GetString("color")
		parent, _ := cmd.Flags().GetString("parent")
		order, _ := cmd.Flags().GetInt("order")

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		tag := tags.New(args[0], icon, color, parent, order)
		if err := service.AddTag(ctx, tag); err != nil {
			return err
		}
		presenter.Success(fmt.Sprintf("Added tag %s (%s)", tag.Name, tag.ID))
		return nil
	},
}

var tagRemoveCmd = &cobra.Command{
	Use:   "remove <tag-id>",
	Short: "Remove a tag, its children, and all its assignments",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		if err := service.RemoveTag(ctx, args[0]); err != nil {
			return err
		}
		presenter.Success(fmt.Sprintf("Removed tag %s", args[0]))
		return nil
	},
}

var tagAssignCmd = &cobra.Command{
	Use:   "assign <skill-id> <tag>",
	Short: "Assign a tag to a skill",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		if err := service.AssignTag(ctx, args[0], args[1]); err != nil {
			return err
		}
		presenter.Success(fmt.Sprintf("Tagged %s with %s", args[0], args[1]))
		return nil
	},
}

var tagUnassignCmd = &cobra.Command{
	Use:   "unassign <skill-id> <tag>",
	Short: "Remove a tag from a skill",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		if err := service.UnassignTag(ctx, args[0], args[1]); err != nil {
			return err
		}
		presenter.Success(fmt.Sprintf("Removed %s from %s", args[1], args[0]))
		return nil
	},
}

func init() {
	tagAddCmd.Flags().String("icon", "", "Lucide icon name")
	tagAddCmd.Flags().String("color", "", "Hex color, e.g. #8b5cf6")
	tagAddCmd.Flags().String("parent", "", "Parent tag id")
	tagAddCmd.Flags().Int("order", 0, "Sort order among siblings")

	tagCmd.AddCommand(tagListCmd)
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRemoveCmd)
	tagCmd.AddCommand(tagAssignCmd)
	tagCmd.AddCommand(tagUnassignCmd)
}
