package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillpocket/skillpocket/pkg/presenter"
	"github.com/skillpocket/skillpocket/pkg/skills"
)

var showCmd = &cobra.Command{
	Use:   "show <skill-id>",
	Short: "Show a skill's metadata and content",
	Long: `Show a skill's full metadata and Markdown body. With --diff the stored
content is compared against what is currently on disk, which is useful
after editing a SKILL.md without rescanning.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		showDiff, _ := cmd.Flags().GetBool("diff")

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		skill, err := service.Skill(args[0])
		if err != nil {
			return err
		}

		if showDiff {
			diff, err := skills.ContentDiff(skill)
			if err != nil {
				return err
			}
			if diff == "" {
				presenter.Info("Stored content matches disk")
				return nil
			}
			fmt.Print(diff)
			return nil
		}

		presenter.Section(skill.Name)
		fmt.Printf("ID:          %s\n", skill.ID)
		fmt.Printf("Description: %s\n", skill.Description)
		fmt.Printf("Source:      %s\n", skill.Source)
		if skill.PluginName != "" {
			fmt.Printf("Plugin:      %s\n", skill.PluginName)
		}
		if skill.Version != "" {
			fmt.Printf("Version:     %s\n", skill.Version)
		}
		if skill.License != "" {
			fmt.Printf("License:     %s\n", skill.License)
		}
		fmt.Printf("Path:        %s\n", skill.Path)
		fmt.Printf("Tags:        %s\n", strings.Join(skill.Tags, ", "))
		fmt.Printf("Favorite:    %t\n", skill.IsFavorite)
		fmt.Printf("Uses:        %d\n", skill.UseCount)
		if skill.LastUsedAt != nil {
			fmt.Printf("Last used:   %s\n", skill.LastUsedAt.Format("2006-01-02 15:04:05"))
		}
		if skill.Stale {
			presenter.Warning("This skill was not found during the last scan")
		}

		if skill.Content != "" {
			presenter.Separator()
			fmt.Println(skill.Content)
		}
		return nil
	},
}

func init() {
	showCmd.Flags().Bool("diff", false, "Diff stored content against the descriptor on disk")
}
