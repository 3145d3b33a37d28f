package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"github.com/skillpocket/skillpocket/pkg/skills"
)

// ListConfig holds configuration for the list command
type ListConfig struct {
	Tag       string
	Favorites bool
	Filter    string
	JSON      bool
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skills in your catalog",
	Long: `List the skills currently in the catalog, optionally filtered by tag,
favorite status, or a glob pattern matched against skill names.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		config := getListConfigFromFlags(cmd)

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		list, err := filterList(service.Skills(), config)
		if err != nil {
			return err
		}

		if config.JSON {
			raw, err := json.MarshalIndent(list, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(raw))
			return nil
		}

		if len(list) == 0 {
			fmt.Println("No skills found. Run 'skillpocket scan' to discover skills.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSOURCE\tTAGS\tFAV\tUSES")
		for _, skill := range list {
			fav := ""
			if skill.IsFavorite {
				fav = "*"
			}
			name := skill.Name
			if skill.Stale {
				name += " (stale)"
			}
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%d\n",
				skill.ID, name, skill.Source, strings.Join(skill.Tags, ","), fav, skill.UseCount)
		}
		return w.Flush()
	},
}

func init() {
	listCmd.Flags().String("tag", "", "Only skills carrying this tag")
	listCmd.Flags().Bool("favorites", false, "Only favorite skills")
	listCmd.Flags().String("filter", "", "Glob pattern matched against skill names, e.g. 'web-*'")
	listCmd.Flags().Bool("json", false, "Output as JSON")
}

// getListConfigFromFlags extracts list configuration from command flags
func getListConfigFromFlags(cmd *cobra.Command) *ListConfig {
	config := &ListConfig{}

	if tag, err := cmd.Flags().GetString("tag"); err == nil {
		config.Tag = tag
	}
	if favorites, err := cmd.Flags().GetBool("favorites"); err == nil {
		config.Favorites = favorites
	}
	if filter, err := cmd.Flags().GetString("filter"); err == nil {
		config.Filter = filter
	}
	if jsonOut, err := cmd.Flags().GetBool("json"); err == nil {
		config.JSON = jsonOut
	}
	return config
}

func filterList(list []skills.Skill, config *ListConfig) ([]skills.Skill, error) {
	var matcher glob.Glob
	if config.Filter != "" {
		var err error
		matcher, err = glob.Compile(config.Filter)
		if err != nil {
			return nil, fmt.Errorf("invalid filter pattern %q: %w", config.Filter, err)
		}
	}

	var out []skills.Skill
	for _, skill := range list {
		if config.Favorites && !skill.IsFavorite {
			continue
		}
		if config.Tag != "" && !hasTag(skill, config.Tag) {
			continue
		}
		if matcher != nil && !matcher.Match(strings.ToLower(skill.Name)) && !matcher.Match(skill.ID) {
			continue
		}
		out = append(out, skill)
	}
	return out, nil
}

func hasTag(skill skills.Skill, tag string) bool {
	for _, t := range skill.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
