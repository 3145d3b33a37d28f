package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillpocket/skillpocket/pkg/catalog"
	"github.com/skillpocket/skillpocket/pkg/presenter"
)

var storeCmd = &cobra.Command{
	Use:   "store",
	Short: "Browse the skill store",
	Long:  `Browse the curated store of installable skills from official and community repositories.`,
}

var storeSearchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search the store",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q := catalog.Query{}
		if len(args) > 0 {
			q.Text = args[0]
		}
		q.Pattern, _ = cmd.Flags().GetString("pattern")
		q.Category, _ = cmd.Flags().GetString("category")
		q.Source, _ = cmd.Flags().GetString("source")
		q.Sort, _ = cmd.Flags().GetString("sort")
		q.Page, _ = cmd.Flags().GetInt("page")
		q.PageSize, _ = cmd.Flags().GetInt("page-size")

		result, err := catalog.Search(q)
		if err != nil {
			return err
		}

		if len(result.Entries) == 0 {
			fmt.Println("No matching skills in the store.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tAUTHOR\tSTARS\tRATING\tCATEGORY")
		for _, entry := range result.Entries {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.1f\t%s\n",
				entry.ID, entry.Name, entry.Author, entry.Stars, entry.Rating, entry.Category)
		}
		if err := w.Flush(); err != nil {
			return err
		}

		if result.HasMore {
			presenter.Info(fmt.Sprintf("Showing %d of %d, use --page %d for more",
				len(result.Entries), result.Total, result.Page+1))
		}
		return nil
	},
}

var storeShowCmd = &cobra.Command{
	Use:   "show <entry-id>",
	Short: "Show a store entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entry, err := catalog.Lookup(args[0])
		if err != nil {
			return err
		}

		presenter.Section(entry.Name)
		fmt.Printf("Author:      %s\n", entry.Author)
		fmt.Printf("Description: %s\n", entry.Description)
		fmt.Printf("Repository:  %s\n", entry.GithubURL)
		fmt.Printf("Stars:       %d\n", entry.Stars)
		fmt.Printf("Downloads:   %d\n", entry.Downloads)
		fmt.Printf("Rating:      %.1f\n", entry.Rating)
		fmt.Printf("Category:    %s\n", entry.Category)
		fmt.Printf("Tags:        %s\n", strings.Join(entry.Tags, ", "))
		fmt.Printf("Updated:     %s\n", entry.UpdatedAt)
		return nil
	},
}

var storeCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List store categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSKILLS")
		for _, category := range catalog.Categories() {
			fmt.Fprintf(w, "%s\t%s\t%d\n", category.ID, category.Name, category.Count)
		}
		return w.Flush()
	},
}

func init() {
	storeSearchCmd.Flags().String("pattern", "", "Glob pattern matched against entry names")
	storeSearchCmd.Flags().String("category", "", "Filter by category")
	storeSearchCmd.Flags().String("source", "", "Filter by source: official or community")
	storeSearchCmd.Flags().String("sort", catalog.SortPopular, "Sort order: popular, rated, newest, or downloads")
	storeSearchCmd.Flags().Int("page", 1, "Result page")
	storeSearchCmd.Flags().Int("page-size", 20, "Results per page")

	storeCmd.AddCommand(storeSearchCmd)
	storeCmd.AddCommand(storeShowCmd)
	storeCmd.AddCommand(storeCategoriesCmd)
}
