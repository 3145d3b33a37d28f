package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillpocket/skillpocket/pkg/assets"
	"github.com/skillpocket/skillpocket/pkg/presenter"
)

var designsCmd = &cobra.Command{
	Use:   "designs",
	Short: "Inspect locally stored UI design styles",
}

var designsStylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List UI design styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		studio, err := assets.NewStudio("")
		if err != nil {
			return err
		}

		styles, err := studio.Styles()
		if err != nil {
			return err
		}
		if len(styles) == 0 {
			fmt.Println("No UI design styles.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tTAGS\tCREATED")
		for _, style := range styles {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
				style.ID, style.Name, style.Category,
				strings.Join(style.Tags, ","), style.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

var designsShowCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show one UI design style with its prompt",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		studio, err := assets.NewStudio("")
		if err != nil {
			return err
		}

		design, err := studio.Design(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Name:        %s\n", design.Name)
		fmt.Printf("Category:    %s\n", design.Category)
		fmt.Printf("Description: %s\n", design.Description)
		if design.SourceURL != "" {
			fmt.Printf("Source:      %s\n", design.SourceURL)
		}
		if len(design.Tags) > 0 {
			fmt.Printf("Tags:        %s\n", strings.Join(design.Tags, ", "))
		}
		fmt.Printf("Screenshot:  %s\n", design.ScreenshotPath)
		if design.Prompt != "" {
			presenter.Separator()
			fmt.Println(design.Prompt)
		}
		return nil
	},
}

var designsCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the UI design categories",
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME")
		for _, cat := range assets.DesignCategories() {
			fmt.Fprintf(w, "%s\t%s %s\n", cat.ID, cat.Emoji, cat.Name)
		}
		return w.Flush()
	},
}

var designsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the UI designs directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		studio, err := assets.NewStudio("")
		if err != nil {
			return err
		}
		fmt.Println(studio.BasePath())
		return nil
	},
}

func init() {
	designsCmd.AddCommand(designsStylesCmd)
	designsCmd.AddCommand(designsShowCmd)
	designsCmd.AddCommand(designsCategoriesCmd)
	designsCmd.AddCommand(designsPathCmd)
}
