package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillpocket/skillpocket/pkg/assets"
)

var iconsCmd = &cobra.Command{
	Use:   "icons",
	Short: "Inspect locally stored icon styles and sets",
}

var iconsStylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "List icon styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := assets.NewLibrary("")
		if err != nil {
			return err
		}

		styles, err := lib.Styles()
		if err != nil {
			return err
		}
		if len(styles) == 0 {
			fmt.Println("No icon styles.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tCREATED")
		for _, style := range styles {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				style.ID, style.Name, style.Category, style.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

var iconsSetsCmd = &cobra.Command{
	Use:   "sets",
	Short: "List icon sets and how many SVGs each has on disk",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		lib, err := assets.NewLibrary("")
		if err != nil {
			return err
		}

		sets, err := lib.LoadedSets(ctx)
		if err != nil {
			return err
		}
		if len(sets) == 0 {
			fmt.Println("No icon sets.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSTYLE\tICONS\tFOLDER")
		for _, set := range sets {
			fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
				set.ID, set.Name, set.StyleID, len(set.Icons), set.FolderPath)
		}
		return w.Flush()
	},
}

var iconsPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the icons directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := assets.NewLibrary("")
		if err != nil {
			return err
		}
		fmt.Println(lib.BasePath())
		return nil
	},
}

func init() {
	iconsCmd.AddCommand(iconsStylesCmd)
	iconsCmd.AddCommand(iconsSetsCmd)
	iconsCmd.AddCommand(iconsPathCmd)
}
