package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillpocket/skillpocket/pkg/appstate"
	"github.com/skillpocket/skillpocket/pkg/presenter"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export tags, favorites, and preferences",
	Long: `Export the user-owned state (tags, per-skill tags, favorites, use
counts, and preferences) as a versioned JSON envelope. Without a file
argument the envelope is written to stdout.

With --schema the JSON schema of the envelope is printed instead.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		printSchema, _ := cmd.Flags().GetBool("schema")

		if printSchema {
			raw, err := json.MarshalIndent(appstate.EnvelopeSchema(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(raw))
			return nil
		}

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		raw, err := service.Export()
		if err != nil {
			return err
		}

		if len(args) == 0 {
			fmt.Println(string(raw))
			return nil
		}

		if err := os.WriteFile(args[0], raw, 0o644); err != nil {
			return err
		}
		presenter.Success(fmt.Sprintf("Exported to %s", args[0]))
		return nil
	},
}

func init() {
	exportCmd.Flags().Bool("schema", false, "Print the export envelope JSON schema")
}
