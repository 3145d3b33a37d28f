package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/skillpocket/skillpocket/pkg/presenter"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import a previously exported envelope",
	Long: `Import tags, favorites, use counts, and preferences from an export
envelope. Skills not mentioned in the envelope keep their current state;
envelope entries for skills no longer installed are ignored. Use '-' to
read from stdin.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		var raw []byte
		var err error
		if args[0] == "-" {
			raw, err = io.ReadAll(os.Stdin)
		} else {
			raw, err = os.ReadFile(args[0])
		}
		if err != nil {
			return err
		}

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		if err := service.Import(ctx, raw); err != nil {
			return err
		}

		presenter.Success(fmt.Sprintf("Imported %s", args[0]))
		return nil
	},
}
