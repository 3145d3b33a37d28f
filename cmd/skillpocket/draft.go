package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/skillpocket/skillpocket/pkg/appstate"
	"github.com/skillpocket/skillpocket/pkg/drafts"
	"github.com/skillpocket/skillpocket/pkg/presenter"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage skill drafts",
	Long: `Drafts are skills in the making: fetched from a web page or written by
hand, kept in the catalog state until published into the skills directory.`,
}

var draftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drafts",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		list := service.Drafts()
		if len(list) == 0 {
			fmt.Println("No drafts.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tSOURCE\tCREATED")
		for _, draft := range list {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				draft.ID, draft.Name, draft.SourceURL, draft.CreatedAt.Format("2006-01-02"))
		}
		return w.Flush()
	},
}

var draftAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a draft by hand",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		description, _ := cmd.Flags().GetString("description")
		bodyFile, _ := cmd.Flags().GetString("body-file")

		body := ""
		if bodyFile != "" {
			raw, err := os.ReadFile(bodyFile)
			if err != nil {
				return err
			}
			body = string(raw)
		}

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		draft := appstate.NewDraft(args[0], description, body, "")
		if err := service.AddDraft(ctx, draft); err != nil {
			return err
		}

		presenter.Success(fmt.Sprintf("Created draft %q (%s)", draft.Name, draft.ID))
		return nil
	},
}

var draftFetchCmd = &cobra.Command{
	Use:   "fetch <url>",
	Short: "Fetch a web page and store it as a draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		draft, err := drafts.NewFetcher().FromURL(ctx, args[0])
		if err != nil {
			return err
		}
		if err := service.AddDraft(ctx, draft); err != nil {
			return err
		}

		presenter.Success(fmt.Sprintf("Saved draft %q (%s)", draft.Name, draft.ID))
		return nil
	},
}

var draftPublishCmd = &cobra.Command{
	Use:   "publish <draft-id>",
	Short: "Publish a draft into the skills directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		keep, _ := cmd.Flags().GetBool("keep")

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		draft, err := service.Draft(args[0])
		if err != nil {
			return err
		}

		skillsDir, err := skillsDirForWrites()
		if err != nil {
			return err
		}
		path, err := drafts.Publish(draft, skillsDir)
		if err != nil {
			return err
		}

		if !keep {
			if err := service.RemoveDraft(ctx, draft.ID); err != nil {
				return err
			}
		}

		presenter.Success(fmt.Sprintf("Published draft to %s", path))
		presenter.Info("Run 'skillpocket scan' to add it to the catalog")
		return nil
	},
}

var draftRemoveCmd = &cobra.Command{
	Use:   "remove <draft-id>",
	Short: "Delete a draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		service, err := buildService(ctx)
		if err != nil {
			return err
		}
		defer service.Close()

		if err := service.RemoveDraft(ctx, args[0]); err != nil {
			return err
		}
		presenter.Success(fmt.Sprintf("Removed draft %s", args[0]))
		return nil
	},
}

func init() {
	draftAddCmd.Flags().String("description", "", "One-line description")
	draftAddCmd.Flags().String("body-file", "", "File with the Markdown body")
	draftPublishCmd.Flags().Bool("keep", false, "Keep the draft after publishing")

	draftCmd.AddCommand(draftListCmd)
	draftCmd.AddCommand(draftAddCmd)
	draftCmd.AddCommand(draftFetchCmd)
	draftCmd.AddCommand(draftPublishCmd)
	draftCmd.AddCommand(draftRemoveCmd)
}
