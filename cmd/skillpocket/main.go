package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/skillpocket/skillpocket/pkg/presenter"
)

func init() {
	viper.SetEnvPrefix("SKILLPOCKET")
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillpocket")
	viper.AddConfigPath(".")

	viper.SetDefault("store.backend", "json")

	// Load config file if it exists
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "skillpocket",
	Short: "Manage your local Claude skills catalog",
	Long: `Skillpocket discovers SKILL.md packages from your personal skills
directory and installed marketplace plugins, keeps your favorites, tags,
and usage history across rescans, and serves the catalog over a local API.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
		os.Exit(1)
	},
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.PersistentFlags().String("base-path", "", "Override the state directory (default ~/.claude/skill-pocket)")
	rootCmd.PersistentFlags().String("store", "", "State backend: json or sqlite")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress informational output")

	viper.BindPFlag("base_path", rootCmd.PersistentFlags().Lookup("base-path"))
	viper.BindPFlag("store.backend", rootCmd.PersistentFlags().Lookup("store"))

	cobra.OnInitialize(func() {
		if quiet, err := rootCmd.PersistentFlags().GetBool("quiet"); err == nil {
			presenter.SetQuiet(quiet)
		}
	})

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(favoriteCmd)
	rootCmd.AddCommand(useCmd)
	rootCmd.AddCommand(tagCmd)
	rootCmd.AddCommand(createCmd)
	rootCmd.AddCommand(draftCmd)
	rootCmd.AddCommand(storeCmd)
	rootCmd.AddCommand(iconsCmd)
	rootCmd.AddCommand(designsCmd)
	rootCmd.AddCommand(openCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
