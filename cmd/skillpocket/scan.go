package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/skillpocket/skillpocket/pkg/appstate"
	"github.com/skillpocket/skillpocket/pkg/logger"
	"github.com/skillpocket/skillpocket/pkg/presenter"
	"github.com/skillpocket/skillpocket/pkg/skills"
	"github.com/skillpocket/skillpocket/pkg/watcher"
)

// ScanConfig holds configuration for the scan command
type ScanConfig struct {
	Policy string
	Watch  bool
}

// NewScanConfig creates a new ScanConfig with default values
func NewScanConfig() *ScanConfig {
	return &ScanConfig{
		Policy: string(skills.MissPolicyDrop),
		Watch:  false,
	}
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Discover skills and reconcile them with the catalog",
	Long: `Scan the personal skills directory and installed marketplace plugins
for SKILL.md packages, then merge the findings with your saved favorites,
tags, and usage history.

With --watch the command keeps running and rescans whenever the scanned
directories change.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		config := getScanConfigFromFlags(cmd)
		return runScanCommand(ctx, config)
	},
}

func init() {
	defaults := NewScanConfig()
	scanCmd.Flags().String("policy", defaults.Policy, "What to do with skills missing from the scan: drop or retain")
	scanCmd.Flags().Bool("watch", defaults.Watch, "Keep running and rescan on filesystem changes")
}

// getScanConfigFromFlags extracts scan configuration from command flags
func getScanConfigFromFlags(cmd *cobra.Command) *ScanConfig {
	config := NewScanConfig()

	if policy, err := cmd.Flags().GetString("policy"); err == nil {
		config.Policy = policy
	}
	if watch, err := cmd.Flags().GetBool("watch"); err == nil {
		config.Watch = watch
	}
	return config
}

func runScanCommand(ctx context.Context, config *ScanConfig) error {
	policy, ok := skills.ParseMissPolicy(config.Policy)
	if !ok {
		return fmt.Errorf("unknown miss policy %q, expected drop or retain", config.Policy)
	}

	service, err := buildService(ctx, appstate.WithMissPolicy(policy))
	if err != nil {
		return err
	}
	defer service.Close()

	if err := rescanOnce(ctx, service); err != nil {
		return err
	}

	if !config.Watch {
		return nil
	}

	scanner, err := buildScanner()
	if err != nil {
		return err
	}
	w, err := watcher.New(scanner.Roots(), func(ctx context.Context) {
		if err := rescanOnce(ctx, service); err != nil {
			logger.G(ctx).WithError(err).Error("rescan failed")
		}
	})
	if err != nil {
		return err
	}

	presenter.Info("Watching for changes, press Ctrl-C to stop")
	if err := w.Run(ctx); err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func rescanOnce(ctx context.Context, service *appstate.Service) error {
	result, err := service.Rescan(ctx)
	if err != nil {
		return err
	}

	presenter.Success(fmt.Sprintf("Discovered %d skills", len(result.Skills)))
	for _, warning := range result.Warnings {
		presenter.Warning(warning.Error())
	}
	return nil
}
