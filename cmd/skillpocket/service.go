package main

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/skillpocket/skillpocket/pkg/appstate"
	"github.com/skillpocket/skillpocket/pkg/skills"
)

// buildService assembles the catalog service from the persistent flags
// and config file: state backend, base path, and optional scan root
// overrides.
func buildService(ctx context.Context, opts ...appstate.ServiceOption) (*appstate.Service, error) {
	config, err := appstate.DefaultConfig()
	if err != nil {
		return nil, err
	}
	if backend := viper.GetString("store.backend"); backend != "" {
		config.Backend = backend
	}
	if basePath := viper.GetString("base_path"); basePath != "" {
		config.BasePath = basePath
	}

	store, err := appstate.NewStore(ctx, config)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open state store")
	}

	scanner, err := buildScanner()
	if err != nil {
		store.Close()
		return nil, err
	}
	opts = append([]appstate.ServiceOption{appstate.WithScanner(scanner)}, opts...)

	service, err := appstate.NewService(ctx, store, opts...)
	if err != nil {
		store.Close()
		return nil, err
	}
	return service, nil
}

func buildScanner() (*skills.Scanner, error) {
	skillsDir := viper.GetString("scan.skills_dir")
	marketplacesDir := viper.GetString("scan.marketplaces_dir")
	if skillsDir != "" || marketplacesDir != "" {
		return skills.NewScanner(skills.WithRoots(skillsDir, marketplacesDir))
	}
	return skills.NewScanner()
}

// skillsDirForWrites resolves where new skills and published drafts go.
func skillsDirForWrites() (string, error) {
	if dir := viper.GetString("scan.skills_dir"); dir != "" {
		return dir, nil
	}
	scanner, err := skills.NewScanner()
	if err != nil {
		return "", err
	}
	return scanner.Roots()[0], nil
}
