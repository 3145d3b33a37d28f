package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skillpocket/skillpocket/pkg/presenter"
	"github.com/skillpocket/skillpocket/pkg/skills"
)

// CreateConfig holds configuration for the create command
type CreateConfig struct {
	Description string
	Version     string
	License     string
	BodyFile    string
}

var createCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Create a new skill in the personal skills directory",
	Long: `Create a new SKILL.md package under the personal skills directory. The
body is read from --body-file, or from stdin when the flag is '-'. Run
'skillpocket scan' afterwards to pick the new skill up.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config := getCreateConfigFromFlags(cmd)
		name := args[0]
		if config.Description == "" {
			return fmt.Errorf("--description is required")
		}

		body := "# " + name + "\n"
		switch {
		case config.BodyFile == "-":
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				return err
			}
			body = string(raw)
		case config.BodyFile != "":
			raw, err := os.ReadFile(config.BodyFile)
			if err != nil {
				return err
			}
			body = string(raw)
		}

		descriptor, err := skills.WriteDescriptor(skills.Frontmatter{
			Name:        name,
			Description: config.Description,
			Version:     config.Version,
			License:     config.License,
		}, body)
		if err != nil {
			return err
		}

		skillsDir, err := skillsDirForWrites()
		if err != nil {
			return err
		}
		slug := strings.TrimPrefix(skills.AssignID(skills.SourceLocal, "", name), "local-local-")
		dir := filepath.Join(skillsDir, slug)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}

		path := filepath.Join(dir, "SKILL.md")
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("skill already exists at %s", path)
		}
		if err := os.WriteFile(path, descriptor, 0o644); err != nil {
			return err
		}

		presenter.Success(fmt.Sprintf("Created %s", path))
		return nil
	},
}

func init() {
	createCmd.Flags().String("description", "", "One-line description of what the skill does")
	createCmd.Flags().String("version", "", "Skill version")
	createCmd.Flags().String("license", "", "Skill license")
	createCmd.Flags().String("body-file", "", "File with the Markdown body, or '-' for stdin")
}

// getCreateConfigFromFlags extracts create configuration from command flags
func getCreateConfigFromFlags(cmd *cobra.Command) *CreateConfig {
	config := &CreateConfig{}

	if description, err := cmd.Flags().GetString("description"); err == nil {
		config.Description = description
	}
	if version, err := cmd.Flags().GetString("version"); err == nil {
		config.Version = version
	}
	if license, err := cmd.Flags().GetString("license"); err == nil {
		config.License = license
	}
	if bodyFile, err := cmd.Flags().GetString("body-file"); err == nil {
		config.BodyFile = bodyFile
	}
	return config
}
