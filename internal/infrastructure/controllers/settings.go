package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fieldrobotics/cvsetup/internal/domain/commands"
	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
)

// loadSettings resolves the configuration for a command invocation: the
// --config flag, then the standard file locations, then built-in defaults.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = entities.FindConfigFile()
	}

	if path == "" {
		logger.Debug("No config file found, using built-in defaults")
	} else {
		logger.Infof("Using config file: %s", path)
	}

	settings, err := entities.NewSettings(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return settings, nil
}

// readOptions collects the shared runtime flags.
func readOptions(cmd *cobra.Command) commands.Options {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	force, _ := cmd.Flags().GetBool("force")
	skipUpgrade, _ := cmd.Flags().GetBool("skip-upgrade")
	jobs, _ := cmd.Flags().GetInt("jobs")
	workDir, _ := cmd.Flags().GetString("workdir")

	return commands.Options{
		DryRun:      dryRun,
		Verbose:     verbose,
		Force:       force,
		SkipUpgrade: skipUpgrade,
		Jobs:        jobs,
		WorkDir:     workDir,
	}
}
