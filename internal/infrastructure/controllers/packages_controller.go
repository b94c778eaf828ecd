package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fieldrobotics/cvsetup/internal/domain/commands"
	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
)

// PackagesController handles the "packages" subcommand (package phase only).
type PackagesController struct {
	command commands.Packages
}

// NewPackagesController creates a new PackagesController.
func NewPackagesController(command commands.Packages) *PackagesController {
	return &PackagesController{command: command}
}

// GetBind returns the Cobra command metadata for the packages controller.
func (it *PackagesController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "packages",
		Short: "Install the build dependencies only",
		Long: `Refresh the package index, optionally upgrade installed packages,
and install the configured build-dependency set. Re-running is safe:
installing an already-present package is a no-op for the package manager.`,
	}
}

// Execute runs the package phase.
func (it *PackagesController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, settings, readOptions(cmd))
}
