package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fieldrobotics/cvsetup/internal/domain/commands"
	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
)

// ProvisionController handles the "provision" subcommand (full pipeline).
type ProvisionController struct {
	command commands.Provision
}

// NewProvisionController creates a new ProvisionController.
func NewProvisionController(command commands.Provision) *ProvisionController {
	return &ProvisionController{command: command}
}

// GetBind returns the Cobra command metadata for the provision controller.
func (it *ProvisionController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "provision",
		Short: "Provision this machine with the pinned library build",
		Long: `Run the full provisioning pipeline: refresh the package index,
upgrade installed packages, install the build dependencies, download the
pinned source release, configure and compile it, install the artifacts
system-wide, and refresh the dynamic linker cache.

Steps run strictly in order; the first failing step aborts the run.
Run as root (or under sudo) so package installation and "make install"
are permitted.`,
	}
}

// Execute runs the full pipeline.
func (it *ProvisionController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, settings, readOptions(cmd))
}
