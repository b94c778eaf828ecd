package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fieldrobotics/cvsetup/internal/domain/commands"
	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
)

// BuildController handles the "build" subcommand (source and build phase only).
type BuildController struct {
	command commands.Build
}

// NewBuildController creates a new BuildController.
func NewBuildController(command commands.Build) *BuildController {
	return &BuildController{command: command}
}

// GetBind returns the Cobra command metadata for the build controller.
func (it *BuildController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "build",
		Short: "Download and build the pinned library from source",
		Long: `Acquire the pinned source release (archive download or git clone),
configure it with the exact flag set, compile, install the artifacts, and
refresh the dynamic linker cache. Assumes the build dependencies are
already installed (run "packages" or "provision" otherwise).

The phase is skipped when the installed library already satisfies the
pinned version; pass --force to rebuild anyway.`,
	}
}

// Execute runs the build phase.
func (it *BuildController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, settings, readOptions(cmd))
}
