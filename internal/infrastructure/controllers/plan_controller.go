package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fieldrobotics/cvsetup/internal/domain/commands"
	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
)

// PlanController handles the "plan" subcommand.
type PlanController struct {
	command commands.Plan
}

// NewPlanController creates a new PlanController.
func NewPlanController(command commands.Plan) *PlanController {
	return &PlanController{command: command}
}

// GetBind returns the Cobra command metadata for the plan controller.
func (it *PlanController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "plan",
		Short: "Show every step a provisioning run would execute",
		Long: `Resolve the configuration and print the ordered step list of a full
provisioning run: package manager invocations, the constructed download
URL, the extraction target, the exact build-configuration flag list, and
the build, install, and linker cache commands. Nothing is executed.`,
	}
}

// Execute renders and prints the plan.
func (it *PlanController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	rendered, planErr := it.command.Execute(ctx, settings, readOptions(cmd))
	if planErr != nil {
		return planErr
	}

	fmt.Fprint(cmd.OutOrStdout(), rendered)
	return nil
}
