package controllers

import (
	"go.uber.org/dig"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
)

// RegisterProviders registers all controller providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register controller constructors
	if err := container.Provide(NewProvisionController); err != nil {
		return err
	}
	if err := container.Provide(NewPackagesController); err != nil {
		return err
	}
	if err := container.Provide(NewBuildController); err != nil {
		return err
	}
	if err := container.Provide(NewPlanController); err != nil {
		return err
	}
	if err := container.Provide(NewControllers); err != nil {
		return err
	}

	return nil
}

// NewControllers aggregates all controllers into a slice for the AppInternal.
func NewControllers(
	provisionController *ProvisionController,
	packagesController *PackagesController,
	buildController *BuildController,
	planController *PlanController,
) *[]entities.Controller {
	return &[]entities.Controller{
		provisionController,
		packagesController,
		buildController,
		planController,
	}
}
