package commands

import (
	"go.uber.org/dig"
)

// RegisterProviders registers all command providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register command constructors
	if err := container.Provide(NewPackagesCommand); err != nil {
		return err
	}
	if err := container.Provide(NewBuildCommand); err != nil {
		return err
	}
	if err := container.Provide(NewProvisionCommand); err != nil {
		return err
	}
	if err := container.Provide(NewPlanCommand); err != nil {
		return err
	}

	// Bind interfaces to implementations
	if err := container.Provide(func(impl *PackagesCommand) Packages {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *BuildCommand) Build {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *ProvisionCommand) Provision {
		return impl
	}); err != nil {
		return err
	}
	if err := container.Provide(func(impl *PlanCommand) Plan {
		return impl
	}); err != nil {
		return err
	}

	return nil
}
