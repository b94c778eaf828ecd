package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
	infraRepos "github.com/fieldrobotics/cvsetup/internal/infrastructure/repositories"
)

// Packages is the interface for the package installation phase.
type Packages interface {
	Execute(ctx context.Context, settings *entities.Settings, opts Options) error
}

// PackagesCommand refreshes the package index, optionally upgrades the
// system, and installs the configured build dependencies.
type PackagesCommand struct {
	managers *infraRepos.PackageManagerRegistry
}

// NewPackagesCommand creates a new PackagesCommand with the given registry.
func NewPackagesCommand(managers *infraRepos.PackageManagerRegistry) *PackagesCommand {
	return &PackagesCommand{managers: managers}
}

// Execute runs the package phase. Steps run strictly in order and the first
// failure aborts the run; there is no retry or rollback.
func (it *PackagesCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts Options,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	manager, err := it.managers.Resolve(settings.Manager)
	if err != nil {
		return err
	}
	logger.Infof("Using package manager: %s", manager.Name())

	upgrade := settings.Upgrade && !opts.SkipUpgrade

	if opts.DryRun {
		for _, step := range manager.Plan(settings.Packages, upgrade).Steps {
			logger.Infof("[DRY RUN] Would run: %s", step.Description)
		}
		return nil
	}

	logger.Info("Refreshing package index...")
	if updateErr := manager.UpdateIndex(ctx); updateErr != nil {
		return fmt.Errorf("failed to refresh package index: %w", updateErr)
	}

	if upgrade {
		logger.Info("Upgrading installed packages...")
		if upgradeErr := manager.UpgradeAll(ctx); upgradeErr != nil {
			return fmt.Errorf("failed to upgrade packages: %w", upgradeErr)
		}
	}

	for _, group := range settings.Packages {
		logger.Infof("Installing %s (%d packages)...", group.Name, len(group.Packages))
		if installErr := manager.Install(ctx, group.Packages); installErr != nil {
			return fmt.Errorf("failed to install %s: %w", group.Name, installErr)
		}
	}

	logger.Infof("Package phase complete: %d packages ensured", len(settings.AllPackages()))
	return nil
}
