package commands

import (
	"context"

	logger "github.com/sirupsen/logrus"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
)

// Provision is the interface for the full provisioning pipeline.
type Provision interface {
	Execute(ctx context.Context, settings *entities.Settings, opts Options) error
}

// ProvisionCommand runs the whole pipeline: package phase, then source
// acquisition and build phase. This is the original provisioning script,
// end to end.
type ProvisionCommand struct {
	packages Packages
	build    Build
}

// NewProvisionCommand creates a new ProvisionCommand from the phase commands.
func NewProvisionCommand(packages Packages, build Build) *ProvisionCommand {
	return &ProvisionCommand{
		packages: packages,
		build:    build,
	}
}

// Execute runs both phases sequentially; the build phase never starts when
// the package phase fails.
func (it *ProvisionCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts Options,
) error {
	logger.Infof(
		"Provisioning %s %s...",
		settings.Source.Name, settings.Source.Version,
	)

	if err := it.packages.Execute(ctx, settings, opts); err != nil {
		return err
	}

	if err := it.build.Execute(ctx, settings, opts); err != nil {
		return err
	}

	logger.Info("Provisioning complete")
	return nil
}
