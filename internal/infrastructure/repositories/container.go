package repositories

import (
	"go.uber.org/dig"

	domainRepos "github.com/fieldrobotics/cvsetup/internal/domain/repositories"
	"github.com/fieldrobotics/cvsetup/internal/infrastructure/repositories/apt"
	"github.com/fieldrobotics/cvsetup/internal/infrastructure/repositories/archive"
	"github.com/fieldrobotics/cvsetup/internal/infrastructure/repositories/cmake"
	"github.com/fieldrobotics/cvsetup/internal/infrastructure/repositories/dnf"
	"github.com/fieldrobotics/cvsetup/internal/infrastructure/repositories/gitsrc"
	"github.com/fieldrobotics/cvsetup/internal/infrastructure/repositories/local"
)

// RegisterProviders registers all repository providers with the DIG container.
func RegisterProviders(container *dig.Container) error {
	// Register the local executor behind its domain interface
	if err := container.Provide(func() domainRepos.Executor {
		return local.NewExecutor()
	}); err != nil {
		return err
	}

	// Register the package manager registry with all implementations;
	// registration order is the auto-detection order.
	if err := container.Provide(func(executor domainRepos.Executor) *PackageManagerRegistry {
		reg := NewPackageManagerRegistry()
		reg.Register(apt.NewPackageManager(executor))
		reg.Register(dnf.NewPackageManager(executor))
		return reg
	}); err != nil {
		return err
	}

	// Register the source registry with all acquisition methods
	if err := container.Provide(func() *SourceRegistry {
		reg := NewSourceRegistry()
		reg.Register(archive.NewSourceRepository())
		reg.Register(gitsrc.NewSourceRepository())
		return reg
	}); err != nil {
		return err
	}

	// Register the cmake toolchain behind its domain interface
	if err := container.Provide(func(executor domainRepos.Executor) domainRepos.Toolchain {
		return cmake.NewToolchain(executor)
	}); err != nil {
		return err
	}

	return nil
}
