package commands

import (
	"context"
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
	domainRepos "github.com/fieldrobotics/cvsetup/internal/domain/repositories"
	infraRepos "github.com/fieldrobotics/cvsetup/internal/infrastructure/repositories"
)

// Build is the interface for the source acquisition and build phase.
type Build interface {
	Execute(ctx context.Context, settings *entities.Settings, opts Options) error
}

// BuildCommand acquires the pinned source tree, configures it with the exact
// flag set, compiles, installs, and refreshes the dynamic linker cache.
type BuildCommand struct {
	sources   *infraRepos.SourceRegistry
	toolchain domainRepos.Toolchain
}

// NewBuildCommand creates a new BuildCommand.
func NewBuildCommand(
	sources *infraRepos.SourceRegistry,
	toolchain domainRepos.Toolchain,
) *BuildCommand {
	return &BuildCommand{
		sources:   sources,
		toolchain: toolchain,
	}
}

// Execute runs the build phase end to end.
func (it *BuildCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts Options,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	workDir, err := resolveWorkDir(opts.WorkDir)
	if err != nil {
		return err
	}

	jobs := resolveJobs(opts.Jobs, settings.Build.Jobs)
	spec := settings.Source

	// Skip the whole phase when the installed library already satisfies the
	// pin. --force rebuilds regardless.
	installed := it.toolchain.InstalledVersion(ctx, spec.Name)
	if installed != "" && entities.VersionAtLeast(installed, spec.Version) && !opts.Force {
		logger.Infof(
			"%s %s is already installed (target %s), skipping build; use --force to rebuild",
			spec.Name, installed, spec.Version,
		)
		return nil
	}

	source, sourceErr := it.sources.Get(spec.Method)
	if sourceErr != nil {
		return sourceErr
	}

	if opts.DryRun {
		plan := source.Plan(spec, workDir)
		plan.Append(it.toolchain.Plan(filepath.Join(workDir, spec.Name), settings.Build, jobs))
		for _, step := range plan.Steps {
			logger.Infof("[DRY RUN] Would run: %s", step.Description)
		}
		return nil
	}

	srcDir, acquireErr := source.Acquire(ctx, spec, workDir)
	if acquireErr != nil {
		return fmt.Errorf("failed to acquire %s %s: %w", spec.Name, spec.Version, acquireErr)
	}
	logger.Infof("Source tree ready at %s", srcDir)

	logger.Info("Configuring build...")
	if configureErr := it.toolchain.Configure(ctx, srcDir, settings.Build); configureErr != nil {
		return fmt.Errorf("failed to configure build: %w", configureErr)
	}

	logger.Infof("Compiling with %d jobs (this can take a while)...", jobs)
	if buildErr := it.toolchain.Build(ctx, srcDir, jobs); buildErr != nil {
		return fmt.Errorf("build failed: %w", buildErr)
	}

	logger.Info("Installing artifacts...")
	if installErr := it.toolchain.Install(ctx, srcDir); installErr != nil {
		return fmt.Errorf("failed to install artifacts: %w", installErr)
	}

	logger.Info("Refreshing dynamic linker cache...")
	if linkerErr := it.toolchain.RefreshLinkerCache(ctx); linkerErr != nil {
		return fmt.Errorf("failed to refresh linker cache: %w", linkerErr)
	}

	logger.Infof("%s %s installed", spec.Name, spec.Version)
	return nil
}
