package commands

import (
	"context"
	"path/filepath"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
	domainRepos "github.com/fieldrobotics/cvsetup/internal/domain/repositories"
	infraRepos "github.com/fieldrobotics/cvsetup/internal/infrastructure/repositories"
)

// Plan is the interface for the plan command.
type Plan interface {
	Execute(ctx context.Context, settings *entities.Settings, opts Options) (string, error)
}

// PlanCommand resolves the configuration into the full ordered step list a
// provisioning run would execute, without touching the system.
type PlanCommand struct {
	managers  *infraRepos.PackageManagerRegistry
	sources   *infraRepos.SourceRegistry
	toolchain domainRepos.Toolchain
}

// NewPlanCommand creates a new PlanCommand.
func NewPlanCommand(
	managers *infraRepos.PackageManagerRegistry,
	sources *infraRepos.SourceRegistry,
	toolchain domainRepos.Toolchain,
) *PlanCommand {
	return &PlanCommand{
		managers:  managers,
		sources:   sources,
		toolchain: toolchain,
	}
}

// Execute renders the resolved plan.
func (it *PlanCommand) Execute(
	_ context.Context,
	settings *entities.Settings,
	opts Options,
) (string, error) {
	manager, err := it.managers.Resolve(settings.Manager)
	if err != nil {
		return "", err
	}

	source, sourceErr := it.sources.Get(settings.Source.Method)
	if sourceErr != nil {
		return "", sourceErr
	}

	workDir, workDirErr := resolveWorkDir(opts.WorkDir)
	if workDirErr != nil {
		return "", workDirErr
	}

	jobs := resolveJobs(opts.Jobs, settings.Build.Jobs)
	upgrade := settings.Upgrade && !opts.SkipUpgrade

	plan := manager.Plan(settings.Packages, upgrade)
	plan.Append(source.Plan(settings.Source, workDir))
	plan.Append(it.toolchain.Plan(
		filepath.Join(workDir, settings.Source.Name), settings.Build, jobs,
	))

	return plan.Render(), nil
}
