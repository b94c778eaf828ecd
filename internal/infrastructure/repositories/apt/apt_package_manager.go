// Package apt implements the PackageManager interface for Debian-family
// systems using apt-get.
package apt

import (
	"context"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
	domainRepos "github.com/fieldrobotics/cvsetup/internal/domain/repositories"
)

const (
	managerName = "apt"
	aptBinary   = "apt-get"

	// Keeps dpkg from blocking on configuration prompts during unattended runs.
	nonInteractiveEnv = "DEBIAN_FRONTEND=noninteractive"
)

// PackageManager drives apt-get through the executor.
type PackageManager struct {
	executor domainRepos.Executor
}

// NewPackageManager creates an apt package manager.
func NewPackageManager(executor domainRepos.Executor) *PackageManager {
	return &PackageManager{executor: executor}
}

var _ domainRepos.PackageManager = (*PackageManager)(nil)

func (m *PackageManager) Name() string { return managerName }

// Available reports whether apt-get exists on this system.
func (m *PackageManager) Available() bool {
	return m.executor.LookPath(aptBinary)
}

// UpdateIndex runs "apt-get update".
func (m *PackageManager) UpdateIndex(ctx context.Context) error {
	return m.executor.Run(ctx, m.command("update"))
}

// UpgradeAll runs "apt-get -y upgrade".
func (m *PackageManager) UpgradeAll(ctx context.Context) error {
	return m.executor.Run(ctx, m.command("-y", "upgrade"))
}

// Install runs "apt-get -y install" with the given packages. apt treats an
// already-installed package as a no-op, so re-runs are idempotent.
func (m *PackageManager) Install(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return nil
	}
	args := append([]string{"-y", "install"}, packages...)
	return m.executor.Run(ctx, m.command(args...))
}

// Plan returns the apt-get invocations the package phase would issue.
func (m *PackageManager) Plan(groups []entities.PackageGroup, upgrade bool) entities.Plan {
	var plan entities.Plan
	plan.Add("packages", "refresh package index", m.command("update").Line()...)
	if upgrade {
		plan.Add("packages", "upgrade installed packages", m.command("-y", "upgrade").Line()...)
	}
	for _, group := range groups {
		args := append([]string{"-y", "install"}, group.Packages...)
		plan.Add("packages", "install "+group.Name, m.command(args...).Line()...)
	}
	return plan
}

func (m *PackageManager) command(args ...string) domainRepos.CommandSpec {
	return domainRepos.CommandSpec{
		Name: aptBinary,
		Args: args,
		Env:  []string{nonInteractiveEnv},
	}
}
