// Package dnf implements the PackageManager interface for Fedora-family
// systems using dnf.
package dnf

import (
	"context"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
	domainRepos "github.com/fieldrobotics/cvsetup/internal/domain/repositories"
)

const (
	managerName = "dnf"
	dnfBinary   = "dnf"
)

// PackageManager drives dnf through the executor.
type PackageManager struct {
	executor domainRepos.Executor
}

// NewPackageManager creates a dnf package manager.
func NewPackageManager(executor domainRepos.Executor) *PackageManager {
	return &PackageManager{executor: executor}
}

var _ domainRepos.PackageManager = (*PackageManager)(nil)

func (m *PackageManager) Name() string { return managerName }

// Available reports whether dnf exists on this system.
func (m *PackageManager) Available() bool {
	return m.executor.LookPath(dnfBinary)
}

// UpdateIndex runs "dnf makecache". Note: "dnf check-update" exits non-zero
// when updates exist, so it is unusable as an index refresh.
func (m *PackageManager) UpdateIndex(ctx context.Context) error {
	return m.executor.Run(ctx, m.command("makecache"))
}

// UpgradeAll runs "dnf -y upgrade".
func (m *PackageManager) UpgradeAll(ctx context.Context) error {
	return m.executor.Run(ctx, m.command("-y", "upgrade"))
}

// Install runs "dnf -y install" with the given packages.
func (m *PackageManager) Install(ctx context.Context, packages []string) error {
	if len(packages) == 0 {
		return nil
	}
	args := append([]string{"-y", "install"}, packages...)
	return m.executor.Run(ctx, m.command(args...))
}

// Plan returns the dnf invocations the package phase would issue.
func (m *PackageManager) Plan(groups []entities.PackageGroup, upgrade bool) entities.Plan {
	var plan entities.Plan
	plan.Add("packages", "refresh package index", m.command("makecache").Line()...)
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
		Name: dnfBinary,
		Args: args,
	}
}
