package repositories

import (
	"context"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
)

// PackageManager abstracts the OS-level package manager used to install the
// precompiled build dependencies. Implementations must be idempotent with
// respect to Install: installing an already-present package is a no-op.
type PackageManager interface {
	// Name is the registry key ("apt", "dnf").
	Name() string

	// Available reports whether the manager's binary exists on this system.
	Available() bool

	// UpdateIndex refreshes the package index.
	UpdateIndex(ctx context.Context) error

	// UpgradeAll upgrades every installed package.
	UpgradeAll(ctx context.Context) error

	// Install installs the given packages, in order.
	Install(ctx context.Context, packages []string) error

	// Plan returns the steps the above operations would issue.
	Plan(groups []entities.PackageGroup, upgrade bool) entities.Plan
}
