package repositories

import (
	"context"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
)

// Toolchain drives the external build tools: configure, compile, install,
// and the post-install linker cache refresh.
type Toolchain interface {
	// Configure generates build instructions in <srcDir>/build from the
	// configured flag set.
	Configure(ctx context.Context, srcDir string, spec entities.BuildSpec) error

	// Build compiles with the given parallelism.
	Build(ctx context.Context, srcDir string, jobs int) error

	// Install installs the built artifacts system-wide.
	Install(ctx context.Context, srcDir string) error

	// RefreshLinkerCache refreshes the dynamic linker cache so the freshly
	// installed shared libraries are resolvable.
	RefreshLinkerCache(ctx context.Context) error

	// InstalledVersion returns the version of the named library already
	// installed on the system, or an empty string when it is absent.
	InstalledVersion(ctx context.Context, name string) string

	// Plan returns the steps a full build phase would issue.
	Plan(srcDir string, spec entities.BuildSpec, jobs int) entities.Plan
}
