package repositories

import (
	"context"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
)

// SourceRepository acquires the pinned library source tree into the work
// directory. Acquire is idempotent: when the target directory already exists
// it is reused without re-fetching.
type SourceRepository interface {
	// Name is the registry key, matching entities.MethodArchive / MethodGit.
	Name() string

	// Acquire fetches the source and returns the absolute path of the
	// directory holding the main source tree.
	Acquire(ctx context.Context, spec entities.SourceSpec, workDir string) (string, error)

	// Plan returns the steps Acquire would perform.
	Plan(spec entities.SourceSpec, workDir string) entities.Plan
}
