// Package gitsrc implements the SourceRepository interface with a shallow
// git clone at the pinned version tag.
package gitsrc

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	logger "github.com/sirupsen/logrus"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
	domainRepos "github.com/fieldrobotics/cvsetup/internal/domain/repositories"
)

// SourceRepository clones the upstream repository at the version tag instead
// of downloading a release archive. Useful where release archives are not
// mirrored but the repository is reachable.
type SourceRepository struct{}

// NewSourceRepository creates a git source repository.
func NewSourceRepository() *SourceRepository {
	return &SourceRepository{}
}

var _ domainRepos.SourceRepository = (*SourceRepository)(nil)

func (r *SourceRepository) Name() string { return entities.MethodGit }

// Acquire clones the repository at the version tag into the fixed target
// directory. An existing target directory is reused without cloning.
func (r *SourceRepository) Acquire(
	ctx context.Context,
	spec entities.SourceSpec,
	workDir string,
) (string, error) {
	target := filepath.Join(workDir, spec.Name)
	if _, err := os.Stat(target); err == nil {
		logger.Infof("Source directory %q already exists, skipping clone", target)
		return target, nil
	}

	logger.Infof("Cloning %s at tag %s", spec.Repository, spec.Version)

	_, cloneErr := git.PlainCloneContext(ctx, target, false, &git.CloneOptions{
		URL:           spec.Repository,
		ReferenceName: plumbing.NewTagReferenceName(spec.Version),
		SingleBranch:  true,
		Depth:         1,
		Progress:      os.Stdout,
	})
	if cloneErr != nil {
		return "", fmt.Errorf(
			"failed to clone %q at tag %q: %w",
			spec.Repository, spec.Version, cloneErr,
		)
	}

	return target, nil
}

// Plan returns the clone step Acquire would perform.
func (r *SourceRepository) Plan(spec entities.SourceSpec, workDir string) entities.Plan {
	var plan entities.Plan
	plan.Add("source", fmt.Sprintf(
		"clone %s at tag %s into %s",
		spec.Repository, spec.Version, filepath.Join(workDir, spec.Name),
	))
	return plan
}
