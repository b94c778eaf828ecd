package gitsrc_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
	"github.com/fieldrobotics/cvsetup/internal/infrastructure/repositories/gitsrc"
)

func TestGitSourceRepository(t *testing.T) {
	t.Parallel()

	t.Run("should register under the git method", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, entities.MethodGit, gitsrc.NewSourceRepository().Name())
	})

	t.Run("should reuse an existing source directory without cloning", func(t *testing.T) {
		t.Parallel()

		// given
		workDir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(workDir, "opencv"), 0o755))
		repo := gitsrc.NewSourceRepository()
		spec := entities.SourceSpec{
			Name:    "opencv",
			Version: "3.4.2",
			Method:  entities.MethodGit,
			// unreachable URL proves no clone is attempted
			Repository: "http://127.0.0.1:1/opencv.git",
		}

		// when
		srcDir, err := repo.Acquire(context.Background(), spec, workDir)

		// then
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(workDir, "opencv"), srcDir)
	})

	t.Run("should plan a tagged clone into the target directory", func(t *testing.T) {
		t.Parallel()

		// given
		repo := gitsrc.NewSourceRepository()
		spec := entities.SourceSpec{
			Name:       "opencv",
			Version:    "3.4.2",
			Method:     entities.MethodGit,
			Repository: "https://github.com/opencv/opencv",
		}

		// when
		plan := repo.Plan(spec, "/home/pi")

		// then
		require.Len(t, plan.Steps, 1)
		assert.Contains(t, plan.Steps[0].Description, "tag 3.4.2")
		assert.Contains(t, plan.Steps[0].Description, filepath.Join("/home/pi", "opencv"))
	})
}
