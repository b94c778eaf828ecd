package dnf_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldrobotics/cvsetup/internal/infrastructure/repositories/dnf"
	testdoubles "github.com/fieldrobotics/cvsetup/test"
)

func TestDnfPackageManager(t *testing.T) {
	t.Parallel()

	t.Run("should refresh the index with makecache, not check-update", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &testdoubles.SpyExecutor{}
		manager := dnf.NewPackageManager(executor)

		// when
		err := manager.UpdateIndex(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, executor.RunCalls, 1)
		assert.Equal(t, []string{"dnf", "makecache"}, executor.RunCalls[0].Line())
	})

	t.Run("should install packages with -y", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &testdoubles.SpyExecutor{}
		manager := dnf.NewPackageManager(executor)

		// when
		err := manager.Install(context.Background(), []string{"cmake", "gcc-c++"})

		// then
		require.NoError(t, err)
		require.Len(t, executor.RunCalls, 1)
		assert.Equal(t,
			[]string{"dnf", "-y", "install", "cmake", "gcc-c++"},
			executor.RunCalls[0].Line(),
		)
	})

	t.Run("should upgrade everything with -y upgrade", func(t *testing.T) {
		t.Parallel()

		// given
		executor := &testdoubles.SpyExecutor{}
		manager := dnf.NewPackageManager(executor)

		// when
		err := manager.UpgradeAll(context.Background())

		// then
		require.NoError(t, err)
		require.Len(t, executor.RunCalls, 1)
		assert.Equal(t, []string{"dnf", "-y", "upgrade"}, executor.RunCalls[0].Line())
	})
}
