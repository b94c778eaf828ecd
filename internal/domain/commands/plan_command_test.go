package commands_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldrobotics/cvsetup/internal/domain/commands"
	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
	testdoubles "github.com/fieldrobotics/cvsetup/test"
)

func TestPlanCommand(t *testing.T) {
	t.Parallel()

	t.Run("should enumerate packages, source, and build phases in order", func(t *testing.T) {
		t.Parallel()

		// given
		manager := &testdoubles.SpyPackageManager{ManagerName: "apt", IsAvailable: true}
		source := &testdoubles.SpySourceRepository{MethodName: entities.MethodArchive}
		toolchain := &testdoubles.SpyToolchain{}
		cmd := commands.NewPlanCommand(registryWith(manager), sourcesWith(source), toolchain)

		// when
		rendered, err := cmd.Execute(
			context.Background(),
			entities.DefaultSettings(),
			commands.Options{WorkDir: t.TempDir()},
		)

		// then
		require.NoError(t, err)
		assert.Contains(t, rendered, "packages:")
		assert.Contains(t, rendered, "source:")
		assert.Contains(t, rendered, "build:")
		assert.Less(t, strings.Index(rendered, "packages:"), strings.Index(rendered, "source:"))
		assert.Less(t, strings.Index(rendered, "source:"), strings.Index(rendered, "build:"))
	})

	t.Run("should omit the upgrade step when skipped", func(t *testing.T) {
		t.Parallel()

		// given
		manager := &testdoubles.SpyPackageManager{ManagerName: "apt", IsAvailable: true}
		source := &testdoubles.SpySourceRepository{MethodName: entities.MethodArchive}
		toolchain := &testdoubles.SpyToolchain{}
		cmd := commands.NewPlanCommand(registryWith(manager), sourcesWith(source), toolchain)

		// when
		rendered, err := cmd.Execute(
			context.Background(),
			entities.DefaultSettings(),
			commands.Options{WorkDir: t.TempDir(), SkipUpgrade: true},
		)

		// then
		require.NoError(t, err)
		assert.NotContains(t, rendered, "upgrade installed packages")
	})

	t.Run("should fail when no package manager is resolvable", func(t *testing.T) {
		t.Parallel()

		// given
		manager := &testdoubles.SpyPackageManager{ManagerName: "apt", IsAvailable: false}
		source := &testdoubles.SpySourceRepository{MethodName: entities.MethodArchive}
		toolchain := &testdoubles.SpyToolchain{}
		cmd := commands.NewPlanCommand(registryWith(manager), sourcesWith(source), toolchain)

		// when
		_, err := cmd.Execute(
			context.Background(),
			entities.DefaultSettings(),
			commands.Options{WorkDir: t.TempDir()},
		)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no supported package manager")
	})
}
