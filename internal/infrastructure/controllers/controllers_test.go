package controllers_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldrobotics/cvsetup/internal/domain/commands"
	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
	"github.com/fieldrobotics/cvsetup/internal/infrastructure/controllers"
)

// newTestCommand mirrors the persistent flag set the real root command defines.
func newTestCommand(t *testing.T, configContent string) *cobra.Command {
	t.Helper()

	//nolint:exhaustruct // Minimal Command initialization with required fields only
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("config", "c", "", "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().BoolP("verbose", "v", false, "")
	cmd.Flags().Bool("force", false, "")
	cmd.Flags().Bool("skip-upgrade", false, "")
	cmd.Flags().IntP("jobs", "j", 0, "")
	cmd.Flags().String("workdir", "", "")

	if configContent != "" {
		path := filepath.Join(t.TempDir(), "cvsetup.yaml")
		require.NoError(t, os.WriteFile(path, []byte(configContent), 0o600))
		require.NoError(t, cmd.Flags().Set("config", path))
	}

	return cmd
}

// stubPlanCommand implements commands.Plan.
type stubPlanCommand struct {
	rendered string
	err      error
	// spy: options received
	opts []commands.Options
}

func (s *stubPlanCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.Options,
) (string, error) {
	s.opts = append(s.opts, opts)
	return s.rendered, s.err
}

// stubPhaseCommand implements Provision, Packages, and Build.
type stubPhaseCommand struct {
	err  error
	opts []commands.Options
}

func (s *stubPhaseCommand) Execute(
	_ context.Context,
	_ *entities.Settings,
	opts commands.Options,
) error {
	s.opts = append(s.opts, opts)
	return s.err
}

func TestControllerBinds(t *testing.T) {
	t.Parallel()

	t.Run("should expose distinct subcommand names", func(t *testing.T) {
		t.Parallel()

		// given
		all := []entities.Controller{
			controllers.NewProvisionController(&stubPhaseCommand{}),
			controllers.NewPackagesController(&stubPhaseCommand{}),
			controllers.NewBuildController(&stubPhaseCommand{}),
			controllers.NewPlanController(&stubPlanCommand{}),
		}

		// when
		uses := make(map[string]bool)
		for _, controller := range all {
			bind := controller.GetBind()
			assert.NotEmpty(t, bind.Use)
			assert.NotEmpty(t, bind.Short)
			uses[bind.Use] = true
		}

		// then
		assert.Len(t, uses, 4)
	})
}

func TestPlanController(t *testing.T) {
	t.Parallel()

	t.Run("should print the rendered plan", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &stubPlanCommand{rendered: "packages:\n  1.  refresh package index\n"}
		controller := controllers.NewPlanController(stub)
		cmd := newTestCommand(t, "manager: apt\n")
		var out bytes.Buffer
		cmd.SetOut(&out)

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		assert.Contains(t, out.String(), "refresh package index")
	})

	t.Run("should surface plan failures", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &stubPlanCommand{err: errors.New("no package manager")}
		controller := controllers.NewPlanController(stub)
		cmd := newTestCommand(t, "manager: apt\n")

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
	})
}

func TestProvisionController(t *testing.T) {
	t.Parallel()

	t.Run("should forward the flag values as options", func(t *testing.T) {
		t.Parallel()

		// given
		stub := &stubPhaseCommand{}
		controller := controllers.NewProvisionController(stub)
		cmd := newTestCommand(t, "manager: apt\n")
		require.NoError(t, cmd.Flags().Set("dry-run", "true"))
		require.NoError(t, cmd.Flags().Set("jobs", "2"))
		require.NoError(t, cmd.Flags().Set("skip-upgrade", "true"))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.NoError(t, err)
		require.Len(t, stub.opts, 1)
		assert.True(t, stub.opts[0].DryRun)
		assert.True(t, stub.opts[0].SkipUpgrade)
		assert.Equal(t, 2, stub.opts[0].Jobs)
	})

	t.Run("should fail on an unreadable config file", func(t *testing.T) {
		t.Parallel()

		// given
		controller := controllers.NewProvisionController(&stubPhaseCommand{})
		cmd := newTestCommand(t, "")
		require.NoError(t, cmd.Flags().Set("config", filepath.Join(t.TempDir(), "absent.yaml")))

		// when
		err := controller.Execute(cmd, nil)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load config")
	})
}
