package entities_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
)

func TestDefaultSettings(t *testing.T) {
	t.Parallel()

	t.Run("should pin the reference source version", func(t *testing.T) {
		t.Parallel()

		// given / when
		settings := entities.DefaultSettings()

		// then
		assert.Equal(t, "opencv", settings.Source.Name)
		assert.Equal(t, "3.4.2", settings.Source.Version)
		assert.Equal(t, entities.MethodArchive, settings.Source.Method)
	})

	t.Run("should carry exactly the reference build flag set", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()

		// when
		flags := settings.Build.Flags

		// then
		require.Len(t, flags, 5)
		assert.Equal(t, entities.BuildFlag{Name: "CMAKE_BUILD_TYPE", Value: "RELEASE"}, flags[0])
		assert.Equal(t, entities.BuildFlag{Name: "CMAKE_INSTALL_PREFIX", Value: "/usr/local"}, flags[1])
		assert.Equal(t, entities.BuildFlag{Name: "INSTALL_PYTHON_EXAMPLES", Value: "ON"}, flags[2])
		assert.Equal(t, entities.BuildFlag{Name: "INSTALL_C_EXAMPLES", Value: "OFF"}, flags[3])
		assert.Equal(t, entities.BuildFlag{Name: "BUILD_EXAMPLES", Value: "ON"}, flags[4])
	})

	t.Run("should validate cleanly", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()

		// when
		err := settings.Validate()

		// then
		require.NoError(t, err)
	})

	t.Run("should flatten package groups in order", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()

		// when
		all := settings.AllPackages()

		// then
		assert.Equal(t, "build-essential", all[0])
		assert.Contains(t, all, "cmake")
		assert.Contains(t, all, "libatlas-base-dev")
		assert.Equal(t, "python3-dev", all[len(all)-1])
	})
}

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should return defaults for an empty path", func(t *testing.T) {
		t.Parallel()

		// when
		settings, err := entities.NewSettings("")

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultSettings(), settings)
	})

	t.Run("should overlay config file values on the defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "cvsetup.yaml")
		content := `
manager: dnf
source:
  name: opencv
  version: "4.1.0"
  method: archive
  archive:
    url: https://github.com/opencv/opencv/archive/{version}.zip
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "dnf", settings.Manager)
		assert.Equal(t, "4.1.0", settings.Source.Version)
		// untouched sections keep their defaults
		assert.Equal(t, 4, settings.Build.Jobs)
		assert.NotEmpty(t, settings.Packages)
	})

	t.Run("should fail for a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "nope.yaml"))

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read config file")
	})

	t.Run("should fail for malformed yaml", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "cvsetup.yaml")
		require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o600))

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse config file")
	})

	t.Run("should reject an unknown source method", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "cvsetup.yaml")
		content := `
source:
  name: opencv
  version: "3.4.2"
  method: carrier-pigeon
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "source.method")
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("should require at least one package group", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.Packages = nil

		// when
		err := settings.Validate()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "package group")
	})

	t.Run("should reject an empty package group", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.Packages[0].Packages = nil

		// when
		err := settings.Validate()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "at least one package")
	})

	t.Run("should require build flags", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.Build.Flags = nil

		// when
		err := settings.Validate()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "build.flags")
	})

	t.Run("should require positive build parallelism", func(t *testing.T) {
		t.Parallel()

		// given
		settings := entities.DefaultSettings()
		settings.Build.Jobs = 0

		// when
		err := settings.Validate()

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "build.jobs")
	})
}
