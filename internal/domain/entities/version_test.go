package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
)

func TestVersionAtLeast(t *testing.T) {
	t.Parallel()

	t.Run("should accept an exact match", func(t *testing.T) {
		t.Parallel()

		assert.True(t, entities.VersionAtLeast("3.4.2", "3.4.2"))
	})

	t.Run("should accept a newer installed version", func(t *testing.T) {
		t.Parallel()

		assert.True(t, entities.VersionAtLeast("4.1.0", "3.4.2"))
		assert.True(t, entities.VersionAtLeast("3.4.10", "3.4.2"))
	})

	t.Run("should reject an older installed version", func(t *testing.T) {
		t.Parallel()

		assert.False(t, entities.VersionAtLeast("3.4.1", "3.4.2"))
		assert.False(t, entities.VersionAtLeast("2.4.13", "3.4.2"))
	})

	t.Run("should tolerate a v prefix", func(t *testing.T) {
		t.Parallel()

		assert.True(t, entities.VersionAtLeast("v3.4.2", "3.4.2"))
	})

	t.Run("should fall back to equality for non-semver values", func(t *testing.T) {
		t.Parallel()

		assert.False(t, entities.VersionAtLeast("snapshot", "3.4.2"))
		assert.True(t, entities.VersionAtLeast("snapshot", "snapshot"))
	})
}
