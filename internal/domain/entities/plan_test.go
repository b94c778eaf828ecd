package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
)

func TestPlanRender(t *testing.T) {
	t.Parallel()

	t.Run("should number steps and group them by phase", func(t *testing.T) {
		t.Parallel()

		// given
		var plan entities.Plan
		plan.Add("packages", "refresh package index", "apt-get", "update")
		plan.Add("packages", "install build tools", "apt-get", "-y", "install", "cmake")
		plan.Add("build", "compile", "make", "-j4")

		// when
		rendered := plan.Render()

		// then
		assert.Contains(t, rendered, "packages:\n")
		assert.Contains(t, rendered, "build:\n")
		assert.Contains(t, rendered, "1.")
		assert.Contains(t, rendered, "3.")
		assert.Contains(t, rendered, "$ apt-get update")
		assert.Contains(t, rendered, "$ make -j4")
	})

	t.Run("should omit the command line for in-process steps", func(t *testing.T) {
		t.Parallel()

		// given
		var plan entities.Plan
		plan.Add("source", "extract opencv.zip")

		// when
		rendered := plan.Render()

		// then
		assert.Contains(t, rendered, "extract opencv.zip")
		assert.NotContains(t, rendered, "$")
	})

	t.Run("should merge plans in order with Append", func(t *testing.T) {
		t.Parallel()

		// given
		var first, second entities.Plan
		first.Add("packages", "a")
		second.Add("build", "b")

		// when
		first.Append(second)

		// then
		assert.Len(t, first.Steps, 2)
		assert.Equal(t, "b", first.Steps[1].Description)
	})
}
