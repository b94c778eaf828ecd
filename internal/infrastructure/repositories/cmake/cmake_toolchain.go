// Package cmake implements the Toolchain interface with cmake, make, and
// ldconfig.
package cmake

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	logger "github.com/sirupsen/logrus"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
	domainRepos "github.com/fieldrobotics/cvsetup/internal/domain/repositories"
)

const (
	buildSubdir  = "build"
	buildDirMode = 0o755
)

// Toolchain drives an out-of-tree cmake build through the executor.
type Toolchain struct {
	executor domainRepos.Executor
}

// NewToolchain creates a cmake toolchain.
func NewToolchain(executor domainRepos.Executor) *Toolchain {
	return &Toolchain{executor: executor}
}

var _ domainRepos.Toolchain = (*Toolchain)(nil)

// Configure creates <srcDir>/build and runs cmake there with exactly the
// configured flag set.
func (t *Toolchain) Configure(ctx context.Context, srcDir string, spec entities.BuildSpec) error {
	buildDir := filepath.Join(srcDir, buildSubdir)
	if err := os.MkdirAll(buildDir, buildDirMode); err != nil {
		return fmt.Errorf("failed to create build directory %q: %w", buildDir, err)
	}

	return t.executor.Run(ctx, domainRepos.CommandSpec{
		Name: "cmake",
		Args: spec.ConfigureArgs(),
		Dir:  buildDir,
	})
}

// Build runs make with the given parallelism.
func (t *Toolchain) Build(ctx context.Context, srcDir string, jobs int) error {
	return t.executor.Run(ctx, domainRepos.CommandSpec{
		Name: "make",
		Args: []string{"-j" + strconv.Itoa(jobs)},
		Dir:  filepath.Join(srcDir, buildSubdir),
	})
}

// Install runs "make install" in the build directory.
func (t *Toolchain) Install(ctx context.Context, srcDir string) error {
	return t.executor.Run(ctx, domainRepos.CommandSpec{
		Name: "make",
		Args: []string{"install"},
		Dir:  filepath.Join(srcDir, buildSubdir),
	})
}

// RefreshLinkerCache runs ldconfig so the new shared libraries resolve.
func (t *Toolchain) RefreshLinkerCache(ctx context.Context) error {
	return t.executor.Run(ctx, domainRepos.CommandSpec{
		Name: "ldconfig",
	})
}

// InstalledVersion asks pkg-config for the installed version of the named
// library. Any failure (pkg-config missing, library not registered) is
// treated as "not installed".
func (t *Toolchain) InstalledVersion(ctx context.Context, name string) string {
	version, err := t.executor.Output(ctx, domainRepos.CommandSpec{
		Name: "pkg-config",
		Args: []string{"--modversion", name},
	})
	if err != nil {
		logger.Debugf("pkg-config reports no installed %q: %v", name, err)
		return ""
	}
	return version
}

// Plan returns the configure/build/install/ldconfig steps.
func (t *Toolchain) Plan(srcDir string, spec entities.BuildSpec, jobs int) entities.Plan {
	buildDir := filepath.Join(srcDir, buildSubdir)

	var plan entities.Plan
	plan.Add("build", "configure in "+buildDir,
		append([]string{"cmake"}, spec.ConfigureArgs()...)...)
	plan.Add("build", "compile", "make", "-j"+strconv.Itoa(jobs))
	plan.Add("build", "install artifacts system-wide", "make", "install")
	plan.Add("build", "refresh dynamic linker cache", "ldconfig")
	return plan
}
