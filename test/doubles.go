// Package testdoubles provides test doubles (spies, stubs, dummies) for domain
// interfaces. These are hand-crafted implementations, no mock frameworks.
package testdoubles

import (
	"context"

	"github.com/fieldrobotics/cvsetup/internal/domain/entities"
	domainRepos "github.com/fieldrobotics/cvsetup/internal/domain/repositories"
)

// ---------------------------------------------------------------------------
// SpyExecutor
// ---------------------------------------------------------------------------

// SpyExecutor implements repositories.Executor as a configurable spy.
// Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpyExecutor struct {
	// --- Run ---
	RunErr error
	// spy: specs received
	RunCalls []domainRepos.CommandSpec

	// --- Output ---
	Outputs   map[string]string // command name -> stdout
	OutputErr error
	// spy: specs received
	OutputCalls []domainRepos.CommandSpec

	// --- LookPath ---
	ExistingBinaries map[string]bool // binary name -> on PATH
	// spy: names checked
	LookedUp []string
}

var _ domainRepos.Executor = (*SpyExecutor)(nil)

func (e *SpyExecutor) Run(_ context.Context, spec domainRepos.CommandSpec) error {
	e.RunCalls = append(e.RunCalls, spec)
	return e.RunErr
}

func (e *SpyExecutor) Output(_ context.Context, spec domainRepos.CommandSpec) (string, error) {
	e.OutputCalls = append(e.OutputCalls, spec)
	if e.OutputErr != nil {
		return "", e.OutputErr
	}
	if e.Outputs != nil {
		return e.Outputs[spec.Name], nil
	}
	return "", nil
}

func (e *SpyExecutor) LookPath(name string) bool {
	e.LookedUp = append(e.LookedUp, name)
	if e.ExistingBinaries != nil {
		return e.ExistingBinaries[name]
	}
	return false
}

// RunLines renders every Run invocation as a flat command line, in order.
func (e *SpyExecutor) RunLines() [][]string {
	lines := make([][]string, 0, len(e.RunCalls))
	for _, spec := range e.RunCalls {
		lines = append(lines, spec.Line())
	}
	return lines
}

// ---------------------------------------------------------------------------
// SpyPackageManager
// ---------------------------------------------------------------------------

// SpyPackageManager implements repositories.PackageManager as a configurable spy.
type SpyPackageManager struct {
	// --- identity ---
	ManagerName string
	IsAvailable bool

	// --- errors ---
	UpdateIndexErr error
	UpgradeAllErr  error
	InstallErr     error

	// spy: calls received
	UpdateIndexCalls int
	UpgradeAllCalls  int
	InstallCalls     [][]string
}

var _ domainRepos.PackageManager = (*SpyPackageManager)(nil)

func (m *SpyPackageManager) Name() string { return m.ManagerName }

func (m *SpyPackageManager) Available() bool { return m.IsAvailable }

func (m *SpyPackageManager) UpdateIndex(_ context.Context) error {
	m.UpdateIndexCalls++
	return m.UpdateIndexErr
}

func (m *SpyPackageManager) UpgradeAll(_ context.Context) error {
	m.UpgradeAllCalls++
	return m.UpgradeAllErr
}

func (m *SpyPackageManager) Install(_ context.Context, packages []string) error {
	m.InstallCalls = append(m.InstallCalls, packages)
	return m.InstallErr
}

func (m *SpyPackageManager) Plan(groups []entities.PackageGroup, upgrade bool) entities.Plan {
	var plan entities.Plan
	plan.Add("packages", "refresh package index")
	if upgrade {
		plan.Add("packages", "upgrade installed packages")
	}
	for _, group := range groups {
		plan.Add("packages", "install "+group.Name)
	}
	return plan
}

// ---------------------------------------------------------------------------
// SpySourceRepository
// ---------------------------------------------------------------------------

// SpySourceRepository implements repositories.SourceRepository as a configurable spy.
type SpySourceRepository struct {
	// --- identity ---
	MethodName string

	// --- Acquire ---
	SourceDir  string
	AcquireErr error
	// spy: calls received
	AcquireCalls []AcquireCall
}

// AcquireCall records a single invocation of Acquire.
type AcquireCall struct {
	Spec    entities.SourceSpec
	WorkDir string
}

var _ domainRepos.SourceRepository = (*SpySourceRepository)(nil)

func (r *SpySourceRepository) Name() string { return r.MethodName }

func (r *SpySourceRepository) Acquire(
	_ context.Context,
	spec entities.SourceSpec,
	workDir string,
) (string, error) {
	r.AcquireCalls = append(r.AcquireCalls, AcquireCall{Spec: spec, WorkDir: workDir})
	return r.SourceDir, r.AcquireErr
}

func (r *SpySourceRepository) Plan(spec entities.SourceSpec, _ string) entities.Plan {
	var plan entities.Plan
	plan.Add("source", "acquire "+spec.Name+" "+spec.Version)
	return plan
}

// ---------------------------------------------------------------------------
// SpyToolchain
// ---------------------------------------------------------------------------

// SpyToolchain implements repositories.Toolchain as a configurable spy.
type SpyToolchain struct {
	// --- InstalledVersion ---
	Installed string

	// --- errors ---
	ConfigureErr error
	BuildErr     error
	InstallErr   error
	LinkerErr    error

	// spy: calls received
	ConfigureCalls []ConfigureCall
	BuildCalls     []BuildCall
	InstallDirs    []string
	LinkerCalls    int
	VersionQueries []string
}

// ConfigureCall records a single invocation of Configure.
type ConfigureCall struct {
	SrcDir string
	Spec   entities.BuildSpec
}

// BuildCall records a single invocation of Build.
type BuildCall struct {
	SrcDir string
	Jobs   int
}

var _ domainRepos.Toolchain = (*SpyToolchain)(nil)

func (t *SpyToolchain) Configure(
	_ context.Context,
	srcDir string,
	spec entities.BuildSpec,
) error {
	t.ConfigureCalls = append(t.ConfigureCalls, ConfigureCall{SrcDir: srcDir, Spec: spec})
	return t.ConfigureErr
}

func (t *SpyToolchain) Build(_ context.Context, srcDir string, jobs int) error {
	t.BuildCalls = append(t.BuildCalls, BuildCall{SrcDir: srcDir, Jobs: jobs})
	return t.BuildErr
}

func (t *SpyToolchain) Install(_ context.Context, srcDir string) error {
	t.InstallDirs = append(t.InstallDirs, srcDir)
	return t.InstallErr
}

func (t *SpyToolchain) RefreshLinkerCache(_ context.Context) error {
	t.LinkerCalls++
	return t.LinkerErr
}

func (t *SpyToolchain) InstalledVersion(_ context.Context, name string) string {
	t.VersionQueries = append(t.VersionQueries, name)
	return t.Installed
}

func (t *SpyToolchain) Plan(srcDir string, _ entities.BuildSpec, _ int) entities.Plan {
	var plan entities.Plan
	plan.Add("build", "configure in "+srcDir)
	plan.Add("build", "compile")
	plan.Add("build", "install artifacts system-wide")
	plan.Add("build", "refresh dynamic linker cache")
	return plan
}
