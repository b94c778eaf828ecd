package commands

import (
	"fmt"
	"os"
	"path/filepath"
)

// Options holds the runtime options shared by the provisioning commands.
type Options struct {
	DryRun      bool
	Verbose     bool
	Force       bool   // rebuild even when the installed version is current
	SkipUpgrade bool   // skip the full package upgrade step
	Jobs        int    // overrides the configured build parallelism when > 0
	WorkDir     string // where sources are downloaded and built; empty = home dir
}

// resolveWorkDir returns the absolute work directory, defaulting to the
// user's home directory, and makes sure it exists.
func resolveWorkDir(workDir string) (string, error) {
	if workDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home directory: %w", err)
		}
		workDir = home
	}

	abs, err := filepath.Abs(workDir)
	if err != nil {
		return "", fmt.Errorf("invalid work directory %q: %w", workDir, err)
	}

	if mkErr := os.MkdirAll(abs, 0o755); mkErr != nil {
		return "", fmt.Errorf("failed to create work directory %q: %w", abs, mkErr)
	}

	return abs, nil
}

// resolveJobs picks the CLI override when set, the configured value otherwise.
func resolveJobs(override, configured int) int {
	if override > 0 {
		return override
	}
	return configured
}
