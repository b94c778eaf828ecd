// Package local implements the Executor interface with real processes.
package local

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	logger "github.com/sirupsen/logrus"

	domainRepos "github.com/fieldrobotics/cvsetup/internal/domain/repositories"
)

// Executor runs commands on the local system via os/exec.
type Executor struct{}

// NewExecutor creates a new local executor.
func NewExecutor() *Executor {
	return &Executor{}
}

var _ domainRepos.Executor = (*Executor)(nil)

// Run executes the command with stdout/stderr attached to the console, so
// the external tool's own output (compiler progress, package manager logs)
// reaches the user unmodified.
func (e *Executor) Run(ctx context.Context, spec domainRepos.CommandSpec) error {
	logger.Debugf("Running: %s", strings.Join(spec.Line(), " "))

	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s: %w", strings.Join(spec.Line(), " "), err)
	}
	return nil
}

// Output executes the command and returns its trimmed standard output.
func (e *Executor) Output(ctx context.Context, spec domainRepos.CommandSpec) (string, error) {
	logger.Debugf("Running: %s", strings.Join(spec.Line(), " "))

	cmd := exec.CommandContext(ctx, spec.Name, spec.Args...)
	cmd.Dir = spec.Dir
	cmd.Env = append(os.Environ(), spec.Env...)

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("%s: %w", strings.Join(spec.Line(), " "), err)
	}
	return strings.TrimSpace(string(output)), nil
}

// LookPath reports whether the named binary is on PATH.
func (e *Executor) LookPath(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
