package repositories

import (
	"context"
)

// CommandSpec describes a single external process invocation.
type CommandSpec struct {
	Name string
	Args []string
	Dir  string   // working directory; empty means the current directory
	Env  []string // extra KEY=VALUE entries appended to the inherited environment
}

// Line renders the invocation as a flat command line for plans and logs.
func (s CommandSpec) Line() []string {
	return append([]string{s.Name}, s.Args...)
}

// Executor runs external processes. Every shell-out in cvsetup goes through
// this interface so commands can verify invocations with test doubles.
type Executor interface {
	// Run executes the command, streaming its output to the console.
	Run(ctx context.Context, spec CommandSpec) error

	// Output executes the command and returns its trimmed standard output.
	Output(ctx context.Context, spec CommandSpec) (string, error)

	// LookPath reports whether the named binary is on PATH.
	LookPath(name string) bool
}
