package entities

import (
	"errors"
	"fmt"
)

// BuildSpec holds the build-configuration flags and the compile parallelism
// handed to the external build toolchain. Flags are an ordered list, not a
// map: the configure invocation must receive exactly the configured set, in
// order, with nothing added or dropped.
type BuildSpec struct {
	Flags []BuildFlag `yaml:"flags"`
	Jobs  int         `yaml:"jobs"`
}

// BuildFlag is a single -D NAME=VALUE feature toggle or path.
type BuildFlag struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// ConfigureArgs renders the cmake argument list for an out-of-tree build
// where the source root is the parent of the build directory.
func (b BuildSpec) ConfigureArgs() []string {
	args := make([]string, 0, len(b.Flags)*2+1)
	for _, flag := range b.Flags {
		args = append(args, "-D", flag.Name+"="+flag.Value)
	}
	return append(args, "..")
}

// Validate checks the build configuration for completeness.
func (b BuildSpec) Validate() error {
	if len(b.Flags) == 0 {
		return errors.New("build.flags must list at least one flag")
	}
	for i, flag := range b.Flags {
		if flag.Name == "" {
			return fmt.Errorf("build.flags[%d].name is required", i)
		}
	}
	if b.Jobs < 1 {
		return errors.New("build.jobs must be at least 1")
	}
	return nil
}
