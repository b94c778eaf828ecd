package repositories

import (
	"fmt"
	"strings"

	domainRepos "github.com/fieldrobotics/cvsetup/internal/domain/repositories"
)

// PackageManagerRegistry holds the known package manager implementations,
// keeping registration order for deterministic auto-detection.
type PackageManagerRegistry struct {
	managers map[string]domainRepos.PackageManager
	order    []string
}

// NewPackageManagerRegistry creates an empty registry.
func NewPackageManagerRegistry() *PackageManagerRegistry {
	return &PackageManagerRegistry{
		managers: make(map[string]domainRepos.PackageManager),
	}
}

// Register adds a package manager under its name.
func (r *PackageManagerRegistry) Register(manager domainRepos.PackageManager) {
	if _, exists := r.managers[manager.Name()]; !exists {
		r.order = append(r.order, manager.Name())
	}
	r.managers[manager.Name()] = manager
}

// Get returns the package manager with the given name.
func (r *PackageManagerRegistry) Get(name string) (domainRepos.PackageManager, error) {
	manager, ok := r.managers[name]
	if !ok {
		return nil, fmt.Errorf(
			"unknown package manager %q (available: %s)",
			name, strings.Join(r.Names(), ", "),
		)
	}
	return manager, nil
}

// Resolve returns the manager with the given name, or, when the name is
// empty, the first registered manager whose binary is present on this system.
func (r *PackageManagerRegistry) Resolve(name string) (domainRepos.PackageManager, error) {
	if name != "" {
		return r.Get(name)
	}

	for _, key := range r.order {
		if r.managers[key].Available() {
			return r.managers[key], nil
		}
	}

	return nil, fmt.Errorf(
		"no supported package manager found on this system (tried: %s)",
		strings.Join(r.Names(), ", "),
	)
}

// Names returns the registered manager names in registration order.
func (r *PackageManagerRegistry) Names() []string {
	return append([]string(nil), r.order...)
}
