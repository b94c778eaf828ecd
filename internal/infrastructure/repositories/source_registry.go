package repositories

import (
	"fmt"
	"strings"

	domainRepos "github.com/fieldrobotics/cvsetup/internal/domain/repositories"
)

// SourceRegistry holds the source acquisition implementations keyed by
// method name.
type SourceRegistry struct {
	sources map[string]domainRepos.SourceRepository
}

// NewSourceRegistry creates an empty source registry.
func NewSourceRegistry() *SourceRegistry {
	return &SourceRegistry{
		sources: make(map[string]domainRepos.SourceRepository),
	}
}

// Register adds a source repository under its method name.
func (r *SourceRegistry) Register(source domainRepos.SourceRepository) {
	r.sources[source.Name()] = source
}

// Get returns the source repository for the given acquisition method.
func (r *SourceRegistry) Get(method string) (domainRepos.SourceRepository, error) {
	source, ok := r.sources[method]
	if !ok {
		return nil, fmt.Errorf(
			"unknown source method %q (available: %s)",
			method, strings.Join(r.Names(), ", "),
		)
	}
	return source, nil
}

// Names returns the registered method names.
func (r *SourceRegistry) Names() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	return names
}
