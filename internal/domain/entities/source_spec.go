package entities

import (
	"errors"
	"fmt"
	"strings"
)

// Acquisition methods for the pinned source tree.
const (
	MethodArchive = "archive" // download + extract a release archive
	MethodGit     = "git"     // shallow clone at the version tag
)

// SourceSpec pins the library source to acquire: a name, a single version
// literal, and how to fetch it. The version literal is declared exactly once
// here; archive URLs and extracted directory names are both derived from it.
type SourceSpec struct {
	Name       string        `yaml:"name"`
	Version    string        `yaml:"version"`
	Method     string        `yaml:"method"`
	Repository string        `yaml:"repository"` // clone URL for the git method
	Archive    ArchiveSpec   `yaml:"archive"`
	Extras     []ArchiveSpec `yaml:"extras"` // companion archives, e.g. contrib modules
}

// ArchiveSpec describes a single downloadable archive. The URL is a template
// in which every "{version}" placeholder is replaced with the source version.
// An empty Name means the archive is the main source tree itself.
type ArchiveSpec struct {
	Name   string `yaml:"name"`
	URL    string `yaml:"url"`
	SHA256 string `yaml:"sha256"` // optional content digest, hex encoded
}

// ResolveURL expands the URL template with the given version.
func (a ArchiveSpec) ResolveURL(version string) string {
	return strings.ReplaceAll(a.URL, "{version}", version)
}

// ExtractedDir returns the directory name the archive unpacks to, following
// the GitHub release archive convention of "<name>-<version>".
func (a ArchiveSpec) ExtractedDir(fallbackName, version string) string {
	name := a.Name
	if name == "" {
		name = fallbackName
	}
	return name + "-" + version
}

// TargetDir returns the fixed directory name the extracted tree is renamed
// to, so later steps never embed the version in a path.
func (a ArchiveSpec) TargetDir(fallbackName string) string {
	if a.Name == "" {
		return fallbackName
	}
	return a.Name
}

// Archives returns the main archive plus any extras, in fetch order.
func (s SourceSpec) Archives() []ArchiveSpec {
	return append([]ArchiveSpec{s.Archive}, s.Extras...)
}

// Validate checks the source pin for completeness.
func (s SourceSpec) Validate() error {
	if s.Name == "" {
		return errors.New("source.name is required")
	}
	if s.Version == "" {
		return errors.New("source.version is required")
	}

	switch s.Method {
	case MethodArchive:
		if s.Archive.URL == "" {
			return errors.New("source.archive.url is required for the archive method")
		}
		for i, extra := range s.Extras {
			if extra.Name == "" {
				return fmt.Errorf("source.extras[%d].name is required", i)
			}
			if extra.URL == "" {
				return fmt.Errorf("source.extras[%d].url is required", i)
			}
		}
	case MethodGit:
		if s.Repository == "" {
			return errors.New("source.repository is required for the git method")
		}
	default:
		return fmt.Errorf("source.method must be %q or %q, got %q", MethodArchive, MethodGit, s.Method)
	}

	return nil
}
