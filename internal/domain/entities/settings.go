package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Settings is the top-level configuration for cvsetup. Every value defaults
// to the literals of the reference provisioning run, so an empty (or absent)
// config file provisions exactly the well-known OpenCV 3.4.2 build.
type Settings struct {
	Manager  string         `yaml:"manager"`  // "apt", "dnf", or "" for auto-detect
	Upgrade  bool           `yaml:"upgrade"`  // run a full package upgrade before installing
	Packages []PackageGroup `yaml:"packages"` // ordered groups of build dependencies
	Source   SourceSpec     `yaml:"source"`
	Build    BuildSpec      `yaml:"build"`
}

// PackageGroup is a named, ordered list of package names handed verbatim to
// the package manager. Grouping exists only for readable configs and plans;
// installation flattens the groups in order.
type PackageGroup struct {
	Name     string   `yaml:"name"`
	Packages []string `yaml:"packages"`
}

// AllPackages flattens the groups into a single ordered package list.
func (s *Settings) AllPackages() []string {
	var all []string
	for _, group := range s.Packages {
		all = append(all, group.Packages...)
	}
	return all
}

// NewSettings loads the configuration from the given path. An empty path
// returns the built-in defaults.
func NewSettings(path string) (*Settings, error) {
	settings := DefaultSettings()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns an empty path (not an error) when none is found, since cvsetup is
// fully functional on defaults alone.
func FindConfigFile() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".cvsetup.yaml",
		".cvsetup.yml",
		"cvsetup.yaml",
		"cvsetup.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p
			}
		}
	}

	return ""
}

// Validate checks for required configuration values.
func (s *Settings) Validate() error {
	if len(s.Packages) == 0 {
		return errors.New("at least one package group must be configured")
	}
	for i, group := range s.Packages {
		if len(group.Packages) == 0 {
			return fmt.Errorf("packages[%d] (%q) must list at least one package", i, group.Name)
		}
	}

	if validateErr := s.Source.Validate(); validateErr != nil {
		return validateErr
	}

	return s.Build.Validate()
}

// DefaultSettings returns the built-in configuration: the package lists,
// source pin, and build flags of the reference OpenCV 3.4.2 provisioning run.
func DefaultSettings() *Settings {
	return &Settings{
		Manager: "",
		Upgrade: true,
		Packages: []PackageGroup{
			{
				Name:     "build tools",
				Packages: []string{"build-essential", "cmake", "pkg-config", "wget", "unzip"},
			},
			{
				Name:     "image codecs",
				Packages: []string{"libjpeg-dev", "libtiff5-dev", "libjasper-dev", "libpng12-dev"},
			},
			{
				Name: "video io",
				Packages: []string{
					"libavcodec-dev", "libavformat-dev", "libswscale-dev",
					"libv4l-dev", "libxvidcore-dev", "libx264-dev",
				},
			},
			{
				Name:     "gui",
				Packages: []string{"libgtk2.0-dev"},
			},
			{
				Name:     "math",
				Packages: []string{"libatlas-base-dev", "gfortran"},
			},
			{
				Name:     "python headers",
				Packages: []string{"python2.7-dev", "python3-dev"},
			},
		},
		Source: SourceSpec{
			Name:       "opencv",
			Version:    "3.4.2",
			Method:     MethodArchive,
			Repository: "https://github.com/opencv/opencv",
			Archive: ArchiveSpec{
				URL: "https://github.com/opencv/opencv/archive/{version}.zip",
			},
		},
		Build: BuildSpec{
			Flags: []BuildFlag{
				{Name: "CMAKE_BUILD_TYPE", Value: "RELEASE"},
				{Name: "CMAKE_INSTALL_PREFIX", Value: "/usr/local"},
				{Name: "INSTALL_PYTHON_EXAMPLES", Value: "ON"},
				{Name: "INSTALL_C_EXAMPLES", Value: "OFF"},
				{Name: "BUILD_EXAMPLES", Value: "ON"},
			},
			Jobs: 4,
		},
	}
}
