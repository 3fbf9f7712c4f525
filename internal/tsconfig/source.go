package tsconfig

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-tsalias/internal/filesystem"
	"github.com/jakoblorz/go-tsalias/internal/models"
)

// ErrConflictingConfig is returned when a project carries both a
// tsconfig.json and a jsconfig.json. The two are mutually exclusive
// config sources and there is no sane precedence between them.
var ErrConflictingConfig = errors.New("both tsconfig.json and jsconfig.json exist, remove one of them")

// ErrProjectNotFound is returned when no package.json can be found in the
// current directory or any of its parents.
var ErrProjectNotFound = errors.New("project not found (no package.json in this directory or any parent)")

// Source locates and loads a project's compiler configuration.
type Source struct {
	fs    filesystem.FileSystem
	paths models.ProjectPaths
}

// Detection describes which config file a project carries.
type Detection struct {
	// HasTSConfig indicates tsconfig.json exists at the project root
	HasTSConfig bool

	// HasJSConfig indicates jsconfig.json exists at the project root
	HasJSConfig bool

	// ConfigPath is the file to load, empty when the project has neither
	ConfigPath string
}

// NewSource creates a Source for the given project.
func NewSource(fs filesystem.FileSystem, paths models.ProjectPaths) *Source {
	return &Source{
		fs:    fs,
		paths: paths,
	}
}

// Detect checks which config file the project carries. Fails with
// ErrConflictingConfig when both exist.
func (s *Source) Detect() (Detection, error) {
	det := Detection{
		HasTSConfig: s.fs.Exists(s.paths.TSConfig()),
		HasJSConfig: s.fs.Exists(s.paths.JSConfig()),
	}

	if det.HasTSConfig && det.HasJSConfig {
		return Detection{}, ErrConflictingConfig
	}

	switch {
	case det.HasTSConfig:
		det.ConfigPath = s.paths.TSConfig()
	case det.HasJSConfig:
		det.ConfigPath = s.paths.JSConfig()
	}

	return det, nil
}

// FindProjectRoot walks up the directory tree from the current directory
// looking for a package.json, the same way bundler tooling anchors itself.
func FindProjectRoot(fs filesystem.FileSystem) (string, error) {
	cwd, err := fs.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	dir := filepath.Clean(cwd)
	for {
		if fs.Exists(filepath.Join(dir, "package.json")) {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrProjectNotFound
		}
		dir = parent
	}
}
