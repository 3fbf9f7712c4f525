package aliases

import (
	"fmt"
	"path/filepath"

	"github.com/jakoblorz/go-tsalias/internal/filesystem"
	"github.com/jakoblorz/go-tsalias/internal/models"
	"github.com/jakoblorz/go-tsalias/internal/tsconfig"
)

// GetModules derives the full module-resolution bundle for a project:
// detect the config file, load and merge it, then run the three resolver
// computations. The result is a plain value; callers own it and nothing
// is cached process-wide.
func GetModules(fs filesystem.FileSystem, paths models.ProjectPaths) (*models.Modules, error) {
	source := tsconfig.NewSource(fs, paths)

	detection, err := source.Detect()
	if err != nil {
		return nil, err
	}

	config := &models.Config{}
	configDir := paths.Root
	if detection.ConfigPath != "" {
		config, err = source.Load(detection.ConfigPath)
		if err != nil {
			return nil, err
		}
		configDir = filepath.Dir(detection.ConfigPath)
	}

	config, err = Merge(config, configDir, source.Load, paths)
	if err != nil {
		return nil, err
	}

	options := config.CompilerOptions

	// The alias table is absent (not empty) when the config carries no
	// paths mapping at all; WebpackAliases distinguishes the two.
	var supplied models.AliasMap
	if options.Paths != nil {
		pathMap, ok := pathMapFrom(options.Paths)
		if !ok {
			return nil, &InvalidPathsError{Source: detection.ConfigPath}
		}
		supplied = AliasMapFrom(pathMap, paths.Root)
	}

	resolver := NewResolver(paths)

	modulePaths, err := resolver.ModulePaths(options.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(detection.ConfigPath), err)
	}

	return &models.Modules{
		AdditionalModulePaths: modulePaths,
		WebpackAliases:        resolver.WebpackAliases(options.BaseURL, supplied),
		JestAliases:           resolver.JestAliases(options.BaseURL),
		HasTSConfig:           detection.HasTSConfig,
	}, nil
}
