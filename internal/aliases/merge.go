package aliases

import (
	"path/filepath"
	"sort"
	"strings"

	"dario.cat/mergo"
	"github.com/jakoblorz/go-tsalias/internal/models"
)

const wildcardSuffix = "/*"

// LoadConfigFunc loads a config file given its resolved path.
type LoadConfigFunc func(path string) (*models.Config, error)

// Merge resolves a config's single-level extends clause. Without an
// extends clause the config is returned unchanged, which makes merging
// idempotent. With one, the parent is loaded relative to configDir and
// the two paths mappings are combined.
//
// On key collision the parent's entry wins over the child's. That is the
// reverse of usual inheritance, but it is what consumers of these tables
// have relied on; see TestMerge_ParentWinsOnCollision before touching it.
func Merge(cfg *models.Config, configDir string, load LoadConfigFunc, paths models.ProjectPaths) (*models.Config, error) {
	if cfg.Extends == "" {
		return cfg, nil
	}

	parentPath := cfg.Extends
	if !filepath.IsAbs(parentPath) {
		parentPath = filepath.Join(configDir, parentPath)
	}

	parent, err := load(parentPath)
	if err != nil {
		return nil, &ConfigLoadError{Path: parentPath, Err: err}
	}

	childPaths, ok := pathMapFrom(cfg.CompilerOptions.Paths)
	if !ok {
		return nil, &InvalidPathsError{Source: "the project config"}
	}

	parentPaths, ok := pathMapFrom(parent.CompilerOptions.Paths)
	if !ok {
		return nil, &InvalidPathsError{Source: parentPath}
	}

	merged := make(models.PathMap, len(childPaths)+len(parentPaths))
	for key, targets := range childPaths {
		merged[key] = targets
	}
	if err := mergo.Merge(&merged, parentPaths, mergo.WithOverride); err != nil {
		return nil, err
	}

	union := make(models.PathMap, 2*len(merged))
	for key, targets := range merged {
		union[key] = targets
	}
	for key, target := range AliasMapFrom(merged, paths.Root) {
		union[key] = []string{target}
	}

	return &models.Config{
		CompilerOptions: models.CompilerOptions{
			BaseURL: cfg.CompilerOptions.BaseURL,
			Paths:   union,
		},
		Parent: parent,
	}, nil
}

// AliasMapFrom normalizes a paths mapping into bare alias keys pointing
// at absolute directories: the trailing "/*" is stripped from the key and
// from the first target, and the target is resolved against root.
//
// Keys are visited in sorted order so that stripped-key collisions
// resolve deterministically (last key in lexical order wins).
func AliasMapFrom(pathMap models.PathMap, root string) models.AliasMap {
	keys := make([]string, 0, len(pathMap))
	for key := range pathMap {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	aliases := make(models.AliasMap, len(pathMap))
	for _, key := range keys {
		targets := pathMap[key]
		if len(targets) == 0 {
			continue
		}

		target := strings.TrimSuffix(targets[0], wildcardSuffix)
		if !filepath.IsAbs(target) {
			target = filepath.Join(root, target)
		}

		aliases[strings.TrimSuffix(key, wildcardSuffix)] = filepath.Clean(target)
	}

	return aliases
}

// pathMapFrom coerces an untrusted compilerOptions.paths value into a
// PathMap. An absent value is an empty mapping. Reports false when the
// value is present but not a mapping.
func pathMapFrom(v interface{}) (models.PathMap, bool) {
	switch value := v.(type) {
	case nil:
		return models.PathMap{}, true
	case models.PathMap:
		return value, true
	case map[string][]string:
		return models.PathMap(value), true
	case map[string]interface{}:
		pathMap := make(models.PathMap, len(value))
		for key, raw := range value {
			pathMap[key] = targetsFrom(raw)
		}
		return pathMap, true
	}
	return nil, false
}

// targetsFrom extracts the candidate target list of a single paths entry.
// A bare string counts as a single candidate; anything unrecognized is
// dropped rather than failing the whole mapping.
func targetsFrom(raw interface{}) []string {
	switch value := raw.(type) {
	case string:
		return []string{value}
	case []string:
		return value
	case []interface{}:
		var targets []string
		for _, item := range value {
			if s, ok := item.(string); ok {
				targets = append(targets, s)
			}
		}
		return targets
	}
	return nil
}
