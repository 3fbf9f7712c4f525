package aliases

import (
	"path/filepath"

	"github.com/jakoblorz/go-tsalias/internal/models"
)

// JestSrcPattern is the moduleNameMapper pattern emitted when baseUrl
// resolves to the project root.
const (
	JestSrcPattern     = "^src/(.*)$"
	jestSrcReplacement = "<rootDir>/src/$1"
)

// Resolver derives the downstream tables from a resolved config's
// compilerOptions. The three computations are independent; only
// ModulePaths enforces a validation rule.
type Resolver struct {
	paths models.ProjectPaths
}

// NewResolver creates a Resolver bound to a project's directories.
func NewResolver(paths models.ProjectPaths) *Resolver {
	return &Resolver{paths: paths}
}

// ModulePaths interprets baseUrl as the bundler's module-resolution
// fallback directories. The only baseUrl values accepted are the ones
// resolving to node_modules, the source directory, or the project root;
// anything else fails with UnsupportedBaseURLError.
func (r *Resolver) ModulePaths(baseURL string) (models.ModuleResolution, error) {
	if baseURL == "" {
		return models.DisabledResolution(), nil
	}

	base := r.resolveBaseURL(baseURL)

	// node_modules is where resolvers look anyway.
	if sameDir(r.paths.NodeModules, base) {
		return models.NotNeededResolution(), nil
	}

	if sameDir(r.paths.Src, base) {
		return models.EnabledResolution(r.paths.Src), nil
	}

	// Importing from the root is covered by the alias tables instead.
	if sameDir(r.paths.Root, base) {
		return models.NotNeededResolution(), nil
	}

	return models.ModuleResolution{}, &UnsupportedBaseURLError{BaseURL: baseURL}
}

// WebpackAliases builds the bundler's import-alias table. With no baseUrl
// a supplied alias table passes through unchanged; with baseUrl at the
// project root the "src" alias is added underneath the supplied entries.
func (r *Resolver) WebpackAliases(baseURL string, supplied models.AliasMap) models.AliasMap {
	if baseURL == "" {
		if supplied != nil {
			return supplied
		}
		return models.AliasMap{}
	}

	if sameDir(r.paths.Root, r.resolveBaseURL(baseURL)) {
		aliases := models.AliasMap{"src": r.paths.Src}
		for key, target := range supplied {
			aliases[key] = target
		}
		return aliases
	}

	return nil
}

// JestAliases builds the test runner's moduleNameMapper table. Only a
// baseUrl at the project root produces a mapping.
func (r *Resolver) JestAliases(baseURL string) map[string]string {
	if baseURL == "" {
		return map[string]string{}
	}

	if sameDir(r.paths.Root, r.resolveBaseURL(baseURL)) {
		return map[string]string{JestSrcPattern: jestSrcReplacement}
	}

	return nil
}

func (r *Resolver) resolveBaseURL(baseURL string) string {
	if filepath.IsAbs(baseURL) {
		return filepath.Clean(baseURL)
	}
	return filepath.Join(r.paths.Root, baseURL)
}

// sameDir reports whether two absolute paths name the same directory,
// by path relativity rather than string equality.
func sameDir(a, b string) bool {
	rel, err := filepath.Rel(a, b)
	return err == nil && rel == "."
}
