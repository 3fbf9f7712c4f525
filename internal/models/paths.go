package models

import "path/filepath"

// Well-known file and directory names inside a front-end project.
const (
	TSConfigName    = "tsconfig.json"
	JSConfigName    = "jsconfig.json"
	NodeModulesName = "node_modules"
	DefaultSrcName  = "src"
)

// ProjectPaths holds the absolute directories a project resolution runs
// against. Immutable for the lifetime of a resolution.
type ProjectPaths struct {
	// Root is the absolute path to the project root
	Root string

	// NodeModules is the absolute path to the node_modules directory
	NodeModules string

	// Src is the absolute path to the source directory
	Src string
}

// NewProjectPaths derives the conventional layout under a project root.
func NewProjectPaths(root string) ProjectPaths {
	root = filepath.Clean(root)
	return ProjectPaths{
		Root:        root,
		NodeModules: filepath.Join(root, NodeModulesName),
		Src:         filepath.Join(root, DefaultSrcName),
	}
}

// WithSrc returns a copy with the source directory relocated.
// Relative paths are taken against the project root.
func (p ProjectPaths) WithSrc(src string) ProjectPaths {
	if !filepath.IsAbs(src) {
		src = filepath.Join(p.Root, src)
	}
	p.Src = filepath.Clean(src)
	return p
}

// TSConfig returns the path to the project's tsconfig.json.
func (p ProjectPaths) TSConfig() string {
	return filepath.Join(p.Root, TSConfigName)
}

// JSConfig returns the path to the project's jsconfig.json.
func (p ProjectPaths) JSConfig() string {
	return filepath.Join(p.Root, JSConfigName)
}
