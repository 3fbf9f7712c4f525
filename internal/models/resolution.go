package models

// ResolutionState classifies what baseUrl means for the bundler's
// module-resolution fallback directories.
type ResolutionState string

const (
	// ResolutionDisabled means no baseUrl was configured
	ResolutionDisabled ResolutionState = "disabled"

	// ResolutionNotNeeded means baseUrl points at node_modules or the
	// project root, which resolvers already cover on their own
	ResolutionNotNeeded ResolutionState = "not-needed"

	// ResolutionEnabled means baseUrl points at the source directory
	ResolutionEnabled ResolutionState = "enabled"
)

// ModuleResolution is the tagged result of interpreting baseUrl.
// Paths is populated only in the enabled state.
type ModuleResolution struct {
	State ResolutionState `json:"state"`
	Paths []string        `json:"paths,omitempty"`
}

// DisabledResolution reports that no baseUrl was configured.
func DisabledResolution() ModuleResolution {
	return ModuleResolution{State: ResolutionDisabled}
}

// NotNeededResolution reports a baseUrl the resolvers cover natively.
func NotNeededResolution() ModuleResolution {
	return ModuleResolution{State: ResolutionNotNeeded}
}

// EnabledResolution reports extra fallback directories for the bundler.
func EnabledResolution(paths ...string) ModuleResolution {
	return ModuleResolution{State: ResolutionEnabled, Paths: paths}
}

// Enabled reports whether extra fallback directories were derived.
func (r ModuleResolution) Enabled() bool {
	return r.State == ResolutionEnabled
}

// Modules is the bundle handed to downstream tooling: the bundler reads
// AdditionalModulePaths and WebpackAliases, the test runner reads
// JestAliases, and general tooling branches on HasTSConfig.
type Modules struct {
	AdditionalModulePaths ModuleResolution  `json:"additionalModulePaths"`
	WebpackAliases        AliasMap          `json:"webpackAliases,omitempty"`
	JestAliases           map[string]string `json:"jestAliases,omitempty"`
	HasTSConfig           bool              `json:"hasTsConfig"`
}
