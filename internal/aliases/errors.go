package aliases

import "fmt"

// UnsupportedBaseURLError is a user-facing validation error: baseUrl may
// only point at node_modules, the project root, or the source directory.
type UnsupportedBaseURLError struct {
	// BaseURL is the configured value, as written in the config file
	BaseURL string
}

func (e *UnsupportedBaseURLError) Error() string {
	return fmt.Sprintf(
		"unsupported compilerOptions.baseUrl %q: only node_modules, the project root, and the source directory are supported",
		e.BaseURL,
	)
}

// InvalidPathsError reports a compilerOptions.paths value that is present
// but not a mapping from alias patterns to target arrays.
type InvalidPathsError struct {
	// Source names the config the bad value came from
	Source string
}

func (e *InvalidPathsError) Error() string {
	return fmt.Sprintf("compilerOptions.paths in %s is not a mapping from alias patterns to target arrays", e.Source)
}

// ConfigLoadError reports a failure to load the config referenced by an
// extends clause. Always fatal to the resolution.
type ConfigLoadError struct {
	Path string
	Err  error
}

func (e *ConfigLoadError) Error() string {
	return fmt.Sprintf("failed to load extended config %s: %v", e.Path, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}
