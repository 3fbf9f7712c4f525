package models

// Config represents a tsconfig.json/jsconfig.json as far as module
// resolution is concerned. Raw and resolved configs share this shape:
// a resolved config has Extends cleared and Parent populated.
type Config struct {
	// CompilerOptions carries the fields module resolution derives from
	CompilerOptions CompilerOptions `json:"compilerOptions"`

	// Extends is a single-level reference to a parent config, relative
	// to the directory of the file this config was read from
	Extends string `json:"extends,omitempty"`

	// Parent is the loaded parent config after an extends merge
	Parent *Config `json:"-"`
}

// CompilerOptions is the compilerOptions subset this tool reads.
//
// Paths is untrusted input: config files are free to put anything under
// the key, so it stays loosely typed until the merge coerces it.
// See PathMapFrom.
type CompilerOptions struct {
	BaseURL string      `json:"baseUrl,omitempty"`
	Paths   interface{} `json:"paths,omitempty"`
}

// PathMap maps alias patterns to candidate target directories,
// mirroring compilerOptions.paths.
type PathMap map[string][]string

// AliasMap maps a bare alias key (trailing "/*" stripped) to the
// absolute directory it rewrites to.
type AliasMap map[string]string
