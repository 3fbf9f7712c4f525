package aliases

import (
	"testing"

	"github.com/jakoblorz/go-tsalias/internal/filesystem"
	"github.com/jakoblorz/go-tsalias/internal/models"
	"github.com/jakoblorz/go-tsalias/internal/tsconfig"
	"github.com/stretchr/testify/require"
)

func TestGetModules_BaseURLSrc(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/project/tsconfig.json", []byte(`{"compilerOptions": {"baseUrl": "src"}}`))

	modules, err := GetModules(fs, testProjectPaths())
	require.NoError(t, err)

	require.Equal(t, models.EnabledResolution("/project/src"), modules.AdditionalModulePaths)
	require.Empty(t, modules.WebpackAliases)
	require.Empty(t, modules.JestAliases)
	require.True(t, modules.HasTSConfig)
}

func TestGetModules_BaseURLRootWithPaths(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/project/tsconfig.json", []byte(`{
		"compilerOptions": {
			"baseUrl": ".",
			"paths": {"@app/*": ["src/app/*"]}
		}
	}`))

	modules, err := GetModules(fs, testProjectPaths())
	require.NoError(t, err)

	require.Equal(t, models.NotNeededResolution(), modules.AdditionalModulePaths)
	require.Equal(t, models.AliasMap{
		"src":  "/project/src",
		"@app": "/project/src/app",
	}, modules.WebpackAliases)
	require.Equal(t, map[string]string{
		"^src/(.*)$": "<rootDir>/src/$1",
	}, modules.JestAliases)
	require.True(t, modules.HasTSConfig)
}

func TestGetModules_UnsupportedBaseURL(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/project/tsconfig.json", []byte(`{"compilerOptions": {"baseUrl": "./packages/shared"}}`))

	modules, err := GetModules(fs, testProjectPaths())
	require.Nil(t, modules)

	var baseErr *UnsupportedBaseURLError
	require.ErrorAs(t, err, &baseErr)
	require.Equal(t, "./packages/shared", baseErr.BaseURL)
}

func TestGetModules_ConflictingConfigs(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/project/tsconfig.json", []byte(`{}`))
	fs.AddFile("/project/jsconfig.json", []byte(`{}`))

	modules, err := GetModules(fs, testProjectPaths())
	require.Nil(t, modules)
	require.ErrorIs(t, err, tsconfig.ErrConflictingConfig)
}

func TestGetModules_NoConfig(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddDir("/project")

	modules, err := GetModules(fs, testProjectPaths())
	require.NoError(t, err)

	require.Equal(t, models.DisabledResolution(), modules.AdditionalModulePaths)
	require.Empty(t, modules.WebpackAliases)
	require.Empty(t, modules.JestAliases)
	require.False(t, modules.HasTSConfig)
}

func TestGetModules_JSConfig(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/project/jsconfig.json", []byte(`{"compilerOptions": {"baseUrl": "src"}}`))

	modules, err := GetModules(fs, testProjectPaths())
	require.NoError(t, err)

	require.Equal(t, models.EnabledResolution("/project/src"), modules.AdditionalModulePaths)
	require.False(t, modules.HasTSConfig)
}

func TestGetModules_ConfigWithComments(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/project/tsconfig.json", []byte(`{
		// module resolution
		"compilerOptions": {
			"baseUrl": ".", /* project root */
			"paths": {
				"@ui/*": ["src/ui/*"],
			},
		},
	}`))

	modules, err := GetModules(fs, testProjectPaths())
	require.NoError(t, err)
	require.Equal(t, "/project/src/ui", modules.WebpackAliases["@ui"])
}

func TestGetModules_ExtendsMergesPaths(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/project/tsconfig.json", []byte(`{
		"extends": "./tsconfig.base.json",
		"compilerOptions": {
			"baseUrl": ".",
			"paths": {"utils/*": ["src/child-utils/*"]}
		}
	}`))
	fs.AddFile("/project/tsconfig.base.json", []byte(`{
		"compilerOptions": {
			"paths": {
				"utils/*": ["src/base-utils/*"],
				"lib/*": ["src/lib/*"]
			}
		}
	}`))

	modules, err := GetModules(fs, testProjectPaths())
	require.NoError(t, err)

	require.Equal(t, models.AliasMap{
		"src":   "/project/src",
		"utils": "/project/src/base-utils",
		"lib":   "/project/src/lib",
	}, modules.WebpackAliases)
}

func TestGetModules_ExtendsMissingParent(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/project/tsconfig.json", []byte(`{"extends": "./tsconfig.base.json"}`))

	modules, err := GetModules(fs, testProjectPaths())
	require.Nil(t, modules)

	var cfgErr *ConfigLoadError
	require.ErrorAs(t, err, &cfgErr)
	require.Equal(t, "/project/tsconfig.base.json", cfgErr.Path)
}

func TestGetModules_InvalidPaths(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/project/tsconfig.json", []byte(`{
		"compilerOptions": {"baseUrl": ".", "paths": ["src/app"]}
	}`))

	modules, err := GetModules(fs, testProjectPaths())
	require.Nil(t, modules)

	var invalidErr *InvalidPathsError
	require.ErrorAs(t, err, &invalidErr)
	require.Equal(t, "/project/tsconfig.json", invalidErr.Source)
}

func TestGetModules_PathsWithoutBaseURLPassThrough(t *testing.T) {
	fs := filesystem.NewMockFileSystem()
	fs.AddFile("/project/tsconfig.json", []byte(`{
		"compilerOptions": {"paths": {"@app/*": ["src/app/*"]}}
	}`))

	modules, err := GetModules(fs, testProjectPaths())
	require.NoError(t, err)

	require.Equal(t, models.DisabledResolution(), modules.AdditionalModulePaths)
	require.Equal(t, models.AliasMap{"@app": "/project/src/app"}, modules.WebpackAliases)
	require.Empty(t, modules.JestAliases)
}
