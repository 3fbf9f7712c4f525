package cli

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/require"
)

func TestEmitCommand_Webpack(t *testing.T) {
	fs := projectWithConfig(`{
		"compilerOptions": {
			"baseUrl": ".",
			"paths": {
				"@app/*": ["src/app/*"],
				"@ui/*": ["src/ui/*"]
			}
		}
	}`)

	output, err := runCommand(t, fs, "emit", "--target", "webpack")
	require.NoError(t, err)

	snaps.MatchSnapshot(t, output)
}

func TestEmitCommand_WebpackWithModulePaths(t *testing.T) {
	fs := projectWithConfig(`{"compilerOptions": {"baseUrl": "src"}}`)

	output, err := runCommand(t, fs, "emit", "--target", "webpack")
	require.NoError(t, err)

	require.Contains(t, output, "'node_modules', '/project/src'")
	snaps.MatchSnapshot(t, output)
}

func TestEmitCommand_Jest(t *testing.T) {
	fs := projectWithConfig(`{"compilerOptions": {"baseUrl": "."}}`)

	output, err := runCommand(t, fs, "emit", "--target", "jest")
	require.NoError(t, err)

	require.Contains(t, output, "moduleNameMapper")
	snaps.MatchSnapshot(t, output)
}

func TestEmitCommand_UnknownTarget(t *testing.T) {
	fs := projectWithConfig(`{}`)

	_, err := runCommand(t, fs, "emit", "--target", "rollup")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown emit target")
}
