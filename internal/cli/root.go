package cli

import (
	"fmt"
	"os"

	"github.com/jakoblorz/go-tsalias/internal/filesystem"
	"github.com/jakoblorz/go-tsalias/internal/models"
	"github.com/jakoblorz/go-tsalias/internal/tsconfig"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// srcDirEnv relocates the source directory for projects that do not keep
// their sources under ./src.
const srcDirEnv = "TSALIAS_SRC_DIR"

// NewRootCommand creates the root command
func NewRootCommand(fs filesystem.FileSystem) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "tsalias",
		Short: "Derive bundler and test-runner module resolution from tsconfig",
		Long: `Derives module-resolution configuration for a front-end build pipeline
from a project's tsconfig.json or jsconfig.json (compilerOptions.baseUrl,
compilerOptions.paths, single-level extends).

Three tables are produced: the bundler's module-resolution fallback
directories, the bundler's import-alias table, and the test runner's
moduleNameMapper table.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Default to `tsalias resolve` when no subcommand is provided.
			return (&ResolveCommand{fs: fs}).Run(cmd, args)
		},
	}

	rootCmd.PersistentFlags().String("format", "text", "Output format: text or json")

	rootCmd.AddCommand(NewResolveCommand(fs))
	rootCmd.AddCommand(NewCheckCommand(fs))
	rootCmd.AddCommand(NewEmitCommand(fs))

	return rootCmd
}

// Execute runs the root command
func Execute() error {
	// Project .env files configure the build the same way they do for
	// the bundler itself (e.g. TSALIAS_SRC_DIR).
	_ = godotenv.Load()

	fs := filesystem.NewOSFileSystem()
	rootCmd := NewRootCommand(fs)

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command failed: %w", err)
	}

	return nil
}

// detectProjectPaths anchors the resolution at the nearest package.json
// and applies the source-directory override when set.
func detectProjectPaths(fs filesystem.FileSystem) (models.ProjectPaths, error) {
	root, err := tsconfig.FindProjectRoot(fs)
	if err != nil {
		return models.ProjectPaths{}, err
	}

	paths := models.NewProjectPaths(root)
	if src := os.Getenv(srcDirEnv); src != "" {
		paths = paths.WithSrc(src)
	}

	return paths, nil
}
