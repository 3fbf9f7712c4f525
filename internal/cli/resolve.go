package cli

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jakoblorz/go-tsalias/internal/aliases"
	"github.com/jakoblorz/go-tsalias/internal/filesystem"
	"github.com/jakoblorz/go-tsalias/internal/models"
	"github.com/spf13/cobra"
)

// ResolveCommand handles the resolve command
type ResolveCommand struct {
	fs filesystem.FileSystem
}

// NewResolveCommand creates a new resolve command
func NewResolveCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &ResolveCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the derived module-resolution tables",
		Long: `Loads the project's tsconfig.json or jsconfig.json, merges a single-level
extends clause, and prints the derived module-resolution tables.`,
		Example: `  # Human-readable summary
  tsalias resolve

  # JSON for scripting
  tsalias resolve --format json > modules.json`,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the resolve command
func (c *ResolveCommand) Run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	paths, err := detectProjectPaths(c.fs)
	if err != nil {
		return err
	}

	modules, err := aliases.GetModules(c.fs, paths)
	if err != nil {
		return fmt.Errorf("failed to resolve modules: %w", err)
	}

	if format == "json" {
		data, err := json.MarshalIndent(modules, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal modules: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printModules(cmd, paths, modules)
	return nil
}

func printModules(cmd *cobra.Command, paths models.ProjectPaths, modules *models.Modules) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, headerStyle.Render("Project"))
	fmt.Fprintf(out, "  root: %s\n", paths.Root)
	fmt.Fprintf(out, "  tsconfig: %v\n", modules.HasTSConfig)
	fmt.Fprintln(out)

	fmt.Fprintln(out, headerStyle.Render("Module resolution paths"))
	switch modules.AdditionalModulePaths.State {
	case models.ResolutionDisabled:
		fmt.Fprintln(out, mutedStyle.Render("  disabled (no baseUrl configured)"))
	case models.ResolutionNotNeeded:
		fmt.Fprintln(out, mutedStyle.Render("  not needed (baseUrl already covered by the resolver)"))
	case models.ResolutionEnabled:
		for _, p := range modules.AdditionalModulePaths.Paths {
			fmt.Fprintf(out, "  %s\n", p)
		}
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, headerStyle.Render("Webpack aliases"))
	if len(modules.WebpackAliases) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("  (none)"))
	}
	for _, key := range sortedKeys(modules.WebpackAliases) {
		fmt.Fprintf(out, "  %s %s\n", keyStyle.Render(key), mutedStyle.Render("-> "+modules.WebpackAliases[key]))
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, headerStyle.Render("Jest aliases"))
	if len(modules.JestAliases) == 0 {
		fmt.Fprintln(out, mutedStyle.Render("  (none)"))
	}
	for _, key := range sortedKeys(modules.JestAliases) {
		fmt.Fprintf(out, "  %s %s\n", keyStyle.Render(key), mutedStyle.Render("-> "+modules.JestAliases[key]))
	}
}

func sortedKeys[M ~map[string]V, V any](m M) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
