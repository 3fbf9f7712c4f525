package cli

import (
	"fmt"

	"github.com/jakoblorz/go-tsalias/internal/aliases"
	"github.com/jakoblorz/go-tsalias/internal/filesystem"
	"github.com/spf13/cobra"
)

// CheckCommand handles the check command
type CheckCommand struct {
	fs filesystem.FileSystem
}

// NewCheckCommand creates a new check command
func NewCheckCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &CheckCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate the project's module-resolution configuration",
		Long: `Runs the full derivation and reports validation failures without
printing the tables. Intended for CI: exits non-zero on a conflicting
config file pair, an unsupported baseUrl, or a malformed paths mapping.`,
		RunE: cmd.Run,
	}

	return cobraCmd
}

// Run executes the check command
func (c *CheckCommand) Run(cmd *cobra.Command, args []string) error {
	paths, err := detectProjectPaths(c.fs)
	if err != nil {
		return err
	}

	if _, err := aliases.GetModules(c.fs, paths); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), errorStyle.Render("✗ module-resolution config is invalid"))
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("✓ module-resolution config is valid"))
	return nil
}
