package cli

import (
	"fmt"
	"text/template"

	"github.com/jakoblorz/go-tsalias/internal/aliases"
	"github.com/jakoblorz/go-tsalias/internal/filesystem"
	"github.com/spf13/cobra"
)

const webpackSnippetTemplate = `// Derived from the project's compiler config by tsalias.
resolve: {
  modules: ['node_modules'{{range .ModulePaths}}, '{{js .}}'{{end}}],
  alias: {
{{- range .Aliases}}
    '{{js .Key}}': '{{js .Target}}',
{{- end}}
  },
},
`

const jestSnippetTemplate = `// Derived from the project's compiler config by tsalias.
moduleNameMapper: {
{{- range .Aliases}}
  '{{js .Key}}': '{{js .Target}}',
{{- end}}
},
`

type snippetAlias struct {
	Key    string
	Target string
}

type snippetData struct {
	ModulePaths []string
	Aliases     []snippetAlias
}

// EmitCommand handles the emit command
type EmitCommand struct {
	fs filesystem.FileSystem
}

// NewEmitCommand creates a new emit command
func NewEmitCommand(fs filesystem.FileSystem) *cobra.Command {
	cmd := &EmitCommand{fs: fs}

	cobraCmd := &cobra.Command{
		Use:   "emit",
		Short: "Render the derived tables as config snippets",
		Example: `  # Snippet for webpack.config.js
  tsalias emit --target webpack

  # Snippet for jest.config.js
  tsalias emit --target jest`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().String("target", "webpack", "Snippet target: webpack or jest")

	return cobraCmd
}

// Run executes the emit command
func (c *EmitCommand) Run(cmd *cobra.Command, args []string) error {
	target, _ := cmd.Flags().GetString("target")

	paths, err := detectProjectPaths(c.fs)
	if err != nil {
		return err
	}

	modules, err := aliases.GetModules(c.fs, paths)
	if err != nil {
		return fmt.Errorf("failed to resolve modules: %w", err)
	}

	var tmplStr string
	var data snippetData
	switch target {
	case "webpack":
		tmplStr = webpackSnippetTemplate
		data = snippetData{
			ModulePaths: modules.AdditionalModulePaths.Paths,
			Aliases:     snippetAliases(modules.WebpackAliases),
		}
	case "jest":
		tmplStr = jestSnippetTemplate
		data = snippetData{
			Aliases: snippetAliases(modules.JestAliases),
		}
	default:
		return fmt.Errorf("unknown emit target: %s", target)
	}

	tmpl, err := template.New(target).Parse(tmplStr)
	if err != nil {
		return fmt.Errorf("failed to parse %s template: %w", target, err)
	}

	if err := tmpl.Execute(cmd.OutOrStdout(), data); err != nil {
		return fmt.Errorf("failed to render %s snippet: %w", target, err)
	}

	return nil
}

func snippetAliases[M ~map[string]string](m M) []snippetAlias {
	var result []snippetAlias
	for _, key := range sortedKeys(m) {
		result = append(result, snippetAlias{Key: key, Target: m[key]})
	}
	return result
}
