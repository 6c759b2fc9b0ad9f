// Package render provides the render command for wikimark.
package render

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-wiki-collective/wikimark/internal/config"
	"github.com/open-wiki-collective/wikimark/internal/logging"
	"github.com/open-wiki-collective/wikimark/internal/view"
	"github.com/open-wiki-collective/wikimark/pkg/wikitext"
)

// NewCmdRender creates the render command.
func NewCmdRender() *cobra.Command {
	var (
		output          string
		showFrontmatter bool
		format          string
	)

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render wiki markup to HTML",
		Long: `Render a wiki markup document to HTML.

Reads from the given file, or from stdin when no file is specified.
The rendered HTML is written to stdout (or --output); extracted
frontmatter can be shown on stderr with --frontmatter.`,
		Example: `  # Render a file to stdout
  wikimark render page.md

  # Render stdin into a file
  cat page.md | wikimark render -o page.html

  # Show frontmatter as JSON while rendering
  wikimark render --frontmatter --format json page.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			return runRender(cmd, file, output, showFrontmatter, view.Format(format))
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write HTML to file instead of stdout")
	cmd.Flags().BoolVar(&showFrontmatter, "frontmatter", false, "print extracted frontmatter to stderr")
	cmd.Flags().StringVar(&format, "format", "table", "frontmatter output format: table, json, plain")

	return cmd
}

func runRender(cmd *cobra.Command, file, output string, showFrontmatter bool, format view.Format) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	logger := logging.New(level)

	source, err := readSource(cmd.InOrStdin(), file)
	if err != nil {
		return err
	}
	logger.Debug("read source", "bytes", len(source), "file", file)

	parser := wikitext.New(wikitext.Options{
		GFM:       cfg.GFM,
		HardWraps: cfg.HardWraps,
	})
	result := parser.ParseWithFrontmatter(source)
	logger.Debug("rendered document", "html_bytes", len(result.HTML),
		"frontmatter_keys", len(result.Frontmatter))

	if showFrontmatter {
		noColor, _ := cmd.Flags().GetBool("no-color")
		renderer := view.NewRenderer(format, noColor || cfg.NoColor)
		renderer.SetWriter(cmd.ErrOrStderr())
		if result.Frontmatter == nil {
			renderer.Error("no frontmatter found")
		} else if err := renderer.RenderFrontmatter(result.Frontmatter); err != nil {
			return err
		}
	}

	if output != "" {
		if err := os.WriteFile(output, []byte(result.HTML), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), result.HTML)
	return err
}

// readSource reads the document from a file, or from stdin when no
// file is given.
func readSource(stdin io.Reader, file string) (string, error) {
	if file == "" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(file)
	if err != nil {
		return "", fmt.Errorf("failed to read input file: %w", err)
	}
	return string(data), nil
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return config.LoadWithEnv(path)
}
