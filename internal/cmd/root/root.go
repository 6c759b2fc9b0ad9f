// Package root provides the root command for wikimark.
package root

import (
	"github.com/spf13/cobra"

	"github.com/open-wiki-collective/wikimark/internal/cmd/convert"
	"github.com/open-wiki-collective/wikimark/internal/cmd/initcmd"
	"github.com/open-wiki-collective/wikimark/internal/cmd/render"
	"github.com/open-wiki-collective/wikimark/internal/version"
)

// NewCmdRoot creates the root command for wikimark.
func NewCmdRoot() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wikimark",
		Short: "Render wiki markup to safe HTML",
		Long: `wikimark renders a wiki markup dialect (a CommonMark superset)
to safe HTML.

Raw HTML in the input is always escaped. Plugin invocations such as
&highlight(yellow){text}; or @toc() are emitted as structured
placeholder elements for the embedding application to interpret.

Get started by running: wikimark render page.md`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version.Version,
	}

	// Global flags
	cmd.PersistentFlags().StringP("config", "c", "", "config file (default: ~/.config/wikimark/config.yml)")
	cmd.PersistentFlags().Bool("no-color", false, "disable colored output")
	cmd.PersistentFlags().Bool("verbose", false, "enable debug logging")

	// Set version template
	cmd.SetVersionTemplate("wikimark version {{.Version}} (commit: " + version.Commit + ", built: " + version.Date + ")\n")

	// Subcommands
	cmd.AddCommand(render.NewCmdRender())
	cmd.AddCommand(convert.NewCmdConvert())
	cmd.AddCommand(initcmd.NewCmdInit())

	return cmd
}
