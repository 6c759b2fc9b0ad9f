// Package convert provides the convert command for wikimark.
package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/open-wiki-collective/wikimark/pkg/wikitext"
)

// NewCmdConvert creates the convert command.
func NewCmdConvert() *cobra.Command {
	var (
		output      string
		keepPlugins bool
	)

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Convert HTML back to wiki markup",
		Long: `Convert an HTML document back to wiki markup.

Useful for migrating existing pages. Plugin placeholder elements
produced by wikimark render are stripped by default; pass
--keep-plugins to reconstruct their invocation syntax instead.`,
		Example: `  # Convert a rendered page back to markup
  wikimark convert page.html

  # Preserve plugin invocations
  wikimark convert --keep-plugins page.html`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := ""
			if len(args) > 0 {
				file = args[0]
			}
			return runConvert(cmd, file, output, keepPlugins)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write markup to file instead of stdout")
	cmd.Flags().BoolVar(&keepPlugins, "keep-plugins", false, "reconstruct plugin invocation syntax")

	return cmd
}

func runConvert(cmd *cobra.Command, file, output string, keepPlugins bool) error {
	var data []byte
	var err error
	if file == "" {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read input file: %w", err)
		}
	}

	markup, err := wikitext.FromHTMLWithOptions(string(data), wikitext.ConvertOptions{
		KeepPlugins: keepPlugins,
	})
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	if output != "" {
		if err := os.WriteFile(output, []byte(markup+"\n"), 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), markup)
	return err
}
