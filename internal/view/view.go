// Package view provides output formatting for wikimark commands.
package view

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
)

// Format represents an output format.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// Renderer renders command output in a specific format.
type Renderer struct {
	format Format
	writer io.Writer
}

// NewRenderer creates a new renderer with the specified format.
func NewRenderer(format Format, noColor bool) *Renderer {
	if noColor {
		color.NoColor = true
	}
	return &Renderer{
		format: format,
		writer: os.Stderr,
	}
}

// SetWriter sets the output writer.
func (r *Renderer) SetWriter(w io.Writer) {
	r.writer = w
}

// RenderFrontmatter renders the extracted metadata mapping, keys
// sorted for stable output.
func (r *Renderer) RenderFrontmatter(fm map[string]string) error {
	if r.format == FormatJSON {
		data, err := json.MarshalIndent(fm, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(r.writer, string(data))
		return nil
	}

	keys := make([]string, 0, len(fm))
	for k := range fm {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	bold := color.New(color.Bold)
	for _, k := range keys {
		if r.format == FormatPlain {
			fmt.Fprintf(r.writer, "%s\t%s\n", k, fm[k])
			continue
		}
		bold.Fprintf(r.writer, "%s: ", k)
		fmt.Fprintln(r.writer, fm[k])
	}
	return nil
}

// Success prints a success message.
func (r *Renderer) Success(msg string) {
	green := color.New(color.FgGreen)
	green.Fprintln(r.writer, "✓ "+msg)
}

// Error prints an error message.
func (r *Renderer) Error(msg string) {
	red := color.New(color.FgRed)
	red.Fprintln(r.writer, "✗ "+msg)
}
