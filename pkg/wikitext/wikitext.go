// Package wikitext renders a wiki markup dialect (a CommonMark
// superset) to safe HTML.
//
// Direct HTML input is forbidden: everything the caller supplies is
// escaped before rendering. Plugin invocations — &name(args){content};
// inline and @name(args){{content}} block — are the one extension
// point; they are lifted out as opaque tokens before sanitization,
// carried through the CommonMark renderer untouched, and expanded into
// placeholder elements afterwards. Plugin execution is left entirely to
// the embedding application.
package wikitext

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Result is the value returned to callers: rendered HTML plus the
// optional frontmatter mapping. The caller owns it exclusively.
type Result struct {
	HTML        string
	Frontmatter map[string]string
}

// Options configures the underlying CommonMark renderer.
type Options struct {
	// GFM enables GitHub Flavored Markdown extensions (tables,
	// strikethrough, autolinks, task lists).
	GFM bool
	// HardWraps renders single newlines as <br>.
	HardWraps bool
}

// DefaultOptions returns the options used by the package-level Parse
// functions.
func DefaultOptions() Options {
	return Options{GFM: true}
}

// Parser renders wiki markup documents. A Parser is immutable after
// construction and safe for concurrent use; all per-call state lives on
// the stack of each Parse call.
type Parser struct {
	md goldmark.Markdown
}

// New creates a Parser with the given options.
func New(opts Options) *Parser {
	var exts []goldmark.Extender
	if opts.GFM {
		exts = append(exts, extension.GFM)
	}
	var rendererOpts []goldmark.Option
	if opts.HardWraps {
		rendererOpts = append(rendererOpts, goldmark.WithRendererOptions(html.WithHardWraps()))
	}

	md := goldmark.New(append(rendererOpts, goldmark.WithExtensions(exts...))...)
	return &Parser{md: md}
}

var defaultParser = New(DefaultOptions())

// Parse renders wiki markup to HTML, discarding any frontmatter.
func Parse(input string) string {
	return defaultParser.Parse(input)
}

// ParseWithFrontmatter renders wiki markup to HTML and returns the
// extracted frontmatter alongside it.
func ParseWithFrontmatter(input string) Result {
	return defaultParser.ParseWithFrontmatter(input)
}

// Parse renders wiki markup to HTML, discarding any frontmatter.
func (p *Parser) Parse(input string) string {
	return p.ParseWithFrontmatter(input).HTML
}

// ParseWithFrontmatter runs the full pipeline. The stage order is a
// load-bearing invariant: encoding must precede sanitization and
// CommonMark rendering so plugin syntax survives both, and decoding
// must follow rendering so plugin HTML is never reinterpreted as
// Markdown source.
func (p *Parser) ParseWithFrontmatter(input string) Result {
	frontmatter, body := extractFrontmatter(input)

	encoded, table := encodeInvocations(body)
	sanitized := Sanitize(encoded)
	rendered := p.render(sanitized)
	decoded := decodeInvocations(rendered, table)
	final := applyLegacyDecorations(decoded)

	return Result{HTML: final, Frontmatter: frontmatter}
}

// render delegates to the CommonMark renderer. Its input is already
// sanitized and token-bearing; a conversion failure degrades to a
// paragraph of the sanitized text rather than an error.
func (p *Parser) render(sanitized string) string {
	var buf bytes.Buffer
	if err := p.md.Convert([]byte(sanitized), &buf); err != nil {
		return "<p>" + sanitized + "</p>\n"
	}
	return buf.String()
}
