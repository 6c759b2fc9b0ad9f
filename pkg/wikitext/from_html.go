// from_html.go converts rendered HTML back to wiki markup, for
// migrating existing pages.
package wikitext

import (
	"encoding/json"
	"regexp"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ConvertOptions configures the HTML to wiki markup conversion.
type ConvertOptions struct {
	// KeepPlugins reconstructs plugin placeholder elements as plugin
	// invocation syntax instead of stripping them.
	KeepPlugins bool
}

// FromHTML converts HTML to wiki markup, stripping plugin placeholder
// elements.
func FromHTML(html string) (string, error) {
	return FromHTMLWithOptions(html, ConvertOptions{})
}

// FromHTMLWithOptions converts HTML to wiki markup with configurable
// options.
func FromHTMLWithOptions(html string, opts ConvertOptions) (string, error) {
	if html == "" {
		return "", nil
	}

	html = processPluginElements(html, opts.KeepPlugins)

	markup, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(markup), nil
}

// pluginPattern matches the placeholder elements the decoder emits:
// self-closing or container span/div with a plugin-* class.
var pluginPattern = regexp.MustCompile(
	`<(span|div) class="plugin-([A-Za-z0-9_-]+)" data-args='([^']*)'(?: />|>(.*?)</(?:span|div)>)`)

// processPluginElements handles plugin placeholder elements before the
// generic HTML conversion runs. If keep is false they are removed
// entirely; otherwise they are rewritten as invocation syntax.
func processPluginElements(html string, keep bool) string {
	if !keep {
		return pluginPattern.ReplaceAllString(html, "")
	}

	return pluginPattern.ReplaceAllStringFunc(html, func(match string) string {
		m := pluginPattern.FindStringSubmatch(match)
		tag, name, rawArgs, content := m[1], m[2], m[3], m[4]
		return reconstructInvocation(tag, name, rawArgs, content)
	})
}

// reconstructInvocation rebuilds plugin invocation syntax from the
// pieces of a placeholder element.
func reconstructInvocation(tag, name, rawArgs, content string) string {
	var args []string
	if err := json.Unmarshal([]byte(attributeUnescape(rawArgs)), &args); err != nil {
		args = nil
	}
	for i, a := range args {
		args[i] = htmlUnescape(a)
	}

	content = htmlUnescape(content)

	var sb strings.Builder
	if tag == "div" {
		sb.WriteString("@")
		sb.WriteString(name)
		sb.WriteString("(")
		sb.WriteString(strings.Join(args, ", "))
		sb.WriteString(")")
		if content != "" {
			sb.WriteString("{{")
			sb.WriteString(content)
			sb.WriteString("}}")
		}
		return sb.String()
	}

	sb.WriteString("&")
	sb.WriteString(name)
	if len(args) > 0 {
		sb.WriteString("(")
		sb.WriteString(strings.Join(args, ", "))
		sb.WriteString(")")
	}
	if content != "" {
		sb.WriteString("{")
		sb.WriteString(strings.ReplaceAll(content, "}", `\}`))
		sb.WriteString("}")
	}
	sb.WriteString(";")
	return sb.String()
}

var attributeUnescaper = strings.NewReplacer("&#39;", "'")

func attributeUnescape(s string) string {
	return attributeUnescaper.Replace(s)
}

var htmlUnescaper = strings.NewReplacer("&lt;", "<", "&gt;", ">", "&amp;", "&")

func htmlUnescape(s string) string {
	return htmlUnescaper.Replace(s)
}
