// decode.go expands conflict tokens in rendered HTML into plugin
// placeholder elements.
package wikitext

import (
	"bytes"
	"encoding/json"
	"strings"
)

// decodeInvocations substitutes every token recorded during encoding
// with its plugin placeholder element. Tokens are located by plain
// substring search in the rendered HTML; token-free documents pass
// through unchanged. Arguments and content were captured before the
// sanitizer ran, so they receive their single escaping pass here.
func decodeInvocations(html string, table *invocationTable) string {
	if len(table.order) == 0 {
		return html
	}

	for _, token := range table.order {
		inv := table.entries[token]
		fragment := renderInvocation(inv)

		// Block tokens standing alone on a line come back from the
		// renderer wrapped in a paragraph; unwrap so the div is not
		// nested inside <p>.
		if inv.Kind == KindBlock {
			wrapped := "<p>" + token + "</p>"
			if strings.Contains(html, wrapped) {
				html = strings.Replace(html, wrapped, fragment, 1)
				continue
			}
		}
		html = strings.Replace(html, token, fragment, 1)
	}

	return html
}

// renderInvocation emits the placeholder element for one invocation:
// a span for inline plugins, a div for block plugins, self-closing
// when no content was captured.
func renderInvocation(inv Invocation) string {
	var sb strings.Builder

	tag := "span"
	if inv.Kind == KindBlock {
		tag = "div"
	}

	sb.WriteString("<")
	sb.WriteString(tag)
	sb.WriteString(` class="plugin-`)
	sb.WriteString(inv.Name)
	sb.WriteString(`" data-args='`)
	sb.WriteString(encodeArgs(inv.Args))
	sb.WriteString(`'`)

	if !inv.HasContent {
		sb.WriteString(" />")
		return sb.String()
	}

	sb.WriteString(">")
	sb.WriteString(Sanitize(inv.Content))
	sb.WriteString("</")
	sb.WriteString(tag)
	sb.WriteString(">")
	return sb.String()
}

// encodeArgs serializes arguments as a JSON array of strings suitable
// for a single-quoted HTML attribute. Each argument is sanitized first
// (its one escaping pass), then any single quote is escaped so it
// cannot terminate the attribute value.
func encodeArgs(args []string) string {
	escaped := make([]string, len(args))
	for i, a := range args {
		escaped[i] = Sanitize(a)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(escaped); err != nil {
		// []string cannot fail to encode; keep the attribute valid anyway.
		return "[]"
	}

	out := strings.TrimRight(buf.String(), "\n")
	return strings.ReplaceAll(out, "'", "&#39;")
}
