// legacy.go applies legacy wiki decoration rules to rendered HTML.
package wikitext

import "regexp"

// colorPattern matches a rendered paragraph that starts with the legacy
// COLOR(name): prefix. The name is a Bootstrap contextual color token
// such as "success" or "danger".
var colorPattern = regexp.MustCompile(`<p>COLOR\(([A-Za-z-]+)\):\s*(.*?)</p>`)

// applyLegacyDecorations rewrites legacy decoration syntax that
// survives Markdown rendering. COLOR(name): paragraphs become
// contextual-color paragraphs; everything else passes through.
func applyLegacyDecorations(html string) string {
	return colorPattern.ReplaceAllString(html, `<p class="text-$1">$2</p>`)
}
