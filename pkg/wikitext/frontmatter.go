// frontmatter.go extracts the optional YAML header from a document.
package wikitext

import (
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// extractFrontmatter splits a leading "---" delimited YAML header from
// the document body. Malformed or absent headers yield a nil map and
// the entire input as body; extraction never fails.
func extractFrontmatter(input string) (map[string]string, string) {
	rest, ok := strings.CutPrefix(input, frontmatterDelimiter+"\n")
	if !ok {
		// A document that is exactly "---" with no newline has no body
		// and no frontmatter either.
		return nil, input
	}

	header, body, found := cutFrontmatterEnd(rest)
	if !found {
		return nil, input
	}

	var fm map[string]string
	if err := yaml.Unmarshal([]byte(header), &fm); err != nil || len(fm) == 0 {
		return nil, input
	}

	return fm, body
}

// cutFrontmatterEnd finds the closing "---" line and splits header from
// body. The delimiter must occupy a line of its own.
func cutFrontmatterEnd(s string) (header, body string, found bool) {
	if after, ok := strings.CutPrefix(s, frontmatterDelimiter+"\n"); ok {
		return "", after, true
	}
	if idx := strings.Index(s, "\n"+frontmatterDelimiter+"\n"); idx >= 0 {
		return s[:idx], s[idx+len(frontmatterDelimiter)+2:], true
	}
	if after, ok := strings.CutSuffix(s, "\n"+frontmatterDelimiter); ok {
		return after, "", true
	}
	return "", "", false
}
