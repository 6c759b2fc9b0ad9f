// sanitize.go escapes raw HTML markup while preserving character references.
package wikitext

import "strings"

// Sanitize escapes HTML tags in user input while preserving recognized
// HTML entities. It is a pure single-pass transform:
//
//   - '<' and '>' are always escaped.
//   - '&' is kept only when it starts a recognized entity reference
//     (named, decimal, or hexadecimal) terminated by ';'. Anything else
//     becomes "&amp;" and scanning resumes at the following character.
//   - Every other byte is copied through unchanged.
//
// Inputs containing none of '<', '>', '&' are returned as-is without
// allocating.
func Sanitize(input string) string {
	if !strings.ContainsAny(input, "<>&") {
		return input
	}

	var sb strings.Builder
	sb.Grow(len(input) + 32)

	for i := 0; i < len(input); i++ {
		switch input[i] {
		case '<':
			sb.WriteString("&lt;")
		case '>':
			sb.WriteString("&gt;")
		case '&':
			if ok, n := matchEntity(input, i); ok {
				sb.WriteString(input[i : i+n])
				i += n - 1
			} else {
				sb.WriteString("&amp;")
			}
		default:
			sb.WriteByte(input[i])
		}
	}

	return sb.String()
}
