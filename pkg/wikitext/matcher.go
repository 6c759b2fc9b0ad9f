// matcher.go recognizes plugin invocation spans in raw text.
package wikitext

import "strings"

// maxScanWindow caps how far a single candidate may scan. Pathological
// unterminated constructs become fast rejections instead of
// full-document scans.
const maxScanWindow = 4096

// matchInvocation attempts to parse exactly one plugin invocation
// starting at pos, which must point at '&' or '@'. On success it
// returns the invocation and the byte length of the matched span. On
// failure length is 0 and the caller advances one character.
func matchInvocation(s string, pos int) (Invocation, int) {
	switch s[pos] {
	case '&':
		return matchInline(s, pos)
	case '@':
		return matchBlock(s, pos)
	}
	return Invocation{}, 0
}

// matchInline parses '&' Name Args? ( '{' Content '}' )? ';'.
// The trailing ';' is mandatory; without it the whole candidate is
// rejected and the text stays literal.
func matchInline(s string, pos int) (Invocation, int) {
	limit := scanLimit(s, pos)
	i := pos + 1 // skip '&'

	name, i := scanName(s, i, limit)
	if name == "" {
		return Invocation{}, 0
	}

	inv := Invocation{Kind: KindInline, Name: name, Args: []string{}}

	// Optional argument list.
	if i < limit && s[i] == '(' {
		args, next, ok := scanArgs(s, i, limit)
		if !ok {
			return Invocation{}, 0
		}
		inv.Args = args
		i = next
	}

	// Optional brace-delimited content; '\}' escapes the terminator.
	if i < limit && s[i] == '{' {
		content, next, ok := scanInlineContent(s, i, limit)
		if !ok {
			return Invocation{}, 0
		}
		inv.Content = content
		inv.HasContent = true
		i = next
	}

	if i >= limit || s[i] != ';' {
		return Invocation{}, 0
	}
	i++

	// A bare name that reads as an HTML entity ("&amp;", "&nbsp;") is
	// not a plugin candidate; it is left for the sanitizer to preserve.
	if len(inv.Args) == 0 && !inv.HasContent {
		if _, entity := namedEntities[inv.Name]; entity {
			return Invocation{}, 0
		}
	}

	return inv, i - pos
}

// matchBlock parses '@' Name '(' ArgList? ')' ( '{{' Content '}}' )?.
// The parentheses are mandatory even when empty: a bare @name is plain
// text, which is how @mention-style prose is distinguished from plugin
// syntax.
func matchBlock(s string, pos int) (Invocation, int) {
	limit := scanLimit(s, pos)
	i := pos + 1 // skip '@'

	name, i := scanName(s, i, limit)
	if name == "" {
		return Invocation{}, 0
	}
	if i >= limit || s[i] != '(' {
		return Invocation{}, 0
	}

	args, i, ok := scanArgs(s, i, limit)
	if !ok {
		return Invocation{}, 0
	}

	inv := Invocation{Kind: KindBlock, Name: name, Args: args}

	// Optional {{ ... }} content directly after the close paren.
	if i+1 < limit && s[i] == '{' && s[i+1] == '{' {
		content, next, ok := scanBlockContent(s, i, limit)
		if !ok {
			return Invocation{}, 0
		}
		inv.Content = content
		inv.HasContent = true
		i = next
	}

	return inv, i - pos
}

func scanLimit(s string, pos int) int {
	if len(s)-pos > maxScanWindow {
		return pos + maxScanWindow
	}
	return len(s)
}

// scanName consumes identifier characters starting at i. An empty name
// means no candidate.
func scanName(s string, i, limit int) (string, int) {
	start := i
	for i < limit && isNameChar(s[i]) {
		i++
	}
	return s[start:i], i
}

// scanArgs parses '(' ArgList? ')' starting at the open paren. Each
// argument is trimmed of surrounding whitespace; empty parentheses
// yield an empty (non-nil) list.
func scanArgs(s string, i, limit int) ([]string, int, bool) {
	i++ // skip '('
	start := i
	for i < limit && s[i] != ')' {
		i++
	}
	if i >= limit {
		return nil, 0, false
	}
	raw := s[start:i]
	i++ // skip ')'

	if strings.TrimSpace(raw) == "" {
		return []string{}, i, true
	}
	parts := strings.Split(raw, ",")
	args := make([]string, len(parts))
	for k, p := range parts {
		args[k] = strings.TrimSpace(p)
	}
	return args, i, true
}

// scanInlineContent parses '{' Content '}' starting at the open brace.
// Content runs to the first unescaped '}'; a backslash escapes the
// brace and is dropped from the captured content.
func scanInlineContent(s string, i, limit int) (string, int, bool) {
	i++ // skip '{'
	var sb strings.Builder
	for i < limit {
		c := s[i]
		if c == '\\' && i+1 < limit && s[i+1] == '}' {
			sb.WriteByte('}')
			i += 2
			continue
		}
		if c == '}' {
			return sb.String(), i + 1, true
		}
		sb.WriteByte(c)
		i++
	}
	return "", 0, false
}

// scanBlockContent parses '{{' Content '}}' starting at the first '{'.
// Single braces inside the content nest: only a '}}' encountered at
// depth zero terminates the region. Unbalanced content rejects the
// whole invocation.
func scanBlockContent(s string, i, limit int) (string, int, bool) {
	i += 2 // skip '{{'
	start := i
	depth := 0
	for i < limit {
		switch s[i] {
		case '{':
			depth++
		case '}':
			if depth > 0 {
				depth--
			} else if i+1 < limit && s[i+1] == '}' {
				return s[start:i], i + 2, true
			}
			// A stray '}' at depth zero that is not part of '}}'
			// stays in the content.
		}
		i++
	}
	return "", 0, false
}
