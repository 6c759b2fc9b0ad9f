// encode.go lifts plugin invocations out of the document before
// sanitization and Markdown rendering.
package wikitext

import (
	"strconv"
	"strings"
)

// Token guard bytes. Sanitized wiki text never legitimately contains
// control characters, the sanitizer copies them through untouched, and
// the CommonMark renderer treats them as inert text, so a guarded
// counter string survives both stages intact and collides with nothing.
const (
	tokenGuard  = "\x01"
	tokenMarker = "WMPLUG"
)

// invocationTable maps conflict tokens to their invocations. One table
// exists per parse call; it is never cached or shared, since tokens are
// only collision-free within a single call.
type invocationTable struct {
	entries map[string]Invocation
	order   []string
}

func newInvocationTable() *invocationTable {
	return &invocationTable{entries: make(map[string]Invocation)}
}

func (t *invocationTable) add(inv Invocation) string {
	token := tokenGuard + tokenMarker + strconv.Itoa(len(t.order)) + tokenGuard
	t.entries[token] = inv
	t.order = append(t.order, token)
	return token
}

// encodeInvocations scans the body for plugin syntax and replaces every
// recognized span with a fresh conflict token, recording the mapping.
// Raw '<' and '&' inside plugin arguments or content would otherwise be
// corrupted by the sanitizer, and '{', '(', '_' could be reinterpreted
// as Markdown by the external renderer; opaque tokens are inert to
// both. Non-matches stay literal, so malformed plugin-like input never
// fails — it is simply not recognized.
func encodeInvocations(body string) (string, *invocationTable) {
	table := newInvocationTable()
	if !strings.ContainsAny(body, "&@") {
		return body, table
	}

	var sb strings.Builder
	sb.Grow(len(body))

	for i := 0; i < len(body); {
		c := body[i]
		if c == '&' || c == '@' {
			if inv, n := matchInvocation(body, i); n > 0 {
				sb.WriteString(table.add(inv))
				i += n
				continue
			}
		}
		sb.WriteByte(c)
		i++
	}

	return sb.String(), table
}
