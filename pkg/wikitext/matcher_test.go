package wikitext

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchInvocationInline(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Invocation
	}{
		{
			name:  "args and content",
			input: "&highlight(yellow){important text};",
			want: Invocation{
				Kind:       KindInline,
				Name:       "highlight",
				Args:       []string{"yellow"},
				Content:    "important text",
				HasContent: true,
			},
		},
		{
			name:  "args only",
			input: "&icon(mdi-pencil);",
			want:  Invocation{Kind: KindInline, Name: "icon", Args: []string{"mdi-pencil"}},
		},
		{
			name:  "bare name",
			input: "&br;",
			want:  Invocation{Kind: KindInline, Name: "br", Args: []string{}},
		},
		{
			name:  "empty parentheses",
			input: "&ref();",
			want:  Invocation{Kind: KindInline, Name: "ref", Args: []string{}},
		},
		{
			name:  "multiple args trimmed",
			input: "&size( 20 , px );",
			want:  Invocation{Kind: KindInline, Name: "size", Args: []string{"20", "px"}},
		},
		{
			name:  "content only",
			input: "&sup{2};",
			want: Invocation{
				Kind:       KindInline,
				Name:       "sup",
				Args:       []string{},
				Content:    "2",
				HasContent: true,
			},
		},
		{
			name:  "escaped closing brace in content",
			input: `&note{a\}b};`,
			want: Invocation{
				Kind:       KindInline,
				Name:       "note",
				Args:       []string{},
				Content:    "a}b",
				HasContent: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, n := matchInvocation(tt.input, 0)
			require.Equal(t, len(tt.input), n)
			assert.Equal(t, tt.want, inv)
		})
	}
}

func TestMatchInvocationBlock(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Invocation
	}{
		{
			name:  "empty args no content",
			input: "@toc()",
			want:  Invocation{Kind: KindBlock, Name: "toc", Args: []string{}},
		},
		{
			name:  "args trimmed",
			input: "@feed(https://example.com/feed.atom, 10)",
			want: Invocation{
				Kind: KindBlock,
				Name: "feed",
				Args: []string{"https://example.com/feed.atom", "10"},
			},
		},
		{
			name:  "content with nested braces",
			input: "@code(rust){{ fn main() {} }}",
			want: Invocation{
				Kind:       KindBlock,
				Name:       "code",
				Args:       []string{"rust"},
				Content:    " fn main() {} ",
				HasContent: true,
			},
		},
		{
			name:  "deeply nested braces",
			input: "@code(c){{ if (x) { if (y) { z(); } } }}",
			want: Invocation{
				Kind:       KindBlock,
				Name:       "code",
				Args:       []string{"c"},
				Content:    " if (x) { if (y) { z(); } } ",
				HasContent: true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv, n := matchInvocation(tt.input, 0)
			require.Equal(t, len(tt.input), n)
			assert.Equal(t, tt.want, inv)
		})
	}
}

func TestMatchInvocationRejects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "mention without parens", input: "@mention without parens"},
		{name: "inline missing semicolon", input: "&highlight(yellow){text}"},
		{name: "inline unterminated args", input: "&highlight(yellow"},
		{name: "inline unterminated content", input: "&note{never closed;"},
		{name: "block unterminated args", input: "@toc("},
		{name: "block unterminated content", input: "@code(rust){{ never closed"},
		{name: "block unbalanced content", input: "@code(rust){{ open { only }}"},
		{name: "entity stays entity", input: "&amp;"},
		{name: "numeric entity stays entity", input: "&#123;"},
		{name: "empty name inline", input: "&(x);"},
		{name: "empty name block", input: "@(x)"},
		{name: "bare ampersand", input: "& loose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, n := matchInvocation(tt.input, 0)
			assert.Zero(t, n)
		})
	}
}

func TestMatchInvocationScanWindow(t *testing.T) {
	// An unterminated candidate larger than the scan window is rejected
	// without scanning the rest of the document.
	input := "&big(" + strings.Repeat("a", maxScanWindow*2)
	_, n := matchInvocation(input, 0)
	assert.Zero(t, n)
}

func TestMatchInvocationSpanIsExact(t *testing.T) {
	// Trailing text must not be consumed by the match.
	input := "&br; and more"
	inv, n := matchInvocation(input, 0)
	assert.Equal(t, len("&br;"), n)
	assert.Equal(t, "br", inv.Name)
}
