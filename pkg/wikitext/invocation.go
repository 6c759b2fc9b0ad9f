// invocation.go defines the core data structures for plugin syntax.
package wikitext

// InvocationKind distinguishes the two plugin grammars.
type InvocationKind int

const (
	// KindInline is the &name(args){content}; form.
	KindInline InvocationKind = iota
	// KindBlock is the @name(args){{content}} form.
	KindBlock
)

// Invocation represents one recognized plugin invocation. The pipeline
// never executes plugins; it only recognizes their syntax and emits a
// structured HTML placeholder for an external renderer to interpret.
type Invocation struct {
	Kind       InvocationKind
	Name       string
	Args       []string // declaration order, each trimmed; may be empty
	Content    string   // raw content, captured before sanitization
	HasContent bool     // false means self-closing output
}

// isNameChar reports whether c may appear in a plugin name. Names are
// ASCII letters, digits, '-' and '_'; whitespace never.
func isNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '-' || c == '_'
}
