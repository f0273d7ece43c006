package eex

import "strings"

// Render reproduces the source a token stream was tokenized from,
// modulo whatever a trim-enabled Tokenize call already elided — this is
// Invariant 1 from the tokenizer's data model made concrete: Text tokens
// render as their contents, every other token rewraps as "<%" + marker +
// contents + "%>". Two source forms leave no trace to restore: a <%%
// escape renders as the literal "<%" it stood for, and a <%# comment is
// not rendered at all.
func Render(tokens []Token) string {
	var b strings.Builder
	for _, t := range tokens {
		if t.Kind == TokenText {
			b.WriteString(t.Contents)
			continue
		}
		b.WriteString("<%")
		b.WriteString(t.Marker)
		b.WriteString(t.Contents)
		b.WriteString("%>")
	}
	return b.String()
}
