package eex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// classify decides the TokenKind of a fragment body. body is in forward
// orientation (unlike the reversed-buffer convention the original
// implementation uses internally — see the package's design notes: this
// module appends to the back of its buffers, so suffix checks are done
// directly against the forward string instead of against a reversed
// prefix).
func classify(body string) TokenKind {
	trimmed := strings.TrimRight(body, " \t")

	switch {
	case endsWithKeyword(trimmed, "do"):
		return TokenStartExpr
	case strings.HasSuffix(trimmed, "->"):
		return classifyArrow(body)
	case endsWithKeyword(trimmed, "else"),
		endsWithKeyword(trimmed, "after"),
		endsWithKeyword(trimmed, "catch"),
		endsWithKeyword(trimmed, "rescue"):
		return TokenMiddleExpr
	case endsWithKeyword(trimmed, "end"):
		return TokenEndExpr
	default:
		return TokenExpr
	}
}

// endsWithKeyword reports whether trimmed ends with keyword as a whole
// word, tolerating a trailing call-closing ")" the way "<% end) %>"
// closes both an anonymous function and the call that wraps it. The
// character immediately preceding the keyword, if any, must not be an
// identifier character — otherwise "pretend" would be mistaken for a
// fragment ending in "end".
func endsWithKeyword(trimmed, keyword string) bool {
	tail := trimCallParens(trimmed)
	if !strings.HasSuffix(tail, keyword) {
		return false
	}
	before := tail[:len(tail)-len(keyword)]
	if before == "" {
		return true
	}
	last, _ := utf8.DecodeLastRuneInString(before)
	return !isIdentRune(last)
}

// trimCallParens strips trailing whitespace and any trailing ")"
// characters picked up from a wrapping call, so that "end)" is
// recognized the same way "end" alone is.
func trimCallParens(s string) string {
	for {
		t := strings.TrimRight(s, " \t")
		if strings.HasSuffix(t, ")") {
			s = t[:len(t)-1]
			continue
		}
		return t
	}
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// classifyArrow resolves the "->" ambiguity: a fragment ending in an
// arrow opens a block if it contains an fn (or fn_paren) and no "end"
// appears before the first one. An "end" after that fn still yields
// start_expr, so an fn closed within the fragment counts as opening.
// body is passed in forward orientation to the embedded host lexer, in
// relaxed mode (unbalanced brackets tolerated).
func classifyArrow(body string) TokenKind {
	toks, err := hostLex(body)
	if err != nil {
		logf("host lexer could not classify arrow fragment %q, defaulting to middle_expr: %v", body, err)
		return TokenMiddleExpr
	}

	fnIdx, endIdx := -1, -1
	for i, t := range toks {
		if fnIdx == -1 && (t.kind == hostFn || t.kind == hostFnParen) {
			fnIdx = i
		}
		if endIdx == -1 && t.kind == hostEnd {
			endIdx = i
		}
	}

	if fnIdx >= 0 && (endIdx == -1 || endIdx > fnIdx) {
		return TokenStartExpr
	}
	return TokenMiddleExpr
}
