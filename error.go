package eex

import "fmt"

// Error describes a failure during tokenization. Tokenize has exactly
// one fatal condition (an unterminated fragment), always surfaced as one
// of these, but the type carries enough to be reused by callers that
// wrap the tokenizer in their own compiler pipeline.
type Error struct {
	// Line is the source line where the error was detected.
	Line int

	// Sender names the component that raised the error, e.g.
	// "tokenizer". Set so multi-stage callers can tell where in their
	// pipeline a failure originated.
	Sender string

	// OrigError is the underlying cause.
	OrigError error
}

// Error returns a formatted error string in the teacher's bracketed
// style: "[Error (where: sender) | Line N] message".
func (e *Error) Error() string {
	s := "[Error"
	if e.Sender != "" {
		s += " (where: " + e.Sender + ")"
	}
	if e.Line > 0 {
		s += fmt.Sprintf(" | Line %d", e.Line)
	}
	s += "] "
	if e.OrigError != nil {
		s += e.OrigError.Error()
	}
	return s
}

// Unwrap exposes the underlying cause so callers can use errors.Is and
// errors.As against it.
func (e *Error) Unwrap() error {
	return e.OrigError
}

// errUnterminatedFragment builds the single fatal error this module can
// return: a fragment opened with <% that never saw a matching %>.
func errUnterminatedFragment(line int) error {
	return &Error{
		Line:      line,
		Sender:    "tokenizer",
		OrigError: fmt.Errorf("missing token '%%>'"),
	}
}
