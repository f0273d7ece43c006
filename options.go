package eex

import (
	"log"
	"os"
)

var (
	debug  = false
	logger = log.New(os.Stderr, "[eex] ", log.LstdFlags)
)

// SetDebug turns on tracing of tokenizer decisions (comment fragments,
// each fragment's classification including the -> disambiguation
// outcome, and host-lexer failures) to stderr. Escape handling and trim
// decisions are not traced.
// Off by default; intended for debugging a misbehaving template, not for
// production use.
func SetDebug(b bool) {
	debug = b
}

func logf(format string, args ...any) {
	if debug {
		logger.Printf(format, args...)
	}
}
