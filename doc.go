// Package eex tokenizes an embedded templating language that interleaves
// literal text with inline expression fragments delimited by <% and %>.
//
// A tiny example:
//
//	toks, err := eex.Tokenize(`Hi <%= name %>!`, 1, eex.Options{})
//	if err != nil {
//	    panic(err)
//	}
//	for _, t := range toks {
//	    fmt.Println(t)
//	}
//
// The tokenizer classifies each fragment as a plain expression or as the
// start, middle, or end of a block, so that a downstream compiler can
// assemble a control-flow tree (pairing a "for" header with its matching
// "end", for example). It never balances those blocks itself; that is
// the caller's job.
package eex
