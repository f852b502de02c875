// Package cmdline splits a raw command-line string into argument tokens,
// applying cmd-style quoting, escaping and %NAME% environment-variable
// substitution in a single left-to-right pass. The grammar is built on
// the combinators in pkg/parse.
package cmdline

import (
	"fmt"

	"github.com/ryanreadbooks/cmdrun/pkg/parse"
)

// Lookup resolves a variable name to its replacement. It must be a pure
// function; returning false leaves the reference in the output verbatim.
type Lookup func(name string) (string, bool)

// MalformedInputError is the only error Tokenize produces: some suffix of
// the input could not be consumed as further terms, e.g. an unterminated
// quoted term. Tokenization is all-or-nothing, so no partial token list
// accompanies it.
type MalformedInputError struct {
	Text string
}

func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("malformed command line: %q", e.Text)
}

// Grammar is a command-line parser bound to a variable lookup and a
// quote-preservation flag. It holds no other state and builds its parser
// tree once, so a single Grammar is safe to share across goroutines.
type Grammar struct {
	lookup         Lookup
	preserveQuotes bool
	terms          parse.Parser[[]string]
}

// New builds the grammar. A nil lookup resolves nothing, leaving every
// %NAME% reference literal.
func New(lookup Lookup, preserveQuotes bool) *Grammar {
	if lookup == nil {
		lookup = func(string) (string, bool) { return "", false }
	}
	g := &Grammar{lookup: lookup, preserveQuotes: preserveQuotes}
	g.terms = g.build()
	return g
}

// Tokenize parses the whole text with a one-off grammar. Callers
// tokenizing many lines with the same settings should build one Grammar
// and call Parse instead.
func Tokenize(text string, lookup Lookup, preserveQuotes bool) ([]string, error) {
	return New(lookup, preserveQuotes).Parse(text)
}

// Parse tokenizes one command line. The input must be consumable in its
// entirety as a sequence of terms; anything left over fails the whole
// parse. Empty input yields zero tokens.
func (g *Grammar) Parse(text string) ([]string, error) {
	r := g.terms(parse.NewCursor(text))
	if !r.Ok() || !r.Rest().AtEnd() {
		return nil, &MalformedInputError{Text: text}
	}
	return r.Value(), nil
}

// build assembles the parser tree. Alternation order is load-bearing
// throughout: a variable reference outranks an escape sequence (so %%
// reads as a reference to the empty name unless the lookup resolves it),
// and both outrank plain characters.
func (g *Grammar) build() parse.Parser[[]string] {
	variable := parse.Map(
		parse.First(parse.And(
			parse.Second(parse.And(
				parse.Char('%'),
				parse.Text(parse.Repeat(parse.Not(parse.AnyChar(), parse.Char('%')))),
			)),
			parse.Char('%'),
		)),
		g.substitute,
	)

	escape := parse.Or(
		parse.Or(escapePair('%', '%'), escapePair('^', '^')),
		parse.Or(escapePair('\\', '\\'), escapePair('\\', '"')),
	)

	special := parse.Or(variable, escape)

	// a quote never belongs to an unquoted piece; that is what makes a
	// dangling quote unparseable instead of part of a token
	unquotedPiece := parse.Text(parse.Repeat1(
		parse.Not(parse.Not(parse.Not(parse.AnyChar(), parse.Char(' ')), parse.Char('"')), special),
	))
	quotedPiece := parse.Text(parse.Repeat1(
		parse.Not(parse.Not(parse.AnyChar(), parse.Char('"')), special),
	))

	unquotedTerm := parse.Concat(parse.Repeat1(parse.Or(unquotedPiece, special)))

	quotedBody := parse.Concat(parse.Repeat(parse.Or(quotedPiece, special)))
	quotedTerm := parse.Map(
		parse.First(parse.And(
			parse.Second(parse.And(parse.Char('"'), quotedBody)),
			parse.Char('"'),
		)),
		g.requote,
	)

	spaces := parse.Repeat(parse.Char(' '))
	term := parse.Second(parse.And(
		spaces,
		parse.First(parse.And(parse.Or(quotedTerm, unquotedTerm), spaces)),
	))

	return parse.Repeat(term)
}

// substitute resolves a captured variable name, or reconstructs the
// literal reference when the lookup has no answer.
func (g *Grammar) substitute(name string) string {
	if value, ok := g.lookup(name); ok {
		return value
	}
	return "%" + name + "%"
}

func (g *Grammar) requote(body string) string {
	if g.preserveQuotes {
		return `"` + body + `"`
	}
	return body
}

// escapePair matches the two-byte sequence ab and yields b, covering
// %% ^^ \\ and \" in the escape table.
func escapePair(a, b byte) parse.Parser[string] {
	return parse.Map(
		parse.And(parse.Char(a), parse.Char(b)),
		func(p parse.Pair[byte, byte]) string { return string(p.Second) },
	)
}
