// Package parse is a small backtracking-limited parser-combinator engine.
// A Parser[T] is a pure function from an input Cursor to a Result[T];
// combinators build bigger parsers out of smaller ones. Alternation
// retries from the original position, but consumption inside a sequence
// is final once a sub-parser succeeds.
package parse

import (
	"strings"

	"github.com/ryanreadbooks/cmdrun/pkg/xstring"
)

// Parser consumes input at a cursor. Same cursor in, same result out;
// parsers must not mutate anything outside the cursor they are given.
type Parser[T any] func(Cursor) Result[T]

// Pair is the ephemeral product of sequencing two parsers. Use First or
// Second to project the half you want.
type Pair[A, B any] struct {
	First  A
	Second B
}

// AnyChar consumes exactly one byte, failing only at end of input.
func AnyChar() Parser[byte] {
	return func(c Cursor) Result[byte] {
		if c.AtEnd() {
			return Failure[byte]()
		}
		return Advance(c, c.Peek(0), 1)
	}
}

// Char consumes exactly one byte equal to want, failing without
// consuming otherwise.
func Char(want byte) Parser[byte] {
	return func(c Cursor) Result[byte] {
		if c.AtEnd() || c.Peek(0) != want {
			return Failure[byte]()
		}
		return Advance(c, want, 1)
	}
}

// Repeat applies p zero or more times, collecting the values in order.
// It never fails: the first sub-parse failure just stops the loop and the
// remainder is wherever the last success left off. An iteration that
// succeeds without advancing also stops the loop, otherwise a parser
// matching zero-length input would repeat forever.
func Repeat[T any](p Parser[T]) Parser[[]T] {
	return func(c Cursor) Result[[]T] {
		var values []T
		for {
			r := p(c)
			if !r.ok || r.rest.start == c.start {
				break
			}
			values = append(values, r.value)
			c = r.rest
		}
		return Success(values, c)
	}
}

// Repeat1 is Repeat but fails if not even one iteration matched.
func Repeat1[T any](p Parser[T]) Parser[[]T] {
	rep := Repeat(p)
	return func(c Cursor) Result[[]T] {
		r := rep(c)
		if len(r.value) == 0 {
			return Failure[[]T]()
		}
		return r
	}
}

// And sequences two parsers: pb starts where pa left off, and both must
// succeed. There is no backtracking into pa once it has succeeded; if pb
// fails the whole sequence fails from the original position.
func And[A, B any](pa Parser[A], pb Parser[B]) Parser[Pair[A, B]] {
	return func(c Cursor) Result[Pair[A, B]] {
		ra := pa(c)
		if !ra.ok {
			return Failure[Pair[A, B]]()
		}
		rb := pb(ra.rest)
		if !rb.ok {
			return Failure[Pair[A, B]]()
		}
		return Success(Pair[A, B]{First: ra.value, Second: rb.value}, rb.rest)
	}
}

// Or is ordered alternation: p1 is tried first, and if it fails p2 runs
// from the same original position. First success wins; there is no
// longest-match comparison, so order encodes precedence.
func Or[T any](p1, p2 Parser[T]) Parser[T] {
	return func(c Cursor) Result[T] {
		if r := p1(c); r.ok {
			return r
		}
		return p2(c)
	}
}

// Not gates p behind a negative lookahead: guard runs first at the same
// position, and if it matches the whole parser fails. Anything guard
// consumed is discarded either way; only p's consumption counts.
func Not[T, G any](p Parser[T], guard Parser[G]) Parser[T] {
	return func(c Cursor) Result[T] {
		if g := guard(c); g.ok {
			return Failure[T]()
		}
		return p(c)
	}
}

// First keeps the left half of a sequenced pair.
func First[A, B any](p Parser[Pair[A, B]]) Parser[A] {
	return Map(p, func(v Pair[A, B]) A { return v.First })
}

// Second keeps the right half of a sequenced pair.
func Second[A, B any](p Parser[Pair[A, B]]) Parser[B] {
	return Map(p, func(v Pair[A, B]) B { return v.Second })
}

// Map transforms a successful value with f, leaving failure and the
// remainder untouched.
func Map[T, U any](p Parser[T], f func(T) U) Parser[U] {
	return func(c Cursor) Result[U] {
		r := p(c)
		if !r.ok {
			return Failure[U]()
		}
		return Success(f(r.value), r.rest)
	}
}

// Text folds matched bytes into a string. The slice comes fresh out of
// Repeat, so the unsafe aliasing is sound.
func Text(p Parser[[]byte]) Parser[string] {
	return Map(p, xstring.FromBytes)
}

// Concat folds matched fragments into one string, preserving order.
func Concat(p Parser[[]string]) Parser[string] {
	return Map(p, func(parts []string) string {
		return strings.Join(parts, "")
	})
}
