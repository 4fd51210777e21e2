package parsec

import "fmt"

// Map applies f to the value parsed by p. Failures pass through unchanged;
// f never sees the unconsumed remainder.
func Map[T, U any](f func(T) U, p Parser[T]) Parser[U] {
	return func(input string) Result[U] {
		r := p(input)
		if r.Failed() {
			return failAs[T, U](r)
		}
		return Success(f(r.Data), r.Rest)
	}
}

// Label replaces the expected-description of any failure produced by p,
// preserving the point of failure. Use it to give user-facing names to
// technical primitives, e.g. "a decimal" instead of a raw pattern.
func Label[T any](p Parser[T], expected string) Parser[T] {
	return func(input string) Result[T] {
		r := p(input)
		if r.Failed() {
			return Fail[T](expected, r.Failure.Actual)
		}
		return r
	}
}

// OneOf tries each parser in order against the same input and returns the
// first success. The choice is committed: once an alternative succeeds, no
// later one is tried, even if it would match more. When every alternative
// fails the result is a generic failure; the individual branch failures are
// discarded, which keeps alternatives cheap at the cost of vaguer
// diagnostics.
func OneOf[T any](parsers ...Parser[T]) Parser[T] {
	return func(input string) Result[T] {
		for _, p := range parsers {
			r := p(input)
			if !r.Failed() {
				return r
			}
		}
		return Fail[T](fmt.Sprintf("one of %d alternatives", len(parsers)), input)
	}
}

// Apply runs parsers in order, threading the unconsumed remainder from one
// to the next, and combines the parsed values with f. The first failure
// short-circuits the whole sequence.
func Apply[T, R any](f func([]T) R, parsers ...Parser[T]) Parser[R] {
	return func(input string) Result[R] {
		values := make([]T, 0, len(parsers))
		rest := input
		for _, p := range parsers {
			r := p(rest)
			if r.Failed() {
				return failAs[T, R](r)
			}
			values = append(values, r.Data)
			rest = r.Rest
		}
		return Success(f(values), rest)
	}
}

// Collect is Apply with the identity: it yields the parsed values in order.
func Collect[T any](parsers ...Parser[T]) Parser[[]T] {
	return Apply(func(values []T) []T { return values }, parsers...)
}

// Lexeme builds a tokenizer from a junk parser. The returned function wraps
// a content parser so that it consumes trailing junk (typically whitespace)
// after every successful match, keeping only the content's value. The junk
// parser is expected to always succeed; should it fail anyway, the token
// parser leaves the remainder untouched rather than failing.
func Lexeme[T, J any](junk Parser[J]) func(Parser[T]) Parser[T] {
	return func(content Parser[T]) Parser[T] {
		return func(input string) Result[T] {
			r := content(input)
			if r.Failed() {
				return r
			}
			j := junk(r.Rest)
			if j.Failed() {
				return r
			}
			return Success(r.Data, j.Rest)
		}
	}
}

// Many applies p greedily, zero or more times, and yields the parsed values
// in order. It never fails: a failure of p simply ends the repetition.
//
// A success that consumes no input also ends the repetition and its value
// is discarded; without this a zero-width parser such as Pure would repeat
// forever.
func Many[T any](p Parser[T]) Parser[[]T] {
	return func(input string) Result[[]T] {
		var values []T
		rest := input
		for {
			r := p(rest)
			if r.Failed() || r.Rest == rest {
				break
			}
			values = append(values, r.Data)
			rest = r.Rest
		}
		return Success(values, rest)
	}
}

// Then sequences p with a parser chosen from its value: run p, feed the
// parsed value to f, and run the parser f returns on the remainder. A
// failure of p aborts the chain. Unlike Apply, each later step may be
// constructed from values parsed earlier, so a grammar can be written as a
// linear script of binds ending in Pure.
func Then[T, U any](p Parser[T], f func(T) Parser[U]) Parser[U] {
	return func(input string) Result[U] {
		r := p(input)
		if r.Failed() {
			return failAs[T, U](r)
		}
		return f(r.Data)(r.Rest)
	}
}
