// Package parsec is a small parser-combinator library.
//
// A parser is a plain function from an input string to a Result: either a
// parsed value together with the unconsumed remainder of the input, or a
// failure describing what was expected and what was found instead. Larger
// parsers are assembled from primitives (Text, Regex, EOF, Pure) with
// combinators (Map, OneOf, Apply, Collect, Lexeme, Many, Then) and run with
// Parse.
//
// Failure is ordinary data everywhere below Parse: OneOf uses it to try the
// next alternative, Many uses it to stop repeating. Only Parse turns a
// failure into an error.
//
// Parsers are stateless and never mutate their input, so a composed parser
// built once can be shared freely and run concurrently on independent
// inputs.
package parsec

import "fmt"

// Parser consumes a prefix of its input and produces a Result. The returned
// Rest is always a suffix of the input: a parser may consume nothing, but
// never skips ahead or rewrites what it was given.
type Parser[T any] func(input string) Result[T]

// Result is the outcome of running a parser. Failure is nil on success;
// Data and Rest are meaningless when Failure is set.
type Result[T any] struct {
	Data    T
	Rest    string
	Failure *Failure
}

// Failed reports whether the parse failed.
func (r Result[T]) Failed() bool {
	return r.Failure != nil
}

// Failure describes a failed parse: what the parser required and the
// remaining input at the point it gave up. Positions are not tracked; the
// unconsumed suffix itself is the diagnostic.
type Failure struct {
	Expected string
	Actual   string
}

func (f *Failure) Error() string {
	return fmt.Sprintf("Parse error. Expected %s. Instead found %s.", f.Expected, f.Actual)
}

// Success builds a successful Result.
func Success[T any](data T, rest string) Result[T] {
	return Result[T]{Data: data, Rest: rest}
}

// Fail builds a failed Result.
func Fail[T any](expected, actual string) Result[T] {
	return Result[T]{Failure: &Failure{Expected: expected, Actual: actual}}
}

// failAs carries a failure across result types. The Failure value is shared,
// not copied; it is never mutated after construction.
func failAs[T, U any](r Result[T]) Result[U] {
	return Result[U]{Failure: r.Failure}
}

// Parse runs p against input. On success it returns the parsed value and
// the unconsumed remainder; the caller decides whether leftover input
// matters, typically by sequencing the parser with EOF. On failure the
// *Failure is returned as the error.
func Parse[T any](p Parser[T], input string) (T, string, error) {
	r := p(input)
	if r.Failed() {
		var zero T
		return zero, "", r.Failure
	}
	return r.Data, r.Rest, nil
}
