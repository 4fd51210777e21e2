package parsec

import (
	"regexp"
	"strconv"
	"strings"
)

// Text matches the literal string match at the start of the input and
// yields it as the parsed value.
func Text(match string) Parser[string] {
	expected := strconv.Quote(match)
	return func(input string) Result[string] {
		if strings.HasPrefix(input, match) {
			return Success(match, input[len(match):])
		}
		return Fail[string](expected, input)
	}
}

// Regex matches pattern at the start of the input and yields the matched
// text. The pattern is compiled once and anchored unconditionally; an
// unanchored match could skip input, which would break left-to-right
// consumption. Regex panics if pattern does not compile.
func Regex(pattern string) Parser[string] {
	re := regexp.MustCompile(`^(?:` + pattern + `)`)
	return func(input string) Result[string] {
		loc := re.FindStringIndex(input)
		if loc == nil {
			return Fail[string](pattern, input)
		}
		return Success(input[:loc[1]], input[loc[1]:])
	}
}

// EOF succeeds with an empty value only when the input is exhausted.
var EOF Parser[string] = func(input string) Result[string] {
	if len(input) == 0 {
		return Success("", input)
	}
	return Fail[string]("end of input", input)
}

// Pure always succeeds with v and consumes nothing. It is the identity
// element for sequencing.
func Pure[T any](v T) Parser[T] {
	return func(input string) Result[T] {
		return Success(v, input)
	}
}
