// Package calc evaluates flat arithmetic expressions such as "23 + 23". It
// is the reference consumer of the parsec combinators: decimals, operators
// and end-of-input are ordinary token parsers, and the left-associative
// chain is a Then script that folds as it parses.
//
// Operators are applied strictly left to right; there is no precedence, so
// "2 + 3 * 4" evaluates to 20.
package calc

import (
	"strconv"

	"github.com/dhamidi/parsec"
)

var (
	spaces = parsec.Regex(`[ \t]*`)
	token  = parsec.Lexeme[string](spaces)

	digits   = token(parsec.Label(parsec.Regex(`[0-9]+`), "a decimal"))
	operator = token(parsec.Label(parsec.OneOf(
		parsec.Text("+"),
		parsec.Text("-"),
		parsec.Text("*"),
		parsec.Text("/"),
	), "an operator"))

	decimal = parsec.Map(atoi, digits)

	expr = parsec.Then(decimal, tail)

	// expression skips leading filler and requires the input to be fully
	// consumed; tokens already skip trailing filler.
	expression = parsec.Then(spaces, func(string) parsec.Parser[int] {
		return parsec.Then(expr, func(n int) parsec.Parser[int] {
			return parsec.Map(func(string) int { return n }, parsec.EOF)
		})
	})
)

// Eval parses and evaluates input as a left-associative chain of integer
// operations, requiring the whole input to be consumed.
func Eval(input string) (int, error) {
	n, _, err := parsec.Parse(expression, input)
	return n, err
}

// tail parses "operator decimal" pairs for as long as they keep coming,
// folding each one into the running value. Choosing the next parser from
// the accumulated value is what makes the chain left-associative without
// left recursion.
func tail(acc int) parsec.Parser[int] {
	step := parsec.Then(operator, func(op string) parsec.Parser[int] {
		return parsec.Then(decimal, func(n int) parsec.Parser[int] {
			if op == "/" && n == 0 {
				return func(input string) parsec.Result[int] {
					return parsec.Fail[int]("a non-zero divisor", input)
				}
			}
			return tail(applyOp(acc, op, n))
		})
	})
	return parsec.OneOf(step, parsec.Pure(acc))
}

func applyOp(a int, op string, b int) int {
	switch op {
	case "+":
		return a + b
	case "-":
		return a - b
	case "*":
		return a * b
	case "/":
		return a / b
	}
	panic("unreachable: operator admits only + - * /")
}

func atoi(s string) int {
	// digits only matches [0-9]+, so the conversion cannot fail.
	n, _ := strconv.Atoi(s)
	return n
}
