// Package calc evaluates integer arithmetic expressions using the
// parse combinators: +, -, *, / with the usual precedence,
// parentheses, and optional whitespace between tokens.
package calc

import (
	"github.com/dhamidi/parsec/parse"
)

// KindArithmetic classifies evaluation failures such as division by
// zero, which are reported as parse errors at the offending operand.
const KindArithmetic = "arithmetic"

// Eval parses and evaluates input. The whole input must be one
// expression; trailing garbage is an error.
func Eval(input string) (int, error) {
	p := parse.And(
		parse.Maybe(parse.Spaces()),
		parse.FollowedBy(expression(), parse.EOF()),
	)
	value, err := parse.Parse(p, input)
	if err != nil {
		return 0, err
	}
	return value.(int), nil
}

// lexeme wraps a parser to consume any whitespace after its match.
func lexeme(p parse.Parser) parse.Parser {
	return parse.FollowedBy(p, parse.Maybe(parse.Spaces()))
}

// expression folds terms left-associatively over + and -.
func expression() parse.Parser {
	return parse.Sequence(func(s parse.Step) parse.Parser {
		acc := s(term()).(int)
		for {
			op, ok := s(parse.Maybe(lexeme(parse.OneOf("+-")))).(string)
			if !ok {
				break
			}
			rhs := s(term()).(int)
			if op == "+" {
				acc += rhs
			} else {
				acc -= rhs
			}
		}
		return parse.Value(acc)
	})
}

// term folds factors left-associatively over * and /.
func term() parse.Parser {
	return parse.Sequence(func(s parse.Step) parse.Parser {
		acc := s(factor()).(int)
		for {
			op, ok := s(parse.Maybe(lexeme(parse.OneOf("*/")))).(string)
			if !ok {
				break
			}
			rhs := s(factor()).(int)
			if op == "*" {
				acc *= rhs
				continue
			}
			if rhs == 0 {
				s(parse.Fail("division by zero", KindArithmetic))
			}
			acc /= rhs
		}
		return parse.Value(acc)
	})
}

func factor() parse.Parser {
	return parse.Or(lexeme(parse.Integer()), group())
}

// group parses a parenthesized expression. The recursion back into
// expression happens inside the builder, at parse time, so the
// grammar's cycle never recurses at construction time.
func group() parse.Parser {
	return parse.Sequence(func(s parse.Step) parse.Parser {
		s(lexeme(parse.Character('(')))
		value := s(expression())
		s(lexeme(parse.Character(')')))
		return parse.Value(value)
	})
}
