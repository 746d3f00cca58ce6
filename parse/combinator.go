package parse

// Bind runs parser and, on success, hands its value to continuation,
// which must return the parser to run next against the post-parser
// state. On failure the failed state propagates untouched and
// continuation is never invoked. Every combinator below except the
// raw primitives could be written in terms of Bind and Value.
func Bind(parser Parser, continuation func(value any) Parser) Parser {
	return func(s State) State {
		next := parser(s)
		if next.Failed() {
			return next
		}
		return continuation(next.Value)(next)
	}
}

// And runs the parsers in order, each consuming from where the
// previous one stopped, and fails on the first failure. The value is
// the last parser's value. Callers must pass at least one parser.
func And(parsers ...Parser) Parser {
	return func(s State) State {
		cur := s
		for _, p := range parsers {
			cur = p(cur)
			if cur.Failed() {
				return cur
			}
		}
		return cur
	}
}

// Or tries each parser in turn against the original state, so a
// failed alternative's partial consumption is never visible to the
// next one. The first success wins. When every alternative fails the
// result is the original state carrying the errors of all attempts,
// merged in order.
func Or(parsers ...Parser) Parser {
	return func(s State) State {
		var attempts *Error
		for _, p := range parsers {
			next := p(s)
			if !next.Failed() {
				return next
			}
			attempts = Merge(attempts, next.Error)
		}
		s.Error = Merge(s.Error, attempts)
		return s
	}
}

// Maybe turns failure into success: it yields parser's value when it
// matches and Nothing when it does not, never consuming on a miss.
func Maybe(parser Parser) Parser {
	return Or(parser, Value(Nothing))
}

// Not is negative lookahead: it succeeds with true when parser fails
// on the current state and fails when parser succeeds. It never
// consumes either way.
func Not(parser Parser) Parser {
	return func(s State) State {
		if parser(s).Failed() {
			s.Value = true
			s.Error = nil
			return s
		}
		s.Error = Merge(s.Error, NewError(s.Position, KindExpectation, "expected parser to fail"))
		return s
	}
}

// Unless succeeds only when parser fails and the remaining parsers
// all succeed, yielding the last one's value.
func Unless(parser Parser, parsers ...Parser) Parser {
	return And(append([]Parser{Not(parser)}, parsers...)...)
}

// Step runs one parser inside a Sequence builder and returns its
// value. A failed step aborts the whole sequence on the spot.
type Step func(Parser) any

// sequenceAbort carries a failed step's state out of the builder.
// It never escapes Sequence.
type sequenceAbort struct {
	state State
}

// Sequence lets a builder compose parsers as straight-line code. The
// builder is called once with a step function; each step runs its
// parser against the threaded state and returns the produced value.
// The moment a step fails, no further builder code runs and the
// failed state becomes the sequence's result. On the all-steps-
// succeeded path the builder's returned parser (typically Value)
// runs against the final threaded state.
func Sequence(builder func(s Step) Parser) Parser {
	return func(s State) (out State) {
		cur := s
		step := func(p Parser) any {
			next := p(cur)
			if next.Failed() {
				panic(sequenceAbort{state: next})
			}
			cur = next
			return next.Value
		}
		defer func() {
			if r := recover(); r != nil {
				abort, ok := r.(sequenceAbort)
				if !ok {
					panic(r)
				}
				out = abort.state
			}
		}()
		return builder(step)(cur)
	}
}

// FollowedBy runs parser, then the remaining parsers for effect only,
// yielding parser's value. It fails if anything in the chain fails.
func FollowedBy(parser Parser, parsers ...Parser) Parser {
	return Bind(parser, func(value any) Parser {
		rest := make([]Parser, 0, len(parsers)+1)
		rest = append(rest, parsers...)
		rest = append(rest, Value(value))
		return And(rest...)
	})
}

// SeparatedBy parses one or more parser matches separated by
// separator, yielding the []any of parser values with the separators
// discarded. At least one match is required.
func SeparatedBy(parser, separator Parser) Parser {
	return Bind(parser, func(first any) Parser {
		return Bind(ZeroOrMore(And(separator, parser)), func(rest any) Parser {
			values := append([]any{first}, rest.([]any)...)
			return Value(values)
		})
	})
}

// ZeroOrMore applies parser until it fails, yielding the []any of
// values collected before the first failure. It always succeeds and
// the failed trailing application's consumption is discarded: the
// result state reflects only the last successful application.
func ZeroOrMore(parser Parser) Parser {
	return func(s State) State {
		values := []any{}
		cur := s
		for {
			next := parser(cur)
			if next.Failed() {
				break
			}
			values = append(values, next.Value)
			cur = next
		}
		cur.Value = values
		cur.Error = nil
		return cur
	}
}

// OneOrMore is ZeroOrMore with a mandatory first match; it fails when
// the first application fails.
func OneOrMore(parser Parser) Parser {
	return Bind(parser, func(first any) Parser {
		return Bind(ZeroOrMore(parser), func(rest any) Parser {
			return Value(append([]any{first}, rest.([]any)...))
		})
	})
}
