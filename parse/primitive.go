package parse

import "unicode/utf8"

// Value returns a parser that always succeeds with v, consuming
// nothing and clearing any error on the incoming state. Pass Nothing
// to succeed without producing a value.
func Value(v any) Parser {
	return func(s State) State {
		s.Value = v
		s.Error = nil
		return s
	}
}

// Fail returns a parser that always fails at the current position.
// An empty message defaults to "parser error", an empty kind to
// KindFailure. The new error merges with any error already on the
// state, so repeated failures accumulate messages.
func Fail(message, kind string) Parser {
	if message == "" {
		message = "parser error"
	}
	return func(s State) State {
		s.Error = Merge(s.Error, NewError(s.Position, kind, message))
		return s
	}
}

// Token consumes exactly one rune and yields it as a one-rune string,
// advancing the position. On empty input it fails with kind KindEOF.
// Token and EOF are the only parsers that inspect raw input.
func Token() Parser {
	return func(s State) State {
		if s.Input == "" {
			s.Error = Merge(s.Error, NewError(s.Position, KindEOF, "unexpected eof"))
			return s
		}
		r, size := utf8.DecodeRuneInString(s.Input)
		s.Value = s.Input[:size]
		s.Input = s.Input[size:]
		s.Position = s.Position.Advance(r)
		s.Error = nil
		return s
	}
}

// EOF succeeds with true when no input remains; otherwise it fails
// with kind KindExpectation. It never consumes.
func EOF() Parser {
	return func(s State) State {
		if s.Input != "" {
			s.Error = Merge(s.Error, NewError(s.Position, KindExpectation, "expected an eof"))
			return s
		}
		s.Value = true
		s.Error = nil
		return s
	}
}

// UserState succeeds with the caller-supplied auxiliary state,
// consuming nothing.
func UserState() Parser {
	return func(s State) State {
		s.Value = s.UserState
		s.Error = nil
		return s
	}
}

// SetUserState replaces the auxiliary state with update(current) and
// succeeds with the new state value, consuming nothing.
func SetUserState(update func(any) any) Parser {
	return func(s State) State {
		s.UserState = update(s.UserState)
		s.Value = s.UserState
		s.Error = nil
		return s
	}
}
