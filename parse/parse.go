// Package parse is a parser-combinator library: recursive-descent
// parsers are built by composing small parser functions into larger
// ones. A Parser maps one immutable State to the next; failures are
// ordinary states carrying an *Error, never panics, so any enclosing
// Or, Maybe or Not can recover from them by backtracking.
package parse

// Option configures a Parse call.
type Option func(*config)

type config struct {
	fileName  string
	userState any
}

// WithFileName attaches name to every position the parse produces.
func WithFileName(name string) Option {
	return func(c *config) {
		c.fileName = name
	}
}

// WithUserState seeds the auxiliary state threaded through the parse.
func WithUserState(userState any) Option {
	return func(c *config) {
		c.userState = userState
	}
}

// Parse runs parser against input from line 1, column 1 and returns
// the produced value. On failure the returned error is the *Error
// from the final state, carrying the position of the deepest failure
// and the messages of every alternative attempted.
func Parse(parser Parser, input string, opts ...Option) (any, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	final := parser(State{
		Value:     Nothing,
		Input:     input,
		Position:  NewPosition(cfg.fileName),
		UserState: cfg.userState,
	})
	if final.Failed() {
		return nil, final.Error
	}
	return final.Value, nil
}

// MustParse is Parse but panics on failure. Intended for inputs known
// to be well-formed, such as literals in tests.
func MustParse(parser Parser, input string, opts ...Option) any {
	value, err := Parse(parser, input, opts...)
	if err != nil {
		panic(err)
	}
	return value
}
