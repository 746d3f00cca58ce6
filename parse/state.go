package parse

// NoValue is the type of the Nothing marker.
type NoValue struct{}

// Nothing marks the absence of a produced value. Value() yields it
// when called without a value, and Maybe yields it when its parser
// does not match.
var Nothing = NoValue{}

// State is one snapshot of a parse in progress. Parsers receive a
// State and return a new one; a State is never mutated in place. When
// Error is set the parser failed and Value must be ignored.
type State struct {
	Value     any
	Input     string // unconsumed suffix of the original input
	Position  Position
	UserState any
	Error     *Error
}

// Failed reports whether s is a failure state.
func (s State) Failed() bool {
	return s.Error != nil
}

// Parser is the whole contract of the library: a pure function from
// one parse state to the next. Every combinator consumes and produces
// values of this type.
type Parser func(State) State
