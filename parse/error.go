package parse

import (
	"fmt"
	"strings"
)

// Error kinds. The set is open-ended: callers may pass any string to
// Fail to introduce their own classification.
const (
	KindFailure     = "failure"
	KindEOF         = "eof"
	KindExpectation = "expectation"
)

// Error is a parse failure: where it happened, what was expected, and
// a classification kind. Errors accumulate messages as alternatives
// are tried, so the final report reflects every branch attempted.
type Error struct {
	Position Position
	Messages []string
	Kind     string
}

// NewError creates an error of the given kind at pos.
func NewError(pos Position, kind string, messages ...string) *Error {
	if kind == "" {
		kind = KindFailure
	}
	return &Error{Position: pos, Messages: messages, Kind: kind}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Position, strings.Join(e.Messages, "; "))
}

// Empty reports whether e carries no messages. An empty error is
// treated as "no error" when merging.
func (e *Error) Empty() bool {
	return e == nil || len(e.Messages) == 0
}

// Merge combines two errors. An empty side loses outright. When both
// carry messages, the message sequences concatenate in attempt order
// and the later error's position and kind win, since the later error
// is the deeper, more specific failure.
func Merge(earlier, later *Error) *Error {
	if earlier.Empty() {
		return later
	}
	if later.Empty() {
		return earlier
	}
	messages := make([]string, 0, len(earlier.Messages)+len(later.Messages))
	messages = append(messages, earlier.Messages...)
	messages = append(messages, later.Messages...)
	return &Error{Position: later.Position, Messages: messages, Kind: later.Kind}
}
