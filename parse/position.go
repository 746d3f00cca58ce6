package parse

import "fmt"

// Position represents a location in parser input.
// Line and Column are 1-based; Name is the optional source name
// (usually a file name) attached by the entry point.
type Position struct {
	Name   string
	Line   int
	Column int
}

// NewPosition returns the starting position (line 1, column 1) for
// input identified by name.
func NewPosition(name string) Position {
	return Position{Name: name, Line: 1, Column: 1}
}

// Advance returns the position after consuming r. A newline moves to
// the start of the next line; anything else moves one column right.
func (p Position) Advance(r rune) Position {
	if r == '\n' {
		return Position{Name: p.Name, Line: p.Line + 1, Column: 1}
	}
	return Position{Name: p.Name, Line: p.Line, Column: p.Column + 1}
}

func (p Position) String() string {
	if p.Name != "" {
		return fmt.Sprintf("%s:%d:%d", p.Name, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
