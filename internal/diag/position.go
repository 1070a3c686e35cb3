// Package diag carries source positions and accumulates compiler diagnostics.
//
// Every phase of the pipeline (lexer, parser, semantic checker) pushes into
// a shared Bag rather than aborting on its own; callers decide whether a
// given phase's errors are fatal.
package diag

import "fmt"

// Position is an immutable line/column coordinate, 1-based, carried by every
// token and AST node for diagnostic anchoring.
type Position struct {
	Line   int
	Column int
	File   string
}

// String renders the position as "file:line:col".
func (p Position) String() string {
	if p.File == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Column)
	}
	return fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
}

// Less reports whether p sorts strictly before other in (line, column)
// lexicographic order, ignoring File. Used by tests asserting token/position
// monotonicity (spec property P1).
func (p Position) Less(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}
