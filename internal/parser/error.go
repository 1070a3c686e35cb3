package parser

import "github.com/mharuska/ocompiler/internal/diag"

// SyntaxError is a single fatal parse failure: an unexpected token and a
// human-readable description of what was expected (spec §4.3). The parser
// does not attempt error recovery — the first SyntaxError ends the parse.
type SyntaxError struct {
	Pos      diag.Position
	Message  string
	Expected string
}

func (e *SyntaxError) Error() string { return e.Message }

// ToDiagnostic converts the SyntaxError into a diag.Diagnostic for the
// shared Bag.
func (e *SyntaxError) ToDiagnostic() *diag.Diagnostic {
	return diag.New(diag.KindSyntaxError, e.Pos, e.Message)
}
