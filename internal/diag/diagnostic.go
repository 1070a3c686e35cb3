package diag

import "fmt"

// Severity classifies a Diagnostic as blocking or informational.
type Severity int

const (
	SeverityError Severity = iota
	SeverityWarning
)

func (s Severity) String() string {
	if s == SeverityWarning {
		return "WARN"
	}
	return "ERR"
}

// Kind is the canonical error taxonomy from the language specification §7.
// It is a string-backed type (mirrors the teacher's SemanticErrorType) so
// that the wire format in FormatAll can print it verbatim.
type Kind string

const (
	KindLexError              Kind = "LexError"
	KindSyntaxError           Kind = "SyntaxError"
	KindDuplicateClass        Kind = "DuplicateClass"
	KindUnknownBase           Kind = "UnknownBase"
	KindCyclicInheritance     Kind = "CyclicInheritance"
	KindDuplicateField        Kind = "DuplicateField"
	KindDuplicateMethod       Kind = "DuplicateMethod"
	KindDuplicateConstructor  Kind = "DuplicateConstructor"
	KindUnknownType           Kind = "UnknownType"
	KindUnknownIdentifier     Kind = "UnknownIdentifier"
	KindUnknownMember         Kind = "UnknownMember"
	KindAmbiguousCall         Kind = "AmbiguousCall"
	KindTypeMismatch          Kind = "TypeMismatch"
	KindMissingReturn         Kind = "MissingReturn"
	KindUnexpectedReturnValue Kind = "UnexpectedReturnValue"
	KindInternalError         Kind = "InternalError"
)

// Diagnostic is a single compiler finding: severity, taxonomy kind, message,
// and the position(s) it is anchored to.
type Diagnostic struct {
	Severity  Severity
	Kind      Kind
	Message   string
	Pos       Position
	Secondary []Position
}

// String renders the diagnostics wire format from spec §6:
//
//	**[ ERR ] <kind> at <file>:<line>:<col>: <message>
func (d *Diagnostic) String() string {
	return fmt.Sprintf("**[ %s ] %s at %s: %s", d.Severity, d.Kind, d.Pos, d.Message)
}

// New builds an error-severity diagnostic.
func New(kind Kind, pos Position, message string) *Diagnostic {
	return &Diagnostic{Severity: SeverityError, Kind: kind, Message: message, Pos: pos}
}

// NewWarning builds a warning-severity diagnostic.
func NewWarning(kind Kind, pos Position, message string) *Diagnostic {
	return &Diagnostic{Severity: SeverityWarning, Kind: kind, Message: message, Pos: pos}
}
