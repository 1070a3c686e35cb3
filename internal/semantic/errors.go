package semantic

import "github.com/mharuska/ocompiler/internal/diag"

// One constructor per diagnostic kind the checker can emit (spec §7),
// mirroring the teacher's New<Kind>Error convention so call sites in
// analyzer.go read as a flat list of "what went wrong", not ad hoc
// diag.New(...) calls scattered through the passes.

func NewDuplicateClass(pos diag.Position, name string) *diag.Diagnostic {
	return diag.New(diag.KindDuplicateClass, pos, "class '"+name+"' is already declared")
}

func NewUnknownBase(pos diag.Position, name string) *diag.Diagnostic {
	return diag.New(diag.KindUnknownBase, pos, "unknown base class '"+name+"'")
}

func NewCyclicInheritance(pos diag.Position, name string) *diag.Diagnostic {
	return diag.New(diag.KindCyclicInheritance, pos, "class '"+name+"' participates in a cyclic inheritance chain")
}

func NewDuplicateField(pos diag.Position, class, field string) *diag.Diagnostic {
	return diag.New(diag.KindDuplicateField, pos, "field '"+field+"' is already declared in class '"+class+"'")
}

func NewDuplicateMethod(pos diag.Position, class, method string) *diag.Diagnostic {
	return diag.New(diag.KindDuplicateMethod, pos, "method '"+method+"' with this signature is already declared in class '"+class+"'")
}

func NewDuplicateConstructor(pos diag.Position, class string) *diag.Diagnostic {
	return diag.New(diag.KindDuplicateConstructor, pos, "a constructor with this parameter list is already declared in class '"+class+"'")
}

func NewUnknownType(pos diag.Position, name string) *diag.Diagnostic {
	return diag.New(diag.KindUnknownType, pos, "unknown type '"+name+"'")
}

func NewUnknownIdentifier(pos diag.Position, name string) *diag.Diagnostic {
	return diag.New(diag.KindUnknownIdentifier, pos, "unknown identifier '"+name+"'")
}

func NewUnknownMember(pos diag.Position, receiver, name string) *diag.Diagnostic {
	return diag.New(diag.KindUnknownMember, pos, "'"+receiver+"' has no member '"+name+"'")
}

func NewAmbiguousCall(pos diag.Position, name string) *diag.Diagnostic {
	return diag.New(diag.KindAmbiguousCall, pos, "call to '"+name+"' is ambiguous among equally good overloads")
}

func NewTypeMismatch(pos diag.Position, from, to string) *diag.Diagnostic {
	return diag.New(diag.KindTypeMismatch, pos, "value of type '"+from+"' is not assignable to '"+to+"'")
}

func NewMissingReturn(pos diag.Position, method string) *diag.Diagnostic {
	return diag.New(diag.KindMissingReturn, pos, "method '"+method+"' does not return a value on every path")
}

func NewUnexpectedReturnValue(pos diag.Position, method string) *diag.Diagnostic {
	return diag.New(diag.KindUnexpectedReturnValue, pos, "method '"+method+"' has no declared return type but returns a value")
}

func NewInternalError(pos diag.Position, message string) *diag.Diagnostic {
	return diag.New(diag.KindInternalError, pos, "internal error: "+message)
}
