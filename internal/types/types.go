// Package types implements the value/reference/array/list/generic type
// symbols and the one-sided IsAssignableTo subtyping relation of spec §3/§4.4.
//
// Type symbols are value-equal by structural identity: a Primitive by kind,
// a Reference by class name, a container by kind + element's canonical
// name. A Factory interns by canonical name so repeated requests for the
// same class return the same symbol (spec §9 "Interned type symbols");
// identity is a performance optimization, equality is the semantic
// requirement the checker actually relies on.
package types

// Type is the common interface for every type symbol. It also satisfies
// ast.Type so AST nodes can hold a types.Type value without an import
// cycle.
type Type interface {
	Name() string
	String() string
	// IsAssignableTo reports whether a value of this type can be used where
	// other is expected (spec §3 "Assignable (A → B)").
	IsAssignableTo(other Type) bool
}

// PrimitiveKind enumerates the built-in value types.
type PrimitiveKind int

const (
	KindInteger PrimitiveKind = iota
	KindReal
	KindBoolean
	KindAnyValue
	// KindUnit marks the "no value" result of a method with no declared
	// return type (spec §4.6 pass 4: "a unit marker if none"). It is
	// reflexively assignable only to itself.
	KindUnit
)

func (k PrimitiveKind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindReal:
		return "Real"
	case KindBoolean:
		return "Boolean"
	case KindAnyValue:
		return "AnyValue"
	case KindUnit:
		return "Unit"
	default:
		return "UnknownPrimitive"
	}
}

// Primitive is a value type: Integer, Real, Boolean, or AnyValue, or the
// Unit marker for a method with no declared return type.
type Primitive struct {
	Kind PrimitiveKind
}

func (p *Primitive) Name() string   { return p.Kind.String() }
func (p *Primitive) String() string { return p.Kind.String() }

// IsAssignableTo implements spec §3 subtyping for primitives: reflexive,
// Integer → Real widening, and any primitive → AnyValue.
func (p *Primitive) IsAssignableTo(other Type) bool {
	o, ok := other.(*Primitive)
	if !ok {
		return false
	}
	if o.Kind == p.Kind {
		return true
	}
	if p.Kind == KindUnit || o.Kind == KindUnit {
		return false
	}
	if o.Kind == KindAnyValue {
		return true
	}
	if p.Kind == KindInteger && o.Kind == KindReal {
		return true
	}
	return false
}

// Well-known primitive singletons.
var (
	Integer  = &Primitive{Kind: KindInteger}
	Real     = &Primitive{Kind: KindReal}
	Boolean  = &Primitive{Kind: KindBoolean}
	AnyValue = &Primitive{Kind: KindAnyValue}
	Unit     = &Primitive{Kind: KindUnit}
)

// IsPrimitiveName reports whether name is one of the four built-in value
// type names.
func IsPrimitiveName(name string) bool {
	switch name {
	case "Integer", "Real", "Boolean", "AnyValue":
		return true
	default:
		return false
	}
}

// PrimitiveByName returns the singleton Primitive for a built-in value type
// name, or nil if name isn't one.
func PrimitiveByName(name string) *Primitive {
	switch name {
	case "Integer":
		return Integer
	case "Real":
		return Real
	case "Boolean":
		return Boolean
	case "AnyValue":
		return AnyValue
	default:
		return nil
	}
}
