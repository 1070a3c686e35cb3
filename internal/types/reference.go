package types

// Reference is a named-class type symbol. Base is resolved lazily by the
// Class Hierarchy during its registration pass (spec §9 "Cyclic references
// in the hierarchy" — the declaration stores only the base *name*; the type
// symbol's Base pointer starts nil and is filled in once the hierarchy has
// looked the name up). AnyRef is the universal reference supertype: any
// Reference is assignable to the Reference whose ClassName is "AnyRef",
// whatever its base chain.
type Reference struct {
	ClassName string
	Base      *Reference
}

func (r *Reference) Name() string   { return r.ClassName }
func (r *Reference) String() string { return r.ClassName }

// SetBase resolves the reference's base type. Called once by the hierarchy
// during registration; a nil receiver or redundant call is a no-op.
func (r *Reference) SetBase(base *Reference) {
	if r == nil {
		return
	}
	r.Base = base
}

// IsAssignableTo implements spec §3: reflexive; R → R' iff R' is reachable
// by repeatedly following the base chain from R; AnyRef is the universal
// supertype among references. Containers (Array/List) are also assignable
// to AnyRef, handled in container.go.
func (r *Reference) IsAssignableTo(other Type) bool {
	o, ok := other.(*Reference)
	if !ok {
		return false
	}
	if o.ClassName == "AnyRef" {
		return true
	}
	for cur := r; cur != nil; cur = cur.Base {
		if cur.ClassName == o.ClassName {
			return true
		}
	}
	return false
}
