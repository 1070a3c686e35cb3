package types

import "testing"

func TestPrimitiveSubtyping(t *testing.T) {
	tests := []struct {
		name string
		from Type
		to   Type
		want bool
	}{
		{"reflexive integer", Integer, Integer, true},
		{"integer widens to real", Integer, Real, true},
		{"real does not narrow to integer", Real, Integer, false},
		{"integer to any value", Integer, AnyValue, true},
		{"boolean to any value", Boolean, AnyValue, true},
		{"any value to integer is not allowed", AnyValue, Integer, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.from.IsAssignableTo(tt.to); got != tt.want {
				t.Errorf("%s.IsAssignableTo(%s) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
		})
	}
}

func TestReferenceSubtyping(t *testing.T) {
	f := NewFactory()
	class := f.Reference("Class")
	anyRef := f.Reference("AnyRef")
	base := f.Reference("Animal")
	base.SetBase(class)
	derived := f.Reference("Dog")
	derived.SetBase(base)
	unrelated := f.Reference("Cat")
	unrelated.SetBase(base)

	if !derived.IsAssignableTo(base) {
		t.Errorf("Dog should be assignable to Animal")
	}
	if !derived.IsAssignableTo(derived) {
		t.Errorf("Dog should be assignable to itself (reflexive)")
	}
	if derived.IsAssignableTo(unrelated) {
		t.Errorf("Dog should not be assignable to unrelated sibling Cat")
	}
	if !derived.IsAssignableTo(anyRef) {
		t.Errorf("Dog should be assignable to AnyRef")
	}
}

func TestContainerCovariance(t *testing.T) {
	f := NewFactory()
	class := f.Reference("Class")
	anyRef := f.Reference("AnyRef")
	base := f.Reference("Animal")
	base.SetBase(class)
	derived := f.Reference("Dog")
	derived.SetBase(base)

	arrDog := f.Array(derived)
	arrAnimal := f.Array(base)
	listDog := f.List(derived)

	if !arrDog.IsAssignableTo(arrAnimal) {
		t.Errorf("Array[Dog] should be assignable to Array[Animal] (covariant)")
	}
	if arrAnimal.IsAssignableTo(arrDog) {
		t.Errorf("Array[Animal] should NOT be assignable to Array[Dog]")
	}
	if arrDog.IsAssignableTo(listDog) {
		t.Errorf("Array[Dog] should not be assignable to a List, even with compatible element")
	}
	if !arrDog.IsAssignableTo(anyRef) {
		t.Errorf("Array[Dog] should be assignable to AnyRef")
	}
}

func TestFactoryInterning(t *testing.T) {
	f := NewFactory()
	a1 := f.Reference("Foo")
	a2 := f.Reference("Foo")
	if a1 != a2 {
		t.Errorf("expected repeated Reference() calls to return the same interned symbol")
	}

	arr1 := f.Array(Integer)
	arr2 := f.Array(Integer)
	if arr1 != arr2 {
		t.Errorf("expected repeated Array() calls to return the same interned symbol")
	}
}

// TestSubtypingTransitivity checks spec property P4 along a three-level
// chain.
func TestSubtypingTransitivity(t *testing.T) {
	f := NewFactory()
	a := f.Reference("A")
	b := f.Reference("B")
	b.SetBase(a)
	c := f.Reference("C")
	c.SetBase(b)

	if !(c.IsAssignableTo(b) && b.IsAssignableTo(a) && c.IsAssignableTo(a)) {
		t.Errorf("expected transitive assignability C -> B -> A to imply C -> A")
	}
}
