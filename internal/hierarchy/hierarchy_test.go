package hierarchy

import (
	"testing"

	"github.com/mharuska/ocompiler/internal/ast"
	"github.com/mharuska/ocompiler/internal/diag"
)

func mkClass(name string, base *string) *ast.ClassDecl {
	return &ast.ClassDecl{
		Name: ast.NewClassNameRef(name, diag.Position{Line: 1, Column: 1}),
		Base: base,
	}
}

func strp(s string) *string { return &s }

func TestBuiltinsRegisteredWithCorrectBases(t *testing.T) {
	h := New()

	cases := []struct{ class, base string }{
		{"AnyValue", "Class"},
		{"AnyRef", "Class"},
		{"Integer", "AnyValue"},
		{"Real", "AnyValue"},
		{"Boolean", "AnyValue"},
		{"Array", "AnyRef"},
		{"List", "AnyRef"},
	}
	for _, c := range cases {
		entry, ok := h.Resolve(c.class)
		if !ok {
			t.Fatalf("expected built-in %q to be registered", c.class)
		}
		base := h.BaseOf(entry)
		if base == nil || base.Name != c.base {
			t.Fatalf("%s: expected base %q, got %v", c.class, c.base, base)
		}
	}

	root, ok := h.Resolve("Class")
	if !ok || h.BaseOf(root) != nil {
		t.Fatalf("expected Class to be a root with no base")
	}
}

func TestRegisterDuplicateClass(t *testing.T) {
	h := New()
	bag := diag.NewBag()

	h.Register(mkClass("A", nil), bag)
	h.Register(mkClass("A", nil), bag)

	if bag.Errors() != 1 {
		t.Fatalf("expected exactly 1 DuplicateClass diagnostic, got %d: %v", bag.Errors(), bag.All())
	}
	if bag.All()[0].Kind != diag.KindDuplicateClass {
		t.Fatalf("expected DuplicateClass, got %s", bag.All()[0].Kind)
	}
}

func TestRegisterUnknownBase(t *testing.T) {
	h := New()
	bag := diag.NewBag()

	h.Register(mkClass("A", strp("Nope")), bag)
	h.ResolveBases(bag)

	if bag.Errors() != 1 || bag.All()[0].Kind != diag.KindUnknownBase {
		t.Fatalf("expected 1 UnknownBase diagnostic, got %v", bag.All())
	}
}

func TestAncestorsOfFollowsBaseChain(t *testing.T) {
	h := New()
	bag := diag.NewBag()

	h.Register(mkClass("Animal", nil), bag) // extends Class implicitly
	h.Register(mkClass("Dog", strp("Animal")), bag)
	h.ResolveBases(bag)
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.All())
	}

	dog, _ := h.Resolve("Dog")
	chain := h.AncestorsOf(dog)
	var names []string
	for _, e := range chain {
		names = append(names, e.Name)
	}
	want := []string{"Dog", "Animal", "Class"}
	if len(names) != len(want) {
		t.Fatalf("got chain %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("got chain %v, want %v", names, want)
		}
	}
}

func TestHasCycleDetection(t *testing.T) {
	h := New()
	bag := diag.NewBag()

	h.Register(mkClass("A", strp("B")), bag)
	h.Register(mkClass("B", strp("A")), bag)
	h.ResolveBases(bag)

	a, _ := h.Resolve("A")
	if !h.HasCycle(a) {
		t.Fatalf("expected a cycle between A and B to be detected")
	}

	// AncestorsOf must still terminate rather than loop forever.
	chain := h.AncestorsOf(a)
	if len(chain) == 0 {
		t.Fatalf("expected a non-empty, terminating ancestor chain")
	}
}

func TestFindFieldWalksAncestors(t *testing.T) {
	h := New()
	bag := diag.NewBag()

	base := mkClass("Animal", nil)
	base.Members = []ast.Member{
		&ast.FieldDecl{Name: "name", Initializer: nil},
	}
	h.Register(base, bag)
	h.Register(mkClass("Dog", strp("Animal")), bag)
	h.ResolveBases(bag)

	dog, _ := h.Resolve("Dog")
	field, ok := h.FindField(dog, "name")
	if !ok || field.Name != "name" {
		t.Fatalf("expected to find inherited field 'name'")
	}

	if _, ok := h.FindField(dog, "nope"); ok {
		t.Fatalf("expected FindField to report not-found for an absent field")
	}
}
