package semantic

import (
	"testing"

	"github.com/mharuska/ocompiler/internal/diag"
	"github.com/mharuska/ocompiler/internal/lexer"
	"github.com/mharuska/ocompiler/internal/parser"
)

func analyzeSource(t *testing.T, src string) *diag.Bag {
	t.Helper()
	tokens, lexBag := lexer.Lex(src, "t.o")
	if lexBag.HasErrors() {
		t.Fatalf("unexpected lex errors: %v", lexBag.All())
	}
	prog, err := parser.Parse(tokens, "t.o")
	if err != nil {
		t.Fatalf("unexpected syntax error: %s", err.Error())
	}
	_, bag := Analyze(prog)
	return bag
}

func TestAnalyzeWellFormedClassHasNoDiagnostics(t *testing.T) {
	src := `
class Animal is
  var sound : Boolean(true)

  method speak() : Boolean is
    return sound
  end
end

class Dog extends Animal is
  this() is
  end
end`
	bag := analyzeSource(t, src)
	if bag.HasErrors() {
		t.Fatalf("expected no errors, got: %v", bag.All())
	}
}

func TestDuplicateClassDiagnosed(t *testing.T) {
	bag := analyzeSource(t, `
class A is
end

class A is
end`)
	if bag.Errors() != 1 || bag.All()[0].Kind != diag.KindDuplicateClass {
		t.Fatalf("expected 1 DuplicateClass, got %v", bag.All())
	}
}

func TestUnknownBaseDiagnosed(t *testing.T) {
	bag := analyzeSource(t, `
class A extends Nope is
end`)
	found := false
	for _, d := range bag.All() {
		if d.Kind == diag.KindUnknownBase {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an UnknownBase diagnostic, got %v", bag.All())
	}
}

func TestCyclicInheritanceDiagnosed(t *testing.T) {
	bag := analyzeSource(t, `
class A extends B is
end

class B extends A is
end`)
	found := false
	for _, d := range bag.All() {
		if d.Kind == diag.KindCyclicInheritance {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a CyclicInheritance diagnostic, got %v", bag.All())
	}
}

func TestDuplicateFieldDiagnosed(t *testing.T) {
	bag := analyzeSource(t, `
class A is
  var x : Integer(1)
  var x : Integer(2)
end`)
	found := false
	for _, d := range bag.All() {
		if d.Kind == diag.KindDuplicateField {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a DuplicateField diagnostic, got %v", bag.All())
	}
}

func TestUnknownIdentifierDiagnosed(t *testing.T) {
	bag := analyzeSource(t, `
class A is
  method run() : Integer is
    return nope
  end
end`)
	found := false
	for _, d := range bag.All() {
		if d.Kind == diag.KindUnknownIdentifier {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an UnknownIdentifier diagnostic, got %v", bag.All())
	}
}

func TestMissingReturnDiagnosed(t *testing.T) {
	bag := analyzeSource(t, `
class A is
  method run() : Integer is
    var x : Integer(1)
  end
end`)
	found := false
	for _, d := range bag.All() {
		if d.Kind == diag.KindMissingReturn {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a MissingReturn diagnostic, got %v", bag.All())
	}
}

func TestUnexpectedReturnValueDiagnosed(t *testing.T) {
	bag := analyzeSource(t, `
class A is
  method run() is
    return 1
  end
end`)
	found := false
	for _, d := range bag.All() {
		if d.Kind == diag.KindUnexpectedReturnValue {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an UnexpectedReturnValue diagnostic, got %v", bag.All())
	}
}

func TestTypeMismatchOnAssignment(t *testing.T) {
	bag := analyzeSource(t, `
class A is
  var flag : Boolean(true)

  method run() is
    flag := 1
  end
end`)
	found := false
	for _, d := range bag.All() {
		if d.Kind == diag.KindTypeMismatch {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a TypeMismatch diagnostic, got %v", bag.All())
	}
}

func TestIntrinsicArithmeticResolvesWithoutDiagnostics(t *testing.T) {
	bag := analyzeSource(t, `
class A is
  method add(a : Integer, b : Integer) : Integer is
    return a.Plus(b)
  end
end`)
	if bag.HasErrors() {
		t.Fatalf("expected intrinsic Plus to resolve cleanly, got: %v", bag.All())
	}
}

func TestConstructorCallNormalizedAndResolved(t *testing.T) {
	bag := analyzeSource(t, `
class Box is
  this(n : Integer) is
  end
end

class Main is
  this() is
    var b : Box(10)
  end
end`)
	if bag.HasErrors() {
		t.Fatalf("expected bare-identifier ctor call to normalize cleanly, got: %v", bag.All())
	}
}
