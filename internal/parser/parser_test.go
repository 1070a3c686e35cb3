package parser

import (
	"testing"

	"github.com/mharuska/ocompiler/internal/ast"
	"github.com/mharuska/ocompiler/internal/lexer"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	tokens, bag := lexer.Lex(src, "test.o")
	if bag.HasErrors() {
		t.Fatalf("unexpected lex errors: %v", bag.All())
	}
	prog, err := Parse(tokens, "test.o")
	if err != nil {
		t.Fatalf("unexpected syntax error: %s", err.Error())
	}
	return prog
}

func TestParseMinimalClass(t *testing.T) {
	src := `
class Main is
  this() is
    var x : Integer(10)
  end
end`
	prog := mustParse(t, src)
	if len(prog.Classes) != 1 {
		t.Fatalf("expected 1 class, got %d", len(prog.Classes))
	}
	main := prog.Classes[0]
	if main.Name.Name != "Main" {
		t.Fatalf("expected class named Main, got %s", main.Name.Name)
	}
	if main.Base != nil {
		t.Fatalf("expected implicit base (nil), got %v", *main.Base)
	}
	if len(main.Members) != 1 {
		t.Fatalf("expected 1 member, got %d", len(main.Members))
	}
	ctor, ok := main.Members[0].(*ast.ConstructorDecl)
	if !ok {
		t.Fatalf("expected a ConstructorDecl, got %T", main.Members[0])
	}
	if len(ctor.Body.Elements) != 1 {
		t.Fatalf("expected 1 body element, got %d", len(ctor.Body.Elements))
	}
	field, ok := ctor.Body.Elements[0].(*ast.FieldDecl)
	if !ok {
		t.Fatalf("expected a FieldDecl, got %T", ctor.Body.Elements[0])
	}
	call, ok := field.Initializer.(*ast.FunctionalCall)
	if !ok {
		t.Fatalf("expected field initializer to parse as a FunctionalCall (normalized later), got %T", field.Initializer)
	}
	callee, ok := call.Callee.(*ast.IdentifierExpression)
	if !ok || callee.Name != "Integer" {
		t.Fatalf("expected callee IdentifierExpression(Integer), got %#v", call.Callee)
	}
}

func TestParseExtendsAndMethod(t *testing.T) {
	src := `
class Animal is
  var sound : Boolean(true)
end

class Dog extends Animal is
  method speak(times : Integer) : Integer is
    return times
  end
end`
	prog := mustParse(t, src)
	if len(prog.Classes) != 2 {
		t.Fatalf("expected 2 classes, got %d", len(prog.Classes))
	}
	dog := prog.Classes[1]
	if dog.Base == nil || *dog.Base != "Animal" {
		t.Fatalf("expected Dog to extend Animal, got %v", dog.Base)
	}
	method, ok := dog.Members[0].(*ast.MethodDecl)
	if !ok {
		t.Fatalf("expected a MethodDecl, got %T", dog.Members[0])
	}
	if method.Header.Name != "speak" {
		t.Fatalf("expected method named speak, got %s", method.Header.Name)
	}
	if len(method.Header.Params) != 1 || method.Header.Params[0].Name != "times" {
		t.Fatalf("expected one param named times, got %v", method.Header.Params)
	}
	if method.Header.ReturnType == nil || method.Header.ReturnType.Name != "Integer" {
		t.Fatalf("expected return type Integer, got %v", method.Header.ReturnType)
	}
}

func TestParseArrowSugarDesugarsToReturn(t *testing.T) {
	src := `
class Box is
  method value() : Integer => 42
end`
	prog := mustParse(t, src)
	method := prog.Classes[0].Members[0].(*ast.MethodDecl)
	if len(method.Body.Elements) != 1 {
		t.Fatalf("expected the => sugar to desugar to a single body element")
	}
	ret, ok := method.Body.Elements[0].(*ast.ReturnStatement)
	if !ok {
		t.Fatalf("expected a ReturnStatement, got %T", method.Body.Elements[0])
	}
	lit, ok := ret.Value.(*ast.IntegerLiteral)
	if !ok || lit.Value != 42 {
		t.Fatalf("expected the return value to be IntegerLiteral(42), got %#v", ret.Value)
	}
}

func TestParseConstructorInvocationWithGeneric(t *testing.T) {
	src := `
class Main is
  this() is
    var items : Array[Integer](1, 2, 3)
  end
end`
	prog := mustParse(t, src)
	ctor := prog.Classes[0].Members[0].(*ast.ConstructorDecl)
	field := ctor.Body.Elements[0].(*ast.FieldDecl)
	invoc, ok := field.Initializer.(*ast.ConstructorInvocation)
	if !ok {
		t.Fatalf("expected a generic-suffixed call to parse directly as ConstructorInvocation, got %T", field.Initializer)
	}
	if invoc.ClassName.Name != "Array" || invoc.ClassName.Generic == nil || invoc.ClassName.Generic.Name != "Integer" {
		t.Fatalf("expected ClassName Array[Integer], got %s", invoc.ClassName.String())
	}
	if len(invoc.Args) != 3 {
		t.Fatalf("expected 3 arguments, got %d", len(invoc.Args))
	}
}

func TestParseIfWhileAndMemberAccessChain(t *testing.T) {
	src := `
class Main is
  method run(n : Integer) : Integer is
    while n loop
      if n then
        return this.value().next
      else
        return 0
      end
    end
    return n
  end
end`
	prog := mustParse(t, src)
	method := prog.Classes[0].Members[0].(*ast.MethodDecl)
	if len(method.Body.Elements) != 2 {
		t.Fatalf("expected 2 top-level body elements (while, return), got %d", len(method.Body.Elements))
	}
	_, ok := method.Body.Elements[0].(*ast.WhileLoop)
	if !ok {
		t.Fatalf("expected a WhileLoop, got %T", method.Body.Elements[0])
	}
}

func TestParseAssignment(t *testing.T) {
	src := `
class Main is
  method run() is
    x := 5
  end
end`
	prog := mustParse(t, src)
	method := prog.Classes[0].Members[0].(*ast.MethodDecl)
	assign, ok := method.Body.Elements[0].(*ast.Assignment)
	if !ok {
		t.Fatalf("expected an Assignment, got %T", method.Body.Elements[0])
	}
	if assign.Target != "x" {
		t.Fatalf("expected target x, got %s", assign.Target)
	}
}

func TestParseSyntaxErrorOnMissingEnd(t *testing.T) {
	src := `
class Main is
  this() is
    var x : Integer(10)
`
	tokens, bag := lexer.Lex(src, "test.o")
	if bag.HasErrors() {
		t.Fatalf("unexpected lex errors: %v", bag.All())
	}
	_, err := Parse(tokens, "test.o")
	if err == nil {
		t.Fatalf("expected a SyntaxError for a missing 'end', got none")
	}
}
