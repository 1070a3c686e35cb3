package lexer

import "testing"

func TestNextTokenBasics(t *testing.T) {
	input := `class Main is
  this() is
    var x : Integer(10)
  end
end`

	tests := []struct {
		wantType    TokenType
		wantLiteral string
	}{
		{CLASS, "class"},
		{IDENT, "Main"},
		{IS, "is"},
		{THIS, "this"},
		{LPAREN, "("},
		{RPAREN, ")"},
		{IS, "is"},
		{VAR, "var"},
		{IDENT, "x"},
		{COLON, ":"},
		{IDENT, "Integer"},
		{LPAREN, "("},
		{INT, "10"},
		{RPAREN, ")"},
		{END, "end"},
		{END, "end"},
		{EOF, ""},
	}

	l := New(input, "test.o")
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.wantType {
			t.Fatalf("token %d: type = %s, want %s", i, tok.Type, tt.wantType)
		}
		if tok.Literal != tt.wantLiteral {
			t.Fatalf("token %d: literal = %q, want %q", i, tok.Literal, tt.wantLiteral)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	l := New("10 3.14 5.", "test.o")

	intTok := l.NextToken()
	if intTok.Type != INT || intTok.Literal != "10" {
		t.Fatalf("expected INT 10, got %s %q", intTok.Type, intTok.Literal)
	}

	realTok := l.NextToken()
	if realTok.Type != REAL || realTok.Literal != "3.14" {
		t.Fatalf("expected REAL 3.14, got %s %q", realTok.Type, realTok.Literal)
	}

	// "5." must NOT consume the trailing dot: INT "5" then DOT.
	intTok2 := l.NextToken()
	if intTok2.Type != INT || intTok2.Literal != "5" {
		t.Fatalf("expected INT 5, got %s %q", intTok2.Type, intTok2.Literal)
	}
	dotTok := l.NextToken()
	if dotTok.Type != DOT {
		t.Fatalf("expected DOT after bare trailing dot, got %s", dotTok.Type)
	}
}

func TestKeywordsAndBooleans(t *testing.T) {
	l := New("true false extends", "test.o")
	if tok := l.NextToken(); tok.Type != BOOL || tok.Literal != "true" {
		t.Fatalf("expected BOOL true, got %s %q", tok.Type, tok.Literal)
	}
	if tok := l.NextToken(); tok.Type != BOOL || tok.Literal != "false" {
		t.Fatalf("expected BOOL false, got %s %q", tok.Type, tok.Literal)
	}
	if tok := l.NextToken(); tok.Type != EXTENDS {
		t.Fatalf("expected EXTENDS, got %s", tok.Type)
	}
}

func TestTwoCharOperatorsBeforeOneChar(t *testing.T) {
	l := New(":= => : .", "test.o")
	want := []TokenType{ASSIGN, ARROW, COLON, DOT, EOF}
	for i, w := range want {
		if tok := l.NextToken(); tok.Type != w {
			t.Fatalf("token %d: got %s, want %s", i, tok.Type, w)
		}
	}
}

func TestLineComment(t *testing.T) {
	l := New("var x // a trailing comment\nvar y", "test.o")
	types := []TokenType{VAR, IDENT, VAR, IDENT, EOF}
	for i, w := range types {
		if tok := l.NextToken(); tok.Type != w {
			t.Fatalf("token %d: got %s, want %s", i, tok.Type, w)
		}
	}
}

func TestIllegalCharacter(t *testing.T) {
	tokens, bag := Lex("var x % 1", "test.o")
	if tokens != nil {
		t.Fatalf("expected nil tokens on lex failure")
	}
	if !bag.HasErrors() {
		t.Fatalf("expected a LexError diagnostic")
	}
	if bag.All()[0].Kind != "LexError" {
		t.Fatalf("expected LexError kind, got %s", bag.All()[0].Kind)
	}
}

// TestPositionMonotonicity asserts spec property P1: for any two adjacent
// non-EOF tokens, the second's (line, column) is strictly greater than the
// first's in lexicographic order.
func TestPositionMonotonicity(t *testing.T) {
	input := "class A is\n  this() is end\nend"
	tokens, bag := Lex(input, "test.o")
	if bag.HasErrors() {
		t.Fatalf("unexpected lex errors: %v", bag.All())
	}

	for i := 1; i < len(tokens); i++ {
		if tokens[i].Type == EOF {
			continue
		}
		prev, cur := tokens[i-1].Pos, tokens[i].Pos
		if !prev.Less(cur) {
			t.Fatalf("positions not monotonic at %d: prev=%v cur=%v", i, prev, cur)
		}
	}
}

func TestCRLFLineHandling(t *testing.T) {
	tokens, bag := Lex("var x\r\nvar y\rvar z", "test.o")
	if bag.HasErrors() {
		t.Fatalf("unexpected errors: %v", bag.All())
	}

	var lines []int
	for _, tok := range tokens {
		if tok.Type == VAR {
			lines = append(lines, tok.Pos.Line)
		}
	}
	// "\r\n" advances the line once; a standalone "\r" does not.
	if len(lines) != 3 || lines[0] != 1 || lines[1] != 2 || lines[2] != 2 {
		t.Fatalf("unexpected line numbers for var tokens: %v", lines)
	}
}
