package parser

import (
	"strconv"

	"github.com/mharuska/ocompiler/internal/ast"
	"github.com/mharuska/ocompiler/internal/lexer"
)

// parseExpression parses a Primary followed by any number of postfix member
// accesses and call arguments. "O" has no infix operators at the syntax
// level — arithmetic and comparison are ordinary method calls (spec §4.3,
// e.g. `a.Plus(b)`) — so there is no precedence climbing here, unlike the
// teacher's expression grammar.
func (p *Parser) parseExpression() ast.Expression {
	expr := p.parsePrimary()
	return p.parsePostfix(expr)
}

// parsePostfix repeatedly applies `.IDENT` (MemberAccess) and `(args)`
// (FunctionalCall) to expr until neither matches.
func (p *Parser) parsePostfix(expr ast.Expression) ast.Expression {
	for {
		switch p.cur().Type {
		case lexer.DOT:
			dotTok := p.advance()
			memberTok := p.expect(lexer.IDENT)
			expr = &ast.MemberAccess{Target: expr, Member: memberTok.Literal, DeclaredAt: dotTok.Pos}
		case lexer.LPAREN:
			callPos := p.cur().Pos
			args := p.parseArguments()
			expr = &ast.FunctionalCall{Callee: expr, Args: args, DeclaredAt: callPos}
		default:
			return expr
		}
	}
}

// parsePrimary parses a single Primary expression (spec §4.3):
//
//	IntLit | RealLit | BoolLit | 'this' | '(' Expression ')' | IDENT Generic?
//
// A bare IDENT is always built as an IdentifierExpression — the caller's
// postfix loop turns `ident(args)` into a FunctionalCall. The one exception
// is an IDENT immediately followed by an explicit `[...]` generic suffix,
// which can only be a constructor invocation of a parameterized class
// (`Array[Integer](...)`) and is parsed directly as ConstructorInvocation,
// since no identifier expression can carry a generic suffix.
func (p *Parser) parsePrimary() ast.Expression {
	tok := p.cur()
	switch tok.Type {
	case lexer.INT:
		p.advance()
		v, err := strconv.ParseInt(tok.Literal, 10, 64)
		if err != nil {
			p.fail("a valid integer literal")
		}
		return &ast.IntegerLiteral{Value: v, DeclaredAt: tok.Pos}
	case lexer.REAL:
		p.advance()
		v, err := strconv.ParseFloat(tok.Literal, 64)
		if err != nil {
			p.fail("a valid real literal")
		}
		return &ast.RealLiteral{Value: v, DeclaredAt: tok.Pos}
	case lexer.BOOL:
		p.advance()
		return &ast.BooleanLiteral{Value: tok.Literal == "true", DeclaredAt: tok.Pos}
	case lexer.THIS:
		p.advance()
		return &ast.ThisExpression{DeclaredAt: tok.Pos}
	case lexer.LPAREN:
		p.advance()
		inner := p.parseExpression()
		p.expect(lexer.RPAREN)
		return inner
	case lexer.IDENT:
		if p.peek().Type == lexer.LBRACK {
			className := p.parseClassName()
			args := p.parseArguments()
			return &ast.ConstructorInvocation{ClassName: className, Args: args, DeclaredAt: tok.Pos}
		}
		p.advance()
		return &ast.IdentifierExpression{Name: tok.Literal, DeclaredAt: tok.Pos}
	default:
		p.fail("an expression")
		return nil
	}
}

// parseArguments := '(' (Expression (',' Expression)*)? ')'
func (p *Parser) parseArguments() []ast.Expression {
	p.expect(lexer.LPAREN)
	var args []ast.Expression
	if !p.at(lexer.RPAREN) {
		args = append(args, p.parseExpression())
		for p.at(lexer.COMMA) {
			p.advance()
			args = append(args, p.parseExpression())
		}
	}
	p.expect(lexer.RPAREN)
	return args
}
