// Package parser implements a hand-written, single-token-lookahead
// recursive-descent parser for "O" (spec §4.3). The grammar is LALR(1) in
// shape — every production is resolvable with one token of lookahead — so a
// plain recursive-descent parser, in the teacher's own manner, is the
// idiomatic Go implementation rather than a generated shift-reduce table.
// "O" has no infix operators, so there is no Pratt/precedence layer.
package parser

import (
	"fmt"

	"github.com/mharuska/ocompiler/internal/ast"
	"github.com/mharuska/ocompiler/internal/lexer"
)

// Parser consumes a pre-lexed token slice and builds an AST. It panics
// internally on the first SyntaxError and recovers in Parse, mirroring the
// teacher's own fail-fast (no error-recovery) parsing style.
type Parser struct {
	tokens []lexer.Token
	pos    int
	file   string
}

// Parse runs the parser over tokens (as produced by lexer.Lex) and returns
// the Program, or nil and a SyntaxError on the first unexpected token.
func Parse(tokens []lexer.Token, file string) (prog *ast.Program, err *SyntaxError) {
	p := &Parser{tokens: tokens, file: file}

	defer func() {
		if r := recover(); r != nil {
			if se, ok := r.(*SyntaxError); ok {
				prog, err = nil, se
				return
			}
			panic(r)
		}
	}()

	return p.parseProgram(), nil
}

func (p *Parser) cur() lexer.Token {
	if p.pos >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1] // EOF
	}
	return p.tokens[p.pos]
}

func (p *Parser) peek() lexer.Token {
	if p.pos+1 >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+1]
}

func (p *Parser) advance() lexer.Token {
	tok := p.cur()
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	return tok
}

func (p *Parser) at(tt lexer.TokenType) bool { return p.cur().Type == tt }

// expect consumes the current token if it matches tt, otherwise fails the
// parse with a SyntaxError carrying the offending token's position.
func (p *Parser) expect(tt lexer.TokenType) lexer.Token {
	if p.cur().Type != tt {
		p.fail(tt.String())
	}
	return p.advance()
}

func (p *Parser) fail(expected string) {
	tok := p.cur()
	panic(&SyntaxError{
		Pos:      tok.Pos,
		Expected: expected,
		Message:  fmt.Sprintf("unexpected token %q (%s); expected %s", tok.Literal, tok.Type, expected),
	})
}

// parseProgram := ClassDecl+ EOF
func (p *Parser) parseProgram() *ast.Program {
	prog := &ast.Program{}
	for !p.at(lexer.EOF) {
		prog.Classes = append(prog.Classes, p.parseClassDecl())
	}
	return prog
}

// parseClassDecl := 'class' ClassName Extension 'is' ClassBody 'end'
func (p *Parser) parseClassDecl() *ast.ClassDecl {
	p.expect(lexer.CLASS)
	name := p.parseClassName()

	decl := &ast.ClassDecl{Name: name}

	if p.at(lexer.EXTENDS) {
		p.advance()
		baseTok := p.expect(lexer.IDENT)
		base := baseTok.Literal
		decl.Base = &base
		decl.BasePos = baseTok.Pos
	}

	p.expect(lexer.IS)
	decl.Members = p.parseClassBody()
	p.expect(lexer.END)

	return decl
}

// parseClassName := IDENT Generic ; Generic := ε | '[' ClassName ']'
func (p *Parser) parseClassName() *ast.ClassNameRef {
	tok := p.expect(lexer.IDENT)
	ref := ast.NewClassNameRef(tok.Literal, tok.Pos)
	if p.at(lexer.LBRACK) {
		p.advance()
		ref.Generic = p.parseClassName()
		p.expect(lexer.RBRACK)
	}
	return ref
}

// parseClassBody := Member+
func (p *Parser) parseClassBody() []ast.Member {
	var members []ast.Member
	for !p.at(lexer.END) {
		members = append(members, p.parseMember())
	}
	return members
}

// parseMember := FieldDecl | MethodDecl | CtorDecl
func (p *Parser) parseMember() ast.Member {
	switch p.cur().Type {
	case lexer.VAR:
		return p.parseFieldDecl()
	case lexer.METHOD:
		return p.parseMethodDecl()
	case lexer.THIS:
		return p.parseConstructorDecl()
	default:
		p.fail("'var', 'method', or 'this'")
		return nil
	}
}

// parseFieldDecl := 'var' IDENT ':' Expression
func (p *Parser) parseFieldDecl() *ast.FieldDecl {
	startTok := p.expect(lexer.VAR)
	nameTok := p.expect(lexer.IDENT)
	p.expect(lexer.COLON)
	init := p.parseExpression()
	return &ast.FieldDecl{Name: nameTok.Literal, Initializer: init, DeclaredAt: startTok.Pos}
}

// parseMethodDecl := 'method' IDENT OptParams OptReturnType OptMethodBody
func (p *Parser) parseMethodDecl() *ast.MethodDecl {
	startTok := p.expect(lexer.METHOD)
	nameTok := p.expect(lexer.IDENT)

	header := &ast.MethodHeader{Name: nameTok.Literal, DeclaredAt: startTok.Pos}
	if p.at(lexer.LPAREN) {
		header.Params = p.parseParams()
	}
	if p.at(lexer.COLON) {
		p.advance()
		header.ReturnType = p.parseClassName()
	}

	var body *ast.Body
	switch p.cur().Type {
	case lexer.IS:
		p.advance()
		body = p.parseBody()
		p.expect(lexer.END)
	case lexer.ARROW:
		// `=> expr` is sugar for `is return expr end` (spec §4.3).
		arrowPos := p.advance().Pos
		expr := p.parseExpression()
		body = &ast.Body{Elements: []ast.BodyElement{
			&ast.ReturnStatement{Value: expr, DeclaredAt: arrowPos},
		}}
	default:
		// OptMethodBody's empty alternative: a header not followed by 'is'
		// or '=>' declares a method with no body, and Body stays nil.
	}

	return &ast.MethodDecl{Header: header, Body: body}
}

// parseConstructorDecl := 'this' OptParams 'is' Body 'end'
func (p *Parser) parseConstructorDecl() *ast.ConstructorDecl {
	startTok := p.expect(lexer.THIS)
	var params []*ast.Parameter
	if p.at(lexer.LPAREN) {
		params = p.parseParams()
	}
	p.expect(lexer.IS)
	body := p.parseBody()
	p.expect(lexer.END)
	return &ast.ConstructorDecl{Params: params, Body: body, DeclaredAt: startTok.Pos}
}

// parseParams := '(' Params ')' ; Params := Param (',' Param)*
func (p *Parser) parseParams() []*ast.Parameter {
	p.expect(lexer.LPAREN)
	var params []*ast.Parameter
	if !p.at(lexer.RPAREN) {
		params = append(params, p.parseParam())
		for p.at(lexer.COMMA) {
			p.advance()
			params = append(params, p.parseParam())
		}
	}
	p.expect(lexer.RPAREN)
	return params
}

// parseParam := IDENT ':' ClassName
func (p *Parser) parseParam() *ast.Parameter {
	nameTok := p.expect(lexer.IDENT)
	p.expect(lexer.COLON)
	typeRef := p.parseClassName()
	return &ast.Parameter{Name: nameTok.Literal, Type: typeRef, DeclaredAt: nameTok.Pos}
}

// atBodyEnd returns true when the current token ends a Body (its
// enclosing construct's terminator, or an 'else' starting an else-branch).
func (p *Parser) atBodyEnd() bool {
	switch p.cur().Type {
	case lexer.END, lexer.ELSE, lexer.EOF:
		return true
	default:
		return false
	}
}

// parseBody := BodyElem*
func (p *Parser) parseBody() *ast.Body {
	body := &ast.Body{}
	for !p.atBodyEnd() {
		body.Elements = append(body.Elements, p.parseBodyElem())
	}
	return body
}

// parseBodyElem := FieldDecl | Statement | Expression
func (p *Parser) parseBodyElem() ast.BodyElement {
	switch p.cur().Type {
	case lexer.VAR:
		return p.parseFieldDecl()
	case lexer.IDENT:
		if p.peek().Type == lexer.ASSIGN {
			return p.parseAssignment()
		}
		return p.parseExprStatement()
	case lexer.WHILE:
		return p.parseWhile()
	case lexer.IF:
		return p.parseIf()
	case lexer.RETURN:
		return p.parseReturn()
	default:
		return p.parseExprStatement()
	}
}

func (p *Parser) parseExprStatement() *ast.ExprStatement {
	expr := p.parseExpression()
	return &ast.ExprStatement{Expr: expr}
}

// parseAssignment := IDENT ':=' Expression
func (p *Parser) parseAssignment() *ast.Assignment {
	nameTok := p.expect(lexer.IDENT)
	p.expect(lexer.ASSIGN)
	value := p.parseExpression()
	return &ast.Assignment{Target: nameTok.Literal, Value: value, DeclaredAt: nameTok.Pos}
}

// parseWhile := 'while' Expression 'loop' Body 'end'
func (p *Parser) parseWhile() *ast.WhileLoop {
	startTok := p.expect(lexer.WHILE)
	cond := p.parseExpression()
	p.expect(lexer.LOOP)
	body := p.parseBody()
	p.expect(lexer.END)
	return &ast.WhileLoop{Condition: cond, Body: body, DeclaredAt: startTok.Pos}
}

// parseIf := 'if' Expression 'then' Body ('else' Body)? 'end'
func (p *Parser) parseIf() *ast.IfStatement {
	startTok := p.expect(lexer.IF)
	cond := p.parseExpression()
	p.expect(lexer.THEN)
	thenBody := p.parseBody()

	stmt := &ast.IfStatement{Condition: cond, Then: thenBody, DeclaredAt: startTok.Pos}
	if p.at(lexer.ELSE) {
		p.advance()
		stmt.Else = p.parseBody()
	}
	p.expect(lexer.END)
	return stmt
}

// parseReturn := 'return' Expression?
func (p *Parser) parseReturn() *ast.ReturnStatement {
	startTok := p.expect(lexer.RETURN)
	stmt := &ast.ReturnStatement{DeclaredAt: startTok.Pos}
	if !p.atBodyEnd() {
		stmt.Value = p.parseExpression()
	}
	return stmt
}
