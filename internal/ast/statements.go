package ast

import "github.com/mharuska/ocompiler/internal/diag"

// Assignment is `IDENT := Expression`.
type Assignment struct {
	Target     string
	Value      Expression
	DeclaredAt diag.Position
}

func (a *Assignment) Pos() diag.Position { return a.DeclaredAt }
func (a *Assignment) statementNode()     {}
func (a *Assignment) bodyElementNode()   {}

// WhileLoop is `while Expression loop Body end`.
type WhileLoop struct {
	Condition  Expression
	Body       *Body
	DeclaredAt diag.Position
}

func (w *WhileLoop) Pos() diag.Position { return w.DeclaredAt }
func (w *WhileLoop) statementNode()     {}
func (w *WhileLoop) bodyElementNode()   {}

// IfStatement is `if Expression then Body (else Body)? end`.
type IfStatement struct {
	Condition  Expression
	Then       *Body
	Else       *Body // nil when no else-branch
	DeclaredAt diag.Position
}

func (i *IfStatement) Pos() diag.Position { return i.DeclaredAt }
func (i *IfStatement) statementNode()     {}
func (i *IfStatement) bodyElementNode()   {}

// ReturnStatement is `return Expression?`.
type ReturnStatement struct {
	Value      Expression // nil for a bare `return`
	DeclaredAt diag.Position
}

func (r *ReturnStatement) Pos() diag.Position { return r.DeclaredAt }
func (r *ReturnStatement) statementNode()     {}
func (r *ReturnStatement) bodyElementNode()   {}

// ExprStatement is a bare expression used for effect inside a Body.
type ExprStatement struct {
	Expr Expression
}

func (e *ExprStatement) Pos() diag.Position { return e.Expr.Pos() }
func (e *ExprStatement) bodyElementNode()   {}
