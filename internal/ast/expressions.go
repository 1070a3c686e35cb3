package ast

import "github.com/mharuska/ocompiler/internal/diag"

// typedExpr is embedded by every expression node to carry the type the
// semantic checker annotates it with (spec §4.8 back-end interface).
type typedExpr struct {
	resolved Type
}

func (t *typedExpr) ResolvedType() Type      { return t.resolved }
func (t *typedExpr) SetResolvedType(ty Type) { t.resolved = ty }

// IntegerLiteral is an integer literal expression.
type IntegerLiteral struct {
	typedExpr
	Value      int64
	DeclaredAt diag.Position
}

func (l *IntegerLiteral) Pos() diag.Position { return l.DeclaredAt }
func (l *IntegerLiteral) expressionNode()    {}

// RealLiteral is a floating-point literal expression.
type RealLiteral struct {
	typedExpr
	Value      float64
	DeclaredAt diag.Position
}

func (l *RealLiteral) Pos() diag.Position { return l.DeclaredAt }
func (l *RealLiteral) expressionNode()    {}

// BooleanLiteral is a `true`/`false` literal expression.
type BooleanLiteral struct {
	typedExpr
	Value      bool
	DeclaredAt diag.Position
}

func (l *BooleanLiteral) Pos() diag.Position { return l.DeclaredAt }
func (l *BooleanLiteral) expressionNode()    {}

// ThisExpression is the `this` receiver reference.
type ThisExpression struct {
	typedExpr
	DeclaredAt diag.Position
}

func (t *ThisExpression) Pos() diag.Position { return t.DeclaredAt }
func (t *ThisExpression) expressionNode()    {}

// IdentifierExpression references a local, parameter, field, or class name.
type IdentifierExpression struct {
	typedExpr
	Name       string
	DeclaredAt diag.Position
}

func (i *IdentifierExpression) Pos() diag.Position { return i.DeclaredAt }
func (i *IdentifierExpression) expressionNode()    {}

// MemberAccess is `Expression . IDENT`.
type MemberAccess struct {
	typedExpr
	Target     Expression
	Member     string
	DeclaredAt diag.Position
}

func (m *MemberAccess) Pos() diag.Position { return m.DeclaredAt }
func (m *MemberAccess) expressionNode()    {}

// ConstructorInvocation is `ClassName(args...)`.
type ConstructorInvocation struct {
	typedExpr
	ClassName  *ClassNameRef
	Args       []Expression
	DeclaredAt diag.Position
	// ResolvedCtor is filled in by the semantic checker: the selected
	// constructor declaration (nil for a built-in primitive).
	ResolvedCtor *ConstructorDecl
}

func (c *ConstructorInvocation) Pos() diag.Position { return c.DeclaredAt }
func (c *ConstructorInvocation) expressionNode()    {}

// FunctionalCall is `callee(args...)` where callee is either a bare
// IdentifierExpression or a MemberAccess (spec §4.3).
type FunctionalCall struct {
	typedExpr
	Callee     Expression
	Args       []Expression
	DeclaredAt diag.Position
	// ResolvedMethod is filled in by the semantic checker.
	ResolvedMethod *MethodDecl
}

func (f *FunctionalCall) Pos() diag.Position { return f.DeclaredAt }
func (f *FunctionalCall) expressionNode()    {}
