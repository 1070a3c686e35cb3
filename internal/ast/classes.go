package ast

import "github.com/mharuska/ocompiler/internal/diag"

// ClassNameRef is a (possibly parameterized) class-name reference, used both
// as a class declaration's own header and as a type-name in parameter/field/
// return-type position (spec §4.3 grammar: ClassName := IDENT Generic).
type ClassNameRef struct {
	Name     string
	Generic  *ClassNameRef // non-nil for Array[Integer]-style references
	position diag.Position
}

func NewClassNameRef(name string, pos diag.Position) *ClassNameRef {
	return &ClassNameRef{Name: name, position: pos}
}

func (c *ClassNameRef) Pos() diag.Position { return c.position }

// String renders "Name" or "Name[Generic]".
func (c *ClassNameRef) String() string {
	if c == nil {
		return ""
	}
	if c.Generic != nil {
		return c.Name + "[" + c.Generic.String() + "]"
	}
	return c.Name
}

// ClassDecl is a top-level class declaration (spec §3 AST node kinds).
type ClassDecl struct {
	Name    *ClassNameRef
	Base    *string // extends IDENT; nil means the default base Class
	BasePos diag.Position
	Members []Member
}

func (c *ClassDecl) Pos() diag.Position { return c.Name.Pos() }

// FieldDecl is `var IDENT : Expression` — a field with an initializer
// expression. There is no separate type annotation: the field's type is the
// static type the semantic checker infers for the initializer (see
// SPEC_FULL §9 for the scope/type annotation pass).
type FieldDecl struct {
	Name        string
	Initializer Expression
	DeclaredAt  diag.Position
	// ResolvedType is filled in by the semantic checker.
	ResolvedType Type
}

func (f *FieldDecl) Pos() diag.Position  { return f.DeclaredAt }
func (f *FieldDecl) memberNode()         {}
func (f *FieldDecl) bodyElementNode()    {}

// Parameter is a single method/constructor parameter.
type Parameter struct {
	Name       string
	Type       *ClassNameRef
	DeclaredAt diag.Position
}

func (p *Parameter) Pos() diag.Position { return p.DeclaredAt }

// MethodHeader is a method's name, parameters, and optional return type.
type MethodHeader struct {
	Name       string
	Params     []*Parameter
	ReturnType *ClassNameRef // nil means a unit (void) method
	DeclaredAt diag.Position
}

// MethodDecl is `method NAME (...) [: Type] is BODY end` or the `=> expr`
// sugar, already desugared by the parser into an equivalent Body containing
// one ReturnStatement. Body is nil for a method declared without a body.
type MethodDecl struct {
	Header *MethodHeader
	Body   *Body
}

func (m *MethodDecl) Pos() diag.Position { return m.Header.DeclaredAt }
func (m *MethodDecl) memberNode()        {}

// ConstructorDecl is `this (...) is BODY end`.
type ConstructorDecl struct {
	Params     []*Parameter
	Body       *Body
	DeclaredAt diag.Position
}

func (c *ConstructorDecl) Pos() diag.Position { return c.DeclaredAt }
func (c *ConstructorDecl) memberNode()        {}

// Body is an ordered sequence of body elements (local field declarations,
// statements, or bare expression statements).
type Body struct {
	Elements []BodyElement
}

func (b *Body) Pos() diag.Position {
	if len(b.Elements) > 0 {
		return b.Elements[0].Pos()
	}
	return diag.Position{}
}
