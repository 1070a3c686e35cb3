// Package normalize implements call normalization (spec §4.7): a
// FunctionalCall whose callee is a bare IdentifierExpression naming a
// registered class is rewritten to a ConstructorInvocation of that class
// with the same arguments.
//
// The parser cannot tell `Foo(1, 2)` apart from a constructor call at parse
// time without a symbol table, so every bare-identifier call is first built
// as a FunctionalCall (see internal/parser) and rewritten here once the
// class hierarchy is known. The semantic checker runs this pass once, right
// after class registration and before scope/type annotation; the optimizer
// re-runs the exact same pass as one of its own transformations so that
// Optimize is idempotent even on input that skipped the semantic checker.
package normalize

import (
	"github.com/mharuska/ocompiler/internal/ast"
	"github.com/mharuska/ocompiler/internal/hierarchy"
)

// Calls rewrites every FunctionalCall(IdentifierExpression) in prog whose
// callee names a class registered in h into an equivalent
// ConstructorInvocation, recursively through every class body. It reports
// whether any rewrite was made.
func Calls(prog *ast.Program, h *hierarchy.Hierarchy) bool {
	changed := false
	for _, class := range prog.Classes {
		for _, m := range class.Members {
			switch member := m.(type) {
			case *ast.FieldDecl:
				member.Initializer = rewriteExpr(member.Initializer, h, &changed)
			case *ast.MethodDecl:
				rewriteBody(member.Body, h, &changed)
			case *ast.ConstructorDecl:
				rewriteBody(member.Body, h, &changed)
			}
		}
	}
	return changed
}

func rewriteBody(body *ast.Body, h *hierarchy.Hierarchy, changed *bool) {
	if body == nil {
		return
	}
	for i, elem := range body.Elements {
		body.Elements[i] = rewriteBodyElement(elem, h, changed)
	}
}

func rewriteBodyElement(elem ast.BodyElement, h *hierarchy.Hierarchy, changed *bool) ast.BodyElement {
	switch e := elem.(type) {
	case *ast.FieldDecl:
		e.Initializer = rewriteExpr(e.Initializer, h, changed)
		return e
	case *ast.Assignment:
		e.Value = rewriteExpr(e.Value, h, changed)
		return e
	case *ast.WhileLoop:
		e.Condition = rewriteExpr(e.Condition, h, changed)
		rewriteBody(e.Body, h, changed)
		return e
	case *ast.IfStatement:
		e.Condition = rewriteExpr(e.Condition, h, changed)
		rewriteBody(e.Then, h, changed)
		rewriteBody(e.Else, h, changed)
		return e
	case *ast.ReturnStatement:
		if e.Value != nil {
			e.Value = rewriteExpr(e.Value, h, changed)
		}
		return e
	case *ast.ExprStatement:
		e.Expr = rewriteExpr(e.Expr, h, changed)
		return e
	default:
		return elem
	}
}

func rewriteExpr(expr ast.Expression, h *hierarchy.Hierarchy, changed *bool) ast.Expression {
	if expr == nil {
		return nil
	}
	switch e := expr.(type) {
	case *ast.MemberAccess:
		e.Target = rewriteExpr(e.Target, h, changed)
		return e
	case *ast.ConstructorInvocation:
		for i, a := range e.Args {
			e.Args[i] = rewriteExpr(a, h, changed)
		}
		return e
	case *ast.FunctionalCall:
		e.Callee = rewriteExpr(e.Callee, h, changed)
		for i, a := range e.Args {
			e.Args[i] = rewriteExpr(a, h, changed)
		}
		if ident, ok := e.Callee.(*ast.IdentifierExpression); ok {
			if _, ok := h.Resolve(ident.Name); ok {
				*changed = true
				return &ast.ConstructorInvocation{
					ClassName:  ast.NewClassNameRef(ident.Name, ident.DeclaredAt),
					Args:       e.Args,
					DeclaredAt: e.DeclaredAt,
				}
			}
		}
		return e
	default:
		return expr
	}
}
