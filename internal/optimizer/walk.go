package optimizer

import "github.com/mharuska/ocompiler/internal/ast"

// walkExpr applies visit to expr and every sub-expression, children first
// (post-order), so a fold of an inner call is visible to the fold of its
// enclosing call. visit may return expr unchanged or a replacement node;
// whichever it returns becomes the new value at that position.
func walkExpr(expr ast.Expression, visit func(ast.Expression) ast.Expression) ast.Expression {
	if expr == nil {
		return nil
	}

	switch e := expr.(type) {
	case *ast.MemberAccess:
		e.Target = walkExpr(e.Target, visit)
	case *ast.ConstructorInvocation:
		for i, a := range e.Args {
			e.Args[i] = walkExpr(a, visit)
		}
	case *ast.FunctionalCall:
		e.Callee = walkExpr(e.Callee, visit)
		for i, a := range e.Args {
			e.Args[i] = walkExpr(a, visit)
		}
	}

	return visit(expr)
}

// walkBodyExprs applies walkExpr(visit) to every expression reachable from
// body, recursing into nested while/if bodies.
func walkBodyExprs(body *ast.Body, visit func(ast.Expression) ast.Expression) {
	if body == nil {
		return
	}
	for _, elem := range body.Elements {
		switch e := elem.(type) {
		case *ast.FieldDecl:
			e.Initializer = walkExpr(e.Initializer, visit)
		case *ast.Assignment:
			e.Value = walkExpr(e.Value, visit)
		case *ast.WhileLoop:
			e.Condition = walkExpr(e.Condition, visit)
			walkBodyExprs(e.Body, visit)
		case *ast.IfStatement:
			e.Condition = walkExpr(e.Condition, visit)
			walkBodyExprs(e.Then, visit)
			walkBodyExprs(e.Else, visit)
		case *ast.ReturnStatement:
			if e.Value != nil {
				e.Value = walkExpr(e.Value, visit)
			}
		case *ast.ExprStatement:
			e.Expr = walkExpr(e.Expr, visit)
		}
	}
}

// forEachBody calls fn once per top-level class member body in prog (a
// field's initializer is a bare expression, not a Body, so it is handled
// separately by callers that need it).
func forEachBody(prog *ast.Program, fn func(*ast.Body)) {
	for _, class := range prog.Classes {
		for _, m := range class.Members {
			switch member := m.(type) {
			case *ast.MethodDecl:
				fn(member.Body)
			case *ast.ConstructorDecl:
				fn(member.Body)
			}
		}
	}
}

// forEachFieldInitializer calls fn once per top-level field initializer in
// prog, allowing it to replace the initializer expression.
func forEachFieldInitializer(prog *ast.Program, fn func(ast.Expression) ast.Expression) {
	for _, class := range prog.Classes {
		for _, m := range class.Members {
			if fd, ok := m.(*ast.FieldDecl); ok {
				fd.Initializer = fn(fd.Initializer)
			}
		}
	}
}
