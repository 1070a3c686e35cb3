package optimizer

import (
	"github.com/mharuska/ocompiler/internal/ast"
	"github.com/samber/lo"
)

// FoldBooleanConditions resolves if/while statements whose condition is
// already a literal (spec §4.7): `if true then A else B end` becomes A;
// `if false then A else B end` becomes B, or is deleted when there is no
// else; `while false loop B end` is deleted outright (a loop that never
// runs contributes nothing). `while true` is never unrolled, since it may
// not terminate.
func FoldBooleanConditions(prog *ast.Program) bool {
	changed := false
	forEachBody(prog, func(b *ast.Body) { foldConditionsInBody(b, &changed) })
	return changed
}

func foldConditionsInBody(body *ast.Body, changed *bool) {
	if body == nil {
		return
	}
	var out []ast.BodyElement
	for _, elem := range body.Elements {
		switch e := elem.(type) {
		case *ast.IfStatement:
			foldConditionsInBody(e.Then, changed)
			foldConditionsInBody(e.Else, changed)
			lit, ok := e.Condition.(*ast.BooleanLiteral)
			if !ok {
				out = append(out, e)
				continue
			}
			*changed = true
			if lit.Value {
				out = append(out, e.Then.Elements...)
			} else if e.Else != nil {
				out = append(out, e.Else.Elements...)
			}
		case *ast.WhileLoop:
			foldConditionsInBody(e.Body, changed)
			if lit, ok := e.Condition.(*ast.BooleanLiteral); ok && !lit.Value {
				*changed = true
				continue
			}
			out = append(out, e)
		default:
			out = append(out, e)
		}
	}
	body.Elements = out
}

// EliminateDeadCode truncates a block's elements once one of them is
// guaranteed to return, matching the same liveness rule the checker uses
// for MissingReturn (spec §4.6 pass 6): a ReturnStatement, or an
// IfStatement whose Then and Else both definitely return.
func EliminateDeadCode(prog *ast.Program) bool {
	changed := false
	forEachBody(prog, func(b *ast.Body) { eliminateDeadInBody(b, &changed) })
	return changed
}

func eliminateDeadInBody(body *ast.Body, changed *bool) {
	if body == nil {
		return
	}
	terminalIdx := -1
	for i, elem := range body.Elements {
		switch e := elem.(type) {
		case *ast.WhileLoop:
			eliminateDeadInBody(e.Body, changed)
		case *ast.IfStatement:
			eliminateDeadInBody(e.Then, changed)
			eliminateDeadInBody(e.Else, changed)
		}
		if elementDefinitelyReturns(elem) {
			terminalIdx = i
			break
		}
	}
	if terminalIdx == -1 || terminalIdx == len(body.Elements)-1 {
		return
	}
	*changed = true
	body.Elements = lo.Filter(body.Elements, func(_ ast.BodyElement, i int) bool {
		return i <= terminalIdx
	})
}

func elementDefinitelyReturns(elem ast.BodyElement) bool {
	switch e := elem.(type) {
	case *ast.ReturnStatement:
		return true
	case *ast.IfStatement:
		return e.Else != nil && bodyDefinitelyReturns(e.Then) && bodyDefinitelyReturns(e.Else)
	default:
		return false
	}
}

func bodyDefinitelyReturns(body *ast.Body) bool {
	if body == nil || len(body.Elements) == 0 {
		return false
	}
	return elementDefinitelyReturns(body.Elements[len(body.Elements)-1])
}
