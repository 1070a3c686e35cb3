package optimizer

import "github.com/mharuska/ocompiler/internal/ast"

// FoldConstructorLiterals collapses a ConstructorInvocation of Integer,
// Real, or Boolean with a single matching literal argument into that
// literal (spec §4.7).
func FoldConstructorLiterals(prog *ast.Program) bool {
	changed := false
	visit := func(expr ast.Expression) ast.Expression {
		return foldConstructorLiteral(expr, &changed)
	}
	forEachFieldInitializer(prog, func(e ast.Expression) ast.Expression { return walkExpr(e, visit) })
	forEachBody(prog, func(b *ast.Body) { walkBodyExprs(b, visit) })
	return changed
}

func foldConstructorLiteral(expr ast.Expression, changed *bool) ast.Expression {
	ci, ok := expr.(*ast.ConstructorInvocation)
	if !ok || len(ci.Args) != 1 {
		return expr
	}
	switch ci.ClassName.Name {
	case "Integer":
		if lit, ok := ci.Args[0].(*ast.IntegerLiteral); ok {
			*changed = true
			return lit
		}
	case "Real":
		if lit, ok := ci.Args[0].(*ast.RealLiteral); ok {
			*changed = true
			return lit
		}
	case "Boolean":
		if lit, ok := ci.Args[0].(*ast.BooleanLiteral); ok {
			*changed = true
			return lit
		}
	}
	return expr
}

// arithmeticMethods is the fixed intrinsic set the folder recognizes (spec
// §4.7, §9 Open Question); it mirrors semantic.intrinsicArithmetic but lives
// here too since the optimizer must not import the checker package.
var arithmeticMethods = map[string]bool{
	"Plus": true, "Minus": true, "Times": true, "Divide": true,
}

// FoldArithmeticCalls computes Plus/Minus/Times/Divide calls between two
// Integer or Real literals at compile time, using standard two's-complement
// and IEEE-754 semantics. Division by zero suppresses folding and leaves
// the call in place (spec §4.7).
func FoldArithmeticCalls(prog *ast.Program) bool {
	changed := false
	visit := func(expr ast.Expression) ast.Expression {
		return foldArithmeticCall(expr, &changed)
	}
	forEachFieldInitializer(prog, func(e ast.Expression) ast.Expression { return walkExpr(e, visit) })
	forEachBody(prog, func(b *ast.Body) { walkBodyExprs(b, visit) })
	return changed
}

func foldArithmeticCall(expr ast.Expression, changed *bool) ast.Expression {
	call, ok := expr.(*ast.FunctionalCall)
	if !ok || len(call.Args) != 1 {
		return expr
	}
	member, ok := call.Callee.(*ast.MemberAccess)
	if !ok || !arithmeticMethods[member.Member] {
		return expr
	}

	lf, lIsReal, lOK := literalNumber(member.Target)
	rf, rIsReal, rOK := literalNumber(call.Args[0])
	if !lOK || !rOK {
		return expr
	}

	var result float64
	switch member.Member {
	case "Plus":
		result = lf + rf
	case "Minus":
		result = lf - rf
	case "Times":
		result = lf * rf
	case "Divide":
		if rf == 0 {
			return expr
		}
		result = lf / rf
	}

	*changed = true
	isReal := lIsReal || rIsReal
	if !isReal {
		li := member.Target.(*ast.IntegerLiteral).Value
		ri := call.Args[0].(*ast.IntegerLiteral).Value
		return &ast.IntegerLiteral{Value: intArith(member.Member, li, ri), DeclaredAt: call.DeclaredAt}
	}
	return &ast.RealLiteral{Value: result, DeclaredAt: call.DeclaredAt}
}

// literalNumber extracts a literal's numeric value, reporting whether it
// was a RealLiteral (as opposed to an IntegerLiteral) and whether expr was
// a numeric literal at all.
func literalNumber(expr ast.Expression) (value float64, isReal bool, ok bool) {
	switch lit := expr.(type) {
	case *ast.IntegerLiteral:
		return float64(lit.Value), false, true
	case *ast.RealLiteral:
		return lit.Value, true, true
	default:
		return 0, false, false
	}
}

// intArith redoes the arithmetic in int64 so two's-complement overflow and
// truncating division match Integer semantics exactly, rather than via the
// float64 path used for the real/mixed case.
func intArith(op string, l, r int64) int64 {
	switch op {
	case "Plus":
		return l + r
	case "Minus":
		return l - r
	case "Times":
		return l * r
	case "Divide":
		return l / r
	default:
		return 0
	}
}
