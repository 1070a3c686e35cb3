package semantic

import (
	"github.com/mharuska/ocompiler/internal/ast"
	"github.com/mharuska/ocompiler/internal/hierarchy"
	"github.com/mharuska/ocompiler/internal/types"
)

// intrinsicArithmetic is the fixed set of method names the checker treats
// as built into Integer and Real without a declared MethodDecl anywhere in
// the hierarchy (spec §4.7, §9 Open Question: "no overload table for other
// primitive methods exists"). Mixed Integer/Real operands widen to Real.
var intrinsicArithmetic = map[string]bool{
	"Plus": true, "Minus": true, "Times": true, "Divide": true,
}

// inferExpr computes expr's static type (spec §4.6 pass 4), recording it on
// the node and resolving any method/constructor reference it carries. class
// and st are nil-safe for the field-initializer context (resolveFieldTypes
// passes a SymbolTable with no params, which is enough — a field
// initializer never needs "class" for anything but ThisExpression).
func (a *Analyzer) inferExpr(expr ast.Expression, class *hierarchy.Entry, st *SymbolTable) types.Type {
	if expr == nil {
		return nil
	}

	switch e := expr.(type) {
	case *ast.IntegerLiteral:
		e.SetResolvedType(types.Integer)
		return types.Integer
	case *ast.RealLiteral:
		e.SetResolvedType(types.Real)
		return types.Real
	case *ast.BooleanLiteral:
		e.SetResolvedType(types.Boolean)
		return types.Boolean
	case *ast.ThisExpression:
		if class == nil {
			return nil
		}
		e.SetResolvedType(class.Ref)
		return class.Ref
	case *ast.IdentifierExpression:
		return a.inferIdentifier(e, st)
	case *ast.MemberAccess:
		return a.inferMemberAccess(e, class, st)
	case *ast.ConstructorInvocation:
		return a.inferConstructorInvocation(e, class, st)
	case *ast.FunctionalCall:
		return a.inferFunctionalCall(e, class, st)
	default:
		return nil
	}
}

func (a *Analyzer) inferIdentifier(e *ast.IdentifierExpression, st *SymbolTable) types.Type {
	if st == nil {
		a.Bag.Add(NewUnknownIdentifier(e.DeclaredAt, e.Name))
		return nil
	}
	t, _, ok := st.Lookup(e.Name)
	if !ok {
		a.Bag.Add(NewUnknownIdentifier(e.DeclaredAt, e.Name))
		return nil
	}
	e.SetResolvedType(t)
	return t
}

// inferMemberAccess always resolves a field: the "unbound method reference"
// reading (spec §4.6 pass 4) only applies when a MemberAccess is the callee
// of a FunctionalCall, which inferFunctionalCall handles by inferring the
// Target directly rather than calling inferExpr on the whole MemberAccess.
func (a *Analyzer) inferMemberAccess(e *ast.MemberAccess, class *hierarchy.Entry, st *SymbolTable) types.Type {
	targetType := a.inferExpr(e.Target, class, st)
	if targetType == nil {
		return nil
	}

	ref, ok := targetType.(*types.Reference)
	if !ok {
		a.Bag.Add(NewUnknownMember(e.DeclaredAt, targetType.Name(), e.Member))
		return nil
	}
	entry, ok := a.Hierarchy.Resolve(ref.ClassName)
	if !ok {
		a.Bag.Add(NewUnknownMember(e.DeclaredAt, ref.ClassName, e.Member))
		return nil
	}

	field, ok := a.Hierarchy.FindField(entry, e.Member)
	if !ok {
		a.Bag.Add(NewUnknownMember(e.DeclaredAt, entry.Name, e.Member))
		return nil
	}

	fieldType := a.fieldTypes[entry.Name][field.Name]
	e.SetResolvedType(fieldType)
	return fieldType
}

// inferFunctionalCall resolves a call's receiver and method per spec §4.6
// pass 4: a MemberAccess callee's Target is the receiver; a bare identifier
// callee's receiver is always the enclosing class (after call normalization,
// "O" has no function-valued locals, so a bare-identifier call can only mean
// a same-class method call).
func (a *Analyzer) inferFunctionalCall(call *ast.FunctionalCall, class *hierarchy.Entry, st *SymbolTable) types.Type {
	var receiverType types.Type
	var methodName string

	switch callee := call.Callee.(type) {
	case *ast.MemberAccess:
		receiverType = a.inferExpr(callee.Target, class, st)
		methodName = callee.Member
	case *ast.IdentifierExpression:
		if class == nil {
			return nil
		}
		receiverType = class.Ref
		methodName = callee.Name
	default:
		receiverType = a.inferExpr(callee, class, st)
	}

	argTypes := make([]types.Type, len(call.Args))
	for i, arg := range call.Args {
		argTypes[i] = a.inferExpr(arg, class, st)
	}

	if receiverType == nil {
		return nil
	}

	if prim, ok := receiverType.(*types.Primitive); ok && intrinsicArithmetic[methodName] {
		if result, ok := foldableArithmeticResultType(prim, argTypes); ok {
			call.SetResolvedType(result)
			return result
		}
	}

	ref, ok := receiverType.(*types.Reference)
	if !ok {
		a.Bag.Add(NewUnknownMember(call.DeclaredAt, receiverType.Name(), methodName))
		return nil
	}
	entry, ok := a.Hierarchy.Resolve(ref.ClassName)
	if !ok {
		a.Bag.Add(NewUnknownMember(call.DeclaredAt, ref.ClassName, methodName))
		return nil
	}

	method, found, ambiguous := a.Hierarchy.FindMethod(entry, methodName, argTypes)
	if ambiguous {
		a.Bag.Add(NewAmbiguousCall(call.DeclaredAt, methodName))
	}
	if !found {
		a.Bag.Add(NewUnknownMember(call.DeclaredAt, entry.Name, methodName))
		return nil
	}

	call.ResolvedMethod = method
	var resultType types.Type = types.Unit
	if method.Header.ReturnType != nil {
		if t, ok := a.Hierarchy.ResolveTypeRef(method.Header.ReturnType); ok {
			resultType = t
		}
	}
	call.SetResolvedType(resultType)
	return resultType
}

// foldableArithmeticResultType reports the result type of an intrinsic
// Plus/Minus/Times/Divide call, widening Integer/Real per spec §4.7's
// constant-folding semantics; any other argument shape is not a match (the
// checker falls through to ordinary method resolution, which will report
// UnknownMember since primitives declare no such method).
func foldableArithmeticResultType(receiver *types.Primitive, argTypes []types.Type) (types.Type, bool) {
	if receiver.Kind != types.KindInteger && receiver.Kind != types.KindReal {
		return nil, false
	}
	if len(argTypes) != 1 || argTypes[0] == nil {
		return nil, false
	}
	arg, ok := argTypes[0].(*types.Primitive)
	if !ok || (arg.Kind != types.KindInteger && arg.Kind != types.KindReal) {
		return nil, false
	}
	if receiver.Kind == types.KindReal || arg.Kind == types.KindReal {
		return types.Real, true
	}
	return types.Integer, true
}

func (a *Analyzer) inferConstructorInvocation(ci *ast.ConstructorInvocation, class *hierarchy.Entry, st *SymbolTable) types.Type {
	argTypes := make([]types.Type, len(ci.Args))
	for i, arg := range ci.Args {
		argTypes[i] = a.inferExpr(arg, class, st)
	}

	name := ci.ClassName.Name
	switch name {
	case "Integer", "Real", "Boolean":
		target := types.PrimitiveByName(name)
		if len(ci.Args) != 1 {
			a.Bag.Add(NewTypeMismatch(ci.Pos(), "wrong argument count", name))
		} else if argTypes[0] != nil && !argTypes[0].IsAssignableTo(target) {
			a.Bag.Add(NewTypeMismatch(ci.Args[0].Pos(), argTypes[0].Name(), name))
		}
		ci.SetResolvedType(target)
		return target

	case "Array", "List":
		containerType, ok := a.Hierarchy.ResolveTypeRef(ci.ClassName)
		if !ok {
			a.Bag.Add(NewUnknownType(ci.Pos(), ci.ClassName.String()))
			return nil
		}
		cont := containerType.(*types.Container)
		for i, t := range argTypes {
			if t != nil && !t.IsAssignableTo(cont.Elem) {
				a.Bag.Add(NewTypeMismatch(ci.Args[i].Pos(), t.Name(), cont.Elem.Name()))
			}
		}
		ci.SetResolvedType(containerType)
		return containerType

	default:
		entry, ok := a.Hierarchy.Resolve(name)
		if !ok {
			a.Bag.Add(NewUnknownType(ci.Pos(), name))
			return nil
		}
		return a.inferUserConstructorInvocation(ci, entry, argTypes)
	}
}

func (a *Analyzer) inferUserConstructorInvocation(ci *ast.ConstructorInvocation, entry *hierarchy.Entry, argTypes []types.Type) types.Type {
	ctor, found, ambiguous := a.Hierarchy.FindConstructor(entry, argTypes)
	if ambiguous {
		a.Bag.Add(NewAmbiguousCall(ci.Pos(), entry.Name))
	}
	if !found {
		if len(argTypes) == 0 && !hasConstructors(entry) {
			// No declared constructor: the implicit zero-argument default
			// constructor applies.
			ci.SetResolvedType(entry.Ref)
			return entry.Ref
		}
		a.Bag.Add(NewUnknownType(ci.Pos(), entry.Name+"("+argListDescription(argTypes)+")"))
		ci.SetResolvedType(entry.Ref)
		return entry.Ref
	}
	ci.ResolvedCtor = ctor
	ci.SetResolvedType(entry.Ref)
	return entry.Ref
}

func hasConstructors(entry *hierarchy.Entry) bool {
	if entry.Decl == nil {
		return false
	}
	for _, m := range entry.Decl.Members {
		if _, ok := m.(*ast.ConstructorDecl); ok {
			return true
		}
	}
	return false
}

func argListDescription(argTypes []types.Type) string {
	out := ""
	for i, t := range argTypes {
		if i > 0 {
			out += ","
		}
		if t == nil {
			out += "?"
		} else {
			out += t.Name()
		}
	}
	return out
}
