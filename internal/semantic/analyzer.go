// Package semantic implements the six ordered checking passes of spec §4.6
// over a parsed Program, annotating every expression with its static type
// and accumulating diagnostics into a shared Bag.
package semantic

import (
	"sort"

	"github.com/mharuska/ocompiler/internal/ast"
	"github.com/mharuska/ocompiler/internal/diag"
	"github.com/mharuska/ocompiler/internal/hierarchy"
	"github.com/mharuska/ocompiler/internal/normalize"
	"github.com/mharuska/ocompiler/internal/types"
)

// Analyzer holds the state accumulated across the six passes: the class
// hierarchy being built, the diagnostics bag every pass feeds, and (once
// resolveFieldTypes has run, just before pass 4) each class's flattened
// field-type table.
type Analyzer struct {
	Program   *ast.Program
	Hierarchy *hierarchy.Hierarchy
	Bag       *diag.Bag

	fieldTypes map[string]map[string]types.Type
}

// NewAnalyzer creates an Analyzer over prog with a fresh hierarchy (built-ins
// already registered) and an empty diagnostics bag.
func NewAnalyzer(prog *ast.Program) *Analyzer {
	return &Analyzer{Program: prog, Hierarchy: hierarchy.New(), Bag: diag.NewBag()}
}

// Analyze runs every pass over prog and returns the resulting hierarchy and
// diagnostics bag. Analysis is considered successful iff bag.HasErrors() is
// false (spec §4.6).
func Analyze(prog *ast.Program) (*hierarchy.Hierarchy, *diag.Bag) {
	a := NewAnalyzer(prog)
	a.Run()
	return a.Hierarchy, a.Bag
}

// Run executes all six passes in order, plus the call-normalization
// pre-pass that must happen after class registration and before scope/type
// annotation (see internal/normalize).
func (a *Analyzer) Run() {
	// Pass 1: class registration.
	for _, class := range a.Program.Classes {
		a.Hierarchy.Register(class, a.Bag)
	}
	a.Hierarchy.ResolveBases(a.Bag)

	normalize.Calls(a.Program, a.Hierarchy)

	// Pass 2: cycle check.
	for _, entry := range a.Hierarchy.UserEntries() {
		if a.Hierarchy.HasCycle(entry) {
			a.Bag.Add(NewCyclicInheritance(entry.Decl.Pos(), entry.Name))
		}
	}

	// Pass 3: member uniqueness.
	for _, entry := range a.Hierarchy.UserEntries() {
		a.checkMemberUniqueness(entry)
	}

	// Field types must be known, class by class from roots down, before any
	// method/constructor body can be annotated.
	a.resolveFieldTypes()

	// Passes 4-6: scope & type annotation, assignment & return typing, and
	// control-flow liveness, interleaved per method/constructor body.
	for _, entry := range a.Hierarchy.UserEntries() {
		fields := a.fieldTypes[entry.Name]
		for _, m := range entry.Decl.Members {
			switch member := m.(type) {
			case *ast.MethodDecl:
				a.checkMethod(entry, member, fields)
			case *ast.ConstructorDecl:
				a.checkConstructor(entry, member, fields)
			}
		}
	}
}

// checkMemberUniqueness enforces I4: field names unique within a class;
// methods unique by (name, parameter-type-names); constructors unique by
// parameter-type-names alone.
func (a *Analyzer) checkMemberUniqueness(entry *hierarchy.Entry) {
	seenFields := map[string]bool{}
	seenMethods := map[string]bool{}
	seenCtors := map[string]bool{}

	for _, m := range entry.Decl.Members {
		switch member := m.(type) {
		case *ast.FieldDecl:
			if seenFields[member.Name] {
				a.Bag.Add(NewDuplicateField(member.Pos(), entry.Name, member.Name))
			}
			seenFields[member.Name] = true
		case *ast.MethodDecl:
			sig := member.Header.Name + "(" + paramTypeNames(member.Header.Params) + ")"
			if seenMethods[sig] {
				a.Bag.Add(NewDuplicateMethod(member.Pos(), entry.Name, member.Header.Name))
			}
			seenMethods[sig] = true
		case *ast.ConstructorDecl:
			sig := paramTypeNames(member.Params)
			if seenCtors[sig] {
				a.Bag.Add(NewDuplicateConstructor(member.Pos(), entry.Name))
			}
			seenCtors[sig] = true
		}
	}
}

func paramTypeNames(params []*ast.Parameter) string {
	out := ""
	for i, p := range params {
		if i > 0 {
			out += ","
		}
		out += p.Type.String()
	}
	return out
}

// resolveFieldTypes computes, for every user class, the flattened map of
// every field visible on it (inherited plus its own) together with each
// field's static type — the type of its initializer expression (spec §4.6
// pass 4, classes.go's field-typing note). Classes are processed root-most
// first so a derived class always sees its base's already-resolved fields.
func (a *Analyzer) resolveFieldTypes() {
	a.fieldTypes = map[string]map[string]types.Type{}

	entries := a.Hierarchy.UserEntries()
	sort.SliceStable(entries, func(i, j int) bool {
		return len(a.Hierarchy.AncestorsOf(entries[i])) < len(a.Hierarchy.AncestorsOf(entries[j]))
	})

	for _, entry := range entries {
		visible := map[string]types.Type{}
		if base := a.Hierarchy.BaseOf(entry); base != nil {
			for name, t := range a.fieldTypes[base.Name] {
				visible[name] = t
			}
		}

		declaredHere := map[string]bool{}
		for _, m := range entry.Decl.Members {
			fd, ok := m.(*ast.FieldDecl)
			if !ok || declaredHere[fd.Name] {
				continue
			}
			declaredHere[fd.Name] = true

			st := NewSymbolTable(visible, nil)
			t := a.inferExpr(fd.Initializer, entry, st)
			fd.ResolvedType = t
			visible[fd.Name] = t
		}
		a.fieldTypes[entry.Name] = visible
	}
}

func (a *Analyzer) checkMethod(class *hierarchy.Entry, method *ast.MethodDecl, fields map[string]types.Type) {
	params := a.resolveParams(method.Header.Params)

	var declaredReturn types.Type
	if method.Header.ReturnType != nil {
		t, ok := a.Hierarchy.ResolveTypeRef(method.Header.ReturnType)
		if !ok {
			a.Bag.Add(NewUnknownType(method.Header.ReturnType.Pos(), method.Header.ReturnType.String()))
		} else {
			declaredReturn = t
		}
	}

	st := NewSymbolTable(fields, params)
	st.PushScope()
	a.checkBody(method.Body, class, st, declaredReturn, method.Header.Name)
	st.PopScope()

	if declaredReturn != nil && !definitelyReturns(method.Body) {
		a.Bag.Add(NewMissingReturn(method.Header.DeclaredAt, method.Header.Name))
	}
}

// checkConstructor mirrors checkMethod with a nil declared return type: any
// `return <expr>` inside a constructor is always an UnexpectedReturnValue
// (spec §9 Open Question), and constructors are never subject to
// Missing-Return.
func (a *Analyzer) checkConstructor(class *hierarchy.Entry, ctor *ast.ConstructorDecl, fields map[string]types.Type) {
	params := a.resolveParams(ctor.Params)
	st := NewSymbolTable(fields, params)
	st.PushScope()
	a.checkBody(ctor.Body, class, st, nil, "this")
	st.PopScope()
}

func (a *Analyzer) resolveParams(params []*ast.Parameter) map[string]types.Type {
	out := make(map[string]types.Type, len(params))
	for _, p := range params {
		t, ok := a.Hierarchy.ResolveTypeRef(p.Type)
		if !ok {
			a.Bag.Add(NewUnknownType(p.Pos(), p.Type.String()))
			continue
		}
		out[p.Name] = t
	}
	return out
}

// checkBody walks body's elements in order, annotating expressions and
// enforcing I9/I8 (spec §4.6 passes 4-5). declaredReturn is nil for a unit
// method/constructor.
func (a *Analyzer) checkBody(body *ast.Body, class *hierarchy.Entry, st *SymbolTable, declaredReturn types.Type, ownerName string) {
	if body == nil {
		return
	}
	for _, elem := range body.Elements {
		switch e := elem.(type) {
		case *ast.FieldDecl:
			t := a.inferExpr(e.Initializer, class, st)
			e.ResolvedType = t
			st.Declare(e.Name, t)
		case *ast.Assignment:
			a.checkAssignment(e, class, st)
		case *ast.WhileLoop:
			a.inferExpr(e.Condition, class, st)
			st.PushScope()
			a.checkBody(e.Body, class, st, declaredReturn, ownerName)
			st.PopScope()
		case *ast.IfStatement:
			a.inferExpr(e.Condition, class, st)
			st.PushScope()
			a.checkBody(e.Then, class, st, declaredReturn, ownerName)
			st.PopScope()
			if e.Else != nil {
				st.PushScope()
				a.checkBody(e.Else, class, st, declaredReturn, ownerName)
				st.PopScope()
			}
		case *ast.ReturnStatement:
			a.checkReturn(e, class, st, declaredReturn, ownerName)
		case *ast.ExprStatement:
			a.inferExpr(e.Expr, class, st)
		}
	}
}

func (a *Analyzer) checkReturn(stmt *ast.ReturnStatement, class *hierarchy.Entry, st *SymbolTable, declaredReturn types.Type, ownerName string) {
	if stmt.Value == nil {
		if declaredReturn != nil {
			a.Bag.Add(NewMissingReturn(stmt.DeclaredAt, ownerName))
		}
		return
	}

	valType := a.inferExpr(stmt.Value, class, st)
	if declaredReturn == nil {
		a.Bag.Add(NewUnexpectedReturnValue(stmt.DeclaredAt, ownerName))
		return
	}
	if valType != nil && !valType.IsAssignableTo(declaredReturn) {
		a.Bag.Add(NewTypeMismatch(stmt.Pos(), valType.Name(), declaredReturn.Name()))
	}
}

func (a *Analyzer) checkAssignment(assign *ast.Assignment, class *hierarchy.Entry, st *SymbolTable) {
	valType := a.inferExpr(assign.Value, class, st)

	targetType, kind, ok := st.Lookup(assign.Target)
	if !ok || kind == bindingParam {
		a.Bag.Add(NewUnknownIdentifier(assign.DeclaredAt, assign.Target))
		return
	}
	if valType != nil && targetType != nil && !valType.IsAssignableTo(targetType) {
		a.Bag.Add(NewTypeMismatch(assign.Pos(), valType.Name(), targetType.Name()))
	}
}

// definitelyReturns implements spec §4.6 pass 6: a block definitely returns
// if its last element is a ReturnStatement, or an IfStatement both of whose
// branches definitely return. WhileLoop bodies never satisfy liveness.
func definitelyReturns(body *ast.Body) bool {
	if body == nil || len(body.Elements) == 0 {
		return false
	}
	switch last := body.Elements[len(body.Elements)-1].(type) {
	case *ast.ReturnStatement:
		return true
	case *ast.IfStatement:
		return last.Else != nil && definitelyReturns(last.Then) && definitelyReturns(last.Else)
	default:
		return false
	}
}
