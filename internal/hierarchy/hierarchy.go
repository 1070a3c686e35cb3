// Package hierarchy builds and queries the class hierarchy (spec §3, §4.5):
// a name-indexed table of class declarations plus their resolved base
// relation, mutated only during the registration phase of semantic analysis
// and immutable thereafter.
package hierarchy

import (
	"github.com/mharuska/ocompiler/internal/ast"
	"github.com/mharuska/ocompiler/internal/diag"
	"github.com/mharuska/ocompiler/internal/types"
	"github.com/samber/lo"
)

// Entry is one row of the hierarchy table: a class declaration (nil for
// built-ins) together with its resolved base Reference.
type Entry struct {
	Name     string
	Decl     *ast.ClassDecl // nil for built-in classes
	BaseName string         // "" for roots
	Ref      *types.Reference
}

// Hierarchy is the name-keyed, insertion-ordered class table. Iteration
// order never depends on map hashing (spec §5): entries are walked via
// order, never via a bare `for range table`.
type Hierarchy struct {
	factory *types.Factory
	entries map[string]*Entry
	order   []string
}

// New creates a Hierarchy with the built-in classes already registered, in
// the order spec §3 requires: Class (root), AnyValue/AnyRef extend Class,
// Integer/Real/Boolean extend AnyValue, Array/List extend AnyRef.
func New() *Hierarchy {
	h := &Hierarchy{
		factory: types.NewFactory(),
		entries: make(map[string]*Entry),
	}
	h.registerBuiltin("Class", "")
	h.registerBuiltin("AnyValue", "Class")
	h.registerBuiltin("AnyRef", "Class")
	h.registerBuiltin("Integer", "AnyValue")
	h.registerBuiltin("Real", "AnyValue")
	h.registerBuiltin("Boolean", "AnyValue")
	h.registerBuiltin("Array", "AnyRef")
	h.registerBuiltin("List", "AnyRef")
	return h
}

// Factory exposes the interned type-symbol factory shared with the checker.
func (h *Hierarchy) Factory() *types.Factory { return h.factory }

func (h *Hierarchy) registerBuiltin(name, base string) {
	ref := h.factory.Reference(name)
	h.entries[name] = &Entry{Name: name, BaseName: base, Ref: ref}
	h.order = append(h.order, name)
	if base != "" {
		if baseEntry := h.entries[base]; baseEntry != nil {
			ref.SetBase(baseEntry.Ref)
		}
	}
}

// Register adds decl to the table. First-wins on a duplicate name: the
// first declaration stays registered, but a DuplicateClass diagnostic is
// always recorded for the later one (spec §4.5, I1). A base that is not yet
// registered is left unlinked here; ResolveBases links it or reports
// UnknownBase once every class has been registered.
func (h *Hierarchy) Register(decl *ast.ClassDecl, bag *diag.Bag) {
	name := decl.Name.Name
	if _, exists := h.entries[name]; exists {
		bag.Add(diag.New(diag.KindDuplicateClass, decl.Name.Pos(),
			"class '"+name+"' is already declared"))
		return
	}

	baseName := "Class"
	if decl.Base != nil {
		baseName = *decl.Base
	}

	ref := h.factory.Reference(name)
	h.entries[name] = &Entry{Name: name, Decl: decl, BaseName: baseName, Ref: ref}
	h.order = append(h.order, name)

	if baseEntry, ok := h.entries[baseName]; ok {
		ref.SetBase(baseEntry.Ref)
	}
}

// ResolveBases re-resolves every entry's base pointer; used after all
// top-level classes have been registered so that forward references (a
// class extending a class declared later in the file) still link up.
func (h *Hierarchy) ResolveBases(bag *diag.Bag) {
	for _, name := range h.order {
		e := h.entries[name]
		if e.Ref.Base != nil || e.BaseName == "" {
			continue
		}
		if baseEntry, ok := h.entries[e.BaseName]; ok {
			e.Ref.SetBase(baseEntry.Ref)
		} else if e.Decl != nil {
			bag.Add(diag.New(diag.KindUnknownBase, e.BasePosOrSelf(),
				"unknown base class '"+e.BaseName+"'"))
		}
	}
}

// BasePosOrSelf returns the position to anchor an UnknownBase diagnostic to.
func (e *Entry) BasePosOrSelf() diag.Position {
	if e.Decl != nil && e.Decl.Base != nil {
		return e.Decl.BasePos
	}
	if e.Decl != nil {
		return e.Decl.Pos()
	}
	return diag.Position{}
}

// UserEntries returns every non-built-in entry, in registration order.
func (h *Hierarchy) UserEntries() []*Entry {
	var out []*Entry
	for _, name := range h.order {
		if e := h.entries[name]; e.Decl != nil {
			out = append(out, e)
		}
	}
	return out
}

// Resolve looks up a registered class by name.
func (h *Hierarchy) Resolve(name string) (*Entry, bool) {
	e, ok := h.entries[name]
	return e, ok
}

// BaseOf returns class's direct base entry, or nil for a root.
func (h *Hierarchy) BaseOf(class *Entry) *Entry {
	if class.Ref.Base == nil {
		return nil
	}
	base, ok := h.entries[class.Ref.Base.ClassName]
	if !ok {
		return nil
	}
	return base
}

// AncestorsOf returns the chain from class upward (class itself first),
// terminating at a root or upon detecting a cycle. It never loops forever:
// cycle diagnosis is the semantic checker's job (pass 2); this is purely a
// defensive, deterministic walk.
func (h *Hierarchy) AncestorsOf(class *Entry) []*Entry {
	var chain []*Entry
	visited := make(map[string]bool)
	cur := class
	for cur != nil {
		if visited[cur.Name] {
			break
		}
		visited[cur.Name] = true
		chain = append(chain, cur)
		cur = h.BaseOf(cur)
	}
	return chain
}

// HasCycle reports whether walking up from class ever revisits class itself
// before reaching a root (spec invariant I3).
func (h *Hierarchy) HasCycle(class *Entry) bool {
	visited := map[string]bool{}
	cur := h.BaseOf(class)
	for cur != nil {
		if cur.Name == class.Name {
			return true
		}
		if visited[cur.Name] {
			// A cycle further up that class itself is not part of.
			return false
		}
		visited[cur.Name] = true
		cur = h.BaseOf(cur)
	}
	return false
}

// FindField walks ancestors outward from class, first hit wins.
func (h *Hierarchy) FindField(class *Entry, name string) (*ast.FieldDecl, bool) {
	for _, entry := range h.AncestorsOf(class) {
		if entry.Decl == nil {
			continue
		}
		for _, m := range entry.Decl.Members {
			if fd, ok := m.(*ast.FieldDecl); ok && fd.Name == name {
				return fd, true
			}
		}
	}
	return nil, false
}

// FindMethod walks ancestors outward from class, selecting the nearest
// overload whose parameter count matches and each argument type is
// assignable to the corresponding parameter type (spec §4.5). ambiguous is
// true when more than one overload on the SAME class matches equally well.
func (h *Hierarchy) FindMethod(class *Entry, name string, argTypes []types.Type) (method *ast.MethodDecl, found, ambiguous bool) {
	for _, entry := range h.AncestorsOf(class) {
		if entry.Decl == nil {
			continue
		}
		candidates := lo.Filter(entry.Decl.Members, func(m ast.Member, _ int) bool {
			md, ok := m.(*ast.MethodDecl)
			return ok && md.Header.Name == name
		})
		if len(candidates) == 0 {
			continue
		}

		var matches []*ast.MethodDecl
		for _, c := range candidates {
			md := c.(*ast.MethodDecl)
			if h.paramsMatch(md.Header.Params, argTypes) {
				matches = append(matches, md)
			}
		}
		if len(matches) == 0 {
			continue
		}
		if len(matches) > 1 {
			return matches[0], true, true
		}
		return matches[0], true, false
	}
	return nil, false, false
}

// FindConstructor selects the constructor of class whose parameters accept
// argTypes by assignability (spec I6). Constructors are not inherited.
func (h *Hierarchy) FindConstructor(class *Entry, argTypes []types.Type) (ctor *ast.ConstructorDecl, found, ambiguous bool) {
	if class.Decl == nil {
		return nil, false, false
	}
	candidates := lo.FilterMap(class.Decl.Members, func(m ast.Member, _ int) (*ast.ConstructorDecl, bool) {
		cd, ok := m.(*ast.ConstructorDecl)
		return cd, ok
	})

	var matches []*ast.ConstructorDecl
	for _, cd := range candidates {
		if h.paramsMatch(cd.Params, argTypes) {
			matches = append(matches, cd)
		}
	}
	if len(matches) == 0 {
		return nil, false, false
	}
	if len(matches) > 1 {
		return matches[0], true, true
	}
	return matches[0], true, false
}

// paramsMatch reports whether argTypes can be passed to params: equal
// arity, and each argument type assignable to the corresponding resolved
// parameter type (spec I6, I7).
func (h *Hierarchy) paramsMatch(params []*ast.Parameter, argTypes []types.Type) bool {
	if len(params) != len(argTypes) {
		return false
	}
	for i, p := range params {
		if argTypes[i] == nil {
			return false
		}
		paramType, ok := h.ResolveTypeRef(p.Type)
		if !ok {
			return false
		}
		if !argTypes[i].IsAssignableTo(paramType) {
			return false
		}
	}
	return true
}

// ResolveTypeRef resolves a syntactic class-name reference (possibly
// parameterized, spec §4.3 Generic) to a type symbol. Array/List references
// become Container types; any other name becomes the registered class's
// Reference (or the matching Primitive, for Integer/Real/Boolean/AnyValue).
func (h *Hierarchy) ResolveTypeRef(ref *ast.ClassNameRef) (types.Type, bool) {
	if ref == nil {
		return nil, false
	}
	if ref.Generic != nil && (ref.Name == "Array" || ref.Name == "List") {
		elem, ok := h.ResolveTypeRef(ref.Generic)
		if !ok {
			return nil, false
		}
		if ref.Name == "Array" {
			return h.factory.Array(elem), true
		}
		return h.factory.List(elem), true
	}
	if p := types.PrimitiveByName(ref.Name); p != nil {
		return p, true
	}
	entry, ok := h.Resolve(ref.Name)
	if !ok {
		return nil, false
	}
	return entry.Ref, true
}
