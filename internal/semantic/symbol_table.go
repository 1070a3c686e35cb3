package semantic

import "github.com/mharuska/ocompiler/internal/types"

// bindingKind distinguishes the three binding sources a name can resolve
// to, outermost to innermost (spec §4.6 pass 4): fields, parameters, locals.
type bindingKind int

const (
	bindingField bindingKind = iota
	bindingParam
	bindingLocal
)

// SymbolTable is the scope stack used while annotating a single method or
// constructor body: outermost is the enclosing class's fields (including
// inherited ones), next is the parameter list, innermost is a stack of
// block scopes holding locals introduced by field-declaration body elements
// in the order they appear (spec §4.6 pass 4).
type SymbolTable struct {
	fields map[string]types.Type
	params map[string]types.Type
	locals []map[string]types.Type
}

// NewSymbolTable creates a table for a body whose enclosing class exposes
// fields and whose header declares params.
func NewSymbolTable(fields, params map[string]types.Type) *SymbolTable {
	return &SymbolTable{fields: fields, params: params}
}

// PushScope opens a new block scope (method/constructor body, an if-branch,
// a while-body) for locals declared within it.
func (s *SymbolTable) PushScope() {
	s.locals = append(s.locals, make(map[string]types.Type))
}

// PopScope closes the innermost block scope.
func (s *SymbolTable) PopScope() {
	s.locals = s.locals[:len(s.locals)-1]
}

// Declare introduces a new local in the innermost scope.
func (s *SymbolTable) Declare(name string, t types.Type) {
	s.locals[len(s.locals)-1][name] = t
}

// Lookup resolves name against locals (innermost scope outward), then
// parameters, then fields, per spec §4.6 pass 4's scope ordering.
func (s *SymbolTable) Lookup(name string) (types.Type, bindingKind, bool) {
	for i := len(s.locals) - 1; i >= 0; i-- {
		if t, ok := s.locals[i][name]; ok {
			return t, bindingLocal, true
		}
	}
	if t, ok := s.params[name]; ok {
		return t, bindingParam, true
	}
	if t, ok := s.fields[name]; ok {
		return t, bindingField, true
	}
	return nil, 0, false
}
