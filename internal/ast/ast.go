// Package ast defines the closed tagged-variant AST node types for "O"
// (spec §3, §9). Node kinds are plain structs implementing one of Node,
// Expression, Statement, Member, or BodyElement; there is no inheritance and
// no Print() method on nodes — presentation is a separate visitor function
// in package printer.
package ast

import "github.com/mharuska/ocompiler/internal/diag"

// Node is the interface every AST node implements.
type Node interface {
	Pos() diag.Position
}

// Expression is any node that produces a value.
type Expression interface {
	Node
	expressionNode()
	// Type is filled in by the semantic checker (spec §4.8); nil before
	// analysis runs.
	ResolvedType() Type
	SetResolvedType(Type)
}

// Statement is a node that performs an action but produces no value.
type Statement interface {
	Node
	statementNode()
}

// Member is a field, method, or constructor declaration inside a class body.
type Member interface {
	Node
	memberNode()
}

// BodyElement is a local field declaration, a statement, or a bare
// expression statement inside a Body (spec §3 GLOSSARY).
type BodyElement interface {
	Node
	bodyElementNode()
}

// Type is the minimal interface AST nodes need from the type system without
// importing package types directly (avoids an import cycle: types never
// needs to know about ast). The concrete implementation lives in
// internal/types and satisfies this interface.
type Type interface {
	Name() string
	String() string
}

// Program is the root node: an ordered sequence of class declarations.
type Program struct {
	Classes []*ClassDecl
}

func (p *Program) Pos() diag.Position {
	if len(p.Classes) > 0 {
		return p.Classes[0].Pos()
	}
	return diag.Position{Line: 1, Column: 1}
}
