// Package printer renders AST nodes back to "O" source text. It is a
// separate visitor-style function rather than a method on each node (spec
// §9 "Deep polymorphic AST": presentation is kept out of the node types
// themselves), used by the CLI's parse/compile output and by the pipeline's
// snapshot tests to render an optimized program for comparison against a
// stored snapshot.
package printer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mharuska/ocompiler/internal/ast"
)

// Print renders a single AST node to "O" source text.
func Print(node ast.Node) string {
	var sb strings.Builder
	printNode(&sb, node, 0)
	return sb.String()
}

// Program renders an entire program: every class declaration in order,
// separated by a blank line.
func Program(prog *ast.Program) string {
	var sb strings.Builder
	for i, class := range prog.Classes {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		printClass(&sb, class)
	}
	return sb.String()
}

func indent(sb *strings.Builder, depth int) {
	sb.WriteString(strings.Repeat("  ", depth))
}

func printNode(sb *strings.Builder, node ast.Node, depth int) {
	switch n := node.(type) {
	case *ast.Program:
		sb.WriteString(Program(n))
	case *ast.ClassDecl:
		printClass(sb, n)
	case ast.Expression:
		printExpr(sb, n)
	case ast.BodyElement:
		printBodyElement(sb, n, depth)
	default:
		fmt.Fprintf(sb, "<%T>", node)
	}
}

func printClass(sb *strings.Builder, class *ast.ClassDecl) {
	sb.WriteString("class ")
	sb.WriteString(class.Name.Name)
	if class.Base != nil {
		sb.WriteString(" extends ")
		sb.WriteString(*class.Base)
	}
	sb.WriteString(" is\n")
	for _, m := range class.Members {
		printMember(sb, m)
	}
	sb.WriteString("end")
}

func printMember(sb *strings.Builder, member ast.Member) {
	switch m := member.(type) {
	case *ast.FieldDecl:
		indent(sb, 1)
		sb.WriteString("var ")
		sb.WriteString(m.Name)
		sb.WriteString(" : ")
		printExpr(sb, m.Initializer)
		sb.WriteString("\n")
	case *ast.MethodDecl:
		indent(sb, 1)
		sb.WriteString("method ")
		sb.WriteString(m.Header.Name)
		sb.WriteString("(")
		printParams(sb, m.Header.Params)
		sb.WriteString(")")
		if m.Header.ReturnType != nil {
			sb.WriteString(" : ")
			sb.WriteString(m.Header.ReturnType.String())
		}
		sb.WriteString(" is\n")
		printBody(sb, m.Body, 2)
		indent(sb, 1)
		sb.WriteString("end\n")
	case *ast.ConstructorDecl:
		indent(sb, 1)
		sb.WriteString("this(")
		printParams(sb, m.Params)
		sb.WriteString(") is\n")
		printBody(sb, m.Body, 2)
		indent(sb, 1)
		sb.WriteString("end\n")
	}
}

func printParams(sb *strings.Builder, params []*ast.Parameter) {
	for i, p := range params {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(p.Name)
		sb.WriteString(" : ")
		sb.WriteString(p.Type.String())
	}
}

func printBody(sb *strings.Builder, body *ast.Body, depth int) {
	if body == nil {
		return
	}
	for _, elem := range body.Elements {
		printBodyElement(sb, elem, depth)
	}
}

func printBodyElement(sb *strings.Builder, elem ast.BodyElement, depth int) {
	indent(sb, depth)
	switch e := elem.(type) {
	case *ast.FieldDecl:
		sb.WriteString("var ")
		sb.WriteString(e.Name)
		sb.WriteString(" : ")
		printExpr(sb, e.Initializer)
		sb.WriteString("\n")
	case *ast.Assignment:
		sb.WriteString(e.Target)
		sb.WriteString(" := ")
		printExpr(sb, e.Value)
		sb.WriteString("\n")
	case *ast.WhileLoop:
		sb.WriteString("while ")
		printExpr(sb, e.Condition)
		sb.WriteString(" loop\n")
		printBody(sb, e.Body, depth+1)
		indent(sb, depth)
		sb.WriteString("end\n")
	case *ast.IfStatement:
		sb.WriteString("if ")
		printExpr(sb, e.Condition)
		sb.WriteString(" then\n")
		printBody(sb, e.Then, depth+1)
		if e.Else != nil {
			indent(sb, depth)
			sb.WriteString("else\n")
			printBody(sb, e.Else, depth+1)
		}
		indent(sb, depth)
		sb.WriteString("end\n")
	case *ast.ReturnStatement:
		sb.WriteString("return")
		if e.Value != nil {
			sb.WriteString(" ")
			printExpr(sb, e.Value)
		}
		sb.WriteString("\n")
	case *ast.ExprStatement:
		printExpr(sb, e.Expr)
		sb.WriteString("\n")
	}
}

func printExpr(sb *strings.Builder, expr ast.Expression) {
	switch e := expr.(type) {
	case nil:
		return
	case *ast.IntegerLiteral:
		sb.WriteString(strconv.FormatInt(e.Value, 10))
	case *ast.RealLiteral:
		sb.WriteString(strconv.FormatFloat(e.Value, 'g', -1, 64))
	case *ast.BooleanLiteral:
		sb.WriteString(strconv.FormatBool(e.Value))
	case *ast.ThisExpression:
		sb.WriteString("this")
	case *ast.IdentifierExpression:
		sb.WriteString(e.Name)
	case *ast.MemberAccess:
		printExpr(sb, e.Target)
		sb.WriteString(".")
		sb.WriteString(e.Member)
	case *ast.FunctionalCall:
		printExpr(sb, e.Callee)
		sb.WriteString("(")
		printArgs(sb, e.Args)
		sb.WriteString(")")
	case *ast.ConstructorInvocation:
		sb.WriteString(e.ClassName.String())
		sb.WriteString("(")
		printArgs(sb, e.Args)
		sb.WriteString(")")
	default:
		fmt.Fprintf(sb, "<%T>", expr)
	}
}

func printArgs(sb *strings.Builder, args []ast.Expression) {
	for i, a := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		printExpr(sb, a)
	}
}
