/*
File : loxscript/astprint/astprint.go
*/

// Package astprint renders a parsed statement list as prefix-notation text
// (Lisp-style `(op left right)`), the format used by the --print-ast CLI
// dump. It exists purely for debugging the parser's output; it has no
// bearing on evaluation.
package astprint

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/loxscript/loxscript/parser"
)

// Print renders statements joined by newlines, one prefix-notation
// expression or statement form per line.
func Print(statements []parser.Stmt) string {
	lines := make([]string, len(statements))
	for i, stmt := range statements {
		lines[i] = printStmt(stmt)
	}
	return strings.Join(lines, "\n")
}

func printStmt(stmt parser.Stmt) string {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		return printExpr(s.Expr)
	case *parser.PrintStmt:
		return "print " + printExpr(s.Expr)
	case *parser.VarStmt:
		return s.Name.Lexeme + "=" + printExpr(s.Initializer)
	case *parser.BlockStmt:
		var buf bytes.Buffer
		buf.WriteString("{ ")
		for i, inner := range s.Statements {
			if i > 0 {
				buf.WriteString(";\n ")
			}
			buf.WriteString(printStmt(inner))
		}
		buf.WriteString(" }")
		return buf.String()
	case *parser.IfStmt:
		res := fmt.Sprintf("(if %s %s", printExpr(s.Condition), printStmt(s.Then))
		if s.Else != nil {
			res += " " + printStmt(s.Else)
		}
		return res + ")"
	case *parser.WhileStmt:
		return fmt.Sprintf("(while %s %s)", printExpr(s.Condition), printStmt(s.Body))
	default:
		return fmt.Sprintf("<unknown statement %T>", stmt)
	}
}

func printExpr(expr parser.Expr) string {
	switch e := expr.(type) {
	case *parser.BinaryExpr:
		return parenthesize(string(e.Operator.Type), e.Left, e.Right)
	case *parser.LogicalExpr:
		return parenthesize(string(e.Operator.Type), e.Left, e.Right)
	case *parser.UnaryExpr:
		return parenthesize(string(e.Operator.Type), e.Right)
	case *parser.GroupingExpr:
		return parenthesize("group", e.Inner)
	case *parser.LiteralExpr:
		return e.Value.String()
	case *parser.VariableExpr:
		return e.Name.Lexeme
	case *parser.AssignExpr:
		return e.Name.Lexeme + " = " + printExpr(e.Value)
	default:
		return fmt.Sprintf("<unknown expr %T>", expr)
	}
}

// parenthesize renders `(name expr1 expr2 ...)`, the shared shape behind
// Binary/Logical (`(op left right)`), Unary (`(op right)`), and Grouping
// (`(group inner)`).
func parenthesize(name string, exprs ...parser.Expr) string {
	var buf bytes.Buffer
	buf.WriteString("(")
	buf.WriteString(name)
	for _, e := range exprs {
		buf.WriteString(" ")
		buf.WriteString(printExpr(e))
	}
	buf.WriteString(")")
	return buf.String()
}
