/*
File : loxscript/interpreter/interpreter.go
*/

// Package interpreter tree-walks a parsed statement list against a lexical
// environment chain, producing values and side effects. It is the only
// stateful component across statements in a REPL session: the Interpreter
// owns the environment and persists it across successive calls to Run.
package interpreter

import (
	"fmt"
	"io"
	"os"

	"github.com/loxscript/loxscript/environment"
	"github.com/loxscript/loxscript/parser"
	"github.com/loxscript/loxscript/value"
)

// Interpreter executes statements against an evolving environment chain. A
// single Interpreter is reused across every line of a REPL session so that
// `var` declarations persist from one input line to the next.
type Interpreter struct {
	Env    *environment.Environment
	Writer io.Writer
}

// New creates an Interpreter with a fresh global environment, writing
// `print` output to os.Stdout by default.
func New() *Interpreter {
	return &Interpreter{
		Env:    environment.New(nil),
		Writer: os.Stdout,
	}
}

// SetWriter redirects `print` output, primarily so tests can capture it.
func (in *Interpreter) SetWriter(w io.Writer) {
	in.Writer = w
}

// Run executes every statement in order against the interpreter's current
// environment. The first runtime error aborts the batch and is returned;
// statements already executed keep whatever side effects they had.
func (in *Interpreter) Run(statements []parser.Stmt) error {
	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt parser.Stmt) error {
	switch s := stmt.(type) {
	case *parser.ExpressionStmt:
		_, err := in.eval(s.Expr)
		return err

	case *parser.PrintStmt:
		v, err := in.eval(s.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(in.Writer, v.String())
		return nil

	case *parser.VarStmt:
		v, err := in.eval(s.Initializer)
		if err != nil {
			return err
		}
		in.Env.Define(s.Name.Lexeme, v)
		return nil

	case *parser.BlockStmt:
		return in.executeBlock(s.Statements, environment.New(in.Env))

	case *parser.IfStmt:
		cond, err := in.eval(s.Condition)
		if err != nil {
			return err
		}
		if value.IsTruthy(cond) {
			return in.execute(s.Then)
		}
		if s.Else != nil {
			return in.execute(s.Else)
		}
		return nil

	case *parser.WhileStmt:
		for {
			cond, err := in.eval(s.Condition)
			if err != nil {
				return err
			}
			if !value.IsTruthy(cond) {
				return nil
			}
			if err := in.execute(s.Body); err != nil {
				return err
			}
		}

	default:
		return &UnknownOperatorError{Operator: fmt.Sprintf("%T", stmt)}
	}
}

// executeBlock runs statements in env, restoring the interpreter's previous
// environment before returning on every exit path (normal completion or
// error) so a failing block never leaks its scope.
func (in *Interpreter) executeBlock(statements []parser.Stmt, env *environment.Environment) error {
	previous := in.Env
	in.Env = env
	defer func() { in.Env = previous }()

	for _, stmt := range statements {
		if err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) eval(expr parser.Expr) (value.Value, error) {
	switch e := expr.(type) {
	case *parser.LiteralExpr:
		return e.Value, nil

	case *parser.GroupingExpr:
		return in.eval(e.Inner)

	case *parser.VariableExpr:
		v, err := in.Env.Get(e.Name.Lexeme)
		if err != nil {
			return nil, &UndefinedVariableError{Name: e.Name.Lexeme}
		}
		return v, nil

	case *parser.AssignExpr:
		v, err := in.eval(e.Value)
		if err != nil {
			return nil, err
		}
		if err := in.Env.Assign(e.Name.Lexeme, v); err != nil {
			return nil, &UndefinedVariableError{Name: e.Name.Lexeme}
		}
		return v, nil

	case *parser.UnaryExpr:
		return in.evalUnary(e)

	case *parser.LogicalExpr:
		return in.evalLogical(e)

	case *parser.BinaryExpr:
		return in.evalBinary(e)

	default:
		return nil, &UnknownOperatorError{Operator: fmt.Sprintf("%T", expr)}
	}
}
