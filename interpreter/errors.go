/*
File : loxscript/interpreter/errors.go
*/
package interpreter

import "fmt"

// ArgumentError reports that an operator was applied to operand(s) of a
// type it does not support, e.g. `-"x"` or `"x" - 1`.
type ArgumentError struct {
	Message string
}

func (e *ArgumentError) Error() string { return e.Message }

// UnknownOperatorError reports a binary or unary operator token the
// evaluator has no case for. This should be unreachable for a program that
// parsed successfully, but is kept as a typed fallback rather than a panic.
type UnknownOperatorError struct {
	Operator string
}

func (e *UnknownOperatorError) Error() string {
	return fmt.Sprintf("Unknown operator '%s'", e.Operator)
}

// ZeroDivisionError reports division of a Number by exactly 0.0.
type ZeroDivisionError struct{}

func (e *ZeroDivisionError) Error() string { return "Division by zero" }

// UndefinedVariableError reports a read of or assignment to a name with no
// binding anywhere in the environment chain. The evaluator returns it in
// place of environment.UndefinedVariableError, with the same message, so
// callers of this package never need to import environment to recognize the
// failure.
type UndefinedVariableError struct {
	Name string
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'", e.Name)
}
