/*
File : loxscript/interpreter/operators.go
*/
package interpreter

import (
	"fmt"

	"github.com/loxscript/loxscript/lexer"
	"github.com/loxscript/loxscript/parser"
	"github.com/loxscript/loxscript/value"
)

func (in *Interpreter) evalUnary(e *parser.UnaryExpr) (value.Value, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.MINUS:
		n, ok := right.(value.Number)
		if !ok {
			return nil, &ArgumentError{Message: fmt.Sprintf("Expected number, but got %s", right.String())}
		}
		return value.Number{Val: -n.Val}, nil
	case lexer.BANG:
		return value.Boolean{Val: !value.IsTruthy(right)}, nil
	default:
		return nil, &UnknownOperatorError{Operator: string(e.Operator.Type)}
	}
}

func (in *Interpreter) evalLogical(e *parser.LogicalExpr) (value.Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}

	if e.Operator.Type == lexer.OR {
		if value.IsTruthy(left) {
			return left, nil
		}
		return in.eval(e.Right)
	}

	// "and"
	if !value.IsTruthy(left) {
		return left, nil
	}
	return in.eval(e.Right)
}

func (in *Interpreter) evalBinary(e *parser.BinaryExpr) (value.Value, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Type {
	case lexer.PLUS:
		return addValues(left, right)
	case lexer.MINUS:
		return arithmetic(left, right, "-", func(l, r float64) float64 { return l - r })
	case lexer.STAR:
		return arithmetic(left, right, "*", func(l, r float64) float64 { return l * r })
	case lexer.SLASH:
		return divide(left, right)
	case lexer.GREATER:
		return compare(left, right, func(l, r float64) bool { return l > r })
	case lexer.GREATER_EQUAL:
		return compare(left, right, func(l, r float64) bool { return l >= r })
	case lexer.LESS:
		return compare(left, right, func(l, r float64) bool { return l < r })
	case lexer.LESS_EQUAL:
		return compare(left, right, func(l, r float64) bool { return l <= r })
	case lexer.EQUAL_EQUAL:
		return value.Boolean{Val: value.Equal(left, right)}, nil
	case lexer.BANG_EQUAL:
		return value.Boolean{Val: !value.Equal(left, right)}, nil
	default:
		return nil, &UnknownOperatorError{Operator: string(e.Operator.Type)}
	}
}

// addValues implements `+`: Number+Number is arithmetic, String+String is
// concatenation, anything else is an ArgumentError naming the offending
// operand's type.
func addValues(left, right value.Value) (value.Value, error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if lok && rok {
		return value.Number{Val: ln.Val + rn.Val}, nil
	}

	ls, lsok := left.(value.String)
	rs, rsok := right.(value.String)
	if lsok && rsok {
		return value.String{Val: ls.Val + rs.Val}, nil
	}

	if lsok && !rsok {
		return nil, &ArgumentError{Message: fmt.Sprintf("Expected string, but got %s", right.Type())}
	}
	if lok && !rok {
		return nil, &ArgumentError{Message: fmt.Sprintf("Expected number, but got %s", right.Type())}
	}
	return nil, &ArgumentError{Message: fmt.Sprintf("Invalid operands for +: %s and %s", left.Type(), right.Type())}
}

// arithmetic implements `-` and `*`: both operands must be Number.
func arithmetic(left, right value.Value, op string, apply func(l, r float64) float64) (value.Value, error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if lok && rok {
		return value.Number{Val: apply(ln.Val, rn.Val)}, nil
	}
	if lok && !rok {
		return nil, &ArgumentError{Message: fmt.Sprintf("Expected number, but got %s", right.String())}
	}
	return nil, &ArgumentError{Message: fmt.Sprintf("Invalid operands for %s: %s and %s", op, left.String(), right.String())}
}

// divide implements `/`: both operands must be Number, and dividing by
// exactly 0.0 (negative zero included) is a ZeroDivisionError rather than
// producing +/-Inf or NaN.
func divide(left, right value.Value) (value.Value, error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok {
		return nil, &ArgumentError{Message: fmt.Sprintf("Invalid operands for /: %s and %s", left.String(), right.String())}
	}
	if !rok {
		return nil, &ArgumentError{Message: fmt.Sprintf("Expected number, but got %s", right.String())}
	}
	if rn.Val == 0 {
		return nil, &ZeroDivisionError{}
	}
	return value.Number{Val: ln.Val / rn.Val}, nil
}

// compare implements `<`, `<=`, `>`, `>=`: defined only on Number pairs.
// Any other pairing returns false rather than erroring (a comparison has no
// natural failure mode the way arithmetic does).
func compare(left, right value.Value, apply func(l, r float64) bool) (value.Value, error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return value.Boolean{Val: false}, nil
	}
	return value.Boolean{Val: apply(ln.Val, rn.Val)}, nil
}
