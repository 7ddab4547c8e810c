// Package value defines the runtime values produced by evaluating loxscript
// expressions: numbers, strings, booleans, and nil. Every concrete type
// implements Value, which allows the interpreter to type-switch on the
// result of evaluating any expression without reflection.
package value

import "strconv"

// Type identifies the runtime kind of a Value.
type Type string

const (
	NumberType  Type = "number"
	StringType  Type = "string"
	BooleanType Type = "boolean"
	NilType     Type = "nil"
)

// Value is the interface every runtime value implements. It mirrors the
// dynamically-typed nature of the language: the interpreter carries Values
// around as the interface type and type-switches where the operation cares
// about the concrete kind.
type Value interface {
	// Type reports the runtime kind of the value.
	Type() Type
	// String renders the value the way `print` displays it.
	String() string
}

// Number is a 64-bit floating point runtime value. The language has no
// separate integer type; whole numbers are formatted without a trailing
// fractional part.
type Number struct {
	Val float64
}

func (n Number) Type() Type { return NumberType }

// String formats the number as the shortest representation that round-trips,
// with no trailing ".0" for integral values.
func (n Number) String() string {
	return strconv.FormatFloat(n.Val, 'g', -1, 64)
}

// String is a text runtime value. Strings are immutable once constructed.
type String struct {
	Val string
}

func (s String) Type() Type   { return StringType }
func (s String) String() string { return s.Val }

// Boolean is a true/false runtime value.
type Boolean struct {
	Val bool
}

func (b Boolean) Type() Type { return BooleanType }
func (b Boolean) String() string {
	if b.Val {
		return "true"
	}
	return "false"
}

// Nil is the singleton absent-value runtime value, produced by the `nil`
// literal and by a bare `var` declaration with no initializer.
type Nil struct{}

func (Nil) Type() Type     { return NilType }
func (Nil) String() string { return "nil" }

// Nothing is the shared Nil instance; callers may use it instead of
// constructing a new Nil{} each time.
var Nothing = Nil{}

// IsTruthy reports the truthiness of v: nil and the boolean false are falsy,
// every other value (including the number 0 and the empty string) is truthy.
func IsTruthy(v Value) bool {
	switch vv := v.(type) {
	case Nil:
		return false
	case Boolean:
		return vv.Val
	default:
		return true
	}
}

// Equal reports whether a and b are equal under the language's equality
// rule: values of different runtime types are never equal (no implicit
// coercion), nil equals only nil, and otherwise the underlying Go values are
// compared directly.
func Equal(a, b Value) bool {
	if a.Type() != b.Type() {
		return false
	}
	switch av := a.(type) {
	case Number:
		return av.Val == b.(Number).Val
	case String:
		return av.Val == b.(String).Val
	case Boolean:
		return av.Val == b.(Boolean).Val
	case Nil:
		return true
	default:
		return false
	}
}
