package resolve

import (
	"fmt"
	"regexp"
	"strings"
)

// Source records which rule produced a value.
type Source int

const (
	// Exhausted means the depth budget ran out before a value was found.
	Exhausted Source = iota
	// Literal values were numbers or booleans written in place.
	Literal
	// Solver values were reported directly in the solution.
	Solver
	// Composed values were built from an array literal declaration.
	Composed
	// Dense values were rebuilt from sparse solver elements.
	Dense
	// Default means nothing matched the name.
	Default
	// Oversized means the declared array range was too long to densify.
	Oversized
)

// String returns the lowercase name of the source.
func (s Source) String() string {
	switch s {
	case Exhausted:
		return "exhausted"
	case Literal:
		return "literal"
	case Solver:
		return "solver"
	case Composed:
		return "composed"
	case Dense:
		return "dense"
	case Default:
		return "default"
	case Oversized:
		return "oversized"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// Fallback reports whether the value is a stand-in rather than a real one.
func (s Source) Fallback() bool {
	return s == Exhausted || s == Default || s == Oversized
}

// literalRegex matches numeric literals: optional sign, digits with an
// optional decimal point, optional exponent.
var literalRegex = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// IsLiteral reports whether ref is a numeric or boolean literal.
func IsLiteral(ref string) bool {
	return ref == "true" || ref == "false" || literalRegex.MatchString(ref)
}

// Value is a resolved literal: either a scalar or a flat array of literals.
type Value struct {
	scalar string
	elems  []string
	array  bool

	Source Source
}

func scalarValue(text string, src Source) Value {
	return Value{scalar: text, Source: src}
}

func arrayValue(elems []string, src Source) Value {
	return Value{elems: elems, array: true, Source: src}
}

// IsArray reports whether the value is an array literal.
func (v Value) IsArray() bool {
	return v.array
}

// Elems returns the rendered elements of an array value, nil for scalars.
func (v Value) Elems() []string {
	return v.elems
}

// String renders the value as it appears in `name = value;`.
func (v Value) String() string {
	if !v.array {
		return v.scalar
	}
	return "[" + strings.Join(v.elems, ", ") + "]"
}
