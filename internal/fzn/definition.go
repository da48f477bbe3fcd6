package fzn

import (
	"fmt"
	"math"
	"strings"
)

// Kind tags the variant held by a Definition.
type Kind int

const (
	// Native variables have no right-hand side; the solver reports them.
	Native Kind = iota
	// Alias variables are bound to a single reference or literal.
	Alias
	// Composition variables are bound to a flat array literal of references.
	Composition
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case Native:
		return "native"
	case Alias:
		return "alias"
	case Composition:
		return "composition"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Definition is the right-hand side recorded for one declared name. Target is
// set for Alias, Elems for Composition; both are empty for Native.
type Definition struct {
	Kind   Kind
	Target string
	Elems  []string
}

// NativeDef returns the definition of a solver-reported variable.
func NativeDef() Definition {
	return Definition{Kind: Native}
}

// AliasOf returns an Alias definition bound to target.
func AliasOf(target string) Definition {
	return Definition{Kind: Alias, Target: target}
}

// ComposedOf returns a Composition definition over the given references.
func ComposedOf(elems ...string) Definition {
	if elems == nil {
		elems = []string{}
	}
	return Definition{Kind: Composition, Elems: elems}
}

// String renders the definition the way it appeared on the right-hand side.
func (d Definition) String() string {
	switch d.Kind {
	case Alias:
		return d.Target
	case Composition:
		return "[" + strings.Join(d.Elems, ", ") + "]"
	default:
		return ""
	}
}

// Range is an inclusive integer index range, e.g. `1..3`.
type Range struct {
	Min int
	Max int
}

// Len returns the number of indices covered by the range. The full int range
// does not fit in a uint64 and saturates at math.MaxUint64.
func (r Range) Len() uint64 {
	if r.Max < r.Min {
		return 0
	}
	span := uint64(r.Max) - uint64(r.Min)
	if span == math.MaxUint64 {
		return span
	}
	return span + 1
}

// String serializes the range in its `min..max` form.
func (r Range) String() string {
	return fmt.Sprintf("%d..%d", r.Min, r.Max)
}

// SymbolTable maps each declared name to its definition.
type SymbolTable map[string]Definition
