package resolve

import (
	"strconv"

	"github.com/specialistvlad/fznnorm/internal/fzn"
)

const (
	// DefaultMaxDepth bounds alias and composition chains, cycles included.
	DefaultMaxDepth = 10
	// DefaultValue stands in for anything that cannot be resolved.
	DefaultValue = "0"
	// DefaultMaxArrayLen caps the number of elements a dense array may have.
	DefaultMaxArrayLen = 1 << 20
)

// Declarations is the view of the symbol table the resolver needs.
type Declarations interface {
	Lookup(name string) (fzn.Definition, bool)
	BoundsOf(name string) (fzn.Range, bool)
}

// Assignments is the view of the solver output the resolver needs.
type Assignments interface {
	Lookup(key string) (string, bool)
	Elements(base string) (map[string]string, bool)
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxDepth sets the depth budget. Non-positive values are ignored.
func WithMaxDepth(depth int) Option {
	return func(r *Resolver) {
		if depth > 0 {
			r.maxDepth = depth
		}
	}
}

// WithDefault sets the literal used for unresolvable references and for
// indices missing from a sparse array.
func WithDefault(value string) Option {
	return func(r *Resolver) {
		if value != "" {
			r.defaultValue = value
		}
	}
}

// WithMaxArrayLen caps the length of densified native arrays. Arrays whose
// declared range is longer resolve to the default value. Non-positive values
// are ignored.
func WithMaxArrayLen(n int) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxArrayLen = uint64(n)
		}
	}
}

// Resolver turns variable names into literal values. It only reads the
// tables it was built with and is safe to reuse for any number of names.
type Resolver struct {
	decls        Declarations
	sol          Assignments
	maxDepth     int
	maxArrayLen  uint64
	defaultValue string
}

// New builds a Resolver over the given declarations and solver values.
func New(decls Declarations, sol Assignments, opts ...Option) *Resolver {
	r := &Resolver{
		decls:        decls,
		sol:          sol,
		maxDepth:     DefaultMaxDepth,
		maxArrayLen:  DefaultMaxArrayLen,
		defaultValue: DefaultValue,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the literal text for name.
func (r *Resolver) Resolve(name string) string {
	return r.ResolveValue(name).String()
}

// ResolveValue returns the structured value for name.
func (r *Resolver) ResolveValue(name string) Value {
	return r.resolve(name, r.maxDepth)
}

func (r *Resolver) resolve(name string, budget int) Value {
	if budget <= 0 {
		return scalarValue(r.defaultValue, Exhausted)
	}

	if IsLiteral(name) {
		return scalarValue(name, Literal)
	}

	if v, ok := r.sol.Lookup(name); ok {
		return scalarValue(v, Solver)
	}

	if def, ok := r.decls.Lookup(name); ok {
		switch def.Kind {
		case fzn.Composition:
			elems := make([]string, len(def.Elems))
			for i, ref := range def.Elems {
				elems[i] = r.resolve(ref, budget-1).String()
			}
			return arrayValue(elems, Composed)
		case fzn.Alias:
			return r.resolve(def.Target, budget-1)
		}
	}

	if bounds, ok := r.decls.BoundsOf(name); ok {
		if sparse, ok := r.sol.Elements(name); ok {
			if bounds.Len() > r.maxArrayLen {
				return scalarValue(r.defaultValue, Oversized)
			}
			return arrayValue(r.densify(bounds, sparse), Dense)
		}
	}

	return scalarValue(r.defaultValue, Default)
}

func (r *Resolver) densify(bounds fzn.Range, sparse map[string]string) []string {
	n := int(bounds.Len())
	elems := make([]string, 0, n)
	for k := 0; k < n; k++ {
		v, ok := sparse[strconv.Itoa(bounds.Min+k)]
		if !ok {
			v = r.defaultValue
		}
		elems = append(elems, v)
	}
	return elems
}
