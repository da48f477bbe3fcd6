package fzn

import "sort"

// DefaultOutputMarkers are the annotations that flag a declaration as part of
// the model's output.
var DefaultOutputMarkers = []string{"output_var", "output_array"}

// Stats counts what the parser saw. It is informational only.
type Stats struct {
	Statements   int
	Declarations int
	Skipped      int
	Duplicates   int
}

// Model is the result of parsing a declaration file. It is read-only once
// Parse returns.
type Model struct {
	Symbols SymbolTable
	Outputs map[string]struct{}
	Bounds  map[string]Range
	Stats   Stats
}

// NewModel returns an empty model, ready to be populated.
func NewModel() *Model {
	return &Model{
		Symbols: make(SymbolTable),
		Outputs: make(map[string]struct{}),
		Bounds:  make(map[string]Range),
	}
}

// Lookup returns the definition recorded for name.
func (m *Model) Lookup(name string) (Definition, bool) {
	def, ok := m.Symbols[name]
	return def, ok
}

// BoundsOf returns the declared index range of a native array.
func (m *Model) BoundsOf(name string) (Range, bool) {
	r, ok := m.Bounds[name]
	return r, ok
}

// IsOutput reports whether name carries an output annotation.
func (m *Model) IsOutput(name string) bool {
	_, ok := m.Outputs[name]
	return ok
}

// OutputNames returns the output variables in sorted order.
func (m *Model) OutputNames() []string {
	names := make([]string, 0, len(m.Outputs))
	for name := range m.Outputs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
