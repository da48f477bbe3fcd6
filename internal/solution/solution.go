package solution

// DefaultReservedKeys are solver bookkeeping keys that never name a variable.
var DefaultReservedKeys = []string{"objective", "no", "["}

// Solution holds the values reported by the solver, verbatim.
type Solution struct {
	// Values maps each raw key (`x`, `x[3]`) to its literal text.
	Values map[string]string
	// Arrays maps an array base name to its reported index -> value pairs.
	Arrays map[string]map[string]string

	Objective    string
	HasObjective bool

	Lines   int
	Skipped int
}

// New returns an empty solution.
func New() *Solution {
	return &Solution{
		Values: make(map[string]string),
		Arrays: make(map[string]map[string]string),
	}
}

// Lookup returns the value reported for key.
func (s *Solution) Lookup(key string) (string, bool) {
	v, ok := s.Values[key]
	return v, ok
}

// Elements returns the sparse elements reported for an array base name. It
// reports false when the solver emitted no element of that array.
func (s *Solution) Elements(base string) (map[string]string, bool) {
	elems, ok := s.Arrays[base]
	if !ok || len(elems) == 0 {
		return nil, false
	}
	return elems, true
}

func (s *Solution) set(key, value string) {
	s.Values[key] = value
	if base, index, ok := splitElementKey(key); ok {
		elems, exists := s.Arrays[base]
		if !exists {
			elems = make(map[string]string)
			s.Arrays[base] = elems
		}
		elems[index] = value
	}
}
