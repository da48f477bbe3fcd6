// Package resolve computes the literal value of a model variable from the
// declaration symbol table and the solver's reported values.
//
// Resolution never fails. Literals resolve to themselves, solver values win
// over declarations, aliases and compositions are followed with a bounded
// depth budget, sparse native arrays are densified over their declared range,
// and anything left over resolves to the default literal "0".
package resolve
