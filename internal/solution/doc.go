// Package solution reads the line-oriented result stream of the solver. Each
// useful line is a `key value` pair; keys of the form `base[index]` are also
// collected per array so that sparse native arrays can be densified later.
package solution
