// internal/fzn/doc.go

/*
Package fzn reads the variable declarations of a FlatZinc model and builds the
symbol table the resolver works from.

A statement is anything terminated by `;`. Only declarations are kept:

	array [1..3] of var int: x :: output_array([1..3]);
	var 0..9: a;
	var int: b :: output_var = a;
	array [1..2] of var int: y :: output_array([1..2]) = [a, 4];

Each declared name maps to a Definition: Native when there is no right-hand
side, Alias for a single reference or literal, Composition for a flat array
literal. Right-hand sides are stored verbatim and only interpreted when a
value is resolved.

Constraints, solve items and predicate declarations are skipped, as is any
statement whose declared name is not a plain identifier.
*/
package fzn
