// Package parser implements the reference textual front end: a small
// s-expression-flavored grammar for scalar field expressions, e.g.
// `(min (sub x 0.3) (add y 0.1))`. Parse builds an expr.Graph (Stage0)
// directly from the parsed AST; it is one concrete way to produce
// Stage0, not the only one.
package parser
