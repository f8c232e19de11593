// Package parse implements the schema source-text parser: a hand-rolled
// lexer and recursive-descent parser for the type-expression grammar,
// materializing the schema package's tagged-variant type graph and
// installing named `type NAME = expr` bindings into a schema.Registry.
//
// This parser is a direct lexer+parser pair rather than a
// generated-parser frontend (see DESIGN.md): the type-expression
// grammar is small enough, and different enough in shape from a
// full document grammar, that hand-writing it is simpler than
// carrying a parser-generator runtime dependency for it. The
// recursive-descent structure below — one method per grammar
// production, returning (node, error) — keeps each production readable
// in isolation.
package parse
