// Package schema implements the tagged-variant schema type model:
// Primitive, Literal, List, Map, Element, Union, Occurrence, and
// Reference nodes, plus a flat name registry used to resolve named
// references during validation.
//
// SchemaType is a closed interface — only the variants defined in this
// package may implement it — using an unexported marker method so no
// outside package can add a variant. Factory constructors (NewPrimitive,
// NewList, ...) always return a fully initialized node; there is no
// exported way to construct a partially built variant.
//
// The schema graph is a plain, garbage-collected value graph: nodes are
// never deep-copied and may legitimately contain Reference cycles
// (resolved lazily, and only made cycle-safe at traversal time by the
// validate package, not here — see [Reference.Resolve]).
package schema
