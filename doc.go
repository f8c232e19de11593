// Package svalid implements a structural schema validator for a small,
// document-shaped value model: primitives, lists, maps, tagged elements,
// unions, occurrence-qualified types, and named references.
//
// A schema is written in svalid's own type-expression grammar and parsed
// into a graph of schema.SchemaType variants; a document value (native Go
// data, or JSON/YAML text run through an adapter) is validated against a
// named schema by recursively matching its shape and accumulating
// diagnostics rather than failing fast.
//
// # Architecture
//
//	Foundation tier (no internal dependencies):
//	  - path: document path segments for locating a diagnostic
//	  - diag: structured diagnostics — severities, codes, issues, results
//	  - location: source positions and spans, used to locate schema
//	    PARSE_ERROR diagnostics
//	  - value: the opaque document-value model (Kind plus the Lister/
//	    Mapper/Elementer capability interfaces)
//
//	Core tier:
//	  - schema: the schema type graph (Primitive, Literal, List, Map,
//	    Element, Union, Occurrence, Reference) and its name registry
//	  - schema/parse: the lexer and recursive-descent parser for schema
//	    source text
//	  - validate: the recursive dispatcher and per-shape validation
//	    algorithms, plus the custom validator hook registry
//
//	Outer tier:
//	  - facade: the public Create/Destroy entry point, wrapping a
//	    validate.Validator with a flat Result type and functional options
//	  - adapter/json, adapter/yaml: document-input adapters that turn
//	    JSON or YAML text into value.Value trees; only the façade and
//	    callers import these, never the core packages
//
// # Entry point
//
//	import "github.com/lindqvist-dev/svalid/facade"
//
//	h := facade.Create(facade.WithStrictMode(true))
//	defer h.Destroy()
//
//	if err := h.LoadSchemaString(`{ name: string, age: int }`, "Person"); err != nil {
//	    // schema failed to parse
//	}
//
//	result, err := h.ValidateString(`{"name": "Ada", "age": 36}`, "Person")
//	if err != nil {
//	    // document failed to parse
//	}
//	if !result.Valid {
//	    for _, e := range result.Errors {
//	        fmt.Println(e)
//	    }
//	}
package svalid
