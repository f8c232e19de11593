// Package yaml adapts YAML document text into [value.Value] trees for the
// façade's validate_string and validate_file operations, using
// [github.com/goccy/go-yaml] as its decoder.
//
// Like the JSON adapter, this adapter never produces an Element-kind
// value: YAML's mapping/sequence/scalar shapes have no tagged,
// attribute-bearing form, so a schema whose root is an Element can never
// be satisfied by a document parsed through this adapter.
package yaml
