// Package facade is svalid's public entry point (Component F): a
// Create/Destroy handle wrapping a [validate.Validator], schema loading
// from text or file, validation of JSON/YAML text, a document file, or an
// already-parsed [value.Value], and a flat, serialization-friendly Result.
//
// The façade is the only package expected to know about document-input
// adapters ([github.com/lindqvist-dev/svalid/adapter/json],
// [github.com/lindqvist-dev/svalid/adapter/yaml]); the validator core
// never imports them.
package facade
