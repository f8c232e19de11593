// Package json adapts JSON document text into [value.Value] trees for the
// façade's validate_string and validate_file operations.
//
// By default, input is preprocessed with [tidwall/jsonc] before decoding, so
// documents may carry "//" and "/* */" comments and trailing commas in
// addition to strict JSON; WithStrictJSON(true) turns this off. Numbers are
// decoded with [encoding/json.Decoder.UseNumber] and classified by
// [value.Classify]: Int when the literal is an integer that fits in int64,
// Float otherwise (decimal point, exponent, or an out-of-range integer).
//
// The adapter never produces an Element-kind value: JSON has no tagged,
// attribute-bearing shape, so a schema whose root is an Element can never
// be satisfied by a document parsed through this adapter.
//
// [tidwall/jsonc]: https://github.com/tidwall/jsonc
package json
