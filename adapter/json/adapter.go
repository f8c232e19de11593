package json

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/tidwall/jsonc"

	"github.com/lindqvist-dev/svalid/value"
)

// Adapter parses JSON document text into [value.Value] trees.
//
// Adapter is safe for concurrent Parse calls after construction: it holds
// no mutable state beyond its immutable configuration.
type Adapter struct {
	strictJSON bool
}

// Option configures an Adapter.
type Option func(*Adapter)

// NewAdapter creates a JSON adapter with jsonc preprocessing enabled by
// default.
func NewAdapter(opts ...Option) *Adapter {
	a := &Adapter{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// WithStrictJSON disables jsonc preprocessing, so comments and trailing
// commas become parse errors instead of being stripped.
func WithStrictJSON(strict bool) Option {
	return func(a *Adapter) {
		a.strictJSON = strict
	}
}

// Parse decodes data as a single JSON value and classifies it into a
// [value.Value] tree via [value.Classify].
func (a *Adapter) Parse(data []byte) (value.Value, error) {
	processed := data
	if !a.strictJSON {
		processed = jsonc.ToJSON(data)
	}
	if len(bytes.TrimSpace(processed)) == 0 {
		return nil, ErrEmptyDocument
	}

	dec := json.NewDecoder(bytes.NewReader(processed))
	dec.UseNumber()

	var decoded any
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("json adapter: %w", err)
	}
	if dec.More() {
		return nil, ErrTrailingContent
	}

	return value.Classify(decoded), nil
}
