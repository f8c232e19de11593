package yaml

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"

	"github.com/lindqvist-dev/svalid/value"
)

// Adapter parses YAML document text into [value.Value] trees.
//
// Adapter is safe for concurrent Parse calls after construction: it holds
// no mutable state.
type Adapter struct{}

// NewAdapter creates a YAML adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Parse decodes data as a single YAML document and classifies it into a
// [value.Value] tree via [value.Classify].
//
// A document containing more than one YAML document (separated by "---")
// is rejected: the façade's validate_string/validate_file operate on one
// document at a time.
func (a *Adapter) Parse(data []byte) (value.Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyDocument
	}

	var decoded any
	dec := yaml.NewDecoder(bytes.NewReader(data))
	if err := dec.Decode(&decoded); err != nil {
		return nil, fmt.Errorf("yaml adapter: %w", err)
	}
	if decoded == nil {
		return nil, ErrEmptyDocument
	}

	var trailing any
	if err := dec.Decode(&trailing); err == nil {
		return nil, fmt.Errorf("yaml adapter: document contains more than one YAML document")
	}

	return value.Classify(decoded), nil
}
