package facade

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsonadapter "github.com/lindqvist-dev/svalid/adapter/json"
	yamladapter "github.com/lindqvist-dev/svalid/adapter/yaml"
	"github.com/lindqvist-dev/svalid/validate"
	"github.com/lindqvist-dev/svalid/value"
)

// Handle is svalid's public entry point, created by [Create] and released
// by [Handle.Destroy]. It owns a [validate.Validator] and the document
// adapters used by the file/string validate operations.
type Handle struct {
	v    *validate.Validator
	json *jsonadapter.Adapter
	yaml *yamladapter.Adapter
}

// Create returns a new Handle configured by opts. It backs the façade's
// create() ABI operation.
func Create(opts ...Option) *Handle {
	s := applySettings(opts)
	return &Handle{
		v:    validate.NewValidator(s.validatorOpts...),
		json: jsonadapter.NewAdapter(),
		yaml: yamladapter.NewAdapter(),
	}
}

// Destroy releases h. It is a no-op in Go — the garbage collector owns
// everything a Handle references — and exists so a caller porting the
// façade's destroy(h) ABI operation has a symmetrical call to make.
func (h *Handle) Destroy() {}

// SetOptions reconfigures h in place, backing the façade's
// set_options(h, opts) ABI operation. Loaded schemas and registered
// custom validators are unaffected.
func (h *Handle) SetOptions(opts ...Option) {
	s := applySettings(opts)
	h.v.SetOptions(s.validatorOpts...)
}

// RegisterCustomValidator installs a custom validator hook under h,
// replacing any prior hook registered under the same name.
func (h *Handle) RegisterCustomValidator(cv validate.CustomValidator) {
	h.v.RegisterCustomValidator(cv)
}

// ListCustomValidators returns the custom validators registered under h,
// in registration order. This is a supplemented introspection operation,
// not part of narrow façade table.
func (h *Handle) ListCustomValidators() []validate.CustomValidator {
	return h.v.ListCustomValidators()
}

// LoadSchemaString parses src and installs it under schemaName. It backs
// the façade's load_schema_string(h, src, name) ABI operation.
func (h *Handle) LoadSchemaString(src, schemaName string) error {
	return h.v.LoadSchema(src, schemaName)
}

// LoadSchemaFile reads path and installs its contents under the schema
// name derived from path's filename stem (the base name with its
// extension removed). It backs the façade's load_schema_file(h, path) ABI
// operation.
func (h *Handle) LoadSchemaFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("facade: reading schema file: %w", err)
	}
	return h.v.LoadSchema(string(data), schemaStem(path))
}

// ValidateString parses docSrc as JSONC-tolerant JSON and validates it
// against schemaName. It backs the façade's
// validate_string(h, doc_src, schema_name) ABI operation.
func (h *Handle) ValidateString(docSrc, schemaName string) (Result, error) {
	val, err := h.json.Parse([]byte(docSrc))
	if err != nil {
		return Result{}, fmt.Errorf("facade: parsing document: %w", err)
	}
	return newResult(h.v.ValidateDocument(val, schemaName)), nil
}

// ValidateFile parses docPath and validates it against schemaName. It
// backs the façade's validate_file(h, doc_path, schema_name) ABI
// operation. The document format is selected by docPath's extension
// (.json/.jsonc for JSON, .yaml/.yml for YAML); any other extension is
// treated as JSON.
func (h *Handle) ValidateFile(docPath, schemaName string) (Result, error) {
	data, err := os.ReadFile(docPath)
	if err != nil {
		return Result{}, fmt.Errorf("facade: reading document file: %w", err)
	}

	var val value.Value
	switch strings.ToLower(filepath.Ext(docPath)) {
	case ".yaml", ".yml":
		val, err = h.yaml.Parse(data)
	default:
		val, err = h.json.Parse(data)
	}
	if err != nil {
		return Result{}, fmt.Errorf("facade: parsing document: %w", err)
	}
	return newResult(h.v.ValidateDocument(val, schemaName)), nil
}

// ValidateValue validates an already-parsed value.Value against
// schemaName. This is the format-agnostic entry point a caller uses after
// parsing a document with any adapter (including one not built into the
// façade); ValidateString and ValidateFile are conveniences built on top
// of it.
func (h *Handle) ValidateValue(val value.Value, schemaName string) Result {
	return newResult(h.v.ValidateDocument(val, schemaName))
}

func schemaStem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
