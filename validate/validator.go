package validate

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/lindqvist-dev/svalid/diag"
	"github.com/lindqvist-dev/svalid/location"
	"github.com/lindqvist-dev/svalid/path"
	"github.com/lindqvist-dev/svalid/schema"
	"github.com/lindqvist-dev/svalid/schema/parse"
	"github.com/lindqvist-dev/svalid/value"
)

// ParseFailure is returned by LoadSchema when schema source text fails to
// parse. Its Error() string is the PARSE_ERROR issue
// rendered via diag.Format; Issue exposes the structured form for a
// caller that wants the code/path/message directly instead of parsing
// the message.
type ParseFailure struct {
	Issue diag.Issue
}

func (e *ParseFailure) Error() string {
	return diag.Format(e.Issue)
}

// parseErrorIssue builds the PARSE_ERROR issue for a parse.SyntaxError,
// resolving its byte offset to a line:column location.Span against text
// and rootName (schema sources are always synthetic per the location
// package's design, so rootName alone identifies them). If err is not a
// *parse.SyntaxError, or the source identifier can't be constructed, the
// issue falls back to err's message with no location.
func parseErrorIssue(text, rootName string, err error) diag.Issue {
	message := err.Error()
	var synErr *parse.SyntaxError
	if errors.As(err, &synErr) {
		name := rootName
		if name == "" {
			name = "schema"
		}
		if sourceID, idErr := location.NewSourceID("inline:" + name); idErr == nil {
			line, col := positionAt(text, synErr.Pos)
			span := location.PointWithByte(sourceID, line, col, synErr.Pos)
			message = fmt.Sprintf("%s: %s", span.String(), synErr.Message)
		}
	}
	return diag.NewIssue(diag.SeverityError, diag.ParseError, message).WithPath(path.Root()).Build()
}

// positionAt converts a byte offset into text to a 1-based line and
// column, counting columns in runes per location.Position's contract.
func positionAt(text string, offset int) (line, col int) {
	line, col = 1, 1
	for i, r := range text {
		if i >= offset {
			break
		}
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return line, col
}

// Validator owns a schema registry and a set of registered custom
// validator hooks, and is the entry point for loading schema text and
// validating document values against it.
//
// Validator is not safe for concurrent use: validation is single-
// threaded cooperative, and the registries it owns are not internally
// synchronized. Independent Validator instances never interfere with
// each other.
type Validator struct {
	registry *schema.Registry
	hooks    *HookRegistry
	cfg      *config
}

// NewValidator creates a Validator with an empty schema registry and no
// registered custom validators.
func NewValidator(opts ...Option) *Validator {
	return &Validator{
		registry: schema.NewRegistry(),
		hooks:    NewHookRegistry(),
		cfg:      applyOptions(opts),
	}
}

// SetOptions re-applies opts on top of v's current configuration,
// overwriting any option they set and leaving the rest untouched. It
// backs the façade's set_options(h, opts) ABI call, which reconfigures
// an already-created handle without discarding its loaded schemas or
// registered hooks.
func (v *Validator) SetOptions(opts ...Option) {
	for _, opt := range opts {
		opt(v.cfg)
	}
}

// RegisterCustomValidator installs a custom validator hook, replacing
// any prior hook registered under the same name.
func (v *Validator) RegisterCustomValidator(cv CustomValidator) {
	v.hooks.Register(cv)
}

// UnregisterCustomValidator removes a custom validator hook by name.
func (v *Validator) UnregisterCustomValidator(name string) {
	v.hooks.Unregister(name)
}

// ListCustomValidators returns the registered custom validators, in
// registration order.
func (v *Validator) ListCustomValidators() []CustomValidator {
	return v.hooks.List()
}

// LoadSchema parses text and installs the resulting root SchemaType
// under rootName. Named bindings (`type NAME = expr`) within text are
// installed under their own names as they are parsed, so a binding
// parsed before a later syntax failure remains installed even though
// LoadSchema itself returns an error.
func (v *Validator) LoadSchema(text, rootName string) error {
	root, err := parse.ParseSource(text, v.registry)
	if err != nil {
		failure := &ParseFailure{Issue: parseErrorIssue(text, rootName, err)}
		if v.cfg.logger != nil {
			v.cfg.logger.Debug("schema load failed", slog.String("schema", rootName), slog.String("error", failure.Error()))
		}
		return failure
	}
	v.registry.Set(rootName, root)
	if v.cfg.logger != nil {
		v.cfg.logger.Debug("schema loaded", slog.String("schema", rootName))
	}
	return nil
}

// ValidateDocument looks up schemaName and validates val against it. A
// miss produces a Result with a single REFERENCE_ERROR "schema not
// loaded".
func (v *Validator) ValidateDocument(val value.Value, schemaName string) diag.Result {
	st, ok := v.registry.Get(schemaName)
	if !ok {
		if v.cfg.logger != nil {
			v.cfg.logger.Debug("schema not loaded", slog.String("schema", schemaName))
		}
		return singleError(path.Root(), diag.ReferenceError, fmt.Sprintf("schema %q not loaded", schemaName))
	}
	ctx := NewContext(v.cfg.maxDepth, v.cfg.timeout)
	result := v.ValidateItem(val, st, path.Root(), ctx)
	if v.cfg.strictMode {
		result = result.ElevateWarnings()
	}
	if v.cfg.logger != nil {
		v.cfg.logger.Debug("validation complete",
			slog.String("schema", schemaName),
			slog.Bool("valid", result.Valid()),
			slog.Int("errors", result.ErrorCount()),
			slog.Int("warnings", result.WarningCount()))
	}
	return result
}

// ValidateItem is the single recursive dispatcher: it bumps ctx's depth,
// checks it against the configured max depth and the context's
// deadline, switches on schema's variant to the matching per-shape
// routine, runs every applicable custom validator hook against the
// routine's result, and decrements ctx's depth on the way out.
func (v *Validator) ValidateItem(val value.Value, st schema.SchemaType, pth path.Path, ctx *Context) diag.Result {
	ctx.depth++
	defer func() { ctx.depth-- }()

	if ctx.depth > ctx.maxDepth {
		return singleError(pth, diag.ConstraintViolation, "max depth exceeded")
	}
	if ctx.expired() {
		return singleError(pth, diag.ConstraintViolation, "timeout")
	}

	var result diag.Result
	switch t := st.(type) {
	case schema.Primitive:
		result = v.validatePrimitive(val, t, pth)
	case schema.Literal:
		result = v.validateLiteral(val, t, pth)
	case schema.List:
		result = v.validateList(val, t, pth, ctx)
	case schema.Map:
		result = v.validateMap(val, t, pth, ctx)
	case schema.Element:
		result = v.validateElement(val, t, pth, ctx)
	case schema.Union:
		result = v.validateUnion(val, t, pth, ctx)
	case schema.OccurrenceNode:
		result = v.validateOccurrence(val, t, pth, ctx)
	case schema.Reference:
		result = v.validateReference(val, t, pth, ctx)
	default:
		result = singleError(pth, diag.TypeMismatch, fmt.Sprintf("unsupported schema type %T", st))
	}

	if hooks := v.hooks.applicable(st); len(hooks) > 0 {
		prevPath := ctx.currentPath
		ctx.currentPath = pth
		for _, hook := range hooks {
			result = result.Merge(hook.Fn(val, st, ctx))
		}
		ctx.currentPath = prevPath
	}

	return result
}

func (v *Validator) validatePrimitive(val value.Value, p schema.Primitive, pth path.Path) diag.Result {
	if primitiveAccepts(p.PrimitiveKind(), val.Kind()) {
		return diag.OK()
	}
	return singleErrorExpected(pth, diag.TypeMismatch,
		"value kind does not match expected primitive kind",
		p.PrimitiveKind().String(), val.Kind().String())
}

func primitiveAccepts(expected schema.PrimitiveKind, actual value.Kind) bool {
	switch expected {
	case schema.KindAny:
		return true
	case schema.KindNumber:
		return actual == value.Int || actual == value.Float || actual == value.Decimal
	case schema.KindNull:
		return actual == value.Null
	case schema.KindBool:
		return actual == value.Bool
	case schema.KindInt:
		return actual == value.Int
	case schema.KindFloat:
		return actual == value.Float
	case schema.KindDecimal:
		return actual == value.Decimal
	case schema.KindString:
		return actual == value.String
	default:
		return false
	}
}

func (v *Validator) validateLiteral(val value.Value, lit schema.Literal, pth path.Path) diag.Result {
	if value.Equal(val, lit.Value()) {
		return diag.OK()
	}
	return singleErrorExpected(pth, diag.TypeMismatch, "value does not match literal",
		renderValue(lit.Value()), renderValue(val))
}

func (v *Validator) validateList(val value.Value, lst schema.List, pth path.Path, ctx *Context) diag.Result {
	if val.Kind() != value.List {
		return singleErrorExpected(pth, diag.TypeMismatch, "value kind does not match expected list",
			"List", val.Kind().String())
	}
	lister, ok := val.(value.Lister)
	if !ok {
		return singleErrorExpected(pth, diag.TypeMismatch, "list value does not implement the Lister capability",
			"List", val.Kind().String())
	}

	n := lister.Len()
	result := diag.OK()
	if !lst.OccurrenceBound().Accepts(n) {
		result = result.Merge(singleIssue(diag.NewIssue(diag.SeverityError, diag.OccurrenceError,
			fmt.Sprintf("list length %d does not satisfy occurrence %s", n, lst.OccurrenceBound())).
			WithPath(pth).Build()))
	}
	for i := 0; i < n; i++ {
		restore := ctx.descendIntoValue()
		result = result.Merge(v.ValidateItem(lister.Item(i), lst.Element(), pth.PushIndex(i), ctx))
		restore()
	}
	return result
}

func (v *Validator) validateMap(val value.Value, m schema.Map, pth path.Path, ctx *Context) diag.Result {
	if val.Kind() != value.Map {
		return singleErrorExpected(pth, diag.TypeMismatch, "value kind does not match expected map",
			"Map", val.Kind().String())
	}
	mapper, ok := val.(value.Mapper)
	if !ok {
		return singleErrorExpected(pth, diag.TypeMismatch, "map value does not implement the Mapper capability",
			"Map", val.Kind().String())
	}

	fieldNames := make([]string, len(m.Fields()))
	declared := make(map[string]bool, len(m.Fields()))
	for i, f := range m.Fields() {
		fieldNames[i] = f.Name
		declared[f.Name] = true
	}

	result := diag.OK()
	for _, f := range m.Fields() {
		fv, present := mapper.Get(f.Name)
		if !present {
			if f.Required {
				result = result.Merge(singleError(pth.PushField(f.Name), diag.MissingField,
					fmt.Sprintf("missing required field %q", f.Name)))
			}
			continue
		}
		restore := ctx.descendIntoValue()
		result = result.Merge(v.ValidateItem(fv, f.Type, pth.PushField(f.Name), ctx))
		restore()
	}

	if m.Open() || v.cfg.allowUnknownFields {
		return result
	}
	for _, key := range mapper.Keys() {
		if declared[key] {
			continue
		}
		result = result.Merge(unexpectedFieldResult(pth.PushField(key), key, fieldNames))
	}
	return result
}

func (v *Validator) validateElement(val value.Value, e schema.Element, pth path.Path, ctx *Context) diag.Result {
	if val.Kind() != value.Element {
		return singleErrorExpected(pth, diag.TypeMismatch, "value kind does not match expected element",
			"Element", val.Kind().String())
	}
	elementer, ok := val.(value.Elementer)
	if !ok {
		return singleErrorExpected(pth, diag.TypeMismatch, "element value does not implement the Elementer capability",
			"Element", val.Kind().String())
	}
	if e.HasTag() && elementer.Tag() != e.Tag() {
		return singleIssue(diag.NewIssue(diag.SeverityError, diag.InvalidElement,
			fmt.Sprintf("element tag %q does not match expected tag %q", elementer.Tag(), e.Tag())).
			WithPath(pth).WithDetail(diag.DetailKeyTag, e.Tag()).Build())
	}

	if !v.cfg.allowEmptyElements &&
		(len(e.Attrs()) > 0 || len(e.Content()) > 0) &&
		len(elementer.AttrKeys()) == 0 && elementer.ContentLen() == 0 {
		return singleIssue(diag.NewIssue(diag.SeverityError, diag.InvalidElement,
			"element has no attributes or content, but its schema declares at least one").
			WithPath(pth).Build())
	}

	attrNames := make([]string, len(e.Attrs()))
	declared := make(map[string]bool, len(e.Attrs()))
	for i, a := range e.Attrs() {
		attrNames[i] = a.Name
		declared[a.Name] = true
	}

	result := diag.OK()
	for _, a := range e.Attrs() {
		av, present := elementer.Attr(a.Name)
		if !present {
			if a.Required {
				result = result.Merge(singleError(pth.PushAttribute(a.Name), diag.MissingField,
					fmt.Sprintf("missing required attribute %q", a.Name)))
			}
			continue
		}
		restore := ctx.descendIntoValue()
		result = result.Merge(v.ValidateItem(av, a.Type, pth.PushAttribute(a.Name), ctx))
		restore()
	}
	if !e.Open() && !v.cfg.allowUnknownFields {
		for _, key := range elementer.AttrKeys() {
			if declared[key] {
				continue
			}
			result = result.Merge(unexpectedFieldResult(pth.PushAttribute(key), key, attrNames))
		}
	}

	content := e.Content()
	k := len(content)
	n := elementer.ContentLen()
	limit := k
	if n < limit {
		limit = n
	}
	for i := 0; i < limit; i++ {
		restore := ctx.descendIntoValue()
		result = result.Merge(v.ValidateItem(elementer.ContentItem(i), content[i], pth.PushIndex(i), ctx))
		restore()
	}
	if n > k {
		result = result.Merge(singleIssue(diag.NewIssue(diag.SeverityError, diag.ConstraintViolation,
			fmt.Sprintf("element has %d content items, schema allows %d", n, k)).
			WithPath(pth).WithExpectedGot(strconv.Itoa(k), strconv.Itoa(n)).Build()))
	}
	return result
}

func (v *Validator) validateUnion(val value.Value, u schema.Union, pth path.Path, ctx *Context) diag.Result {
	for _, alt := range u.Alternatives() {
		r := v.ValidateItem(val, alt, pth, ctx)
		if r.Valid() {
			return r
		}
	}
	return singleError(pth, diag.TypeMismatch, "value does not match any alternative in union")
}

func (v *Validator) validateOccurrence(val value.Value, o schema.OccurrenceNode, pth path.Path, ctx *Context) diag.Result {
	switch o.Modifier() {
	case schema.Optional:
		if val.Kind() == value.Null {
			return diag.OK()
		}
		return v.ValidateItem(val, o.Base(), pth, ctx)
	case schema.OneOrMore, schema.ZeroOrMore:
		return v.validateList(val, schema.NewListWithOccurrence(o.Base(), o.Modifier()), pth, ctx)
	default:
		return v.ValidateItem(val, o.Base(), pth, ctx)
	}
}

func (v *Validator) validateReference(val value.Value, r schema.Reference, pth path.Path, ctx *Context) diag.Result {
	target, ok := r.Resolve(v.registry)
	if !ok {
		return singleError(pth, diag.ReferenceError, fmt.Sprintf("unresolved reference %q", r.Target()))
	}
	if !ctx.enterReference(r.Target()) {
		return singleError(pth, diag.CircularReference, fmt.Sprintf("circular reference to %q", r.Target()))
	}
	defer ctx.exitReference(r.Target())
	return v.ValidateItem(val, target, pth, ctx)
}

func singleIssue(issue diag.Issue) diag.Result {
	c := diag.NewCollector()
	c.Collect(issue)
	return c.Result()
}

func singleError(p path.Path, code diag.Code, message string) diag.Result {
	return singleIssue(diag.NewIssue(diag.SeverityError, code, message).WithPath(p).Build())
}

func singleErrorExpected(p path.Path, code diag.Code, message, expected, actual string) diag.Result {
	return singleIssue(diag.NewIssue(diag.SeverityError, code, message).WithPath(p).WithExpectedGot(expected, actual).Build())
}

func unexpectedFieldResult(p path.Path, key string, declaredNames []string) diag.Result {
	b := diag.NewIssue(diag.SeverityError, diag.UnexpectedField, fmt.Sprintf("unexpected field %q", key)).WithPath(p)
	if suggestions := suggestionsFor(key, declaredNames); len(suggestions) > 0 {
		b = b.WithSuggestions(suggestions...)
	}
	return singleIssue(b.Build())
}

// renderValue produces a short human-readable rendering of a value, used
// in TYPE_MISMATCH detail messages. It is not a canonical serialization.
func renderValue(val value.Value) string {
	switch tv := val.(type) {
	case value.NullValue:
		return "null"
	case value.BoolValue:
		return strconv.FormatBool(bool(tv))
	case value.IntValue:
		return tv.String()
	case value.FloatValue:
		return tv.String()
	case value.DecimalValue:
		return string(tv)
	case value.StringValue:
		return tv.String()
	default:
		return val.Kind().String()
	}
}
