package schema

// Element matches a value.Element by tag, declared attributes, and
// positional content types. Tag is empty when the schema does not
// constrain the tag (any tag is accepted).
type Element struct {
	named
	tag     string
	attrs   []Field
	content []SchemaType
	open    bool
}

// NewElement constructs a fully initialized Element node; the default
// Open is true, use [Element.Closed] to build a closed variant.
func NewElement(tag string, attrs []Field, content []SchemaType) Element {
	return Element{tag: tag, attrs: attrs, content: content, open: true}
}

// Closed returns a copy of e with Open set to false.
func (e Element) Closed() Element {
	e.open = false
	return e
}

func (Element) schemaType() {}

// Tag returns the expected tag, or "" if any tag is accepted.
func (e Element) Tag() string { return e.tag }

// HasTag reports whether the schema constrains the element's tag.
func (e Element) HasTag() bool { return e.tag != "" }

// Attrs returns the declared attribute fields, in declaration order.
func (e Element) Attrs() []Field { return e.attrs }

// Content returns the declared positional content type sequence.
func (e Element) Content() []SchemaType { return e.content }

// Open reports whether attributes outside the declared set are
// permitted.
func (e Element) Open() bool { return e.open }
