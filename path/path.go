// Package path implements the structural path model used to locate a value
// within an instance tree for diagnostics.
//
// A Path is an immutable, root-at-tail stack of segments: Field, Index,
// Element, or Attribute. Each push_* method returns a new Path with the
// segment appended; the zero value is the root path, which formats to the
// empty string.
package path

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind discriminates the four segment shapes a Path may carry.
type Kind uint8

const (
	// Field identifies a named key step into a Map.
	Field Kind = iota
	// Index identifies a positional step into a List.
	Index
	// Element identifies a step into a tagged Element value.
	Element
	// Attribute identifies a named attribute step on an Element.
	Attribute
)

func (k Kind) String() string {
	switch k {
	case Field:
		return "field"
	case Index:
		return "index"
	case Element:
		return "element"
	case Attribute:
		return "attribute"
	default:
		return "unknown"
	}
}

// Segment is one step of a Path: a Field/Element/Attribute name, or an
// Index position. Only the field matching Kind is meaningful.
type Segment struct {
	Kind Kind
	Name string
	Pos  int
}

// Path is an immutable sequence of segments from the root of an instance to
// some nested value, used to locate diagnostics.
//
// Path is a value type; the zero value is Root(). Every push_* method
// returns a new Path, leaving the receiver untouched, so a prefix can be
// shared safely across validation branches without aliasing hazards.
type Path struct {
	segments []Segment
}

// Root returns the empty path, representing the top-level instance value.
func Root() Path {
	return Path{}
}

// PushField returns a new Path with a Field segment appended.
func (p Path) PushField(name string) Path {
	return p.append(Segment{Kind: Field, Name: name})
}

// PushIndex returns a new Path with an Index segment appended.
func (p Path) PushIndex(i int) Path {
	return p.append(Segment{Kind: Index, Pos: i})
}

// PushElement returns a new Path with an Element segment appended.
func (p Path) PushElement(tag string) Path {
	return p.append(Segment{Kind: Element, Name: tag})
}

// PushAttribute returns a new Path with an Attribute segment appended.
func (p Path) PushAttribute(name string) Path {
	return p.append(Segment{Kind: Attribute, Name: name})
}

func (p Path) append(seg Segment) Path {
	next := make([]Segment, len(p.segments), len(p.segments)+1)
	copy(next, p.segments)
	next = append(next, seg)
	return Path{segments: next}
}

// IsRoot reports whether the path has no segments.
func (p Path) IsRoot() bool {
	return len(p.segments) == 0
}

// Len returns the number of segments in the path.
func (p Path) Len() int {
	return len(p.segments)
}

// Segments returns a defensive copy of the path's segments, root-to-leaf.
func (p Path) Segments() []Segment {
	out := make([]Segment, len(p.segments))
	copy(out, p.segments)
	return out
}

// Parent returns the path with its last segment removed. The root's parent
// is itself.
func (p Path) Parent() Path {
	if len(p.segments) == 0 {
		return p
	}
	child := make([]Segment, len(p.segments)-1)
	copy(child, p.segments[:len(p.segments)-1])
	return Path{segments: child}
}

// Format renders the path root-to-leaf: ".field[3]@attr<tag>". A null
// (root) path formats to the empty string.
func (p Path) Format() string {
	if len(p.segments) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, seg := range p.segments {
		switch seg.Kind {
		case Field:
			sb.WriteByte('.')
			sb.WriteString(seg.Name)
		case Index:
			sb.WriteByte('[')
			sb.WriteString(strconv.Itoa(seg.Pos))
			sb.WriteByte(']')
		case Attribute:
			sb.WriteByte('@')
			sb.WriteString(seg.Name)
		case Element:
			sb.WriteByte('<')
			sb.WriteString(seg.Name)
			sb.WriteByte('>')
		}
	}
	return sb.String()
}

// String satisfies fmt.Stringer, returning the same text as Format.
func (p Path) String() string {
	return p.Format()
}

// GoString supports %#v debugging output.
func (p Path) GoString() string {
	return fmt.Sprintf("path.Path(%q)", p.Format())
}
