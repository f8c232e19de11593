package value

import (
	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/unicode/norm"
)

// Equal reports deep structural equality between two values, used by the
// validator's Literal matching.
//
// The comparison is delegated to go-cmp rather than hand-rolled reflection:
// concrete Value implementations carry unexported fields (MapValue's
// entries, ElementValue's attrs/content), which go-cmp refuses to compare
// by default. [valuesEqual] is registered as a [cmp.Comparer] for the
// Value interface so go-cmp's traversal calls it at every Value-typed
// position instead of reflecting into the unexported struct fields, and
// within it strings and element tags are compared after NFC normalization
// so visually identical text using different Unicode decompositions
// compares equal — matching the normalization svalid already applies to
// source identifiers.
func Equal(a, b Value) bool {
	return cmp.Equal(a, b, cmp.Comparer(valuesEqual))
}

func valuesEqual(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case NullValue:
		return true
	case BoolValue:
		bv, ok := b.(BoolValue)
		return ok && av == bv
	case IntValue:
		bv, ok := b.(IntValue)
		return ok && av == bv
	case FloatValue:
		bv, ok := b.(FloatValue)
		return ok && av == bv
	case DecimalValue:
		bv, ok := b.(DecimalValue)
		return ok && av == bv
	case StringValue:
		bv, ok := b.(StringValue)
		return ok && norm.NFC.String(string(av)) == norm.NFC.String(string(bv))
	}

	switch av := a.(type) {
	case Lister:
		bv, ok := b.(Lister)
		return ok && listsEqual(av, bv)
	case Mapper:
		bv, ok := b.(Mapper)
		return ok && mapsEqual(av, bv)
	case Elementer:
		bv, ok := b.(Elementer)
		return ok && elementsEqual(av, bv)
	}
	return false
}

func listsEqual(a, b Lister) bool {
	if a.Len() != b.Len() {
		return false
	}
	for i := 0; i < a.Len(); i++ {
		if !Equal(a.Item(i), b.Item(i)) {
			return false
		}
	}
	return true
}

func mapsEqual(a, b Mapper) bool {
	if a.Len() != b.Len() {
		return false
	}
	for _, key := range a.Keys() {
		av, _ := a.Get(key)
		bv, ok := b.Get(key)
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

func elementsEqual(a, b Elementer) bool {
	if norm.NFC.String(a.Tag()) != norm.NFC.String(b.Tag()) {
		return false
	}
	if a.ContentLen() != b.ContentLen() {
		return false
	}
	aKeys := a.AttrKeys()
	if len(aKeys) != len(b.AttrKeys()) {
		return false
	}
	for _, key := range aKeys {
		av, _ := a.Attr(key)
		bv, ok := b.Attr(key)
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	for i := 0; i < a.ContentLen(); i++ {
		if !Equal(a.ContentItem(i), b.ContentItem(i)) {
			return false
		}
	}
	return true
}
