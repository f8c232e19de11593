package value

import (
	"encoding/json"
	"fmt"
)

// Classify converts a native Go value — as produced by encoding/json,
// goccy/go-yaml, or hand-built test fixtures — into a [Value] tree.
//
// Recognized inputs: nil, bool, string, the signed/unsigned/float numeric
// kinds, json.Number, []any (classified recursively into a List), and
// map[string]any (classified recursively into a Map). Element-kind values
// have no natural encoding in JSON or YAML and must be constructed
// directly with [NewElement]; Classify never produces one.
//
// Classify panics if it encounters a type it does not recognize — this
// indicates an adapter bug (an unexpected decoder output type), not a
// validation failure, so it is not reported through the diag pipeline.
func Classify(v any) Value {
	switch val := v.(type) {
	case nil:
		return NullValue{}
	case bool:
		return BoolValue(val)
	case string:
		return StringValue(val)
	case json.Number:
		return classifyJSONNumber(val)
	case int:
		return IntValue(val)
	case int8:
		return IntValue(val)
	case int16:
		return IntValue(val)
	case int32:
		return IntValue(val)
	case int64:
		return IntValue(val)
	case uint:
		return IntValue(val)
	case uint8:
		return IntValue(val)
	case uint16:
		return IntValue(val)
	case uint32:
		return IntValue(val)
	case uint64:
		return IntValue(val)
	case float32:
		return FloatValue(val)
	case float64:
		return FloatValue(val)
	case []any:
		items := make([]Value, len(val))
		for i, elem := range val {
			items[i] = Classify(elem)
		}
		return NewList(items)
	case map[string]any:
		entries := make(map[string]Value, len(val))
		for k, elem := range val {
			entries[k] = Classify(elem)
		}
		return NewMap(entries)
	default:
		panic(fmt.Sprintf("value.Classify: unrecognized input type %T", v))
	}
}

// classifyJSONNumber distinguishes Int from Float: attempt an exact
// integer parse first, falling back to float when the literal carries a
// decimal point or exponent, or is an integer outside the int64 range.
func classifyJSONNumber(n json.Number) Value {
	if i, err := n.Int64(); err == nil {
		return IntValue(i)
	}
	f, err := n.Float64()
	if err != nil {
		panic(fmt.Sprintf("value.Classify: json.Number %q is neither int nor float", n.String()))
	}
	return FloatValue(f)
}
