package value

import "strconv"

// NullValue is the single Null-kind value.
type NullValue struct{}

func (NullValue) Kind() Kind { return Null }

// Nil is the canonical Null value.
var Nil Value = NullValue{}

// BoolValue wraps a native bool.
type BoolValue bool

func (BoolValue) Kind() Kind { return Bool }

// IntValue wraps a native 64-bit integer.
type IntValue int64

func (IntValue) Kind() Kind { return Int }

// FloatValue wraps a native 64-bit float.
type FloatValue float64

func (FloatValue) Kind() Kind { return Float }

// DecimalValue carries an exact decimal literal as text, avoiding the
// precision loss of float64 for arbitrary-precision decimal schemas.
type DecimalValue string

func (DecimalValue) Kind() Kind { return Decimal }

// StringValue wraps a native string.
type StringValue string

func (StringValue) Kind() Kind { return String }

func (v StringValue) String() string { return string(v) }

func (v IntValue) String() string { return strconv.FormatInt(int64(v), 10) }

func (v FloatValue) String() string { return strconv.FormatFloat(float64(v), 'g', -1, 64) }
