package validate

import (
	"math"
	"reflect"
)

// Kind is the semantic type declared for a parameter.
type Kind int

const (
	// Any accepts every value, nil included.
	Any Kind = iota
	// Sequence accepts any slice or array. Strings are not sequences.
	Sequence
	// Text accepts a string.
	Text
	// Int accepts any signed or unsigned integer type, and floats holding an
	// integral value within int64 range, as decoded JSON numbers are.
	Int
	// Number accepts any integer or floating-point type.
	Number
	// Bool accepts a bool.
	Bool
	// Predicate accepts a func(any) bool.
	Predicate
	// Transform accepts a func(any) any.
	Transform
	// Mapping accepts any map.
	Mapping
)

var kindNames = [...]string{
	Any:       "any",
	Sequence:  "sequence",
	Text:      "text",
	Int:       "int",
	Number:    "number",
	Bool:      "bool",
	Predicate: "predicate",
	Transform: "transform",
	Mapping:   "mapping",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Matches reports whether v is an instance of k.
func (k Kind) Matches(v any) bool {
	if k == Any {
		return true
	}
	if v == nil {
		return false
	}
	switch k {
	case Predicate:
		_, ok := v.(func(any) bool)
		return ok
	case Transform:
		_, ok := v.(func(any) any)
		return ok
	}
	rk := reflect.TypeOf(v).Kind()
	switch k {
	case Sequence:
		return rk == reflect.Slice || rk == reflect.Array
	case Text:
		return rk == reflect.String
	case Int:
		return isInt(rk) || isIntegralFloat(reflect.ValueOf(v))
	case Number:
		return isInt(rk) || rk == reflect.Float32 || rk == reflect.Float64
	case Bool:
		return rk == reflect.Bool
	case Mapping:
		return rk == reflect.Map
	}
	return false
}

func isInt(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return true
	}
	return false
}

// isIntegralFloat reports whether rv is a float with no fractional part that
// fits in an int64.
func isIntegralFloat(rv reflect.Value) bool {
	if !rv.CanFloat() {
		return false
	}
	f := rv.Float()
	return f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64
}

// typeName describes v for error messages.
func typeName(v any) string {
	if v == nil {
		return "nil"
	}
	return reflect.TypeOf(v).String()
}
