package catalog

import (
	"fmt"
	"math"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/hasbyte1/go-lowdash/validate"
)

// toSlice converts a slice or array of any element type to []any.
func toSlice(v any) []any {
	if s, ok := v.([]any); ok {
		return s
	}
	rv := reflect.ValueOf(v)
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

func seqArg(a validate.Args, name string) []any { return toSlice(a.Get(name)) }

func textArg(a validate.Args, name string) string {
	return reflect.ValueOf(a.Get(name)).String()
}

// intArg reads an argument accepted by validate.Int: an integer of any
// type or an integral float.
func intArg(a validate.Args, name string) int {
	rv := reflect.ValueOf(a.Get(name))
	if rv.CanFloat() {
		return int(rv.Float())
	}
	if rv.CanInt() {
		return int(rv.Int())
	}
	u := rv.Uint()
	if u > math.MaxInt {
		return math.MaxInt
	}
	return int(u)
}

// optInt returns the named int argument, or def when it was not supplied.
func optInt(a validate.Args, name string, def int) int {
	if !a.Has(name) {
		return def
	}
	return intArg(a, name)
}

func predArg(a validate.Args, name string) func(any) bool {
	return a.Get(name).(func(any) bool)
}

func seqs(values []any) [][]any {
	out := make([][]any, len(values))
	for i, v := range values {
		out[i] = toSlice(v)
	}
	return out
}

// key renders v so that two values share a key exactly when they are equal
// by content. Integers and integral floats of any Go type share a key.
func key(v any) string {
	var b strings.Builder
	writeKey(&b, v)
	return b.String()
}

func writeKey(b *strings.Builder, v any) {
	if v == nil {
		b.WriteString("nil")
		return
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		b.WriteString("b:" + strconv.FormatBool(rv.Bool()))
	case reflect.String:
		b.WriteString("s:" + strconv.Quote(rv.String()))
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString("n:" + strconv.FormatInt(rv.Int(), 10))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		b.WriteString("n:" + strconv.FormatUint(rv.Uint(), 10))
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if f == math.Trunc(f) && math.Abs(f) < 1<<63 {
			b.WriteString("n:" + strconv.FormatInt(int64(f), 10))
		} else {
			b.WriteString("n:" + strconv.FormatFloat(f, 'g', -1, 64))
		}
	case reflect.Slice, reflect.Array:
		b.WriteByte('[')
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				b.WriteByte(',')
			}
			writeKey(b, rv.Index(i).Interface())
		}
		b.WriteByte(']')
	case reflect.Map:
		entries := make([]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, key(iter.Key().Interface())+"="+key(iter.Value().Interface()))
		}
		sort.Strings(entries)
		b.WriteString("{" + strings.Join(entries, ",") + "}")
	default:
		fmt.Fprintf(b, "%T:%#v", v, v)
	}
}

// truthy reports whether v is not nil, false, a numeric zero, an empty
// string, or an empty sequence or mapping.
func truthy(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.String, reflect.Slice, reflect.Array, reflect.Map:
		return rv.Len() > 0
	case reflect.Pointer, reflect.Interface, reflect.Func, reflect.Chan:
		return !rv.IsNil()
	}
	return true
}

// pairOf returns the key and value of a two-element sequence whose first
// element can be used as a map key.
func pairOf(v any) (any, any, bool) {
	if !validate.Sequence.Matches(v) {
		return nil, nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Len() != 2 {
		return nil, nil, false
	}
	k := rv.Index(0).Interface()
	if k != nil && !reflect.TypeOf(k).Comparable() {
		return nil, nil, false
	}
	return k, rv.Index(1).Interface(), true
}
