// Package validate wraps functions with call-time parameter checks.
//
// A wrapped function declares an ordered list of parameters, each with a
// [Kind]. On every call the arguments are resolved by position first and by
// keyword second, checked against their kinds, and only then handed to the
// body. A rejected call never reaches the body.
//
//	drop := validate.MustWrap("drop", []validate.Param{
//	    {Name: "array", Kind: validate.Sequence},
//	    {Name: "index", Kind: validate.Int},
//	}, func(a validate.Args) (any, error) {
//	    ...
//	})
//
//	_, err := drop.Call([]any{"abc", 1}, nil)
//	// lowdash.drop: parameter "array": expected sequence, got string: validate: type mismatch
//
// Go's static types make this redundant for calls made from Go code. It
// exists for values that arrive untyped, such as decoded JSON.
package validate

import (
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Param declares one parameter of a wrapped function.
type Param struct {
	Name string
	Kind Kind
	// Optional parameters may be left unresolved; the body sees them as
	// absent through [Args.Has].
	Optional bool
	// Variadic marks the last parameter as absorbing every remaining
	// positional argument. Each value is checked against Kind.
	Variadic bool
}

func (p Param) String() string {
	switch {
	case p.Variadic:
		return fmt.Sprintf("%s ...%s", p.Name, p.Kind)
	case p.Optional:
		return fmt.Sprintf("[%s %s]", p.Name, p.Kind)
	default:
		return fmt.Sprintf("%s %s", p.Name, p.Kind)
	}
}

// Args holds the resolved arguments passed to a [Body].
type Args struct {
	values map[string]any
	rest   []any
}

// Get returns the value resolved for name, or nil.
func (a Args) Get(name string) any { return a.values[name] }

// Has reports whether name was resolved.
func (a Args) Has(name string) bool {
	_, ok := a.values[name]
	return ok
}

// Rest returns the values of the variadic parameter.
func (a Args) Rest() []any { return a.rest }

// Body is the function run once every argument has been checked.
type Body func(Args) (any, error)

// Func is a named function guarded by parameter checks.
type Func struct {
	name   string
	params []Param
	body   Body
}

// Wrap returns a Func calling body after validating against params.
// It fails with [ErrInvalidSignature] when name or a parameter name is empty,
// a parameter name repeats, a variadic parameter is not last, or body is nil.
func Wrap(name string, params []Param, body Body) (*Func, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty function name", ErrInvalidSignature)
	}
	if body == nil {
		return nil, newErr(name, "", ErrInvalidSignature, "nil body")
	}
	seen := make(map[string]struct{}, len(params))
	for i, p := range params {
		if p.Name == "" {
			return nil, newErr(name, "", ErrInvalidSignature, "parameter %d has no name", i)
		}
		if _, dup := seen[p.Name]; dup {
			return nil, newErr(name, p.Name, ErrInvalidSignature, "declared twice")
		}
		if p.Variadic && i != len(params)-1 {
			return nil, newErr(name, p.Name, ErrInvalidSignature, "variadic parameter must be last")
		}
		seen[p.Name] = struct{}{}
	}
	out := make([]Param, len(params))
	copy(out, params)
	return &Func{name: name, params: out, body: body}, nil
}

// MustWrap is like [Wrap] but panics on a malformed declaration.
func MustWrap(name string, params []Param, body Body) *Func {
	fn, err := Wrap(name, params, body)
	if err != nil {
		panic(err)
	}
	return fn
}

// Name returns the function name used in error messages.
func (f *Func) Name() string { return f.name }

// Params returns a copy of the declared parameters.
func (f *Func) Params() []Param {
	out := make([]Param, len(f.params))
	copy(out, f.params)
	return out
}

// Signature renders the declaration, e.g. "take(array sequence, [n int])".
func (f *Func) Signature() string {
	parts := make([]string, len(f.params))
	for i, p := range f.params {
		parts[i] = p.String()
	}
	return f.name + "(" + strings.Join(parts, ", ") + ")"
}

// Call validates args and kwargs and runs the body.
//
// Each parameter is resolved from args[i] when present, else from
// kwargs[name]. The call fails before the body runs when a required
// parameter is unresolved ([ErrMissingArgument]), a value has the wrong kind
// ([ErrTypeMismatch]), or the arguments do not fit the declaration
// ([ErrInvalidArgument]).
func (f *Func) Call(args []any, kwargs map[string]any) (any, error) {
	if err := f.checkShape(args, kwargs); err != nil {
		return nil, err
	}
	resolved := Args{values: make(map[string]any, len(f.params))}
	for i, p := range f.params {
		kw, byKeyword := kwargs[p.Name]
		byPosition := i < len(args)
		if byPosition && byKeyword {
			return nil, newErr(f.name, p.Name, ErrInvalidArgument, "given by position and by keyword")
		}

		if p.Variadic {
			rest, err := f.variadic(p, args, i, kw, byKeyword)
			if err != nil {
				return nil, err
			}
			resolved.rest = rest
			resolved.values[p.Name] = rest
			continue
		}

		var v any
		switch {
		case byPosition:
			v = args[i]
		case byKeyword:
			v = kw
		case p.Optional:
			continue
		default:
			return nil, newErr(f.name, p.Name, ErrMissingArgument, "no value by position or keyword")
		}
		if !p.Kind.Matches(v) {
			return nil, newErr(f.name, p.Name, ErrTypeMismatch, "expected %s, got %s", p.Kind, typeName(v))
		}
		resolved.values[p.Name] = v
	}
	return f.body(resolved)
}

func (f *Func) checkShape(args []any, kwargs map[string]any) error {
	variadic := len(f.params) > 0 && f.params[len(f.params)-1].Variadic
	if !variadic && len(args) > len(f.params) {
		return newErr(f.name, "", ErrInvalidArgument, "%d positional arguments given, at most %d accepted", len(args), len(f.params))
	}
	unknown := make([]string, 0)
	for name := range kwargs {
		if !f.declares(name) {
			unknown = append(unknown, name)
		}
	}
	if len(unknown) > 0 {
		sort.Strings(unknown)
		return newErr(f.name, unknown[0], ErrInvalidArgument, "unknown keyword")
	}
	return nil
}

func (f *Func) variadic(p Param, args []any, i int, kw any, byKeyword bool) ([]any, error) {
	rest := []any{}
	switch {
	case i < len(args):
		rest = append(rest, args[i:]...)
	case byKeyword:
		if !Sequence.Matches(kw) {
			return nil, newErr(f.name, p.Name, ErrTypeMismatch, "expected sequence of %s, got %s", p.Kind, typeName(kw))
		}
		rv := reflect.ValueOf(kw)
		for j := 0; j < rv.Len(); j++ {
			rest = append(rest, rv.Index(j).Interface())
		}
	}
	for j, v := range rest {
		if !p.Kind.Matches(v) {
			return nil, newErr(f.name, p.Name, ErrTypeMismatch, "element %d: expected %s, got %s", j, p.Kind, typeName(v))
		}
	}
	return rest, nil
}

func (f *Func) declares(name string) bool {
	for _, p := range f.params {
		if p.Name == name {
			return true
		}
	}
	return false
}
