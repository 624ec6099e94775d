// Package catalog exposes the arr and text helpers by name for callers
// holding untyped values, such as decoded JSON.
//
// Every function is a [validate.Func], so arguments are checked against the
// declared parameter kinds before anything runs:
//
//	out, err := catalog.Call("chunks", []any{[]any{1, 2, 3}, 2}, nil)
//	// out: [][]any{{1, 2}, {3}}
//
//	_, err = catalog.Call("chunks", []any{"abc", 2}, nil)
//	// errors.Is(err, validate.ErrTypeMismatch)
//
// Functions are registered under snake_case names
// (find_last_index, from_pairs, proper_case, ...). Elements are compared by
// content: 1 and 1.0 are equal, as are two slices with equal elements.
//
// # Custom functions
//
// Register adds or replaces a function at runtime, in the package-level
// registry or in one built with [New]:
//
//	catalog.Register(validate.MustWrap("double", []validate.Param{
//	    {Name: "n", Kind: validate.Int},
//	}, func(a validate.Args) (any, error) {
//	    return a.Get("n").(int) * 2, nil
//	}))
package catalog
