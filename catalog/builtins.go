package catalog

import (
	"github.com/hasbyte1/go-lowdash/arr"
	"github.com/hasbyte1/go-lowdash/text"
	"github.com/hasbyte1/go-lowdash/validate"
)

type params = []validate.Param

var (
	pArray  = validate.Param{Name: "array", Kind: validate.Sequence}
	pOthers = validate.Param{Name: "others", Kind: validate.Sequence, Variadic: true}
	pValues = validate.Param{Name: "values", Kind: validate.Any, Variadic: true}
	pValue  = validate.Param{Name: "value", Kind: validate.Any}
	pIndex  = validate.Param{Name: "index", Kind: validate.Int}
	pPred   = validate.Param{Name: "fn", Kind: validate.Predicate}
	pStart  = validate.Param{Name: "start", Kind: validate.Int, Optional: true}
	pEnd    = validate.Param{Name: "end", Kind: validate.Int, Optional: true}
	pSize   = validate.Param{Name: "size", Kind: validate.Int}
	pString = validate.Param{Name: "string", Kind: validate.Text}
)

// arrayFunc wraps an operation that takes only the array.
func arrayFunc(name string, fn func([]any) any) *validate.Func {
	return validate.MustWrap(name, params{pArray}, func(a validate.Args) (any, error) {
		return fn(seqArg(a, "array")), nil
	})
}

// textFunc wraps an operation that takes only the string.
func textFunc(name string, fn func(string) string) *validate.Func {
	return validate.MustWrap(name, params{pString}, func(a validate.Args) (any, error) {
		return fn(textArg(a, "string")), nil
	})
}

// setFunc wraps a set operation over the array and every other sequence.
func setFunc(name string, fn func([]any, func(any) string, ...[]any) []any) *validate.Func {
	return validate.MustWrap(name, params{pArray, pOthers}, func(a validate.Args) (any, error) {
		return fn(seqArg(a, "array"), key, seqs(a.Rest())...), nil
	})
}

// withoutFunc wraps pull and without.
func withoutFunc(name string) *validate.Func {
	return validate.MustWrap(name, params{pArray, pValues}, func(a validate.Args) (any, error) {
		return arr.WithoutBy(seqArg(a, "array"), key, a.Rest()...), nil
	})
}

// headFunc wraps head and last, which yield nil for an empty array.
func headFunc(name string, fn func([]any) (any, bool)) *validate.Func {
	return validate.MustWrap(name, params{pArray}, func(a validate.Args) (any, error) {
		v, _ := fn(seqArg(a, "array"))
		return v, nil
	})
}

func (r *Registry) builtins() []*validate.Func {
	return []*validate.Func{
		arrayFunc("compact", func(items []any) any { return arr.Filter(items, truthy) }),
		arrayFunc("flatten", func(items []any) any { return arr.Flatten(items) }),
		arrayFunc("initial", func(items []any) any { return arr.Initial(items) }),
		arrayFunc("reverse", func(items []any) any { return arr.Reverse(items) }),
		arrayFunc("shift", func(items []any) any { return arr.Shift(items) }),
		arrayFunc("shuffle", func(items []any) any { return r.shuffle(items) }),
		arrayFunc("tail", func(items []any) any { return arr.Tail(items) }),
		arrayFunc("uniq", func(items []any) any { return arr.UniqBy(items, key) }),

		headFunc("head", arr.Head[any]),
		headFunc("last", arr.Last[any]),

		setFunc("intersection", arr.IntersectionBy[any, string]),
		setFunc("union", arr.UnionBy[any, string]),
		setFunc("xor", arr.XorBy[any, string]),

		withoutFunc("pull"),
		withoutFunc("without"),

		validate.MustWrap("concat", params{pArray, pValues}, func(a validate.Args) (any, error) {
			return arr.Concat(seqArg(a, "array"), arr.Flatten(a.Rest())), nil
		}),
		validate.MustWrap("difference", params{pArray, pValues}, func(a validate.Args) (any, error) {
			return arr.DifferenceBy(seqArg(a, "array"), key, arr.Flatten(a.Rest())), nil
		}),
		validate.MustWrap("unshift", params{pArray, pValues}, func(a validate.Args) (any, error) {
			return arr.Unshift(seqArg(a, "array"), a.Rest()...), nil
		}),
		validate.MustWrap("zip", params{pArray, pOthers}, func(a validate.Args) (any, error) {
			return arr.Zip(seqArg(a, "array"), seqs(a.Rest())...), nil
		}),

		validate.MustWrap("drop", params{pArray, pIndex}, func(a validate.Args) (any, error) {
			return arr.Drop(seqArg(a, "array"), intArg(a, "index"))
		}),
		validate.MustWrap("drop_right", params{pArray, pIndex}, func(a validate.Args) (any, error) {
			return arr.DropRight(seqArg(a, "array"), intArg(a, "index"))
		}),
		validate.MustWrap("nth", params{pArray, pIndex}, func(a validate.Args) (any, error) {
			return arr.Nth(seqArg(a, "array"), intArg(a, "index"))
		}),
		validate.MustWrap("insert", params{pArray, pIndex, pValue}, func(a validate.Args) (any, error) {
			return arr.Insert(seqArg(a, "array"), intArg(a, "index"), a.Get("value"))
		}),
		validate.MustWrap("skip", params{pArray, {Name: "n", Kind: validate.Int}}, func(a validate.Args) (any, error) {
			return arr.Skip(seqArg(a, "array"), intArg(a, "n")), nil
		}),
		validate.MustWrap("take", params{pArray, {Name: "n", Kind: validate.Int, Optional: true}}, func(a validate.Args) (any, error) {
			return arr.Take(seqArg(a, "array"), optInt(a, "n", 1)), nil
		}),
		validate.MustWrap("chunks", params{pArray, pSize}, func(a validate.Args) (any, error) {
			return arr.Chunk(seqArg(a, "array"), intArg(a, "size"))
		}),

		validate.MustWrap("slice", params{pArray, pStart, pEnd}, func(a validate.Args) (any, error) {
			items := seqArg(a, "array")
			return arr.Slice(items, optInt(a, "start", 0), optInt(a, "end", len(items)))
		}),
		validate.MustWrap("fill", params{pArray, pValue, pStart, pEnd}, func(a validate.Args) (any, error) {
			items := seqArg(a, "array")
			return arr.Fill(items, a.Get("value"), optInt(a, "start", 0), optInt(a, "end", len(items)))
		}),

		validate.MustWrap("find_index", params{pArray, pPred}, func(a validate.Args) (any, error) {
			return arr.FindIndex(seqArg(a, "array"), predArg(a, "fn")), nil
		}),
		validate.MustWrap("find_last_index", params{pArray, pPred}, func(a validate.Args) (any, error) {
			return arr.FindLastIndex(seqArg(a, "array"), predArg(a, "fn")), nil
		}),
		validate.MustWrap("filter", params{pArray, pPred}, func(a validate.Args) (any, error) {
			return arr.Filter(seqArg(a, "array"), predArg(a, "fn")), nil
		}),
		validate.MustWrap("remove", params{pArray, pPred}, func(a validate.Args) (any, error) {
			return arr.Remove(seqArg(a, "array"), predArg(a, "fn")), nil
		}),
		validate.MustWrap("map", params{pArray, {Name: "fn", Kind: validate.Transform}}, func(a validate.Args) (any, error) {
			return arr.Map(seqArg(a, "array"), a.Get("fn").(func(any) any)), nil
		}),

		validate.MustWrap("index_of", params{pArray, pValue}, func(a validate.Args) (any, error) {
			want := key(a.Get("value"))
			return arr.FindIndex(seqArg(a, "array"), func(v any) bool { return key(v) == want }), nil
		}),
		validate.MustWrap("join", params{pArray, {Name: "delimiter", Kind: validate.Text}}, func(a validate.Args) (any, error) {
			return arr.Join(seqArg(a, "array"), textArg(a, "delimiter")), nil
		}),
		validate.MustWrap("from_pairs", params{pArray}, func(a validate.Args) (any, error) {
			out := make(map[any]any)
			// content-equal keys share the first raw key seen
			firstKeys := make(map[string]any)
			for _, item := range seqArg(a, "array") {
				k, v, ok := pairOf(item)
				if !ok {
					continue
				}
				raw, seen := firstKeys[key(k)]
				if !seen {
					raw = k
					firstKeys[key(k)] = k
				}
				out[raw] = v
			}
			return out, nil
		}),

		textFunc("upper", text.Upper),
		textFunc("lower", text.Lower),
		textFunc("mock", text.Mock),
		textFunc("proper_case", text.ProperCase),
		textFunc("scramble", r.scramble),

		validate.MustWrap("substr", params{pString, {Name: "start", Kind: validate.Int}, {Name: "end", Kind: validate.Int}}, func(a validate.Args) (any, error) {
			return text.Substr(textArg(a, "string"), intArg(a, "start"), intArg(a, "end"))
		}),
		validate.MustWrap("shorten", params{pString, {Name: "length", Kind: validate.Int}, {Name: "sep", Kind: validate.Text, Optional: true}}, func(a validate.Args) (any, error) {
			sep := text.DefaultSeparator
			if a.Has("sep") {
				sep = textArg(a, "sep")
			}
			return text.Shorten(textArg(a, "string"), intArg(a, "length"), sep)
		}),
		validate.MustWrap("text_chunks", params{pString, pSize}, func(a validate.Args) (any, error) {
			return text.Chunks(textArg(a, "string"), intArg(a, "size"))
		}),
	}
}
