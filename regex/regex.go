// Package regex is a thin wrapper over package regexp with the two flags of
// a JavaScript-style literal: g (global) and i (ignore case).
//
//	re, _ := regex.FromLiteral("/o/g")
//	re.Find("foo")              // ["o" "o"]
//	re.Replace("foo", "0")      // "f00"
//
// Matching semantics are regexp's (RE2). Replacement templates use regexp's
// $1 / ${name} expansion.
package regex

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrInvalidLiteral is returned by [FromLiteral] for input that is not of the
// form /pattern/flags.
var ErrInvalidLiteral = errors.New("regex: invalid literal")

// RegExp is a compiled pattern plus its flags.
type RegExp struct {
	re         *regexp.Regexp
	source     string
	global     bool
	ignoreCase bool
}

// New compiles pattern. Without global, Find and Replace stop after the first
// match.
func New(pattern string, global, ignoreCase bool) (*RegExp, error) {
	expr := pattern
	if ignoreCase {
		expr = "(?i)" + pattern
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("regex: compile %q: %w", pattern, err)
	}
	return &RegExp{re: re, source: pattern, global: global, ignoreCase: ignoreCase}, nil
}

// MustNew is like [New] but panics if pattern does not compile.
func MustNew(pattern string, global, ignoreCase bool) *RegExp {
	re, err := New(pattern, global, ignoreCase)
	if err != nil {
		panic(err)
	}
	return re
}

// FromLiteral parses "/pattern/flags". The pattern runs up to the last slash;
// flags may contain g and i in any order.
func FromLiteral(literal string) (*RegExp, error) {
	end := strings.LastIndex(literal, "/")
	if !strings.HasPrefix(literal, "/") || end < 1 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidLiteral, literal)
	}
	pattern, flags := literal[1:end], literal[end+1:]
	var global, ignoreCase bool
	for _, f := range flags {
		switch f {
		case 'g':
			global = true
		case 'i':
			ignoreCase = true
		default:
			return nil, fmt.Errorf("%w: unknown flag %q in %q", ErrInvalidLiteral, f, literal)
		}
	}
	return New(pattern, global, ignoreCase)
}

// IsLiteral reports whether s looks like a /pattern/flags literal.
func IsLiteral(s string) bool {
	return len(s) >= 2 && strings.HasPrefix(s, "/") && strings.LastIndex(s, "/") > 0
}

// Global reports whether the g flag is set.
func (r *RegExp) Global() bool { return r.global }

// IgnoreCase reports whether the i flag is set.
func (r *RegExp) IgnoreCase() bool { return r.ignoreCase }

// String returns the literal form, e.g. "/ab+c/gi".
func (r *RegExp) String() string {
	var flags string
	if r.global {
		flags += "g"
	}
	if r.ignoreCase {
		flags += "i"
	}
	return "/" + r.source + "/" + flags
}

// Match reports whether text contains a match.
func (r *RegExp) Match(text string) bool { return r.re.MatchString(text) }

// Find returns every match when global, otherwise at most the first one.
// The result is never nil.
func (r *RegExp) Find(text string) []string {
	n := 1
	if r.global {
		n = -1
	}
	matches := r.re.FindAllString(text, n)
	if matches == nil {
		return []string{}
	}
	return matches
}

// Replace substitutes repl for every match when global, otherwise for the
// first match only.
func (r *RegExp) Replace(text, repl string) string {
	if r.global {
		return r.re.ReplaceAllString(text, repl)
	}
	loc := r.re.FindStringSubmatchIndex(text)
	if loc == nil {
		return text
	}
	var b strings.Builder
	b.WriteString(text[:loc[0]])
	b.Write(r.re.ExpandString(nil, repl, text, loc))
	b.WriteString(text[loc[1]:])
	return b.String()
}
