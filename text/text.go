// Package text provides string helpers built on top of package arr.
//
// Every function counts positions in runes rather than bytes, so indices and
// lengths refer to characters:
//
//	text.Substr("héllo", 1, 3)       // "él", nil
//	text.Shorten("hello world", 5)   // "hello...", nil
//	text.Chunks("abcde", 2)          // ["ab" "cd" "e"], nil
package text

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/hasbyte1/go-lowdash/arr"
)

// DefaultSeparator is appended by [Shorten] when no separator is given.
const DefaultSeparator = "..."

// Upper returns s with every letter mapped to upper case.
func Upper(s string) string { return strings.ToUpper(s) }

// Lower returns s with every letter mapped to lower case.
func Lower(s string) string { return strings.ToLower(s) }

// Mock alternates case by position: even positions upper, odd lower.
//
//	Mock("hello") // "HeLlO"
func Mock(s string) string {
	runes := []rune(s)
	for i, r := range runes {
		if i%2 == 0 {
			runes[i] = unicode.ToUpper(r)
		} else {
			runes[i] = unicode.ToLower(r)
		}
	}
	return string(runes)
}

// Scramble returns the characters of s in a random order.
func Scramble(s string) string {
	return string(arr.Shuffle([]rune(s)))
}

// ScrambleWith is [Scramble] driven by r.
func ScrambleWith(s string, r *rand.Rand) string {
	return string(arr.ShuffleWith([]rune(s), r))
}

// ProperCase upper-cases the first character of every whitespace-delimited
// word and lower-cases the rest. Whitespace is kept as is.
//
//	ProperCase("hELLO  wORLD") // "Hello  World"
func ProperCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	wordStart := true
	for _, r := range s {
		switch {
		case unicode.IsSpace(r):
			wordStart = true
		case wordStart:
			r = unicode.ToUpper(r)
			wordStart = false
		default:
			r = unicode.ToLower(r)
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Substr returns the characters in [start, end).
// Bounds must satisfy 0 <= start <= end <= number of characters.
func Substr(s string, start, end int) (string, error) {
	out, err := arr.Slice([]rune(s), start, end)
	if err != nil {
		return "", fmt.Errorf("text.Substr: %w", err)
	}
	return string(out), nil
}

// Shorten returns the first length characters of s followed by sep, which
// defaults to [DefaultSeparator]. length must not exceed the character count
// of s.
//
//	Shorten("hello world", 5)       // "hello...", nil
//	Shorten("hello world", 5, " >") // "hello >", nil
func Shorten(s string, length int, sep ...string) (string, error) {
	n := len([]rune(s))
	if length < 0 || length > n {
		return "", fmt.Errorf("text.Shorten: parameter %q: %d not in [0, %d]: %w", "length", length, n, ErrIndexOutOfRange)
	}
	separator := DefaultSeparator
	if len(sep) > 0 {
		separator = sep[0]
	}
	head, err := Substr(s, 0, length)
	if err != nil {
		return "", err
	}
	return head + separator, nil
}

// Chunks splits s into consecutive pieces of size characters; the last piece
// may be shorter. size must be at least 1.
func Chunks(s string, size int) ([]string, error) {
	chunks, err := arr.Chunk([]rune(s), size)
	if err != nil {
		return nil, fmt.Errorf("text.Chunks: %w", err)
	}
	return arr.Map(chunks, func(c []rune) string { return string(c) }), nil
}
