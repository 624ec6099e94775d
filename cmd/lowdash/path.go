package main

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// ErrPathNotFound is returned when a --select path does not resolve.
var ErrPathNotFound = errors.New("path not found")

// selectPath walks value along a dot-separated path. Segments index maps by
// key and sequences by position:
//
//	selectPath([]any{map[string]any{"a": []any{1, 2}}}, "0.a.1") // 2
//
// An empty path returns value unchanged.
func selectPath(value any, path string) (any, error) {
	if path == "" {
		return value, nil
	}
	segments := strings.Split(path, ".")
	current := value
	for index, segment := range segments {
		walked := strings.Join(segments[:index+1], ".")
		next, matches := step(current, segment)
		switch {
		case matches == 0:
			return nil, fmt.Errorf("%w: %q", ErrPathNotFound, walked)
		case matches > 1:
			return nil, fmt.Errorf("%w: %q", ErrKeyCollision, walked)
		}
		current = next
	}
	return current, nil
}

// step resolves one segment and reports how many entries matched it. A map
// key equal to segment as a string wins outright; otherwise keys are
// compared by their text form and more than one match is ambiguous.
func step(value any, segment string) (any, int) {
	if value == nil {
		return nil, 0
	}
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Map:
		var found any
		matches := 0
		iter := reflected.MapRange()
		for iter.Next() {
			mapKey := iter.Key().Interface()
			if text, isText := mapKey.(string); isText && text == segment {
				return iter.Value().Interface(), 1
			}
			if fmt.Sprint(mapKey) == segment {
				found = iter.Value().Interface()
				matches++
			}
		}
		return found, matches
	case reflect.Slice, reflect.Array:
		position, parseError := strconv.Atoi(segment)
		if parseError != nil || position < 0 || position >= reflected.Len() {
			return nil, 0
		}
		return reflected.Index(position).Interface(), 1
	}
	return nil, 0
}
