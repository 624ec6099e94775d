package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"gopkg.in/yaml.v2"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	// ErrUnknownFormat is returned for a --format other than json or yaml.
	ErrUnknownFormat = errors.New("unknown output format")
	// ErrKeyCollision is returned when two distinct map keys render as the
	// same text, such as 1 and "1".
	ErrKeyCollision = errors.New("map keys collide as text")
)

// decodeArgument decodes raw as a single JSON value. Anything else,
// including JSON followed by trailing input, is returned as text.
func decodeArgument(raw string) any {
	decoder := json.NewDecoder(strings.NewReader(raw))
	decoder.UseNumber()
	var value any
	if decodeError := decoder.Decode(&value); decodeError != nil {
		return raw
	}
	if _, trailingError := decoder.Token(); trailingError != io.EOF {
		return raw
	}
	return normalizeNumbers(value)
}

// normalizeNumbers turns json.Number into int when integral, float64
// otherwise.
func normalizeNumbers(value any) any {
	switch typed := value.(type) {
	case json.Number:
		if integer, intError := typed.Int64(); intError == nil {
			return int(integer)
		}
		float, _ := typed.Float64()
		return float
	case []any:
		for index, element := range typed {
			typed[index] = normalizeNumbers(element)
		}
	case map[string]any:
		for name, element := range typed {
			typed[name] = normalizeNumbers(element)
		}
	}
	return value
}

func writeOutput(w io.Writer, format string, value any) error {
	value, normalizeError := normalizeOutput(value)
	if normalizeError != nil {
		return normalizeError
	}
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetEscapeHTML(false)
		if encodeError := encoder.Encode(value); encodeError != nil {
			return fmt.Errorf("encode json: %w", encodeError)
		}
		return nil
	case formatYAML:
		encoded, encodeError := yaml.Marshal(value)
		if encodeError != nil {
			return fmt.Errorf("encode yaml: %w", encodeError)
		}
		if _, writeError := w.Write(encoded); writeError != nil {
			return fmt.Errorf("write yaml: %w", writeError)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

// normalizeOutput rewrites maps with non-string keys, as produced by
// from_pairs, into map[string]any so both encoders accept them. Keys that
// would collide are reported rather than dropped.
func normalizeOutput(value any) (any, error) {
	if value == nil {
		return nil, nil
	}
	reflected := reflect.ValueOf(value)
	switch reflected.Kind() {
	case reflect.Map:
		out := make(map[string]any, reflected.Len())
		iter := reflected.MapRange()
		for iter.Next() {
			name := fmt.Sprint(iter.Key().Interface())
			if _, taken := out[name]; taken {
				return nil, fmt.Errorf("%w: %q", ErrKeyCollision, name)
			}
			element, elementError := normalizeOutput(iter.Value().Interface())
			if elementError != nil {
				return nil, elementError
			}
			out[name] = element
		}
		return out, nil
	case reflect.Slice, reflect.Array:
		if reflected.Type().Elem().Kind() == reflect.Uint8 {
			return value, nil
		}
		out := make([]any, reflected.Len())
		for index := range out {
			element, elementError := normalizeOutput(reflected.Index(index).Interface())
			if elementError != nil {
				return nil, elementError
			}
			out[index] = element
		}
		return out, nil
	}
	return value, nil
}
