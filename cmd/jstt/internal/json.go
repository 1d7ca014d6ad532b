// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package internal

import (
	"bytes"
	"encoding/json"
)

// MarshalIndent encodes v without HTML escaping and without a trailing newline.
// An empty indent produces compact output.
func MarshalIndent(v any, indent string) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte{'\n'}), nil
}

func MarshalJSON(v any) ([]byte, error) {
	return MarshalIndent(v, "")
}

// Array and Object encode nil as [] and {} so that config files and the
// config schema never contain null.
type Array[T any] []T

func (a Array[T]) MarshalJSON() ([]byte, error) {
	return marshalNonEmpty(len(a), "[]", []T(a))
}

type Object[K comparable, V any] map[K]V

func (o Object[K, V]) MarshalJSON() ([]byte, error) {
	return marshalNonEmpty(len(o), "{}", map[K]V(o))
}

func marshalNonEmpty(n int, empty string, v any) ([]byte, error) {
	if n == 0 {
		return []byte(empty), nil
	}
	return MarshalJSON(v)
}
