// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"bytes"
	"maps"
	"net/url"
	"slices"
	"strings"

	jsonc "github.com/DisposaBoy/JsonConfigReader"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

// Validate reports whether data compiles as a JSON Schema. Every entry of
// "definitions" and "$defs" is compiled, referenced or not, so a "$ref" to a
// missing definition is an error.
func Validate(data []byte) error {
	doc, err := jsonschema.UnmarshalJSON(jsonc.New(bytes.NewReader(data)))
	if err != nil {
		return err
	}
	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource("memory:", doc); err != nil {
		return err
	}
	if _, err = compiler.Compile("memory:"); err != nil {
		return err
	}

	root, ok := doc.(map[string]any)
	if !ok {
		return nil
	}
	for _, section := range []string{"definitions", "$defs"} {
		defs, ok := root[section].(map[string]any)
		if !ok {
			continue
		}
		for _, name := range slices.Sorted(maps.Keys(defs)) {
			loc := "memory:#/" + escapePointer(section) + "/" + escapePointer(name)
			if _, err = compiler.Compile(loc); err != nil {
				return err
			}
		}
	}
	return nil
}

var pointerEscaper = strings.NewReplacer("~", "~0", "/", "~1")

func escapePointer(token string) string {
	return url.PathEscape(pointerEscaper.Replace(token))
}
