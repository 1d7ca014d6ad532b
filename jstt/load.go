/*
This Source Code Form is subject to the terms of the Mozilla Public
License, v. 2.0. If a copy of the MPL was not distributed with this
file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package jstt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	jsonc "github.com/DisposaBoy/JsonConfigReader"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// LoadDocument reads a schema document, comments and trailing commas allowed,
// and classifies its definitions.
func LoadDocument(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(jsonc.New(r))
	if err != nil {
		return nil, err
	}

	var raw rawDocument
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode schema document: %w", err)
	}

	defs := raw.Definitions
	if defs == nil {
		defs = raw.Defs
	}
	doc := NewDocument()
	if defs == nil {
		return doc, nil
	}
	for pair := defs.Oldest(); pair != nil; pair = pair.Next() {
		doc.Definitions.Set(pair.Key, newDefinition(pair.Value))
	}
	return doc, nil
}

func ParseDocument(data []byte) (*Document, error) {
	return LoadDocument(bytes.NewReader(data))
}

type rawDocument struct {
	Definitions *orderedmap.OrderedMap[string, *rawSchema] `json:"definitions"`
	Defs        *orderedmap.OrderedMap[string, *rawSchema] `json:"$defs"`
}

type rawSchema struct {
	Ref         string                                     `json:"$ref"`
	Type        rawType                                    `json:"type"`
	Enum        []any                                      `json:"enum"`
	Description string                                     `json:"description"`
	Properties  *orderedmap.OrderedMap[string, *rawSchema] `json:"properties"`
	Required    []string                                   `json:"required"`
	Items       json.RawMessage                            `json:"items"`
	AllOf       []*rawSchema                               `json:"allOf"`
}

// rawType holds "type": "string" as a single kind and "type": ["string",
// "null"] as a list.
type rawType struct {
	Kinds []string
	List  bool
}

func (t *rawType) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '[' {
		t.List = true
		return json.Unmarshal(data, &t.Kinds)
	}
	var kind string
	if err := json.Unmarshal(data, &kind); err != nil {
		return err
	}
	t.Kinds = []string{kind}
	return nil
}

func (t rawType) single() string {
	if t.List || len(t.Kinds) == 0 {
		return ""
	}
	return t.Kinds[0]
}

func newDefinition(s *rawSchema) Definition {
	if s == nil {
		return NewObject()
	}
	switch {
	case s.AllOf != nil:
		def := &Composed{Description: s.Description}
		for _, part := range s.AllOf {
			if part == nil {
				continue
			}
			if part.Ref != "" {
				def.Refs = append(def.Refs, part.Ref)
			} else {
				def.Bodies = append(def.Bodies, newObject(part))
			}
		}
		return def
	case s.Enum != nil:
		return &Enum{Description: s.Description, Values: enumValues(s.Enum)}
	default:
		return newObject(s)
	}
}

func newObject(s *rawSchema) *Object {
	obj := NewObject()
	obj.Description = s.Description
	obj.Required = s.Required
	if s.Properties == nil {
		return obj
	}
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		obj.Properties.Set(pair.Key, newProperty(pair.Value))
	}
	return obj
}

func newProperty(s *rawSchema) *Property {
	if s == nil {
		return &Property{Type: Unknown{}}
	}
	return &Property{Description: s.Description, Type: newType(s)}
}

func newType(s *rawSchema) Type {
	if s.Ref != "" {
		return Ref{Pointer: s.Ref}
	}
	if s.Type.List {
		return Union{Kinds: s.Type.Kinds}
	}
	switch kind := s.Type.single(); kind {
	case "":
		return Unknown{}
	case "array":
		return Array{Elem: newItemsType(s.Items)}
	case "object":
		return InlineObject{Object: newObject(s)}
	case "string":
		if s.Enum != nil {
			return StringEnum{Values: enumValues(s.Enum)}
		}
		return Primitive{Kind: kind}
	default:
		return Primitive{Kind: kind}
	}
}

func newItemsType(data json.RawMessage) Type {
	var items rawSchema
	if len(data) == 0 || json.Unmarshal(data, &items) != nil {
		return Unknown{}
	}
	return newType(&items)
}

func enumValues(values []any) []string {
	out := make([]string, len(values))
	for i, v := range values {
		switch v := v.(type) {
		case string:
			out[i] = v
		case nil:
			out[i] = "null"
		default:
			out[i] = fmt.Sprint(v)
		}
	}
	return out
}
