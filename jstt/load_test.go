// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDocument_Classification(t *testing.T) {
	doc, err := LoadDocument(strings.NewReader(`{
		"$schema": "http://json-schema.org/draft-04/schema#",
		"definitions": {
			"Message": {
				"type": "object",
				"description": "Base class.",
				"properties": {
					"seq": {"type": "integer", "description": "Sequence number."},
					"type": {"type": "string", "enum": ["request", "response"]},
					"ref": {"$ref": "#/definitions/Source"},
					"tags": {"type": "array", "items": {"type": "string"}},
					"any": {"type": "array"},
					"value": {"type": ["string", "null"]},
					"body": {"type": "object", "properties": {"a": {"type": "boolean"}}, "required": ["a"]},
					"free": {}
				},
				"required": ["seq", "type"]
			},
			"Request": {
				"allOf": [
					{"$ref": "#/definitions/Message"},
					{"type": "object", "properties": {"command": {"type": "string"}}}
				]
			},
			"Reason": {"type": "string", "enum": ["step", "pause"], "description": "Why."}
		}
	}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Message", "Request", "Reason"}, slices.Collect(doc.Definitions.Keys()))

	def, _ := doc.Definitions.Get("Message")
	msg, ok := def.(*Object)
	require.True(t, ok)
	assert.Equal(t, "Base class.", msg.Description)
	assert.Equal(t, []string{"seq", "type"}, msg.Required)
	assert.True(t, msg.IsRequired("seq"))
	assert.False(t, msg.IsRequired("ref"))
	assert.Equal(t,
		[]string{"seq", "type", "ref", "tags", "any", "value", "body", "free"},
		slices.Collect(msg.Properties.Keys()),
	)

	prop := func(name string) *Property {
		p, ok := msg.Properties.Get(name)
		require.True(t, ok, name)
		return p
	}
	assert.Equal(t, &Property{Description: "Sequence number.", Type: Primitive{Kind: "integer"}}, prop("seq"))
	assert.Equal(t, StringEnum{Values: []string{"request", "response"}}, prop("type").Type)
	assert.Equal(t, Ref{Pointer: "#/definitions/Source"}, prop("ref").Type)
	assert.Equal(t, Array{Elem: Primitive{Kind: "string"}}, prop("tags").Type)
	assert.Equal(t, Array{Elem: Unknown{}}, prop("any").Type)
	assert.Equal(t, Union{Kinds: []string{"string", "null"}}, prop("value").Type)
	assert.Equal(t, Unknown{}, prop("free").Type)

	body, ok := prop("body").Type.(InlineObject)
	require.True(t, ok)
	assert.Equal(t, []string{"a"}, body.Object.Required)
	assert.Equal(t, []string{"a"}, slices.Collect(body.Object.Properties.Keys()))

	def, _ = doc.Definitions.Get("Request")
	req, ok := def.(*Composed)
	require.True(t, ok)
	assert.Equal(t, []string{"#/definitions/Message"}, req.Refs)
	require.Len(t, req.Bodies, 1)
	assert.Equal(t, []string{"command"}, slices.Collect(req.Bodies[0].Properties.Keys()))

	def, _ = doc.Definitions.Get("Reason")
	assert.Equal(t, &Enum{Description: "Why.", Values: []string{"step", "pause"}}, def)
}

func TestLoadDocument_CommentsAndTrailingCommas(t *testing.T) {
	doc, err := ParseDocument([]byte(`{
		// protocol messages
		"definitions": {
			"A": {"type": "object",},
		},
	}`))
	require.NoError(t, err)
	assert.True(t, doc.Definitions.Has("A"))
}

func TestLoadDocument_Defs(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"$defs": {"B": {"type": "object"}, "A": {"type": "object"}}}`))
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, slices.Collect(doc.Definitions.Keys()))
}

func TestLoadDocument_NoDefinitions(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"type": "object"}`))
	require.NoError(t, err)
	assert.Zero(t, doc.Definitions.Len())
}

func TestLoadDocument_NonStringEnum(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"definitions": {"Level": {"enum": [1, 2.5, true, null]}}}`))
	require.NoError(t, err)
	def, _ := doc.Definitions.Get("Level")
	assert.Equal(t, &Enum{Values: []string{"1", "2.5", "true", "null"}}, def)
}

func TestLoadDocument_Invalid(t *testing.T) {
	for name, src := range map[string]string{
		"syntax":     `{"definitions": `,
		"type":       `{"definitions": {"A": {"type": 5}}}`,
		"properties": `{"definitions": {"A": {"properties": []}}}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDocument([]byte(src))
			require.Error(t, err)
		})
	}
}
