// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package internal

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarshalIndent(t *testing.T) {
	data, err := MarshalIndent(map[string]string{"description": "<code>a</code> & b"}, "")
	require.NoError(t, err)
	assert.Equal(t, `{"description":"<code>a</code> & b"}`, string(data))

	data, err = MarshalIndent(map[string]int{"a": 1}, "\t")
	require.NoError(t, err)
	assert.Equal(t, "{\n\t\"a\": 1\n}", string(data))
}

func TestEmptyCollections(t *testing.T) {
	type doc struct {
		Modules  Array[string]          `json:"modules"`
		Mappings Object[string, string] `json:"mappings"`
	}

	data, err := json.Marshal(doc{})
	require.NoError(t, err)
	assert.Equal(t, `{"modules":[],"mappings":{}}`, string(data))

	data, err = json.Marshal(doc{
		Modules:  Array[string]{"a"},
		Mappings: Object[string, string]{"integer": "bigint"},
	})
	require.NoError(t, err)
	assert.Equal(t, `{"modules":["a"],"mappings":{"integer":"bigint"}}`, string(data))
}
