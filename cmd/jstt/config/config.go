// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"strings"
	"sync"

	"github.com/antoniszymanski/jstt-go/cmd/jstt/internal"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

type Config struct {
	Schema string `json:"$schema,omitzero"`
	// Format the generated declarations with sanefmt.
	Format bool `json:"format"`
	// Check that every input compiles as a JSON Schema before transpiling it.
	Validate bool `json:"validate"`
	// License banner placed at the top of every output. An empty string omits it.
	Banner *string `json:"banner,omitempty"`
	// Documentation comment placed above the module declaration.
	Description *string `json:"description,omitempty"`
	// TypeScript types used for schema primitive kinds, e.g. {"integer": "bigint"}.
	TypeMappings internal.Object[string, string] `json:"type_mappings"`
	Modules      internal.Array[Module]          `json:"modules" jsonschema:"required,minItems=1"`
}

type Module struct {
	// Name of the generated "export module" declaration.
	Name string `json:"name" jsonschema:"required,minLength=1"`
	// Schema document, relative to the config file.
	Input string `json:"input" jsonschema:"required,minLength=1"`
	// Declaration file to write, relative to the config file.
	Output string `json:"output" jsonschema:"required,minLength=1"`
}

func (c *Config) UnmarshalJSON(data []byte) error {
	sch, err := compiledSchema()
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	if err = sch.Validate(inst); err != nil {
		return err
	}
	type RawConfig Config
	return json.Unmarshal(data, (*RawConfig)(c))
}

var compiledSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(schema))
	if err != nil {
		return nil, err
	}
	compiler := jsonschema.NewCompiler()
	if err = compiler.AddResource("memory:", doc); err != nil {
		return nil, err
	}
	return compiler.Compile("memory:")
})

func Schema() string {
	return schema
}

//go:generate go run ../internal/schemagen

//go:embed schema.json
var schema string
