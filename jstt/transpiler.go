/*
This Source Code Form is subject to the terms of the Mozilla Public
License, v. 2.0. If a copy of the MPL was not distributed with this
file, You can obtain one at https://mozilla.org/MPL/2.0/.
*/

package jstt

import (
	"log/slog"
	"maps"
)

const DefaultBanner = `/*---------------------------------------------------------------------------------------------
 *  Copyright (c) Microsoft Corporation. All rights reserved.
 *  Licensed under the MIT License. See License.txt in the project root for license information.
 *--------------------------------------------------------------------------------------------*/`

const DefaultDescription = "Declaration module describing the VS Code debug protocol.\n" +
	"Auto-generated from json schema. Do not edit manually."

// Transpiler turns a Document into TypeScript declarations. It holds no
// per-render state and may be shared between goroutines.
type Transpiler struct {
	logger       *slog.Logger
	typeMappings map[string]string
	banner       string
	description  string
}

func NewTranspiler(opts ...TranspilerOption) *Transpiler {
	t := &Transpiler{
		logger: slog.Default(),
		typeMappings: map[string]string{
			"integer": "number",
			"string":  "string",
		},
		banner:      DefaultBanner,
		description: DefaultDescription,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type TranspilerOption func(t *Transpiler)

func Logger(logger *slog.Logger) TranspilerOption {
	return func(t *Transpiler) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// TypeMappings overrides the TypeScript token used for schema primitive kinds.
func TypeMappings(typeMappings map[string]string) TranspilerOption {
	return func(t *Transpiler) {
		maps.Copy(t.typeMappings, typeMappings)
	}
}

func Banner(banner string) TranspilerOption {
	return func(t *Transpiler) {
		t.banner = banner
	}
}

func Description(description string) TranspilerOption {
	return func(t *Transpiler) {
		t.description = description
	}
}

func (t *Transpiler) resolveRef(ref string) string {
	name, err := ResolveRef(ref)
	if err != nil {
		t.logger.Warn("using raw pointer as type name", "ref", ref, "error", err)
	}
	return name
}
