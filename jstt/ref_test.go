// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveRef(t *testing.T) {
	name, err := ResolveRef("#/definitions/Foo")
	require.NoError(t, err)
	assert.Equal(t, "Foo", name)

	name, err = ResolveRef("#/$defs/Bar")
	require.NoError(t, err)
	assert.Equal(t, "Bar", name)
}

func TestResolveRef_Malformed(t *testing.T) {
	for _, ref := range []string{
		"#/a/b/c",
		"#/definitions/",
		"#/Foo",
		"definitions/Foo",
		"other.json#/definitions/Foo",
	} {
		t.Run(ref, func(t *testing.T) {
			name, err := ResolveRef(ref)
			assert.Equal(t, ref, name)
			var malformed *MalformedRefError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, ref, malformed.Ref)
		})
	}
}

func TestResolveRef_LogsDiagnostic(t *testing.T) {
	var buf bytes.Buffer
	tr := NewTranspiler(Logger(slog.New(slog.NewTextHandler(&buf, nil))))

	assert.Equal(t, "#/a/b/c", tr.TypeExpr(Ref{Pointer: "#/a/b/c"}))
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "ref=#/a/b/c")

	buf.Reset()
	assert.Equal(t, "Foo", tr.TypeExpr(Ref{Pointer: "#/definitions/Foo"}))
	assert.Empty(t, buf.String())
}
