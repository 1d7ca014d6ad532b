// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import "strings"

// TypeExpr renders typ as a TypeScript type expression. Inline objects are
// rendered as if they appeared at depth zero.
func (t *Transpiler) TypeExpr(typ Type) string {
	var w Writer
	t.transpileType(&w, typ)
	return w.String()
}

func (t *Transpiler) transpileType(w *Writer, typ Type) {
	switch typ := typ.(type) {
	case Ref:
		w.write(t.resolveRef(typ.Pointer))
	case Primitive:
		w.write(t.transpilePrimitive(typ.Kind))
	case StringEnum:
		w.write(literalUnion(typ.Values))
	case Array:
		t.transpileType(w, typ.Elem)
		w.write("[]")
	case InlineObject:
		t.transpileObjectType(w, typ.Object)
	case Union:
		t.transpileUnion(w, typ)
	default:
		w.write("any")
	}
}

func (t *Transpiler) transpilePrimitive(kind string) string {
	if kind == "" {
		return "any"
	}
	if ts, ok := t.typeMappings[kind]; ok {
		return ts
	}
	return kind
}

func (t *Transpiler) transpileUnion(w *Writer, typ Union) {
	if len(typ.Kinds) == 0 {
		w.write("any")
		return
	}
	for i, kind := range typ.Kinds {
		if i > 0 {
			w.write(" | ")
		}
		w.write(t.transpilePrimitive(kind))
	}
}

func (t *Transpiler) transpileObjectType(w *Writer, obj *Object) {
	if obj == nil || obj.Properties == nil || obj.Properties.Len() == 0 {
		w.write("{}")
		return
	}
	w.OpenBlock("", "{", false)
	t.transpileProperties(w, obj)
	w.CloseBlock("}", false)
}

// literalUnion quotes every value and joins them in order, duplicates included.
func literalUnion(values []string) string {
	if len(values) == 0 {
		return "never"
	}
	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteString(" | ")
		}
		sb.WriteByte('\'')
		sb.WriteString(v)
		sb.WriteByte('\'')
	}
	return sb.String()
}
