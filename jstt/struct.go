// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"regexp"
	"strconv"
)

func (t *Transpiler) transpileDefinition(w *Writer, name string, def Definition) {
	switch def := def.(type) {
	case *Composed:
		t.transpileComposed(w, name, def)
	case *Enum:
		t.transpileEnum(w, name, def)
	case *Object:
		t.transpileInterface(w, name, def.Description, "", def)
	default:
		t.logger.Debug("skipping unclassified definition", "name", name)
	}
}

func (t *Transpiler) transpileComposed(w *Writer, name string, def *Composed) {
	var supertype string
	if len(def.Refs) > 0 {
		supertype = t.resolveRef(def.Refs[0])
		if len(def.Refs) > 1 {
			t.logger.Debug("ignoring extra supertypes", "name", name, "refs", def.Refs[1:])
		}
	}
	description := def.Description
	if description == "" && len(def.Bodies) > 0 {
		description = def.Bodies[0].Description
	}
	t.transpileInterface(w, name, description, supertype, def.Bodies...)
}

func (t *Transpiler) transpileInterface(w *Writer, name, description, supertype string, bodies ...*Object) {
	w.Line("")
	w.Comment(description)
	header := "export interface " + name
	if supertype != "" {
		header += " extends " + supertype
	}
	w.Open(header)
	for _, body := range bodies {
		if body != nil && body.Properties != nil {
			t.transpileProperties(w, body)
		}
	}
	w.Close()
}

func (t *Transpiler) transpileEnum(w *Writer, name string, def *Enum) {
	w.Line("")
	w.Comment(def.Description)
	w.Line("export type " + name + " = " + literalUnion(def.Values) + ";")
}

func (t *Transpiler) transpileProperties(w *Writer, obj *Object) {
	for name, prop := range obj.Properties.AllFromFront() {
		var typ Type = Unknown{}
		if prop != nil {
			w.Comment(prop.Description)
			typ = prop.Type
		}
		w.Emit(propertyName(name), false, true)
		if !obj.IsRequired(name) {
			w.write("?")
		}
		w.write(": ")
		t.transpileType(w, typ)
		w.Emit(";", true, false)
	}
}

var identifier = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// propertyName quotes names that are not plain identifiers, such as "" or
// "content-type".
func propertyName(name string) string {
	if identifier.MatchString(name) {
		return name
	}
	return strconv.Quote(name)
}
