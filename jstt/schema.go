// SPDX-FileCopyrightText: 2025 Antoni Szymański
// SPDX-License-Identifier: MPL-2.0

package jstt

import (
	"slices"

	"github.com/elliotchance/orderedmap/v3"
)

// Document is a schema document reduced to the shapes the transpiler renders.
type Document struct {
	Definitions *orderedmap.OrderedMap[string, Definition] // Keyed by definition name
}

func NewDocument() *Document {
	return &Document{Definitions: orderedmap.NewOrderedMap[string, Definition]()}
}

// Definition is one of *Composed, *Enum or *Object.
type Definition interface {
	definition()
}

// Composed is an allOf definition. Only the first of Refs is used as the supertype.
type Composed struct {
	Description string
	Refs        []string
	Bodies      []*Object
}

type Enum struct {
	Description string
	Values      []string
}

type Object struct {
	Description string
	Properties  *orderedmap.OrderedMap[string, *Property]
	Required    []string
}

func NewObject() *Object {
	return &Object{Properties: orderedmap.NewOrderedMap[string, *Property]()}
}

func (o *Object) IsRequired(name string) bool {
	return slices.Contains(o.Required, name)
}

func (*Composed) definition() {}
func (*Enum) definition()     {}
func (*Object) definition()   {}

type Property struct {
	Description string
	Type        Type
}

// Type is one of Ref, Primitive, StringEnum, Array, InlineObject, Union or Unknown.
type Type interface {
	typ()
}

type Ref struct {
	Pointer string
}

type Primitive struct {
	Kind string
}

type StringEnum struct {
	Values []string
}

type Array struct {
	Elem Type
}

type InlineObject struct {
	Object *Object
}

// Union lists primitive kind names, e.g. "type": ["string", "integer"].
type Union struct {
	Kinds []string
}

// Unknown is any property shape the loader could not classify.
type Unknown struct{}

func (Ref) typ()          {}
func (Primitive) typ()    {}
func (StringEnum) typ()   {}
func (Array) typ()        {}
func (InlineObject) typ() {}
func (Union) typ()        {}
func (Unknown) typ()      {}
