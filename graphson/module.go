/**
 * Copyright (c) 2019, The Artemis Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphson

import (
	"reflect"
)

// Shape is the natural JSON shape a serializer produces for a value.
type Shape uint8

// Enumeration of Shape
const (
	// A JSON string, number, boolean or null
	ShapeScalar Shape = iota
	// A JSON object with fixed member names
	ShapeObject
	// A JSON array that is not a collection (a pair, a flattened structure, ...)
	ShapeArray
	// Key/value container
	ShapeMap
	// Ordered collection
	ShapeList
	// Unordered collection of distinct elements
	ShapeSet
)

// IsContainer returns true for maps, lists and sets.
func (shape Shape) IsContainer() bool {
	return shape == ShapeMap || shape == ShapeList || shape == ShapeSet
}

func (shape Shape) String() string {
	switch shape {
	case ShapeScalar:
		return "scalar"
	case ShapeObject:
		return "object"
	case ShapeArray:
		return "array"
	case ShapeMap:
		return "map"
	case ShapeList:
		return "list"
	case ShapeSet:
		return "set"
	}
	return "unknown shape"
}

// SerializeFunc writes v in its natural shape. Whether and how the result is tagged is decided by
// the Writer; the function never writes "@type" or "@value" itself. v is a value of the serializer's
// Type, or of a type that resolved to it (an implementation of a registered interface, or a named
// basic type converted to its underlying type).
type SerializeFunc func(w *Writer, v interface{}) error

// DeserializeFunc reads a value of the deserializer's type. The reader is positioned on the first
// token of the payload (the "@value" of an envelope, or the value itself when untagged) and must be
// left on its last token.
type DeserializeFunc func(r *Reader) (interface{}, error)

// Serializer binds a Go type to the function writing its values.
type Serializer struct {
	// Type is the Go type handled. It may be an interface type, in which case values of every type
	// implementing it are written by the serializer.
	Type reflect.Type

	// Shape is the natural shape produced by Serialize.
	Shape Shape

	// Serialize writes a value.
	Serialize SerializeFunc
}

// Deserializer binds a Go type to the function reading its values.
type Deserializer struct {
	Type        reflect.Type
	Deserialize DeserializeFunc
}

// TypeDefinition gives a Go type a wire tag in the namespace of its module.
type TypeDefinition struct {
	Type      reflect.Type
	LocalName string
}

// Module is a catalogue of serializers, deserializers and type definitions. Each version has a core
// module; extension modules (such as package gx) add types on top of it.
//
// Only types listed in TypeDefinitions receive a wire tag. Values of other types with a serializer
// are written untagged.
type Module struct {
	// Name identifies the module. Modules with the same name are included once.
	Name string

	// Namespace of the tags of TypeDefinitions. Required when TypeDefinitions is not empty.
	Namespace string

	Serializers     []Serializer
	Deserializers   []Deserializer
	TypeDefinitions []TypeDefinition
}

// AddSerializer appends a serializer for t.
func (module *Module) AddSerializer(t reflect.Type, shape Shape, serialize SerializeFunc) {
	module.Serializers = append(module.Serializers, Serializer{
		Type:      t,
		Shape:     shape,
		Serialize: serialize,
	})
}

// AddDeserializer appends a deserializer for t.
func (module *Module) AddDeserializer(t reflect.Type, deserialize DeserializeFunc) {
	module.Deserializers = append(module.Deserializers, Deserializer{
		Type:        t,
		Deserialize: deserialize,
	})
}

// AddType gives t the tag "{module.Namespace}:{localName}".
func (module *Module) AddType(t reflect.Type, localName string) {
	module.TypeDefinitions = append(module.TypeDefinitions, TypeDefinition{
		Type:      t,
		LocalName: localName,
	})
}

// Add is a shorthand for registering a serializer, a deserializer (if deserialize is not nil) and a
// tag (if localName is not empty) for t.
func (module *Module) Add(t reflect.Type, localName string, shape Shape, serialize SerializeFunc, deserialize DeserializeFunc) {
	if serialize != nil {
		module.AddSerializer(t, shape, serialize)
	}
	if deserialize != nil {
		module.AddDeserializer(t, deserialize)
	}
	if len(localName) > 0 {
		module.AddType(t, localName)
	}
}

// Tag returns the tag a type definition of the module receives.
func (module *Module) Tag(localName string) Tag {
	return MakeTag(module.Namespace, localName)
}
