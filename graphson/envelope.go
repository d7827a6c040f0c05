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
	"fmt"
	"reflect"
	"sync"

	"github.com/botobag/graphson/graph"
)

// Property names of the envelopes
const (
	typeProperty  = "@type"
	valueProperty = "@value"
	classProperty = "@class"
)

// envelopeWriter decides how tagged values and maps are laid out for a version and typing policy.
// Lists and sets are JSON arrays in every layout.
type envelopeWriter interface {
	// writeTagged writes a value whose type has tag. serialize writes the natural shape of the value.
	writeTagged(w *Writer, tag Tag, shape Shape, serialize func() error) error

	// Map layout: beginMap, then for each entry writeMapKey followed by the value, then endMap. The
	// separator between entries is written by MapWriter.
	beginMap(w *Writer)
	writeMapKey(w *Writer, key interface{}) error
	endMap(w *Writer)
}

// untypedEnvelope writes every value in its natural shape (V1 and V2 without types).
type untypedEnvelope struct {
	naturalMap
}

func (untypedEnvelope) writeTagged(w *Writer, tag Tag, shape Shape, serialize func() error) error {
	return serialize()
}

// classHintEnvelope adds an "@class" member to tagged object-shaped values (V1 with types). Scalars
// and containers are written untagged.
type classHintEnvelope struct {
	naturalMap
}

func (classHintEnvelope) writeTagged(w *Writer, tag Tag, shape Shape, serialize func() error) error {
	if shape != ShapeObject {
		return serialize()
	}
	// Picked up by the BeginObject call the serializer starts with.
	w.classHint = tag
	err := serialize()
	w.classHint = ""
	return err
}

// typedEnvelope wraps tagged values in {"@type": tag, "@value": value} and keeps maps as JSON
// objects (V2 with types).
type typedEnvelope struct {
	naturalMap
}

func (typedEnvelope) writeTagged(w *Writer, tag Tag, shape Shape, serialize func() error) error {
	return writeEnvelope(w, tag, serialize)
}

// flatEnvelope wraps tagged values like typedEnvelope and writes maps as arrays of alternating keys
// and values so keys keep their types (V3).
type flatEnvelope struct{}

func (flatEnvelope) writeTagged(w *Writer, tag Tag, shape Shape, serialize func() error) error {
	return writeEnvelope(w, tag, serialize)
}

func (flatEnvelope) beginMap(w *Writer) {
	w.stream.WriteArrayStart()
}

func (flatEnvelope) writeMapKey(w *Writer, key interface{}) error {
	if err := w.WriteValue(key); err != nil {
		return err
	}
	w.stream.WriteMore()
	return nil
}

func (flatEnvelope) endMap(w *Writer) {
	w.stream.WriteArrayEnd()
}

func writeEnvelope(w *Writer, tag Tag, serialize func() error) error {
	stream := w.stream
	stream.WriteObjectStart()
	stream.WriteObjectField(typeProperty)
	stream.WriteString(string(tag))
	stream.WriteMore()
	stream.WriteObjectField(valueProperty)
	if err := serialize(); err != nil {
		return err
	}
	stream.WriteObjectEnd()
	return nil
}

// naturalMap writes maps as JSON objects. Keys are turned into member names: strings as they are,
// graph elements by their id and other values by their default format.
type naturalMap struct{}

func (naturalMap) beginMap(w *Writer) {
	w.stream.WriteObjectStart()
}

func (naturalMap) writeMapKey(w *Writer, key interface{}) error {
	w.stream.WriteObjectField(mapKeyString(key))
	return nil
}

func (naturalMap) endMap(w *Writer) {
	w.stream.WriteObjectEnd()
}

func mapKeyString(key interface{}) string {
	switch key := key.(type) {
	case string:
		return key
	case graph.Element:
		return mapKeyString(key.ID())
	case fmt.Stringer:
		return key.String()
	}
	return fmt.Sprint(key)
}

func newEnvelopeWriter(version Version, typing Typing) envelopeWriter {
	switch {
	case version == V1 && typing == PartialTypes:
		return classHintEnvelope{}
	case typing == NoTypes:
		return untypedEnvelope{}
	case version == V2:
		return typedEnvelope{}
	}
	return flatEnvelope{}
}

//===----------------------------------------------------------------------------------------====//
// Serializer resolution
//===----------------------------------------------------------------------------------------====//

// binding is what a concrete Go type resolves to for writing.
type binding struct {
	serializer *Serializer

	// Tag of the serializer's type; empty for untagged types.
	tag Tag

	// If not nil, values are converted to this type before they are handed to the serializer.
	convert reflect.Type

	// Values are pointers without a binding of their own: write the element instead.
	indirect bool
}

// noBinding is cached for types that cannot be written.
var noBinding = &binding{}

var (
	genericMapType  = reflect.TypeOf(map[interface{}]interface{}{})
	genericListType = reflect.TypeOf([]interface{}{})
)

// basicTypes maps a basic kind to its predeclared type.
var basicTypes = map[reflect.Kind]reflect.Type{
	reflect.Bool:    reflect.TypeOf(false),
	reflect.Int:     reflect.TypeOf(int(0)),
	reflect.Int8:    reflect.TypeOf(int8(0)),
	reflect.Int16:   reflect.TypeOf(int16(0)),
	reflect.Int32:   reflect.TypeOf(int32(0)),
	reflect.Int64:   reflect.TypeOf(int64(0)),
	reflect.Uint:    reflect.TypeOf(uint(0)),
	reflect.Uint8:   reflect.TypeOf(uint8(0)),
	reflect.Uint16:  reflect.TypeOf(uint16(0)),
	reflect.Uint32:  reflect.TypeOf(uint32(0)),
	reflect.Uint64:  reflect.TypeOf(uint64(0)),
	reflect.Float32: reflect.TypeOf(float32(0)),
	reflect.Float64: reflect.TypeOf(float64(0)),
	reflect.String:  reflect.TypeOf(""),
}

// serializerTable resolves concrete types to serializers. Resolutions are memoized per concrete type
// for the lifetime of the table; the table is shared by all writers of a Mapper, so the memo is a
// concurrent map.
type serializerTable struct {
	registry *TypeRegistry

	exact map[reflect.Type]*Serializer

	// Serializers for interface types, in catalogue order
	interfaces []*Serializer

	cache sync.Map // reflect.Type -> *binding
}

func newSerializerTable(registry *TypeRegistry) *serializerTable {
	return &serializerTable{
		registry: registry,
		exact:    map[reflect.Type]*Serializer{},
	}
}

// add registers s. A later serializer for the same type replaces the earlier one, so extension
// modules can override the core module.
func (table *serializerTable) add(s Serializer) {
	serializer := &s
	if s.Type.Kind() == reflect.Interface {
		replaced := false
		for i, existing := range table.interfaces {
			if existing.Type == s.Type {
				table.interfaces[i] = serializer
				replaced = true
			}
		}
		if !replaced {
			table.interfaces = append(table.interfaces, serializer)
		}
	}
	table.exact[s.Type] = serializer
}

// bindingFor returns the binding of t or nil if values of t cannot be written.
func (table *serializerTable) bindingFor(t reflect.Type) *binding {
	if cached, ok := table.cache.Load(t); ok {
		if b := cached.(*binding); b != noBinding {
			return b
		}
		return nil
	}

	b := table.resolve(t)
	if b == nil {
		table.cache.Store(t, noBinding)
		return nil
	}
	table.cache.Store(t, b)
	return b
}

// resolve finds the serializer for t: an exact match first, then registered interfaces in catalogue
// order, then the generic container serializers, then the underlying basic type of a named basic
// type and finally the element type of a pointer.
func (table *serializerTable) resolve(t reflect.Type) *binding {
	if s, exists := table.exact[t]; exists {
		return table.newBinding(s, nil)
	}

	for _, s := range table.interfaces {
		if t.Implements(s.Type) {
			return table.newBinding(s, nil)
		}
	}

	switch t.Kind() {
	case reflect.Map:
		if s, exists := table.exact[genericMapType]; exists {
			return table.newBinding(s, nil)
		}

	case reflect.Slice, reflect.Array:
		// A byte slice is binary data, not a list of numbers. It is only written by a module that
		// registers []byte.
		if t.Elem().Kind() != reflect.Uint8 {
			if s, exists := table.exact[genericListType]; exists {
				return table.newBinding(s, nil)
			}
		}

	case reflect.Ptr:
		return &binding{indirect: true}
	}

	if basic, isBasic := basicTypes[t.Kind()]; isBasic && basic != t {
		if s, exists := table.exact[basic]; exists {
			return table.newBinding(s, basic)
		}
	}

	return nil
}

func (table *serializerTable) newBinding(s *Serializer, convert reflect.Type) *binding {
	tag, _ := table.registry.lookupTag(s.Type)
	return &binding{
		serializer: s,
		tag:        tag,
		convert:    convert,
	}
}
