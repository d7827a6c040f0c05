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

	"github.com/botobag/graphson/jsonwriter"
)

// Writer writes values in the wire format of a Mapper. Serializers receive it to write the natural
// shape of their values; nested values go through WriteValue so they are tagged as the version
// requires.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	mapper   *Mapper
	stream   *jsonwriter.Stream
	envelope envelopeWriter

	// Tag to announce with "@class" in the next object (V1 with types)
	classHint Tag
}

func newWriter(mapper *Mapper, stream *jsonwriter.Stream) *Writer {
	return &Writer{
		mapper:   mapper,
		stream:   stream,
		envelope: mapper.envelope,
	}
}

// Version returns the wire format version being written.
func (w *Writer) Version() Version {
	return w.mapper.version
}

// Typing returns the type embedding policy in effect.
func (w *Writer) Typing() Typing {
	return w.mapper.typing
}

// Normalize returns true if map entries are to be written in a stable order.
func (w *Writer) Normalize() bool {
	return w.mapper.normalize
}

// WriteValue writes v, tagging it if its type has a tag and the typing policy asks for tags.
func (w *Writer) WriteValue(v interface{}) error {
	if v == nil {
		w.stream.WriteNil()
		return nil
	}

	t := reflect.TypeOf(v)
	switch t.Kind() {
	case reflect.Map, reflect.Slice, reflect.Ptr, reflect.Interface:
		if reflect.ValueOf(v).IsNil() {
			w.stream.WriteNil()
			return nil
		}
	}

	b := w.mapper.serializers.bindingFor(t)
	if b == nil {
		if w.mapper.typing == PartialTypes {
			return NewError("no serializer is registered for the type", Op("graphson.Writer.WriteValue"), t,
				ErrKindUnregisteredType)
		}
		w.stream.WriteInterface(v)
		return w.stream.Error()
	}

	if b.indirect {
		return w.WriteValue(reflect.ValueOf(v).Elem().Interface())
	}

	if b.convert != nil {
		v = reflect.ValueOf(v).Convert(b.convert).Interface()
	}

	serializer := b.serializer
	if len(b.tag) == 0 {
		return serializer.Serialize(w, v)
	}
	return w.envelope.writeTagged(w, b.tag, serializer.Shape, func() error {
		return serializer.Serialize(w, v)
	})
}

// WriteNil writes null.
func (w *Writer) WriteNil() {
	w.stream.WriteNil()
}

// WriteBool writes true or false.
func (w *Writer) WriteBool(b bool) {
	w.stream.WriteBool(b)
}

// WriteString writes a JSON string.
func (w *Writer) WriteString(s string) {
	w.stream.WriteString(s)
}

// WriteInt32 writes an int32 as a JSON number.
func (w *Writer) WriteInt32(i int32) {
	w.stream.WriteInt32(i)
}

// WriteInt64 writes an int64 as a JSON number.
func (w *Writer) WriteInt64(i int64) {
	w.stream.WriteInt64(i)
}

// WriteUint64 writes a uint64 as a JSON number.
func (w *Writer) WriteUint64(i uint64) {
	w.stream.WriteUint64(i)
}

// WriteFloat32 writes a float32 as a JSON number. It fails for NaN and infinities.
func (w *Writer) WriteFloat32(f float32) error {
	w.stream.WriteFloat32(f)
	return w.stream.Error()
}

// WriteFloat64 writes a float64 as a JSON number. It fails for NaN and infinities.
func (w *Writer) WriteFloat64(f float64) error {
	w.stream.WriteFloat64(f)
	return w.stream.Error()
}

// WriteRawNumber writes a number literal (such as the output of big.Int.String) as is.
func (w *Writer) WriteRawNumber(literal string) {
	w.stream.WriteRawNumber(literal)
}

// BeginObject starts a JSON object with fixed member names.
func (w *Writer) BeginObject() *ObjectWriter {
	w.stream.WriteObjectStart()
	object := &ObjectWriter{w: w}
	if hint := w.classHint; len(hint) > 0 {
		w.classHint = ""
		object.RawField(classProperty).WriteString(string(hint))
	}
	return object
}

// BeginMap starts a key/value container. Its layout depends on the version: a JSON object with
// stringified keys, or (V3) an array of alternating typed keys and values.
func (w *Writer) BeginMap() *MapWriter {
	w.classHint = ""
	w.envelope.beginMap(w)
	return &MapWriter{w: w}
}

// BeginList starts an ordered collection.
func (w *Writer) BeginList() *ArrayWriter {
	w.classHint = ""
	w.stream.WriteArrayStart()
	return &ArrayWriter{w: w}
}

// BeginSet starts a collection of distinct elements. Sets are laid out like lists.
func (w *Writer) BeginSet() *ArrayWriter {
	return w.BeginList()
}

// ObjectWriter writes the members of an object started with Writer.BeginObject.
type ObjectWriter struct {
	w     *Writer
	count int
}

// Field writes a member.
func (object *ObjectWriter) Field(name string, v interface{}) error {
	return object.RawField(name).WriteValue(v)
}

// RawField writes the member name and returns the Writer to write exactly one value with.
func (object *ObjectWriter) RawField(name string) *Writer {
	w := object.w
	if object.count > 0 {
		w.stream.WriteMore()
	}
	object.count++
	w.stream.WriteObjectField(name)
	return w
}

// End closes the object.
func (object *ObjectWriter) End() error {
	object.w.stream.WriteObjectEnd()
	return object.w.stream.Error()
}

// MapWriter writes the entries of a map started with Writer.BeginMap.
type MapWriter struct {
	w     *Writer
	count int
}

// Entry writes a key and its value.
func (m *MapWriter) Entry(key interface{}, value interface{}) error {
	w := m.w
	if m.count > 0 {
		w.stream.WriteMore()
	}
	m.count++
	if err := w.envelope.writeMapKey(w, key); err != nil {
		return err
	}
	return w.WriteValue(value)
}

// End closes the map.
func (m *MapWriter) End() error {
	m.w.envelope.endMap(m.w)
	return m.w.stream.Error()
}

// ArrayWriter writes the elements of a list or a set.
type ArrayWriter struct {
	w     *Writer
	count int
}

// Element writes an element.
func (array *ArrayWriter) Element(v interface{}) error {
	return array.RawElement().WriteValue(v)
}

// RawElement writes the separator if needed and returns the Writer to write exactly one value with.
func (array *ArrayWriter) RawElement() *Writer {
	w := array.w
	if array.count > 0 {
		w.stream.WriteMore()
	}
	array.count++
	return w
}

// End closes the collection.
func (array *ArrayWriter) End() error {
	array.w.stream.WriteArrayEnd()
	return array.w.stream.Error()
}
