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
	"math"
	"reflect"
	"sort"
	"strconv"
	"time"

	"github.com/botobag/graphson/token"

	"github.com/google/uuid"
)

// Types of the core catalogue
var (
	boolType      = reflect.TypeOf(false)
	intType       = reflect.TypeOf(int(0))
	int8Type      = reflect.TypeOf(int8(0))
	int16Type     = reflect.TypeOf(int16(0))
	int32Type     = reflect.TypeOf(int32(0))
	uintType      = reflect.TypeOf(uint(0))
	uint8Type     = reflect.TypeOf(uint8(0))
	uint16Type    = reflect.TypeOf(uint16(0))
	uint32Type    = reflect.TypeOf(uint32(0))
	uint64Type    = reflect.TypeOf(uint64(0))
	float32Type   = reflect.TypeOf(float32(0))
	float64Type   = reflect.TypeOf(float64(0))
	uuidType      = reflect.TypeOf(uuid.UUID{})
	timeType      = reflect.TypeOf(time.Time{})
	timestampType = reflect.TypeOf(Timestamp{})
	classType     = reflect.TypeOf(Class(""))
	setType       = reflect.TypeOf((*Set)(nil))
)

// malformed builds the error for a payload that does not have the shape its type requires.
func malformed(t reflect.Type, message string) error {
	return NewError(message, Op("graphson.Reader.ReadValue"), t, ErrKindMalformedEnvelope)
}

// addPrimitives adds the scalar types shared by all versions. Only tagged versions get their tags.
func addPrimitives(module *Module, tagged bool) {
	tag := func(localName string) string {
		if tagged {
			return localName
		}
		return ""
	}

	module.Add(stringType, "", ShapeScalar, writeString, readString)
	module.Add(boolType, "", ShapeScalar, writeBool, readBool)

	module.Add(int32Type, tag("Int32"), ShapeScalar, writeInt32, readInt32)
	module.Add(int64Type, tag("Int64"), ShapeScalar, writeInt64, readInt64)
	module.Add(float32Type, tag("Float"), ShapeScalar, writeFloat, readFloat)
	module.Add(float64Type, tag("Double"), ShapeScalar, writeDouble, readDouble)
	module.Add(uuidType, tag("UUID"), ShapeScalar, writeUUID, readUUID)
	module.Add(timeType, tag("Date"), ShapeScalar, writeDate, readDate)
	module.Add(timestampType, tag("Timestamp"), ShapeScalar, writeTimestamp, readTimestamp)
	module.Add(classType, tag("Class"), ShapeScalar, writeClass, readClass)

	// Go integer types without a tag of their own are written as the nearest tagged type.
	module.Add(intType, "", ShapeScalar, widenInt, nil)
	module.Add(int8Type, "", ShapeScalar, widenInt, nil)
	module.Add(int16Type, "", ShapeScalar, widenInt, nil)
	module.Add(uintType, "", ShapeScalar, widenUint, nil)
	module.Add(uint8Type, "", ShapeScalar, widenUint, nil)
	module.Add(uint16Type, "", ShapeScalar, widenUint, nil)
	module.Add(uint32Type, "", ShapeScalar, widenUint, nil)
	module.Add(uint64Type, "", ShapeScalar, widenUint, nil)
}

func writeString(w *Writer, v interface{}) error {
	w.WriteString(v.(string))
	return nil
}

func readString(r *Reader) (interface{}, error) {
	return r.ReadString()
}

func writeBool(w *Writer, v interface{}) error {
	w.WriteBool(v.(bool))
	return nil
}

func readBool(r *Reader) (interface{}, error) {
	return r.ReadBool()
}

func writeInt32(w *Writer, v interface{}) error {
	w.WriteInt32(v.(int32))
	return nil
}

func readInt32(r *Reader) (interface{}, error) {
	return r.ReadInt32()
}

func writeInt64(w *Writer, v interface{}) error {
	w.WriteInt64(v.(int64))
	return nil
}

func readInt64(r *Reader) (interface{}, error) {
	return r.ReadInt64()
}

// widenInt writes int as int64 and int8 and int16 as int32.
func widenInt(w *Writer, v interface{}) error {
	switch v := v.(type) {
	case int:
		return w.WriteValue(int64(v))
	case int8:
		return w.WriteValue(int32(v))
	case int16:
		return w.WriteValue(int32(v))
	}
	return NewError(fmt.Sprintf("unexpected integer %T", v), Op("graphson.Writer.WriteValue"), ErrKindOther)
}

// widenUint writes uint8 and uint16 as int32 and other unsigned integers as int64.
func widenUint(w *Writer, v interface{}) error {
	switch v := v.(type) {
	case uint8:
		return w.WriteValue(int32(v))
	case uint16:
		return w.WriteValue(int32(v))
	case uint32:
		return w.WriteValue(int64(v))
	}

	u := reflect.ValueOf(v).Uint()
	if u > math.MaxInt64 {
		return NewError("unsigned integer "+strconv.FormatUint(u, 10)+" does not fit in a 64-bit integer",
			Op("graphson.Writer.WriteValue"), reflect.TypeOf(v), ErrKindTypeMismatch)
	}
	return w.WriteValue(int64(u))
}

// writeSpecialFloat writes NaN and infinities as the strings GraphSON uses for them. It returns false
// for other values.
func writeSpecialFloat(w *Writer, f float64) bool {
	switch {
	case math.IsNaN(f):
		w.WriteString("NaN")
	case math.IsInf(f, 1):
		w.WriteString("Infinity")
	case math.IsInf(f, -1):
		w.WriteString("-Infinity")
	default:
		return false
	}
	return true
}

func writeFloat(w *Writer, v interface{}) error {
	f := v.(float32)
	if writeSpecialFloat(w, float64(f)) {
		return nil
	}
	return w.WriteFloat32(f)
}

func readFloat(r *Reader) (interface{}, error) {
	f, err := r.ReadFloat64()
	if err != nil {
		return nil, err
	}
	if !math.IsInf(f, 0) && math.Abs(f) > math.MaxFloat32 {
		return nil, NewError("number does not fit in a 32-bit float", Op("graphson.Reader.ReadValue"),
			float32Type, ErrKindTypeMismatch)
	}
	return float32(f), nil
}

func writeDouble(w *Writer, v interface{}) error {
	f := v.(float64)
	if writeSpecialFloat(w, f) {
		return nil
	}
	return w.WriteFloat64(f)
}

func readDouble(r *Reader) (interface{}, error) {
	return r.ReadFloat64()
}

func writeUUID(w *Writer, v interface{}) error {
	w.WriteString(v.(uuid.UUID).String())
	return nil
}

func readUUID(r *Reader) (interface{}, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return nil, NewError("invalid UUID "+strconv.Quote(s), Op("graphson.Reader.ReadValue"), uuidType,
			ErrKindMalformedEnvelope, err)
	}
	return id, nil
}

// Dates are written as milliseconds since the Unix epoch and read back in UTC.
func writeDate(w *Writer, v interface{}) error {
	w.WriteInt64(v.(time.Time).UnixMilli())
	return nil
}

func readDate(r *Reader) (interface{}, error) {
	ms, err := r.ReadInt64()
	if err != nil {
		return nil, err
	}
	return time.UnixMilli(ms).UTC(), nil
}

func writeTimestamp(w *Writer, v interface{}) error {
	w.WriteInt64(v.(Timestamp).UnixMilli())
	return nil
}

func readTimestamp(r *Reader) (interface{}, error) {
	ms, err := r.ReadInt64()
	if err != nil {
		return nil, err
	}
	return Timestamp{time.UnixMilli(ms).UTC()}, nil
}

func writeClass(w *Writer, v interface{}) error {
	w.WriteString(string(v.(Class)))
	return nil
}

func readClass(r *Reader) (interface{}, error) {
	s, err := r.ReadString()
	if err != nil {
		return nil, err
	}
	return Class(s), nil
}

//===----------------------------------------------------------------------------------------====//
// Containers
//===----------------------------------------------------------------------------------------====//

// addContainers adds maps, lists and sets. With tagged (V2 and V3), they are written with their tags
// and read from either map layout; otherwise they are written untagged and read as natural JSON.
func addContainers(module *Module, tagged bool) {
	if tagged {
		module.Add(genericMapType, "Map", ShapeMap, writeMap, readMap)
		module.Add(genericListType, "List", ShapeList, writeList, readList)
		module.Add(setType, "Set", ShapeSet, writeSet, readSet)
		return
	}

	module.AddSerializer(genericMapType, ShapeMap, writeMap)
	module.AddSerializer(genericListType, ShapeList, writeList)
	module.Add(setType, "", ShapeSet, writeSet, readSet)
}

// writeMap writes any map. With Writer.Normalize, entries are sorted by the text of their keys.
func writeMap(w *Writer, v interface{}) error {
	value := reflect.ValueOf(v)
	keys := value.MapKeys()
	if w.Normalize() {
		sortKeys(keys)
	}

	m := w.BeginMap()
	for _, key := range keys {
		if err := m.Entry(key.Interface(), value.MapIndex(key).Interface()); err != nil {
			return err
		}
	}
	return m.End()
}

// sortKeys orders keys by their text, then by the name of their type so keys with the same text
// (such as int32(1) and "1") keep a fixed order.
func sortKeys(keys []reflect.Value) {
	type sortKey struct {
		key      reflect.Value
		text     string
		typeName string
	}

	sorted := make([]sortKey, len(keys))
	for i, key := range keys {
		t := key.Type()
		if key.Kind() == reflect.Interface && !key.IsNil() {
			t = key.Elem().Type()
		}
		sorted[i] = sortKey{
			key:      key,
			text:     fmt.Sprint(key.Interface()),
			typeName: t.String(),
		}
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i], sorted[j]
		if a.text != b.text {
			return a.text < b.text
		}
		return a.typeName < b.typeName
	})

	for i := range sorted {
		keys[i] = sorted[i].key
	}
}

// readMap reads the flattened layout [k1, v1, k2, v2, ...] (V3) or a JSON object whose member names
// are the keys (V2).
func readMap(r *Reader) (interface{}, error) {
	m := map[interface{}]interface{}{}

	switch r.Current().Kind {
	case token.KindObjectStart:
		err := r.ReadObject(func(name string) error {
			value, err := r.ReadValue(nil)
			if err != nil {
				return err
			}
			m[name] = value
			return nil
		})
		if err != nil {
			return nil, err
		}
		return m, nil

	case token.KindArrayStart:

	default:
		return nil, malformed(genericMapType, "expected the entries of a map but found "+r.Current().String())
	}

	for {
		t, err := r.Next()
		if err != nil {
			return nil, err
		}
		if t.Kind == token.KindArrayEnd {
			return m, nil
		}

		key, err := r.ReadValue(nil)
		if err != nil {
			return nil, err
		}
		if key != nil && !reflect.TypeOf(key).Comparable() {
			return nil, malformed(genericMapType, fmt.Sprintf("map key of type %T cannot be used as a Go map key", key))
		}

		t, err = r.Next()
		if err != nil {
			return nil, err
		}
		if t.Kind == token.KindArrayEnd {
			return nil, malformed(genericMapType, "map entries have a key without a value")
		}

		value, err := r.ReadValue(nil)
		if err != nil {
			return nil, err
		}
		m[key] = value
	}
}

// writeList writes any slice or array.
func writeList(w *Writer, v interface{}) error {
	list := w.BeginList()

	if items, ok := v.([]interface{}); ok {
		for _, item := range items {
			if err := list.Element(item); err != nil {
				return err
			}
		}
		return list.End()
	}

	value := reflect.ValueOf(v)
	for i, n := 0, value.Len(); i < n; i++ {
		if err := list.Element(value.Index(i).Interface()); err != nil {
			return err
		}
	}
	return list.End()
}

func readList(r *Reader) (interface{}, error) {
	list := []interface{}{}
	err := r.ReadArray(func() error {
		v, err := r.ReadValue(nil)
		if err != nil {
			return err
		}
		list = append(list, v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

func writeSet(w *Writer, v interface{}) error {
	set := w.BeginSet()
	for _, item := range v.(*Set).Items() {
		if err := set.Element(item); err != nil {
			return err
		}
	}
	return set.End()
}

func readSet(r *Reader) (interface{}, error) {
	set := &Set{}
	err := r.ReadArray(func() error {
		v, err := r.ReadValue(nil)
		if err != nil {
			return err
		}
		set.Add(v)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return set, nil
}
