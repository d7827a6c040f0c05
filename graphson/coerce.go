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
	"math"
	"reflect"
)

// compatible reports whether a decoded value of type actual can be returned for a request of type
// expected.
func compatible(actual reflect.Type, expected reflect.Type) bool {
	switch {
	case expected == nil:
		return true
	case actual.AssignableTo(expected):
		return true
	case expected.Kind() == reflect.Ptr && compatible(actual, expected.Elem()):
		return true
	case actual.Kind() == reflect.Ptr && actual.Elem().AssignableTo(expected):
		return true
	case isNumberKind(actual.Kind()) && isNumberKind(expected.Kind()):
		return true
	case actual.Kind() == reflect.String && expected.Kind() == reflect.String:
		return true
	case actual.Kind() == reflect.Map && expected.Kind() == reflect.Map:
		return true
	case actual.Kind() == reflect.Slice && expected.Kind() == reflect.Slice:
		return true
	}
	return false
}

func isNumberKind(kind reflect.Kind) bool {
	return isIntKind(kind) || isUintKind(kind) || isFloatKind(kind)
}

func isIntKind(kind reflect.Kind) bool {
	return kind >= reflect.Int && kind <= reflect.Int64
}

func isUintKind(kind reflect.Kind) bool {
	return kind >= reflect.Uint && kind <= reflect.Uintptr
}

func isFloatKind(kind reflect.Kind) bool {
	return kind == reflect.Float32 || kind == reflect.Float64
}

func isNillableKind(kind reflect.Kind) bool {
	switch kind {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return true
	}
	return false
}

// coerce converts a decoded value to expected. Numbers are converted only when the value survives the
// conversion unchanged, so 0.1 is not read into a float32. Containers are converted element by element
// and a pointer type receives a pointer to the converted value.
func coerce(v interface{}, expected reflect.Type) (interface{}, error) {
	if expected == nil || expected == anyType {
		return v, nil
	}

	if v == nil {
		if isNillableKind(expected.Kind()) {
			return reflect.Zero(expected).Interface(), nil
		}
		return nil, nil
	}

	value, err := coerceValue(reflect.ValueOf(v), expected)
	if err != nil {
		return nil, err
	}
	return value.Interface(), nil
}

func coerceValue(value reflect.Value, expected reflect.Type) (reflect.Value, error) {
	// Unwrap interface{} elements of natural containers.
	if value.Kind() == reflect.Interface {
		if value.IsNil() {
			return reflect.Zero(expected), nil
		}
		value = value.Elem()
	}

	actual := value.Type()
	if actual == expected {
		return value, nil
	}
	if actual.AssignableTo(expected) {
		result := reflect.New(expected).Elem()
		result.Set(value)
		return result, nil
	}

	switch {
	case expected.Kind() == reflect.Ptr && actual.Kind() != reflect.Ptr:
		elem, err := coerceValue(value, expected.Elem())
		if err != nil {
			return reflect.Value{}, err
		}
		ptr := reflect.New(expected.Elem())
		ptr.Elem().Set(elem)
		return ptr, nil

	case actual.Kind() == reflect.Ptr && !value.IsNil() && actual.Elem().AssignableTo(expected):
		return coerceValue(value.Elem(), expected)

	case isNumberKind(actual.Kind()) && isNumberKind(expected.Kind()):
		if result, ok := convertNumber(value, expected); ok {
			return result, nil
		}

	case actual.Kind() == reflect.String && expected.Kind() == reflect.String:
		return value.Convert(expected), nil

	case actual.Kind() == reflect.Map && expected.Kind() == reflect.Map:
		result := reflect.MakeMapWithSize(expected, value.Len())
		iter := value.MapRange()
		for iter.Next() {
			k, err := coerceValue(iter.Key(), expected.Key())
			if err != nil {
				return reflect.Value{}, err
			}
			v, err := coerceValue(iter.Value(), expected.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			result.SetMapIndex(k, v)
		}
		return result, nil

	case actual.Kind() == reflect.Slice && expected.Kind() == reflect.Slice:
		n := value.Len()
		result := reflect.MakeSlice(expected, n, n)
		for i := 0; i < n; i++ {
			elem, err := coerceValue(value.Index(i), expected.Elem())
			if err != nil {
				return reflect.Value{}, err
			}
			result.Index(i).Set(elem)
		}
		return result, nil
	}

	return reflect.Value{}, NewError("cannot convert "+actual.String()+" to "+expected.String(),
		Op("graphson.Reader.ReadValue"), expected, ErrKindTypeMismatch)
}

// convertNumber converts value to a number type without losing anything.
func convertNumber(value reflect.Value, expected reflect.Type) (reflect.Value, bool) {
	result := reflect.New(expected).Elem()

	switch {
	case isIntKind(value.Kind()):
		i := value.Int()
		switch {
		case isIntKind(expected.Kind()):
			if result.OverflowInt(i) {
				return result, false
			}
			result.SetInt(i)
		case isUintKind(expected.Kind()):
			if i < 0 || result.OverflowUint(uint64(i)) {
				return result, false
			}
			result.SetUint(uint64(i))
		default:
			f := float64(i)
			if int64(f) != i || !floatFits(f, expected) {
				return result, false
			}
			result.SetFloat(f)
		}

	case isUintKind(value.Kind()):
		u := value.Uint()
		switch {
		case isIntKind(expected.Kind()):
			if u > math.MaxInt64 || result.OverflowInt(int64(u)) {
				return result, false
			}
			result.SetInt(int64(u))
		case isUintKind(expected.Kind()):
			if result.OverflowUint(u) {
				return result, false
			}
			result.SetUint(u)
		default:
			f := float64(u)
			if uint64(f) != u || !floatFits(f, expected) {
				return result, false
			}
			result.SetFloat(f)
		}

	default:
		f := value.Float()
		switch {
		case isIntKind(expected.Kind()):
			if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 || result.OverflowInt(int64(f)) {
				return result, false
			}
			result.SetInt(int64(f))
		case isUintKind(expected.Kind()):
			if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 || result.OverflowUint(uint64(f)) {
				return result, false
			}
			result.SetUint(uint64(f))
		default:
			if !floatFits(f, expected) {
				return result, false
			}
			result.SetFloat(f)
		}
	}

	return result, true
}

// floatFits reports whether f survives a round trip through the float type expected. NaN is
// carried over as is.
func floatFits(f float64, expected reflect.Type) bool {
	if expected.Kind() != reflect.Float32 || f != f {
		return true
	}
	return float64(float32(f)) == f
}
