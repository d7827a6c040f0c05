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

package jsonwriter

import (
	"encoding/json"
	"math"
	"reflect"
	"strconv"
)

// WriteFloat32 writes a float32. NaN and infinities are not representable in JSON and put the
// stream into error state.
func (stream *Stream) WriteFloat32(f float32) {
	stream.writeFloat(float64(f), 32)
}

// WriteFloat64 writes a float64. NaN and infinities are not representable in JSON and put the
// stream into error state.
func (stream *Stream) WriteFloat64(f float64) {
	stream.writeFloat(f, 64)
}

// writeFloat formats f the way encoding/json does [0].
//
// [0]: https://go.googlesource.com/go/+/5fae09b/src/encoding/json/encode.go#546.
func (stream *Stream) writeFloat(f float64, bits int) {
	if stream.err != nil {
		return
	}

	if math.IsInf(f, 0) || math.IsNaN(f) {
		var value reflect.Value
		if bits == 32 {
			value = reflect.ValueOf(float32(f))
		} else {
			value = reflect.ValueOf(f)
		}
		stream.err = &json.UnsupportedValueError{
			Value: value,
			Str:   strconv.FormatFloat(f, 'g', -1, bits),
		}
		return
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}

	b := strconv.AppendFloat(stream.scratch[:0], f, format, -1, bits)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}

	stream.write(b)
}
