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
	"io"
	"reflect"
)

const initialStreamBufSize = 512

// Stream writes JSON tokens to an io.Writer. Writes are collected in a small buffer that is handed to
// the writer when it fills up or when Flush is called.
//
// Stream does not track the structure of what is written. Callers are responsible for emitting a
// well-formed sequence (separators included); GraphSON writers do this through graphson.Writer.
type Stream struct {
	// Output stream
	w io.Writer

	// Pending output. Small writes (punctuation, literals) are appended here directly.
	buf []byte

	// Scratch space for number formatting
	scratch [64]byte

	// encoding/json encoder for values this stream cannot encode by itself; created on first use.
	fallbackEncoder *json.Encoder

	// First error occurred during writing. Once set, all subsequent writes are discarded.
	err error
}

// NewStream creates a stream that writes JSON to w.
func NewStream(w io.Writer) *Stream {
	return &Stream{
		w:   w,
		buf: make([]byte, 0, initialStreamBufSize),
	}
}

// Error returns the first error occurred during use of the stream.
func (stream *Stream) Error() error {
	return stream.err
}

// SetError records err as the stream error unless one has been recorded already. It lets value
// writers built on top of Stream abort the output.
func (stream *Stream) SetError(err error) {
	if stream.err == nil {
		stream.err = err
	}
}

// write appends b to the pending output, handing the output to w when it grows past the initial
// buffer size.
func (stream *Stream) write(b []byte) {
	if stream.err != nil {
		return
	}

	buf := stream.buf
	if len(buf)+len(b) < initialStreamBufSize {
		stream.buf = append(buf, b...)
		return
	}

	if len(buf) > 0 {
		_, err := stream.w.Write(buf)
		stream.buf = buf[:0]
		if err != nil {
			stream.err = err
			return
		}
	}

	if len(b) > 0 {
		if _, err := stream.w.Write(b); err != nil {
			stream.err = err
		}
	}
}

// Flush writes any buffered data to the underlying io.Writer.
func (stream *Stream) Flush() error {
	if stream.err != nil {
		return stream.err
	}

	if buf := stream.buf; len(buf) > 0 {
		_, err := stream.w.Write(buf)
		stream.buf = buf[:0]
		if err != nil {
			stream.err = err
			return err
		}
	}

	return nil
}

func (stream *Stream) writeOneByte(b byte) {
	stream.buf = append(stream.buf, b)
}

func (stream *Stream) writeTwoBytes(b1 byte, b2 byte) {
	stream.buf = append(stream.buf, b1, b2)
}

// WriteRawString writes s to the output as is.
func (stream *Stream) WriteRawString(s string) {
	stream.write([]byte(s))
}

// WriteRawNumber writes the text of a JSON number literal (such as the one carried by a number
// token or produced by big.Int.String) as is. The caller is responsible for passing a valid literal.
func (stream *Stream) WriteRawNumber(literal string) {
	if len(literal) == 0 {
		stream.writeOneByte('0')
		return
	}
	stream.WriteRawString(literal)
}

// WriteMore writes a ",".
func (stream *Stream) WriteMore() {
	stream.writeOneByte(',')
}

// WriteArrayStart writes a "[".
func (stream *Stream) WriteArrayStart() {
	stream.writeOneByte('[')
}

// WriteArrayEnd writes a "]".
func (stream *Stream) WriteArrayEnd() {
	stream.writeOneByte(']')
}

// WriteEmptyArray writes "[]".
func (stream *Stream) WriteEmptyArray() {
	stream.writeTwoBytes('[', ']')
}

// WriteObjectStart writes a "{".
func (stream *Stream) WriteObjectStart() {
	stream.writeOneByte('{')
}

// WriteObjectField writes a "field:".
func (stream *Stream) WriteObjectField(field string) {
	stream.WriteString(field)
	stream.writeOneByte(':')
}

// WriteObjectEnd writes a "}".
func (stream *Stream) WriteObjectEnd() {
	stream.writeOneByte('}')
}

// WriteEmptyObject writes "{}".
func (stream *Stream) WriteEmptyObject() {
	stream.writeTwoBytes('{', '}')
}

// WriteBool encodes a boolean value.
func (stream *Stream) WriteBool(b bool) {
	if b {
		stream.buf = append(stream.buf, 't', 'r', 'u', 'e')
	} else {
		stream.buf = append(stream.buf, 'f', 'a', 'l', 's', 'e')
	}
}

// WriteNil writes "null".
func (stream *Stream) WriteNil() {
	stream.buf = append(stream.buf, 'n', 'u', 'l', 'l')
}

// streamWriter adapts a Stream into an io.Writer for the fallback encoder.
type streamWriter struct {
	stream *Stream
}

func (writer streamWriter) Write(p []byte) (n int, err error) {
	stream := writer.stream
	stream.write(p)
	err = stream.err
	if err == nil {
		n = len(p)
	}
	return
}

var jsonMarshalerType = reflect.TypeOf(new(json.Marshaler)).Elem()

// WriteInterface writes an arbitrary value. Basic kinds (including named types and pointers to
// them) and ValueMarshaler are written directly; everything else is handed to encoding/json.
func (stream *Stream) WriteInterface(v interface{}) {
	if stream.err != nil {
		return
	}

	switch v := v.(type) {
	case nil:
		stream.WriteNil()
		return
	case bool:
		stream.WriteBool(v)
		return
	case string:
		stream.WriteString(v)
		return
	case int:
		stream.WriteInt(v)
		return
	case int32:
		stream.WriteInt32(v)
		return
	case int64:
		stream.WriteInt64(v)
		return
	case float64:
		stream.WriteFloat64(v)
		return
	case ValueMarshaler:
		stream.WriteValue(v)
		return
	}

	value := reflect.ValueOf(v)
	if value.Type().Implements(jsonMarshalerType) {
		stream.writeInterfaceFallback(v)
		return
	}

	switch value.Kind() {
	case reflect.Bool:
		stream.WriteBool(value.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		stream.WriteInt64(value.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		stream.WriteUint64(value.Uint())
	case reflect.Float32:
		stream.WriteFloat32(float32(value.Float()))
	case reflect.Float64:
		stream.WriteFloat64(value.Float())
	case reflect.String:
		stream.WriteString(value.String())
	case reflect.Ptr, reflect.Interface:
		if value.IsNil() {
			stream.WriteNil()
		} else {
			stream.WriteInterface(value.Elem().Interface())
		}
	default:
		stream.writeInterfaceFallback(v)
	}
}

// writeInterfaceFallback encodes v with encoding/json.
func (stream *Stream) writeInterfaceFallback(v interface{}) {
	encoder := stream.fallbackEncoder
	if encoder == nil {
		encoder = json.NewEncoder(streamWriter{stream})
		stream.fallbackEncoder = encoder
	}

	// json.Encoder terminates each value with a newline; drop it so the value can be embedded.
	start := len(stream.buf)
	if err := encoder.Encode(v); err != nil {
		stream.SetError(err)
		return
	}
	if n := len(stream.buf); n > start && stream.buf[n-1] == '\n' {
		stream.buf = stream.buf[:n-1]
	}
}
