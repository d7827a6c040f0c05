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
	"strconv"
	"strings"

	"github.com/botobag/graphson/iterator"
	"github.com/botobag/graphson/token"
)

// detectMode selects how objects in the input are inspected for type information.
type detectMode uint8

const (
	// Objects are plain values.
	detectNone detectMode = iota
	// Objects may be {"@type": tag, "@value": value} envelopes.
	detectEnvelope
	// Objects may start with an "@class" hint.
	detectClassHint
)

var (
	anyType   = reflect.TypeOf((*interface{})(nil)).Elem()
	int64Type = reflect.TypeOf(int64(0))
)

// Reader reads values from a token stream in the wire format of a Mapper. Deserializers receive it
// positioned on the first token of the value they read and must leave it on the last one.
//
// A Reader is not safe for concurrent use.
type Reader struct {
	mapper *Mapper
	src    token.Source
	detect detectMode
}

func newReader(mapper *Mapper, src token.Source) *Reader {
	return &Reader{
		mapper: mapper,
		src:    src,
		detect: mapper.detect,
	}
}

// child creates a reader over a reconstructed stream.
func (r *Reader) child(src token.Source) *Reader {
	return &Reader{
		mapper: r.mapper,
		src:    src,
		detect: r.detect,
	}
}

// Version returns the wire format version being read.
func (r *Reader) Version() Version {
	return r.mapper.version
}

// Current returns the token the reader is positioned on.
func (r *Reader) Current() token.Token {
	return r.src.Current()
}

// Next advances to the next token. Running out of tokens is a syntax error: a value being read is
// always complete.
func (r *Reader) Next() (token.Token, error) {
	t, err := r.src.Next()
	if err != nil {
		return token.Token{}, syntaxError(err)
	}
	return t, nil
}

func syntaxError(err error) error {
	if err == iterator.Done {
		err = token.ErrUnexpectedEnd
	}
	if _, ok := err.(*Error); ok {
		return err
	}
	return NewError("cannot read input", Op("graphson.Reader.Next"), ErrKindSyntax, err)
}

// mismatch builds the error for a token that cannot start a value of the wanted type.
func (r *Reader) mismatch(want string, t reflect.Type) error {
	args := []interface{}{Op("graphson.Reader.ReadValue"), ErrKindTypeMismatch}
	if t != nil {
		args = append(args, t)
	}
	return NewError("expected "+want+" but found "+r.src.Current().String(), args...)
}

// ReadValue reads the value the reader is positioned on. If expected is not nil, the result is a
// value of expected, or an error of kind ErrKindTypeMismatch.
func (r *Reader) ReadValue(expected reflect.Type) (interface{}, error) {
	if expected == anyType {
		expected = nil
	}

	current := r.src.Current()
	if !current.IsValid() {
		return nil, syntaxError(token.ErrUnexpectedEnd)
	}

	if current.Kind == token.KindObjectStart {
		switch r.detect {
		case detectEnvelope:
			return r.readEnvelope(expected)
		case detectClassHint:
			return r.readClassHint(expected)
		}
	}

	return r.readUntyped(expected)
}

// ReadObject reads the members of the object the reader is positioned on. fn is called with the
// reader positioned on the first token of each member value.
func (r *Reader) ReadObject(fn func(name string) error) error {
	if r.src.Current().Kind != token.KindObjectStart {
		return r.mismatch("an object", nil)
	}
	for {
		t, err := r.Next()
		if err != nil {
			return err
		}
		if t.Kind == token.KindObjectEnd {
			return nil
		}
		if t.Kind != token.KindFieldName {
			return syntaxError(&token.SyntaxError{Message: "expected a member name but found " + t.String()})
		}
		if _, err := r.Next(); err != nil {
			return err
		}
		if err := fn(t.Value); err != nil {
			return err
		}
	}
}

// ReadArray reads the elements of the array the reader is positioned on. fn is called with the
// reader positioned on the first token of each element.
func (r *Reader) ReadArray(fn func() error) error {
	if r.src.Current().Kind != token.KindArrayStart {
		return r.mismatch("an array", nil)
	}
	for {
		t, err := r.Next()
		if err != nil {
			return err
		}
		if t.Kind == token.KindArrayEnd {
			return nil
		}
		if err := fn(); err != nil {
			return err
		}
	}
}

// Skip skips the value the reader is positioned on. If it is positioned on a member name, the member
// value is skipped as well.
func (r *Reader) Skip() error {
	t := r.src.Current()
	if t.Kind == token.KindFieldName {
		var err error
		if t, err = r.Next(); err != nil {
			return err
		}
	}
	if !t.IsStructStart() {
		return nil
	}
	for depth := 1; depth > 0; {
		t, err := r.Next()
		if err != nil {
			return err
		}
		if t.IsStructStart() {
			depth++
		} else if t.IsStructEnd() {
			depth--
		}
	}
	return nil
}

// ReadString reads a JSON string.
func (r *Reader) ReadString() (string, error) {
	t := r.src.Current()
	if t.Kind != token.KindString {
		return "", r.mismatch("a string", stringType)
	}
	return t.Value, nil
}

// ReadBool reads true or false.
func (r *Reader) ReadBool() (bool, error) {
	switch r.src.Current().Kind {
	case token.KindTrue:
		return true, nil
	case token.KindFalse:
		return false, nil
	}
	return false, r.mismatch("a boolean", reflect.TypeOf(false))
}

// ReadNumber returns the literal of a JSON number.
func (r *Reader) ReadNumber() (string, error) {
	t := r.src.Current()
	if t.Kind != token.KindNumber {
		return "", r.mismatch("a number", nil)
	}
	return t.Value, nil
}

// ReadInt64 reads an integer. A number written with a fraction or an exponent is accepted if its
// value is integral.
func (r *Reader) ReadInt64() (int64, error) {
	literal, err := r.ReadNumber()
	if err != nil {
		return 0, err
	}
	if i, err := strconv.ParseInt(literal, 10, 64); err == nil {
		return i, nil
	}
	if strings.ContainsAny(literal, ".eE") {
		f, err := strconv.ParseFloat(literal, 64)
		if err == nil && f == math.Trunc(f) && f >= math.MinInt64 && f < math.MaxInt64 {
			return int64(f), nil
		}
	}
	return 0, NewError("number "+literal+" does not fit in a 64-bit integer", Op("graphson.Reader.ReadInt64"),
		int64Type, ErrKindTypeMismatch)
}

// ReadInt32 reads an integer in the range of int32.
func (r *Reader) ReadInt32() (int32, error) {
	i, err := r.ReadInt64()
	if err != nil {
		return 0, err
	}
	if i < math.MinInt32 || i > math.MaxInt32 {
		return 0, NewError("number "+strconv.FormatInt(i, 10)+" does not fit in a 32-bit integer",
			Op("graphson.Reader.ReadInt32"), reflect.TypeOf(int32(0)), ErrKindTypeMismatch)
	}
	return int32(i), nil
}

// ReadFloat64 reads a floating point number. The strings "NaN", "Infinity" and "-Infinity" stand for
// the values JSON numbers cannot express.
func (r *Reader) ReadFloat64() (float64, error) {
	t := r.src.Current()
	switch t.Kind {
	case token.KindNumber:
		f, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return 0, NewError("invalid floating point number "+t.Value, Op("graphson.Reader.ReadFloat64"),
				reflect.TypeOf(f), ErrKindTypeMismatch)
		}
		return f, nil

	case token.KindString:
		switch t.Value {
		case "NaN":
			return math.NaN(), nil
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		}
	}
	return 0, r.mismatch("a floating point number", reflect.TypeOf(float64(0)))
}

// readUntyped reads a value that carries no type information of its own. The deserializer of the
// expected type is used if there is one; otherwise the value is decoded into its natural Go
// representation and converted to expected.
func (r *Reader) readUntyped(expected reflect.Type) (interface{}, error) {
	if r.src.Current().Kind == token.KindNull {
		return coerce(nil, expected)
	}

	if expected != nil {
		if deserialize := r.mapper.deserializerFor(expected); deserialize != nil {
			v, err := deserialize(r)
			if err != nil {
				return nil, err
			}
			return coerce(v, expected)
		}
	}

	v, err := r.readNatural()
	if err != nil {
		return nil, err
	}
	return coerce(v, expected)
}

// readNatural decodes objects to map[string]interface{}, arrays to []interface{}, integers to int64
// (float64 if out of range) and other numbers to float64.
func (r *Reader) readNatural() (interface{}, error) {
	t := r.src.Current()
	switch t.Kind {
	case token.KindObjectStart:
		object := map[string]interface{}{}
		err := r.ReadObject(func(name string) error {
			v, err := r.ReadValue(nil)
			if err != nil {
				return err
			}
			object[name] = v
			return nil
		})
		if err != nil {
			return nil, err
		}
		return object, nil

	case token.KindArrayStart:
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

	case token.KindString:
		return t.Value, nil

	case token.KindNumber:
		if i, err := strconv.ParseInt(t.Value, 10, 64); err == nil {
			return i, nil
		}
		f, err := strconv.ParseFloat(t.Value, 64)
		if err != nil {
			return nil, NewError("number "+t.Value+" is out of range", Op("graphson.Reader.ReadValue"),
				ErrKindSyntax, err)
		}
		return f, nil

	case token.KindTrue:
		return true, nil

	case token.KindFalse:
		return false, nil

	case token.KindNull:
		return nil, nil
	}

	return nil, syntaxError(&token.SyntaxError{Message: "unexpected " + t.String() + " where a value was expected"})
}
