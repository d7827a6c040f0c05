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
	"bytes"
	"io"
	"reflect"
	"time"

	"github.com/botobag/graphson/iterator"
	"github.com/botobag/graphson/jsonwriter"
	"github.com/botobag/graphson/token"

	jsoniter "github.com/json-iterator/go"
)

// Mapper converts values to and from one GraphSON wire format. It is assembled once by NewMapper
// and is safe for concurrent use afterwards.
type Mapper struct {
	version   Version
	typing    Typing
	normalize bool

	// Core module first, then extension modules
	modules []*Module

	registry      *TypeRegistry
	serializers   *serializerTable
	deserializers map[reflect.Type]DeserializeFunc

	envelope envelopeWriter
	detect   detectMode
}

// NewMapper assembles a Mapper from config. A nil config selects the defaults.
func NewMapper(config *Config) (*Mapper, error) {
	const op Op = "graphson.NewMapper"

	if config == nil {
		config = &Config{}
	}

	version, typing, err := config.resolve()
	if err != nil {
		return nil, err
	}

	candidates := append([]*Module{coreModule(version)}, config.Modules...)
	if config.AutoDiscover {
		candidates = append(candidates, discoverModules(version)...)
	}

	registry := NewTypeRegistry()
	mapper := &Mapper{
		version:       version,
		typing:        typing,
		normalize:     config.Normalize,
		registry:      registry,
		serializers:   newSerializerTable(registry),
		deserializers: map[reflect.Type]DeserializeFunc{},
		envelope:      newEnvelopeWriter(version, typing),
	}

	switch {
	case typing == NoTypes:
		mapper.detect = detectNone
	case version == V1:
		mapper.detect = detectClassHint
	default:
		mapper.detect = detectEnvelope
	}

	included := map[string]bool{}
	for _, module := range candidates {
		if module == nil || included[module.Name] {
			continue
		}
		included[module.Name] = true

		if len(module.TypeDefinitions) > 0 && len(module.Namespace) == 0 {
			return nil, NewError("module "+module.Name+" defines types but has no namespace", op,
				ErrKindConfiguration)
		}

		for _, def := range module.TypeDefinitions {
			if err := registry.Register(def.Type, module.Tag(def.LocalName)); err != nil {
				return nil, NewError("cannot include module "+module.Name, op, err)
			}
		}
		for _, s := range module.Serializers {
			mapper.serializers.add(s)
		}
		for _, d := range module.Deserializers {
			mapper.deserializers[d.Type] = d.Deserialize
		}

		mapper.modules = append(mapper.modules, module)
	}

	emitMapperBuilt(mapper)

	return mapper, nil
}

// Version returns the wire format version of the mapper.
func (mapper *Mapper) Version() Version {
	return mapper.version
}

// Typing returns the type embedding policy of the mapper.
func (mapper *Mapper) Typing() Typing {
	return mapper.typing
}

// Registry returns the tags known to the mapper.
func (mapper *Mapper) Registry() *TypeRegistry {
	return mapper.registry
}

// deserializerFor returns the deserializer reading values of t.
func (mapper *Mapper) deserializerFor(t reflect.Type) DeserializeFunc {
	if d, exists := mapper.deserializers[t]; exists {
		return d
	}
	if t.Kind() == reflect.Ptr {
		if d, exists := mapper.deserializers[t.Elem()]; exists {
			return d
		}
	}
	if basic, isBasic := basicTypes[t.Kind()]; isBasic && basic != t {
		if d, exists := mapper.deserializers[basic]; exists {
			return d
		}
	}
	return nil
}

//===----------------------------------------------------------------------------------------====//
// Encoding
//===----------------------------------------------------------------------------------------====//

// Marshal returns the encoding of v.
func (mapper *Mapper) Marshal(v interface{}) ([]byte, error) {
	var b bytes.Buffer
	if err := mapper.encode(&b, v, "graphson.Mapper.Marshal", false); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// MarshalTo writes the encoding of v to w.
func (mapper *Mapper) MarshalTo(w io.Writer, v interface{}) error {
	return mapper.encode(w, v, "graphson.Mapper.MarshalTo", false)
}

func (mapper *Mapper) encode(w io.Writer, v interface{}, op Op, newline bool) error {
	start := time.Now()

	out := &countingWriter{w: w}
	stream := jsonwriter.NewStream(out)
	err := newWriter(mapper, stream).WriteValue(v)
	if err == nil {
		if newline {
			stream.WriteRawString("\n")
		}
		err = stream.Flush()
	}

	if err != nil {
		if out.err != nil {
			err = NewError("cannot write output", op, ErrKindIO, out.err)
		} else {
			err = NewError("cannot encode value", op, err)
		}
	}

	emitEncodeComplete(mapper, out.n, time.Since(start), err)
	return err
}

// countingWriter counts the bytes written and records the first write error.
type countingWriter struct {
	w   io.Writer
	n   int
	err error
}

func (writer *countingWriter) Write(p []byte) (int, error) {
	n, err := writer.w.Write(p)
	writer.n += n
	if err != nil && writer.err == nil {
		writer.err = err
	}
	return n, err
}

// An Encoder writes a stream of documents, each followed by a newline.
type Encoder struct {
	mapper *Mapper
	w      io.Writer
	err    error
}

// NewEncoder returns an encoder writing to w.
func (mapper *Mapper) NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		mapper: mapper,
		w:      w,
	}
}

// Encode writes the encoding of v. Once Encode fails, all subsequent calls fail with the same
// error.
func (encoder *Encoder) Encode(v interface{}) error {
	if encoder.err != nil {
		return encoder.err
	}
	err := encoder.mapper.encode(encoder.w, v, "graphson.Encoder.Encode", true)
	encoder.err = err
	return err
}

//===----------------------------------------------------------------------------------------====//
// Decoding
//===----------------------------------------------------------------------------------------====//

// Unmarshal decodes the document in data.
func (mapper *Mapper) Unmarshal(data []byte) (interface{}, error) {
	return mapper.unmarshal(data, nil, "graphson.Mapper.Unmarshal")
}

// UnmarshalAs decodes the document in data into a value of type expected. The result can be type
// asserted to expected, unless the document is null.
func (mapper *Mapper) UnmarshalAs(data []byte, expected reflect.Type) (interface{}, error) {
	return mapper.unmarshal(data, expected, "graphson.Mapper.UnmarshalAs")
}

func (mapper *Mapper) unmarshal(data []byte, expected reflect.Type, op Op) (interface{}, error) {
	start := time.Now()

	v, err := mapper.decode(data, expected)
	if err != nil {
		err = NewError("cannot decode document", op, err)
	}

	emitDecodeComplete(mapper, len(data), time.Since(start), err)
	return v, err
}

func (mapper *Mapper) decode(data []byte, expected reflect.Type) (interface{}, error) {
	parser := token.NewParser(data)
	r := newReader(mapper, parser)
	if _, err := r.Next(); err != nil {
		return nil, err
	}

	v, err := r.ReadValue(expected)
	if err != nil {
		return nil, err
	}

	// Only whitespace may follow the document.
	if _, err := parser.Next(); err != iterator.Done {
		return nil, syntaxError(err)
	}
	return v, nil
}

// A Decoder reads a stream of documents. Documents may be separated by whitespace (newline-delimited
// streams) or simply concatenated.
type Decoder struct {
	mapper *Mapper
	input  *recordingReader
	iter   *jsoniter.Iterator
	err    error
}

// NewDecoder returns a decoder reading from r.
func (mapper *Mapper) NewDecoder(r io.Reader) *Decoder {
	input := &recordingReader{r: r}
	return &Decoder{
		mapper: mapper,
		input:  input,
		iter:   jsoniter.Parse(jsoniter.ConfigCompatibleWithStandardLibrary, input, 4096),
	}
}

// Decode reads the next document. It returns iterator.Done once the input is exhausted. Once Decode
// fails, all subsequent calls fail with the same error.
func (decoder *Decoder) Decode() (interface{}, error) {
	return decoder.DecodeAs(nil)
}

// DecodeAs is like Decode but the document is decoded into a value of type expected.
func (decoder *Decoder) DecodeAs(expected reflect.Type) (interface{}, error) {
	if decoder.err != nil {
		return nil, decoder.err
	}

	data, err := decoder.nextDocument()
	if err != nil {
		decoder.err = err
		return nil, err
	}

	v, err := decoder.mapper.unmarshal(data, expected, "graphson.Decoder.Decode")
	if err != nil {
		decoder.err = err
		return nil, err
	}
	return v, nil
}

// nextDocument returns the text of the next document in the input.
func (decoder *Decoder) nextDocument() ([]byte, error) {
	const op Op = "graphson.Decoder.Decode"

	iter := decoder.iter
	if iter.WhatIsNext() == jsoniter.InvalidValue {
		switch {
		case decoder.input.err != nil:
			return nil, NewError("cannot read input", op, ErrKindIO, decoder.input.err)
		case iter.Error == io.EOF:
			return nil, iterator.Done
		case iter.Error != nil:
			return nil, NewError("cannot read input", op, ErrKindSyntax, iter.Error)
		}
		return nil, NewError("cannot read input", op, ErrKindSyntax,
			&token.SyntaxError{Message: "unexpected character where a document was expected"})
	}

	data := iter.SkipAndReturnBytes()
	if decoder.input.err != nil {
		return nil, NewError("cannot read input", op, ErrKindIO, decoder.input.err)
	}
	if iter.Error != nil && iter.Error != io.EOF {
		return nil, NewError("cannot read input", op, ErrKindSyntax, iter.Error)
	}
	return data, nil
}

// recordingReader records the first read error other than io.EOF.
type recordingReader struct {
	r   io.Reader
	err error
}

func (reader *recordingReader) Read(p []byte) (int, error) {
	n, err := reader.r.Read(p)
	if err != nil && err != io.EOF && reader.err == nil {
		reader.err = err
	}
	return n, err
}
