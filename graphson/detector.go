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

	"github.com/botobag/graphson/iterator"
	"github.com/botobag/graphson/jsonwriter"
	"github.com/botobag/graphson/token"
)

// envelopeState is the progress of an envelopeDetector.
type envelopeState uint8

// Enumeration of envelopeState
const (
	// Waiting for "@type" or "@value"
	awaitingField envelopeState = iota
	// "@type" has been read
	haveType
	// "@value" has been read and copied
	haveValue
	// Both members have been seen
	matched
	// The object is not an envelope
	failed
)

// envelopeDetector recognizes {"@type": tag, "@value": value} over a forward-only token stream.
// Everything it consumes is recorded so that, when the object turns out not to be an envelope, the
// stream can be put back together exactly as it was.
//
// Detection stops at the first token that rules out an envelope. That token stays the live stream's
// current token and is not recorded.
type envelopeDetector struct {
	live  token.Source
	state envelopeState
	tag   Tag

	// Tokens consumed before the value member was copied
	prefix token.Buffer

	// The "@value" member (name and value) when it precedes "@type"
	localCopy token.Buffer

	// Tokens consumed after localCopy
	suffix token.Buffer
}

func (d *envelopeDetector) mirror(t token.Token) {
	if d.localCopy.Len() > 0 {
		d.suffix.Write(t)
	} else {
		d.prefix.Write(t)
	}
}

// run starts on the "{" of an object and returns with state set to matched or failed. When matched
// with the value first, the live stream is on the tag string. When matched with the type first, it is
// on the "@value" member name.
func (d *envelopeDetector) run() error {
	live := d.live
	d.prefix.Write(live.Current())

	for d.state != matched && d.state != failed {
		t, err := live.Next()
		if err != nil {
			return syntaxError(err)
		}
		if t.Kind != token.KindFieldName {
			d.state = failed
			continue
		}

		switch t.Value {
		case typeProperty:
			if d.state == haveType {
				d.state = failed
				continue
			}
			d.mirror(t)

			tagToken, err := live.Next()
			if err != nil {
				return syntaxError(err)
			}
			if tagToken.Kind != token.KindString {
				d.state = failed
				continue
			}
			d.mirror(tagToken)
			d.tag = Tag(tagToken.Value)

			if d.state == haveValue {
				d.state = matched
			} else {
				d.state = haveType
			}

		case valueProperty:
			switch d.state {
			case haveValue:
				d.state = failed
			case haveType:
				d.mirror(t)
				d.state = matched
			default:
				if err := d.localCopy.CopyCurrentStructure(live); err != nil {
					return syntaxError(err)
				}
				d.state = haveValue
			}

		default:
			d.state = failed
		}
	}

	return nil
}

// reconstruct returns a stream equivalent to the one the detector started on.
func (d *envelopeDetector) reconstruct() token.Source {
	return token.NewConcat(d.prefix.Source(), d.localCopy.Source(), d.suffix.Source(), d.live)
}

// readEnvelope reads an object that may be a type envelope. The reader is positioned on its "{".
func (r *Reader) readEnvelope(expected reflect.Type) (interface{}, error) {
	d := &envelopeDetector{live: r.src}
	if err := d.run(); err != nil {
		return nil, err
	}

	if d.state == failed {
		return r.readReconstructed(d.reconstruct(), expected)
	}

	v, err := r.readTagged(d, expected)
	if err != nil {
		return nil, err
	}

	t, err := r.Next()
	if err != nil {
		return nil, err
	}
	if t.Kind != token.KindObjectEnd {
		return nil, NewError(`type envelope has members other than "@type" and "@value"`,
			Op("graphson.Reader.ReadValue"), d.tag, ErrKindMalformedEnvelope)
	}
	return v, nil
}

// readTagged reads the payload of a matched envelope.
func (r *Reader) readTagged(d *envelopeDetector, expected reflect.Type) (interface{}, error) {
	payload := r
	if d.localCopy.Len() > 0 {
		payload = r.child(d.localCopy.Source())
		// Member name, then the first token of the value
		if _, err := payload.Next(); err != nil {
			return nil, err
		}
	}
	if _, err := payload.Next(); err != nil {
		return nil, err
	}

	var (
		v   interface{}
		err error
	)
	if actual, known := r.mapper.registry.TypeFor(d.tag); !known {
		v, err = payload.readUnknown(d.tag)
	} else if !compatible(actual, expected) {
		return nil, NewError("cannot read "+actual.String()+" as "+expected.String(), Op("graphson.Reader.ReadValue"),
			d.tag, expected, ErrKindTypeMismatch)
	} else {
		v, err = payload.readUntyped(actual)
	}
	if err != nil {
		return nil, err
	}

	if payload != r {
		if _, err := payload.src.Next(); err != iterator.Done {
			return nil, NewError("payload of the type envelope has trailing tokens", Op("graphson.Reader.ReadValue"),
				d.tag, ErrKindMalformedEnvelope)
		}
	}

	return coerce(v, expected)
}

// readUnknown reads the payload of an envelope whose tag is not registered. The payload becomes a
// string: the text of a scalar, or the compact JSON of a structure.
func (r *Reader) readUnknown(tag Tag) (interface{}, error) {
	var s string
	if t := r.src.Current(); t.IsScalar() {
		s = t.Literal()
	} else {
		var b token.Buffer
		if err := b.CopyCurrentStructure(r.src); err != nil {
			return nil, syntaxError(err)
		}
		text, err := jsonwriter.Marshal(&b)
		if err != nil {
			return nil, syntaxError(err)
		}
		s = string(text)
	}

	emitUnknownTag(r.mapper, tag)
	return s, nil
}

// readClassHint reads an object that may start with an "@class" member naming the tag of its type.
// The reader is positioned on its "{".
func (r *Reader) readClassHint(expected reflect.Type) (interface{}, error) {
	live := r.src

	var prefix token.Buffer
	prefix.Write(live.Current())

	t, err := r.Next()
	if err != nil {
		return nil, err
	}

	if t.Kind == token.KindFieldName && t.Value == classProperty {
		prefix.Write(t)

		hint, err := r.Next()
		if err != nil {
			return nil, err
		}

		if hint.Kind == token.KindString {
			tag := Tag(hint.Value)
			if actual, known := r.mapper.registry.TypeFor(tag); known {
				if deserialize := r.mapper.deserializerFor(actual); deserialize != nil {
					if !compatible(actual, expected) {
						return nil, NewError("cannot read "+actual.String()+" as "+expected.String(),
							Op("graphson.Reader.ReadValue"), tag, expected, ErrKindTypeMismatch)
					}
					return r.readHinted(deserialize, expected)
				}
			}
		}
	}

	return r.readReconstructed(token.NewConcat(prefix.Source(), live), expected)
}

// readHinted runs deserialize over the object the reader is in with its "@class" member left out.
// The reader is positioned on the hint value.
func (r *Reader) readHinted(deserialize DeserializeFunc, expected reflect.Type) (interface{}, error) {
	if _, err := r.Next(); err != nil {
		return nil, err
	}

	var start token.Buffer
	start.Write(token.ObjectStart)
	object := r.child(token.NewConcat(start.Source(), r.src))
	if _, err := object.Next(); err != nil {
		return nil, err
	}

	v, err := deserialize(object)
	if err != nil {
		return nil, err
	}
	return coerce(v, expected)
}

// readReconstructed reads a value without type detection at its top level from a stream put back
// together after a failed detection.
func (r *Reader) readReconstructed(src token.Source, expected reflect.Type) (interface{}, error) {
	reader := r.child(src)
	if _, err := reader.Next(); err != nil {
		return nil, err
	}
	return reader.readUntyped(expected)
}
