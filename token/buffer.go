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

package token

import (
	"github.com/botobag/graphson/iterator"
	"github.com/botobag/graphson/jsonwriter"
)

// Buffer records tokens so they can be replayed later as an independent Source.
type Buffer struct {
	tokens []Token
}

var _ jsonwriter.ValueMarshaler = (*Buffer)(nil)

// Write appends a token.
func (buffer *Buffer) Write(token Token) {
	buffer.tokens = append(buffer.tokens, token)
}

// Len returns the number of recorded tokens.
func (buffer *Buffer) Len() int {
	return len(buffer.tokens)
}

// Tokens returns the recorded tokens. The slice is owned by the buffer.
func (buffer *Buffer) Tokens() []Token {
	return buffer.tokens
}

// Reset discards all recorded tokens.
func (buffer *Buffer) Reset() {
	buffer.tokens = buffer.tokens[:0]
}

// CopyCurrentStructure records the value src is positioned on: a scalar, or a whole object or array
// including everything up to the matching end token. If src is on a member name, the name and its
// value are recorded. src is left positioned on the last token copied.
func (buffer *Buffer) CopyCurrentStructure(src Source) error {
	token := src.Current()
	if !token.IsValid() {
		return ErrUnexpectedEnd
	}
	buffer.Write(token)

	if token.Kind == KindFieldName {
		var err error
		token, err = src.Next()
		if err != nil {
			if err == iterator.Done {
				return ErrUnexpectedEnd
			}
			return err
		}
		buffer.Write(token)
	}

	if !token.IsStructStart() {
		return nil
	}

	for depth := 1; depth > 0; {
		token, err := src.Next()
		if err != nil {
			if err == iterator.Done {
				return ErrUnexpectedEnd
			}
			return err
		}
		buffer.Write(token)
		if token.IsStructStart() {
			depth++
		} else if token.IsStructEnd() {
			depth--
		}
	}
	return nil
}

// Source returns a cursor that replays the recorded tokens from the beginning. Cursors are
// independent of each other. Tokens written to the buffer afterwards are not seen by the cursor.
func (buffer *Buffer) Source() Source {
	return &bufferSource{
		tokens: buffer.tokens[:len(buffer.tokens):len(buffer.tokens)],
		pos:    -1,
	}
}

// MarshalJSONTo implements jsonwriter.ValueMarshaler. It writes the recorded tokens as compact JSON.
func (buffer *Buffer) MarshalJSONTo(stream *jsonwriter.Stream) error {
	var (
		// For each open container, whether a member or an element has been written.
		nonEmpty   []bool
		afterField bool
	)

	for _, token := range buffer.tokens {
		if token.IsStructEnd() {
			if len(nonEmpty) == 0 {
				return &SyntaxError{Message: "unbalanced " + token.Kind.String()}
			}
			nonEmpty = nonEmpty[:len(nonEmpty)-1]
			if token.Kind == KindObjectEnd {
				stream.WriteObjectEnd()
			} else {
				stream.WriteArrayEnd()
			}
			afterField = false
			continue
		}

		if !afterField {
			if top := len(nonEmpty) - 1; top >= 0 {
				if nonEmpty[top] {
					stream.WriteMore()
				} else {
					nonEmpty[top] = true
				}
			}
		}
		afterField = false

		switch token.Kind {
		case KindObjectStart:
			stream.WriteObjectStart()
			nonEmpty = append(nonEmpty, false)
		case KindArrayStart:
			stream.WriteArrayStart()
			nonEmpty = append(nonEmpty, false)
		case KindFieldName:
			stream.WriteObjectField(token.Value)
			afterField = true
		case KindString:
			stream.WriteString(token.Value)
		case KindNumber:
			stream.WriteRawNumber(token.Value)
		case KindTrue:
			stream.WriteBool(true)
		case KindFalse:
			stream.WriteBool(false)
		case KindNull:
			stream.WriteNil()
		}
	}

	if len(nonEmpty) > 0 {
		return ErrUnexpectedEnd
	}
	return stream.Error()
}

// String renders the recorded tokens as compact JSON. It is mainly useful for diagnostics.
func (buffer *Buffer) String() string {
	b, err := jsonwriter.Marshal(buffer)
	if err != nil {
		return "<" + err.Error() + ">"
	}
	return string(b)
}

// bufferSource replays a token slice.
type bufferSource struct {
	tokens []Token
	pos    int
}

func (source *bufferSource) Next() (Token, error) {
	if source.pos < len(source.tokens) {
		source.pos++
	}
	if source.pos == len(source.tokens) {
		return Token{}, iterator.Done
	}
	return source.tokens[source.pos], nil
}

func (source *bufferSource) Current() Token {
	if source.pos < 0 || source.pos >= len(source.tokens) {
		return Token{}
	}
	return source.tokens[source.pos]
}
