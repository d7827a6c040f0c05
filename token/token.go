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
	"fmt"
)

// Kind describes the different kinds of tokens produced while walking a JSON document.
type Kind int

// Enumeration of Kind. The zero value is not a token: a Source reports it from Current when it is
// not positioned on anything.
const (
	// {
	KindObjectStart Kind = iota + 1
	// }
	KindObjectEnd
	// [
	KindArrayStart
	// ]
	KindArrayEnd
	// Name of an object member. The member value follows as the next token.
	KindFieldName
	// String value
	KindString
	// Number value. The literal is kept verbatim so no precision is lost before a deserializer picks
	// the target type.
	KindNumber
	// true
	KindTrue
	// false
	KindFalse
	// null
	KindNull
)

var _ fmt.Stringer = Kind(0)

func (kind Kind) String() string {
	switch kind {
	case 0:
		return "<none>"
	case KindObjectStart:
		return "{"
	case KindObjectEnd:
		return "}"
	case KindArrayStart:
		return "["
	case KindArrayEnd:
		return "]"
	case KindFieldName:
		return "FieldName"
	case KindString:
		return "String"
	case KindNumber:
		return "Number"
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindNull:
		return "null"
	}
	panic("unsupported token kind")
}

// Token is a single item of a JSON token stream.
type Token struct {
	Kind Kind

	// Member name for KindFieldName, decoded text for KindString and the number literal for
	// KindNumber. Empty for other kinds.
	Value string
}

// Predefined tokens for the kinds that carry no value
var (
	ObjectStart = Token{Kind: KindObjectStart}
	ObjectEnd   = Token{Kind: KindObjectEnd}
	ArrayStart  = Token{Kind: KindArrayStart}
	ArrayEnd    = Token{Kind: KindArrayEnd}
	True        = Token{Kind: KindTrue}
	False       = Token{Kind: KindFalse}
	Null        = Token{Kind: KindNull}
)

// FieldName returns a token for an object member name.
func FieldName(name string) Token {
	return Token{Kind: KindFieldName, Value: name}
}

// String returns a string value token.
func String(s string) Token {
	return Token{Kind: KindString, Value: s}
}

// Number returns a number token carrying the given literal.
func Number(literal string) Token {
	return Token{Kind: KindNumber, Value: literal}
}

// Bool returns True or False.
func Bool(b bool) Token {
	if b {
		return True
	}
	return False
}

// IsValid returns true if token is an actual token (i.e., not the zero value).
func (token Token) IsValid() bool {
	return token.Kind != 0
}

// IsScalar returns true for string, number, boolean and null tokens.
func (token Token) IsScalar() bool {
	return token.Kind >= KindString
}

// IsStructStart returns true for "{" and "[".
func (token Token) IsStructStart() bool {
	return token.Kind == KindObjectStart || token.Kind == KindArrayStart
}

// IsStructEnd returns true for "}" and "]".
func (token Token) IsStructEnd() bool {
	return token.Kind == KindObjectEnd || token.Kind == KindArrayEnd
}

// Literal returns the JSON text of a scalar token with strings unquoted: the decoded text of a
// string, the literal of a number and "true", "false" or "null" for the others.
func (token Token) Literal() string {
	switch token.Kind {
	case KindString, KindNumber:
		return token.Value
	case KindTrue:
		return "true"
	case KindFalse:
		return "false"
	case KindNull:
		return "null"
	}
	return ""
}

func (token Token) String() string {
	switch token.Kind {
	case KindFieldName:
		return fmt.Sprintf("FieldName %q", token.Value)
	case KindString:
		return fmt.Sprintf("String %q", token.Value)
	case KindNumber:
		return "Number " + token.Value
	}
	return token.Kind.String()
}
