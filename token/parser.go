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
	"strings"
	"unicode/utf8"

	"github.com/botobag/graphson/iterator"

	jsoniter "github.com/json-iterator/go"
)

// SyntaxError is returned by Parser and Buffer for input that is not a well-formed JSON document.
type SyntaxError struct {
	Message string
}

func (err *SyntaxError) Error() string {
	return "syntax error: " + err.Message
}

// ErrUnexpectedEnd is returned when a token stream ends in the middle of a value.
var ErrUnexpectedEnd error = &SyntaxError{Message: "unexpected end of input"}

// parserFrame is an open container in the parser.
type parserFrame struct {
	object bool

	// True once the container has a member or an element: the next one must follow a comma.
	nonEmpty bool
}

// Parser produces the tokens of a single JSON document held in memory. The structure of the document
// (brackets, commas and colons) is scanned by the parser itself; string values are decoded by
// json-iterator's Iterator.
type Parser struct {
	data []byte
	pos  int

	// Decodes string literals
	iter *jsoniter.Iterator

	frames  []parserFrame
	current Token

	// True after a member name and its colon were read; the next token is the member value.
	expectValue bool

	started bool
	done    bool
	err     error
}

var _ Source = (*Parser)(nil)

// NewParser creates a parser for the document in data.
func NewParser(data []byte) *Parser {
	return &Parser{
		data: data,
		iter: jsoniter.ParseBytes(jsoniter.ConfigCompatibleWithStandardLibrary, nil),
	}
}

// Current implements Source.
func (parser *Parser) Current() Token {
	return parser.current
}

// Depth returns the number of containers enclosing the current position.
func (parser *Parser) Depth() int {
	return len(parser.frames)
}

// Next implements Source.
func (parser *Parser) Next() (Token, error) {
	if parser.err != nil {
		return Token{}, parser.err
	}
	if parser.done {
		return Token{}, iterator.Done
	}

	token, err := parser.next()
	if err != nil {
		parser.current = Token{}
		if err != iterator.Done {
			parser.err = err
		}
		return Token{}, err
	}
	parser.current = token
	return token, nil
}

func (parser *Parser) next() (Token, error) {
	numFrames := len(parser.frames)
	if numFrames == 0 {
		if parser.started {
			return Token{}, parser.finish()
		}
		parser.started = true
		return parser.readValue()
	}

	if parser.expectValue {
		parser.expectValue = false
		return parser.readValue()
	}

	frame := &parser.frames[numFrames-1]
	closing, end := byte(']'), ArrayEnd
	if frame.object {
		closing, end = '}', ObjectEnd
	}

	c, err := parser.peek()
	if err != nil {
		return Token{}, err
	}
	if c == closing {
		parser.pos++
		parser.frames = parser.frames[:numFrames-1]
		return end, nil
	}

	if frame.nonEmpty {
		if c != ',' {
			return Token{}, parser.unexpected(c, "',' or '"+string(closing)+"'")
		}
		parser.pos++
		if c, err = parser.peek(); err != nil {
			return Token{}, err
		}
	}
	frame.nonEmpty = true

	if !frame.object {
		return parser.readValue()
	}

	if c != '"' {
		return Token{}, parser.unexpected(c, "a member name")
	}
	name, err := parser.readString()
	if err != nil {
		return Token{}, err
	}
	if c, err = parser.peek(); err != nil {
		return Token{}, err
	}
	if c != ':' {
		return Token{}, parser.unexpected(c, "':' after a member name")
	}
	parser.pos++
	parser.expectValue = true
	return FieldName(name), nil
}

// peek skips whitespace and returns the next byte without consuming it.
func (parser *Parser) peek() (byte, error) {
	data := parser.data
	for parser.pos < len(data) {
		switch c := data[parser.pos]; c {
		case ' ', '\t', '\n', '\r':
			parser.pos++
		default:
			return c, nil
		}
	}
	return 0, ErrUnexpectedEnd
}

func (parser *Parser) unexpected(c byte, want string) error {
	return &SyntaxError{Message: fmt.Sprintf("unexpected character %q where %s was expected", c, want)}
}

func (parser *Parser) readValue() (Token, error) {
	c, err := parser.peek()
	if err != nil {
		return Token{}, err
	}

	switch {
	case c == '{':
		parser.pos++
		parser.frames = append(parser.frames, parserFrame{object: true})
		return ObjectStart, nil

	case c == '[':
		parser.pos++
		parser.frames = append(parser.frames, parserFrame{})
		return ArrayStart, nil

	case c == '"':
		s, err := parser.readString()
		if err != nil {
			return Token{}, err
		}
		return String(s), nil

	case c == '-' || isDigit(c):
		literal := parser.scanWord()
		if !isNumberLiteral(literal) {
			return Token{}, &SyntaxError{Message: "invalid number literal " + literal}
		}
		return Number(literal), nil

	case c >= 'a' && c <= 'z':
		switch literal := parser.scanWord(); literal {
		case "true":
			return True, nil
		case "false":
			return False, nil
		case "null":
			return Null, nil
		default:
			if parser.pos == len(parser.data) && strings.HasPrefix("true false null", literal) {
				return Token{}, ErrUnexpectedEnd
			}
			return Token{}, &SyntaxError{Message: "invalid literal " + literal}
		}
	}

	return Token{}, parser.unexpected(c, "a value")
}

// scanWord consumes the characters of a number or a literal.
func (parser *Parser) scanWord() string {
	data := parser.data
	start := parser.pos
	for parser.pos < len(data) {
		c := data[parser.pos]
		if !isDigit(c) && !(c >= 'a' && c <= 'z') && !(c >= 'A' && c <= 'Z') && c != '.' && c != '+' && c != '-' {
			break
		}
		parser.pos++
	}
	return string(data[start:parser.pos])
}

// readString consumes a string literal and returns its decoded value.
func (parser *Parser) readString() (string, error) {
	data := parser.data
	start := parser.pos

	end := -1
	for i := start + 1; i < len(data) && end < 0; i++ {
		switch c := data[i]; {
		case c == '"':
			end = i + 1
		case c == '\\':
			i++
		case c < 0x20:
			return "", &SyntaxError{Message: "control character in string literal"}
		}
	}
	if end < 0 {
		return "", ErrUnexpectedEnd
	}

	literal := data[start:end]
	if !utf8.Valid(literal) {
		return "", &SyntaxError{Message: "invalid UTF-8 in string literal"}
	}

	iter := parser.iter
	iter.Error = nil
	iter.ResetBytes(literal)
	s := iter.ReadString()
	if iter.Error != nil {
		return "", &SyntaxError{Message: iter.Error.Error()}
	}

	parser.pos = end
	return s, nil
}

// finish is called once the top-level value is complete. Only whitespace may follow.
func (parser *Parser) finish() error {
	parser.done = true
	if _, err := parser.peek(); err == nil {
		return &SyntaxError{Message: "unexpected data after top-level value"}
	}
	return iterator.Done
}

// isNumberLiteral reports whether s matches the JSON number grammar. The parser only collects the
// characters that may appear in a number or a literal.
func isNumberLiteral(s string) bool {
	i, n := 0, len(s)
	if i < n && s[i] == '-' {
		i++
	}
	switch {
	case i < n && s[i] == '0':
		i++
	case i < n && s[i] >= '1' && s[i] <= '9':
		for i < n && isDigit(s[i]) {
			i++
		}
	default:
		return false
	}
	if i < n && s[i] == '.' {
		i++
		if i == n || !isDigit(s[i]) {
			return false
		}
		for i < n && isDigit(s[i]) {
			i++
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		if i == n || !isDigit(s[i]) {
			return false
		}
		for i < n && isDigit(s[i]) {
			i++
		}
	}
	return i == n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
