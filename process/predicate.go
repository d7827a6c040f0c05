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

package process

import (
	"fmt"
)

// P is a predicate. Value holds the argument: a single value, a list for within, without, between,
// inside and outside, and the two operand predicates for and and or.
type P struct {
	Predicate string
	Value     interface{}
}

func newP(predicate string, value interface{}) *P {
	return &P{
		Predicate: predicate,
		Value:     value,
	}
}

// Eq tests for equality.
func Eq(value interface{}) *P { return newP("eq", value) }

// Neq tests for inequality.
func Neq(value interface{}) *P { return newP("neq", value) }

// Lt tests for a value less than the given one.
func Lt(value interface{}) *P { return newP("lt", value) }

// Lte tests for a value less than or equal to the given one.
func Lte(value interface{}) *P { return newP("lte", value) }

// Gt tests for a value greater than the given one.
func Gt(value interface{}) *P { return newP("gt", value) }

// Gte tests for a value greater than or equal to the given one.
func Gte(value interface{}) *P { return newP("gte", value) }

// Inside tests for a value strictly between low and high.
func Inside(low interface{}, high interface{}) *P {
	return newP("inside", []interface{}{low, high})
}

// Outside tests for a value strictly out of [low, high].
func Outside(low interface{}, high interface{}) *P {
	return newP("outside", []interface{}{low, high})
}

// Between tests for a value in [low, high).
func Between(low interface{}, high interface{}) *P {
	return newP("between", []interface{}{low, high})
}

// Within tests for a value among values.
func Within(values ...interface{}) *P {
	if values == nil {
		values = []interface{}{}
	}
	return newP("within", values)
}

// Without tests for a value not among values.
func Without(values ...interface{}) *P {
	if values == nil {
		values = []interface{}{}
	}
	return newP("without", values)
}

// Not negates a predicate.
func Not(p *P) *P {
	return newP("not", p)
}

// And combines p and other.
func (p *P) And(other *P) *P {
	return newP("and", []interface{}{p, other})
}

// Or combines p and other.
func (p *P) Or(other *P) *P {
	return newP("or", []interface{}{p, other})
}

func (p *P) String() string {
	return fmt.Sprintf("%s(%v)", p.Predicate, p.Value)
}

// TextP is a predicate on strings.
type TextP struct {
	Predicate string
	Value     interface{}
}

func newTextP(predicate string, value string) *TextP {
	return &TextP{
		Predicate: predicate,
		Value:     value,
	}
}

// Containing tests for a string containing value.
func Containing(value string) *TextP { return newTextP("containing", value) }

// NotContaining tests for a string not containing value.
func NotContaining(value string) *TextP { return newTextP("notContaining", value) }

// StartingWith tests for a string with prefix value.
func StartingWith(value string) *TextP { return newTextP("startingWith", value) }

// NotStartingWith tests for a string without prefix value.
func NotStartingWith(value string) *TextP { return newTextP("notStartingWith", value) }

// EndingWith tests for a string with suffix value.
func EndingWith(value string) *TextP { return newTextP("endingWith", value) }

// NotEndingWith tests for a string without suffix value.
func NotEndingWith(value string) *TextP { return newTextP("notEndingWith", value) }

// Regex tests for a string matching the regular expression value.
func Regex(value string) *TextP { return newTextP("regex", value) }

// NotRegex tests for a string not matching the regular expression value.
func NotRegex(value string) *TextP { return newTextP("notRegex", value) }

// And combines p and other.
func (p *TextP) And(other *TextP) *TextP {
	return &TextP{
		Predicate: "and",
		Value:     []interface{}{p, other},
	}
}

// Or combines p and other.
func (p *TextP) Or(other *TextP) *TextP {
	return &TextP{
		Predicate: "or",
		Value:     []interface{}{p, other},
	}
}

func (p *TextP) String() string {
	return fmt.Sprintf("%s(%v)", p.Predicate, p.Value)
}
