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

package token_test

import (
	"github.com/botobag/graphson/iterator"
	"github.com/botobag/graphson/token"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Parser", func() {
	It("parses scalars", func() {
		Expect(parse(`"marko"`)).Should(Equal([]token.Token{token.String("marko")}))
		Expect(parse(`-12.5e3`)).Should(Equal([]token.Token{token.Number("-12.5e3")}))
		Expect(parse(` true `)).Should(Equal([]token.Token{token.True}))
		Expect(parse(`false`)).Should(Equal([]token.Token{token.False}))
		Expect(parse(`null`)).Should(Equal([]token.Token{token.Null}))
	})

	It("parses nested structures", func() {
		Expect(parse(`{"@type":"g:Int32","@value":[1,{"a":null},[]],"x":{}}`)).Should(Equal([]token.Token{
			token.ObjectStart,
			token.FieldName("@type"),
			token.String("g:Int32"),
			token.FieldName("@value"),
			token.ArrayStart,
			token.Number("1"),
			token.ObjectStart,
			token.FieldName("a"),
			token.Null,
			token.ObjectEnd,
			token.ArrayStart,
			token.ArrayEnd,
			token.ArrayEnd,
			token.FieldName("x"),
			token.ObjectStart,
			token.ObjectEnd,
			token.ObjectEnd,
		}))
	})

	It("keeps number literals verbatim", func() {
		Expect(parse(`[12345678901234567890123, 0.10, 1E+2]`)).Should(Equal([]token.Token{
			token.ArrayStart,
			token.Number("12345678901234567890123"),
			token.Number("0.10"),
			token.Number("1E+2"),
			token.ArrayEnd,
		}))
	})

	It("supports empty member names", func() {
		Expect(parse(`{"":1,"b":{"":""}}`)).Should(Equal([]token.Token{
			token.ObjectStart,
			token.FieldName(""),
			token.Number("1"),
			token.FieldName("b"),
			token.ObjectStart,
			token.FieldName(""),
			token.String(""),
			token.ObjectEnd,
			token.ObjectEnd,
		}))
	})

	It("decodes string escapes", func() {
		Expect(parse(`"a\"b\\cé\n"`)).Should(Equal([]token.Token{token.String("a\"b\\cé\n")}))
	})

	It("tracks the current token and depth", func() {
		parser := token.NewParser([]byte(`[{"a":1}]`))
		Expect(parser.Current().IsValid()).Should(BeFalse())

		tok, err := parser.Next()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(tok).Should(Equal(token.ArrayStart))
		Expect(parser.Current()).Should(Equal(token.ArrayStart))
		Expect(parser.Depth()).Should(Equal(1))

		drain(parser)
		Expect(parser.Current().IsValid()).Should(BeFalse())
		Expect(parser.Depth()).Should(Equal(0))

		_, err = parser.Next()
		Expect(err).Should(Equal(iterator.Done))
	})

	It("rejects malformed documents", func() {
		for _, doc := range []string{
			``,       // empty input
			`{"a":1`, // truncated object
			`[1,2`,   // truncated array
			`{"a":`,  // missing member value
			`"abc`,   // unterminated string
			`tru`,    // bad literal
			`01`,     // leading zero
			`1e`,     // missing exponent
			`{} x`,   // trailing data
			`1 2`,    // second document
			`marko`,  // bare word

			`["a"null`,    // missing comma between elements
			`{"a":1 null`, // missing comma between members
			`{"" :`,       // truncated after a member name
			`{}0}`,        // trailing data after an object
			`[1,]`,        // trailing comma in an array
			`{"a":1,}`,    // trailing comma in an object
			`{"a" 1}`,     // missing colon
			`[1 2]`,       // missing comma between numbers
			`{1:2}`,       // member name is not a string
			`[,1]`,        // leading comma
			"[\"a\x01\"]", // control character in a string
			"\"\xff\"",    // invalid UTF-8
			`"\x"`,        // bad escape
		} {
			parser := token.NewParser([]byte(doc))
			var err error
			for err == nil {
				_, err = parser.Next()
			}
			Expect(err).ShouldNot(Equal(iterator.Done), "doc = %s", doc)
			Expect(err).Should(BeAssignableToTypeOf(&token.SyntaxError{}), "doc = %s", doc)

			// The error sticks.
			_, again := parser.Next()
			Expect(again).Should(Equal(err))
		}
	})

	It("reads whitespace between tokens", func() {
		parser := token.NewParser([]byte(" {\t\"a\" :\n[ 1 ,\r\n true ] , \"b\":{ } } "))
		Expect(drain(parser)).Should(Equal([]token.Token{
			token.ObjectStart,
			token.FieldName("a"),
			token.ArrayStart,
			token.Number("1"),
			token.True,
			token.ArrayEnd,
			token.FieldName("b"),
			token.ObjectStart,
			token.ObjectEnd,
			token.ObjectEnd,
		}))
	})
})
