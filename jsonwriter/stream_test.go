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

package jsonwriter_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/botobag/graphson/jsonwriter"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func writeTree(stream *jsonwriter.Stream, value interface{}) {
	switch value := value.(type) {
	case map[string]interface{}:
		if len(value) == 0 {
			stream.WriteEmptyObject()
			return
		}
		first := true
		stream.WriteObjectStart()
		for k, v := range value {
			if !first {
				stream.WriteMore()
			}
			first = false
			stream.WriteObjectField(k)
			writeTree(stream, v)
		}
		stream.WriteObjectEnd()

	case []interface{}:
		if len(value) == 0 {
			stream.WriteEmptyArray()
			return
		}
		stream.WriteArrayStart()
		for i, v := range value {
			if i > 0 {
				stream.WriteMore()
			}
			writeTree(stream, v)
		}
		stream.WriteArrayEnd()

	default:
		stream.WriteInterface(value)
	}
}

func render(value interface{}) (string, error) {
	var (
		buf    strings.Builder
		stream = jsonwriter.NewStream(&buf)
	)
	writeTree(stream, value)
	err := stream.Flush()
	return buf.String(), err
}

func expectSameAsEncodingJSON(value interface{}) {
	expected, err := json.Marshal(value)
	Expect(err).ShouldNot(HaveOccurred())
	actual, err := render(value)
	Expect(err).ShouldNot(HaveOccurred())
	Expect(actual).Should(Equal(string(expected)), "value = %#v", value)
}

type (
	IntAlias     int
	Uint16Alias  uint16
	Float32Alias float32
	StringAlias  string
)

type Direction int

const (
	Out Direction = iota
	In
)

func (d Direction) MarshalJSONTo(stream *jsonwriter.Stream) error {
	switch d {
	case Out:
		stream.WriteString("OUT")
	case In:
		stream.WriteString("IN")
	default:
		return fmt.Errorf("unknown direction: %d", d)
	}
	return nil
}

func (d Direction) MarshalJSON() ([]byte, error) {
	return jsonwriter.Marshal(d)
}

type nilMarshaler struct{}

func (*nilMarshaler) MarshalJSONTo(stream *jsonwriter.Stream) error {
	panic("unreachable")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

var _ = Describe("Stream", func() {
	It("escapes strings like encoding/json", func() {
		for _, s := range []string{
			"",
			"plain",
			"\x00\x01\x1f",
			"tab\tnewline\ncarriage\r",
			`quote " and backslash \`,
			"<script>&</script>",
			"line \u2028 paragraph \u2029",
			"café \U0001F600",
			"bad \xff utf-8",
		} {
			expectSameAsEncodingJSON(s)
		}
	})

	It("writes strings longer than the internal buffer", func() {
		long := strings.Repeat("marko", 300)
		expectSameAsEncodingJSON(long)
		expectSameAsEncodingJSON([]interface{}{long, long})
	})

	It("writes nil and booleans", func() {
		expectSameAsEncodingJSON(nil)
		expectSameAsEncodingJSON(true)
		expectSameAsEncodingJSON(false)
	})

	It("writes integers", func() {
		for _, v := range []interface{}{
			0, -1, math.MaxInt32, int8(math.MinInt8), int16(math.MaxInt16), int32(math.MinInt32),
			int64(math.MaxInt64), int64(math.MinInt64), uint(7), uint8(255), uint32(math.MaxUint32),
			uint64(math.MaxUint64), IntAlias(-42), Uint16Alias(65535),
		} {
			expectSameAsEncodingJSON(v)
		}
	})

	It("writes floats", func() {
		for _, v := range []interface{}{
			0.0, 1.5, -2.25, 1e-7, 1e21, 123456789.0, math.MaxFloat64, math.SmallestNonzeroFloat64,
			float32(3.14), float32(1e-7), Float32Alias(0.1),
		} {
			expectSameAsEncodingJSON(v)
		}
	})

	It("rejects NaN and infinities", func() {
		for _, v := range []interface{}{math.NaN(), math.Inf(1), float32(math.Inf(-1))} {
			_, err := render(v)
			Expect(err).Should(BeAssignableToTypeOf(&json.UnsupportedValueError{}))
		}
	})

	It("writes named strings and pointers", func() {
		s := "name"
		expectSameAsEncodingJSON(StringAlias("alias"))
		expectSameAsEncodingJSON(&s)
		expectSameAsEncodingJSON((*string)(nil))
	})

	It("writes nested containers", func() {
		value := map[string]interface{}{
			"name": "marko",
			"age":  29,
			"tags": []interface{}{"a", map[string]interface{}{}, []interface{}{}},
		}
		expected, err := json.Marshal(value)
		Expect(err).ShouldNot(HaveOccurred())
		actual, err := render(value)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(actual).Should(MatchJSON(expected))
	})

	It("writes ValueMarshaler", func() {
		expectSameAsEncodingJSON(In)
		expectSameAsEncodingJSON([]interface{}{Out, In})

		_, err := render(Direction(9))
		Expect(err).Should(BeAssignableToTypeOf(&json.MarshalerError{}))
		Expect(err.Error()).Should(ContainSubstring("unknown direction: 9"))
	})

	It("writes null for nil ValueMarshaler", func() {
		var m *nilMarshaler
		actual, err := render(m)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(actual).Should(Equal("null"))

		b, err := jsonwriter.Marshal(m)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(b)).Should(Equal("null"))
	})

	It("falls back to encoding/json for other values", func() {
		type edge struct {
			Label string `json:"label"`
			Out   int    `json:"outV"`
		}
		expectSameAsEncodingJSON(edge{Label: "knows", Out: 1})
		expectSameAsEncodingJSON([]interface{}{edge{Label: "created"}, 3})
		expectSameAsEncodingJSON(map[string]int{"weight": 1})
	})

	It("writes raw numbers", func() {
		var (
			buf    strings.Builder
			stream = jsonwriter.NewStream(&buf)
		)
		stream.WriteArrayStart()
		stream.WriteRawNumber("12345678901234567890123")
		stream.WriteMore()
		stream.WriteRawNumber("")
		stream.WriteArrayEnd()
		Expect(stream.Flush()).Should(Succeed())
		Expect(buf.String()).Should(Equal("[12345678901234567890123,0]"))
	})

	It("keeps the first error", func() {
		stream := jsonwriter.NewStream(failingWriter{})
		stream.WriteString("x")
		Expect(stream.Flush()).Should(MatchError("disk full"))

		stream.SetError(errors.New("another"))
		Expect(stream.Error()).Should(MatchError("disk full"))
	})
})
