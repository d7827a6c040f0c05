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

package graphson_test

import (
	"math"
	"reflect"
	"time"

	"github.com/botobag/graphson/graphson"
	"github.com/botobag/graphson/internal/testutil"

	"github.com/google/uuid"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("GraphSON 3.0", func() {
	var mapper *graphson.Mapper

	BeforeEach(func() {
		mapper = newMapper(&graphson.Config{Version: graphson.V3})
	})

	It("round trips scalars", func() {
		date := time.UnixMilli(1481750076295).UTC()

		Expect(int32(30)).Should(testutil.RoundTripThrough(mapper, `{"@type":"g:Int32","@value":30}`))
		Expect(int64(-1)).Should(testutil.RoundTripThrough(mapper, `{"@type":"g:Int64","@value":-1}`))
		Expect(float32(1.5)).Should(testutil.RoundTripThrough(mapper, `{"@type":"g:Float","@value":1.5}`))
		Expect(2.25).Should(testutil.RoundTripThrough(mapper, `{"@type":"g:Double","@value":2.25}`))
		Expect("marko").Should(testutil.RoundTripThrough(mapper, `"marko"`))
		Expect(true).Should(testutil.RoundTripThrough(mapper, `true`))
		Expect(uuid.MustParse("41d2e28a-20a4-4ab0-b379-d810dede3786")).Should(testutil.RoundTripThrough(mapper,
			`{"@type":"g:UUID","@value":"41d2e28a-20a4-4ab0-b379-d810dede3786"}`))
		Expect(date).Should(testutil.RoundTripThrough(mapper, `{"@type":"g:Date","@value":1481750076295}`))
		Expect(graphson.Timestamp{Time: date}).Should(testutil.RoundTripThrough(mapper,
			`{"@type":"g:Timestamp","@value":1481750076295}`))
		Expect(graphson.Class("java.io.File")).Should(testutil.RoundTripThrough(mapper,
			`{"@type":"g:Class","@value":"java.io.File"}`))
	})

	It("writes special floating point values as strings", func() {
		Expect(marshal(mapper, math.Inf(1))).Should(Equal(`{"@type":"g:Double","@value":"Infinity"}`))
		Expect(marshal(mapper, float32(math.Inf(-1)))).Should(Equal(`{"@type":"g:Float","@value":"-Infinity"}`))
		Expect(marshal(mapper, math.NaN())).Should(Equal(`{"@type":"g:Double","@value":"NaN"}`))

		v := unmarshal(mapper, `{"@type":"g:Double","@value":"NaN"}`)
		Expect(math.IsNaN(v.(float64))).Should(BeTrue())
		Expect(unmarshal(mapper, `{"@type":"g:Float","@value":"Infinity"}`)).Should(Equal(float32(math.Inf(1))))
	})

	It("widens Go integer types", func() {
		Expect(marshal(mapper, 30)).Should(Equal(`{"@type":"g:Int64","@value":30}`))
		Expect(marshal(mapper, int8(-3))).Should(Equal(`{"@type":"g:Int32","@value":-3}`))
		Expect(marshal(mapper, uint16(7))).Should(Equal(`{"@type":"g:Int32","@value":7}`))
		Expect(marshal(mapper, uint64(1<<40))).Should(Equal(`{"@type":"g:Int64","@value":1099511627776}`))

		_, err := mapper.Marshal(uint64(math.MaxUint64))
		Expect(graphson.IsKind(err, graphson.ErrKindTypeMismatch)).Should(BeTrue())
	})

	It("writes named types like their underlying type", func() {
		type age int32
		Expect(marshal(mapper, age(29))).Should(Equal(`{"@type":"g:Int32","@value":29}`))

		v, err := mapper.UnmarshalAs([]byte(`{"@type":"g:Int32","@value":29}`), reflect.TypeOf(age(0)))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(age(29)))
	})

	It("writes pointers as the values they point to", func() {
		i := int32(5)
		Expect(marshal(mapper, &i)).Should(Equal(`{"@type":"g:Int32","@value":5}`))
		Expect(marshal(mapper, (*int32)(nil))).Should(Equal(`null`))
	})

	It("flattens maps into typed key and value lists", func() {
		Expect(map[interface{}]interface{}{int32(1): "one"}).Should(testutil.RoundTripThrough(mapper,
			`{"@type":"g:Map","@value":[{"@type":"g:Int32","@value":1},"one"]}`))
		Expect(map[interface{}]interface{}{}).Should(testutil.RoundTripThrough(mapper,
			`{"@type":"g:Map","@value":[]}`))
	})

	It("tags lists and sets", func() {
		Expect([]interface{}{int32(1), "a", nil}).Should(testutil.RoundTripThrough(mapper,
			`{"@type":"g:List","@value":[{"@type":"g:Int32","@value":1},"a",null]}`))
		Expect(graphson.NewSet(int32(1), int32(2))).Should(testutil.RoundTripThrough(mapper,
			`{"@type":"g:Set","@value":[{"@type":"g:Int32","@value":1},{"@type":"g:Int32","@value":2}]}`))
		Expect(marshal(mapper, []string{"a", "b"})).Should(Equal(`{"@type":"g:List","@value":["a","b"]}`))
	})

	It("nests containers", func() {
		value := map[interface{}]interface{}{
			"names": []interface{}{"marko", "vadas"},
		}
		Expect(value).Should(testutil.RoundTripThrough(mapper,
			`{"@type":"g:Map","@value":["names",{"@type":"g:List","@value":["marko","vadas"]}]}`))
	})

	It("rejects malformed map payloads", func() {
		_, err := mapper.Unmarshal([]byte(`{"@type":"g:Map","@value":["a"]}`))
		Expect(graphson.IsKind(err, graphson.ErrKindMalformedEnvelope)).Should(BeTrue())

		_, err = mapper.Unmarshal([]byte(`{"@type":"g:Map","@value":{"a":1}}`))
		Expect(graphson.IsKind(err, graphson.ErrKindMalformedEnvelope)).Should(BeTrue())

		_, err = mapper.Unmarshal([]byte(`{"@type":"g:Map","@value":[{"@type":"g:List","@value":[]},1]}`))
		Expect(err).Should(testutil.MatchGraphSONError(
			testutil.MessageEqual("cannot decode document"),
			testutil.KindIs(graphson.ErrKindMalformedEnvelope),
		))
	})

	Describe("envelope detection", func() {
		It("does not depend on the order of the members", func() {
			Expect(unmarshal(mapper, `{"@value":30,"@type":"g:Int32"}`)).Should(Equal(int32(30)))
			Expect(unmarshal(mapper, `{"@value":["k",{"@value":1,"@type":"g:Int32"}],"@type":"g:Map"}`)).Should(
				Equal(map[interface{}]interface{}{"k": int32(1)}))
		})

		It("rejects envelopes with other members", func() {
			for _, input := range []string{
				`{"@type":"g:Int32","@value":1,"extra":2}`,
				`{"@value":1,"@type":"g:Int32","extra":2}`,
			} {
				_, err := mapper.Unmarshal([]byte(input))
				Expect(err).Should(testutil.MatchGraphSONError(
					testutil.TagIs("g:Int32"),
					testutil.KindIs(graphson.ErrKindMalformedEnvelope),
				), input)
			}
		})

		It("rejects payloads of the wrong kind", func() {
			_, err := mapper.Unmarshal([]byte(`{"@type":"g:Int32","@value":"x"}`))
			Expect(graphson.IsKind(err, graphson.ErrKindTypeMismatch)).Should(BeTrue())
		})

		It("reads objects that are not envelopes as maps without losing members", func() {
			for input, expected := range map[string]map[string]interface{}{
				`{"@type":"g:Int32","name":"x"}`: {"@type": "g:Int32", "name": "x"},
				`{"@value":[1,2],"name":"x"}`:    {"@value": []interface{}{int64(1), int64(2)}, "name": "x"},
				`{"name":"x","@type":"g:Int32"}`: {"name": "x", "@type": "g:Int32"},
				`{"@type":5,"@value":1}`:         {"@type": int64(5), "@value": int64(1)},
				`{"@type":"g:Int32"}`:            {"@type": "g:Int32"},
				`{"@value":{"a":true}}`:          {"@value": map[string]interface{}{"a": true}},
				`{}`:                             {},
			} {
				Expect(unmarshal(mapper, input)).Should(Equal(expected), input)
			}
		})

		It("reads values of unknown tags as strings", func() {
			Expect(unmarshal(mapper, `{"@type":"acme:Custom","@value":"anvil"}`)).Should(Equal("anvil"))
			Expect(unmarshal(mapper, `{"@type":"acme:Custom","@value":42}`)).Should(Equal("42"))
			Expect(unmarshal(mapper, `{"@value":{"a":[1, 2]},"@type":"acme:Custom"}`)).Should(Equal(`{"a":[1,2]}`))
		})

		It("detects envelopes nested in values of objects that are not envelopes", func() {
			Expect(unmarshal(mapper, `{"@value":{"@type":"g:Int64","@value":1},"other":true}`)).Should(Equal(
				map[string]interface{}{"@value": int64(1), "other": true}))
		})
	})
})

var _ = Describe("GraphSON 2.0", func() {
	var mapper *graphson.Mapper

	BeforeEach(func() {
		mapper = newMapper(&graphson.Config{Version: graphson.V2})
	})

	It("tags containers and keeps their natural shape", func() {
		Expect(marshal(mapper, map[string]interface{}{"a": "x"})).Should(MatchJSON(
			`{"@type":"g:Map","@value":{"a":"x"}}`))
		Expect(map[interface{}]interface{}{"a": int32(1), "b": int32(2)}).Should(testutil.RoundTripThrough(mapper, `{
			"@type": "g:Map",
			"@value": {"a": {"@type": "g:Int32", "@value": 1}, "b": {"@type": "g:Int32", "@value": 2}}
		}`))
		Expect([]interface{}{int64(1), "a"}).Should(testutil.RoundTripThrough(mapper,
			`{"@type":"g:List","@value":[{"@type":"g:Int64","@value":1},"a"]}`))
		Expect(graphson.NewSet("a", "b")).Should(testutil.RoundTripThrough(mapper,
			`{"@type":"g:Set","@value":["a","b"]}`))
	})

	It("reads tagged maps into the requested map type", func() {
		v, err := mapper.UnmarshalAs([]byte(`{"@type":"g:Map","@value":{"a":1,"b":2}}`),
			reflect.TypeOf(map[string]int{}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(map[string]int{"a": 1, "b": 2}))
	})

	It("reads untagged containers as natural JSON", func() {
		Expect(unmarshal(mapper, `{"a":[1,"x"]}`)).Should(Equal(map[string]interface{}{
			"a": []interface{}{int64(1), "x"},
		}))
	})

	It("rejects map payloads that are not objects or arrays", func() {
		_, err := mapper.Unmarshal([]byte(`{"@type":"g:Map","@value":"a"}`))
		Expect(graphson.IsKind(err, graphson.ErrKindMalformedEnvelope)).Should(BeTrue())
	})

	It("writes map keys as member names", func() {
		Expect(marshal(mapper, map[int]string{1: "one"})).Should(Equal(`{"@type":"g:Map","@value":{"1":"one"}}`))
	})

	It("reads sets when asked to", func() {
		v, err := mapper.UnmarshalAs([]byte(`["a","b","a"]`), reflect.TypeOf(&graphson.Set{}))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v.(*graphson.Set).Items()).Should(Equal([]interface{}{"a", "b"}))
	})

	It("writes untagged values without types", func() {
		mapper := newMapper(&graphson.Config{Version: graphson.V2, Typing: graphson.NoTypes})
		Expect(marshal(mapper, map[string]interface{}{"age": int32(29)})).Should(Equal(`{"age":29}`))
		Expect(unmarshal(mapper, `{"@type":"g:Int32","@value":29}`)).Should(Equal(map[string]interface{}{
			"@type":  "g:Int32",
			"@value": int64(29),
		}))
	})
})

var _ = Describe("GraphSON 1.0", func() {
	It("writes natural JSON", func() {
		mapper := newMapper(&graphson.Config{Version: graphson.V1})
		Expect(marshal(mapper, map[string]interface{}{"age": int32(29)})).Should(Equal(`{"age":29}`))
		Expect(unmarshal(mapper, `{"age":29}`)).Should(Equal(map[string]interface{}{"age": int64(29)}))

		v, err := mapper.UnmarshalAs([]byte(`29`), reflect.TypeOf(int32(0)))
		Expect(err).ShouldNot(HaveOccurred())
		Expect(v).Should(Equal(int32(29)))
	})

	It("keeps unknown class hints", func() {
		mapper := newMapper(&graphson.Config{Version: graphson.V1, Typing: graphson.PartialTypes})
		Expect(unmarshal(mapper, `{"@class":"java.util.HashMap","a":1}`)).Should(Equal(map[string]interface{}{
			"@class": "java.util.HashMap",
			"a":      int64(1),
		}))
		Expect(unmarshal(mapper, `{"@class":3}`)).Should(Equal(map[string]interface{}{"@class": int64(3)}))
	})
})
