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
	"reflect"

	"github.com/botobag/graphson/graph"
	"github.com/botobag/graphson/graphson"
	"github.com/botobag/graphson/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Tag", func() {
	It("splits into namespace and local name", func() {
		tag := graphson.MakeTag("gx", "BigDecimal")
		Expect(tag).Should(Equal(graphson.Tag("gx:BigDecimal")))
		Expect(tag.Namespace()).Should(Equal("gx"))
		Expect(tag.LocalName()).Should(Equal("BigDecimal"))
		Expect(tag.IsValid()).Should(BeTrue())
	})

	It("rejects tags without both parts", func() {
		Expect(graphson.Tag("Int32").IsValid()).Should(BeFalse())
		Expect(graphson.Tag(":Int32").IsValid()).Should(BeFalse())
		Expect(graphson.Tag("g:").IsValid()).Should(BeFalse())
		Expect(graphson.Tag("Int32").Namespace()).Should(BeEmpty())
		Expect(graphson.Tag("Int32").LocalName()).Should(Equal("Int32"))
	})
})

var _ = Describe("TypeRegistry", func() {
	var (
		registry  *graphson.TypeRegistry
		int32Type = reflect.TypeOf(int32(0))
		int64Type = reflect.TypeOf(int64(0))
	)

	BeforeEach(func() {
		registry = graphson.NewTypeRegistry()
		Expect(registry.Register(int32Type, "g:Int32")).Should(Succeed())
	})

	It("maps types and tags both ways", func() {
		Expect(registry.TagFor(int32Type)).Should(Equal(graphson.Tag("g:Int32")))

		t, known := registry.TypeFor("g:Int32")
		Expect(known).Should(BeTrue())
		Expect(t).Should(Equal(int32Type))
	})

	It("resolves unknown tags to strings", func() {
		t, known := registry.TypeFor("g:NotRegistered")
		Expect(known).Should(BeFalse())
		Expect(t).Should(Equal(reflect.TypeOf("")))
	})

	It("fails to find the tag of an unregistered type", func() {
		_, err := registry.TagFor(int64Type)
		Expect(err).Should(testutil.MatchGraphSONError(
			testutil.KindIs(graphson.ErrKindUnregisteredType),
			testutil.OpIs("graphson.TypeRegistry.TagFor"),
		))
	})

	It("accepts registering the same pair twice", func() {
		Expect(registry.Register(int32Type, "g:Int32")).Should(Succeed())
		Expect(registry.Len()).Should(Equal(1))
	})

	It("rejects conflicting registrations", func() {
		Expect(registry.Register(int64Type, "g:Int32")).Should(testutil.MatchGraphSONError(
			testutil.MessageEqual("tag is already registered to int32"),
			testutil.KindIs(graphson.ErrKindRegistration),
			testutil.TagIs("g:Int32"),
		))
		Expect(registry.Register(int32Type, "g:Integer")).Should(testutil.MatchGraphSONError(
			testutil.MessageEqual("type is already registered as g:Int32"),
			testutil.KindIs(graphson.ErrKindRegistration),
		))
		Expect(registry.Register(int64Type, "Int64")).Should(testutil.MatchGraphSONError(
			testutil.KindIs(graphson.ErrKindRegistration),
		))
		Expect(registry.Register(nil, "g:Nil")).Should(testutil.MatchGraphSONError(
			testutil.KindIs(graphson.ErrKindRegistration),
		))
	})

	It("lists tags in registration order", func() {
		Expect(registry.Register(int64Type, "g:Int64")).Should(Succeed())
		tags := registry.Tags()
		Expect(tags).Should(Equal([]graphson.Tag{"g:Int32", "g:Int64"}))

		tags[0] = "g:Changed"
		Expect(registry.Tags()[0]).Should(Equal(graphson.Tag("g:Int32")))
	})

	It("is built from the modules of a mapper", func() {
		mapper := newMapper(&graphson.Config{Version: graphson.V3})
		Expect(mapper.Registry().TagFor(reflect.TypeOf((*graph.Vertex)(nil)).Elem())).Should(
			Equal(graphson.Tag("g:Vertex")))
		Expect(mapper.Registry().TagFor(reflect.TypeOf(graphson.Class("")))).Should(
			Equal(graphson.Tag("g:Class")))
	})
})

var _ = Describe("Set", func() {
	It("keeps distinct values in insertion order", func() {
		set := graphson.NewSet("b", "a", "b", int32(1), int64(1))
		Expect(set.Len()).Should(Equal(4))
		Expect(set.Items()).Should(Equal([]interface{}{"b", "a", int32(1), int64(1)}))
		Expect(set.Contains("a")).Should(BeTrue())
		Expect(set.Contains(int16(1))).Should(BeFalse())
	})

	It("reports whether a value was added", func() {
		set := &graphson.Set{}
		Expect(set.Add([]interface{}{"x"})).Should(BeTrue())
		Expect(set.Add([]interface{}{"x"})).Should(BeFalse())
		Expect(set.Len()).Should(Equal(1))
	})

	It("identifies graph elements by id", func() {
		set := graphson.NewSet(graph.NewVertex(int64(1), "person"))
		Expect(set.Contains(graph.NewVertex(int64(1), "person"))).Should(BeTrue())
		Expect(set.Add(graph.NewVertex(int64(2), "person"))).Should(BeTrue())
		Expect(set.Len()).Should(Equal(2))
	})
})
