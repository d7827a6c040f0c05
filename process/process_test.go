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

package process_test

import (
	"reflect"

	"github.com/botobag/graphson/process"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Bytecode", func() {
	It("collects sources and steps", func() {
		bytecode := &process.Bytecode{}
		Expect(bytecode.IsEmpty()).Should(BeTrue())

		anonymous := (&process.Bytecode{}).AddStep("out", "knows")
		bytecode.
			AddSource("withStrategies", process.ReadOnlyStrategy{}).
			AddStep("V").
			AddStep("has", "name", process.Eq("marko")).
			AddStep("repeat", anonymous)

		Expect(bytecode.IsEmpty()).Should(BeFalse())
		Expect(bytecode.Sources).Should(HaveLen(1))
		Expect(bytecode.Steps).Should(HaveLen(3))
		Expect(bytecode.Steps[0].Arguments).Should(BeEmpty())
		Expect(bytecode.Steps[1].String()).Should(Equal("has(name, eq(marko))"))
		Expect(bytecode.Steps[2].Arguments[0]).Should(BeIdenticalTo(anonymous))
		Expect(anonymous.String()).Should(Equal("out(knows)"))
	})

	It("creates lambdas in the default language", func() {
		lambda := process.NewLambda("it.get()")
		Expect(lambda.Language).Should(Equal("gremlin-groovy"))
		Expect(lambda.Arguments).Should(Equal(-1))
	})
})

var _ = Describe("P", func() {
	It("builds range predicates with list values", func() {
		Expect(process.Between(1, 10).Value).Should(Equal([]interface{}{1, 10}))
		Expect(process.Within().Value).Should(Equal([]interface{}{}))
		Expect(process.Without("a", "b").Value).Should(Equal([]interface{}{"a", "b"}))
	})

	It("connects predicates", func() {
		gt := process.Gt(1)
		lt := process.Lt(5)
		and := gt.And(lt)
		Expect(and.Predicate).Should(Equal("and"))
		Expect(and.Value).Should(Equal([]interface{}{gt, lt}))
		Expect(process.Not(gt).Value).Should(BeIdenticalTo(gt))

		text := process.StartingWith("ma").Or(process.Regex("^j"))
		Expect(text.Predicate).Should(Equal("or"))
		Expect(text.String()).Should(ContainSubstring("startingWith(ma)"))
	})
})

var _ = Describe("BulkSet", func() {
	It("counts occurrences", func() {
		set := &process.BulkSet{}
		set.Add("marko", 2)
		set.Add("josh", 1)
		set.Add("marko", 1)

		Expect(set.Len()).Should(Equal(int64(4)))
		Expect(set.UniqueLen()).Should(Equal(2))
		Expect(set.Entries()).Should(Equal([]process.BulkEntry{
			{Value: "marko", Bulk: 3},
			{Value: "josh", Bulk: 1},
		}))
		Expect(set.Expand()).Should(Equal([]interface{}{"marko", "marko", "marko", "josh"}))
	})

	It("accepts values that are not comparable", func() {
		set := &process.BulkSet{}
		set.Add([]interface{}{1}, 1)
		set.Add([]interface{}{1}, 1)
		set.Add(map[string]interface{}{"a": 1}, 1)
		Expect(set.UniqueLen()).Should(Equal(2))
	})
})

var _ = Describe("Strategy", func() {
	It("is named after its type", func() {
		Expect(process.StrategyName(process.SubgraphStrategy{})).Should(Equal("SubgraphStrategy"))
		Expect(process.StrategyName(&process.ReadOnlyStrategy{})).Should(Equal("ReadOnlyStrategy"))
	})

	It("has distinct types", func() {
		names := map[string]bool{}
		for _, strategy := range process.Strategies {
			name := process.StrategyName(strategy)
			Expect(names).ShouldNot(HaveKey(name))
			names[name] = true
		}
	})

	It("creates strategies from their type", func() {
		strategy := process.NewStrategy(reflect.TypeOf(process.PartitionStrategy{}), map[string]interface{}{
			"partitionKey": "_partition",
		})
		Expect(strategy).Should(BeAssignableToTypeOf(process.PartitionStrategy{}))
		Expect(strategy.Configuration()).Should(HaveKeyWithValue("partitionKey", "_partition"))
	})
})
