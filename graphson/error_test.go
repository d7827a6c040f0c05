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
	"errors"
	"reflect"

	"github.com/botobag/graphson/graphson"
	"github.com/botobag/graphson/internal/testutil"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Error", func() {
	It("pulls kind and tag from the wrapped error", func() {
		inner := graphson.NewError("bad payload",
			graphson.Op("graphson.Reader.ReadValue"), graphson.Tag("g:Int32"), graphson.ErrKindMalformedEnvelope)
		outer := graphson.NewError("cannot decode document", graphson.Op("graphson.Mapper.Unmarshal"), inner)

		Expect(outer).Should(testutil.MatchGraphSONError(
			testutil.OpIs("graphson.Mapper.Unmarshal"),
			testutil.KindIs(graphson.ErrKindMalformedEnvelope),
			testutil.TagIs("g:Int32"),
		))
		Expect(outer.Error()).Should(Equal(
			`graphson.Mapper.Unmarshal: cannot decode document (tag "g:Int32"): malformed envelope:` + "\n" +
				`  graphson.Reader.ReadValue: bad payload`))
	})

	It("keeps its own kind over the wrapped one", func() {
		inner := graphson.NewError("unexpected end", graphson.ErrKindSyntax)
		outer := graphson.NewError("cannot read input", graphson.ErrKindIO, inner)

		Expect(graphson.IsKind(outer, graphson.ErrKindIO)).Should(BeTrue())
		Expect(graphson.IsKind(outer, graphson.ErrKindSyntax)).Should(BeTrue())
		Expect(graphson.IsKind(outer, graphson.ErrKindTypeMismatch)).Should(BeFalse())
	})

	It("wraps errors from other packages", func() {
		cause := errors.New("connection reset")
		err := graphson.NewError("cannot read input", graphson.Op("graphson.Decoder.Decode"),
			reflect.TypeOf(int32(0)), graphson.ErrKindIO, cause)

		Expect(errors.Is(err, cause)).Should(BeTrue())
		Expect(err.Error()).Should(Equal(
			"graphson.Decoder.Decode: cannot read input (type int32): I/O error: connection reset"))
	})
})
