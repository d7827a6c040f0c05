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

package testutil

import (
	"fmt"
	"reflect"

	"github.com/onsi/gomega/types"

	jsoniter "github.com/json-iterator/go"
)

// Codec is the part of graphson.Mapper used by RoundTripThrough.
type Codec interface {
	Marshal(v interface{}) ([]byte, error)
	Unmarshal(data []byte) (interface{}, error)
}

// Numbers are kept as their literals so 64-bit integers are compared exactly.
var jsonConfig = jsoniter.Config{UseNumber: true}.Froze()

type roundTripMatcher struct {
	codec Codec
	wire  string

	// Failure details
	encoded []byte
	decoded interface{}
}

// RoundTripThrough returns a Gomega matcher that encodes actual value with codec, compares the
// result with the JSON text wire (ignoring member order and whitespace), and then decodes wire with
// codec and compares the result against actual.
func RoundTripThrough(codec Codec, wire string) types.GomegaMatcher {
	return &roundTripMatcher{
		codec: codec,
		wire:  wire,
	}
}

// Match implements types.GomegaMatcher.
func (matcher *roundTripMatcher) Match(actual interface{}) (success bool, err error) {
	encoded, err := matcher.codec.Marshal(actual)
	if err != nil {
		return false, fmt.Errorf("RoundTripThrough matcher cannot encode actual: %s", err)
	}
	matcher.encoded = encoded

	var encodedValue, expectedValue interface{}
	if err := jsonConfig.Unmarshal(encoded, &encodedValue); err != nil {
		return false, fmt.Errorf("RoundTripThrough matcher got invalid JSON %s: %s", encoded, err)
	}
	if err := jsonConfig.Unmarshal([]byte(matcher.wire), &expectedValue); err != nil {
		return false, fmt.Errorf("RoundTripThrough matcher was given invalid JSON %s: %s", matcher.wire, err)
	}
	if !reflect.DeepEqual(encodedValue, expectedValue) {
		return false, nil
	}

	decoded, err := matcher.codec.Unmarshal([]byte(matcher.wire))
	if err != nil {
		return false, fmt.Errorf("RoundTripThrough matcher cannot decode %s: %s", matcher.wire, err)
	}
	matcher.decoded = decoded

	return reflect.DeepEqual(decoded, actual), nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher *roundTripMatcher) FailureMessage(actual interface{}) (message string) {
	if matcher.decoded != nil {
		return fmt.Sprintf("Expected\n\t%#v\nto decode from\n\t%s\nbut got\n\t%#v", actual, matcher.wire, matcher.decoded)
	}
	return fmt.Sprintf("Expected\n\t%#v\nto encode to\n\t%s\nbut got\n\t%s", actual, matcher.wire, matcher.encoded)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher *roundTripMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return fmt.Sprintf("Expected\n\t%#v\nnot to round trip through\n\t%s", actual, matcher.wire)
}
