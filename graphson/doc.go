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

// Package graphson implements GraphSON, the JSON format in which graph databases exchange values,
// graph elements and traversals. Versions 1.0, 2.0 and 3.0 of the format are supported for both
// reading and writing.
//
// Mapper
//
// A Mapper is built from a Config and is the only entry point: there is no package level registry.
// It owns a TypeRegistry (tags to Go types and back) and the serializers and deserializers of the
// modules it was built from. A Mapper is immutable once built and safe for concurrent use.
//
//	mapper, err := graphson.NewMapper(&graphson.Config{Version: graphson.V3})
//	data, err := mapper.Marshal(map[string]interface{}{"age": int32(29)})
//	// {"@type":"g:Map","@value":["age",{"@type":"g:Int32","@value":29}]}
//
// Type envelopes
//
// With types, a tagged value is written as {"@type": tag, "@value": value}. Reading an envelope
// does not depend on the order of its two members: when "@value" comes first it is buffered until
// "@type" is seen. An object that turns out not to be an envelope is replayed through a
// token.Concat of the consumed and the remaining tokens, so nothing is lost. A tag that the mapper
// does not know is not an error; its payload is returned as a string and a graphson.unknown-tag
// signal is emitted.
//
// Maps, lists and sets are tagged in V2 and V3. V2 keeps their natural shape under "@value"; V3
// writes maps as a flat array of alternating keys and values so keys keep their types.
//
// V1 has no envelopes. Objects written for graph elements, paths, trees and metrics may carry an
// "@class" member naming their tag, which the reader uses as a hint.
//
// Modules
//
// The core module of each version provides the "g" catalogue. Extension modules, such as the "gx"
// catalogue of package gx, add types on top of it through Config.Modules or, for modules registered
// with RegisterModuleProvider, through Config.AutoDiscover. Serializers write the natural shape of a
// value with a *Writer; how (and whether) the shape is tagged is decided by the mapper.
package graphson
