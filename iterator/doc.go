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

// Package iterator documents the iteration convention shared by GraphSON token sources and
// document decoders, modeled after the Iterator Guidelines of the Google Cloud Client Libraries
// for Go [0].
//
// An iterable exposes a Next method returning the next item and an error. Next returns Done once
// there are no more items; any other error is terminal and the iterable must be discarded:
//
//	src := token.NewParser(data)
//	for {
//		tok, err := src.Next()
//		if err == iterator.Done {
//			break
//		} else if err != nil {
//			return err
//		}
//		process(tok)
//	}
//
// Decoders follow the same convention for whole documents:
//
//	dec := mapper.NewDecoder(r)
//	for {
//		value, err := dec.Decode()
//		if err == iterator.Done {
//			break
//		} else if err != nil {
//			return err
//		}
//		process(value)
//	}
//
// [0]: https://github.com/googleapis/google-cloud-go/wiki/Iterator-Guidelines
package iterator
