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

package token

import (
	"github.com/botobag/graphson/iterator"
)

// Concat presents several sources as a single cursor. Sources are drained in order and the
// downstream reader observes exactly the tokens one unsplit stream would have produced.
//
// When Concat moves on to a source that is already positioned on a token (a live parser that was
// stopped mid-document, for example), that token is delivered first instead of advancing past it.
type Concat struct {
	sources []Source
	index   int

	// True once the source at index has been asked for its current token.
	entered bool
	current Token
}

var _ Source = (*Concat)(nil)

// NewConcat creates a Concat over sources. Nil sources are skipped. A nested Concat is read through
// its own cursor rather than spliced in, so it stays consistent for whoever else reads from it.
func NewConcat(sources ...Source) *Concat {
	concat := &Concat{}
	for _, source := range sources {
		if source == nil {
			continue
		}
		if nested, ok := source.(*Concat); ok && nested == nil {
			continue
		}
		concat.sources = append(concat.sources, source)
	}
	return concat
}

// Next implements Source.
func (concat *Concat) Next() (Token, error) {
	for concat.index < len(concat.sources) {
		source := concat.sources[concat.index]

		if !concat.entered {
			concat.entered = true
			if token := source.Current(); token.IsValid() {
				concat.current = token
				return token, nil
			}
		}

		token, err := source.Next()
		if err == iterator.Done {
			concat.index++
			concat.entered = false
			continue
		} else if err != nil {
			concat.current = Token{}
			return Token{}, err
		}

		concat.current = token
		return token, nil
	}

	concat.current = Token{}
	return Token{}, iterator.Done
}

// Current implements Source.
func (concat *Concat) Current() Token {
	return concat.current
}
