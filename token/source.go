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

// Source is a forward-only cursor over JSON tokens.
//
// Values are read in the "positioned on" style: code that reads a value starts with the cursor on
// the first token of the value (Current) and leaves it on the last one, so the caller advances with
// Next to whatever follows.
type Source interface {
	// Next advances the cursor and returns the token it lands on. It returns iterator.Done when the
	// source has no more tokens; Current returns the zero Token from then on.
	Next() (Token, error)

	// Current returns the token the cursor is positioned on, or the zero Token if Next has not been
	// called yet or the source is exhausted.
	Current() Token
}
