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

package graphson

// CoreModuleV2 returns the catalogue of GraphSON 2.0. Maps, lists and sets are tagged but keep their
// natural shape under "@value": maps are JSON objects keyed by the text of their keys.
func CoreModuleV2() *Module {
	module := &Module{
		Name:      "graphson-core-v2",
		Namespace: CoreNamespace,
	}

	addPrimitives(module, true)
	addContainers(module, true)
	addGraphStructure(module, V2)
	addTraversal(module)
	addMetrics(module)

	return module
}
