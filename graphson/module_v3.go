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

// CoreModuleV3 returns the catalogue of GraphSON 3.0. It extends the catalogue of GraphSON 2.0 with
// bulk sets and writes maps flattened so their keys keep their types.
func CoreModuleV3() *Module {
	module := &Module{
		Name:      "graphson-core-v3",
		Namespace: CoreNamespace,
	}

	addPrimitives(module, true)
	addContainers(module, true)
	addGraphStructure(module, V3)
	addTraversal(module)
	addMetrics(module)
	module.Add(bulkSetType, "BulkSet", ShapeArray, writeBulkSet, readBulkSet)

	return module
}
