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

// coreModule returns the catalogue of the core namespace for version.
func coreModule(version Version) *Module {
	switch version {
	case V1:
		return CoreModuleV1()
	case V2:
		return CoreModuleV2()
	}
	return CoreModuleV3()
}

// CoreModuleV1 returns the catalogue of GraphSON 1.0. Values are written in their natural shape;
// graph structures and metrics have tags that are used as "@class" hints when types are embedded.
func CoreModuleV1() *Module {
	module := &Module{
		Name:      "graphson-core-v1",
		Namespace: CoreNamespace,
	}

	addPrimitives(module, false)
	addContainers(module, false)
	addGraphStructure(module, V1)
	addMetrics(module)

	return module
}
