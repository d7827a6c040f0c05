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

// Package gx provides the extended GraphSON types of the "gx" namespace: arbitrary precision
// numbers, small integers, binary data, characters and calendar values.
//
// Importing the package registers its module with graphson.RegisterModuleProvider, so mappers
// created with Config.AutoDiscover include it. It can also be added explicitly:
//
//	mapper, err := graphson.NewMapper(&graphson.Config{
//		Modules: []*graphson.Module{gx.Module(graphson.V3)},
//	})
//
// Calendar values are written in the ISO-8601 forms of the JVM time API ("2016-01-01T12:30",
// "PT1H30M", "P1Y2M3D", ...).
package gx
