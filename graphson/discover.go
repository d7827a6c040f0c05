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

import (
	"sort"
	"sync"
)

// ModuleProvider builds the module for a version. It returns nil if it has nothing for the version.
type ModuleProvider func(version Version) *Module

var (
	providers   = map[string]ModuleProvider{}
	providersMu sync.RWMutex
)

// RegisterModuleProvider makes a module available to mappers created with Config.AutoDiscover. It is
// meant to be called from the init function of the package defining the module. Registering a name
// twice replaces the previous provider.
func RegisterModuleProvider(name string, provider ModuleProvider) {
	providersMu.Lock()
	defer providersMu.Unlock()
	if provider == nil {
		delete(providers, name)
		return
	}
	providers[name] = provider
}

// discoverModules returns the modules of all registered providers for version, ordered by provider
// name.
func discoverModules(version Version) []*Module {
	providersMu.RLock()
	names := make([]string, 0, len(providers))
	for name := range providers {
		names = append(names, name)
	}
	snapshot := make(map[string]ModuleProvider, len(providers))
	for name, provider := range providers {
		snapshot[name] = provider
	}
	providersMu.RUnlock()

	sort.Strings(names)

	var modules []*Module
	for _, name := range names {
		if module := snapshot[name](version); module != nil {
			modules = append(modules, module)
		}
	}
	return modules
}
