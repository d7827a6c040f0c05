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
	"reflect"
	"strings"
)

// Tag is a wire type tag of the form "{namespace}:{localName}", such as "g:Int32".
type Tag string

// Namespaces of the built-in modules
const (
	// CoreNamespace is the namespace of the core module of every version.
	CoreNamespace = "g"

	// ExtensionNamespace is the namespace of the extended types module (package gx).
	ExtensionNamespace = "gx"
)

// MakeTag builds a tag from a namespace and a local name.
func MakeTag(namespace string, localName string) Tag {
	return Tag(namespace + ":" + localName)
}

// Namespace returns the part of the tag before the colon.
func (tag Tag) Namespace() string {
	if i := strings.IndexByte(string(tag), ':'); i >= 0 {
		return string(tag[:i])
	}
	return ""
}

// LocalName returns the part of the tag after the colon.
func (tag Tag) LocalName() string {
	if i := strings.IndexByte(string(tag), ':'); i >= 0 {
		return string(tag[i+1:])
	}
	return string(tag)
}

// IsValid returns true if both the namespace and the local name are non-empty.
func (tag Tag) IsValid() bool {
	i := strings.IndexByte(string(tag), ':')
	return i > 0 && i < len(tag)-1
}

var stringType = reflect.TypeOf("")

// TypeRegistry is a bidirectional map between Go types and wire type tags. A Mapper builds one
// registry from the modules it is configured with and never changes it afterwards, so lookups need
// no locking.
type TypeRegistry struct {
	typeToTag map[reflect.Type]Tag
	tagToType map[Tag]reflect.Type

	// Tags in registration order
	tags []Tag
}

// NewTypeRegistry creates an empty registry.
func NewTypeRegistry() *TypeRegistry {
	return &TypeRegistry{
		typeToTag: map[reflect.Type]Tag{},
		tagToType: map[Tag]reflect.Type{},
	}
}

// Register binds t to tag. It fails if either is already bound to something else. Registering the
// same pair twice is a no-op.
func (registry *TypeRegistry) Register(t reflect.Type, tag Tag) error {
	const op Op = "graphson.TypeRegistry.Register"

	if t == nil {
		return NewError("cannot register a nil type", op, tag, ErrKindRegistration)
	}
	if !tag.IsValid() {
		return NewError(`tag must have the form "namespace:localName"`, op, tag, t, ErrKindRegistration)
	}

	if existing, exists := registry.tagToType[tag]; exists {
		if existing == t {
			return nil
		}
		return NewError("tag is already registered to "+existing.String(), op, tag, t, ErrKindRegistration)
	}

	if existing, exists := registry.typeToTag[t]; exists {
		return NewError("type is already registered as "+string(existing), op, tag, t, ErrKindRegistration)
	}

	registry.typeToTag[t] = tag
	registry.tagToType[tag] = t
	registry.tags = append(registry.tags, tag)
	return nil
}

// TagFor returns the tag registered for t.
func (registry *TypeRegistry) TagFor(t reflect.Type) (Tag, error) {
	tag, exists := registry.typeToTag[t]
	if !exists {
		return "", NewError("no tag is registered for the type", Op("graphson.TypeRegistry.TagFor"), t,
			ErrKindUnregisteredType)
	}
	return tag, nil
}

// lookupTag is TagFor without the error.
func (registry *TypeRegistry) lookupTag(t reflect.Type) (Tag, bool) {
	tag, exists := registry.typeToTag[t]
	return tag, exists
}

// TypeFor returns the type registered for tag. An unknown tag resolves to the string type with
// known set to false: values carrying tags from a newer peer are read as strings instead of failing
// the whole document.
func (registry *TypeRegistry) TypeFor(tag Tag) (t reflect.Type, known bool) {
	t, known = registry.tagToType[tag]
	if !known {
		return stringType, false
	}
	return t, true
}

// Tags returns all registered tags in registration order.
func (registry *TypeRegistry) Tags() []Tag {
	tags := make([]Tag, len(registry.tags))
	copy(tags, registry.tags)
	return tags
}

// Len returns the number of registered types.
func (registry *TypeRegistry) Len() int {
	return len(registry.tags)
}
