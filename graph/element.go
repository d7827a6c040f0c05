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

package graph

// Element is the common part of vertices, edges and vertex properties.
type Element interface {
	// ID returns the identifier of the element. Its type depends on the graph that produced it.
	ID() interface{}

	// Label returns the label of the element. For a vertex property, this is its key.
	Label() string
}

// Vertex is a node of a property graph.
type Vertex interface {
	Element

	// VertexProperties returns the properties of the vertex. A key may have several properties
	// (multi-properties).
	VertexProperties() []VertexProperty
}

// Edge connects two vertices.
type Edge interface {
	Element

	// OutV returns the vertex the edge leaves.
	OutV() Vertex

	// InV returns the vertex the edge enters.
	InV() Vertex

	// Properties returns the properties of the edge.
	Properties() []Property
}

// VertexProperty is a property of a vertex. Unlike a Property, it is an element and may have
// properties itself (meta-properties).
type VertexProperty interface {
	Element

	Key() string
	Value() interface{}

	// Properties returns the meta-properties.
	Properties() []Property
}

// Property is a key/value pair attached to an edge or a vertex property.
type Property interface {
	Key() string
	Value() interface{}
}

// detachedVertex is a Vertex that is not backed by a graph.
type detachedVertex struct {
	id         interface{}
	label      string
	properties []VertexProperty
}

// NewVertex creates a detached vertex.
func NewVertex(id interface{}, label string, properties ...VertexProperty) Vertex {
	return &detachedVertex{
		id:         id,
		label:      label,
		properties: properties,
	}
}

func (v *detachedVertex) ID() interface{}                    { return v.id }
func (v *detachedVertex) Label() string                      { return v.label }
func (v *detachedVertex) VertexProperties() []VertexProperty { return v.properties }

func (v *detachedVertex) String() string {
	return "v[" + formatID(v.id) + "]"
}

// detachedEdge is an Edge that is not backed by a graph.
type detachedEdge struct {
	id         interface{}
	label      string
	outV       Vertex
	inV        Vertex
	properties []Property
}

// NewEdge creates a detached edge from outV to inV.
func NewEdge(id interface{}, label string, outV Vertex, inV Vertex, properties ...Property) Edge {
	return &detachedEdge{
		id:         id,
		label:      label,
		outV:       outV,
		inV:        inV,
		properties: properties,
	}
}

func (e *detachedEdge) ID() interface{}        { return e.id }
func (e *detachedEdge) Label() string          { return e.label }
func (e *detachedEdge) OutV() Vertex           { return e.outV }
func (e *detachedEdge) InV() Vertex            { return e.inV }
func (e *detachedEdge) Properties() []Property { return e.properties }

func (e *detachedEdge) String() string {
	var outID, inID interface{}
	if e.outV != nil {
		outID = e.outV.ID()
	}
	if e.inV != nil {
		inID = e.inV.ID()
	}
	return "e[" + formatID(e.id) + "][" + formatID(outID) + "-" + e.label + "->" + formatID(inID) + "]"
}

// detachedVertexProperty is a VertexProperty that is not backed by a graph.
type detachedVertexProperty struct {
	id         interface{}
	key        string
	value      interface{}
	properties []Property
}

// NewVertexProperty creates a detached vertex property.
func NewVertexProperty(id interface{}, key string, value interface{}, properties ...Property) VertexProperty {
	return &detachedVertexProperty{
		id:         id,
		key:        key,
		value:      value,
		properties: properties,
	}
}

func (p *detachedVertexProperty) ID() interface{}        { return p.id }
func (p *detachedVertexProperty) Label() string          { return p.key }
func (p *detachedVertexProperty) Key() string            { return p.key }
func (p *detachedVertexProperty) Value() interface{}     { return p.value }
func (p *detachedVertexProperty) Properties() []Property { return p.properties }

func (p *detachedVertexProperty) String() string {
	return "vp[" + p.key + "->" + formatValue(p.value) + "]"
}

// detachedProperty is a Property that is not backed by a graph.
type detachedProperty struct {
	key   string
	value interface{}
}

// NewProperty creates a detached property.
func NewProperty(key string, value interface{}) Property {
	return &detachedProperty{
		key:   key,
		value: value,
	}
}

func (p *detachedProperty) Key() string        { return p.key }
func (p *detachedProperty) Value() interface{} { return p.value }

func (p *detachedProperty) String() string {
	return "p[" + p.key + "->" + formatValue(p.value) + "]"
}

// FindProperty returns the value of the first property with the given key.
func FindProperty(properties []Property, key string) (interface{}, bool) {
	for _, p := range properties {
		if p.Key() == key {
			return p.Value(), true
		}
	}
	return nil, false
}
