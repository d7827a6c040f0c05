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

	"github.com/botobag/graphson/graph"
	"github.com/botobag/graphson/token"
)

// Types of the graph structure catalogue. Elements are registered by their interface so that any
// implementation is written with the tag of its kind.
var (
	vertexType         = reflect.TypeOf((*graph.Vertex)(nil)).Elem()
	edgeType           = reflect.TypeOf((*graph.Edge)(nil)).Elem()
	vertexPropertyType = reflect.TypeOf((*graph.VertexProperty)(nil)).Elem()
	propertyType       = reflect.TypeOf((*graph.Property)(nil)).Elem()
	pathType           = reflect.TypeOf((*graph.Path)(nil))
	treeType           = reflect.TypeOf((*graph.Tree)(nil))
)

// Default labels of elements read without one
const (
	defaultVertexLabel = "vertex"
	defaultEdgeLabel   = "edge"
)

// addGraphStructure adds graph elements, paths and trees. The vertex property must come before the
// property since every vertex property is also a property.
func addGraphStructure(module *Module, version Version) {
	module.Add(vertexType, "Vertex", ShapeObject, writeVertex, readVertex)
	module.Add(edgeType, "Edge", ShapeObject, writeEdge, readEdge)
	module.Add(vertexPropertyType, "VertexProperty", ShapeObject, writeVertexProperty, readVertexProperty)
	module.Add(propertyType, "Property", ShapeObject, writeProperty, readProperty)
	module.Add(pathType, "Path", ShapeObject, writePath, readPath)

	if version == V1 {
		module.Add(treeType, "Tree", ShapeObject, writeTree, readTree)
	} else {
		module.Add(treeType, "Tree", ShapeArray, writeTree, readTree)
	}
}

func writeVertex(w *Writer, v interface{}) error {
	vertex := v.(graph.Vertex)

	object := w.BeginObject()
	if err := object.Field("id", vertex.ID()); err != nil {
		return err
	}
	object.RawField("label").WriteString(vertex.Label())
	if w.Version() == V1 {
		object.RawField("type").WriteString("vertex")
	}

	if properties := vertex.VertexProperties(); len(properties) > 0 {
		if err := writeVertexProperties(object.RawField("properties"), properties); err != nil {
			return err
		}
	}

	return object.End()
}

// writeVertexProperties writes {key: [property, ...], ...} with keys in order of first appearance.
func writeVertexProperties(w *Writer, properties []graph.VertexProperty) error {
	var keys []string
	byKey := map[string][]graph.VertexProperty{}
	for _, p := range properties {
		key := p.Key()
		if _, exists := byKey[key]; !exists {
			keys = append(keys, key)
		}
		byKey[key] = append(byKey[key], p)
	}

	object := w.BeginObject()
	for _, key := range keys {
		list := object.RawField(key).BeginList()
		for _, p := range byKey[key] {
			if err := list.Element(p); err != nil {
				return err
			}
		}
		if err := list.End(); err != nil {
			return err
		}
	}
	return object.End()
}

func readVertex(r *Reader) (interface{}, error) {
	var (
		id         interface{}
		label      = defaultVertexLabel
		properties []graph.VertexProperty
	)

	err := r.ReadObject(func(name string) error {
		var err error
		switch name {
		case "id":
			id, err = r.ReadValue(nil)

		case "label":
			label, err = r.ReadString()

		case "properties":
			err = r.ReadObject(func(key string) error {
				return r.ReadArray(func() error {
					p, err := readVertexPropertyOf(r, key)
					if err != nil {
						return err
					}
					properties = append(properties, p)
					return nil
				})
			})

		default:
			err = r.Skip()
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return graph.NewVertex(id, label, properties...), nil
}

// readVertexPropertyOf reads a vertex property listed under key. Properties written without a label
// take the key.
func readVertexPropertyOf(r *Reader, key string) (graph.VertexProperty, error) {
	v, err := r.ReadValue(vertexPropertyType)
	if err != nil {
		return nil, err
	}
	p, ok := v.(graph.VertexProperty)
	if !ok {
		return nil, malformed(vertexPropertyType, "vertex property "+key+" is null")
	}
	if len(p.Key()) == 0 {
		p = graph.NewVertexProperty(p.ID(), key, p.Value(), p.Properties()...)
	}
	return p, nil
}

func writeEdge(w *Writer, v interface{}) error {
	edge := v.(graph.Edge)

	object := w.BeginObject()
	if err := object.Field("id", edge.ID()); err != nil {
		return err
	}
	object.RawField("label").WriteString(edge.Label())
	if w.Version() == V1 {
		object.RawField("type").WriteString("edge")
	}

	if inV := edge.InV(); inV != nil {
		object.RawField("inVLabel").WriteString(inV.Label())
	}
	if outV := edge.OutV(); outV != nil {
		object.RawField("outVLabel").WriteString(outV.Label())
	}
	if inV := edge.InV(); inV != nil {
		if err := object.Field("inV", inV.ID()); err != nil {
			return err
		}
	}
	if outV := edge.OutV(); outV != nil {
		if err := object.Field("outV", outV.ID()); err != nil {
			return err
		}
	}

	if properties := edge.Properties(); len(properties) > 0 {
		props := object.RawField("properties").BeginObject()
		for _, p := range properties {
			// V1 writes the bare values.
			var err error
			if w.Version() == V1 {
				err = props.Field(p.Key(), p.Value())
			} else {
				err = props.Field(p.Key(), p)
			}
			if err != nil {
				return err
			}
		}
		if err := props.End(); err != nil {
			return err
		}
	}

	return object.End()
}

func readEdge(r *Reader) (interface{}, error) {
	var (
		id                  interface{}
		label               = defaultEdgeLabel
		inV, outV           interface{}
		inVLabel, outVLabel = defaultVertexLabel, defaultVertexLabel
		properties          []graph.Property
	)

	err := r.ReadObject(func(name string) error {
		var err error
		switch name {
		case "id":
			id, err = r.ReadValue(nil)
		case "label":
			label, err = r.ReadString()
		case "inV":
			inV, err = r.ReadValue(nil)
		case "outV":
			outV, err = r.ReadValue(nil)
		case "inVLabel":
			inVLabel, err = r.ReadString()
		case "outVLabel":
			outVLabel, err = r.ReadString()
		case "properties":
			properties, err = readProperties(r)
		default:
			err = r.Skip()
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return graph.NewEdge(id, label, graph.NewVertex(outV, outVLabel), graph.NewVertex(inV, inVLabel),
		properties...), nil
}

// readProperties reads {key: value, ...} where each value is either a Property or a bare value.
func readProperties(r *Reader) ([]graph.Property, error) {
	var properties []graph.Property
	err := r.ReadObject(func(key string) error {
		v, err := r.ReadValue(nil)
		if err != nil {
			return err
		}
		if p, ok := v.(graph.Property); ok {
			properties = append(properties, p)
		} else {
			properties = append(properties, graph.NewProperty(key, v))
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return properties, nil
}

func writeVertexProperty(w *Writer, v interface{}) error {
	p := v.(graph.VertexProperty)

	object := w.BeginObject()
	if err := object.Field("id", p.ID()); err != nil {
		return err
	}
	if err := object.Field("value", p.Value()); err != nil {
		return err
	}
	object.RawField("label").WriteString(p.Key())

	if properties := p.Properties(); len(properties) > 0 {
		props := object.RawField("properties").BeginObject()
		for _, meta := range properties {
			if err := props.Field(meta.Key(), meta.Value()); err != nil {
				return err
			}
		}
		if err := props.End(); err != nil {
			return err
		}
	}

	return object.End()
}

func readVertexProperty(r *Reader) (interface{}, error) {
	var (
		id         interface{}
		key        string
		value      interface{}
		properties []graph.Property
	)

	err := r.ReadObject(func(name string) error {
		var err error
		switch name {
		case "id":
			id, err = r.ReadValue(nil)
		case "label":
			key, err = r.ReadString()
		case "value":
			value, err = r.ReadValue(nil)
		case "properties":
			properties, err = readProperties(r)
		default:
			err = r.Skip()
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return graph.NewVertexProperty(id, key, value, properties...), nil
}

func writeProperty(w *Writer, v interface{}) error {
	p := v.(graph.Property)

	object := w.BeginObject()
	object.RawField("key").WriteString(p.Key())
	if err := object.Field("value", p.Value()); err != nil {
		return err
	}
	return object.End()
}

func readProperty(r *Reader) (interface{}, error) {
	var (
		key   string
		value interface{}
	)

	err := r.ReadObject(func(name string) error {
		var err error
		switch name {
		case "key":
			key, err = r.ReadString()
		case "value":
			value, err = r.ReadValue(nil)
		default:
			err = r.Skip()
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	return graph.NewProperty(key, value), nil
}

// Path labels are written as a list of sets.
func writePath(w *Writer, v interface{}) error {
	path := v.(*graph.Path)

	labels := make([]interface{}, len(path.Labels))
	for i, l := range path.Labels {
		set := &Set{}
		for _, label := range l {
			set.Add(label)
		}
		labels[i] = set
	}

	objects := path.Objects
	if objects == nil {
		objects = []interface{}{}
	}

	object := w.BeginObject()
	if err := object.Field("labels", labels); err != nil {
		return err
	}
	if err := object.Field("objects", objects); err != nil {
		return err
	}
	return object.End()
}

func readPath(r *Reader) (interface{}, error) {
	path := &graph.Path{}

	err := r.ReadObject(func(name string) error {
		switch name {
		case "labels":
			v, err := r.ReadValue(nil)
			if err != nil {
				return err
			}
			items, ok := v.([]interface{})
			if !ok {
				return malformed(pathType, "labels of a path must be a list")
			}
			for _, item := range items {
				labels, ok := stringList(item)
				if !ok {
					return malformed(pathType, "labels of a path object must be a list of strings")
				}
				path.Labels = append(path.Labels, labels)
			}
			return nil

		case "objects":
			v, err := r.ReadValue(nil)
			if err != nil {
				return err
			}
			objects, ok := v.([]interface{})
			if !ok {
				return malformed(pathType, "objects of a path must be a list")
			}
			path.Objects = objects
			return nil
		}
		return r.Skip()
	})
	if err != nil {
		return nil, err
	}

	if len(path.Labels) != len(path.Objects) {
		return nil, malformed(pathType, "path has a different number of labels and objects")
	}
	return path, nil
}

// stringList converts a decoded list or set of strings.
func stringList(v interface{}) ([]string, bool) {
	var items []interface{}
	switch v := v.(type) {
	case []interface{}:
		items = v
	case *Set:
		items = v.Items()
	default:
		return nil, false
	}

	strings := make([]string, len(items))
	for i, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		strings[i] = s
	}
	return strings, true
}

// writeTree writes [{"key": k, "value": subtree}, ...]. V1 writes an object instead, with each
// entry under the text of its key.
func writeTree(w *Writer, v interface{}) error {
	tree := v.(*graph.Tree)

	writeEntry := func(w *Writer, entry graph.TreeEntry) error {
		object := w.BeginObject()
		if err := object.Field("key", entry.Key); err != nil {
			return err
		}
		subtree := entry.Value
		if subtree == nil {
			subtree = &graph.Tree{}
		}
		if err := object.Field("value", subtree); err != nil {
			return err
		}
		return object.End()
	}

	if w.Version() == V1 {
		object := w.BeginObject()
		for _, entry := range tree.Entries {
			if err := writeEntry(object.RawField(mapKeyString(entry.Key)), entry); err != nil {
				return err
			}
		}
		return object.End()
	}

	list := w.BeginList()
	for _, entry := range tree.Entries {
		if err := writeEntry(list.RawElement(), entry); err != nil {
			return err
		}
	}
	return list.End()
}

func readTree(r *Reader) (interface{}, error) {
	tree := &graph.Tree{}

	readEntry := func() error {
		entry := graph.TreeEntry{}
		err := r.ReadObject(func(name string) error {
			switch name {
			case "key":
				key, err := r.ReadValue(nil)
				entry.Key = key
				return err

			case "value":
				subtree, err := r.ReadValue(treeType)
				if err != nil {
					return err
				}
				entry.Value, _ = subtree.(*graph.Tree)
				return nil
			}
			return r.Skip()
		})
		if err != nil {
			return err
		}
		if entry.Value == nil {
			entry.Value = &graph.Tree{}
		}
		tree.Entries = append(tree.Entries, entry)
		return nil
	}

	var err error
	switch r.Current().Kind {
	case token.KindObjectStart:
		err = r.ReadObject(func(string) error { return readEntry() })
	case token.KindArrayStart:
		err = r.ReadArray(readEntry)
	default:
		return nil, malformed(treeType, "expected the entries of a tree but found "+r.Current().String())
	}
	if err != nil {
		return nil, err
	}
	return tree, nil
}
