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

import (
	"fmt"
	"strings"
)

func formatID(id interface{}) string {
	if id == nil {
		return "null"
	}
	return fmt.Sprint(id)
}

// formatValue shortens long values the way element String methods show them.
func formatValue(v interface{}) string {
	const maxLen = 20
	s := fmt.Sprint(v)
	if len(s) > maxLen {
		return s[:maxLen] + "..."
	}
	return s
}

// Path is the history of objects a traverser went through, each with the step labels it was given.
type Path struct {
	// Labels[i] are the labels of Objects[i].
	Labels  [][]string
	Objects []interface{}
}

// Extend appends an object to the path.
func (path *Path) Extend(object interface{}, labels ...string) *Path {
	if labels == nil {
		labels = []string{}
	}
	path.Labels = append(path.Labels, labels)
	path.Objects = append(path.Objects, object)
	return path
}

// Len returns the number of objects in the path.
func (path *Path) Len() int {
	return len(path.Objects)
}

// Get returns the objects labeled with label.
func (path *Path) Get(label string) []interface{} {
	var objects []interface{}
	for i, labels := range path.Labels {
		for _, l := range labels {
			if l == label {
				objects = append(objects, path.Objects[i])
				break
			}
		}
	}
	return objects
}

func (path *Path) String() string {
	var b strings.Builder
	b.WriteString("path[")
	for i, object := range path.Objects {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(fmt.Sprint(object))
	}
	b.WriteString("]")
	return b.String()
}

// Tree is the result of a tree step: objects arranged by the order traversers visited them.
type Tree struct {
	Entries []TreeEntry
}

// TreeEntry is a node of a Tree with its subtree.
type TreeEntry struct {
	Key   interface{}
	Value *Tree
}

// Add appends a node and returns its subtree.
func (tree *Tree) Add(key interface{}) *Tree {
	subtree := &Tree{}
	tree.Entries = append(tree.Entries, TreeEntry{
		Key:   key,
		Value: subtree,
	})
	return subtree
}

// Len returns the number of nodes at the top level.
func (tree *Tree) Len() int {
	return len(tree.Entries)
}

// Leaves returns the keys of the nodes without children.
func (tree *Tree) Leaves() []interface{} {
	var leaves []interface{}
	for _, entry := range tree.Entries {
		if entry.Value == nil || entry.Value.Len() == 0 {
			leaves = append(leaves, entry.Key)
		} else {
			leaves = append(leaves, entry.Value.Leaves()...)
		}
	}
	return leaves
}
