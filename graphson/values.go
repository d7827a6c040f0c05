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
	"fmt"
	"reflect"
	"time"

	"github.com/botobag/graphson/graph"

	"github.com/cespare/xxhash/v2"
)

// Set is a collection of distinct values in insertion order. Values are identified by their type
// and formatted value (graph elements by their id) and compared deeply on hash collision.
type Set struct {
	items []interface{}

	// Hash of the identity of an item -> indices of the items with that hash
	index map[uint64][]int
}

// NewSet creates a set containing items.
func NewSet(items ...interface{}) *Set {
	set := &Set{}
	for _, item := range items {
		set.Add(item)
	}
	return set
}

func identityHash(v interface{}) uint64 {
	var identity string
	if element, ok := v.(graph.Element); ok {
		identity = fmt.Sprintf("%T:%v", v, element.ID())
	} else {
		identity = fmt.Sprintf("%T:%v", v, v)
	}
	return xxhash.Sum64String(identity)
}

func (set *Set) find(v interface{}, hash uint64) bool {
	for _, i := range set.index[hash] {
		if reflect.DeepEqual(set.items[i], v) {
			return true
		}
	}
	return false
}

// Add adds v to the set. It returns false if the set already contains v.
func (set *Set) Add(v interface{}) bool {
	hash := identityHash(v)
	if set.find(v, hash) {
		return false
	}
	if set.index == nil {
		set.index = map[uint64][]int{}
	}
	set.index[hash] = append(set.index[hash], len(set.items))
	set.items = append(set.items, v)
	return true
}

// Contains returns true if the set contains v.
func (set *Set) Contains(v interface{}) bool {
	return set.find(v, identityHash(v))
}

// Len returns the number of values in the set.
func (set *Set) Len() int {
	return len(set.items)
}

// Items returns the values in insertion order. The slice is owned by the set.
func (set *Set) Items() []interface{} {
	return set.items
}

// Timestamp is a point in time written as g:Timestamp. Plain time.Time values are written as
// g:Date.
type Timestamp struct {
	time.Time
}

// Class is the name of a class (a type of the server platform), written as g:Class.
type Class string
