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

package process

import (
	"reflect"
	"time"
)

// Metrics of one step of a profiled traversal.
type Metrics struct {
	ID       string
	Name     string
	Duration time.Duration

	// Counts of the step, such as "traverserCount" and "elementCount"
	Counts map[string]int64

	// Annotations such as "percentDur"
	Annotations map[string]interface{}

	// Metrics of nested traversals
	Nested []*Metrics
}

// TraversalMetrics is the result of a profile step.
type TraversalMetrics struct {
	Duration time.Duration
	Metrics  []*Metrics
}

// TraversalExplanation is the result of an explain step: how strategies rewrote a traversal.
type TraversalExplanation struct {
	// Steps of the traversal as it was submitted
	Original []string

	// Steps after each strategy application
	Intermediate []ExplanationStep

	// Steps of the traversal that is executed
	Final []string
}

// ExplanationStep is one strategy application in a TraversalExplanation.
type ExplanationStep struct {
	Strategy  string
	Category  string
	Traversal []string
}

// BulkSet is a multiset: values with the number of times each occurs, in insertion order.
type BulkSet struct {
	entries []BulkEntry
	size    int64
}

// BulkEntry is a value of a BulkSet with its count.
type BulkEntry struct {
	Value interface{}
	Bulk  int64
}

// Add adds bulk occurrences of value.
func (set *BulkSet) Add(value interface{}, bulk int64) {
	set.size += bulk
	for i := range set.entries {
		if sameValue(set.entries[i].Value, value) {
			set.entries[i].Bulk += bulk
			return
		}
	}
	set.entries = append(set.entries, BulkEntry{
		Value: value,
		Bulk:  bulk,
	})
}

// Entries returns the distinct values with their counts.
func (set *BulkSet) Entries() []BulkEntry {
	return set.entries
}

// Len returns the total number of occurrences.
func (set *BulkSet) Len() int64 {
	return set.size
}

// UniqueLen returns the number of distinct values.
func (set *BulkSet) UniqueLen() int {
	return len(set.entries)
}

// Expand returns every occurrence, values repeated as many times as they occur.
func (set *BulkSet) Expand() []interface{} {
	values := make([]interface{}, 0, set.size)
	for _, entry := range set.entries {
		for i := int64(0); i < entry.Bulk; i++ {
			values = append(values, entry.Value)
		}
	}
	return values
}

func sameValue(a interface{}, b interface{}) bool {
	if a == nil || b == nil {
		return a == b
	}
	t := reflect.TypeOf(a)
	if t != reflect.TypeOf(b) {
		return false
	}
	if !t.Comparable() {
		return reflect.DeepEqual(a, b)
	}
	return a == b
}
