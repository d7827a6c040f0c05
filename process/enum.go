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

// T names the intrinsic parts of an element.
type T string

// Enumeration of T
const (
	TID    T = "id"
	TLabel T = "label"
	TKey   T = "key"
	TValue T = "value"
)

// Direction of an edge relative to a vertex.
type Direction string

// Enumeration of Direction
const (
	Out  Direction = "OUT"
	In   Direction = "IN"
	Both Direction = "BOTH"
)

// Order of sorted results.
type Order string

// Enumeration of Order
const (
	Asc     Order = "asc"
	Desc    Order = "desc"
	Shuffle Order = "shuffle"
)

// Cardinality of a vertex property key.
type Cardinality string

// Enumeration of Cardinality
const (
	List   Cardinality = "list"
	Set    Cardinality = "set"
	Single Cardinality = "single"
)

// Column selects the keys or the values of map entries.
type Column string

// Enumeration of Column
const (
	Keys   Column = "keys"
	Values Column = "values"
)

// Operator reduces values in sack and sideEffect steps.
type Operator string

// Enumeration of Operator
const (
	Sum     Operator = "sum"
	Minus   Operator = "minus"
	Mult    Operator = "mult"
	Div     Operator = "div"
	Min     Operator = "min"
	Max     Operator = "max"
	Assign  Operator = "assign"
	And     Operator = "and"
	Or      Operator = "or"
	AddAll  Operator = "addAll"
	SumLong Operator = "sumLong"
)

// Pop selects which objects with a label are taken from a path.
type Pop string

// Enumeration of Pop
const (
	First Pop = "first"
	Last  Pop = "last"
	All   Pop = "all"
	Mixed Pop = "mixed"
)

// Scope of a step: all traversers or the current object.
type Scope string

// Enumeration of Scope
const (
	Global Scope = "global"
	Local  Scope = "local"
)

// Barrier is a barrier step behavior.
type Barrier string

// Enumeration of Barrier
const (
	NormSack Barrier = "normSack"
)

// Pick is a special option token of branch steps.
type Pick string

// Enumeration of Pick
const (
	Any  Pick = "any"
	None Pick = "none"
)

// Merge is an option token of the mergeV and mergeE steps.
type Merge string

// Enumeration of Merge
const (
	OnCreate Merge = "onCreate"
	OnMatch  Merge = "onMatch"
	OutV     Merge = "outV"
	InV      Merge = "inV"
)
