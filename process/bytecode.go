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
	"fmt"
	"strings"
)

// Instruction is a single step or source of a traversal.
type Instruction struct {
	Operator  string
	Arguments []interface{}
}

func (instruction Instruction) String() string {
	var b strings.Builder
	b.WriteString(instruction.Operator)
	b.WriteString("(")
	for i, arg := range instruction.Arguments {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, arg)
	}
	b.WriteString(")")
	return b.String()
}

// Bytecode is the language-neutral form of a traversal. Arguments of instructions may be nested
// Bytecode (anonymous traversals).
type Bytecode struct {
	Sources []Instruction
	Steps   []Instruction
}

// AddSource appends a source instruction, such as withStrategies.
func (bytecode *Bytecode) AddSource(operator string, arguments ...interface{}) *Bytecode {
	bytecode.Sources = append(bytecode.Sources, Instruction{
		Operator:  operator,
		Arguments: arguments,
	})
	return bytecode
}

// AddStep appends a step instruction.
func (bytecode *Bytecode) AddStep(operator string, arguments ...interface{}) *Bytecode {
	bytecode.Steps = append(bytecode.Steps, Instruction{
		Operator:  operator,
		Arguments: arguments,
	})
	return bytecode
}

// IsEmpty returns true if the bytecode has no instruction.
func (bytecode *Bytecode) IsEmpty() bool {
	return len(bytecode.Sources) == 0 && len(bytecode.Steps) == 0
}

func (bytecode *Bytecode) String() string {
	var b strings.Builder
	for _, group := range [][]Instruction{bytecode.Sources, bytecode.Steps} {
		for _, instruction := range group {
			if b.Len() > 0 {
				b.WriteString(".")
			}
			b.WriteString(instruction.String())
		}
	}
	return b.String()
}

// Binding names an argument of a traversal so a server can cache the traversal and substitute the
// value.
type Binding struct {
	Key   string
	Value interface{}
}

// Lambda is a function given as a script.
type Lambda struct {
	Script   string
	Language string

	// Number of arguments the function takes; -1 if unknown.
	Arguments int
}

// NewLambda creates a Lambda in the default script language.
func NewLambda(script string) *Lambda {
	return &Lambda{
		Script:    script,
		Language:  "gremlin-groovy",
		Arguments: -1,
	}
}

// Traverser is a traversal result along with the number of traversers it stands for.
type Traverser struct {
	Bulk  int64
	Value interface{}
}
