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
	"sort"
	"time"

	"github.com/botobag/graphson/process"
	"github.com/botobag/graphson/token"
)

// Types of the traversal catalogue
var (
	bytecodeType             = reflect.TypeOf((*process.Bytecode)(nil))
	bindingType              = reflect.TypeOf(process.Binding{})
	lambdaType               = reflect.TypeOf((*process.Lambda)(nil))
	pType                    = reflect.TypeOf((*process.P)(nil))
	textPType                = reflect.TypeOf((*process.TextP)(nil))
	traverserType            = reflect.TypeOf(process.Traverser{})
	metricsType              = reflect.TypeOf((*process.Metrics)(nil))
	traversalMetricsType     = reflect.TypeOf((*process.TraversalMetrics)(nil))
	traversalExplanationType = reflect.TypeOf((*process.TraversalExplanation)(nil))
	bulkSetType              = reflect.TypeOf((*process.BulkSet)(nil))
	countsType               = reflect.TypeOf(map[string]int64{})
	annotationsType          = reflect.TypeOf(map[string]interface{}{})
)

// Enumerations with their local names
var enumTypes = []struct {
	Type      reflect.Type
	LocalName string
}{
	{reflect.TypeOf(process.T("")), "T"},
	{reflect.TypeOf(process.Direction("")), "Direction"},
	{reflect.TypeOf(process.Order("")), "Order"},
	{reflect.TypeOf(process.Cardinality("")), "Cardinality"},
	{reflect.TypeOf(process.Column("")), "Column"},
	{reflect.TypeOf(process.Operator("")), "Operator"},
	{reflect.TypeOf(process.Pop("")), "Pop"},
	{reflect.TypeOf(process.Scope("")), "Scope"},
	{reflect.TypeOf(process.Barrier("")), "Barrier"},
	{reflect.TypeOf(process.Pick("")), "Pick"},
	{reflect.TypeOf(process.Merge("")), "Merge"},
}

// addTraversal adds bytecode and the values it carries (V2 and V3).
func addTraversal(module *Module) {
	module.Add(bytecodeType, "Bytecode", ShapeObject, writeBytecode, readBytecode)
	module.Add(bindingType, "Binding", ShapeObject, writeBinding, readBinding)
	module.Add(lambdaType, "Lambda", ShapeObject, writeLambda, readLambda)
	module.Add(pType, "P", ShapeObject, writeP, readP)
	module.Add(textPType, "TextP", ShapeObject, writeTextP, readTextP)
	module.Add(traverserType, "Traverser", ShapeObject, writeTraverser, readTraverser)
	module.Add(traversalExplanationType, "TraversalExplanation", ShapeObject, writeTraversalExplanation,
		readTraversalExplanation)

	for _, enum := range enumTypes {
		module.Add(enum.Type, enum.LocalName, ShapeScalar, writeEnum, makeEnumReader(enum.Type))
	}

	for _, strategy := range process.Strategies {
		t := reflect.TypeOf(strategy)
		module.Add(t, t.Name(), ShapeObject, writeStrategy, makeStrategyReader(t))
	}
}

// addMetrics adds the results of profiled traversals (all versions).
func addMetrics(module *Module) {
	module.Add(metricsType, "Metrics", ShapeObject, writeMetrics, readMetrics)
	module.Add(traversalMetricsType, "TraversalMetrics", ShapeObject, writeTraversalMetrics, readTraversalMetrics)
}

//===----------------------------------------------------------------------------------------====//
// Bytecode
//===----------------------------------------------------------------------------------------====//

func writeBytecode(w *Writer, v interface{}) error {
	bytecode := v.(*process.Bytecode)

	writeInstructions := func(w *Writer, instructions []process.Instruction) error {
		list := w.BeginList()
		for _, instruction := range instructions {
			item := list.RawElement().BeginList()
			item.RawElement().WriteString(instruction.Operator)
			for _, arg := range instruction.Arguments {
				if err := item.Element(arg); err != nil {
					return err
				}
			}
			if err := item.End(); err != nil {
				return err
			}
		}
		return list.End()
	}

	object := w.BeginObject()
	if len(bytecode.Steps) > 0 {
		if err := writeInstructions(object.RawField("step"), bytecode.Steps); err != nil {
			return err
		}
	}
	if len(bytecode.Sources) > 0 {
		if err := writeInstructions(object.RawField("source"), bytecode.Sources); err != nil {
			return err
		}
	}
	return object.End()
}

func readBytecode(r *Reader) (interface{}, error) {
	bytecode := &process.Bytecode{}

	readInstructions := func() ([]process.Instruction, error) {
		var instructions []process.Instruction
		err := r.ReadArray(func() error {
			var instruction process.Instruction
			err := r.ReadArray(func() error {
				if len(instruction.Operator) == 0 {
					operator, err := r.ReadString()
					if err != nil {
						return err
					}
					if len(operator) == 0 {
						return malformed(bytecodeType, "instruction without an operator")
					}
					instruction.Operator = operator
					return nil
				}
				arg, err := r.ReadValue(nil)
				if err != nil {
					return err
				}
				instruction.Arguments = append(instruction.Arguments, arg)
				return nil
			})
			if err != nil {
				return err
			}
			if len(instruction.Operator) == 0 {
				return malformed(bytecodeType, "instruction without an operator")
			}
			instructions = append(instructions, instruction)
			return nil
		})
		return instructions, err
	}

	err := r.ReadObject(func(name string) error {
		var err error
		switch name {
		case "step":
			bytecode.Steps, err = readInstructions()
		case "source":
			bytecode.Sources, err = readInstructions()
		default:
			err = r.Skip()
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return bytecode, nil
}

func writeBinding(w *Writer, v interface{}) error {
	binding := v.(process.Binding)

	object := w.BeginObject()
	object.RawField("key").WriteString(binding.Key)
	if err := object.Field("value", binding.Value); err != nil {
		return err
	}
	return object.End()
}

func readBinding(r *Reader) (interface{}, error) {
	var binding process.Binding
	err := r.ReadObject(func(name string) error {
		var err error
		switch name {
		case "key":
			binding.Key, err = r.ReadString()
		case "value":
			binding.Value, err = r.ReadValue(nil)
		default:
			err = r.Skip()
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return binding, nil
}

func writeLambda(w *Writer, v interface{}) error {
	lambda := v.(*process.Lambda)

	object := w.BeginObject()
	object.RawField("script").WriteString(lambda.Script)
	object.RawField("language").WriteString(lambda.Language)
	// Written untagged like the other bookkeeping numbers.
	object.RawField("arguments").WriteInt32(int32(lambda.Arguments))
	return object.End()
}

func readLambda(r *Reader) (interface{}, error) {
	lambda := &process.Lambda{Arguments: -1}
	err := r.ReadObject(func(name string) error {
		var err error
		switch name {
		case "script":
			lambda.Script, err = r.ReadString()
		case "language":
			lambda.Language, err = r.ReadString()
		case "arguments":
			var v interface{}
			if v, err = r.ReadValue(intType); err == nil {
				lambda.Arguments, _ = v.(int)
			}
		default:
			err = r.Skip()
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return lambda, nil
}

//===----------------------------------------------------------------------------------------====//
// Predicates and traversers
//===----------------------------------------------------------------------------------------====//

func writePredicate(w *Writer, predicate string, value interface{}) error {
	object := w.BeginObject()
	object.RawField("predicate").WriteString(predicate)
	if err := object.Field("value", value); err != nil {
		return err
	}
	return object.End()
}

func readPredicate(r *Reader, t reflect.Type) (string, interface{}, error) {
	var (
		predicate string
		value     interface{}
	)
	err := r.ReadObject(func(name string) error {
		var err error
		switch name {
		case "predicate":
			predicate, err = r.ReadString()
		case "value":
			value, err = r.ReadValue(nil)
		default:
			err = r.Skip()
		}
		return err
	})
	if err != nil {
		return "", nil, err
	}
	if len(predicate) == 0 {
		return "", nil, malformed(t, "predicate without a name")
	}
	return predicate, value, nil
}

func writeP(w *Writer, v interface{}) error {
	p := v.(*process.P)
	return writePredicate(w, p.Predicate, p.Value)
}

func readP(r *Reader) (interface{}, error) {
	predicate, value, err := readPredicate(r, pType)
	if err != nil {
		return nil, err
	}
	return &process.P{Predicate: predicate, Value: value}, nil
}

func writeTextP(w *Writer, v interface{}) error {
	p := v.(*process.TextP)
	return writePredicate(w, p.Predicate, p.Value)
}

func readTextP(r *Reader) (interface{}, error) {
	predicate, value, err := readPredicate(r, textPType)
	if err != nil {
		return nil, err
	}
	return &process.TextP{Predicate: predicate, Value: value}, nil
}

func writeTraverser(w *Writer, v interface{}) error {
	traverser := v.(process.Traverser)

	object := w.BeginObject()
	if err := object.Field("bulk", traverser.Bulk); err != nil {
		return err
	}
	if err := object.Field("value", traverser.Value); err != nil {
		return err
	}
	return object.End()
}

func readTraverser(r *Reader) (interface{}, error) {
	traverser := process.Traverser{Bulk: 1}
	err := r.ReadObject(func(name string) error {
		switch name {
		case "bulk":
			bulk, err := r.ReadValue(int64Type)
			if err != nil {
				return err
			}
			traverser.Bulk, _ = bulk.(int64)
			return nil

		case "value":
			value, err := r.ReadValue(nil)
			traverser.Value = value
			return err
		}
		return r.Skip()
	})
	if err != nil {
		return nil, err
	}
	return traverser, nil
}

func writeEnum(w *Writer, v interface{}) error {
	w.WriteString(reflect.ValueOf(v).String())
	return nil
}

func makeEnumReader(t reflect.Type) DeserializeFunc {
	return func(r *Reader) (interface{}, error) {
		s, err := r.ReadString()
		if err != nil {
			return nil, err
		}
		return reflect.ValueOf(s).Convert(t).Interface(), nil
	}
}

//===----------------------------------------------------------------------------------------====//
// Strategies
//===----------------------------------------------------------------------------------------====//

// writeStrategy writes the configuration of a strategy as an object with sorted members.
func writeStrategy(w *Writer, v interface{}) error {
	config := v.(process.Strategy).Configuration()

	keys := make([]string, 0, len(config))
	for key := range config {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	object := w.BeginObject()
	for _, key := range keys {
		if err := object.Field(key, config[key]); err != nil {
			return err
		}
	}
	return object.End()
}

func makeStrategyReader(t reflect.Type) DeserializeFunc {
	return func(r *Reader) (interface{}, error) {
		config := map[string]interface{}{}
		err := r.ReadObject(func(name string) error {
			v, err := r.ReadValue(nil)
			if err != nil {
				return err
			}
			config[name] = v
			return nil
		})
		if err != nil {
			return nil, err
		}
		return process.NewStrategy(t, config), nil
	}
}

//===----------------------------------------------------------------------------------------====//
// Metrics
//===----------------------------------------------------------------------------------------====//

// Durations are written as fractional milliseconds.
func durationMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

func readDurationMillis(r *Reader) (time.Duration, error) {
	v, err := r.ReadValue(float64Type)
	if err != nil {
		return 0, err
	}
	ms, _ := v.(float64)
	return time.Duration(ms * float64(time.Millisecond)), nil
}

func writeMetrics(w *Writer, v interface{}) error {
	metrics := v.(*process.Metrics)

	object := w.BeginObject()
	if err := object.Field("dur", durationMillis(metrics.Duration)); err != nil {
		return err
	}
	counts := metrics.Counts
	if counts == nil {
		counts = map[string]int64{}
	}
	if err := object.Field("counts", counts); err != nil {
		return err
	}
	object.RawField("name").WriteString(metrics.Name)
	if len(metrics.Annotations) > 0 {
		if err := object.Field("annotations", metrics.Annotations); err != nil {
			return err
		}
	}
	object.RawField("id").WriteString(metrics.ID)
	if len(metrics.Nested) > 0 {
		if err := object.Field("metrics", metricsList(metrics.Nested)); err != nil {
			return err
		}
	}
	return object.End()
}

func metricsList(metrics []*process.Metrics) []interface{} {
	list := make([]interface{}, len(metrics))
	for i, m := range metrics {
		list[i] = m
	}
	return list
}

// readMetricsList reads nested metrics from a bare array or (V3) a tagged list.
func readMetricsList(r *Reader, t reflect.Type) ([]*process.Metrics, error) {
	var list []*process.Metrics

	if r.Current().Kind != token.KindArrayStart {
		v, err := r.ReadValue(nil)
		if err != nil {
			return nil, err
		}
		items, ok := v.([]interface{})
		if !ok {
			return nil, malformed(t, "nested metrics must be a list")
		}
		for _, item := range items {
			m, ok := item.(*process.Metrics)
			if !ok {
				return nil, malformed(t, "nested metrics must be metrics")
			}
			list = append(list, m)
		}
		return list, nil
	}

	err := r.ReadArray(func() error {
		v, err := r.ReadValue(metricsType)
		if err != nil {
			return err
		}
		m, ok := v.(*process.Metrics)
		if !ok {
			return malformed(t, "nested metrics must not be null")
		}
		list = append(list, m)
		return nil
	})
	return list, err
}

func readMetrics(r *Reader) (interface{}, error) {
	metrics := &process.Metrics{}
	err := r.ReadObject(func(name string) error {
		var err error
		switch name {
		case "dur":
			metrics.Duration, err = readDurationMillis(r)
		case "counts":
			var v interface{}
			if v, err = r.ReadValue(countsType); err == nil {
				metrics.Counts, _ = v.(map[string]int64)
			}
		case "name":
			metrics.Name, err = r.ReadString()
		case "annotations":
			var v interface{}
			if v, err = r.ReadValue(annotationsType); err == nil {
				metrics.Annotations, _ = v.(map[string]interface{})
			}
		case "id":
			metrics.ID, err = r.ReadString()
		case "metrics":
			metrics.Nested, err = readMetricsList(r, metricsType)
		default:
			err = r.Skip()
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return metrics, nil
}

func writeTraversalMetrics(w *Writer, v interface{}) error {
	metrics := v.(*process.TraversalMetrics)

	object := w.BeginObject()
	if err := object.Field("dur", durationMillis(metrics.Duration)); err != nil {
		return err
	}
	if err := object.Field("metrics", metricsList(metrics.Metrics)); err != nil {
		return err
	}
	return object.End()
}

func readTraversalMetrics(r *Reader) (interface{}, error) {
	metrics := &process.TraversalMetrics{}
	err := r.ReadObject(func(name string) error {
		var err error
		switch name {
		case "dur":
			metrics.Duration, err = readDurationMillis(r)
		case "metrics":
			metrics.Metrics, err = readMetricsList(r, traversalMetricsType)
		default:
			err = r.Skip()
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return metrics, nil
}

func writeStrings(w *Writer, strings []string) error {
	list := w.BeginList()
	for _, s := range strings {
		list.RawElement().WriteString(s)
	}
	return list.End()
}

func readStrings(r *Reader) ([]string, error) {
	strings := []string{}
	err := r.ReadArray(func() error {
		s, err := r.ReadString()
		if err != nil {
			return err
		}
		strings = append(strings, s)
		return nil
	})
	return strings, err
}

func writeTraversalExplanation(w *Writer, v interface{}) error {
	explanation := v.(*process.TraversalExplanation)

	object := w.BeginObject()
	if err := writeStrings(object.RawField("original"), explanation.Original); err != nil {
		return err
	}

	list := object.RawField("intermediate").BeginList()
	for _, step := range explanation.Intermediate {
		item := list.RawElement().BeginObject()
		item.RawField("strategy").WriteString(step.Strategy)
		item.RawField("category").WriteString(step.Category)
		if err := writeStrings(item.RawField("traversal"), step.Traversal); err != nil {
			return err
		}
		if err := item.End(); err != nil {
			return err
		}
	}
	if err := list.End(); err != nil {
		return err
	}

	if err := writeStrings(object.RawField("final"), explanation.Final); err != nil {
		return err
	}
	return object.End()
}

func readTraversalExplanation(r *Reader) (interface{}, error) {
	explanation := &process.TraversalExplanation{}
	err := r.ReadObject(func(name string) error {
		var err error
		switch name {
		case "original":
			explanation.Original, err = readStrings(r)
		case "final":
			explanation.Final, err = readStrings(r)
		case "intermediate":
			err = r.ReadArray(func() error {
				var step process.ExplanationStep
				err := r.ReadObject(func(name string) error {
					var err error
					switch name {
					case "strategy":
						step.Strategy, err = r.ReadString()
					case "category":
						step.Category, err = r.ReadString()
					case "traversal":
						step.Traversal, err = readStrings(r)
					default:
						err = r.Skip()
					}
					return err
				})
				explanation.Intermediate = append(explanation.Intermediate, step)
				return err
			})
		default:
			err = r.Skip()
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return explanation, nil
}

//===----------------------------------------------------------------------------------------====//
// BulkSet
//===----------------------------------------------------------------------------------------====//

// writeBulkSet writes [v1, bulk1, v2, bulk2, ...].
func writeBulkSet(w *Writer, v interface{}) error {
	set := v.(*process.BulkSet)

	list := w.BeginList()
	for _, entry := range set.Entries() {
		if err := list.Element(entry.Value); err != nil {
			return err
		}
		if err := list.Element(entry.Bulk); err != nil {
			return err
		}
	}
	return list.End()
}

func readBulkSet(r *Reader) (interface{}, error) {
	if r.Current().Kind != token.KindArrayStart {
		return nil, malformed(bulkSetType, "expected the entries of a bulk set but found "+r.Current().String())
	}

	set := &process.BulkSet{}
	for {
		t, err := r.Next()
		if err != nil {
			return nil, err
		}
		if t.Kind == token.KindArrayEnd {
			return set, nil
		}

		value, err := r.ReadValue(nil)
		if err != nil {
			return nil, err
		}

		t, err = r.Next()
		if err != nil {
			return nil, err
		}
		if t.Kind == token.KindArrayEnd {
			return nil, malformed(bulkSetType, "bulk set value without a count")
		}
		bulk, err := r.ReadValue(int64Type)
		if err != nil {
			return nil, err
		}
		count, _ := bulk.(int64)
		set.Add(value, count)
	}
}
