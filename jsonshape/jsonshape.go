// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package jsonshape provides structural types over decoded JSON values.
//
// Values are those produced by encoding/json when decoding into an any:
// nil, bool, float64, string, []any and map[string]any. Documents decoded
// from YAML through sigs.k8s.io/yaml have the same representation.
package jsonshape

import (
	"maps"
	"math"
	"slices"

	"code.hybscloud.com/shape"
)

// Elements extracts the items of a JSON array; other values have none.
var Elements = shape.NewExtractor("elements", func(v any) []any {
	a, _ := v.([]any)
	return a
})

// Values extracts the member values of a JSON object in key order;
// other values have none.
var Values = shape.NewExtractor("values", func(v any) []any {
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	out := make([]any, 0, len(m))
	for _, k := range slices.Sorted(maps.Keys(m)) {
		out = append(out, m[k])
	}
	return out
})

var integral = shape.NewPred("integral", func(v any) bool {
	f, ok := v.(float64)
	return ok && f == math.Trunc(f) && !math.IsInf(f, 0)
})

// Leaf types, one per JSON value kind.
var (
	Null   = shape.PredicateFunc("Null", func(v any) bool { return v == nil })
	Bool   = shape.PredicateFunc("Bool", isA[bool])
	Number = shape.PredicateFunc("Number", isA[float64])
	String = shape.PredicateFunc("String", isA[string])
	Array  = shape.PredicateFunc("Array", isA[[]any])
	Object = shape.PredicateFunc("Object", isA[map[string]any])
)

// Derived types.
var (
	// Integer is a Number without a fractional part.
	Integer = shape.Compose("Integer", Number, shape.Constrain(integral))
	// Scalar is any non-container value.
	Scalar = shape.Compose("Scalar", Null, shape.Join(Bool), shape.Join(Number), shape.Join(String))
	// Value is every JSON value.
	Value = shape.Alias("Value", shape.Any[any]())
)

func isA[T any](v any) bool {
	_, ok := v.(T)
	return ok
}

// ArrayOf returns the type of arrays whose items are all members of inner.
func ArrayOf(inner *shape.Type[any]) *shape.Type[any] {
	return shape.Unary(Array, Elements, inner)
}

// ObjectOf returns the type of objects whose member values are all members
// of inner.
func ObjectOf(inner *shape.Type[any]) *shape.Type[any] {
	return shape.Unary(Object, Values, inner)
}
