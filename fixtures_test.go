// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape_test

import (
	"code.hybscloud.com/shape"
)

var (
	evenPred     = shape.NewPred("Even", func(n int) bool { return n%2 == 0 })
	positivePred = shape.NewPred("Positive", func(n int) bool { return n > 0 })
	smallPred    = shape.NewPred("Small", func(n int) bool { return n > -10 && n < 10 })

	Even     = shape.Predicate(evenPred)
	Positive = shape.Predicate(positivePred)
	Small    = shape.Predicate(smallPred)
)

// letter returns a predicate type named name that accepts nothing.
// Used where only names and structure matter.
func letter(name string) *shape.Type[int] {
	return shape.PredicateFunc(name, func(int) bool { return false })
}

func names[V any](types []*shape.Type[V]) []string {
	out := make([]string, len(types))
	for i, t := range types {
		out[i] = t.Name()
	}
	return out
}

func operands[V any](t *shape.Type[V]) []*shape.Type[V] {
	return t.Meta().(shape.Operands[V]).Types
}

// mustPanic runs f and reports whether it panicked.
func mustPanic(f func()) (panicked bool) {
	defer func() {
		if recover() != nil {
			panicked = true
		}
	}()
	f()
	return false
}
