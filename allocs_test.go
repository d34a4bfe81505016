// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape_test

import (
	"testing"

	"code.hybscloud.com/shape"
)

func TestHasAllocations(t *testing.T) {
	ep := shape.Intersection(Even, Positive)
	w := shape.Without(shape.Union(ep, Small), Even)
	allocs := testing.AllocsPerRun(100, func() {
		_ = w.Has(7)
	})
	if allocs > 0 {
		t.Errorf("Has allocs = %v; want 0", allocs)
	}
}

func TestEqualAllocations(t *testing.T) {
	a := shape.Union(shape.Intersection(Even, Positive), Small)
	b := shape.Union(Small, shape.Intersection(Positive, Even))
	allocs := testing.AllocsPerRun(100, func() {
		_ = a.Equal(b)
	})
	if allocs > 0 {
		t.Errorf("Equal allocs = %v; want 0", allocs)
	}
}
