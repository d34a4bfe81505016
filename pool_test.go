// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

import "testing"

func TestVisitedMark(t *testing.T) {
	v := acquireVisited()
	defer releaseVisited(v)

	a, b := Any[int](), Any[int]()
	if !v.mark(pairKey{a, b}) {
		t.Fatal("first mark reported a revisit")
	}
	if v.mark(pairKey{a, b}) {
		t.Fatal("second mark reported a new pair")
	}
	if !v.mark(pairKey{b, a}) {
		t.Fatal("pairs are not ordered")
	}
}

func TestReleaseVisitedClears(t *testing.T) {
	v := acquireVisited()
	a := Any[int]()
	v.mark(pairKey{a, a})
	releaseVisited(v)
	if len(v.seen) != 0 {
		t.Fatalf("released set holds %d pairs, want 0", len(v.seen))
	}
}

func TestReleaseVisitedDropsOversized(t *testing.T) {
	v := acquireVisited()
	for i := range maxPooledPairs + 1 {
		v.mark(pairKey{i, i})
	}
	releaseVisited(v)
	if len(v.seen) != maxPooledPairs+1 {
		t.Fatal("oversized set was cleared for reuse")
	}
}

func TestEdgesDerivedOnce(t *testing.T) {
	calls := 0
	e := derived(func() (subsets, supersets []*Type[int]) {
		calls++
		return nil, []*Type[int]{Any[int]()}
	})
	ty := &Type[int]{kind: KindAny, names: []string{"Any"}, docs: []string{kindDocs[KindAny]}, edges: e}
	alias := Alias("A", ty)
	_ = ty.supersets()
	_ = alias.supersets()
	_ = ty.subsets()
	if calls != 1 {
		t.Fatalf("edges derived %d times, want 1", calls)
	}
}

var metaSink []Meta[int]

func TestMetaVariants(t *testing.T) {
	metaSink = []Meta[int]{
		Test[int]{},
		Operands[int]{},
		Exclusion[int]{},
		Container[int]{},
	}
	for _, m := range metaSink {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%T.member did not panic", m)
				}
			}()
			m.member()
		}()
	}
}

func TestUnknownKindPanics(t *testing.T) {
	bad := &Type[int]{kind: Kind(99), names: []string{"bad"}, docs: []string{""}, edges: &edges[int]{}}
	for name, f := range map[string]func(){
		"Has":   func() { bad.Has(0) },
		"Equal": func() { bad.Equal(&Type[int]{kind: Kind(99)}) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s did not panic on an unknown kind", name)
				}
			}()
			f()
		}()
	}
}
