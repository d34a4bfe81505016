// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

import "slices"

// Step is one (Sup, Sub) pair visited by a subsumption search.
type Step[V any] struct {
	Sup, Sub *Type[V]
}

// trailNode records a visited pair and the index of the pair it was reached from.
type trailNode[V any] struct {
	step   Step[V]
	parent int
}

// Supersedes reports whether sup structurally subsumes sub.
//
// sup supersedes sub when the two are [Type.Equal], when a known subset of
// sup supersedes sub, or when sup supersedes a known superset of sub. The
// search is iterative and visits each (sup, sub) pair at most once, so it
// terminates on any lattice and never grows the call stack.
//
// A false result means no derivation was found, not that sub has members
// outside sup.
func Supersedes[V any](sup, sub *Type[V]) bool {
	_, ok := Derive(sup, sub)
	return ok
}

// Derive is like [Supersedes] and also returns the derivation: the pairs
// from (sup, sub) to the first structurally equal pair, in search order.
// Each step either replaces Sup by one of its subsets or Sub by one of its
// supersets.
func Derive[V any](sup, sub *Type[V]) ([]Step[V], bool) {
	mustType("Supersedes", sup, sub)
	v := acquireVisited()
	defer releaseVisited(v)

	var trail []trailNode[V]
	var stack []int
	push := func(s Step[V], parent int) {
		if !v.mark(pairKey{s.Sup, s.Sub}) {
			return
		}
		trail = append(trail, trailNode[V]{step: s, parent: parent})
		stack = append(stack, len(trail)-1)
	}

	push(Step[V]{Sup: sup, Sub: sub}, -1)
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur := trail[i].step
		if cur.Sup.Equal(cur.Sub) {
			var path []Step[V]
			for ; i >= 0; i = trail[i].parent {
				path = append(path, trail[i].step)
			}
			slices.Reverse(path)
			return path, true
		}
		// Pushed in reverse so subsets are explored before supersets,
		// each in declaration order.
		ups := cur.Sub.supersets()
		for j := len(ups) - 1; j >= 0; j-- {
			push(Step[V]{Sup: cur.Sup, Sub: ups[j]}, i)
		}
		downs := cur.Sup.subsets()
		for j := len(downs) - 1; j >= 0; j-- {
			push(Step[V]{Sup: downs[j], Sub: cur.Sub}, i)
		}
	}
	return nil, false
}
