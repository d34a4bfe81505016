// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

// Any returns the universal type: every value is a member.
// All Any nodes are equal to each other. Any has no lattice edges.
func Any[V any]() *Type[V] {
	return &Type[V]{
		kind:  KindAny,
		names: []string{"Any"},
		docs:  []string{kindDocs[KindAny]},
		edges: &edges[V]{},
	}
}

// Predicate returns the type whose members are the values accepted by p.
// Predicate nodes are lattice-opaque: they have no subsets or supersets.
func Predicate[V any](p *Pred[V]) *Type[V] {
	if p == nil {
		panic("shape: nil predicate handle")
	}
	return &Type[V]{
		kind:  KindPredicate,
		meta:  Test[V]{Pred: p},
		names: []string{p.name},
		docs:  []string{kindDocs[KindPredicate]},
		edges: &edges[V]{},
	}
}

// PredicateFunc is shorthand for Predicate(NewPred(name, test)).
// Each call creates a fresh handle, so two calls never yield equal types.
func PredicateFunc[V any](name string, test func(V) bool) *Type[V] {
	return Predicate(NewPred(name, test))
}
