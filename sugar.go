// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

import "slices"

// SuchThat returns parent constrained by the additional test p.
// It is Intersection(Predicate(p), parent).
func SuchThat[V any](p *Pred[V], parent *Type[V]) *Type[V] {
	return Intersection(Predicate(p), parent)
}

// Alias returns t with name prepended to its names.
// Membership, equality and lattice edges are those of t.
func Alias[V any](name string, t *Type[V]) *Type[V] {
	mustType("Alias", t)
	c := *t
	c.names = append([]string{name}, t.names...)
	return &c
}

// Unalias returns t without its most recent alias.
// A type left with only its canonical name is returned unchanged.
func Unalias[V any](t *Type[V]) *Type[V] {
	mustType("Unalias", t)
	if len(t.names) == 1 {
		return t
	}
	c := *t
	c.names = t.names[1:]
	return &c
}

// Doc returns t with its documentation references replaced by docs.
// The first entry becomes the canonical reference. Doc without references
// returns t unchanged.
func Doc[V any](t *Type[V], docs ...string) *Type[V] {
	mustType("Doc", t)
	if len(docs) == 0 {
		return t
	}
	c := *t
	c.docs = slices.Clone(docs)
	return &c
}
