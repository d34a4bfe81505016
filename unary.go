// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

// Unary returns the parametric type "outer of inner": a value is a member
// when it is a member of outer and every element extract returns for it is
// a member of inner.
//
// Lattice edges follow variance. Subsets pair outer and each of its subsets
// with inner and each of its subsets (both sides equal or narrower, the node
// itself excluded). Supersets are outer and the containers of each superset
// of inner. Derived containers are built when the edges are first read.
func Unary[V any](outer *Type[V], extract *Extractor[V], inner *Type[V]) *Type[V] {
	mustType("Unary", outer, inner)
	if extract == nil {
		panic("shape: nil extractor handle")
	}
	return &Type[V]{
		kind:  KindUnary,
		meta:  Container[V]{Outer: outer, Extract: extract, Inner: inner},
		names: []string{"(" + outer.Name() + " " + inner.Name() + ")"},
		docs:  operatorDocs(KindUnary, outer, inner),
		edges: derived(func() (subsets, supersets []*Type[V]) {
			inners := inner.subsets()
			for _, i := range inners {
				subsets = append(subsets, Unary(outer, extract, i))
			}
			for _, o := range outer.subsets() {
				subsets = append(subsets, Unary(o, extract, inner))
				for _, i := range inners {
					subsets = append(subsets, Unary(o, extract, i))
				}
			}
			supersets = append(supersets, outer)
			for _, i := range inner.supersets() {
				supersets = append(supersets, Unary(outer, extract, i))
			}
			return subsets, supersets
		}),
	}
}
