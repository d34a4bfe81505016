// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

// Intersection returns the type of values that are members of both left
// and right.
//
// Nested intersections are flattened into one canonically ordered operand
// list. The supersets of the result are both operands and, for operands that
// are intersections themselves, their supersets too, so [Supersedes] sees
// through nesting without a further search step.
func Intersection[V any](left, right *Type[V]) *Type[V] {
	mustType("Intersection", left, right)
	types := mergeOperands(left, right, KindIntersection)
	return &Type[V]{
		kind:  KindIntersection,
		meta:  Operands[V]{Types: types},
		names: operatorNames("∩", types),
		docs:  operatorDocs(KindIntersection, types...),
		edges: derived(func() (_, supersets []*Type[V]) {
			supersets = appendIntersectionSupersets(supersets, left)
			supersets = appendIntersectionSupersets(supersets, right)
			return nil, supersets
		}),
	}
}

func appendIntersectionSupersets[V any](dst []*Type[V], t *Type[V]) []*Type[V] {
	dst = append(dst, t)
	if t.kind == KindIntersection {
		dst = append(dst, t.supersets()...)
	}
	return dst
}

// Union returns the type of values that are members of left or right.
//
// Nested unions are flattened into one canonically ordered operand list.
// Every operand is a known subset of the result; an operand that is a union
// contributes its own subsets as well.
func Union[V any](left, right *Type[V]) *Type[V] {
	mustType("Union", left, right)
	types := mergeOperands(left, right, KindUnion)
	return &Type[V]{
		kind:  KindUnion,
		meta:  Operands[V]{Types: types},
		names: operatorNames("∪", types),
		docs:  operatorDocs(KindUnion, types...),
		edges: derived(func() (subsets, _ []*Type[V]) {
			subsets = appendUnionSubsets(subsets, left)
			subsets = appendUnionSubsets(subsets, right)
			return subsets, nil
		}),
	}
}

func appendUnionSubsets[V any](dst []*Type[V], t *Type[V]) []*Type[V] {
	dst = append(dst, t)
	if t.kind == KindUnion {
		dst = append(dst, t.subsets()...)
	}
	return dst
}

// Difference returns the n-ary exclusion of left and right: a value is a
// member when every merged operand rejects it.
//
// Difference and union operands are both spliced into the operand list.
// The supersets of the result are left and right as given, not the
// flattened operands.
func Difference[V any](left, right *Type[V]) *Type[V] {
	mustType("Difference", left, right)
	types := mergeOperands(left, right, KindDifference, KindUnion)
	return &Type[V]{
		kind:  KindDifference,
		meta:  Operands[V]{Types: types},
		names: operatorNames("⊖", types),
		docs:  operatorDocs(KindDifference, types...),
		edges: derived(func() (_, supersets []*Type[V]) {
			return nil, []*Type[V]{left, right}
		}),
	}
}

// Without returns the members of left that are not members of right.
//
// Operand order is kept. When right is itself Without(b, c) it is replaced
// by Union(b, c) before the node is built, so the right operand of a
// Without node is never a Without node:
//
//	Without(a, Without(b, c)) ≡ Without(a, Union(b, c))
//
// The only known superset of the result is left.
func Without[V any](left, right *Type[V]) *Type[V] {
	mustType("Without", left, right)
	if right.kind == KindWithout {
		m := right.meta.(Exclusion[V])
		right = Union(m.Left, m.Right)
	}
	return &Type[V]{
		kind:  KindWithout,
		meta:  Exclusion[V]{Left: left, Right: right},
		names: []string{"(" + left.Name() + ` \ ` + right.Name() + ")"},
		docs:  operatorDocs(KindWithout, left, right),
		edges: derived(func() (_, supersets []*Type[V]) {
			return nil, []*Type[V]{left}
		}),
	}
}
