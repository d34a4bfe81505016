// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

import (
	"slices"
	"strings"
)

// Operand canonicalization shared by the n-ary operators.
// An operand whose kind is one of the spliced kinds contributes its own
// operand list instead of itself, so no operator node ever nests a node of
// its own kind. The merged list is ordered by canonical name, which makes
// the result independent of the order the caller combined things in.

// mergeOperands flattens left and right into one canonically sorted list.
func mergeOperands[V any](left, right *Type[V], splice ...Kind) []*Type[V] {
	var types []*Type[V]
	for _, t := range [...]*Type[V]{left, right} {
		if slices.Contains(splice, t.kind) {
			types = append(types, t.meta.(Operands[V]).Types...)
			continue
		}
		types = append(types, t)
	}
	slices.SortStableFunc(types, byCanonicalName[V])
	return types
}

func byCanonicalName[V any](a, b *Type[V]) int {
	return strings.Compare(a.CanonicalName(), b.CanonicalName())
}

// operatorNames renders "(a op b op …)" over the display names of types.
func operatorNames[V any](op string, types []*Type[V]) []string {
	var b strings.Builder
	b.WriteByte('(')
	for i, t := range types {
		if i > 0 {
			b.WriteString(" " + op + " ")
		}
		b.WriteString(t.Name())
	}
	b.WriteByte(')')
	return []string{b.String()}
}

// operatorDocs lists the reference of kind followed by the canonical
// reference of each operand.
func operatorDocs[V any](kind Kind, types ...*Type[V]) []string {
	docs := make([]string, 0, len(types)+1)
	docs = append(docs, kindDocs[kind])
	for _, t := range types {
		docs = append(docs, t.docs[0])
	}
	return docs
}
