// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

import (
	"slices"
	"sync"
)

// Kind identifies the constructor that produced a [Type].
// The set of kinds is closed; every switch over Kind in this package is exhaustive.
type Kind uint8

const (
	KindAny Kind = iota
	KindPredicate
	KindIntersection
	KindUnion
	KindDifference
	KindWithout
	KindUnary
)

var kindNames = [...]string{
	KindAny:          "any",
	KindPredicate:    "predicate",
	KindIntersection: "intersection",
	KindUnion:        "union",
	KindDifference:   "difference",
	KindWithout:      "without",
	KindUnary:        "unary",
}

// String returns the lower-case tag of the kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Meta is the operator-specific payload of a [Type].
// The variants are [Test], [Operands], [Exclusion] and [Container];
// a node of kind [KindAny] carries no payload.
type Meta[V any] interface {
	member() V // phantom marker binding the payload to the value type
}

// Test is the payload of a [KindPredicate] node.
type Test[V any] struct {
	Pred *Pred[V]
}

// Operands is the payload of the n-ary kinds [KindIntersection], [KindUnion]
// and [KindDifference]. Types is flattened and sorted by canonical name.
type Operands[V any] struct {
	Types []*Type[V]
}

// Exclusion is the payload of a [KindWithout] node.
// Right is never itself of kind [KindWithout].
type Exclusion[V any] struct {
	Left, Right *Type[V]
}

// Container is the payload of a [KindUnary] node.
type Container[V any] struct {
	Outer   *Type[V]
	Extract *Extractor[V]
	Inner   *Type[V]
}

func (Test[V]) member() V      { panic("phantom") }
func (Operands[V]) member() V  { panic("phantom") }
func (Exclusion[V]) member() V { panic("phantom") }
func (Container[V]) member() V { panic("phantom") }

// Type is an immutable structural type over values of type V.
//
// A Type couples a membership test ([Type.Has]) with conservative lattice
// edges ([Type.Subsets], [Type.Supersets]) that [Supersedes] searches.
// Types are built by the constructors of this package and never change
// afterwards, so they may be shared freely, including across goroutines.
type Type[V any] struct {
	kind  Kind
	meta  Meta[V]
	names []string
	docs  []string
	edges *edges[V]
}

// edges holds the lattice neighbours of a node. They are derived from the
// operands on first use and fixed from then on. Metadata copies made by
// [Alias], [Unalias] and [Doc] share the same edges.
type edges[V any] struct {
	once      sync.Once
	derive    func() (subsets, supersets []*Type[V])
	subsets   []*Type[V]
	supersets []*Type[V]
}

func derived[V any](derive func() (subsets, supersets []*Type[V])) *edges[V] {
	return &edges[V]{derive: derive}
}

func (e *edges[V]) load() {
	e.once.Do(func() {
		if e.derive != nil {
			e.subsets, e.supersets = e.derive()
			e.derive = nil
		}
	})
}

func (t *Type[V]) subsets() []*Type[V] {
	t.edges.load()
	return t.edges.subsets
}

func (t *Type[V]) supersets() []*Type[V] {
	t.edges.load()
	return t.edges.supersets
}

// Kind reports which constructor produced t.
func (t *Type[V]) Kind() Kind { return t.kind }

// Meta returns the operator payload of t, or nil for [KindAny].
func (t *Type[V]) Meta() Meta[V] { return t.meta }

// Names returns the display names of t, most recent alias first.
// The last entry is the generated canonical name.
func (t *Type[V]) Names() []string { return slices.Clone(t.names) }

// Name returns the display name of t: its most recent alias, or the
// canonical name when t has no alias.
func (t *Type[V]) Name() string { return t.names[0] }

// CanonicalName returns the name generated by the constructor of t.
func (t *Type[V]) CanonicalName() string { return t.names[len(t.names)-1] }

// Docs returns the documentation references of t, canonical first.
func (t *Type[V]) Docs() []string { return slices.Clone(t.docs) }

// Subsets returns the types known to be subsets of t.
// The list is conservative, not complete.
func (t *Type[V]) Subsets() []*Type[V] { return slices.Clone(t.subsets()) }

// Supersets returns the types known to be supersets of t.
// The list is conservative, not complete.
func (t *Type[V]) Supersets() []*Type[V] { return slices.Clone(t.supersets()) }

// String implements fmt.Stringer with the display name.
func (t *Type[V]) String() string { return t.Name() }

// Has reports whether v is a member of t.
func (t *Type[V]) Has(v V) bool {
	switch t.kind {
	case KindAny:
		return true
	case KindPredicate:
		return t.meta.(Test[V]).Pred.Test(v)
	case KindIntersection:
		for _, o := range t.meta.(Operands[V]).Types {
			if !o.Has(v) {
				return false
			}
		}
		return true
	case KindUnion:
		for _, o := range t.meta.(Operands[V]).Types {
			if o.Has(v) {
				return true
			}
		}
		return false
	case KindDifference:
		// Every merged operand must reject v.
		for _, o := range t.meta.(Operands[V]).Types {
			if o.Has(v) {
				return false
			}
		}
		return true
	case KindWithout:
		m := t.meta.(Exclusion[V])
		return m.Left.Has(v) && !m.Right.Has(v)
	case KindUnary:
		m := t.meta.(Container[V])
		if !m.Outer.Has(v) {
			return false
		}
		for _, e := range m.Extract.Extract(v) {
			if !m.Inner.Has(e) {
				return false
			}
		}
		return true
	}
	panic("shape: unknown kind " + t.kind.String())
}

// Equal reports whether t and u are structurally equal.
//
// Structural equality compares kinds and payloads recursively and ignores
// names and docs. Predicates and extractors compare by handle identity, so
// two behaviourally identical handles created separately are never equal.
// Extensionally equal types of different shape are not equal either.
func (t *Type[V]) Equal(u *Type[V]) bool {
	if t == u {
		return true
	}
	if u == nil || t.kind != u.kind {
		return false
	}
	switch t.kind {
	case KindAny:
		return true
	case KindPredicate:
		return t.meta.(Test[V]).Pred == u.meta.(Test[V]).Pred
	case KindIntersection, KindUnion, KindDifference:
		return slices.EqualFunc(t.meta.(Operands[V]).Types, u.meta.(Operands[V]).Types, (*Type[V]).Equal)
	case KindWithout:
		m, n := t.meta.(Exclusion[V]), u.meta.(Exclusion[V])
		return m.Left.Equal(n.Left) && m.Right.Equal(n.Right)
	case KindUnary:
		m, n := t.meta.(Container[V]), u.meta.(Container[V])
		return m.Extract == n.Extract && m.Outer.Equal(n.Outer) && m.Inner.Equal(n.Inner)
	}
	panic("shape: unknown kind " + t.kind.String())
}

// docBase prefixes the canonical documentation reference of every kind.
const docBase = "https://pkg.go.dev/code.hybscloud.com/shape#"

var kindDocs = [...]string{
	KindAny:          docBase + "Any",
	KindPredicate:    docBase + "Predicate",
	KindIntersection: docBase + "Intersection",
	KindUnion:        docBase + "Union",
	KindDifference:   docBase + "Difference",
	KindWithout:      docBase + "Without",
	KindUnary:        docBase + "Unary",
}

// mustType panics when a constructor receives a nil operand.
//
//go:noinline
func mustType[V any](op string, types ...*Type[V]) {
	for _, t := range types {
		if t == nil {
			panic("shape: nil operand to " + op)
		}
	}
}
