// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

// Pred is an opaque membership test.
// Handles compare by identity: [Predicate] nodes built from the same *Pred
// are equal, nodes built from distinct handles never are, whatever their
// functions compute.
type Pred[V any] struct {
	name string
	test func(V) bool
}

// NewPred boxes test into a new predicate handle.
// The name becomes the canonical name of the [Predicate] node; an empty
// name yields "Predicate". test must be total, pure and deterministic.
func NewPred[V any](name string, test func(V) bool) *Pred[V] {
	if test == nil {
		panic("shape: nil predicate function")
	}
	if name == "" {
		name = "Predicate"
	}
	return &Pred[V]{name: name, test: test}
}

// Name returns the name given to [NewPred].
func (p *Pred[V]) Name() string { return p.name }

// Test applies the predicate to v.
func (p *Pred[V]) Test(v V) bool { return p.test(v) }

// Extractor is an opaque element projection used by [Unary] containers.
// Like [Pred], extractors compare by handle identity.
type Extractor[V any] struct {
	name    string
	extract func(V) []V
}

// NewExtractor boxes extract into a new extractor handle.
// extract must be total: it returns the elements of a container value and
// may return nil for values that have none.
func NewExtractor[V any](name string, extract func(V) []V) *Extractor[V] {
	if extract == nil {
		panic("shape: nil extractor function")
	}
	return &Extractor[V]{name: name, extract: extract}
}

// Name returns the name given to [NewExtractor].
func (x *Extractor[V]) Name() string { return x.name }

// Extract returns the elements of v.
func (x *Extractor[V]) Extract(v V) []V { return x.extract(v) }
