// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

// Refinement transforms a type into a derived type.
// Refinements are the steps of a [Compose] pipeline.
type Refinement[V any] func(*Type[V]) *Type[V]

// Compose applies fns to base from left to right and names the result.
//
//	Compose("EvenPositive", Positive, Constrain(even))
//	// ≡ Alias("EvenPositive", SuchThat(even, Positive))
func Compose[V any](name string, base *Type[V], fns ...Refinement[V]) *Type[V] {
	t := base
	for _, f := range fns {
		t = f(t)
	}
	return Alias(name, t)
}

// Constrain returns the refinement t ↦ SuchThat(p, t).
func Constrain[V any](p *Pred[V]) Refinement[V] {
	return func(t *Type[V]) *Type[V] { return SuchThat(p, t) }
}

// Named returns the refinement t ↦ Alias(name, t).
func Named[V any](name string) Refinement[V] {
	return func(t *Type[V]) *Type[V] { return Alias(name, t) }
}

// Documented returns the refinement t ↦ Doc(t, docs...).
func Documented[V any](docs ...string) Refinement[V] {
	return func(t *Type[V]) *Type[V] { return Doc(t, docs...) }
}

// Meet returns the refinement t ↦ Intersection(t, u).
func Meet[V any](u *Type[V]) Refinement[V] {
	return func(t *Type[V]) *Type[V] { return Intersection(t, u) }
}

// Join returns the refinement t ↦ Union(t, u).
func Join[V any](u *Type[V]) Refinement[V] {
	return func(t *Type[V]) *Type[V] { return Union(t, u) }
}

// Excluding returns the refinement t ↦ Without(t, u).
func Excluding[V any](u *Type[V]) Refinement[V] {
	return func(t *Type[V]) *Type[V] { return Without(t, u) }
}

// ContainerOf returns the refinement t ↦ Unary(outer, extract, t),
// lifting an element type into a container type.
func ContainerOf[V any](outer *Type[V], extract *Extractor[V]) Refinement[V] {
	return func(t *Type[V]) *Type[V] { return Unary(outer, extract, t) }
}
