// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package shape provides an algebra of structural types in Go.
//
// A [Type] is an immutable descriptor that couples a membership test over
// values of type V with conservative lattice edges: the types it is known
// to contain and the types it is known to be contained in. Types compose
// through operators, and [Supersedes] answers "does A structurally subsume
// B?" by searching those edges, without evaluating membership on data.
//
// # Design Philosophy
//
// shape provides:
//   - A closed set of node kinds ([Kind]) with exhaustive dispatch for
//     membership and structural equality
//   - Canonical composite nodes: associative operators flatten and sort
//     their operands, so construction order does not matter
//   - Opaque predicate and extractor handles compared by identity
//   - Immutable values: nodes are never modified after construction and may
//     be shared by any number of composites and goroutines
//
// # Node Model
//
//   - [Type]: The type descriptor
//   - [Type.Has]: Membership test
//   - [Type.Equal]: Structural equality (ignores names and docs)
//   - [Type.Names], [Type.Name], [Type.CanonicalName]: Display names
//   - [Type.Docs]: Documentation references, canonical first
//   - [Type.Subsets], [Type.Supersets]: Known lattice edges
//   - [Kind], [Meta]: Constructor tag and payload ([Test], [Operands],
//     [Exclusion], [Container])
//
// # Leaves
//
//   - [Any]: Universal type
//   - [Predicate]: Type of the values accepted by a [Pred] handle
//   - [PredicateFunc]: Predicate over a freshly boxed function
//   - [NewPred], [NewExtractor]: Opaque function handles
//
// # Operators
//
//   - [Intersection]: Members of both operands (∩), flattened
//   - [Union]: Members of either operand (∪), flattened
//   - [Difference]: Values every merged operand rejects (⊖)
//   - [Without]: Members of the left operand not in the right (\)
//   - [Unary]: Container type, outer shape plus an element type
//
// Without keeps one normal form: a Without node is never the right operand
// of another Without node.
//
//	Without(a, Without(b, c)) ≡ Without(a, Union(b, c))
//
// # Metadata and Refinement
//
//   - [SuchThat]: Parent constrained by a predicate
//   - [Alias], [Unalias]: Push or pop a display name
//   - [Doc]: Replace documentation references
//   - [Compose]: Apply a pipeline of [Refinement] steps and name the result
//   - [Constrain], [Named], [Documented], [Meet], [Join], [Excluding],
//     [ContainerOf]: Refinement constructors
//
// Metadata layers never change membership, equality or subsumption.
//
// # Subsumption
//
//   - [Supersedes]: Structural subsumption query
//   - [Derive]: Subsumption query returning the derivation as [Step] pairs
//
// The search is iterative with a visited set, so it terminates on any
// lattice. A false result means no derivation was found; the edges are
// conservative and extensional containment is not decided.
//
// # Example
//
//	even := shape.PredicateFunc("Even", func(n int) bool { return n%2 == 0 })
//	positive := shape.PredicateFunc("Positive", func(n int) bool { return n > 0 })
//	evenPositive := shape.Intersection(even, positive)
//
//	evenPositive.Has(4)                      // true
//	evenPositive.Has(-4)                     // false
//	shape.Supersedes(even, evenPositive)     // true
//	shape.Without(shape.Any[int](), positive).Has(-1) // true
package shape
