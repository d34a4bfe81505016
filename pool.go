// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package shape

import "sync"

// Visited-set pool for subsumption searches.
// A search marks every (sup, sub) pair it reaches; the set is cleared and
// returned to the pool when the search ends. Keys hold *Type[V] values
// boxed as any, so one pool serves every value type.

type pairKey struct {
	sup, sub any
}

type visited struct {
	seen map[pairKey]struct{}
}

// maxPooledPairs bounds the size of a visited set kept for reuse.
const maxPooledPairs = 1 << 12

var visitedPool = sync.Pool{New: func() any {
	return &visited{seen: make(map[pairKey]struct{})}
}}

func acquireVisited() *visited {
	return visitedPool.Get().(*visited)
}

// mark records k and reports whether it was newly added.
func (v *visited) mark(k pairKey) bool {
	if _, ok := v.seen[k]; ok {
		return false
	}
	v.seen[k] = struct{}{}
	return true
}

// releaseVisited clears v and returns it to the pool; oversized sets are dropped.
func releaseVisited(v *visited) {
	if len(v.seen) > maxPooledPairs {
		return
	}
	clear(v.seen)
	visitedPool.Put(v)
}
