// Package disjoint implements a disjoint-set (union-find) structure over the
// dense integer range [0, n) with full path compression and union by rank.
//
// The structure is owned by exactly one engine run: it is mutated in place,
// never shared, and not safe for concurrent use.
//
// Determinism:
//
//	For a fixed n and a fixed sequence of Find/Union calls the parent and
//	rank arrays are identical on every run. Kruskal embeds copies of both
//	arrays in its step trace, so this property is load-bearing.
//
// Complexity:
//
//	Find and Union run in amortized O(α(n)); New is O(n).
package disjoint

// Set is a union-find forest. parent[x] == x marks a root; rank[x] is an
// upper bound on the height of the tree rooted at x.
type Set struct {
	parent []int
	rank   []int
}

// New returns n singleton sets: parent[i] = i, rank[i] = 0.
func New(n int) *Set {
	s := &Set{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range s.parent {
		s.parent[i] = i
	}

	return s
}

// Len returns the number of elements.
func (s *Set) Len() int { return len(s.parent) }

// Find returns the root of x's set. Every node visited on the way up is
// re-pointed directly at the root. x outside [0, Len()) panics.
func (s *Set) Find(x int) int {
	// 1) Walk up to the root.
	root := x
	for s.parent[root] != root {
		root = s.parent[root]
	}
	// 2) Second pass: compress the whole path onto root.
	for s.parent[x] != root {
		x, s.parent[x] = s.parent[x], root
	}

	return root
}

// Union merges the sets containing x and y and reports whether a merge
// happened. The lower-rank root goes under the higher-rank root; on a tie
// y's root goes under x's root and x's root gains one rank.
func (s *Set) Union(x, y int) bool {
	rx, ry := s.Find(x), s.Find(y)
	if rx == ry {
		return false
	}
	switch {
	case s.rank[rx] < s.rank[ry]:
		s.parent[rx] = ry
	case s.rank[rx] > s.rank[ry]:
		s.parent[ry] = rx
	default:
		s.parent[ry] = rx
		s.rank[rx]++
	}

	return true
}

// Connected reports whether x and y share a root.
func (s *Set) Connected(x, y int) bool { return s.Find(x) == s.Find(y) }

// Parents returns a copy of the parent array as it is now, without
// compressing anything.
func (s *Set) Parents() []int { return append([]int(nil), s.parent...) }

// Ranks returns a copy of the rank array.
func (s *Set) Ranks() []int { return append([]int(nil), s.rank...) }

// Count returns the number of disjoint sets.
func (s *Set) Count() int {
	n := 0
	for i, p := range s.parent {
		if i == p {
			n++
		}
	}

	return n
}

// Components labels every element with a dense component id. Ids are
// assigned in order of first appearance while scanning elements 0..n-1, so
// element 0 is always in component 0. Calls Find and therefore compresses.
func (s *Set) Components() []int {
	ids := make([]int, len(s.parent))
	byRoot := make(map[int]int, len(s.parent))
	for i := range s.parent {
		r := s.Find(i)
		id, ok := byRoot[r]
		if !ok {
			id = len(byRoot)
			byRoot[r] = id
		}
		ids[i] = id
	}

	return ids
}
