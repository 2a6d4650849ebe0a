package soa

import (
	"cmp"
	"fmt"
	"slices"
	"sort"
)

// CheckPermutation returns nil if perm is a bijection over [0, n),
// or an error wrapping ErrBadPermutation otherwise.
func CheckPermutation(perm []int, n int) error {
	if len(perm) != n {
		return &permutationError{reason: "length mismatch", perm: len(perm), n: n}
	}

	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return &permutationError{reason: "not a bijection", perm: len(perm), n: n}
		}

		seen[p] = true
	}

	return nil
}

// Apply reorders a structure of n parallel columns so that position i
// receives the element formerly at position perm[i] (destination-
// indexed gather). The swap callback must exchange positions i and j
// across every column in lockstep.
//
// The permutation is validated before the first swap; on error the
// structure is untouched. Every element is moved O(1) times via cycle
// decomposition, independent of how the permutation was produced.
func Apply(perm []int, n int, swap func(i, j int)) error {
	if err := CheckPermutation(perm, n); err != nil {
		return err
	}

	p := slices.Clone(perm)
	for i := range p {
		if p[i] < 0 {
			// Already placed as part of an earlier cycle.
			continue
		}

		j := i
		for {
			k := p[j]
			p[j] = -1 - k

			if k == i {
				break
			}

			swap(j, k)
			j = k
		}
	}

	return nil
}

// Invert returns the inverse permutation: Invert(p)[p[i]] == i.
// It assumes p is a valid permutation.
func Invert(perm []int) []int {
	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}

	return inv
}

// SortPermutation computes the permutation that Apply would use to
// bring a length-n structure into the order defined by less. The sort
// is stable: elements comparing equal keep their relative order.
//
// less receives positions in the unsorted structure, so comparators
// may read elements through checked lookups while sorting.
func SortPermutation(n int, less func(i, j int) bool) []int {
	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}

	sort.SliceStable(perm, func(a, b int) bool {
		return less(perm[a], perm[b])
	})

	return perm
}

// SortPermutationByKey computes the stable sort permutation ordering a
// length-n structure by an ordered key. key receives positions in the
// unsorted structure and is called once per position.
func SortPermutationByKey[K cmp.Ordered](n int, key func(i int) K) []int {
	keys := make([]K, n)
	for i := range keys {
		keys[i] = key(i)
	}

	return SortPermutation(n, func(i, j int) bool {
		return cmp.Less(keys[i], keys[j])
	})
}

// permutationError carries diagnostics for CheckPermutation failures.
type permutationError struct {
	reason string
	perm   int
	n      int
}

func (e *permutationError) Error() string {
	return fmt.Sprintf("permutation of length %d for %d elements: %s", e.perm, e.n, e.reason)
}

func (e *permutationError) Unwrap() error {
	return ErrBadPermutation
}
