package soa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// applyTo gathers values through Apply using plain slice swaps.
func applyTo(t *testing.T, perm []int, values []string) []string {
	t.Helper()

	out := make([]string, len(values))
	copy(out, values)

	err := Apply(perm, len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	require.NoError(t, err)

	return out
}

func TestApply_DestinationIndexed(t *testing.T) {
	// Position i receives the element formerly at perm[i].
	got := applyTo(t, []int{2, 0, 1}, []string{"a", "b", "c"})
	assert.Equal(t, []string{"c", "a", "b"}, got)
}

func TestApply_Identity(t *testing.T) {
	got := applyTo(t, []int{0, 1, 2, 3}, []string{"a", "b", "c", "d"})
	assert.Equal(t, []string{"a", "b", "c", "d"}, got)
}

func TestApply_Reverse(t *testing.T) {
	got := applyTo(t, []int{3, 2, 1, 0}, []string{"a", "b", "c", "d"})
	assert.Equal(t, []string{"d", "c", "b", "a"}, got)
}

func TestApply_Empty(t *testing.T) {
	swaps := 0

	err := Apply(nil, 0, func(i, j int) { swaps++ })

	require.NoError(t, err)
	assert.Zero(t, swaps)
}

func TestApply_RejectsBeforeSwapping(t *testing.T) {
	tests := []struct {
		name string
		perm []int
		n    int
	}{
		{"length mismatch", []int{0, 1}, 3},
		{"duplicate entry", []int{0, 0, 2}, 3},
		{"entry out of range", []int{0, 1, 3}, 3},
		{"negative entry", []int{0, -1, 2}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			swaps := 0

			err := Apply(tt.perm, tt.n, func(i, j int) { swaps++ })

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrBadPermutation)
			assert.Zero(t, swaps, "no swap may happen on a rejected permutation")
		})
	}
}

func TestInvert(t *testing.T) {
	perm := []int{2, 0, 3, 1}
	inv := Invert(perm)

	for i, p := range perm {
		assert.Equal(t, i, inv[p])
	}
}

func TestSortPermutation_GatherSorts(t *testing.T) {
	values := []int{30, 10, 40, 20}

	perm := SortPermutation(len(values), func(i, j int) bool {
		return values[i] < values[j]
	})

	got := make([]int, len(values))
	copy(got, values)

	err := Apply(perm, len(got), func(i, j int) {
		got[i], got[j] = got[j], got[i]
	})

	require.NoError(t, err)
	assert.Equal(t, []int{10, 20, 30, 40}, got)
}

func TestSortPermutation_Stable(t *testing.T) {
	// Equal keys keep their original relative order.
	keys := []int{1, 0, 1, 0, 1}
	ids := []string{"a", "b", "c", "d", "e"}

	perm := SortPermutation(len(keys), func(i, j int) bool {
		return keys[i] < keys[j]
	})

	got := make([]string, len(ids))
	copy(got, ids)

	err := Apply(perm, len(got), func(i, j int) {
		got[i], got[j] = got[j], got[i]
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"b", "d", "a", "c", "e"}, got)
}

func TestCheckPermutation(t *testing.T) {
	require.NoError(t, CheckPermutation([]int{0}, 1))
	require.NoError(t, CheckPermutation([]int{1, 0, 2}, 3))
	require.NoError(t, CheckPermutation(nil, 0))

	assert.ErrorIs(t, CheckPermutation([]int{0, 1}, 3), ErrBadPermutation)
	assert.ErrorIs(t, CheckPermutation([]int{2, 2, 0}, 3), ErrBadPermutation)
}

func TestSortPermutationByKey(t *testing.T) {
	data := []string{"pear", "fig", "apple", "date"}

	perm := SortPermutationByKey(len(data), func(i int) string {
		return data[i]
	})

	require.NoError(t, Apply(perm, len(data), func(i, j int) {
		data[i], data[j] = data[j], data[i]
	}))
	assert.Equal(t, []string{"apple", "date", "fig", "pear"}, data)
}
