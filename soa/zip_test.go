package soa

import (
	"iter"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZip2_Lockstep(t *testing.T) {
	masses := []float64{1, 2, 3}
	names := []string{"a", "b", "c"}

	var got []string
	for mass, name := range Zip2(masses, names) {
		got = append(got, *name)
		*mass *= 2
	}

	assert.Equal(t, []string{"a", "b", "c"}, got)
	assert.Equal(t, []float64{2, 4, 6}, masses, "mutation flows through yielded pointers")
}

func TestZip2_StopsAtShorter(t *testing.T) {
	count := 0
	for range Zip2([]int{1, 2, 3, 4}, []string{"a", "b"}) {
		count++
	}

	assert.Equal(t, 2, count)
}

func TestZip2_EarlyBreak(t *testing.T) {
	count := 0
	for range Zip2([]int{1, 2, 3}, []int{4, 5, 6}) {
		count++
		if count == 2 {
			break
		}
	}

	assert.Equal(t, 2, count)
}

func TestZip3(t *testing.T) {
	var sums []int
	for tr := range Zip3([]int{1, 2}, []int{10, 20}, []int{100, 200}) {
		sums = append(sums, *tr.First+*tr.Second+*tr.Third)
	}

	assert.Equal(t, []int{111, 222}, sums)
}

func TestZip4(t *testing.T) {
	count := 0
	for q := range Zip4([]int{1}, []int{2}, []int{3}, []int{4, 5}) {
		count++

		assert.Equal(t, 1, *q.First)
		assert.Equal(t, 4, *q.Fourth)
	}

	assert.Equal(t, 1, count)
}

func seqOf[T any](values ...T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range values {
			if !yield(v) {
				return
			}
		}
	}
}

func TestZipSeq2_ExternalShorter(t *testing.T) {
	// Fields of length 3 zipped with an external sequence of length 2
	// yield exactly 2 tuples.
	names := []string{"a", "b", "c"}

	var got []string
	for name, cellar := range ZipSeq2(names, seqOf("x", "y")) {
		got = append(got, *name+cellar)
	}

	assert.Equal(t, []string{"ax", "by"}, got)
}

func TestZipSeq2_FieldShorter(t *testing.T) {
	count := 0
	for range ZipSeq2([]int{1}, seqOf("x", "y", "z")) {
		count++
	}

	assert.Equal(t, 1, count)
}

func TestZipSeq3(t *testing.T) {
	var got []string
	for tr := range ZipSeq3([]string{"a", "b"}, []int{1, 2}, seqOf(true, false, true)) {
		if tr.Third {
			got = append(got, *tr.First)
		}
	}

	assert.Equal(t, []string{"a"}, got)
}
