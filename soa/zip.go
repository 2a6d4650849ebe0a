package soa

import "iter"

// Pair groups two zipped values.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Triple groups three zipped values.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// Quad groups four zipped values.
type Quad[A, B, C, D any] struct {
	First  A
	Second B
	Third  C
	Fourth D
}

// Zip2 iterates two field columns in lockstep, yielding element
// pointers. Iteration stops at the shorter column. Writing through the
// yielded pointers mutates the columns; passing the same column twice
// aliases it and is a caller error.
func Zip2[A, B any](as []A, bs []B) iter.Seq2[*A, *B] {
	return func(yield func(*A, *B) bool) {
		n := min(len(as), len(bs))
		for i := range n {
			if !yield(&as[i], &bs[i]) {
				return
			}
		}
	}
}

// Zip3 iterates three field columns in lockstep. See Zip2.
func Zip3[A, B, C any](as []A, bs []B, cs []C) iter.Seq[Triple[*A, *B, *C]] {
	return func(yield func(Triple[*A, *B, *C]) bool) {
		n := min(len(as), len(bs), len(cs))
		for i := range n {
			if !yield(Triple[*A, *B, *C]{&as[i], &bs[i], &cs[i]}) {
				return
			}
		}
	}
}

// Zip4 iterates four field columns in lockstep. See Zip2.
func Zip4[A, B, C, D any](as []A, bs []B, cs []C, ds []D) iter.Seq[Quad[*A, *B, *C, *D]] {
	return func(yield func(Quad[*A, *B, *C, *D]) bool) {
		n := min(len(as), len(bs), len(cs), len(ds))
		for i := range n {
			if !yield(Quad[*A, *B, *C, *D]{&as[i], &bs[i], &cs[i], &ds[i]}) {
				return
			}
		}
	}
}

// ZipSeq2 zips a field column with an external sequence, stopping at
// the first exhausted source.
func ZipSeq2[A, B any](as []A, bs iter.Seq[B]) iter.Seq2[*A, B] {
	return func(yield func(*A, B) bool) {
		i := 0
		for b := range bs {
			if i >= len(as) {
				return
			}

			if !yield(&as[i], b) {
				return
			}

			i++
		}
	}
}

// ZipSeq3 zips two field columns with an external sequence, stopping
// at the first exhausted source.
func ZipSeq3[A, B, C any](as []A, bs []B, cs iter.Seq[C]) iter.Seq[Triple[*A, *B, C]] {
	return func(yield func(Triple[*A, *B, C]) bool) {
		n := min(len(as), len(bs))

		i := 0
		for c := range cs {
			if i >= n {
				return
			}

			if !yield(Triple[*A, *B, C]{&as[i], &bs[i], c}) {
				return
			}

			i++
		}
	}
}
