package soa

// Range selects a contiguous index window in one of the five standard
// shapes. The zero value selects everything, same as All().
//
//	Span(i, j)          [i, j)
//	SpanInclusive(i, j) [i, j]
//	From(i)             [i, len)
//	To(j)               [0, j)
//	ToInclusive(j)      [0, j]
//	All()               [0, len)
type Range struct {
	start     int
	end       int
	hasStart  bool
	hasEnd    bool
	inclusive bool
}

// Span selects the half-open window [start, end).
func Span(start, end int) Range {
	return Range{start: start, end: end, hasStart: true, hasEnd: true}
}

// SpanInclusive selects the closed window [start, end].
func SpanInclusive(start, end int) Range {
	return Range{start: start, end: end, hasStart: true, hasEnd: true, inclusive: true}
}

// From selects [start, len).
func From(start int) Range {
	return Range{start: start, hasStart: true}
}

// To selects [0, end).
func To(end int) Range {
	return Range{end: end, hasEnd: true}
}

// ToInclusive selects [0, end].
func ToInclusive(end int) Range {
	return Range{end: end, hasEnd: true, inclusive: true}
}

// All selects the full window [0, len).
func All() Range {
	return Range{}
}

// Resolve clips the range against a container of length n and returns
// concrete half-open bounds. It fails with a *RangeError when the
// window does not lie within [0, n] or start exceeds end.
func (r Range) Resolve(n int) (lo, hi int, err error) {
	lo = 0
	if r.hasStart {
		lo = r.start
	}

	hi = n
	if r.hasEnd {
		hi = r.end
		if r.inclusive {
			hi++
		}
	}

	if lo < 0 || lo > hi || hi > n {
		return 0, 0, &RangeError{Lo: lo, Hi: hi, Len: n}
	}

	return lo, hi, nil
}
