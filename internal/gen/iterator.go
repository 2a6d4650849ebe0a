package gen

// iterTemplate renders the two iterator types. An iterator pairs a raw
// cursor with a remaining count, so it never forms a pointer past the
// last record.
const iterTemplate = `{{$s := .Schema}}{{$N := $s.N}}
// {{$N.Iter}} yields read proxies in index order.
{{- range $s.Ann "iter"}}
{{.}}
{{- end}}
type {{$N.Iter}} struct {
	cur  {{$N.Ptr}}
	left int
}

// Next returns the next record proxy, or ok == false when the iterator
// is exhausted.
func (it *{{$N.Iter}}) Next() ({{$N.Ref}}, bool) {
	if it.left == 0 {
		return {{$N.Ref}}{}, false
	}

	ref := it.cur.Deref()

	it.left--
	if it.left > 0 {
		it.cur = it.cur.Add(1)
	}

	return ref, true
}

// Remaining returns the number of records not yet yielded.
func (it *{{$N.Iter}}) Remaining() int {
	return it.left
}

// All adapts the iterator for range-over-func loops.
func (it *{{$N.Iter}}) All() iter.Seq[{{$N.Ref}}] {
	return func(yield func({{$N.Ref}}) bool) {
		for ref, ok := it.Next(); ok; ref, ok = it.Next() {
			if !yield(ref) {
				return
			}
		}
	}
}

// {{$N.IterMut}} yields write proxies in index order.
{{- range $s.Ann "iter_mut"}}
{{.}}
{{- end}}
type {{$N.IterMut}} struct {
	cur  {{$N.PtrMut}}
	left int
}

// Next returns the next record proxy, or ok == false when the iterator
// is exhausted.
func (it *{{$N.IterMut}}) Next() ({{$N.RefMut}}, bool) {
	if it.left == 0 {
		return {{$N.RefMut}}{}, false
	}

	ref := it.cur.Deref()

	it.left--
	if it.left > 0 {
		it.cur = it.cur.Add(1)
	}

	return ref, true
}

// Remaining returns the number of records not yet yielded.
func (it *{{$N.IterMut}}) Remaining() int {
	return it.left
}

// All adapts the iterator for range-over-func loops.
func (it *{{$N.IterMut}}) All() iter.Seq[{{$N.RefMut}}] {
	return func(yield func({{$N.RefMut}}) bool) {
		for ref, ok := it.Next(); ok; ref, ok = it.Next() {
			if !yield(ref) {
				return
			}
		}
	}
}
`
