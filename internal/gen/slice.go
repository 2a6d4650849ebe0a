package gen

// sliceTemplate renders the two view types. Views reuse the column
// backing arrays, so re-slicing a view can never escape the window of
// its parent.
const sliceTemplate = `{{$s := .Schema}}{{$N := $s.N}}{{$first := $s.First}}
// {{$N.Slice}} is a read view over a window of the columns.
{{- range $s.Ann "slice"}}
{{.}}
{{- end}}
type {{$N.Slice}} struct {
{{- range $s.Fields}}
{{- if .Nested}}
	{{.Name}} {{.NF.Slice}}
{{- else}}
	{{.Name}} []{{.Type}}
{{- end}}
{{- end}}
}

// Len returns the number of records in the window.
func (s {{$N.Slice}}) Len() int {
{{- if $first.Nested}}
	return s.{{$first.Name}}.Len()
{{- else}}
	return len(s.{{$first.Name}})
{{- end}}
}

// IsEmpty reports whether the window holds no records.
func (s {{$N.Slice}}) IsEmpty() bool {
	return s.Len() == 0
}

// Get returns a read proxy for position i within the window.
func (s {{$N.Slice}}) Get(i int) ({{$N.Ref}}, bool) {
	if i < 0 || i >= s.Len() {
		return {{$N.Ref}}{}, false
	}

	return s.refAt(i), true
}

// Index returns a read proxy for position i, panicking when i is out
// of range.
func (s {{$N.Slice}}) Index(i int) {{$N.Ref}} {
	if err := soa.CheckIndex(i, s.Len()); err != nil {
		panic(err)
	}

	return s.refAt(i)
}

// First returns a read proxy for the first record of the window.
func (s {{$N.Slice}}) First() ({{$N.Ref}}, bool) {
	return s.Get(0)
}

// Last returns a read proxy for the last record of the window.
func (s {{$N.Slice}}) Last() ({{$N.Ref}}, bool) {
	return s.Get(s.Len() - 1)
}

func (s {{$N.Slice}}) refAt(i int) {{$N.Ref}} {
	return {{$N.Ref}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: s.{{.Name}}.refAt(i),
{{- else}}
		{{.Name}}: &s.{{.Name}}[i],
{{- end}}
{{- end}}
	}
}

// Slice returns a read view over the sub-window selected by r,
// resolved against this window's length.
func (s {{$N.Slice}}) Slice(r soa.Range) ({{$N.Slice}}, error) {
	lo, hi, err := r.Resolve(s.Len())
	if err != nil {
		return {{$N.Slice}}{}, err
	}

	return s.sliceAt(lo, hi), nil
}

func (s {{$N.Slice}}) sliceAt(lo, hi int) {{$N.Slice}} {
	return {{$N.Slice}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: s.{{.Name}}.sliceAt(lo, hi),
{{- else}}
		{{.Name}}: s.{{.Name}}[lo:hi],
{{- end}}
{{- end}}
	}
}

// Iter returns a read iterator over the window.
func (s {{$N.Slice}}) Iter() *{{$N.Iter}} {
	return &{{$N.Iter}}{cur: s.Ptr(), left: s.Len()}
}

// Ptr returns a read handle at the start of the window, or the zero
// handle when the window is empty.
func (s {{$N.Slice}}) Ptr() {{$N.Ptr}} {
	if s.Len() == 0 {
		return {{$N.Ptr}}{}
	}

	return {{$N.Ptr}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: s.{{.Name}}.Ptr(),
{{- else}}
		{{.Name}}: &s.{{.Name}}[0],
{{- end}}
{{- end}}
	}
}

// {{$N.SliceMut}} is a write view over a window of the columns.
{{- range $s.Ann "slice_mut"}}
{{.}}
{{- end}}
type {{$N.SliceMut}} struct {
{{- range $s.Fields}}
{{- if .Nested}}
	{{.Name}} {{.NF.SliceMut}}
{{- else}}
	{{.Name}} []{{.Type}}
{{- end}}
{{- end}}
}

// Len returns the number of records in the window.
func (s {{$N.SliceMut}}) Len() int {
{{- if $first.Nested}}
	return s.{{$first.Name}}.Len()
{{- else}}
	return len(s.{{$first.Name}})
{{- end}}
}

// IsEmpty reports whether the window holds no records.
func (s {{$N.SliceMut}}) IsEmpty() bool {
	return s.Len() == 0
}

// Get returns a read proxy for position i within the window.
func (s {{$N.SliceMut}}) Get(i int) ({{$N.Ref}}, bool) {
	if i < 0 || i >= s.Len() {
		return {{$N.Ref}}{}, false
	}

	return s.refAt(i), true
}

// GetMut returns a write proxy for position i within the window.
func (s {{$N.SliceMut}}) GetMut(i int) ({{$N.RefMut}}, bool) {
	if i < 0 || i >= s.Len() {
		return {{$N.RefMut}}{}, false
	}

	return s.mutAt(i), true
}

// Index returns a read proxy for position i, panicking when i is out
// of range.
func (s {{$N.SliceMut}}) Index(i int) {{$N.Ref}} {
	if err := soa.CheckIndex(i, s.Len()); err != nil {
		panic(err)
	}

	return s.refAt(i)
}

// IndexMut returns a write proxy for position i, panicking when i is
// out of range.
func (s {{$N.SliceMut}}) IndexMut(i int) {{$N.RefMut}} {
	if err := soa.CheckIndex(i, s.Len()); err != nil {
		panic(err)
	}

	return s.mutAt(i)
}

// First returns a read proxy for the first record of the window.
func (s {{$N.SliceMut}}) First() ({{$N.Ref}}, bool) {
	return s.Get(0)
}

// FirstMut returns a write proxy for the first record of the window.
func (s {{$N.SliceMut}}) FirstMut() ({{$N.RefMut}}, bool) {
	return s.GetMut(0)
}

// Last returns a read proxy for the last record of the window.
func (s {{$N.SliceMut}}) Last() ({{$N.Ref}}, bool) {
	return s.Get(s.Len() - 1)
}

// LastMut returns a write proxy for the last record of the window.
func (s {{$N.SliceMut}}) LastMut() ({{$N.RefMut}}, bool) {
	return s.GetMut(s.Len() - 1)
}

func (s {{$N.SliceMut}}) refAt(i int) {{$N.Ref}} {
	return {{$N.Ref}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: s.{{.Name}}.refAt(i),
{{- else}}
		{{.Name}}: &s.{{.Name}}[i],
{{- end}}
{{- end}}
	}
}

func (s {{$N.SliceMut}}) mutAt(i int) {{$N.RefMut}} {
	return {{$N.RefMut}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: s.{{.Name}}.mutAt(i),
{{- else}}
		{{.Name}}: &s.{{.Name}}[i],
{{- end}}
{{- end}}
	}
}

// AsSlice downgrades to a read view over the same window.
func (s {{$N.SliceMut}}) AsSlice() {{$N.Slice}} {
	return {{$N.Slice}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: s.{{.Name}}.AsSlice(),
{{- else}}
		{{.Name}}: s.{{.Name}},
{{- end}}
{{- end}}
	}
}

// Slice returns a read view over the sub-window selected by r.
func (s {{$N.SliceMut}}) Slice(r soa.Range) ({{$N.Slice}}, error) {
	return s.AsSlice().Slice(r)
}

// SliceMut returns a write view over the sub-window selected by r,
// resolved against this window's length.
func (s {{$N.SliceMut}}) SliceMut(r soa.Range) ({{$N.SliceMut}}, error) {
	lo, hi, err := r.Resolve(s.Len())
	if err != nil {
		return {{$N.SliceMut}}{}, err
	}

	return s.sliceMutAt(lo, hi), nil
}

func (s {{$N.SliceMut}}) sliceMutAt(lo, hi int) {{$N.SliceMut}} {
	return {{$N.SliceMut}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: s.{{.Name}}.sliceMutAt(lo, hi),
{{- else}}
		{{.Name}}: s.{{.Name}}[lo:hi],
{{- end}}
{{- end}}
	}
}

// Iter returns a read iterator over the window.
func (s {{$N.SliceMut}}) Iter() *{{$N.Iter}} {
	return s.AsSlice().Iter()
}

// IterMut returns a write iterator over the window.
func (s {{$N.SliceMut}}) IterMut() *{{$N.IterMut}} {
	return &{{$N.IterMut}}{cur: s.PtrMut(), left: s.Len()}
}

// Ptr returns a read handle at the start of the window.
func (s {{$N.SliceMut}}) Ptr() {{$N.Ptr}} {
	return s.AsSlice().Ptr()
}

// PtrMut returns a write handle at the start of the window, or the
// zero handle when the window is empty.
func (s {{$N.SliceMut}}) PtrMut() {{$N.PtrMut}} {
	if s.Len() == 0 {
		return {{$N.PtrMut}}{}
	}

	return {{$N.PtrMut}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: s.{{.Name}}.PtrMut(),
{{- else}}
		{{.Name}}: &s.{{.Name}}[0],
{{- end}}
{{- end}}
	}
}

// Swap exchanges records i and j across every column of the window.
func (s {{$N.SliceMut}}) Swap(i, j int) {
{{- range $s.Fields}}
{{- if .Nested}}
	s.{{.Name}}.Swap(i, j)
{{- else}}
	s.{{.Name}}[i], s.{{.Name}}[j] = s.{{.Name}}[j], s.{{.Name}}[i]
{{- end}}
{{- end}}
}

// Apply reorders the window so that position i receives the record
// formerly at position perm[i]. On an invalid permutation the window
// is left untouched.
func (s {{$N.SliceMut}}) Apply(perm []int) error {
	return soa.Apply(perm, s.Len(), s.Swap)
}

// SortBy stably sorts the window by a three-way comparator over read
// proxies.
func (s {{$N.SliceMut}}) SortBy(cmp func(a, b {{$N.Ref}}) int) {
	perm := soa.SortPermutation(s.Len(), func(i, j int) bool {
		return cmp(s.refAt(i), s.refAt(j)) < 0
	})

	_ = s.Apply(perm)
}
`
