package gen

// vecTemplate renders the owning container of a family. All length
// changing operations live here; views and proxies only read or
// overwrite elements in place.
const vecTemplate = `{{$s := .Schema}}{{$N := $s.N}}{{$B := $s.Base}}{{$first := $s.First}}
// {{$N.Vec}} stores {{$B}} records as one column per field, with every
// column kept at the same length.
{{- range $s.Ann "vec"}}
{{.}}
{{- end}}
type {{$N.Vec}} struct {
{{- range $s.Fields}}
{{- if .Nested}}
	{{.Name}} {{.NF.Vec}}
{{- else}}
	{{.Name}} []{{.Type}}
{{- end}}
{{- end}}
}

// New{{$N.Vec}} returns an empty container.
func New{{$N.Vec}}() *{{$N.Vec}} {
	return &{{$N.Vec}}{}
}

// New{{$N.Vec}}WithCapacity returns an empty container with every
// column preallocated for capacity records.
func New{{$N.Vec}}WithCapacity(capacity int) *{{$N.Vec}} {
	return &{{$N.Vec}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: *New{{.NF.Vec}}WithCapacity(capacity),
{{- else}}
		{{.Name}}: make([]{{.Type}}, 0, capacity),
{{- end}}
{{- end}}
	}
}

// Len returns the number of records.
func (v *{{$N.Vec}}) Len() int {
{{- if $first.Nested}}
	return v.{{$first.Name}}.Len()
{{- else}}
	return len(v.{{$first.Name}})
{{- end}}
}

// IsEmpty reports whether the container holds no records.
func (v *{{$N.Vec}}) IsEmpty() bool {
	return v.Len() == 0
}

// Cap returns the record capacity shared by the columns.
func (v *{{$N.Vec}}) Cap() int {
{{- if $first.Nested}}
	return v.{{$first.Name}}.Cap()
{{- else}}
	return cap(v.{{$first.Name}})
{{- end}}
}

// Push appends a record, extending every column by one.
func (v *{{$N.Vec}}) Push(value {{$B}}) {
{{- range $s.Fields}}
{{- if .Nested}}
	v.{{.Name}}.Push(value.{{.Name}})
{{- else}}
	v.{{.Name}} = append(v.{{.Name}}, value.{{.Name}})
{{- end}}
{{- end}}
}

// Pop removes and returns the last record.
func (v *{{$N.Vec}}) Pop() ({{$B}}, bool) {
	n := v.Len()
	if n == 0 {
		var zero {{$B}}
		return zero, false
	}

	value := v.refAt(n - 1).ToOwned()
	v.Truncate(n - 1)

	return value, true
}

// Insert places a record at position i, shifting later records right.
// i may equal Len, appending.
func (v *{{$N.Vec}}) Insert(i int, value {{$B}}) error {
	if err := soa.CheckInsertIndex(i, v.Len()); err != nil {
		return err
	}

	v.insertAt(i, value)

	return nil
}

func (v *{{$N.Vec}}) insertAt(i int, value {{$B}}) {
{{- range $s.Fields}}
{{- if .Nested}}
	v.{{.Name}}.insertAt(i, value.{{.Name}})
{{- else}}
	v.{{.Name}} = slices.Insert(v.{{.Name}}, i, value.{{.Name}})
{{- end}}
{{- end}}
}

// Remove deletes and returns the record at position i, shifting later
// records left.
func (v *{{$N.Vec}}) Remove(i int) ({{$B}}, error) {
	if err := soa.CheckIndex(i, v.Len()); err != nil {
		var zero {{$B}}
		return zero, err
	}

	value := v.refAt(i).ToOwned()
	v.removeAt(i)

	return value, nil
}

func (v *{{$N.Vec}}) removeAt(i int) {
{{- range $s.Fields}}
{{- if .Nested}}
	v.{{.Name}}.removeAt(i)
{{- else}}
	v.{{.Name}} = slices.Delete(v.{{.Name}}, i, i+1)
{{- end}}
{{- end}}
}

// SwapRemove deletes and returns the record at position i by moving
// the last record into its place. O(1), does not preserve order.
func (v *{{$N.Vec}}) SwapRemove(i int) ({{$B}}, error) {
	if err := soa.CheckIndex(i, v.Len()); err != nil {
		var zero {{$B}}
		return zero, err
	}

	n := v.Len()
	v.Swap(i, n-1)

	value := v.refAt(n - 1).ToOwned()
	v.Truncate(n - 1)

	return value, nil
}

// Replace overwrites the record at position i and returns the previous
// record.
func (v *{{$N.Vec}}) Replace(i int, value {{$B}}) ({{$B}}, error) {
	if err := soa.CheckIndex(i, v.Len()); err != nil {
		var zero {{$B}}
		return zero, err
	}

	old := v.refAt(i).ToOwned()
	v.setAt(i, value)

	return old, nil
}

func (v *{{$N.Vec}}) setAt(i int, value {{$B}}) {
{{- range $s.Fields}}
{{- if .Nested}}
	v.{{.Name}}.setAt(i, value.{{.Name}})
{{- else}}
	v.{{.Name}}[i] = value.{{.Name}}
{{- end}}
{{- end}}
}

// Truncate drops every record from position n on. Larger n is a no-op.
func (v *{{$N.Vec}}) Truncate(n int) {
	if n < 0 || n >= v.Len() {
		return
	}

{{- range $s.Fields}}
{{- if .Nested}}
	v.{{.Name}}.Truncate(n)
{{- else}}
	v.{{.Name}} = v.{{.Name}}[:n]
{{- end}}
{{- end}}
}

// Clear drops every record, keeping the column capacity.
func (v *{{$N.Vec}}) Clear() {
{{- range $s.Fields}}
{{- if .Nested}}
	v.{{.Name}}.Clear()
{{- else}}
	v.{{.Name}} = v.{{.Name}}[:0]
{{- end}}
{{- end}}
}

// Append moves every record of other to the end of v, leaving other
// empty.
func (v *{{$N.Vec}}) Append(other *{{$N.Vec}}) {
{{- range $s.Fields}}
{{- if .Nested}}
	v.{{.Name}}.Append(&other.{{.Name}})
{{- else}}
	v.{{.Name}} = append(v.{{.Name}}, other.{{.Name}}...)
{{- end}}
{{- end}}
	other.Clear()
}

// SplitOff removes the records from position at on and returns them as
// a new container. at may equal Len, yielding an empty tail.
func (v *{{$N.Vec}}) SplitOff(at int) (*{{$N.Vec}}, error) {
	if err := soa.CheckInsertIndex(at, v.Len()); err != nil {
		return nil, err
	}

	return v.splitOffAt(at), nil
}

func (v *{{$N.Vec}}) splitOffAt(at int) *{{$N.Vec}} {
	tail := &{{$N.Vec}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: *v.{{.Name}}.splitOffAt(at),
{{- else}}
		{{.Name}}: slices.Clone(v.{{.Name}}[at:]),
{{- end}}
{{- end}}
	}

{{- range $s.Fields}}
{{- if not .Nested}}
	v.{{.Name}} = v.{{.Name}}[:at]
{{- end}}
{{- end}}

	return tail
}

// Reserve grows every column until at least additional more records
// fit without reallocating.
func (v *{{$N.Vec}}) Reserve(additional int) {
	if additional <= 0 {
		return
	}

{{- range $s.Fields}}
{{- if .Nested}}
	v.{{.Name}}.Reserve(additional)
{{- else}}
	v.{{.Name}} = slices.Grow(v.{{.Name}}, additional)
{{- end}}
{{- end}}
}

// ReserveExact is like Reserve but does not round the new capacity up.
func (v *{{$N.Vec}}) ReserveExact(additional int) {
	if additional <= 0 {
		return
	}

{{- range $s.Fields}}
{{- if .Nested}}
	v.{{.Name}}.ReserveExact(additional)
{{- else}}
	if cap(v.{{.Name}})-len(v.{{.Name}}) < additional {
		grown := make([]{{.Type}}, len(v.{{.Name}}), len(v.{{.Name}})+additional)
		copy(grown, v.{{.Name}})
		v.{{.Name}} = grown
	}
{{- end}}
{{- end}}
}

// ShrinkToFit reduces the capacity of every column to its length.
func (v *{{$N.Vec}}) ShrinkToFit() {
{{- range $s.Fields}}
{{- if .Nested}}
	v.{{.Name}}.ShrinkToFit()
{{- else}}
	v.{{.Name}} = slices.Clip(v.{{.Name}})
{{- end}}
{{- end}}
}

// Get returns a read proxy for position i.
func (v *{{$N.Vec}}) Get(i int) ({{$N.Ref}}, bool) {
	if i < 0 || i >= v.Len() {
		return {{$N.Ref}}{}, false
	}

	return v.refAt(i), true
}

// GetMut returns a write proxy for position i.
func (v *{{$N.Vec}}) GetMut(i int) ({{$N.RefMut}}, bool) {
	if i < 0 || i >= v.Len() {
		return {{$N.RefMut}}{}, false
	}

	return v.mutAt(i), true
}

// Index returns a read proxy for position i, panicking when i is out
// of range.
func (v *{{$N.Vec}}) Index(i int) {{$N.Ref}} {
	if err := soa.CheckIndex(i, v.Len()); err != nil {
		panic(err)
	}

	return v.refAt(i)
}

// IndexMut returns a write proxy for position i, panicking when i is
// out of range.
func (v *{{$N.Vec}}) IndexMut(i int) {{$N.RefMut}} {
	if err := soa.CheckIndex(i, v.Len()); err != nil {
		panic(err)
	}

	return v.mutAt(i)
}

// First returns a read proxy for the first record.
func (v *{{$N.Vec}}) First() ({{$N.Ref}}, bool) {
	return v.Get(0)
}

// FirstMut returns a write proxy for the first record.
func (v *{{$N.Vec}}) FirstMut() ({{$N.RefMut}}, bool) {
	return v.GetMut(0)
}

// Last returns a read proxy for the last record.
func (v *{{$N.Vec}}) Last() ({{$N.Ref}}, bool) {
	return v.Get(v.Len() - 1)
}

// LastMut returns a write proxy for the last record.
func (v *{{$N.Vec}}) LastMut() ({{$N.RefMut}}, bool) {
	return v.GetMut(v.Len() - 1)
}

func (v *{{$N.Vec}}) refAt(i int) {{$N.Ref}} {
	return {{$N.Ref}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: v.{{.Name}}.refAt(i),
{{- else}}
		{{.Name}}: &v.{{.Name}}[i],
{{- end}}
{{- end}}
	}
}

func (v *{{$N.Vec}}) mutAt(i int) {{$N.RefMut}} {
	return {{$N.RefMut}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: v.{{.Name}}.mutAt(i),
{{- else}}
		{{.Name}}: &v.{{.Name}}[i],
{{- end}}
{{- end}}
	}
}

// AsSlice returns a read view over all records.
func (v *{{$N.Vec}}) AsSlice() {{$N.Slice}} {
	return v.sliceAt(0, v.Len())
}

// AsSliceMut returns a write view over all records.
func (v *{{$N.Vec}}) AsSliceMut() {{$N.SliceMut}} {
	return v.sliceMutAt(0, v.Len())
}

// Slice returns a read view over the window selected by r.
func (v *{{$N.Vec}}) Slice(r soa.Range) ({{$N.Slice}}, error) {
	lo, hi, err := r.Resolve(v.Len())
	if err != nil {
		return {{$N.Slice}}{}, err
	}

	return v.sliceAt(lo, hi), nil
}

// SliceMut returns a write view over the window selected by r.
func (v *{{$N.Vec}}) SliceMut(r soa.Range) ({{$N.SliceMut}}, error) {
	lo, hi, err := r.Resolve(v.Len())
	if err != nil {
		return {{$N.SliceMut}}{}, err
	}

	return v.sliceMutAt(lo, hi), nil
}

func (v *{{$N.Vec}}) sliceAt(lo, hi int) {{$N.Slice}} {
	return {{$N.Slice}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: v.{{.Name}}.sliceAt(lo, hi),
{{- else}}
		{{.Name}}: v.{{.Name}}[lo:hi],
{{- end}}
{{- end}}
	}
}

func (v *{{$N.Vec}}) sliceMutAt(lo, hi int) {{$N.SliceMut}} {
	return {{$N.SliceMut}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: v.{{.Name}}.sliceMutAt(lo, hi),
{{- else}}
		{{.Name}}: v.{{.Name}}[lo:hi],
{{- end}}
{{- end}}
	}
}

// Iter returns a read iterator over all records.
func (v *{{$N.Vec}}) Iter() *{{$N.Iter}} {
	return v.AsSlice().Iter()
}

// IterMut returns a write iterator over all records.
func (v *{{$N.Vec}}) IterMut() *{{$N.IterMut}} {
	return v.AsSliceMut().IterMut()
}

// Ptr returns a read handle at position 0, or the zero handle when the
// container is empty.
func (v *{{$N.Vec}}) Ptr() {{$N.Ptr}} {
	return v.AsSlice().Ptr()
}

// PtrMut returns a write handle at position 0, or the zero handle when
// the container is empty.
func (v *{{$N.Vec}}) PtrMut() {{$N.PtrMut}} {
	return v.AsSliceMut().PtrMut()
}

// Swap exchanges records i and j across every column.
func (v *{{$N.Vec}}) Swap(i, j int) {
{{- range $s.Fields}}
{{- if .Nested}}
	v.{{.Name}}.Swap(i, j)
{{- else}}
	v.{{.Name}}[i], v.{{.Name}}[j] = v.{{.Name}}[j], v.{{.Name}}[i]
{{- end}}
{{- end}}
}

// Apply reorders the records so that position i receives the record
// formerly at position perm[i]. On an invalid permutation the
// container is left untouched.
func (v *{{$N.Vec}}) Apply(perm []int) error {
	return soa.Apply(perm, v.Len(), v.Swap)
}

// SortBy stably sorts the records by a three-way comparator over read
// proxies.
func (v *{{$N.Vec}}) SortBy(cmp func(a, b {{$N.Ref}}) int) {
	perm := soa.SortPermutation(v.Len(), func(i, j int) bool {
		return cmp(v.refAt(i), v.refAt(j)) < 0
	})

	_ = v.Apply(perm)
}
`
