package gen

// ptrTemplate renders the raw handles. A handle is an unchecked cursor
// holding one element pointer per column; none of its operations test
// bounds, mirroring raw pointer arithmetic.
const ptrTemplate = `{{$s := .Schema}}{{$N := $s.N}}{{$first := $s.First}}
// {{$N.Ptr}} is an unchecked read cursor over the columns. It must
// only be dereferenced while it addresses a live record of the columns
// it was created from.
{{- range $s.Ann "ptr"}}
{{.}}
{{- end}}
type {{$N.Ptr}} struct {
{{- range $s.Fields}}
{{- if .Nested}}
	{{.Name}} {{.NF.Ptr}}
{{- else}}
	{{.Name}} *{{.Type}}
{{- end}}
{{- end}}
}

// Add returns a cursor advanced by k records. k may be negative.
func (p {{$N.Ptr}}) Add(k int) {{$N.Ptr}} {
	return {{$N.Ptr}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: p.{{.Name}}.Add(k),
{{- else}}
		{{.Name}}: (*{{.Type}})(unsafe.Add(unsafe.Pointer(p.{{.Name}}), k*int(unsafe.Sizeof(*p.{{.Name}})))),
{{- end}}
{{- end}}
	}
}

// Deref returns a read proxy for the record under the cursor.
func (p {{$N.Ptr}}) Deref() {{$N.Ref}} {
	return {{$N.Ref}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: p.{{.Name}}.Deref(),
{{- else}}
		{{.Name}}: p.{{.Name}},
{{- end}}
{{- end}}
	}
}

// Eq reports whether two cursors address the same record.
func (p {{$N.Ptr}}) Eq(other {{$N.Ptr}}) bool {
{{- if $first.Nested}}
	return p.{{$first.Name}}.Eq(other.{{$first.Name}})
{{- else}}
	return p.{{$first.Name}} == other.{{$first.Name}}
{{- end}}
}

// Less orders cursors created from the same columns by position.
func (p {{$N.Ptr}}) Less(other {{$N.Ptr}}) bool {
{{- if $first.Nested}}
	return p.{{$first.Name}}.Less(other.{{$first.Name}})
{{- else}}
	return uintptr(unsafe.Pointer(p.{{$first.Name}})) < uintptr(unsafe.Pointer(other.{{$first.Name}}))
{{- end}}
}

// {{$N.PtrMut}} is an unchecked write cursor over the columns. See
// {{$N.Ptr}}.
{{- range $s.Ann "ptr_mut"}}
{{.}}
{{- end}}
type {{$N.PtrMut}} struct {
{{- range $s.Fields}}
{{- if .Nested}}
	{{.Name}} {{.NF.PtrMut}}
{{- else}}
	{{.Name}} *{{.Type}}
{{- end}}
{{- end}}
}

// Add returns a cursor advanced by k records. k may be negative.
func (p {{$N.PtrMut}}) Add(k int) {{$N.PtrMut}} {
	return {{$N.PtrMut}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: p.{{.Name}}.Add(k),
{{- else}}
		{{.Name}}: (*{{.Type}})(unsafe.Add(unsafe.Pointer(p.{{.Name}}), k*int(unsafe.Sizeof(*p.{{.Name}})))),
{{- end}}
{{- end}}
	}
}

// Deref returns a write proxy for the record under the cursor.
func (p {{$N.PtrMut}}) Deref() {{$N.RefMut}} {
	return {{$N.RefMut}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: p.{{.Name}}.Deref(),
{{- else}}
		{{.Name}}: p.{{.Name}},
{{- end}}
{{- end}}
	}
}

// AsPtr downgrades to a read cursor at the same position.
func (p {{$N.PtrMut}}) AsPtr() {{$N.Ptr}} {
	return {{$N.Ptr}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: p.{{.Name}}.AsPtr(),
{{- else}}
		{{.Name}}: p.{{.Name}},
{{- end}}
{{- end}}
	}
}

// Eq reports whether two cursors address the same record.
func (p {{$N.PtrMut}}) Eq(other {{$N.PtrMut}}) bool {
{{- if $first.Nested}}
	return p.{{$first.Name}}.Eq(other.{{$first.Name}})
{{- else}}
	return p.{{$first.Name}} == other.{{$first.Name}}
{{- end}}
}

// Less orders cursors created from the same columns by position.
func (p {{$N.PtrMut}}) Less(other {{$N.PtrMut}}) bool {
{{- if $first.Nested}}
	return p.{{$first.Name}}.Less(other.{{$first.Name}})
{{- else}}
	return uintptr(unsafe.Pointer(p.{{$first.Name}})) < uintptr(unsafe.Pointer(other.{{$first.Name}}))
{{- end}}
}
`
