package gen

// refTemplate renders the borrowed proxies. A proxy holds one element
// pointer per column and stays valid while the backing columns are not
// reallocated.
const refTemplate = `{{$s := .Schema}}{{$N := $s.N}}{{$B := $s.Base}}
// {{$N.Ref}} points at the fields of one record.
{{- range $s.Ann "ref"}}
{{.}}
{{- end}}
type {{$N.Ref}} struct {
{{- range $s.Fields}}
{{- if .Nested}}
	{{.Name}} {{.NF.Ref}}
{{- else}}
	{{.Name}} *{{.Type}}
{{- end}}
{{- end}}
}

// ToOwned copies the referenced fields into an owned {{$B}}.
func (r {{$N.Ref}}) ToOwned() {{$B}} {
	return {{$B}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: r.{{.Name}}.ToOwned(),
{{- else}}
		{{.Name}}: *r.{{.Name}},
{{- end}}
{{- end}}
	}
}

// {{$N.RefMut}} is like {{$N.Ref}} but allows writing through the
// field pointers.
{{- range $s.Ann "ref_mut"}}
{{.}}
{{- end}}
type {{$N.RefMut}} struct {
{{- range $s.Fields}}
{{- if .Nested}}
	{{.Name}} {{.NF.RefMut}}
{{- else}}
	{{.Name}} *{{.Type}}
{{- end}}
{{- end}}
}

// ToOwned copies the referenced fields into an owned {{$B}}.
func (r {{$N.RefMut}}) ToOwned() {{$B}} {
	return {{$B}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: r.{{.Name}}.ToOwned(),
{{- else}}
		{{.Name}}: *r.{{.Name}},
{{- end}}
{{- end}}
	}
}

// Set overwrites the referenced record in place.
func (r {{$N.RefMut}}) Set(value {{$B}}) {
{{- range $s.Fields}}
{{- if .Nested}}
	r.{{.Name}}.Set(value.{{.Name}})
{{- else}}
	*r.{{.Name}} = value.{{.Name}}
{{- end}}
{{- end}}
}

// AsRef downgrades to a read proxy over the same record.
func (r {{$N.RefMut}}) AsRef() {{$N.Ref}} {
	return {{$N.Ref}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: r.{{.Name}}.AsRef(),
{{- else}}
		{{.Name}}: r.{{.Name}},
{{- end}}
{{- end}}
	}
}
`
