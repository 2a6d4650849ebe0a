package gen

// deriveTemplate renders the opt-in method sets requested by the
// manifest. Each section is emitted only for the variants that asked
// for it.
const deriveTemplate = `{{$s := .Schema}}{{$N := $s.N}}{{$B := $s.Base}}
{{- if $s.Derived "vec" "String"}}

// String implements fmt.Stringer.
func (v *{{$N.Vec}}) String() string {
	var sb strings.Builder

	sb.WriteString("{{$N.Vec}}[")

	for i := 0; i < v.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%v", v.refAt(i).ToOwned())
	}

	sb.WriteString("]")

	return sb.String()
}
{{- end}}
{{- if $s.Derived "slice" "String"}}

// String implements fmt.Stringer.
func (s {{$N.Slice}}) String() string {
	var sb strings.Builder

	sb.WriteString("{{$N.Slice}}[")

	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%v", s.refAt(i).ToOwned())
	}

	sb.WriteString("]")

	return sb.String()
}
{{- end}}
{{- if $s.Derived "slice_mut" "String"}}

// String implements fmt.Stringer.
func (s {{$N.SliceMut}}) String() string {
	var sb strings.Builder

	sb.WriteString("{{$N.SliceMut}}[")

	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}

		fmt.Fprintf(&sb, "%v", s.refAt(i).ToOwned())
	}

	sb.WriteString("]")

	return sb.String()
}
{{- end}}
{{- if $s.Derived "ref" "String"}}

// String implements fmt.Stringer.
func (r {{$N.Ref}}) String() string {
	return fmt.Sprintf("%v", r.ToOwned())
}
{{- end}}
{{- if $s.Derived "ref_mut" "String"}}

// String implements fmt.Stringer.
func (r {{$N.RefMut}}) String() string {
	return fmt.Sprintf("%v", r.ToOwned())
}
{{- end}}
{{- if $s.Derived "ref" "Equal"}}

// Equal reports field-wise equality of the referenced records.
func (r {{$N.Ref}}) Equal(other {{$N.Ref}}) bool {
	return {{range $i, $f := $s.Fields}}{{if $i}} &&
		{{end}}{{if $f.Nested}}r.{{$f.Name}}.Equal(other.{{$f.Name}}){{else}}*r.{{$f.Name}} == *other.{{$f.Name}}{{end}}{{end}}
}
{{- end}}
{{- if $s.Derived "vec" "Equal"}}

// Equal reports record-wise equality of two containers.
func (v *{{$N.Vec}}) Equal(other *{{$N.Vec}}) bool {
	if v.Len() != other.Len() {
		return false
	}

	return {{range $i, $f := $s.Fields}}{{if $i}} &&
		{{end}}{{if $f.Nested}}v.{{$f.Name}}.Equal(&other.{{$f.Name}}){{else}}slices.Equal(v.{{$f.Name}}, other.{{$f.Name}}){{end}}{{end}}
}
{{- end}}
{{- if $s.Derived "vec" "Clone"}}

// Clone returns a deep copy of the columns.
func (v *{{$N.Vec}}) Clone() *{{$N.Vec}} {
	return &{{$N.Vec}}{
{{- range $s.Fields}}
{{- if .Nested}}
		{{.Name}}: *v.{{.Name}}.Clone(),
{{- else}}
		{{.Name}}: slices.Clone(v.{{.Name}}),
{{- end}}
{{- end}}
	}
}
{{- end}}
`

// assertTemplate pins the generated types to the runtime interfaces at
// compile time.
const assertTemplate = `{{$N := .Schema.N}}{{$B := .Schema.Base}}
var (
	_ soa.Container[{{$B}}, {{$N.Ref}}, {{$N.RefMut}}] = (*{{$N.Vec}})(nil)
	_ soa.View[{{$B}}, {{$N.Ref}}]                     = {{$N.Slice}}{}
	_ soa.MutView[{{$B}}, {{$N.Ref}}, {{$N.RefMut}}]   = {{$N.SliceMut}}{}
)
`
