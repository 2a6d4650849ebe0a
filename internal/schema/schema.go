package schema

import (
	"go/types"

	"soagen/internal/names"
)

// RecordSchema is the normalized description of one record struct and
// the family of types generated for it.
type RecordSchema struct {
	// Name is the base record type, e.g. "Particle".
	Name string
	// Names holds the derived generated type names.
	Names names.Family
	// PkgPath is the import path of the package defining the record.
	PkgPath string
	// PkgName is the package name generated code is emitted into.
	PkgName string
	// Dir is the directory holding the package sources.
	Dir string
	// Fields in declaration order.
	Fields []Field
	// Imports lists extra packages the rendered field types refer to.
	Imports []Import
	// Annotations maps a variant to verbatim comment lines placed above
	// its type declaration.
	Annotations map[Variant][]string
	// Derives maps a variant to the derives requested for it.
	Derives map[Variant][]Derive
}

// Field is one column of the generated family.
type Field struct {
	// Name is the Go field name, shared by the record and every
	// generated type.
	Name string
	// GoType is the rendered element type, e.g. "float32" or "time.Time".
	// Empty for nested fields.
	GoType string
	// Nested marks a field tagged `soa:"nested"`, stored as the nested
	// family's types instead of a flat column.
	Nested bool
	// NestedNames holds the nested family names when Nested is set.
	NestedNames names.Family
	// Comparable reports whether the element type supports ==.
	Comparable bool
}

// Import is a package referenced by a rendered field type.
type Import struct {
	Path string
	Name string
}

// Ann returns the annotation lines for a variant (nil when none).
func (s *RecordSchema) Ann(v Variant) []string {
	return s.Annotations[v]
}

// HasDerive reports whether the given derive was requested for the
// given variant.
func (s *RecordSchema) HasDerive(v Variant, d Derive) bool {
	for _, got := range s.Derives[v] {
		if got == d {
			return true
		}
	}

	return false
}

// HasAnyDerive reports whether any variant requested the given derive.
func (s *RecordSchema) HasAnyDerive(d Derive) bool {
	for v := Variant(0); int(v) < VariantTotal; v++ {
		if s.HasDerive(v, d) {
			return true
		}
	}

	return false
}

// HasNested reports whether any field is a nested family.
func (s *RecordSchema) HasNested() bool {
	for _, f := range s.Fields {
		if f.Nested {
			return true
		}
	}

	return false
}

// qualifier renders types relative to the target package and records
// any foreign packages in imports.
func qualifier(pkgPath string, imports map[string]string) types.Qualifier {
	return func(p *types.Package) string {
		if p == nil || p.Path() == pkgPath {
			return ""
		}

		imports[p.Path()] = p.Name()

		return p.Name()
	}
}
