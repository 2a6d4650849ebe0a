package gen

import (
	"sort"

	"soagen/internal/common"
	"soagen/internal/names"
	"soagen/internal/schema"
)

// runtimePkg is the import path of the shared runtime package.
const runtimePkg = "soagen/soa"

// fileData is the root value rendered into one generated file.
type fileData struct {
	Header      string
	PackageName string
	StdImports  []string
	Imports     []importSpec
	Schema      typeData
}

// importSpec is one import line of the generated file.
type importSpec struct {
	Alias string // empty when the package name matches the path base
	Path  string
}

// typeData exposes a record schema to the templates.
type typeData struct {
	Base   string
	N      names.Family
	Fields []fieldData
	First  fieldData

	schema *schema.RecordSchema
}

// fieldData is one column as seen by the templates.
type fieldData struct {
	Name   string
	Type   string
	Nested bool
	NF     names.Family
}

// Ann returns the verbatim annotation lines for a variant key.
func (d typeData) Ann(key string) []string {
	v, ok := schema.ParseVariant(key)
	if !ok {
		return nil
	}

	return d.schema.Ann(v)
}

// Derived reports whether the named derive was requested for the
// variant key.
func (d typeData) Derived(key, derive string) bool {
	v, ok := schema.ParseVariant(key)
	if !ok {
		return false
	}

	dd, ok := schema.ParseDerive(derive)
	if !ok {
		return false
	}

	return d.schema.HasDerive(v, dd)
}

// HasFlat reports whether any column is a plain slice (not nested).
func (d typeData) HasFlat() bool {
	for _, f := range d.Fields {
		if !f.Nested {
			return true
		}
	}

	return false
}

// buildFileData assembles the template input for one schema.
func buildFileData(s *schema.RecordSchema, packageName, header string) fileData {
	td := typeData{
		Base:   s.Name,
		N:      s.Names,
		schema: s,
	}

	for _, f := range s.Fields {
		td.Fields = append(td.Fields, fieldData{
			Name:   f.Name,
			Type:   f.GoType,
			Nested: f.Nested,
			NF:     f.NestedNames,
		})
	}

	td.First = td.Fields[0]

	data := fileData{
		Header:      header,
		PackageName: packageName,
		Schema:      td,
	}

	data.StdImports = append(data.StdImports, "iter")

	if td.HasFlat() {
		data.StdImports = append(data.StdImports, "slices", "unsafe")
	}

	if needsFmt(s) {
		data.StdImports = append(data.StdImports, "fmt")
	}

	if needsStrings(s) {
		data.StdImports = append(data.StdImports, "strings")
	}

	sort.Strings(data.StdImports)

	data.Imports = append(data.Imports, importSpec{Path: runtimePkg})
	for _, imp := range s.Imports {
		spec := importSpec{Path: imp.Path}
		if common.PkgAlias(imp.Path) != imp.Name {
			spec.Alias = imp.Name
		}

		data.Imports = append(data.Imports, spec)
	}

	return data
}

// needsFmt reports whether any String derive was requested.
func needsFmt(s *schema.RecordSchema) bool {
	return s.HasAnyDerive(schema.DeriveString)
}

// needsStrings reports whether a String derive targets a multi-record
// type, whose rendering uses a strings.Builder.
func needsStrings(s *schema.RecordSchema) bool {
	for _, v := range []schema.Variant{schema.VariantVec, schema.VariantSlice, schema.VariantSliceMut} {
		if s.HasDerive(v, schema.DeriveString) {
			return true
		}
	}

	return false
}
