package schema

import (
	"fmt"
	"go/types"
	"sort"

	"soagen/internal/analyze"
	"soagen/internal/common"
	"soagen/internal/diagnostic"
	"soagen/internal/names"
)

// Diagnostic codes produced while building schemas.
const (
	CodePackageNotFound  = "package-not-found"
	CodeTypeNotFound     = "type-not-found"
	CodeNotAStruct       = "not-a-struct"
	CodeNoFields         = "no-fields"
	CodeBadNested        = "bad-nested"
	CodeNestedNotInSet   = "nested-not-in-set"
	CodeNameClash        = "name-clash"
	CodeUnknownSoAOption = "unknown-soa-option"
)

// Build turns the requested types of one analyzed package into record
// schemas. The returned slice preserves the request order and contains
// one schema per type that survived validation.
func Build(graph *analyze.TypeGraph, pkgPath string, typeNames []string) ([]*RecordSchema, diagnostic.Diagnostics) {
	var diags diagnostic.Diagnostics

	pkg := graph.Packages[pkgPath]
	if pkg == nil {
		diags.AddError(CodePackageNotFound,
			fmt.Sprintf("package %q was not loaded", pkgPath), "", "")

		return nil, diags
	}

	requested := make(map[string]bool, len(typeNames))
	for _, name := range typeNames {
		requested[name] = true
	}

	var schemas []*RecordSchema

	for _, name := range typeNames {
		s := buildOne(graph, pkg, name, requested, &diags)
		if s != nil {
			schemas = append(schemas, s)
		}
	}

	checkNameClashes(schemas, &diags)

	return schemas, diags
}

func buildOne(
	graph *analyze.TypeGraph,
	pkg *analyze.PackageInfo,
	name string,
	requested map[string]bool,
	diags *diagnostic.Diagnostics,
) *RecordSchema {
	info := graph.GetType(analyze.TypeID{PkgPath: pkg.Path, Name: name})
	if info == nil {
		diags.AddError(CodeTypeNotFound,
			fmt.Sprintf("type %s not found in package %s", name, pkg.Path), name, "")

		return nil
	}

	if info.Kind != analyze.TypeKindStruct {
		diags.AddError(CodeNotAStruct,
			fmt.Sprintf("type %s is %s, want struct", name, info.Kind), name, "")

		return nil
	}

	if common.IsEmpty(info.Fields) {
		diags.AddError(CodeNoFields,
			fmt.Sprintf("struct %s has no fields to lay out as columns", name), name, "")

		return nil
	}

	s := &RecordSchema{
		Name:        name,
		Names:       names.NewFamily(name),
		PkgPath:     pkg.Path,
		PkgName:     pkg.Name,
		Dir:         pkg.Dir,
		Annotations: make(map[Variant][]string),
		Derives:     make(map[Variant][]Derive),
	}

	imports := make(map[string]string)
	qual := qualifier(pkg.Path, imports)

	for i := range info.Fields {
		field := &info.Fields[i]

		for _, opt := range field.SoAOptions() {
			if opt != "nested" {
				diags.AddWarning(CodeUnknownSoAOption,
					fmt.Sprintf("unknown soa tag option %q ignored", opt), name, field.Name)
			}
		}

		if field.HasSoAOption("nested") {
			nested := buildNestedField(field, pkg.Path, requested, name, diags)
			if nested == nil {
				return nil
			}

			s.Fields = append(s.Fields, *nested)

			continue
		}

		s.Fields = append(s.Fields, Field{
			Name:       field.Name,
			GoType:     types.TypeString(field.Type.GoType, qual),
			Comparable: types.Comparable(field.Type.GoType),
		})
	}

	for path, pkgName := range imports {
		s.Imports = append(s.Imports, Import{Path: path, Name: pkgName})
	}

	sort.Slice(s.Imports, func(i, j int) bool {
		return s.Imports[i].Path < s.Imports[j].Path
	})

	return s
}

// buildNestedField validates a `soa:"nested"` field. The nested type
// must be a named struct generated in the same run, so its family
// lives in the same package and stays length-consistent with ours.
func buildNestedField(
	field *analyze.FieldInfo,
	pkgPath string,
	requested map[string]bool,
	owner string,
	diags *diagnostic.Diagnostics,
) *Field {
	ft := field.Type
	if ft.Kind != analyze.TypeKindStruct || !ft.IsNamed() {
		diags.AddError(CodeBadNested,
			fmt.Sprintf("nested field must be a named struct, got %s", analyze.TypeString(ft)),
			owner, field.Name)

		return nil
	}

	if ft.ID.PkgPath != pkgPath || !requested[ft.ID.Name] {
		diags.AddError(CodeNestedNotInSet,
			fmt.Sprintf("nested field type %s must be generated in the same run", ft.ID),
			owner, field.Name)

		return nil
	}

	return &Field{
		Name:        field.Name,
		Nested:      true,
		NestedNames: names.NewFamily(ft.ID.Name),
		Comparable:  true,
	}
}

// checkNameClashes rejects schemas whose generated names collide with
// another requested type or its family.
func checkNameClashes(schemas []*RecordSchema, diags *diagnostic.Diagnostics) {
	owner := make(map[string]string)
	for _, s := range schemas {
		owner[s.Name] = s.Name
	}

	for _, s := range schemas {
		for _, generated := range s.Names.All() {
			if prev, ok := owner[generated]; ok {
				diags.AddError(CodeNameClash,
					fmt.Sprintf("generated name %s collides with %s", generated, prev),
					s.Name, "")

				continue
			}

			owner[generated] = s.Name
		}
	}
}
