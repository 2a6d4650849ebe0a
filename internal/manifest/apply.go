package manifest

import (
	"fmt"
	"strings"

	"soagen/internal/diagnostic"
	"soagen/internal/schema"
)

// Diagnostic codes produced while applying a manifest.
const (
	CodeBadVersion        = "manifest-bad-version"
	CodeUnknownType       = "manifest-unknown-type"
	CodeBadVariant        = "manifest-bad-variant"
	CodeBadDerive         = "manifest-bad-derive"
	CodeBadDeriveTarget   = "manifest-bad-derive-target"
	CodeBadAnnotation     = "manifest-bad-annotation"
	CodeEqualNotPossible  = "equal-not-possible"
	CodeNestedDeriveHole  = "nested-derive-hole"
)

// Apply copies the manifest's annotations and derives onto the built
// schemas and validates every reference. Schemas are modified in place;
// on errors in the returned diagnostics the schemas must be discarded.
func Apply(schemas []*schema.RecordSchema, f *File) diagnostic.Diagnostics {
	var diags diagnostic.Diagnostics

	if f == nil {
		return diags
	}

	if f.Version != "1" {
		diags.AddError(CodeBadVersion,
			fmt.Sprintf("unsupported manifest version %q", f.Version), "", "")

		return diags
	}

	byName := make(map[string]*schema.RecordSchema, len(schemas))
	for _, s := range schemas {
		byName[s.Name] = s
	}

	for i := range f.Types {
		tc := &f.Types[i]

		s := byName[tc.Name]
		if s == nil {
			diags.AddError(CodeUnknownType,
				fmt.Sprintf("manifest names type %s, which is not generated in this run", tc.Name),
				tc.Name, "")

			continue
		}

		applyType(s, tc, &diags)
	}

	for _, s := range schemas {
		checkDeriveClosure(s, byName, &diags)
	}

	return diags
}

func applyType(s *schema.RecordSchema, tc *TypeConfig, diags *diagnostic.Diagnostics) {
	for key, lines := range tc.Annotations {
		v, ok := schema.ParseVariant(key)
		if !ok {
			diags.AddError(CodeBadVariant,
				fmt.Sprintf("unknown variant key %q in annotations", key), s.Name, "")

			continue
		}

		for _, line := range lines {
			if !strings.HasPrefix(strings.TrimSpace(line), "//") {
				diags.AddError(CodeBadAnnotation,
					fmt.Sprintf("annotation %q for variant %s is not a comment line", line, v),
					s.Name, "")
			}
		}

		s.Annotations[v] = append(s.Annotations[v], lines...)
	}

	for key, deriveNames := range tc.Derives {
		v, ok := schema.ParseVariant(key)
		if !ok {
			diags.AddError(CodeBadVariant,
				fmt.Sprintf("unknown variant key %q in derives", key), s.Name, "")

			continue
		}

		for _, name := range deriveNames {
			d, ok := schema.ParseDerive(name)
			if !ok {
				diags.AddError(CodeBadDerive,
					fmt.Sprintf("unknown derive %q", name), s.Name, "")

				continue
			}

			if !schema.DeriveAllowed(d, v) {
				diags.AddError(CodeBadDeriveTarget,
					fmt.Sprintf("derive %s cannot target variant %s", d, v), s.Name, "")

				continue
			}

			s.Derives[v] = append(s.Derives[v], d)
		}
	}
}

// checkDeriveClosure validates that requested derives are realizable:
// Equal needs == on every flat column, and derives on a record with
// nested fields need the same derive on the nested family.
func checkDeriveClosure(s *schema.RecordSchema, byName map[string]*schema.RecordSchema, diags *diagnostic.Diagnostics) {
	for _, pair := range []struct {
		v schema.Variant
		d schema.Derive
	}{
		{schema.VariantVec, schema.DeriveEqual},
		{schema.VariantRef, schema.DeriveEqual},
		{schema.VariantVec, schema.DeriveClone},
	} {
		if !s.HasDerive(pair.v, pair.d) {
			continue
		}

		for _, field := range s.Fields {
			if field.Nested {
				nested := byName[field.NestedNames.Base]
				if nested == nil || !nested.HasDerive(pair.v, pair.d) {
					diags.AddError(CodeNestedDeriveHole,
						fmt.Sprintf("derive %s on %s requires the same derive on nested type %s",
							pair.d, pair.v, field.NestedNames.Base),
						s.Name, field.Name)
				}

				continue
			}

			if pair.d == schema.DeriveEqual && !field.Comparable {
				diags.AddError(CodeEqualNotPossible,
					fmt.Sprintf("derive Equal needs comparable columns, field %s is %s",
						field.Name, field.GoType),
					s.Name, field.Name)
			}
		}
	}
}
