package manifest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soagen/internal/names"
	"soagen/internal/schema"
)

func newSchema(name string, fields ...schema.Field) *schema.RecordSchema {
	return &schema.RecordSchema{
		Name:        name,
		Names:       names.NewFamily(name),
		Fields:      fields,
		Annotations: make(map[schema.Variant][]string),
		Derives:     make(map[schema.Variant][]schema.Derive),
	}
}

func cheeseSchema() *schema.RecordSchema {
	return newSchema("Cheese",
		schema.Field{Name: "Smell", GoType: "float64", Comparable: true},
		schema.Field{Name: "Name", GoType: "string", Comparable: true},
	)
}

const sampleYAML = `
version: "1"
types:
  - name: Cheese
    annotations:
      vec:
        - "//easyjson:json"
      ref:
        - "// A borrowed cheese."
    derives:
      vec: [Clone, Equal]
      ref: [String, Equal]
`

func TestParseAndApply(t *testing.T) {
	f, err := Parse([]byte(sampleYAML))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)
	require.NotNil(t, f.ForType("Cheese"))
	assert.Nil(t, f.ForType("Milk"))

	s := cheeseSchema()
	diags := Apply([]*schema.RecordSchema{s}, f)
	require.True(t, diags.IsValid(), "unexpected diagnostics: %v", diags.Errors)

	assert.Equal(t, []string{"//easyjson:json"}, s.Ann(schema.VariantVec))
	assert.Equal(t, []string{"// A borrowed cheese."}, s.Ann(schema.VariantRef))
	assert.Empty(t, s.Ann(schema.VariantPtr))

	assert.True(t, s.HasDerive(schema.VariantVec, schema.DeriveClone))
	assert.True(t, s.HasDerive(schema.VariantVec, schema.DeriveEqual))
	assert.True(t, s.HasDerive(schema.VariantRef, schema.DeriveString))
	assert.False(t, s.HasDerive(schema.VariantSlice, schema.DeriveString))
}

func TestParse_DefaultVersion(t *testing.T) {
	f, err := Parse([]byte("types: []"))
	require.NoError(t, err)
	assert.Equal(t, "1", f.Version)
}

func TestApply_NilManifest(t *testing.T) {
	diags := Apply([]*schema.RecordSchema{cheeseSchema()}, nil)
	assert.True(t, diags.IsValid())
}

func TestApply_BadVersion(t *testing.T) {
	diags := Apply(nil, &File{Version: "2"})
	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeBadVersion, diags.Errors[0].Code)
}

func TestApply_UnknownType(t *testing.T) {
	f := &File{Version: "1", Types: []TypeConfig{{Name: "Milk"}}}

	diags := Apply([]*schema.RecordSchema{cheeseSchema()}, f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeUnknownType, diags.Errors[0].Code)
}

func TestApply_BadVariantKey(t *testing.T) {
	f := &File{Version: "1", Types: []TypeConfig{{
		Name:    "Cheese",
		Derives: map[string][]string{"vec_mut": {"Clone"}},
	}}}

	diags := Apply([]*schema.RecordSchema{cheeseSchema()}, f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeBadVariant, diags.Errors[0].Code)
}

func TestApply_BadDerive(t *testing.T) {
	f := &File{Version: "1", Types: []TypeConfig{{
		Name:    "Cheese",
		Derives: map[string][]string{"vec": {"Hash"}},
	}}}

	diags := Apply([]*schema.RecordSchema{cheeseSchema()}, f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeBadDerive, diags.Errors[0].Code)
}

func TestApply_BadDeriveTarget(t *testing.T) {
	f := &File{Version: "1", Types: []TypeConfig{{
		Name:    "Cheese",
		Derives: map[string][]string{"iter": {"String"}},
	}}}

	diags := Apply([]*schema.RecordSchema{cheeseSchema()}, f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeBadDeriveTarget, diags.Errors[0].Code)
}

func TestApply_AnnotationMustBeComment(t *testing.T) {
	f := &File{Version: "1", Types: []TypeConfig{{
		Name:        "Cheese",
		Annotations: map[string][]string{"vec": {"var sneaky int"}},
	}}}

	diags := Apply([]*schema.RecordSchema{cheeseSchema()}, f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeBadAnnotation, diags.Errors[0].Code)
}

func TestApply_EqualNeedsComparableColumns(t *testing.T) {
	s := newSchema("Blob",
		schema.Field{Name: "Data", GoType: "[]byte", Comparable: false},
	)
	f := &File{Version: "1", Types: []TypeConfig{{
		Name:    "Blob",
		Derives: map[string][]string{"ref": {"Equal"}},
	}}}

	diags := Apply([]*schema.RecordSchema{s}, f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeEqualNotPossible, diags.Errors[0].Code)
}

func TestApply_NestedDeriveHole(t *testing.T) {
	point := newSchema("Point",
		schema.Field{Name: "X", GoType: "float32", Comparable: true},
	)
	particle := newSchema("Particle",
		schema.Field{Name: "Point", Nested: true, NestedNames: names.NewFamily("Point"), Comparable: true},
		schema.Field{Name: "Mass", GoType: "float32", Comparable: true},
	)

	f := &File{Version: "1", Types: []TypeConfig{{
		Name:    "Particle",
		Derives: map[string][]string{"vec": {"Clone"}},
	}}}

	diags := Apply([]*schema.RecordSchema{point, particle}, f)
	require.True(t, diags.HasErrors())
	assert.Equal(t, CodeNestedDeriveHole, diags.Errors[0].Code)

	// Deriving Clone on the nested family as well resolves the hole.
	f.Types = append(f.Types, TypeConfig{
		Name:    "Point",
		Derives: map[string][]string{"vec": {"Clone"}},
	})

	point = newSchema("Point", schema.Field{Name: "X", GoType: "float32", Comparable: true})
	particle.Derives = make(map[schema.Variant][]schema.Derive)

	diags = Apply([]*schema.RecordSchema{point, particle}, f)
	assert.True(t, diags.IsValid(), "unexpected diagnostics: %v", diags.Errors)
}
