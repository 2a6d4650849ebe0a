package gen

import (
	"go/format"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soagen/internal/names"
	"soagen/internal/schema"
)

func newTestSchema(name, pkgName string, fields ...schema.Field) *schema.RecordSchema {
	return &schema.RecordSchema{
		Name:        name,
		Names:       names.NewFamily(name),
		PkgPath:     "soagen/examples/" + pkgName,
		PkgName:     pkgName,
		Fields:      fields,
		Annotations: make(map[schema.Variant][]string),
		Derives:     make(map[schema.Variant][]schema.Derive),
	}
}

func cheeseSchema() *schema.RecordSchema {
	s := newTestSchema("Cheese", "cheese",
		schema.Field{Name: "Smell", GoType: "float64", Comparable: true},
		schema.Field{Name: "Name", GoType: "string", Comparable: true},
	)

	s.Annotations[schema.VariantVec] = []string{"//easyjson:json"}
	s.Derives[schema.VariantVec] = []schema.Derive{schema.DeriveClone, schema.DeriveEqual, schema.DeriveString}
	s.Derives[schema.VariantRef] = []schema.Derive{schema.DeriveEqual, schema.DeriveString}

	return s
}

func particleSchemas() []*schema.RecordSchema {
	point := newTestSchema("Point", "particles",
		schema.Field{Name: "X", GoType: "float32", Comparable: true},
		schema.Field{Name: "Y", GoType: "float32", Comparable: true},
	)

	particle := newTestSchema("Particle", "particles",
		schema.Field{Name: "Point", Nested: true, NestedNames: names.NewFamily("Point"), Comparable: true},
		schema.Field{Name: "Mass", GoType: "float32", Comparable: true},
		schema.Field{Name: "Name", GoType: "string", Comparable: true},
	)

	return []*schema.RecordSchema{point, particle}
}

func generateOne(t *testing.T, config Config, s *schema.RecordSchema) string {
	t.Helper()

	files, err := NewGenerator(config).Generate([]*schema.RecordSchema{s})
	require.NoError(t, err)
	require.Len(t, files, 1)

	return string(files[0].Content)
}

func TestGenerate_FamilySurface(t *testing.T) {
	content := generateOne(t, Config{}, cheeseSchema())

	assert.Contains(t, content, "// Code generated by soagen. DO NOT EDIT.")
	assert.Contains(t, content, "package cheese")

	for _, name := range names.NewFamily("Cheese").All() {
		assert.Contains(t, content, "type "+name+" struct", "missing generated type %s", name)
	}

	assert.Contains(t, content, "func NewCheeseVec() *CheeseVec")
	assert.Contains(t, content, "func NewCheeseVecWithCapacity(capacity int) *CheeseVec")
	assert.Contains(t, content, "func (v *CheeseVec) Push(value Cheese)")
	assert.Contains(t, content, "func (v *CheeseVec) SwapRemove(i int) (Cheese, error)")
	assert.Contains(t, content, "func (v *CheeseVec) SplitOff(at int) (*CheeseVec, error)")
	assert.Contains(t, content, "func (v *CheeseVec) SortBy(cmp func(a, b CheeseRef) int)")
	assert.Contains(t, content, "func (s CheeseSlice) Index(i int) CheeseRef")
	assert.Contains(t, content, "func (s CheeseSliceMut) Apply(perm []int) error")
	assert.Contains(t, content, "func (it *CheeseIter) Next() (CheeseRef, bool)")
	assert.Contains(t, content, "func (p CheesePtr) Add(k int) CheesePtr")
	assert.Contains(t, content, "soa.CheckIndex")
	assert.Contains(t, content, "soa.Container[Cheese, CheeseRef, CheeseRefMut]")
}

func TestGenerate_Filename(t *testing.T) {
	files, err := NewGenerator(Config{}).Generate([]*schema.RecordSchema{cheeseSchema()})
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "cheese_soa.go", files[0].Filename)
}

func TestGenerate_OutputIsFormatted(t *testing.T) {
	files, err := NewGenerator(Config{}).Generate([]*schema.RecordSchema{cheeseSchema()})
	require.NoError(t, err)

	formatted, err := format.Source(files[0].Content)
	require.NoError(t, err)
	assert.Equal(t, string(files[0].Content), string(formatted))
}

func TestGenerate_AnnotationsAndDerives(t *testing.T) {
	content := generateOne(t, Config{}, cheeseSchema())

	assert.Contains(t, content, "//easyjson:json\ntype CheeseVec struct")

	assert.Contains(t, content, "func (v *CheeseVec) Clone() *CheeseVec")
	assert.Contains(t, content, "slices.Equal(v.Smell, other.Smell)")
	assert.Contains(t, content, "func (r CheeseRef) Equal(other CheeseRef) bool")
	assert.Contains(t, content, "*r.Smell == *other.Smell")
	assert.Contains(t, content, "func (v *CheeseVec) String() string")
	assert.Contains(t, content, "func (r CheeseRef) String() string")

	// Derives not requested stay out.
	assert.NotContains(t, content, "func (s CheeseSlice) String() string")
}

func TestGenerate_NestedFamily(t *testing.T) {
	schemas := particleSchemas()

	files, err := NewGenerator(Config{}).Generate(schemas)
	require.NoError(t, err)
	require.Len(t, files, 2)

	assert.Equal(t, "point_soa.go", files[0].Filename)
	assert.Equal(t, "particle_soa.go", files[1].Filename)

	particle := string(files[1].Content)

	assert.Contains(t, particle, "Point PointVec")
	assert.Contains(t, particle, "Point PointRef")
	assert.Contains(t, particle, "Point PointSlice")
	assert.Contains(t, particle, "v.Point.Push(value.Point)")
	assert.Contains(t, particle, "v.Point.removeAt(i)")
	assert.Contains(t, particle, "Point: v.Point.refAt(i)")
	assert.Contains(t, particle, "p.Point.Add(k)")
	assert.Contains(t, particle, "return p.Point.Eq(other.Point)")

	formatted, err := format.Source(files[1].Content)
	require.NoError(t, err)
	assert.Equal(t, particle, string(formatted))
}

func TestGenerate_ConfigOverrides(t *testing.T) {
	files, err := NewGenerator(Config{PackageName: "columns", Suffix: "_gen"}).
		Generate([]*schema.RecordSchema{cheeseSchema()})
	require.NoError(t, err)
	require.Len(t, files, 1)

	assert.Equal(t, "cheese_gen.go", files[0].Filename)
	assert.Contains(t, string(files[0].Content), "package columns")
}

func TestGenerate_FieldTypeImports(t *testing.T) {
	s := newTestSchema("Sample", "samples",
		schema.Field{Name: "Taken", GoType: "time.Time", Comparable: true},
		schema.Field{Name: "Mass", GoType: "units.Grams", Comparable: true},
	)
	s.Imports = []schema.Import{
		{Path: "example.com/go-units", Name: "units"},
		{Path: "time", Name: "time"},
	}

	content := generateOne(t, Config{}, s)

	assert.Contains(t, content, `"time"`)
	assert.Contains(t, content, `units "example.com/go-units"`)
	assert.Contains(t, content, "Taken []time.Time")
	assert.Contains(t, content, "[]units.Grams")
}
