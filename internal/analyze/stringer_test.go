package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTypeString(t *testing.T) {
	str := &TypeInfo{ID: TypeID{Name: "string"}, Kind: TypeKindBasic}
	point := &TypeInfo{
		ID:   TypeID{PkgPath: "soagen/examples/particles", Name: "Point"},
		Kind: TypeKindStruct,
	}

	tests := []struct {
		name string
		info *TypeInfo
		want string
	}{
		{"nil", nil, "<nil>"},
		{"basic", str, "string"},
		{"named struct", point, "Point"},
		{"pointer", &TypeInfo{Kind: TypeKindPointer, ElemType: str}, "*string"},
		{"slice", &TypeInfo{Kind: TypeKindSlice, ElemType: point}, "[]Point"},
		{"map", &TypeInfo{Kind: TypeKindMap, KeyType: str, ElemType: str}, "map[string]string"},
		{"anonymous struct", &TypeInfo{Kind: TypeKindStruct}, "struct{...}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TypeString(tt.info))
		})
	}
}

func TestFieldInfo_SoAOptions(t *testing.T) {
	f := FieldInfo{Name: "Point", Tag: `soa:"nested"`}

	assert.Equal(t, []string{"nested"}, f.SoAOptions())
	assert.True(t, f.HasSoAOption("nested"))
	assert.False(t, f.HasSoAOption("other"))

	plain := FieldInfo{Name: "Mass"}
	assert.Nil(t, plain.SoAOptions())
	assert.False(t, plain.HasSoAOption("nested"))
}

func TestTypeID_String(t *testing.T) {
	assert.Equal(t, "int", TypeID{Name: "int"}.String())
	assert.Equal(t, "pkg/path.Point", TypeID{PkgPath: "pkg/path", Name: "Point"}.String())
}
