package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzer_LoadPackages_Particles(t *testing.T) {
	a := NewAnalyzer()

	graph, err := a.LoadPackages("soagen/examples/particles")
	require.NoError(t, err)

	pkg, ok := graph.Packages["soagen/examples/particles"]
	require.True(t, ok)
	assert.Equal(t, "particles", pkg.Name)
	assert.NotEmpty(t, pkg.Dir)

	particle, err := a.GetStruct("soagen/examples/particles", "Particle")
	require.NoError(t, err)
	require.Len(t, particle.Fields, 3)

	assert.Equal(t, "Point", particle.Fields[0].Name)
	assert.True(t, particle.Fields[0].HasSoAOption("nested"))
	assert.Equal(t, TypeKindStruct, particle.Fields[0].Type.Kind)

	assert.Equal(t, "Mass", particle.Fields[1].Name)
	assert.Equal(t, TypeKindBasic, particle.Fields[1].Type.Kind)
	assert.Equal(t, "float32", particle.Fields[1].Type.ID.Name)

	assert.Equal(t, "Name", particle.Fields[2].Name)
}

func TestAnalyzer_GetStruct_NotFound(t *testing.T) {
	a := NewAnalyzer()

	_, err := a.LoadPackages("soagen/examples/particles")
	require.NoError(t, err)

	_, err = a.GetStruct("soagen/examples/particles", "NoSuchType")
	assert.Error(t, err)
}

func TestAnalyzer_LoadPackages_BadPattern(t *testing.T) {
	a := NewAnalyzer()

	_, err := a.LoadPackages("soagen/internal/does-not-exist")
	assert.Error(t, err)
}
