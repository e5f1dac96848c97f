package scene

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func buildMaterial(t *testing.T, name string) *Material {
	t.Helper()
	m, err := NewMaterialBuilder().Name(name).Build()
	require.NoError(t, err)
	return m
}

func TestMaterialLibrary_AddAndGet(t *testing.T) {
	lib := NewMaterialLibrary("props.mtl", WithLibraryLogger(zaptest.NewLogger(t)))
	assert.Equal(t, "props.mtl", lib.Name())

	gold := buildMaterial(t, "Gold")
	require.NoError(t, lib.Add(gold))
	require.NoError(t, lib.Add(buildMaterial(t, "Stone")))

	got, ok := lib.Get("Gold")
	require.True(t, ok)
	assert.Same(t, gold, got)

	_, ok = lib.Get("Silver")
	assert.False(t, ok)

	assert.Equal(t, 2, lib.Len())
}

func TestMaterialLibrary_DuplicateName(t *testing.T) {
	lib := NewMaterialLibrary("props.mtl")

	require.NoError(t, lib.Add(buildMaterial(t, "Gold")))
	err := lib.Add(buildMaterial(t, "Gold"))
	assert.ErrorIs(t, err, ErrDuplicateMaterial)
	assert.Equal(t, 1, lib.Len())
}

func TestMaterialLibrary_NamesSorted(t *testing.T) {
	lib := NewMaterialLibrary("props.mtl")
	for _, name := range []string{"Zinc", "Amber", "Moss"} {
		require.NoError(t, lib.Add(buildMaterial(t, name)))
	}

	assert.Equal(t, []string{"Amber", "Moss", "Zinc"}, lib.Names())
}
