package scene

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const libraryYAML = `
name: props.mtl
materials:
  - name: Gold
    kd: [0.9, 0.7, 0.1]
    ns: 32
    map_kd: gold_diffuse.png
  - name: Glass
    d: 0.25
    ks: [1, 1, 1]
`

func TestLibraryDef_FromYAML(t *testing.T) {
	var def LibraryDef
	require.NoError(t, yaml.Unmarshal([]byte(libraryYAML), &def))

	lib, err := def.Library()
	require.NoError(t, err)

	assert.Equal(t, "props.mtl", lib.Name())
	assert.Equal(t, 2, lib.Len())

	gold, ok := lib.Get("Gold")
	require.True(t, ok)
	assert.Equal(t, mgl32.Vec3{0.9, 0.7, 0.1}, gold.DiffuseColor())
	assert.Equal(t, float32(32), gold.SpecularExponent())
	assert.Equal(t, float32(1), gold.Opacity())
	path, ok := gold.DiffuseMap()
	require.True(t, ok)
	assert.Equal(t, "gold_diffuse.png", path)

	glass, ok := lib.Get("Glass")
	require.True(t, ok)
	assert.Equal(t, float32(0.25), glass.Opacity())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, glass.SpecularColor())
	assert.Equal(t, mgl32.Vec3{1, 1, 1}, glass.DiffuseColor(), "unspecified diffuse keeps the white default")
}

func TestMaterialDef_UnspecifiedFieldsKeepDefaults(t *testing.T) {
	m, err := MaterialDef{Name: "Bare"}.Material()
	require.NoError(t, err)

	assert.Equal(t, mgl32.Vec3{1, 1, 1}, m.DiffuseColor())
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, m.AmbientColor())
	assert.Equal(t, float32(1), m.Opacity())
	assert.Empty(t, m.Maps())
}

func TestMaterialDef_MissingName(t *testing.T) {
	_, err := MaterialDef{DiffuseMap: "d.png"}.Material()
	assert.ErrorIs(t, err, ErrMissingName)
}

func TestLibraryDef_DuplicateMaterial(t *testing.T) {
	def := LibraryDef{
		Name: "dup.mtl",
		Materials: []MaterialDef{
			{Name: "Twice"},
			{Name: "Twice"},
		},
	}

	_, err := def.Library()
	assert.ErrorIs(t, err, ErrDuplicateMaterial)
}

func TestSceneDef_Build(t *testing.T) {
	lib, err := LibraryDef{
		Name:      "props.mtl",
		Materials: []MaterialDef{{Name: "Gold"}, {Name: "Stone"}},
	}.Library()
	require.NoError(t, err)

	meshes := map[string]Mesh{
		"rock": makeTestMesh(t),
	}

	def := SceneDef{
		Entities: []EntityDef{
			{Name: "Rock01", Mesh: "rock", Material: "Stone"},
			{Name: "Idol", Mesh: "rock", Material: "Gold"},
		},
	}

	s, err := def.Build(meshes, lib)
	require.NoError(t, err)
	require.Equal(t, 2, s.Len())

	entities := s.Entities()
	assert.Equal(t, "Rock01", entities[0].Name())
	assert.Equal(t, "Idol", entities[1].Name())
	assert.Same(t, meshes["rock"], entities[1].Mesh())

	gold, _ := lib.Get("Gold")
	assert.Same(t, gold, entities[1].Material())
}

func TestSceneDef_UnresolvedReferences(t *testing.T) {
	lib, err := LibraryDef{
		Name:      "props.mtl",
		Materials: []MaterialDef{{Name: "Stone"}},
	}.Library()
	require.NoError(t, err)

	meshes := map[string]Mesh{"rock": makeTestMesh(t)}

	tests := []struct {
		name    string
		def     SceneDef
		wantErr error
	}{
		{
			name: "unknown mesh",
			def: SceneDef{Entities: []EntityDef{
				{Name: "Rock01", Mesh: "boulder", Material: "Stone"},
			}},
			wantErr: ErrUnknownMesh,
		},
		{
			name: "unknown material",
			def: SceneDef{Entities: []EntityDef{
				{Name: "Rock01", Mesh: "rock", Material: "Marble"},
			}},
			wantErr: ErrUnknownMaterial,
		},
		{
			name: "empty entity name",
			def: SceneDef{Entities: []EntityDef{
				{Name: "", Mesh: "rock", Material: "Stone"},
			}},
			wantErr: ErrInvalidName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.def.Build(meshes, lib)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSceneDef_RoundTripYAML(t *testing.T) {
	def := SceneDef{
		Entities: []EntityDef{
			{Name: "Rock01", Mesh: "rock", Material: "Stone"},
		},
	}

	data, err := yaml.Marshal(def)
	require.NoError(t, err)

	var decoded SceneDef
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, def, decoded)
}
