package scene

import "fmt"

// MaterialDef is a declarative material definition mirroring MTL directive
// values (newmtl, Ka, Kd, Ks, Ns, d and the map_* directives). Nil pointers
// and empty paths mean "not specified" and keep the builder defaults.
//
// The struct is yaml-taggable on purpose: decode it from whatever bytes a
// caller has, or fill it in code, then run it through Material the same way
// an MTL parser collaborator feeds directive values to the builder.
type MaterialDef struct {
	Name             string      `yaml:"name"`
	AmbientColor     *[3]float32 `yaml:"ka,omitempty"`
	DiffuseColor     *[3]float32 `yaml:"kd,omitempty"`
	SpecularColor    *[3]float32 `yaml:"ks,omitempty"`
	SpecularExponent *float32    `yaml:"ns,omitempty"`
	Opacity          *float32    `yaml:"d,omitempty"`
	AmbientMap       string      `yaml:"map_ka,omitempty"`
	DiffuseMap       string      `yaml:"map_kd,omitempty"`
	SpecularMap      string      `yaml:"map_ks,omitempty"`
	BumpMap          string      `yaml:"bump,omitempty"`
	DisplacementMap  string      `yaml:"disp,omitempty"`
	NormalMap        string      `yaml:"norm,omitempty"`
	RoughnessMap     string      `yaml:"map_pr,omitempty"`
	MetallicMap      string      `yaml:"map_pm,omitempty"`
	SheenMap         string      `yaml:"map_ps,omitempty"`
	EmissiveMap      string      `yaml:"map_ke,omitempty"`
}

// Material maps the populated fields onto builder calls and builds the
// material, surfacing the builder's validation errors.
func (d MaterialDef) Material() (*Material, error) {
	mb := NewMaterialBuilder().Name(d.Name)
	if d.AmbientColor != nil {
		mb.AmbientColor(d.AmbientColor[0], d.AmbientColor[1], d.AmbientColor[2])
	}
	if d.DiffuseColor != nil {
		mb.DiffuseColor(d.DiffuseColor[0], d.DiffuseColor[1], d.DiffuseColor[2])
	}
	if d.SpecularColor != nil {
		mb.SpecularColor(d.SpecularColor[0], d.SpecularColor[1], d.SpecularColor[2])
	}
	if d.SpecularExponent != nil {
		mb.SpecularExponent(*d.SpecularExponent)
	}
	if d.Opacity != nil {
		mb.Opacity(*d.Opacity)
	}
	mb.AmbientMap(d.AmbientMap)
	mb.DiffuseMap(d.DiffuseMap)
	mb.SpecularMap(d.SpecularMap)
	mb.BumpMap(d.BumpMap)
	mb.DisplacementMap(d.DisplacementMap)
	mb.NormalMap(d.NormalMap)
	mb.RoughnessMap(d.RoughnessMap)
	mb.MetallicMap(d.MetallicMap)
	mb.SheenMap(d.SheenMap)
	mb.EmissiveMap(d.EmissiveMap)
	return mb.Build()
}

// LibraryDef is a declarative material library: a name plus the materials
// it holds.
type LibraryDef struct {
	Name      string        `yaml:"name"`
	Materials []MaterialDef `yaml:"materials"`
}

// Library builds every material definition and collects them into a
// MaterialLibrary, surfacing builder and duplicate-name errors.
func (d LibraryDef) Library(opts ...LibraryOption) (*MaterialLibrary, error) {
	lib := NewMaterialLibrary(d.Name, opts...)
	for _, md := range d.Materials {
		m, err := md.Material()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", md.Name, err)
		}
		if err := lib.Add(m); err != nil {
			return nil, err
		}
	}
	return lib, nil
}

// EntityDef binds an entity name to a mesh name and a material name, both
// resolved at build time.
type EntityDef struct {
	Name     string `yaml:"name"`
	Mesh     string `yaml:"mesh"`
	Material string `yaml:"material"`
}

// SceneDef is a declarative scene: an ordered list of entity bindings.
type SceneDef struct {
	Entities []EntityDef `yaml:"entities"`
}

// Build resolves every entity definition against the caller-supplied meshes
// and material library and assembles a Scene. Returns ErrUnknownMesh or
// ErrUnknownMaterial when a reference does not resolve, and the entity
// constructor's errors for invalid names.
func (d SceneDef) Build(meshes map[string]Mesh, lib *MaterialLibrary, opts ...SceneOption) (*Scene, error) {
	s := NewScene(opts...)
	for _, ed := range d.Entities {
		mesh, ok := meshes[ed.Mesh]
		if !ok {
			return nil, fmt.Errorf("entity %q references mesh %q: %w", ed.Name, ed.Mesh, ErrUnknownMesh)
		}
		mat, ok := lib.Get(ed.Material)
		if !ok {
			return nil, fmt.Errorf("entity %q references material %q: %w", ed.Name, ed.Material, ErrUnknownMaterial)
		}
		e, err := NewEntity(ed.Name, mesh, mat)
		if err != nil {
			return nil, err
		}
		s.Add(e)
	}
	return s, nil
}
