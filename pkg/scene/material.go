package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// MTL map keys as they appear in material library files. The first four are
// standard MTL; the rest follow the common PBR extension names, which only
// some target applications support.
const (
	MapKeyAmbient      = "map_Ka"
	MapKeyDiffuse      = "map_Kd"
	MapKeySpecular     = "map_Ks"
	MapKeyBump         = "bump"
	MapKeyDisplacement = "disp"
	MapKeyNormal       = "norm"
	MapKeyRoughness    = "map_Pr"
	MapKeyMetallic     = "map_Pm"
	MapKeySheen        = "map_Ps"
	MapKeyEmissive     = "map_Ke"
)

// Material models the appearance of an Entity with OBJ/MTL-compatible
// parameters: color triples (Ka, Kd, Ks), the specular exponent (Ns), the
// opacity (d), and optional texture-map paths keyed by MTL map name.
//
// A Material is immutable once built. It is safe to share across any number
// of entities and concurrent readers; deriving a variant means building a
// new Material (see DeriveMaterial).
//
// Color components are conventionally in [0, 1] but are never clamped:
// out-of-range values pass through unchanged. An unset diffuse color
// defaults to white (1, 1, 1), the usual MTL-reader convention where an
// unspecified diffuse means full albedo. Ambient and specular default to
// black.
type Material struct {
	name             string
	ambientColor     mgl32.Vec3
	diffuseColor     mgl32.Vec3
	specularColor    mgl32.Vec3
	specularExponent float32
	opacity          float32
	maps             map[string]string
}

// Name returns the material name, unique within its owning library.
func (m *Material) Name() string {
	return m.name
}

// AmbientColor returns the Ka color triple.
func (m *Material) AmbientColor() mgl32.Vec3 {
	return m.ambientColor
}

// DiffuseColor returns the Kd color triple.
func (m *Material) DiffuseColor() mgl32.Vec3 {
	return m.diffuseColor
}

// SpecularColor returns the Ks color triple.
func (m *Material) SpecularColor() mgl32.Vec3 {
	return m.specularColor
}

// SpecularExponent returns the Ns shininess scalar.
func (m *Material) SpecularExponent() float32 {
	return m.specularExponent
}

// Opacity returns the d scalar, 1 meaning fully opaque.
func (m *Material) Opacity() float32 {
	return m.opacity
}

// Map returns the texture path stored under the given MTL map key, if set.
func (m *Material) Map(key string) (string, bool) {
	path, ok := m.maps[key]
	return path, ok
}

// AmbientMap returns the ambient texture path (map_Ka), if set.
func (m *Material) AmbientMap() (string, bool) { return m.Map(MapKeyAmbient) }

// DiffuseMap returns the diffuse texture path (map_Kd), also known as the
// albedo or basecolor map, if set.
func (m *Material) DiffuseMap() (string, bool) { return m.Map(MapKeyDiffuse) }

// SpecularMap returns the specular texture path (map_Ks), if set.
func (m *Material) SpecularMap() (string, bool) { return m.Map(MapKeySpecular) }

// BumpMap returns the scalar bump map path (bump), if set.
func (m *Material) BumpMap() (string, bool) { return m.Map(MapKeyBump) }

// DisplacementMap returns the displacement map path (disp), midpoint at
// 0.5, if set.
func (m *Material) DisplacementMap() (string, bool) { return m.Map(MapKeyDisplacement) }

// NormalMap returns the tangent-space normal map path (norm), if set.
func (m *Material) NormalMap() (string, bool) { return m.Map(MapKeyNormal) }

// RoughnessMap returns the scalar roughness map path (map_Pr), if set.
func (m *Material) RoughnessMap() (string, bool) { return m.Map(MapKeyRoughness) }

// MetallicMap returns the scalar metallicity map path (map_Pm), if set.
func (m *Material) MetallicMap() (string, bool) { return m.Map(MapKeyMetallic) }

// SheenMap returns the scalar sheen map path (map_Ps), if set.
func (m *Material) SheenMap() (string, bool) { return m.Map(MapKeySheen) }

// EmissiveMap returns the emission map path (map_Ke), if set.
func (m *Material) EmissiveMap() (string, bool) { return m.Map(MapKeyEmissive) }

// Maps returns a copy of the texture map table keyed by MTL map name.
// Useful for MTL export.
func (m *Material) Maps() map[string]string {
	out := make(map[string]string, len(m.maps))
	for k, v := range m.maps {
		out[k] = v
	}
	return out
}

// MaterialBuilder stages material fields for validated construction.
// Setters overwrite any prior value for their slot (last write wins) and
// return the builder for chaining. Build snapshots the staged state, so a
// builder may keep being mutated and rebuilt without affecting materials
// built earlier.
//
// A builder must not be shared across concurrent mutators.
type MaterialBuilder struct {
	name             string
	ambientColor     mgl32.Vec3
	diffuseColor     mgl32.Vec3
	specularColor    mgl32.Vec3
	specularExponent float32
	opacity          float32
	maps             map[string]string
}

// NewMaterialBuilder returns a builder holding the documented defaults:
// diffuse white, ambient and specular black, specular exponent 0, opacity 1
// and no texture maps.
func NewMaterialBuilder() *MaterialBuilder {
	return &MaterialBuilder{
		diffuseColor: mgl32.Vec3{1, 1, 1},
		opacity:      1,
		maps:         make(map[string]string),
	}
}

// DeriveMaterial returns a builder seeded with every field of an existing
// material, for building variants without touching the source.
func DeriveMaterial(m *Material) *MaterialBuilder {
	return &MaterialBuilder{
		name:             m.name,
		ambientColor:     m.ambientColor,
		diffuseColor:     m.diffuseColor,
		specularColor:    m.specularColor,
		specularExponent: m.specularExponent,
		opacity:          m.opacity,
		maps:             m.Maps(),
	}
}

// Name sets the material name. A non-empty name is required before Build.
func (mb *MaterialBuilder) Name(name string) *MaterialBuilder {
	mb.name = name
	return mb
}

// AmbientColor sets the Ka color triple.
func (mb *MaterialBuilder) AmbientColor(r, g, b float32) *MaterialBuilder {
	mb.ambientColor = mgl32.Vec3{r, g, b}
	return mb
}

// DiffuseColor sets the Kd color triple.
func (mb *MaterialBuilder) DiffuseColor(r, g, b float32) *MaterialBuilder {
	mb.diffuseColor = mgl32.Vec3{r, g, b}
	return mb
}

// SpecularColor sets the Ks color triple.
func (mb *MaterialBuilder) SpecularColor(r, g, b float32) *MaterialBuilder {
	mb.specularColor = mgl32.Vec3{r, g, b}
	return mb
}

// SpecularExponent sets the Ns shininess scalar.
func (mb *MaterialBuilder) SpecularExponent(ns float32) *MaterialBuilder {
	mb.specularExponent = ns
	return mb
}

// Opacity sets the d scalar, 1 meaning fully opaque.
func (mb *MaterialBuilder) Opacity(d float32) *MaterialBuilder {
	mb.opacity = d
	return mb
}

// SetMap stores a texture path under the given MTL map key. An empty path
// clears a previously set map.
func (mb *MaterialBuilder) SetMap(key, path string) *MaterialBuilder {
	if path == "" {
		delete(mb.maps, key)
	} else {
		mb.maps[key] = path
	}
	return mb
}

// AmbientMap sets the ambient texture path (map_Ka).
func (mb *MaterialBuilder) AmbientMap(path string) *MaterialBuilder {
	return mb.SetMap(MapKeyAmbient, path)
}

// DiffuseMap sets the diffuse texture path (map_Kd).
func (mb *MaterialBuilder) DiffuseMap(path string) *MaterialBuilder {
	return mb.SetMap(MapKeyDiffuse, path)
}

// SpecularMap sets the specular texture path (map_Ks).
func (mb *MaterialBuilder) SpecularMap(path string) *MaterialBuilder {
	return mb.SetMap(MapKeySpecular, path)
}

// BumpMap sets the scalar bump map path (bump).
func (mb *MaterialBuilder) BumpMap(path string) *MaterialBuilder {
	return mb.SetMap(MapKeyBump, path)
}

// DisplacementMap sets the displacement map path (disp).
func (mb *MaterialBuilder) DisplacementMap(path string) *MaterialBuilder {
	return mb.SetMap(MapKeyDisplacement, path)
}

// NormalMap sets the tangent-space normal map path (norm).
func (mb *MaterialBuilder) NormalMap(path string) *MaterialBuilder {
	return mb.SetMap(MapKeyNormal, path)
}

// RoughnessMap sets the scalar roughness map path (map_Pr).
func (mb *MaterialBuilder) RoughnessMap(path string) *MaterialBuilder {
	return mb.SetMap(MapKeyRoughness, path)
}

// MetallicMap sets the scalar metallicity map path (map_Pm).
func (mb *MaterialBuilder) MetallicMap(path string) *MaterialBuilder {
	return mb.SetMap(MapKeyMetallic, path)
}

// SheenMap sets the scalar sheen map path (map_Ps).
func (mb *MaterialBuilder) SheenMap(path string) *MaterialBuilder {
	return mb.SetMap(MapKeySheen, path)
}

// EmissiveMap sets the emission map path (map_Ke).
func (mb *MaterialBuilder) EmissiveMap(path string) *MaterialBuilder {
	return mb.SetMap(MapKeyEmissive, path)
}

// Build validates the staged fields and produces an immutable Material.
// Returns ErrMissingName when no name was set. Construction is
// all-or-nothing: on error no Material is produced.
func (mb *MaterialBuilder) Build() (*Material, error) {
	if mb.name == "" {
		return nil, fmt.Errorf("building material: %w", ErrMissingName)
	}
	maps := make(map[string]string, len(mb.maps))
	for k, v := range mb.maps {
		maps[k] = v
	}
	return &Material{
		name:             mb.name,
		ambientColor:     mb.ambientColor,
		diffuseColor:     mb.diffuseColor,
		specularColor:    mb.specularColor,
		specularExponent: mb.specularExponent,
		opacity:          mb.opacity,
		maps:             maps,
	}, nil
}
