package scene

import "fmt"

// Entity binds a display name to a mesh and a material for placement in a
// scene. It is a passive value: mesh and material are shared, non-owning
// references, so many entities may point at the same mesh or material.
// Replacement is the only mutation, and it produces a new Entity.
type Entity struct {
	name     string
	mesh     Mesh
	material *Material
}

// NewEntity creates an entity. Returns ErrInvalidName when name is empty.
func NewEntity(name string, mesh Mesh, material *Material) (*Entity, error) {
	if name == "" {
		return nil, fmt.Errorf("creating entity: %w", ErrInvalidName)
	}
	return &Entity{
		name:     name,
		mesh:     mesh,
		material: material,
	}, nil
}

// Name returns the entity name.
func (e *Entity) Name() string {
	return e.name
}

// Mesh returns the referenced mesh.
func (e *Entity) Mesh() Mesh {
	return e.mesh
}

// Material returns the referenced material.
func (e *Entity) Material() *Material {
	return e.material
}

// WithMaterial returns a copy of the entity bound to a different material.
// The receiver and any entity sharing the old material are left untouched.
func (e *Entity) WithMaterial(m *Material) *Entity {
	return &Entity{
		name:     e.name,
		mesh:     e.mesh,
		material: m,
	}
}
