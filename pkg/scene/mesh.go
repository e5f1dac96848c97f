// Package scene provides an in-memory scene-description data model:
// the Mesh contract over triangle-mesh representations, OBJ/MTL-compatible
// materials built through a validating builder, and named entities that
// bind a mesh and a material for assembly into a Scene.
package scene

import "github.com/go-gl/mathgl/mgl32"

// Mesh is the read-only query surface that any triangle-mesh
// representation must expose. Implementations choose their own storage
// (indexed arrays, half-edge structures, mapped buffers); consumers only
// rely on these queries.
//
// All queries are pure and stable: repeated calls with the same index
// return the same value for the lifetime of the mesh. Every vertex index
// returned by FaceVertices must be in [0, VertexCount()).
type Mesh interface {
	// VertexCount returns the number of vertices in the mesh.
	VertexCount() int

	// FaceCount returns the number of triangle faces in the mesh.
	FaceCount() int

	// FaceVertices returns the three vertex indices composing the given
	// face. Returns ErrIndexOutOfRange when face is not in [0, FaceCount()).
	FaceVertices(face int) ([3]uint32, error)

	// VertexPosition returns the position of the given vertex.
	// Returns ErrIndexOutOfRange when vertex is not in [0, VertexCount()).
	VertexPosition(vertex int) (mgl32.Vec3, error)

	// VertexNormal returns the normal of the given vertex. The bool is
	// false when the mesh carries no normal channel. Out-of-range indices
	// are reported even for meshes without normals.
	VertexNormal(vertex int) (mgl32.Vec3, bool, error)

	// VertexTexCoord returns the texture coordinate of the given vertex.
	// The bool is false when the mesh carries no UV channel.
	VertexTexCoord(vertex int) (mgl32.Vec2, bool, error)
}
