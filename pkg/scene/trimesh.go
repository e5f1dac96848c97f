package scene

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// TriangleMeshData holds the raw de-interleaved buffers for NewTriangleMesh.
// Each attribute lives in its own flat buffer: positions use three floats
// per vertex, texture coordinates two. Normals and texture coordinates are
// optional channels; leave them nil or empty to omit them.
type TriangleMeshData struct {
	Positions []float32 // Three floats per vertex (required)
	Normals   []float32 // Three floats per vertex, or empty
	TexCoords []float32 // Two floats per vertex, or empty
	Indices   []uint32  // Three vertex indices per face
}

// TriangleMesh is an indexed triangle mesh with de-interleaved vertex
// attributes. It implements Mesh with full bounds checking and is immutable
// after construction.
type TriangleMesh struct {
	positions []float32
	normals   []float32
	texcoords []float32
	indices   []uint32
}

// NewTriangleMesh validates the buffer layout and wraps it in a
// TriangleMesh. The mesh keeps the supplied slices; callers must not mutate
// them afterwards.
func NewTriangleMesh(data TriangleMeshData) (*TriangleMesh, error) {
	if len(data.Positions)%3 != 0 {
		return nil, fmt.Errorf("position buffer holds %d floats, not a multiple of 3: %w",
			len(data.Positions), ErrInvalidMeshData)
	}
	vertexCount := len(data.Positions) / 3

	if len(data.Normals) != 0 && len(data.Normals) != vertexCount*3 {
		return nil, fmt.Errorf("normal buffer holds %d floats, want %d for %d vertices: %w",
			len(data.Normals), vertexCount*3, vertexCount, ErrInvalidMeshData)
	}
	if len(data.TexCoords) != 0 && len(data.TexCoords) != vertexCount*2 {
		return nil, fmt.Errorf("texcoord buffer holds %d floats, want %d for %d vertices: %w",
			len(data.TexCoords), vertexCount*2, vertexCount, ErrInvalidMeshData)
	}
	if len(data.Indices)%3 != 0 {
		return nil, fmt.Errorf("index buffer holds %d indices, not a multiple of 3: %w",
			len(data.Indices), ErrInvalidMeshData)
	}
	for i, idx := range data.Indices {
		if int(idx) >= vertexCount {
			return nil, fmt.Errorf("index %d at position %d out of range for %d vertices: %w",
				idx, i, vertexCount, ErrInvalidMeshData)
		}
	}

	return &TriangleMesh{
		positions: data.Positions,
		normals:   data.Normals,
		texcoords: data.TexCoords,
		indices:   data.Indices,
	}, nil
}

// VertexCount returns the number of stored vertices.
func (m *TriangleMesh) VertexCount() int {
	return len(m.positions) / 3
}

// FaceCount returns the number of triangle faces.
func (m *TriangleMesh) FaceCount() int {
	return len(m.indices) / 3
}

// HasNormals reports whether the mesh carries a normal channel.
func (m *TriangleMesh) HasNormals() bool {
	return len(m.normals) > 0
}

// HasTexCoords reports whether the mesh carries a UV channel.
func (m *TriangleMesh) HasTexCoords() bool {
	return len(m.texcoords) > 0
}

// FaceVertices returns the three vertex indices of the given face.
func (m *TriangleMesh) FaceVertices(face int) ([3]uint32, error) {
	if face < 0 || face >= m.FaceCount() {
		return [3]uint32{}, fmt.Errorf("face %d of %d: %w", face, m.FaceCount(), ErrIndexOutOfRange)
	}
	i := face * 3
	return [3]uint32{m.indices[i], m.indices[i+1], m.indices[i+2]}, nil
}

// VertexPosition returns the position of the given vertex.
func (m *TriangleMesh) VertexPosition(vertex int) (mgl32.Vec3, error) {
	if vertex < 0 || vertex >= m.VertexCount() {
		return mgl32.Vec3{}, fmt.Errorf("vertex %d of %d: %w", vertex, m.VertexCount(), ErrIndexOutOfRange)
	}
	i := vertex * 3
	return mgl32.Vec3{m.positions[i], m.positions[i+1], m.positions[i+2]}, nil
}

// VertexNormal returns the normal of the given vertex, if the mesh carries
// normals.
func (m *TriangleMesh) VertexNormal(vertex int) (mgl32.Vec3, bool, error) {
	if vertex < 0 || vertex >= m.VertexCount() {
		return mgl32.Vec3{}, false, fmt.Errorf("vertex %d of %d: %w", vertex, m.VertexCount(), ErrIndexOutOfRange)
	}
	if !m.HasNormals() {
		return mgl32.Vec3{}, false, nil
	}
	i := vertex * 3
	return mgl32.Vec3{m.normals[i], m.normals[i+1], m.normals[i+2]}, true, nil
}

// VertexTexCoord returns the texture coordinate of the given vertex, if the
// mesh carries a UV channel.
func (m *TriangleMesh) VertexTexCoord(vertex int) (mgl32.Vec2, bool, error) {
	if vertex < 0 || vertex >= m.VertexCount() {
		return mgl32.Vec2{}, false, fmt.Errorf("vertex %d of %d: %w", vertex, m.VertexCount(), ErrIndexOutOfRange)
	}
	if !m.HasTexCoords() {
		return mgl32.Vec2{}, false, nil
	}
	i := vertex * 2
	return mgl32.Vec2{m.texcoords[i], m.texcoords[i+1]}, true, nil
}

// Bounds is an axis-aligned bounding box over vertex positions.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Bounds returns the axis-aligned bounding box of all vertex positions.
// A mesh without vertices yields the zero box.
func (m *TriangleMesh) Bounds() Bounds {
	n := m.VertexCount()
	if n == 0 {
		return Bounds{}
	}
	b := Bounds{
		Min: mgl32.Vec3{m.positions[0], m.positions[1], m.positions[2]},
		Max: mgl32.Vec3{m.positions[0], m.positions[1], m.positions[2]},
	}
	for v := 1; v < n; v++ {
		i := v * 3
		for c := 0; c < 3; c++ {
			if m.positions[i+c] < b.Min[c] {
				b.Min[c] = m.positions[i+c]
			}
			if m.positions[i+c] > b.Max[c] {
				b.Max[c] = m.positions[i+c]
			}
		}
	}
	return b
}

// Centroid returns the mean of all vertex positions, or the zero vector for
// an empty mesh.
func (m *TriangleMesh) Centroid() mgl32.Vec3 {
	n := m.VertexCount()
	if n == 0 {
		return mgl32.Vec3{}
	}
	var sum mgl32.Vec3
	for v := 0; v < n; v++ {
		i := v * 3
		sum = sum.Add(mgl32.Vec3{m.positions[i], m.positions[i+1], m.positions[i+2]})
	}
	return sum.Mul(1 / float32(n))
}
