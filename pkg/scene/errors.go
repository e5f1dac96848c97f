package scene

import "errors"

// Scene model errors.
var (
	// Returned by MaterialBuilder.Build when no name was supplied.
	ErrMissingName = errors.New("material name is required")
	// Returned by NewEntity when the entity name is empty.
	ErrInvalidName = errors.New("invalid entity name")
	// Returned by mesh queries for face or vertex indices outside the
	// valid range.
	ErrIndexOutOfRange = errors.New("mesh index out of range")
	// Returned by NewTriangleMesh when the supplied buffers have an
	// inconsistent layout.
	ErrInvalidMeshData = errors.New("invalid mesh data")
	// Returned by MaterialLibrary.Add when the library already holds a
	// material with the same name.
	ErrDuplicateMaterial = errors.New("duplicate material name")
	// Returned when a scene definition references a mesh that was not
	// supplied to Build.
	ErrUnknownMesh = errors.New("unknown mesh")
	// Returned when a scene definition references a material that is not
	// in the library.
	ErrUnknownMaterial = errors.New("unknown material")
)
