package scene

import (
	"fmt"
	"sort"

	"go.uber.org/zap"
)

// MaterialLibrary is a named collection of materials, typically one per
// loaded MTL file. The library enforces name uniqueness among its
// materials; the materials themselves stay shared and immutable.
type MaterialLibrary struct {
	name      string
	materials map[string]*Material
	log       *zap.Logger
}

// LibraryOption configures a MaterialLibrary.
type LibraryOption func(*MaterialLibrary)

// WithLibraryLogger routes the library's logging to the given zap logger.
// Without it the library stays silent.
func WithLibraryLogger(log *zap.Logger) LibraryOption {
	return func(l *MaterialLibrary) {
		l.log = log
	}
}

// NewMaterialLibrary creates an empty library with the given name.
func NewMaterialLibrary(name string, opts ...LibraryOption) *MaterialLibrary {
	lib := &MaterialLibrary{
		name:      name,
		materials: make(map[string]*Material),
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(lib)
	}
	return lib
}

// Name returns the library name.
func (l *MaterialLibrary) Name() string {
	return l.name
}

// Add stores the material under its name. Returns ErrDuplicateMaterial when
// the library already holds a material with that name.
func (l *MaterialLibrary) Add(m *Material) error {
	if _, exists := l.materials[m.Name()]; exists {
		l.log.Warn("rejecting duplicate material",
			zap.String("library", l.name),
			zap.String("material", m.Name()))
		return fmt.Errorf("material %q already in library %q: %w", m.Name(), l.name, ErrDuplicateMaterial)
	}
	l.materials[m.Name()] = m
	l.log.Debug("material added",
		zap.String("library", l.name),
		zap.String("material", m.Name()))
	return nil
}

// Get returns the material stored under the given name.
func (l *MaterialLibrary) Get(name string) (*Material, bool) {
	m, ok := l.materials[name]
	return m, ok
}

// Names returns the stored material names in sorted order.
func (l *MaterialLibrary) Names() []string {
	names := make([]string, 0, len(l.materials))
	for name := range l.materials {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of stored materials.
func (l *MaterialLibrary) Len() int {
	return len(l.materials)
}
