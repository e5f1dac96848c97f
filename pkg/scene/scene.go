package scene

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// EntityID is a lightweight handle to an entity stored in a Scene.
type EntityID string

// Scene is an ordered collection of entities addressed by handles. The
// scene stores shared references only: it owns no mesh or material storage,
// so meshes and materials may be reused freely across entities and scenes.
type Scene struct {
	order    []EntityID
	entities map[EntityID]*Entity
	log      *zap.Logger
}

// SceneOption configures a Scene.
type SceneOption func(*Scene)

// WithLogger routes the scene's logging to the given zap logger. Without it
// the scene stays silent.
func WithLogger(log *zap.Logger) SceneOption {
	return func(s *Scene) {
		s.log = log
	}
}

// NewScene creates an empty scene.
func NewScene(opts ...SceneOption) *Scene {
	s := &Scene{
		entities: make(map[EntityID]*Entity),
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add stores the entity and returns its handle. Entity names need not be
// unique within a scene; the handle is what addresses the entry.
func (s *Scene) Add(e *Entity) EntityID {
	id := EntityID(uuid.NewString())
	s.entities[id] = e
	s.order = append(s.order, id)
	s.log.Debug("entity added",
		zap.String("id", string(id)),
		zap.String("name", e.Name()))
	return id
}

// Get returns the entity stored under the given handle.
func (s *Scene) Get(id EntityID) (*Entity, bool) {
	e, ok := s.entities[id]
	return e, ok
}

// Remove drops the entity stored under the given handle and reports whether
// it was present. The entity's mesh and material are untouched; other
// entities may still reference them.
func (s *Scene) Remove(id EntityID) bool {
	if _, ok := s.entities[id]; !ok {
		return false
	}
	delete(s.entities, id)
	for i, other := range s.order {
		if other == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	s.log.Debug("entity removed", zap.String("id", string(id)))
	return true
}

// Entities returns the stored entities in insertion order.
func (s *Scene) Entities() []*Entity {
	out := make([]*Entity, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.entities[id])
	}
	return out
}

// FindByName returns the first entity with the given name, in insertion
// order.
func (s *Scene) FindByName(name string) (*Entity, bool) {
	for _, id := range s.order {
		if e := s.entities[id]; e.Name() == name {
			return e, true
		}
	}
	return nil, false
}

// Len returns the number of stored entities.
func (s *Scene) Len() int {
	return len(s.entities)
}
