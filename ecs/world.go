package ecs

// System updates a world each frame.
type System interface {
	Update(w *World)
}

// World owns entities, component storages, and system order.
type World struct {
	entities entityStore
	systems  []System
	events   EventQueue

	transforms *SparseSet
	sprites    *SparseSet
	objects    *SparseSet
}

// NewWorld creates an empty ECS world.
func NewWorld() *World {
	return &World{}
}

// CreateEntity allocates a new entity.
func (w *World) CreateEntity() Entity {
	return w.entities.create()
}

// DestroyEntity removes all of an entity's components and retires the
// handle.
func (w *World) DestroyEntity(e Entity) {
	if w == nil || !w.entities.isAlive(e) {
		return
	}
	w.transforms.Remove(e)
	w.sprites.Remove(e)
	w.objects.Remove(e)
	w.entities.destroy(e)
}

// IsAlive reports whether an entity handle is valid.
func (w *World) IsAlive(e Entity) bool {
	return w != nil && w.entities.isAlive(e)
}

// AddSystem appends a system to the update order.
func (w *World) AddSystem(s System) {
	if s == nil {
		return
	}
	w.systems = append(w.systems, s)
}

// Update runs all systems once, then flushes unconsumed events.
func (w *World) Update() {
	if w == nil {
		return
	}
	for _, s := range w.systems {
		if s != nil {
			s.Update(w)
		}
	}
	w.events.flush()
}

// Events returns the world event queue.
func (w *World) Events() *EventQueue {
	if w == nil {
		return nil
	}
	return &w.events
}
