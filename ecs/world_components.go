package ecs

import "github.com/milk9111/leveledit/ecs/component"

// Transforms returns the transform storage.
func (w *World) Transforms() *SparseSet {
	if w == nil {
		return nil
	}
	if w.transforms == nil {
		w.transforms = &SparseSet{}
	}
	return w.transforms
}

// Sprites returns the sprite storage.
func (w *World) Sprites() *SparseSet {
	if w == nil {
		return nil
	}
	if w.sprites == nil {
		w.sprites = &SparseSet{}
	}
	return w.sprites
}

// Objects returns the placed object storage.
func (w *World) Objects() *SparseSet {
	if w == nil {
		return nil
	}
	if w.objects == nil {
		w.objects = &SparseSet{}
	}
	return w.objects
}

// SetTransform attaches a transform component.
func (w *World) SetTransform(e Entity, t *component.Transform) {
	if w == nil || t == nil {
		return
	}
	w.Transforms().Set(e, t)
}

// GetTransform returns a transform component, or nil.
func (w *World) GetTransform(e Entity) *component.Transform {
	if w == nil {
		return nil
	}
	if t, ok := w.Transforms().Get(e).(*component.Transform); ok {
		return t
	}
	return nil
}

// SetSprite attaches a sprite component.
func (w *World) SetSprite(e Entity, s *component.Sprite) {
	if w == nil || s == nil {
		return
	}
	w.Sprites().Set(e, s)
}

// GetSprite returns a sprite component, or nil.
func (w *World) GetSprite(e Entity) *component.Sprite {
	if w == nil {
		return nil
	}
	if s, ok := w.Sprites().Get(e).(*component.Sprite); ok {
		return s
	}
	return nil
}

// SetObject attaches an object tag component.
func (w *World) SetObject(e Entity, o *component.Object) {
	if w == nil || o == nil {
		return
	}
	w.Objects().Set(e, o)
}

// GetObject returns an object tag component, or nil.
func (w *World) GetObject(e Entity) *component.Object {
	if w == nil {
		return nil
	}
	if o, ok := w.Objects().Get(e).(*component.Object); ok {
		return o
	}
	return nil
}
