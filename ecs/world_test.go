package ecs

import (
	"testing"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/leveledit/ecs/component"
)

func TestEntityLifecycle(t *testing.T) {
	w := NewWorld()

	a := w.CreateEntity()
	b := w.CreateEntity()
	if a == b {
		t.Fatalf("expected distinct entities, got %v twice", a)
	}
	if !w.IsAlive(a) || !w.IsAlive(b) {
		t.Fatalf("freshly created entities should be alive")
	}

	w.DestroyEntity(a)
	if w.IsAlive(a) {
		t.Fatalf("destroyed entity %v still alive", a)
	}

	// The slot is recycled with a bumped generation, so the old handle
	// must stay dead.
	c := w.CreateEntity()
	if !w.IsAlive(c) {
		t.Fatalf("recycled entity %v should be alive", c)
	}
	if w.IsAlive(a) {
		t.Fatalf("stale handle %v revived by recycling", a)
	}
}

func TestDestroyEntityRemovesComponents(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()
	w.SetTransform(e, &component.Transform{Pos: cp.Vector{X: 12, Y: 36}, Z: 1})
	w.SetSprite(e, &component.Sprite{TileIndex: 3})
	w.SetObject(e, &component.Object{Kind: component.KindTile})

	w.DestroyEntity(e)

	if w.GetTransform(e) != nil || w.GetSprite(e) != nil || w.GetObject(e) != nil {
		t.Fatalf("components survived entity destruction")
	}
	if got := w.Sprites().Len(); got != 0 {
		t.Fatalf("sprite storage len = %d, want 0", got)
	}
}

func TestSparseSet(t *testing.T) {
	w := NewWorld()
	e1 := w.CreateEntity()
	e2 := w.CreateEntity()
	e3 := w.CreateEntity()

	s := &SparseSet{}
	s.Set(e1, "one")
	s.Set(e2, "two")
	s.Set(e3, "three")

	tests := []struct {
		name   string
		entity Entity
		want   any
	}{
		{"first", e1, "one"},
		{"second", e2, "two"},
		{"third", e3, "three"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := s.Get(tt.entity); got != tt.want {
				t.Fatalf("Get(%v) = %v, want %v", tt.entity, got, tt.want)
			}
		})
	}

	// Swap-remove must keep the remaining components reachable.
	s.Remove(e1)
	if s.Has(e1) {
		t.Fatalf("removed entity still present")
	}
	if got := s.Get(e3); got != "three" {
		t.Fatalf("Get after swap-remove = %v, want three", got)
	}
	if s.Len() != 2 {
		t.Fatalf("Len = %d, want 2", s.Len())
	}

	// Overwrite keeps a single dense slot.
	s.Set(e2, "TWO")
	if got := s.Get(e2); got != "TWO" {
		t.Fatalf("overwrite Get = %v, want TWO", got)
	}
	if s.Len() != 2 {
		t.Fatalf("Len after overwrite = %d, want 2", s.Len())
	}
}

func TestSparseSetStaleHandleMisses(t *testing.T) {
	w := NewWorld()
	e := w.CreateEntity()

	s := &SparseSet{}
	s.Set(e, "val")
	w.DestroyEntity(e)

	recycled := w.CreateEntity()
	if s.Has(recycled) {
		t.Fatalf("recycled handle %v matched stale dense slot", recycled)
	}
}

func TestEventQueueFIFO(t *testing.T) {
	var q EventQueue
	q.Push(Event{Type: EventClick, Data: ClickEvent{X: 1, Y: 2}})
	q.Push(Event{Type: EventClick, Data: ClickEvent{X: 3, Y: 4}})

	got := q.Drain()
	if len(got) != 2 {
		t.Fatalf("Drain returned %d events, want 2", len(got))
	}
	first := got[0].Data.(ClickEvent)
	second := got[1].Data.(ClickEvent)
	if first.X != 1 || second.X != 3 {
		t.Fatalf("events out of order: %+v then %+v", first, second)
	}
	if again := q.Drain(); again != nil {
		t.Fatalf("second Drain should be empty, got %d", len(again))
	}
}
