package editor

import (
	"image/color"
	"testing"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/leveledit/ecs"
	"github.com/milk9111/leveledit/ecs/component"
)

func newTestPlacement() *Placement {
	return NewPlacement(ecs.NewWorld(), Visuals{
		MobColor:    color.RGBA{R: 181, G: 19, B: 8, A: 255},
		PlayerColor: color.White,
	}, 16)
}

func TestApplyDrawTile(t *testing.T) {
	p := newTestPlacement()
	pos := Snap(cp.Vector{X: 48, Y: 72})

	p.Apply(ToolDrawTile, pos, 5)

	if p.ObjectCount() != 1 {
		t.Fatalf("object count = %d, want 1", p.ObjectCount())
	}
	e := p.World().Sprites().Entities()[0]
	tr := p.World().GetTransform(e)
	if tr.Pos.X != 60 || tr.Pos.Y != 84 {
		t.Fatalf("tile at %v, want (60,84)", tr.Pos)
	}
	if tr.Z != ObjectZ {
		t.Fatalf("tile z = %v, want %v", tr.Z, ObjectZ)
	}
	sp := p.World().GetSprite(e)
	if sp.TileIndex != 5 {
		t.Fatalf("tile index = %d, want 5", sp.TileIndex)
	}
	obj := p.World().GetObject(e)
	if obj.Kind != component.KindTile {
		t.Fatalf("kind = %v, want tile", obj.Kind)
	}
}

func TestDrawToolsStack(t *testing.T) {
	p := newTestPlacement()
	pos := Snap(cp.Vector{X: 60, Y: 84})

	p.Apply(ToolDrawTile, pos, 1)
	p.Apply(ToolDrawHazard, pos, 2)
	p.Apply(ToolDrawMob, pos, 0)

	if p.ObjectCount() != 3 {
		t.Fatalf("object count = %d, want 3 stacked objects", p.ObjectCount())
	}
}

func TestEraseRemovesAllAtPosition(t *testing.T) {
	p := newTestPlacement()
	pos := Snap(cp.Vector{X: 60, Y: 84})
	other := Snap(cp.Vector{X: 0, Y: 0})

	p.Apply(ToolDrawTile, pos, 1)
	p.Apply(ToolDrawHazard, pos, 2)
	p.Apply(ToolDrawTile, other, 3)

	p.Apply(ToolErase, pos, 0)

	if p.ObjectCount() != 1 {
		t.Fatalf("object count = %d, want only the untouched cell", p.ObjectCount())
	}
	e := p.World().Sprites().Entities()[0]
	if tr := p.World().GetTransform(e); tr.Pos != other {
		t.Fatalf("survivor at %v, want %v", tr.Pos, other)
	}
}

func TestPlaceThenEraseLeavesNothing(t *testing.T) {
	p := newTestPlacement()
	pos := Snap(cp.Vector{X: 100, Y: 100})

	p.Apply(ToolDrawTile, pos, 0)
	p.Apply(ToolErase, pos, 0)

	if p.ObjectCount() != 0 {
		t.Fatalf("object count = %d, want 0", p.ObjectCount())
	}
}

func TestEraseEmptyCellIsNoop(t *testing.T) {
	p := newTestPlacement()
	p.Apply(ToolDrawTile, Snap(cp.Vector{X: 0, Y: 0}), 0)

	p.Apply(ToolErase, Snap(cp.Vector{X: 240, Y: 240}), 0)

	if p.ObjectCount() != 1 {
		t.Fatalf("erase on empty cell mutated the world")
	}
}

func TestPlacePlayerRelocates(t *testing.T) {
	p := newTestPlacement()
	first := Snap(cp.Vector{X: 12, Y: 12})
	second := Snap(cp.Vector{X: 204, Y: 156})

	p.Apply(ToolPlacePlayer, first, 0)
	p.Apply(ToolPlacePlayer, second, 0)

	if p.ObjectCount() != 1 {
		t.Fatalf("object count = %d, want exactly one player", p.ObjectCount())
	}
	player := p.Player()
	if !player.Valid() {
		t.Fatalf("no player after placement")
	}
	if tr := p.World().GetTransform(player); tr.Pos != second {
		t.Fatalf("player at %v, want %v", tr.Pos, second)
	}
}

func TestErasedPlayerCanBeReplaced(t *testing.T) {
	p := newTestPlacement()
	pos := Snap(cp.Vector{X: 36, Y: 36})

	p.Apply(ToolPlacePlayer, pos, 0)
	p.Apply(ToolErase, pos, 0)
	if p.Player().Valid() {
		t.Fatalf("player handle should clear on erase")
	}

	next := Snap(cp.Vector{X: 84, Y: 84})
	p.Apply(ToolPlacePlayer, next, 0)
	if p.ObjectCount() != 1 {
		t.Fatalf("object count = %d, want 1", p.ObjectCount())
	}
}

func TestSelectedTileClamped(t *testing.T) {
	p := newTestPlacement()
	pos := Snap(cp.Vector{X: 0, Y: 0})

	p.Apply(ToolDrawTile, pos, 99)
	p.Apply(ToolDrawTile, pos, -3)

	entities := p.World().Sprites().Entities()
	if len(entities) != 2 {
		t.Fatalf("object count = %d, want 2", len(entities))
	}
	for _, e := range entities {
		idx := p.World().GetSprite(e).TileIndex
		if idx < 0 || idx > 15 {
			t.Fatalf("tile index %d escaped the atlas range", idx)
		}
	}
}

func TestClearRemovesEverything(t *testing.T) {
	p := newTestPlacement()
	p.Apply(ToolDrawTile, Snap(cp.Vector{X: 0, Y: 0}), 0)
	p.Apply(ToolDrawMob, Snap(cp.Vector{X: 24, Y: 0}), 0)
	p.Apply(ToolPlacePlayer, Snap(cp.Vector{X: 48, Y: 0}), 0)

	p.Clear()

	if p.ObjectCount() != 0 {
		t.Fatalf("object count after Clear = %d, want 0", p.ObjectCount())
	}
	if p.Player().Valid() {
		t.Fatalf("player handle should clear with the canvas")
	}
}

func TestOccludedClickMutatesNothing(t *testing.T) {
	p := newTestPlacement()
	ctx := NewContext(800, 600)
	ctx.Camera.CenterOn(400, 300)
	ctx.Regions.AddCentered(cp.Vector{X: 100, Y: 100}, cp.Vector{X: 200, Y: 200})

	if ctx.HandleClick(p, 100, 100) {
		t.Fatalf("occluded click reported as applied")
	}
	if p.ObjectCount() != 0 {
		t.Fatalf("occluded click mutated the world")
	}

	// The same click outside the region lands on the canvas.
	if !ctx.HandleClick(p, 400, 400) {
		t.Fatalf("clear click should apply")
	}
	if p.ObjectCount() != 1 {
		t.Fatalf("object count = %d, want 1", p.ObjectCount())
	}
}

func TestHandleClickSnapsToCell(t *testing.T) {
	p := newTestPlacement()
	ctx := NewContext(800, 600)
	ctx.Camera.CenterOn(400, 300)
	ctx.SelectedTile = 5

	// Screen (48,72) maps straight to world (48,72) with this camera.
	ctx.HandleClick(p, 48, 72)

	e := p.World().Sprites().Entities()[0]
	tr := p.World().GetTransform(e)
	if tr.Pos.X != 60 || tr.Pos.Y != 84 {
		t.Fatalf("placed at %v, want (60,84)", tr.Pos)
	}
	if idx := p.World().GetSprite(e).TileIndex; idx != 5 {
		t.Fatalf("tile index = %d, want 5", idx)
	}
}
