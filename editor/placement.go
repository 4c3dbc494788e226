package editor

import (
	"image/color"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/leveledit/ecs"
	"github.com/milk9111/leveledit/ecs/component"
)

// Visuals supplies the fixed colors for objects that do not draw from
// the tileset atlas.
type Visuals struct {
	MobColor    color.Color
	PlayerColor color.Color
}

// Placement turns tool applications into world mutations. It owns the
// single-player invariant.
type Placement struct {
	world     *ecs.World
	visuals   Visuals
	tileCount int
	player    ecs.Entity
}

func NewPlacement(w *ecs.World, visuals Visuals, tileCount int) *Placement {
	if tileCount < 1 {
		tileCount = 1
	}
	return &Placement{world: w, visuals: visuals, tileCount: tileCount}
}

// SetVisuals swaps the prefab colors, e.g. after a hot reload.
func (p *Placement) SetVisuals(v Visuals) {
	p.visuals = v
}

// World returns the backing ECS world.
func (p *Placement) World() *ecs.World {
	return p.world
}

// Apply executes one click of the given tool at a snapped world
// position. Draw tools always create; stacking several objects on one
// cell is allowed.
func (p *Placement) Apply(tool Tool, pos cp.Vector, selectedTile int) {
	switch tool {
	case ToolDrawTile:
		p.spawn(component.KindTile, pos, p.clampTile(selectedTile), nil)
	case ToolDrawHazard:
		p.spawn(component.KindHazard, pos, p.clampTile(selectedTile), nil)
	case ToolDrawMob:
		p.spawn(component.KindMob, pos, 0, p.visuals.MobColor)
	case ToolErase:
		p.eraseAt(pos)
	case ToolPlacePlayer:
		p.placePlayer(pos)
	}
}

// Player returns the current player entity, or an invalid handle when
// none is placed.
func (p *Placement) Player() ecs.Entity {
	if p.world.IsAlive(p.player) {
		return p.player
	}
	return 0
}

// Clear removes every placed object.
func (p *Placement) Clear() {
	entities := p.world.Sprites().Entities()
	doomed := make([]ecs.Entity, len(entities))
	copy(doomed, entities)
	for _, e := range doomed {
		p.world.DestroyEntity(e)
	}
	p.player = 0
}

// ObjectCount returns the number of placed objects.
func (p *Placement) ObjectCount() int {
	return p.world.Sprites().Len()
}

func (p *Placement) clampTile(idx int) int {
	if idx < 0 {
		return 0
	}
	if idx >= p.tileCount {
		return p.tileCount - 1
	}
	return idx
}

func (p *Placement) spawn(kind component.Kind, pos cp.Vector, tileIndex int, tint color.Color) ecs.Entity {
	e := p.world.CreateEntity()
	p.world.SetTransform(e, &component.Transform{Pos: pos, Z: ObjectZ})
	p.world.SetSprite(e, &component.Sprite{TileIndex: tileIndex, Tint: tint})
	p.world.SetObject(e, &component.Object{Kind: kind})
	return e
}

// eraseAt removes every sprite-bearing object whose position equals the
// snapped click position exactly, the player included.
func (p *Placement) eraseAt(pos cp.Vector) {
	var doomed []ecs.Entity
	for _, e := range p.world.Sprites().Entities() {
		tr := p.world.GetTransform(e)
		if tr != nil && tr.Pos.X == pos.X && tr.Pos.Y == pos.Y {
			doomed = append(doomed, e)
		}
	}
	for _, e := range doomed {
		if e == p.player {
			p.player = 0
		}
		p.world.DestroyEntity(e)
	}
}

// placePlayer relocates the existing player or creates one. At most one
// player exists at any time.
func (p *Placement) placePlayer(pos cp.Vector) {
	if !p.world.IsAlive(p.player) {
		p.player = p.findPlayer()
	}
	if p.world.IsAlive(p.player) {
		if tr := p.world.GetTransform(p.player); tr != nil {
			tr.Pos = pos
			return
		}
	}
	p.player = p.spawn(component.KindPlayer, pos, 0, p.visuals.PlayerColor)
}

// findPlayer rescans the world, e.g. after a level load bypassed the
// cached handle.
func (p *Placement) findPlayer() ecs.Entity {
	for _, e := range p.world.Objects().Entities() {
		if obj := p.world.GetObject(e); obj != nil && obj.Kind == component.KindPlayer {
			return e
		}
	}
	return 0
}
