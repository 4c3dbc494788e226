package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/leveledit/ecs/component"
	"github.com/milk9111/leveledit/editor"
)

var backgroundColor = color.RGBA{R: 24, G: 24, B: 32, A: 255}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	switch g.state {
	case stateLoadAssets:
		g.drawPrompt(screen)
	case stateEdit:
		g.drawWorld(screen)
		g.drawHover(screen)
		g.ui.UI.Draw(screen)
		g.drawOverlay(screen)
	}
}

// drawPrompt renders the atlas path input line.
func (g *Game) drawPrompt(screen *ebiten.Image) {
	sw := screen.Bounds().Dx()
	sh := screen.Bounds().Dy()

	bar := ebiten.NewImage(sw, 48)
	bar.Fill(color.RGBA{A: 0x88})
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(sh/2-24))
	screen.DrawImage(bar, op)

	ebitenutil.DebugPrintAt(screen, "Tileset path: "+g.entry.String()+"_", 16, sh/2-8)
	ebitenutil.DebugPrintAt(screen, "lowercase letters, / _ . allowed; Enter to confirm", 16, sh/2+24)
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	zoom := g.ctx.Camera.Zoom()
	for _, e := range g.world.Sprites().Entities() {
		tr := g.world.GetTransform(e)
		sp := g.world.GetSprite(e)
		obj := g.world.GetObject(e)
		if tr == nil || sp == nil || obj == nil {
			continue
		}

		// Transforms hold cell centers; images draw from the top-left.
		topLeft := cp.Vector{X: tr.Pos.X - editor.TileSize/2, Y: tr.Pos.Y - editor.TileSize/2}
		sx, sy := g.ctx.Camera.WorldToScreen(topLeft)
		if sx < -editor.TileSize*zoom || sy < -editor.TileSize*zoom ||
			sx > float64(g.width) || sy > float64(g.height) {
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(zoom, zoom)
		op.GeoM.Translate(sx, sy)

		if sp.Tint != nil {
			r, gc, b, a := sp.Tint.RGBA()
			op.ColorScale.Scale(float32(r)/0xffff, float32(gc)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
			screen.DrawImage(g.marker, op)
			continue
		}

		if obj.Kind == component.KindHazard {
			op.ColorScale.Scale(1, 0.55, 0.45, 1)
		}
		screen.DrawImage(g.atlas.Tile(sp.TileIndex), op)
	}
}

// drawHover outlines the cell a canvas click would hit.
func (g *Game) drawHover(screen *ebiten.Image) {
	x, y := ebiten.CursorPosition()
	if g.ctx.Regions.Occludes(float64(x), float64(y)) {
		return
	}
	cell := editor.Snap(g.ctx.Camera.ScreenToWorld(x, y))
	zoom := g.ctx.Camera.Zoom()
	sx, sy := g.ctx.Camera.WorldToScreen(cp.Vector{X: cell.X - editor.TileSize/2, Y: cell.Y - editor.TileSize/2})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(zoom, zoom)
	op.GeoM.Translate(sx, sy)
	op.ColorScale.Scale(1, 1, 1, 0.25)
	screen.DrawImage(g.marker, op)
}

func (g *Game) drawOverlay(screen *ebiten.Image) {
	msg := fmt.Sprintf("FPS: %0.1f | tool: %s | tile: %d | objects: %d",
		ebiten.ActualFPS(), g.ctx.Tool, g.ctx.SelectedTile, g.placement.ObjectCount())
	ebitenutil.DebugPrint(screen, msg)

	if g.statusFrames > 0 && g.statusMsg != "" {
		ebitenutil.DebugPrintAt(screen, g.statusMsg, 0, g.height-16)
	}
}
