package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"os"

	ebuiinput "github.com/ebitenui/ebitenui/input"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.design/x/clipboard"

	"github.com/milk9111/leveledit/assets"
	"github.com/milk9111/leveledit/ecs"
	"github.com/milk9111/leveledit/editor"
	"github.com/milk9111/leveledit/levels"
	"github.com/milk9111/leveledit/prefabs"
)

const (
	atlasCols = 4
	atlasRows = 4

	panSpeed = 300.0 // world pixels per second
)

type appState int

const (
	stateLoadAssets appState = iota
	stateEdit
)

// Game is the editor shell: app state machine, input routing, and the
// glue between the UI, the ECS world, and persistence.
type Game struct {
	state appState
	entry editor.TextEntry

	width  int
	height int

	ctx       *editor.Context
	world     *ecs.World
	placement *editor.Placement
	atlas     *assets.Atlas
	ui        *EditorUI

	levelPath   string
	watcher     *prefabs.Watcher
	clipboardOK bool

	marker *ebiten.Image

	// middle-drag pan state
	dragging     bool
	dragX, dragY int

	statusMsg    string
	statusFrames int
}

func NewGame(width, height int, levelPath, atlasPath string) *Game {
	ctx := editor.NewContext(width, height)
	ctx.Camera.CenterOn(float64(width)/2, float64(height)/2)

	world := ecs.NewWorld()
	placement := editor.NewPlacement(world, loadVisuals(), atlasCols*atlasRows)
	world.AddSystem(&editor.ClickSystem{Ctx: ctx, Engine: placement})

	g := &Game{
		state:     stateLoadAssets,
		width:     width,
		height:    height,
		ctx:       ctx,
		world:     world,
		placement: placement,
		levelPath: levelPath,
	}

	if w, err := prefabs.NewWatcher("prefabs"); err != nil {
		log.Printf("prefab watcher disabled: %v", err)
	} else {
		g.watcher = w
	}

	if atlasPath != "" {
		// Atlas given up front, skip the prompt.
		g.commitAtlasPath(atlasPath)
	}
	return g
}

// Close releases background resources.
func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func loadVisuals() editor.Visuals {
	v := editor.Visuals{
		MobColor:    color.RGBA{R: 181, G: 19, B: 8, A: 255},
		PlayerColor: color.White,
	}
	if spec, err := prefabs.LoadMobSpec(); err != nil {
		log.Printf("mob prefab: %v", err)
	} else {
		v.MobColor = spec.RGBA(v.MobColor)
	}
	if spec, err := prefabs.LoadPlayerSpec(); err != nil {
		log.Printf("player prefab: %v", err)
	} else {
		v.PlayerColor = spec.RGBA(v.PlayerColor)
	}
	return v
}

func (g *Game) Update() error {
	g.pollWatcher()

	switch g.state {
	case stateLoadAssets:
		g.updateLoadAssets()
	case stateEdit:
		g.updateEdit()
	}

	if g.statusFrames > 0 {
		g.statusFrames--
	}
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("prefab changed: %s", name)
			g.placement.SetVisuals(loadVisuals())
		case err := <-g.watcher.Errors:
			if err != nil {
				log.Printf("prefab watcher: %v", err)
			}
		default:
			return
		}
	}
}

func (g *Game) updateLoadAssets() {
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if k == ebiten.KeyEnter {
			g.commitAtlasPath(g.entry.String())
			return
		}
		g.entry.Feed(k, shift)
	}
}

// commitAtlasPath loads the tileset and moves to editing. The
// transition is one way; a bad path falls back to placeholder tiles so
// the editor stays usable.
func (g *Game) commitAtlasPath(path string) {
	atlas, err := assets.LoadAtlas(path, editor.TileSize, atlasCols, atlasRows)
	if err != nil {
		log.Printf("tileset %q: %v, using placeholder tiles", path, err)
		atlas = assets.FallbackAtlas(editor.TileSize, atlasCols, atlasRows)
	}
	g.ctx.AtlasPath = path
	g.enterEdit(atlas)
}

func (g *Game) enterEdit(atlas *assets.Atlas) {
	g.atlas = atlas
	g.marker = ebiten.NewImage(editor.TileSize, editor.TileSize)
	g.marker.Fill(color.White)

	g.ui = BuildEditorUI(atlas,
		func(tool editor.Tool) { g.ctx.Tool = tool },
		func(tileIndex int) { g.ctx.SelectedTile = tileIndex },
	)

	if err := clipboard.Init(); err != nil {
		log.Printf("clipboard unavailable: %v", err)
	} else {
		g.clipboardOK = true
	}

	if g.levelPath != "" {
		if _, err := os.Stat(g.levelPath); err == nil {
			g.loadLevel()
		}
	}

	g.state = stateEdit
}

func (g *Game) updateEdit() {
	g.ui.UI.Update()
	g.ui.CollectRegions(&g.ctx.Regions)

	// Buffer clicks first, then drain in order through the click
	// pipeline. Held buttons paint continuously. Clicks over UI are
	// dropped twice: the hover gate here and the region test in the
	// pipeline.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && !ebuiinput.UIHovered {
		x, y := ebiten.CursorPosition()
		g.world.Events().Push(ecs.Event{Type: ecs.EventClick, Data: ecs.ClickEvent{X: x, Y: y}})
	}
	g.world.Update()

	g.handleCamera()
	g.handleShortcuts()
}

func (g *Game) handleCamera() {
	dt := 1.0 / float64(ebiten.TPS())
	if ebiten.IsKeyPressed(ebiten.KeyW) {
		g.ctx.Camera.Pan(0, -panSpeed*dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) && !ebiten.IsKeyPressed(ebiten.KeyControl) {
		g.ctx.Camera.Pan(0, panSpeed*dt)
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) {
		g.ctx.Camera.Pan(-panSpeed*dt, 0)
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) {
		g.ctx.Camera.Pan(panSpeed*dt, 0)
	}

	if _, wy := ebiten.Wheel(); wy != 0 {
		x, y := ebiten.CursorPosition()
		g.ctx.Camera.ZoomAt(math.Pow(1.1, wy), x, y)
	}

	// Middle-drag pan.
	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle) {
		if g.dragging {
			zoom := g.ctx.Camera.Zoom()
			g.ctx.Camera.Pan(float64(g.dragX-x)/zoom, float64(g.dragY-y)/zoom)
		}
		g.dragging = true
		g.dragX, g.dragY = x, y
	} else {
		g.dragging = false
	}
}

func (g *Game) handleShortcuts() {
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)

	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.ui.TogglePicker()
		g.ctx.PickerOpen = g.ui.PickerVisible()
	}
	if ctrl && inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.placement.Clear()
		g.setStatus("canvas cleared")
	}
	if ctrl && !shift && inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.saveLevel()
	}
	if ctrl && shift && inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyLevelToClipboard()
	}
}

func (g *Game) objectCounts() map[string]int {
	counts := map[string]int{}
	for _, e := range g.world.Objects().Entities() {
		if obj := g.world.GetObject(e); obj != nil {
			counts[obj.Kind.String()+"s"]++
		}
	}
	return counts
}

func (g *Game) saveLevel() {
	lvl := levels.FromWorld(g.world, g.ctx.AtlasPath)
	if err := levels.Save(g.levelPath, lvl); err != nil {
		log.Printf("save: %v", err)
		g.setStatus("save failed")
		return
	}

	warnings, err := prefabs.RunLevelCheck(g.objectCounts())
	if err != nil {
		log.Printf("level check: %v", err)
	}
	for _, w := range warnings {
		log.Printf("level check: %s", w)
	}
	if len(warnings) > 0 {
		g.setStatus(fmt.Sprintf("saved %s (%d warnings)", g.levelPath, len(warnings)))
	} else {
		g.setStatus("saved " + g.levelPath)
	}
}

func (g *Game) loadLevel() {
	lvl, err := levels.Load(g.levelPath)
	if err != nil {
		log.Printf("load: %v", err)
		return
	}
	if err := levels.Apply(lvl, g.placement); err != nil {
		log.Printf("load: %v", err)
		return
	}
	log.Printf("loaded %d objects from %s", len(lvl.Objects), g.levelPath)
}

func (g *Game) copyLevelToClipboard() {
	if !g.clipboardOK {
		g.setStatus("clipboard unavailable")
		return
	}
	data, err := levels.Marshal(levels.FromWorld(g.world, g.ctx.AtlasPath))
	if err != nil {
		log.Printf("clipboard: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	g.setStatus("level copied to clipboard")
}

func (g *Game) setStatus(msg string) {
	g.statusMsg = msg
	g.statusFrames = 2 * ebiten.TPS()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
