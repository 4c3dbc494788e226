package levels

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/jakecoffman/cp"

	"github.com/milk9111/leveledit/ecs"
	"github.com/milk9111/leveledit/ecs/component"
	"github.com/milk9111/leveledit/editor"
)

// Level is the on-disk shape of an edited level.
type Level struct {
	TileSize int      `json:"tile_size"`
	Atlas    string   `json:"atlas,omitempty"`
	Objects  []Object `json:"objects"`
}

// Object is one placed object. Positions are snapped world coordinates
// (cell centers).
type Object struct {
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Tile int     `json:"tile,omitempty"`
}

// FromWorld captures every placed object into a serializable level.
// Objects are ordered by position so repeated saves diff cleanly.
func FromWorld(w *ecs.World, atlasPath string) *Level {
	lvl := &Level{TileSize: editor.TileSize, Atlas: atlasPath}
	for _, e := range w.Sprites().Entities() {
		tr := w.GetTransform(e)
		obj := w.GetObject(e)
		if tr == nil || obj == nil {
			continue
		}
		o := Object{Kind: obj.Kind.String(), X: tr.Pos.X, Y: tr.Pos.Y}
		if sp := w.GetSprite(e); sp != nil {
			o.Tile = sp.TileIndex
		}
		lvl.Objects = append(lvl.Objects, o)
	}
	sort.SliceStable(lvl.Objects, func(i, j int) bool {
		a, b := lvl.Objects[i], lvl.Objects[j]
		if a.Y != b.Y {
			return a.Y < b.Y
		}
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Kind < b.Kind
	})
	return lvl
}

var kinds = map[string]component.Kind{
	"tile":   component.KindTile,
	"hazard": component.KindHazard,
	"mob":    component.KindMob,
	"player": component.KindPlayer,
}

var kindTools = map[component.Kind]editor.Tool{
	component.KindTile:   editor.ToolDrawTile,
	component.KindHazard: editor.ToolDrawHazard,
	component.KindMob:    editor.ToolDrawMob,
	component.KindPlayer: editor.ToolPlacePlayer,
}

// Apply replays a level's objects into the world through the placement
// engine, so load-time objects obey the same rules as clicks.
func Apply(lvl *Level, p *editor.Placement) error {
	for i, o := range lvl.Objects {
		kind, ok := kinds[o.Kind]
		if !ok {
			return fmt.Errorf("levels: object %d has unknown kind %q", i, o.Kind)
		}
		pos := editor.Snap(cp.Vector{X: o.X, Y: o.Y})
		p.Apply(kindTools[kind], pos, o.Tile)
	}
	return nil
}

// Save writes the level as indented JSON, creating parent directories
// as needed.
func Save(path string, lvl *Level) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("levels: mkdir for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("levels: create %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(lvl); err != nil {
		return fmt.Errorf("levels: encode %s: %w", path, err)
	}
	return nil
}

// Load reads a level written by Save.
func Load(path string) (*Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("levels: read %s: %w", path, err)
	}
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("levels: unmarshal %s: %w", path, err)
	}
	return &lvl, nil
}

// Marshal returns the level as indented JSON, e.g. for the clipboard.
func Marshal(lvl *Level) ([]byte, error) {
	data, err := json.MarshalIndent(lvl, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("levels: marshal: %w", err)
	}
	return data, nil
}
