package component

import "image/color"

// Sprite describes how an object is drawn. TileIndex selects a cell of
// the tileset atlas. A non-nil Tint overrides the atlas and renders the
// object as a flat colored quad (mobs and the player marker).
type Sprite struct {
	TileIndex int
	Tint      color.Color
}
