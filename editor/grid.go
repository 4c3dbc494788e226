package editor

import (
	"math"

	"github.com/jakecoffman/cp"
)

// TileSize is the grid pitch in world pixels.
const TileSize = 24

const halfTile = TileSize / 2

// ObjectZ is the render depth shared by every placed object.
const ObjectZ = 1.0

// Snap maps a world position to the center of the grid cell containing
// it. Snapping a snapped position is a no-op.
func Snap(p cp.Vector) cp.Vector {
	return cp.Vector{X: snapAxis(p.X), Y: snapAxis(p.Y)}
}

func snapAxis(v float64) float64 {
	return math.Floor(v/TileSize)*TileSize + halfTile
}

// Cell returns the integer grid cell containing a world position.
func Cell(p cp.Vector) (int, int) {
	return int(math.Floor(p.X / TileSize)), int(math.Floor(p.Y / TileSize))
}
