package editor

import (
	"image"

	"github.com/jakecoffman/cp"
)

// RegionSet tracks the screen areas covered by UI this frame. Clicks
// landing inside any region never reach the canvas. The set is rebuilt
// every frame from the live widget rectangles.
type RegionSet struct {
	boxes []cp.BB
}

// Reset clears all regions, keeping the backing array.
func (r *RegionSet) Reset() {
	r.boxes = r.boxes[:0]
}

// Add registers an axis-aligned box. BB fields are screen pixels with
// B <= T.
func (r *RegionSet) Add(bb cp.BB) {
	r.boxes = append(r.boxes, bb)
}

// AddRect registers a widget rectangle.
func (r *RegionSet) AddRect(rect image.Rectangle) {
	if rect.Empty() {
		return
	}
	r.Add(cp.BB{
		L: float64(rect.Min.X),
		B: float64(rect.Min.Y),
		R: float64(rect.Max.X),
		T: float64(rect.Max.Y),
	})
}

// AddCentered registers a box from its center and full size.
func (r *RegionSet) AddCentered(center, size cp.Vector) {
	r.Add(cp.BB{
		L: center.X - size.X/2,
		B: center.Y - size.Y/2,
		R: center.X + size.X/2,
		T: center.Y + size.Y/2,
	})
}

// Occludes reports whether the screen point lands inside any region.
// Bounds are inclusive on all four edges.
func (r *RegionSet) Occludes(x, y float64) bool {
	v := cp.Vector{X: x, Y: y}
	for _, bb := range r.boxes {
		if bb.ContainsVect(v) {
			return true
		}
	}
	return false
}

// Len returns the number of registered regions.
func (r *RegionSet) Len() int {
	return len(r.boxes)
}
