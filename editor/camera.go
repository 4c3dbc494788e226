package editor

import "github.com/jakecoffman/cp"

const (
	minZoom = 0.25
	maxZoom = 8.0
)

// Camera maps between screen pixels and world coordinates. Position is
// the world point at the center of the view.
type Camera struct {
	posX, posY   float64
	zoom         float64
	viewW, viewH int
}

func NewCamera(viewW, viewH int) *Camera {
	return &Camera{zoom: 1, viewW: viewW, viewH: viewH}
}

// SetViewSize updates the screen viewport dimensions.
func (c *Camera) SetViewSize(w, h int) {
	c.viewW = w
	c.viewH = h
}

func (c *Camera) Zoom() float64 {
	return c.zoom
}

// ViewTopLeft returns the world coordinates of the screen's top-left
// corner.
func (c *Camera) ViewTopLeft() (float64, float64) {
	return c.posX - float64(c.viewW)/2/c.zoom, c.posY - float64(c.viewH)/2/c.zoom
}

// Pan moves the camera center by a world-space delta.
func (c *Camera) Pan(dx, dy float64) {
	c.posX += dx
	c.posY += dy
}

// CenterOn places the camera center at a world position.
func (c *Camera) CenterOn(x, y float64) {
	c.posX = x
	c.posY = y
}

// ZoomAt multiplies the zoom by factor, keeping the world point under
// the screen position (sx, sy) fixed.
func (c *Camera) ZoomAt(factor float64, sx, sy int) {
	next := c.zoom * factor
	if next < minZoom {
		next = minZoom
	}
	if next > maxZoom {
		next = maxZoom
	}
	if next == c.zoom {
		return
	}
	anchor := c.ScreenToWorld(sx, sy)
	c.zoom = next
	after := c.ScreenToWorld(sx, sy)
	c.posX += anchor.X - after.X
	c.posY += anchor.Y - after.Y
}

// ScreenToWorld converts a screen position to world coordinates. A
// position outside the viewport cannot be resolved and falls back to
// the world origin.
func (c *Camera) ScreenToWorld(sx, sy int) cp.Vector {
	if sx < 0 || sy < 0 || sx >= c.viewW || sy >= c.viewH {
		return cp.Vector{}
	}
	tlx, tly := c.ViewTopLeft()
	return cp.Vector{
		X: tlx + float64(sx)/c.zoom,
		Y: tly + float64(sy)/c.zoom,
	}
}

// WorldToScreen converts a world position to screen pixels.
func (c *Camera) WorldToScreen(p cp.Vector) (float64, float64) {
	tlx, tly := c.ViewTopLeft()
	return (p.X - tlx) * c.zoom, (p.Y - tly) * c.zoom
}
