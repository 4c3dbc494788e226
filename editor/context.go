package editor

// Context carries the editor's mutable state. Everything a frame needs
// lives here instead of package globals.
type Context struct {
	Tool         Tool
	SelectedTile int
	PickerOpen   bool
	AtlasPath    string

	Camera  *Camera
	Regions RegionSet
}

func NewContext(viewW, viewH int) *Context {
	return &Context{
		Tool:   ToolDrawTile,
		Camera: NewCamera(viewW, viewH),
	}
}

// HandleClick runs the full click pipeline for one buffered click:
// occlusion test, screen to world mapping, grid snap, tool application.
// Occluded clicks are dropped before any world state changes.
func (c *Context) HandleClick(p *Placement, sx, sy int) bool {
	if c.Regions.Occludes(float64(sx), float64(sy)) {
		return false
	}
	pos := Snap(c.Camera.ScreenToWorld(sx, sy))
	p.Apply(c.Tool, pos, c.SelectedTile)
	return true
}
