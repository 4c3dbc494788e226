package editor

import "github.com/milk9111/leveledit/ecs"

// ClickSystem drains the clicks buffered during input handling and runs
// each through the click pipeline, in arrival order.
type ClickSystem struct {
	Ctx    *Context
	Engine *Placement
}

func (s *ClickSystem) Update(w *ecs.World) {
	for _, evt := range w.Events().Drain() {
		if evt.Type != ecs.EventClick {
			continue
		}
		click, ok := evt.Data.(ecs.ClickEvent)
		if !ok {
			continue
		}
		s.Ctx.HandleClick(s.Engine, click.X, click.Y)
	}
}
