package component

import "github.com/jakecoffman/cp"

// Transform is an object's position in world space. Z orders rendering;
// placed grid objects all share the same layer.
type Transform struct {
	Pos cp.Vector
	Z   float64
}
