package editor

// Tool selects what a canvas click does.
type Tool int

const (
	ToolDrawTile Tool = iota
	ToolDrawHazard
	ToolDrawMob
	ToolErase
	ToolPlacePlayer
)

func (t Tool) String() string {
	switch t {
	case ToolDrawTile:
		return "tile"
	case ToolDrawHazard:
		return "hazard"
	case ToolDrawMob:
		return "mob"
	case ToolErase:
		return "erase"
	case ToolPlacePlayer:
		return "player"
	default:
		return "unknown"
	}
}
