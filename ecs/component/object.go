package component

// Kind tags what a placed object is.
type Kind int

const (
	KindTile Kind = iota
	KindHazard
	KindMob
	KindPlayer
)

func (k Kind) String() string {
	switch k {
	case KindTile:
		return "tile"
	case KindHazard:
		return "hazard"
	case KindMob:
		return "mob"
	case KindPlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Object marks an entity as a placed level object.
type Object struct {
	Kind Kind
}
