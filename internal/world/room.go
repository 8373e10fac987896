// Package world provides the mansion map: rooms, their allocation and teardown.
package world

// MaxNameLen is the longest room name, in bytes, a Room keeps.
const MaxNameLen = 49

// Direction selects one of a room's two exits.
type Direction int

const (
	// Left is the "esquerda" exit.
	Left Direction = iota
	// Right is the "direita" exit.
	Right
)

// String returns the direction name shown to the player.
func (d Direction) String() string {
	switch d {
	case Left:
		return "esquerda"
	case Right:
		return "direita"
	default:
		return "unknown"
	}
}

// Room represents a single room of the mansion.
// A room exclusively owns its children; a nil child means there is no path that way.
type Room struct {
	Name  string
	Color string // Hex color used by the screen renderer, may be empty
	Left  *Room
	Right *Room

	released bool
}

// IsLeaf returns true if the room has no exits.
func (r *Room) IsLeaf() bool {
	return r.Left == nil && r.Right == nil
}

// Child returns the room in the given direction, or nil.
func (r *Room) Child(d Direction) *Room {
	switch d {
	case Left:
		return r.Left
	case Right:
		return r.Right
	default:
		return nil
	}
}

// Walk visits r and its descendants pre-order, passing each room's depth
// (the starting room has depth 0).
func Walk(r *Room, fn func(room *Room, depth int)) {
	walk(r, 0, fn)
}

func walk(r *Room, depth int, fn func(*Room, int)) {
	if r == nil {
		return
	}
	fn(r, depth)
	walk(r.Left, depth+1, fn)
	walk(r.Right, depth+1, fn)
}

// truncateName keeps the first MaxNameLen bytes of name. The cut may fall
// inside a multibyte sequence; renderers clean that up for display.
func truncateName(name string) string {
	if len(name) <= MaxNameLen {
		return name
	}
	return name[:MaxNameLen]
}
