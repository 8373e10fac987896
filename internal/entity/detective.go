// Package entity provides the player-controlled detective.
package entity

import "github.com/samdwyer/detectivequest/internal/world"

// Detective represents the player walking through the mansion.
// The detective only ever moves forward; the path is never rewound.
type Detective struct {
	Room   *world.Room   // Current position
	Path   []*world.Room // Every room visited, starting room first
	Symbol rune          // Display symbol on the screen map
}

// NewDetective creates a detective standing in the given room.
func NewDetective(start *world.Room) *Detective {
	d := &Detective{Symbol: '@'}
	if start != nil {
		d.Room = start
		d.Path = []*world.Room{start}
	}
	return d
}

// MoveTo places the detective in room and records it on the path.
func (d *Detective) MoveTo(room *world.Room) {
	d.Room = room
	d.Path = append(d.Path, room)
}

// Steps returns the number of moves made since the start.
func (d *Detective) Steps() int {
	if len(d.Path) == 0 {
		return 0
	}
	return len(d.Path) - 1
}

// Trail returns the names of the visited rooms in order.
func (d *Detective) Trail() []string {
	names := make([]string, len(d.Path))
	for i, r := range d.Path {
		names[i] = r.Name
	}
	return names
}
