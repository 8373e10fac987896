package world

import (
	"errors"
	"fmt"
)

// ErrAllocation is returned when the allocator cannot provide another room.
var ErrAllocation = errors.New("room allocation failed")

// Allocator hands out rooms and keeps count of the ones still alive.
// The zero value is ready to use and never runs out.
type Allocator struct {
	limit     int
	limited   bool
	live      int
	allocated int
	released  int

	onRelease func(*Room) // test hook
}

// NewAllocator creates an allocator without a room limit.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// NewLimitedAllocator creates an allocator that fails once n rooms are alive.
func NewLimitedAllocator(n int) *Allocator {
	if n < 0 {
		n = 0
	}
	return &Allocator{limit: n, limited: true}
}

// NewRoom creates a room with the given name and no exits.
// Names longer than MaxNameLen bytes are truncated.
func (a *Allocator) NewRoom(name string) (*Room, error) {
	if a.limited && a.live >= a.limit {
		return nil, fmt.Errorf("room %q: %w", name, ErrAllocation)
	}
	a.live++
	a.allocated++
	return &Room{Name: truncateName(name)}, nil
}

// Release returns a room to the allocator and detaches its children.
// Releasing a room a second time does nothing.
func (a *Allocator) Release(r *Room) {
	if r == nil || r.released {
		return
	}
	if a.onRelease != nil {
		a.onRelease(r)
	}
	r.Left, r.Right = nil, nil
	r.released = true
	a.live--
	a.released++
}

// Live returns the number of rooms allocated and not yet released.
func (a *Allocator) Live() int {
	return a.live
}

// Allocated returns the total number of successful allocations.
func (a *Allocator) Allocated() int {
	return a.allocated
}

// Released returns the total number of releases.
func (a *Allocator) Released() int {
	return a.released
}
