package world

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/detectivequest/internal/gamedata"
	"github.com/samdwyer/detectivequest/internal/telemetry"
)

// Mansion holds the root of the room tree and the allocator its rooms came from.
type Mansion struct {
	Root   *Room
	Pruned []error // Branches dropped because a room could not be allocated

	alloc *Allocator
}

// pending is a room whose exits have not been attached yet.
type pending struct {
	room *Room
	def  *gamedata.RoomDef
}

// BuildDefault builds the mansion described by the embedded layout.
func BuildDefault(ctx context.Context, alloc *Allocator) (*Mansion, error) {
	layout, err := gamedata.LoadLayout()
	if err != nil {
		return nil, fmt.Errorf("failed to load mansion layout: %w", err)
	}
	return Build(ctx, alloc, layout)
}

// Build creates the room tree for layout, one level at a time.
// A room whose allocation fails is left out together with everything below it;
// only a failure to allocate the root is an error.
func Build(ctx context.Context, alloc *Allocator, layout gamedata.LayoutDef) (*Mansion, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "mansion.build")
	defer span.End()

	startTime := time.Now()

	root, err := alloc.NewRoom(layout.Root.Name)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "root allocation failed")
		return nil, fmt.Errorf("failed to build mansion: %w", err)
	}
	root.Color = layout.Root.Color

	m := &Mansion{Root: root, alloc: alloc}

	queue := []pending{{room: root, def: &layout.Root}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]

		p.room.Left = m.place(span, p.def.Left, &queue)
		p.room.Right = m.place(span, p.def.Right, &queue)
	}

	span.SetAttributes(
		attribute.String("mansion.title", layout.Title),
		attribute.Int("mansion.rooms", m.Size()),
		attribute.Int("mansion.depth", m.Depth()),
		attribute.Int("mansion.pruned", len(m.Pruned)),
		attribute.Int64("mansion.build_time_us", time.Since(startTime).Microseconds()),
	)

	return m, nil
}

// place allocates the room described by def and queues it for its own exits.
func (m *Mansion) place(span trace.Span, def *gamedata.RoomDef, queue *[]pending) *Room {
	if def == nil {
		return nil
	}

	room, err := m.alloc.NewRoom(def.Name)
	if err != nil {
		m.Pruned = append(m.Pruned, err)
		span.AddEvent("room.pruned", trace.WithAttributes(
			attribute.String("room.name", def.Name),
		))
		return nil
	}
	room.Color = def.Color

	*queue = append(*queue, pending{room: room, def: def})
	return room
}

// Size returns the number of rooms in the mansion.
func (m *Mansion) Size() int {
	n := 0
	Walk(m.Root, func(*Room, int) { n++ })
	return n
}

// Depth returns the number of moves from the root to the deepest room.
func (m *Mansion) Depth() int {
	depth := 0
	Walk(m.Root, func(_ *Room, d int) {
		if d > depth {
			depth = d
		}
	})
	return depth
}

// Leaves returns the names of all rooms without exits, left to right.
func (m *Mansion) Leaves() []string {
	var names []string
	Walk(m.Root, func(r *Room, _ int) {
		if r.IsLeaf() {
			names = append(names, r.Name)
		}
	})
	return names
}

// Find returns the first room reached by following path from the root, or nil.
func (m *Mansion) Find(path ...Direction) *Room {
	r := m.Root
	for _, d := range path {
		if r == nil {
			return nil
		}
		r = r.Child(d)
	}
	return r
}

// Free releases every room, children before their parent, and returns how
// many were released. Calling Free again does nothing.
func (m *Mansion) Free(ctx context.Context) int {
	if m == nil || m.Root == nil {
		return 0
	}

	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "mansion.free")
	defer span.End()

	root := m.Root
	m.Root = nil
	released := m.release(root)

	span.SetAttributes(
		attribute.Int("mansion.released", released),
		attribute.Int("allocator.live", m.alloc.Live()),
	)
	return released
}

func (m *Mansion) release(r *Room) int {
	if r == nil {
		return 0
	}
	n := m.release(r.Left)
	n += m.release(r.Right)
	m.alloc.Release(r)
	return n + 1
}
