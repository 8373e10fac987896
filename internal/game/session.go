package game

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/detectivequest/internal/entity"
	"github.com/samdwyer/detectivequest/internal/telemetry"
	"github.com/samdwyer/detectivequest/internal/world"
)

// Session walks a detective from the root of the mansion towards a leaf.
// It only reads the rooms; the tree is never modified.
type Session struct {
	ID string

	detective *entity.Detective
	state     State
	outcome   Outcome
	span      trace.Span
}

// NewSession starts a session positioned at root.
// If root has no exits the session is over immediately.
func NewSession(ctx context.Context, root *world.Room) *Session {
	tracer := telemetry.Tracer("game")
	id := uuid.NewString()
	_, span := tracer.Start(ctx, "explore.session")
	span.SetAttributes(attribute.String("session.id", id))

	s := &Session{
		ID:        id,
		detective: entity.NewDetective(root),
		state:     StatePositioned,
		span:      span,
	}

	switch {
	case root == nil:
		s.exit(OutcomeNone)
	case root.IsLeaf():
		s.exit(OutcomeLeaf)
	}
	return s
}

// State returns the current session state.
func (s *Session) State() State {
	return s.state
}

// Outcome returns why the session ended, or OutcomeNone while it is running.
func (s *Session) Outcome() Outcome {
	return s.outcome
}

// Current returns the room the detective stands in.
func (s *Session) Current() *world.Room {
	return s.detective.Room
}

// Detective returns the detective being moved.
func (s *Session) Detective() *entity.Detective {
	return s.detective
}

// Apply executes a single command.
func (s *Session) Apply(cmd Command) Result {
	if s.state == StateExited {
		return ResultFinished
	}

	if cmd == CommandQuit {
		s.exit(OutcomeQuit)
		return ResultQuit
	}

	dir, ok := cmd.direction()
	if !ok {
		return ResultInvalid
	}

	next := s.detective.Room.Child(dir)
	if next == nil {
		s.span.AddEvent("path.unavailable", trace.WithAttributes(
			attribute.String("room.name", s.detective.Room.Name),
			attribute.String("direction", dir.String()),
		))
		return ResultUnavailable
	}

	s.detective.MoveTo(next)
	s.span.AddEvent("room.enter", trace.WithAttributes(
		attribute.String("room.name", next.Name),
		attribute.String("direction", dir.String()),
		attribute.Int("steps", s.detective.Steps()),
	))

	if next.IsLeaf() {
		s.exit(OutcomeLeaf)
		return ResultArrived
	}
	return ResultMoved
}

// End closes the session because input ran out. It is handled like quitting.
func (s *Session) End() {
	if s.state == StateExited {
		return
	}
	s.exit(OutcomeEndOfInput)
}

func (s *Session) exit(outcome Outcome) {
	s.state = StateExited
	s.outcome = outcome
	s.span.SetAttributes(
		attribute.String("session.outcome", outcome.String()),
		attribute.Int("session.steps", s.detective.Steps()),
	)
	if s.detective.Room != nil {
		s.span.SetAttributes(attribute.String("session.final_room", s.detective.Room.Name))
	}
	s.span.End()
}
