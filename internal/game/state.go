// Package game provides the exploration state machine and the loops that drive it.
package game

import "github.com/samdwyer/detectivequest/internal/world"

// State represents the current session state.
type State int

const (
	// StatePositioned means the detective stands in a room and may keep moving.
	StatePositioned State = iota
	// StateExited means the session is over.
	StateExited
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePositioned:
		return "positioned"
	case StateExited:
		return "exited"
	default:
		return "unknown"
	}
}

// Outcome records why a session ended.
type Outcome int

const (
	// OutcomeNone - the session is still running
	OutcomeNone Outcome = iota
	// OutcomeLeaf - the detective reached a room with no exits
	OutcomeLeaf
	// OutcomeQuit - the player chose to leave
	OutcomeQuit
	// OutcomeEndOfInput - input ran out before a leaf was reached
	OutcomeEndOfInput
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeNone:
		return "none"
	case OutcomeLeaf:
		return "leaf"
	case OutcomeQuit:
		return "quit"
	case OutcomeEndOfInput:
		return "end_of_input"
	default:
		return "unknown"
	}
}

// Command is a single player instruction.
type Command int

const (
	// CommandInvalid is anything that is not a known command.
	CommandInvalid Command = iota
	// CommandLeft moves to the left exit ('e').
	CommandLeft
	// CommandRight moves to the right exit ('d').
	CommandRight
	// CommandQuit leaves the mansion ('s').
	CommandQuit
)

// ParseCommand maps an input character to a command.
func ParseCommand(r rune) Command {
	switch r {
	case 'e', 'E':
		return CommandLeft
	case 'd', 'D':
		return CommandRight
	case 's', 'S':
		return CommandQuit
	default:
		return CommandInvalid
	}
}

// direction returns the exit a movement command refers to.
func (c Command) direction() (world.Direction, bool) {
	switch c {
	case CommandLeft:
		return world.Left, true
	case CommandRight:
		return world.Right, true
	default:
		return 0, false
	}
}

// Result describes what applying a command did.
type Result int

const (
	// ResultMoved - the detective entered a room that has further exits
	ResultMoved Result = iota
	// ResultArrived - the detective entered a room with no exits; the session is over
	ResultArrived
	// ResultUnavailable - there is no exit in that direction
	ResultUnavailable
	// ResultInvalid - the command was not recognized
	ResultInvalid
	// ResultQuit - the player left the mansion
	ResultQuit
	// ResultFinished - the session had already ended; nothing happened
	ResultFinished
)

// String returns a human-readable result name.
func (r Result) String() string {
	switch r {
	case ResultMoved:
		return "moved"
	case ResultArrived:
		return "arrived"
	case ResultUnavailable:
		return "unavailable"
	case ResultInvalid:
		return "invalid"
	case ResultQuit:
		return "quit"
	case ResultFinished:
		return "finished"
	default:
		return "unknown"
	}
}
