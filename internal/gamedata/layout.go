package gamedata

import (
	"errors"
	"fmt"
)

// RoomDef describes one room of the mansion layout and, recursively, its exits.
type RoomDef struct {
	Name  string   `json:"name"`            // Display name (e.g., "Biblioteca")
	Color string   `json:"color,omitempty"` // Hex color code (e.g., "#8B5A2B")
	Left  *RoomDef `json:"left,omitempty"`  // Room reached by going left, if any
	Right *RoomDef `json:"right,omitempty"` // Room reached by going right, if any
}

// LayoutDef represents the structure of mansion.json.
type LayoutDef struct {
	Title string  `json:"title"`
	Root  RoomDef `json:"root"`
}

// Count returns the number of rooms described by the layout.
func (l *LayoutDef) Count() int {
	return countRooms(&l.Root)
}

func countRooms(r *RoomDef) int {
	if r == nil {
		return 0
	}
	return 1 + countRooms(r.Left) + countRooms(r.Right)
}

// LoadLayout loads the mansion layout from the embedded mansion.json file.
func LoadLayout() (LayoutDef, error) {
	layout, err := Load[LayoutDef]("mansion.json")
	if err != nil {
		return layout, err
	}
	if layout.Root.Name == "" && layout.Root.Left == nil && layout.Root.Right == nil {
		return layout, errors.New("no rooms loaded from mansion.json")
	}
	if err := layout.Validate(); err != nil {
		return layout, fmt.Errorf("invalid mansion.json: %w", err)
	}
	return layout, nil
}

// Validate checks that every room color, when given, is a valid hex color.
func (l *LayoutDef) Validate() error {
	return validateRoom(&l.Root)
}

func validateRoom(r *RoomDef) error {
	if r == nil {
		return nil
	}
	if r.Color != "" {
		if _, err := ParseHexColor(r.Color); err != nil {
			return fmt.Errorf("room %q: %w", r.Name, err)
		}
	}
	if err := validateRoom(r.Left); err != nil {
		return err
	}
	return validateRoom(r.Right)
}
