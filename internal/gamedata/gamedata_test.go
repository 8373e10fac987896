package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadLayout(t *testing.T) {
	layout, err := LoadLayout()
	if err != nil {
		t.Fatalf("Failed to load layout: %v", err)
	}

	if layout.Root.Name != "Hall de Entrada" {
		t.Errorf("Root.Name = %q, want %q", layout.Root.Name, "Hall de Entrada")
	}
	if got := layout.Count(); got != 10 {
		t.Errorf("Count() = %d, want 10", got)
	}

	// The right exit of Quarto Principal is deliberately absent
	quarto := layout.Root.Left.Right
	if quarto == nil || quarto.Name != "Quarto Principal" {
		t.Fatalf("Expected Quarto Principal at left/right, got %+v", quarto)
	}
	if quarto.Right != nil {
		t.Errorf("Quarto Principal right exit = %q, want none", quarto.Right.Name)
	}

	escritorio := layout.Root.Right.Right
	if escritorio == nil {
		t.Fatal("Escritório not found at right/right")
	}
	if escritorio.Left == nil || escritorio.Left.Name != "Porão" {
		t.Errorf("Escritório left exit should be Porão, got %+v", escritorio.Left)
	}
	if escritorio.Right == nil || escritorio.Right.Name != "Sótão" {
		t.Errorf("Escritório right exit should be Sótão, got %+v", escritorio.Right)
	}
}

func TestLayoutValidate(t *testing.T) {
	tests := []struct {
		name   string
		layout LayoutDef
		valid  bool
	}{
		{"no colors", LayoutDef{Root: RoomDef{Name: "Hall", Left: &RoomDef{Name: "Cozinha"}}}, true},
		{"valid colors", LayoutDef{Root: RoomDef{Name: "Hall", Color: "#D4AF37", Right: &RoomDef{Name: "Sótão", Color: "C0A080"}}}, true},
		{"bad root color", LayoutDef{Root: RoomDef{Name: "Hall", Color: "#XYZ"}}, false},
		{"bad nested color", LayoutDef{Root: RoomDef{Name: "Hall", Right: &RoomDef{Name: "Biblioteca", Right: &RoomDef{Name: "Porão", Color: "#12345"}}}}, false},
	}

	for _, tt := range tests {
		err := tt.layout.Validate()
		if tt.valid && err != nil {
			t.Errorf("%s: Validate() unexpected error: %v", tt.name, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("%s: Validate() expected error, got nil", tt.name)
		}
	}

	layout, err := LoadLayout()
	if err != nil {
		t.Fatalf("Failed to load layout: %v", err)
	}
	if err := layout.Validate(); err != nil {
		t.Errorf("embedded layout Validate() error: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[LayoutDef]("missing.json"); err == nil {
		t.Error("Load() of a missing file should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#D4AF37", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"", false},
		{"#FFF", false},
		{"#GGGGGG", false},
		{"#FF00001", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) unexpected error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) expected error, got nil", tt.input)
		}
	}
}

func TestParseHexColorValue(t *testing.T) {
	got, err := ParseHexColor("#FF8000")
	if err != nil {
		t.Fatalf("ParseHexColor(\"#FF8000\") unexpected error: %v", err)
	}
	want := tcell.NewRGBColor(255, 128, 0)
	if got != want {
		t.Errorf("ParseHexColor(\"#FF8000\") = %v, want %v", got, want)
	}
}

func TestColorOr(t *testing.T) {
	tests := []struct {
		input string
		want  tcell.Color
	}{
		{"", tcell.ColorWhite},
		{"not-a-color", tcell.ColorWhite},
		{"#000000", tcell.NewRGBColor(0, 0, 0)},
	}

	for _, tt := range tests {
		if got := ColorOr(tt.input, tcell.ColorWhite); got != tt.want {
			t.Errorf("ColorOr(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
