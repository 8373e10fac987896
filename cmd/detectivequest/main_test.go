package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/samdwyer/detectivequest/internal/game"
	"github.com/samdwyer/detectivequest/internal/world"
)

func TestRunQuitScenario(t *testing.T) {
	alloc := world.NewAllocator()
	var out bytes.Buffer

	code := run(context.Background(), strings.NewReader("d\nd\ns\n"), &out, game.Config{}, alloc)

	if code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
	text := out.String()
	for _, want := range []string{
		"Bem-vindo ao Detective Quest",
		"Você está na sala: **Hall de Entrada**",
		"Você está na sala: **Biblioteca**",
		"Você está na sala: **Escritório**",
		"Você decidiu sair da mansão",
		"Limpando a memória da mansão...",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if strings.Contains(text, "Você está na sala: **Sótão**") {
		t.Error("quit should end the session before any further room")
	}
	if alloc.Allocated() != 10 {
		t.Errorf("Allocated() = %d, want 10", alloc.Allocated())
	}
	if alloc.Live() != 0 {
		t.Errorf("Live() after run = %d, want 0", alloc.Live())
	}
}

func TestRunLeafAndEndOfInput(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"e\ne\n", "A exploração da mansão termina aqui"},
		{"", "Fim da entrada"},
		{"e", "Fim da entrada"},
	}

	for _, tt := range tests {
		alloc := world.NewAllocator()
		var out bytes.Buffer

		code := run(context.Background(), strings.NewReader(tt.input), &out, game.Config{UI: game.UIConsole}, alloc)
		if code != 0 {
			t.Errorf("run(%q) = %d, want 0", tt.input, code)
		}
		if !strings.Contains(out.String(), tt.want) {
			t.Errorf("run(%q) output missing %q", tt.input, tt.want)
		}
		if alloc.Live() != 0 {
			t.Errorf("run(%q) left %d rooms allocated", tt.input, alloc.Live())
		}
	}
}

func TestRunRootAllocationFailure(t *testing.T) {
	alloc := world.NewLimitedAllocator(0)
	var out bytes.Buffer

	code := run(context.Background(), strings.NewReader("e\ne\n"), &out, game.Config{}, alloc)

	if code != 1 {
		t.Errorf("run() = %d, want 1", code)
	}
	if strings.Contains(out.String(), "Localização Atual") {
		t.Error("exploration must not start when the root cannot be allocated")
	}
	if !strings.Contains(out.String(), "Erro ao montar a mansão") {
		t.Errorf("output should report the failure, got:\n%s", out.String())
	}
}

func TestRunPrunedMansion(t *testing.T) {
	alloc := world.NewLimitedAllocator(3)
	var out bytes.Buffer

	// With only three rooms, Biblioteca has no exits left
	code := run(context.Background(), strings.NewReader("d\n"), &out, game.Config{}, alloc)

	if code != 0 {
		t.Errorf("run() = %d, want 0", code)
	}
	if !strings.Contains(out.String(), "A exploração da mansão termina aqui") {
		t.Errorf("Biblioteca should be a leaf in the pruned mansion, got:\n%s", out.String())
	}
	if alloc.Live() != 0 {
		t.Errorf("Live() after run = %d, want 0", alloc.Live())
	}
}
