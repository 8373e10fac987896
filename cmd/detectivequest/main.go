// Package main is the entry point for Detective Quest.
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/detectivequest/internal/game"
	"github.com/samdwyer/detectivequest/internal/telemetry"
	"github.com/samdwyer/detectivequest/internal/world"
)

const banner = `====================================================
        Bem-vindo ao Detective Quest: A Mansão
====================================================
Você é o desenvolvedor(a) técnico(a) da Enigma Studios.
O mapa da mansão foi montado. Inicie a exploração!
`

func main() {
	os.Exit(realMain())
}

func realMain() int {
	// Load .env file for local development
	if err := godotenv.Load(); err != nil {
		// Not fatal - env vars might be set directly
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx := context.Background()

	apiKey := os.Getenv("HONEYCOMB_DETECTIVEQUEST_API_KEY")
	dataset := os.Getenv("HONEYCOMB_DETECTIVEQUEST_DATASET")
	if telemetry.ConfigureHoneycomb(apiKey, dataset) {
		shutdown, err := telemetry.Setup(ctx)
		if err != nil {
			log.Printf("Warning: telemetry setup failed: %v", err)
			log.Printf("Game will run without observability")
		} else {
			defer func() {
				if err := shutdown(ctx); err != nil {
					log.Printf("Error shutting down telemetry: %v", err)
				}
			}()
		}
	}

	cfg, err := game.ConfigFromEnv()
	if err != nil {
		log.Printf("Warning: %v, using console", err)
	}

	return run(ctx, os.Stdin, os.Stdout, cfg, world.NewAllocator())
}

// run plays one session and returns the process exit status.
func run(ctx context.Context, in io.Reader, out io.Writer, cfg game.Config, alloc *world.Allocator) int {
	fmt.Fprint(out, banner)

	mansion, err := world.BuildDefault(ctx, alloc)
	if err != nil {
		fmt.Fprintf(out, "Erro ao montar a mansão: %v\n", err)
		return 1
	}
	for _, err := range mansion.Pruned {
		log.Printf("Warning: branch left out of the mansion: %v", err)
	}

	if _, err := explore(ctx, in, out, cfg, mansion.Root); err != nil {
		log.Printf("Exploration error: %v", err)
	}

	fmt.Fprintln(out, "\nLimpando a memória da mansão...")
	released := mansion.Free(ctx)
	if alloc.Live() != 0 {
		log.Printf("Warning: %d rooms still allocated after freeing %d", alloc.Live(), released)
	}

	return 0
}

// explore runs the session with the configured front end.
func explore(ctx context.Context, in io.Reader, out io.Writer, cfg game.Config, root *world.Room) (game.Outcome, error) {
	if cfg.UI == game.UIScreen {
		g, err := game.New()
		if err == nil {
			return g.Run(ctx, root)
		}
		log.Printf("Warning: screen unavailable (%v), falling back to console", err)
	}
	return game.NewConsole(in, out).Run(ctx, root)
}
