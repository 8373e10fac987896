package game

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/detectivequest/internal/ui"
	"github.com/samdwyer/detectivequest/internal/world"
)

// Title is shown at the top of the screen.
const Title = "Detective Quest: A Mansão"

// Game runs a session on a full terminal screen.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	session  *Session
	message  string
}

// New creates a game on the terminal.
func New() (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return newGame(screen), nil
}

// NewWithScreen creates a game on the given tcell screen.
func NewWithScreen(s tcell.Screen) (*Game, error) {
	screen, err := ui.NewScreenFrom(s)
	if err != nil {
		return nil, err
	}
	return newGame(screen), nil
}

func newGame(screen *ui.Screen) *Game {
	return &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen),
	}
}

// Run executes the main game loop. The screen is closed when Run returns.
func (g *Game) Run(ctx context.Context, root *world.Room) (Outcome, error) {
	defer g.screen.Close()

	g.session = NewSession(ctx, root)
	if g.session.Current() == nil {
		return g.session.Outcome(), nil
	}

	for g.session.State() == StatePositioned {
		g.renderer.Render(g.view())
		g.handleInput()
	}

	if g.session.Outcome() == OutcomeLeaf {
		g.renderer.Render(g.view())
		g.waitForKey()
	}

	return g.session.Outcome(), nil
}

// view builds the frame for the current position.
func (g *Game) view() ui.RoomView {
	d := g.session.Detective()
	room := g.session.Current()

	v := ui.RoomView{
		Title:    Title,
		Room:     room.Name,
		Color:    room.Color,
		Trail:    d.Trail(),
		Message:  g.message,
		Finished: g.session.Outcome() == OutcomeLeaf,
		Symbol:   d.Symbol,
	}
	if room.Left != nil {
		v.Left = room.Left.Name
	}
	if room.Right != nil {
		v.Right = room.Right.Name
	}
	return v
}

// handleInput processes a single input event.
func (g *Game) handleInput() {
	ev := g.screen.PollEvent()

	switch ev := ev.(type) {
	case nil:
		// Screen finalized, no more input
		g.session.End()
	case *tcell.EventKey:
		g.handleKeyEvent(ev)
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// handleKeyEvent processes keyboard input.
func (g *Game) handleKeyEvent(ev *tcell.EventKey) {
	var cmd Command
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		cmd = CommandQuit
	case tcell.KeyLeft:
		cmd = CommandLeft
	case tcell.KeyRight:
		cmd = CommandRight
	case tcell.KeyRune:
		cmd = ParseCommand(ev.Rune())
	default:
		return
	}
	g.apply(cmd)
}

func (g *Game) apply(cmd Command) {
	switch g.session.Apply(cmd) {
	case ResultUnavailable:
		g.message = "Caminho não disponível. Tente novamente."
	case ResultInvalid:
		g.message = "Escolha inválida. Use 'e' (esquerda), 'd' (direita) ou 's' (sair)."
	default:
		g.message = ""
	}
}

// waitForKey blocks until a key is pressed or the screen goes away.
func (g *Game) waitForKey() {
	for {
		switch g.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		case *tcell.EventResize:
			g.screen.Sync()
			g.renderer.Render(g.view())
		}
	}
}

// Session returns the session of the last Run, or nil before Run.
func (g *Game) Session() *Session {
	return g.session
}
