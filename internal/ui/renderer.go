package ui

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/detectivequest/internal/gamedata"
)

// RoomView is everything the renderer needs to draw one frame.
type RoomView struct {
	Title    string
	Room     string
	Color    string   // Hex color of the current room
	Left     string   // Name of the left exit, empty if none
	Right    string   // Name of the right exit, empty if none
	Trail    []string // Rooms visited so far
	Message  string   // Feedback from the last command
	Finished bool     // The room has no exits; exploration is over
	Symbol   rune
}

// Layout rows
const (
	rowTitle   = 0
	rowRoom    = 2
	rowOptions = 4
	rowTrail   = 9
)

// Renderer handles drawing the game to the screen.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the current room, its exits and the trail to the screen.
func (r *Renderer) Render(view RoomView) {
	r.screen.Clear()

	titleStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.drawText(0, rowTitle, view.Title, titleStyle)

	roomStyle := tcell.StyleDefault.
		Foreground(gamedata.ColorOr(view.Color, tcell.ColorWhite)).
		Bold(true)
	symbolStyle := tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	r.screen.SetContent(0, rowRoom, view.Symbol, symbolStyle)
	r.drawText(2, rowRoom, view.Room, roomStyle)

	textStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle := tcell.StyleDefault.Foreground(tcell.ColorGray)

	if view.Finished {
		r.drawText(0, rowOptions, "Este cômodo não possui mais caminhos!", textStyle)
		r.drawText(0, rowOptions+1, "A exploração da mansão termina aqui. Parabéns, detetive!", textStyle)
		r.drawText(0, rowOptions+3, "Pressione qualquer tecla para sair.", dimStyle)
	} else {
		y := rowOptions
		if view.Left != "" {
			r.drawText(0, y, "[e] Esquerda -> "+view.Left, textStyle)
			y++
		}
		if view.Right != "" {
			r.drawText(0, y, "[d] Direita -> "+view.Right, textStyle)
			y++
		}
		r.drawText(0, y, "[s/Esc] Sair do Jogo", textStyle)
	}

	if view.Message != "" {
		msgStyle := tcell.StyleDefault.Foreground(tcell.ColorRed)
		r.drawText(0, rowOptions+4, view.Message, msgStyle)
	}

	r.drawText(0, rowTrail, "Caminho: "+strings.Join(view.Trail, " > "), dimStyle)

	r.screen.Show()
}

// drawText writes msg starting at (x, y), clipped to the screen width.
// Invalid UTF-8, such as a name cut mid-rune, is dropped.
func (r *Renderer) drawText(x, y int, msg string, style tcell.Style) {
	width, _ := r.screen.Size()
	for _, ch := range strings.ToValidUTF8(msg, "") {
		if x >= width {
			return
		}
		r.screen.SetContent(x, y, ch, style)
		x++
	}
}
