package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"unicode"
	"unicode/utf8"

	"github.com/samdwyer/detectivequest/internal/world"
)

// Messages shown to the player.
const (
	msgLocationHeader = "\n\n-- Localização Atual --\n"
	msgCurrentRoom    = "Você está na sala: **%s**\n"
	msgLeaf           = "\n**Este cômodo não possui mais caminhos!**\n" +
		"A exploração da mansão termina aqui. Parabéns, detetive!\n"
	msgChoosePath  = "\nEscolha um caminho:\n"
	msgOptionLeft  = "  [e] Esquerda -> %s\n"
	msgOptionRight = "  [d] Direita -> %s\n"
	msgOptionQuit  = "  [s] Sair do Jogo\n"
	msgPrompt      = "Sua escolha (e/d/s): "
	msgUnavailable = "Caminho não disponível. Tente novamente.\n"
	msgInvalid     = "Escolha inválida. Use 'e' (esquerda), 'd' (direita) ou 's' (sair).\n"
	msgQuit        = "\nVocê decidiu sair da mansão. Até a próxima!\n"
	msgEndOfInput  = "\nFim da entrada. Você deixa a mansão.\n"
)

// errMalformedInput is returned by readChoice when the input is not valid UTF-8.
var errMalformedInput = errors.New("malformed input")

// Console runs a session as a line-oriented prompt loop.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	session *Session
}

// NewConsole creates a console reading commands from in and writing to out.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run explores the mansion starting at root until a leaf is reached, the
// player quits, or input runs out. Only read errors other than io.EOF are
// returned.
func (c *Console) Run(ctx context.Context, root *world.Room) (Outcome, error) {
	s := NewSession(ctx, root)
	c.session = s
	if s.Current() == nil {
		return s.Outcome(), nil
	}

	for {
		room := s.Current()
		c.printf(msgLocationHeader)
		c.printf(msgCurrentRoom, room.Name)

		if s.Outcome() == OutcomeLeaf {
			c.printf(msgLeaf)
			return s.Outcome(), nil
		}

		c.showOptions(room)

		choice, err := c.readChoice()
		switch {
		case errors.Is(err, io.EOF):
			s.End()
			c.printf(msgEndOfInput)
			return s.Outcome(), nil
		case errors.Is(err, errMalformedInput):
			choice = ' '
		case err != nil:
			s.End()
			return s.Outcome(), fmt.Errorf("failed to read choice: %w", err)
		}

		switch s.Apply(ParseCommand(choice)) {
		case ResultUnavailable:
			c.printf(msgUnavailable)
		case ResultInvalid:
			c.printf(msgInvalid)
		case ResultQuit:
			c.printf(msgQuit)
			return s.Outcome(), nil
		}
	}
}

// showOptions lists the exits of room followed by the prompt.
func (c *Console) showOptions(room *world.Room) {
	c.printf(msgChoosePath)
	if room.Left != nil {
		c.printf(msgOptionLeft, room.Left.Name)
	}
	if room.Right != nil {
		c.printf(msgOptionRight, room.Right.Name)
	}
	c.printf(msgOptionQuit)
	c.printf(msgPrompt)
}

// readChoice returns the next non-space character. On malformed input the
// rest of the line is discarded so the next read starts on a fresh line.
func (c *Console) readChoice() (rune, error) {
	for {
		r, size, err := c.in.ReadRune()
		if err != nil {
			return 0, err
		}
		if r == utf8.RuneError && size == 1 {
			c.discardLine()
			return 0, errMalformedInput
		}
		if unicode.IsSpace(r) {
			continue
		}
		return r, nil
	}
}

// discardLine skips input up to and including the next newline.
func (c *Console) discardLine() {
	for {
		b, err := c.in.ReadByte()
		if err != nil || b == '\n' {
			return
		}
	}
}

// Session returns the session of the last Run, or nil before Run.
func (c *Console) Session() *Session {
	return c.session
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}
