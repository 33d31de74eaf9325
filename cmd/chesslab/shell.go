// shell.go - Interactive play: several games held by a session manager
package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/config"
	"github.com/lgbarn/chesslab-go/internal/render/console"
	"github.com/lgbarn/chesslab-go/internal/script"
	"github.com/lgbarn/chesslab-go/internal/session"
)

const shellHelp = `Commands:
  new          start another game and switch to it
  games        list the open games
  switch <id>  switch to a game; any unique prefix of its id will do
  restart      set the current game back to the starting position
  close        close the current game
  board        draw the board
  quit         leave
Anything else is read as a move, e.g. e2e4, e2-e4, a7a8n or 4 1 4 3.`

// shell reads commands and moves from one input and plays them on the
// current game.
type shell struct {
	cfg   *config.Config
	in    *bufio.Reader
	out   io.Writer
	games *session.Manager

	views   map[string]*console.View
	current *session.Game
}

func newShell(cfg *config.Config, in io.Reader, out io.Writer) *shell {
	return &shell{
		cfg:   cfg,
		in:    bufio.NewReader(in),
		out:   out,
		games: session.NewManager(cfg),
		views: make(map[string]*console.View),
	}
}

// run plays until input ends or the user quits.
func (s *shell) run() error {
	s.open()
	for {
		fmt.Fprint(s.out, "> ")
		line, err := s.in.ReadString('\n')
		if quit := s.command(strings.TrimSpace(line)); quit {
			return nil
		}
		if err == io.EOF {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// open starts a game and makes it current.
func (s *shell) open() {
	view := console.New(s.in, s.out)
	g := s.games.NewGame(view)
	s.views[g.ID] = view
	s.current = g
	fmt.Fprintf(s.out, "Game %s\n", g.ID)
	s.draw()
}

func (s *shell) view() *console.View {
	return s.views[s.current.ID]
}

func (s *shell) draw() {
	fmt.Fprint(s.out, s.view().Draw())
}

// command runs one line of input and reports whether the user asked to quit.
func (s *shell) command(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}

	switch strings.ToLower(fields[0]) {
	case "quit", "exit":
		return true
	case "new":
		s.open()
	case "games":
		s.list()
	case "switch":
		if len(fields) != 2 {
			fmt.Fprintln(s.out, "usage: switch <id>")
			return false
		}
		s.switchTo(fields[1])
	case "restart":
		s.current.Restart()
		s.draw()
	case "close":
		s.close()
	case "board":
		s.draw()
	case "help":
		fmt.Fprintln(s.out, shellHelp)
	default:
		s.move(line)
	}
	return false
}

// move plays a move on the current game. A promotion letter answers the
// promotion question in advance.
func (s *shell) move(line string) {
	m, err := script.ParseMove(line)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}

	view := s.view()
	view.Preselect(m.Promotion)
	defer view.Preselect(chess.NoPiece)

	if err := s.current.Move(m.From, m.To); err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	s.draw()
}

func (s *shell) list() {
	for _, id := range s.games.IDs() {
		g, err := s.games.Get(id)
		if err != nil {
			continue
		}
		mark := " "
		if g == s.current {
			mark = "*"
		}
		fmt.Fprintf(s.out, "%s %s turn %d, %s to move\n", mark, id, g.Turn(), g.SideToMove())
	}
}

// switchTo makes the game whose id starts with prefix current.
func (s *shell) switchTo(prefix string) {
	var matches []string
	for _, id := range s.games.IDs() {
		if strings.HasPrefix(id, prefix) {
			matches = append(matches, id)
		}
	}
	if len(matches) > 1 {
		fmt.Fprintf(s.out, "%q matches %d games\n", prefix, len(matches))
		return
	}
	id := prefix
	if len(matches) == 1 {
		id = matches[0]
	}

	g, err := s.games.Get(id)
	if err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	s.current = g
	fmt.Fprintf(s.out, "Game %s\n", g.ID)
	s.draw()
}

// close ends the current game. The first remaining game becomes current, or
// a fresh one is opened when none is left.
func (s *shell) close() {
	id := s.current.ID
	if err := s.games.Delete(id); err != nil {
		fmt.Fprintln(s.out, err)
		return
	}
	delete(s.views, id)
	s.cfg.Logf(config.Summary, "closed game %s", id)

	if ids := s.games.IDs(); len(ids) > 0 {
		s.switchTo(ids[0])
		return
	}
	s.open()
}
