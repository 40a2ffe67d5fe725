// repl.go - Interactive session (-i)
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/movelist"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const replHelp = `Commands:
  move <from> <to>   play a move (also: move e2e4, or just e2e4)
  moves [square]     list legal moves, optionally from one square
  board              show the board
  fen                show the FEN of the position
  status             show side to move, game state and position key
  undo               take back the last move
  new [fen]          start again from the standard position or fen
  help               show this help
  quit               leave
`

// session is the state of an interactive game.
type session struct {
	out      io.Writer
	unicode  bool
	startFEN string
	board    *chess.Board
}

func newSession(out io.Writer, fen string, unicode bool) (*session, error) {
	s := &session{out: out, unicode: unicode}
	if err := s.reset(fen); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *session) reset(fen string) error {
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return err
	}
	s.startFEN = fen
	s.board = board
	return nil
}

func (s *session) prompt() string {
	return fmt.Sprintf("chess [%s %d]> ", strings.ToLower(s.board.SideToMove().String()), s.board.Ply())
}

// execute runs one command line and reports whether the session should end.
func (s *session) execute(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit", "q":
		return true
	case "help", "?":
		fmt.Fprint(s.out, replHelp)
	case "move", "m":
		s.move(args)
	case "moves":
		s.moves(args)
	case "board", "b":
		fmt.Fprint(s.out, output.RenderBoard(s.board, s.unicode))
	case "fen":
		fmt.Fprintln(s.out, engine.BoardToFEN(s.board))
	case "status":
		s.status()
	case "undo", "u":
		s.undo()
	case "new":
		if err := s.reset(strings.Join(args, " ")); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	default:
		// A bare move such as e2e4 or e2-e4.
		if len(args) == 0 {
			if _, _, err := movelist.DecodeMove(cmd); err == nil {
				s.move(fields)
				return false
			}
		}
		fmt.Fprintf(s.out, "unknown command %q (try help)\n", cmd)
	}
	return false
}

func (s *session) move(args []string) {
	var from, to chess.Coordinate
	var err error
	switch len(args) {
	case 1:
		from, to, err = movelist.DecodeMove(args[0])
	case 2:
		if from, err = chess.ParseSquare(args[0]); err == nil {
			to, err = chess.ParseSquare(args[1])
		}
	default:
		fmt.Fprintln(s.out, "usage: move <from> <to>")
		return
	}
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}

	move, err := engine.Play(s.board, from, to)
	if err != nil {
		fmt.Fprintf(s.out, "rejected: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%d. %s %s (%s)\n", s.board.Ply(), move.UCI(), move.Type, engine.Status(s.board))
}

func (s *session) moves(args []string) {
	var moves []chess.Move
	if len(args) > 0 {
		from, err := chess.ParseSquare(args[0])
		if err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			return
		}
		moves = engine.LegalMovesFrom(s.board, from)
	} else {
		moves = engine.LegalMoves(s.board, s.board.SideToMove())
	}
	if len(moves) == 0 {
		fmt.Fprintln(s.out, "no legal moves")
		return
	}
	output.WriteMoveList(s.out, moves)
}

func (s *session) status() {
	fmt.Fprintf(s.out, "%s to move, %s, ply %d, key %016x\n",
		s.board.SideToMove(), engine.Status(s.board), s.board.Ply(), hashing.GenerateZobristHash(s.board))
}

// undo rebuilds the position from the start without the last move.
func (s *session) undo() {
	history := s.board.History
	if len(history) == 0 {
		fmt.Fprintln(s.out, "nothing to undo")
		return
	}
	board, err := engine.NewBoardFromFEN(s.startFEN)
	if err != nil {
		fmt.Fprintf(s.out, "error: %v\n", err)
		return
	}
	for _, m := range history[:len(history)-1] {
		engine.ApplyMove(board, m)
	}
	s.board = board
	fmt.Fprintf(s.out, "took back %s\n", history[len(history)-1].UCI())
}

// runREPL starts an interactive session on stdin, with line editing when
// stdin is a terminal.
func runREPL(cfg *config.Config, fen string) error {
	s, err := newSession(cfg.OutputFile, fen, cfg.Output.Unicode)
	if err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return runScripted(s, os.Stdin)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          s.prompt(),
		HistoryFile:     historyFile(),
		AutoComplete:    completer(),
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Fprintln(s.out, "Type 'help' for commands")
	for {
		rl.SetPrompt(s.prompt())
		line, err := rl.Readline()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			// readline.ErrInterrupt on ^C: drop the line
			continue
		}
		if s.execute(line) {
			return nil
		}
	}
}

// runScripted feeds commands from r, one per line.
func runScripted(s *session, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if s.execute(scanner.Text()) {
			return nil
		}
	}
	return scanner.Err()
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("move"),
		readline.PcItem("moves"),
		readline.PcItem("board"),
		readline.PcItem("fen"),
		readline.PcItem("status"),
		readline.PcItem("undo"),
		readline.PcItem("new"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func historyFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chess_rules_history")
}
