// Package replay plays move scripts through the rules engine and records
// what happened at every ply.
package replay

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/movelist"
)

// Options controls a replay.
type Options struct {
	// MaxPlies stops the replay after this many plies (0 = no limit)
	MaxPlies int
	// GameNum and File are copied into errors for context
	GameNum int
	File    string
}

// Ply is the outcome of one accepted move.
type Ply struct {
	Number int
	Move   chess.Move
	Text   string
	// State is the game state for the side to move after the ply
	State chess.GameState
	FEN   string
	Key   uint64
}

// Report is the result of replaying one script.
type Report struct {
	GameNum  int
	Name     string
	StartFEN string
	Plies    []Ply
	// Board holds the final position (nil if the setup was invalid)
	Board *chess.Board
	State chess.GameState
	// Truncated is set when MaxPlies cut the replay short
	Truncated bool
	// Err is a *errors.GameError for an invalid setup or the first
	// rejected move; plies before it are kept
	Err error
}

// FinalFEN returns the FEN of the last position, or "" without a board.
func (r *Report) FinalFEN() string {
	if r.Board == nil {
		return ""
	}
	return engine.BoardToFEN(r.Board)
}

// Run plays script from its starting position, stopping at the first
// rejected move.
func Run(script movelist.Script, opts Options) *Report {
	report := &Report{
		GameNum:  opts.GameNum,
		Name:     script.Name,
		StartFEN: script.FEN,
	}

	board, err := setup(script.FEN)
	if err != nil {
		report.Err = &errors.GameError{
			Err:     err,
			GameNum: opts.GameNum,
			Game:    script.Name,
			File:    opts.File,
			Line:    script.Line,
		}
		return report
	}
	if report.StartFEN == "" {
		report.StartFEN = engine.InitialFEN
	}
	report.Board = board

	for i, mv := range script.Moves {
		if opts.MaxPlies > 0 && i >= opts.MaxPlies {
			report.Truncated = true
			break
		}
		move, err := engine.Play(board, mv.From, mv.To)
		if err != nil {
			report.Err = &errors.GameError{
				Err:      err,
				GameNum:  opts.GameNum,
				Game:     script.Name,
				PlyNum:   i + 1,
				MoveText: mv.Text,
				File:     opts.File,
				Line:     mv.Line,
			}
			break
		}
		report.Plies = append(report.Plies, Ply{
			Number: i + 1,
			Move:   move,
			Text:   mv.Text,
			State:  engine.Status(board),
			FEN:    engine.BoardToFEN(board),
			Key:    hashing.GenerateZobristHash(board),
		})
	}

	report.State = engine.Status(board)
	return report
}

func setup(fen string) (*chess.Board, error) {
	if fen == "" {
		return engine.NewInitialBoard(), nil
	}
	return engine.NewBoardFromFEN(fen)
}

// Summary counts outcomes over many reports.
type Summary struct {
	Games      int
	Plies      int
	Rejected   int
	Checkmates int
	Stalemates int
}

// Add records one report.
func (s *Summary) Add(r *Report) {
	s.Games++
	s.Plies += len(r.Plies)
	if r.Err != nil {
		s.Rejected++
		return
	}
	switch r.State {
	case chess.Checkmate:
		s.Checkmates++
	case chess.Stalemate:
		s.Stalemates++
	}
}
