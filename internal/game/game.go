// Package game keeps the daemon's live games: one board per game id,
// moves validated and applied under a per-game lock, optional persistence
// and a move feed for subscribers.
package game

import (
	"sync"
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Game is one live game.
type Game struct {
	ID        string
	StartFEN  string
	CreatedAt time.Time

	mu    sync.Mutex
	board *chess.Board
}

// Result describes an accepted move.
type Result struct {
	Move  chess.Move
	State chess.GameState
	FEN   string
	Ply   int
}

// View is a point-in-time copy of a game.
type View struct {
	ID         string
	StartFEN   string
	FEN        string
	SideToMove chess.Colour
	State      chess.GameState
	History    []chess.Move
	CreatedAt  time.Time
}

// Event is published to subscribers after every accepted move.
type Event struct {
	GameID string
	Result Result
}

func newGame(id, startFEN string, board *chess.Board, created time.Time) *Game {
	return &Game{ID: id, StartFEN: startFEN, CreatedAt: created, board: board}
}

// playLocked validates and applies one move for the side to move.
// The caller holds g.mu.
func (g *Game) playLocked(from, to chess.Coordinate) (Result, error) {
	move, err := engine.Play(g.board, from, to)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Move:  move,
		State: engine.Status(g.board),
		FEN:   engine.BoardToFEN(g.board),
		Ply:   g.board.Ply(),
	}, nil
}

// view copies the game state.
func (g *Game) view() View {
	g.mu.Lock()
	defer g.mu.Unlock()

	return View{
		ID:         g.ID,
		StartFEN:   g.StartFEN,
		FEN:        engine.BoardToFEN(g.board),
		SideToMove: g.board.SideToMove(),
		State:      engine.Status(g.board),
		History:    append([]chess.Move(nil), g.board.History...),
		CreatedAt:  g.CreatedAt,
	}
}

// snapshot returns a clone of the board.
func (g *Game) snapshot() *chess.Board {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.board.Clone()
}
