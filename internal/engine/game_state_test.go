package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

func TestStatus(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want chess.GameState
	}{
		{"initial position", InitialFEN, chess.Regular},
		{"rook check", "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1", chess.Check},
		{"back rank mate", "4R1k1/5ppp/8/8/8/8/8/6K1 b - - 0 1", chess.Checkmate},
		{"queen stalemate", "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", chess.Stalemate},
		{"bare kings", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", chess.Regular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustBoardFromFEN(tt.fen)
			if got := Status(board); got != tt.want {
				t.Errorf("Status() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckmateAndStalemate(t *testing.T) {
	mate := MustBoardFromFEN("4R1k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")
	if !IsCheckmate(mate, chess.Black) {
		t.Error("IsCheckmate(black) = false, want true")
	}
	if IsStalemate(mate, chess.Black) {
		t.Error("IsStalemate(black) = true, want false")
	}
	if IsCheckmate(mate, chess.White) {
		t.Error("IsCheckmate(white) = true, want false")
	}

	stale := MustBoardFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if !IsStalemate(stale, chess.Black) {
		t.Error("IsStalemate(black) = false, want true")
	}
	if IsCheckmate(stale, chess.Black) {
		t.Error("IsCheckmate(black) = true, want false")
	}
	if got := StateFor(stale, chess.White); got != chess.Regular {
		t.Errorf("StateFor(white) = %v, want %v", got, chess.Regular)
	}
}

func TestStatus_FoolsMate(t *testing.T) {
	board := chess.NewInitialBoard()
	for _, m := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if _, err := Play(board, chess.MustSquare(m[:2]), chess.MustSquare(m[2:])); err != nil {
			t.Fatalf("Play(%s) error = %v", m, err)
		}
	}
	if got := Status(board); got != chess.Checkmate {
		t.Errorf("Status() = %v, want %v", got, chess.Checkmate)
	}
	if got := board.SideToMove(); got != chess.White {
		t.Errorf("SideToMove() = %v, want %v", got, chess.White)
	}
}

// A full game exercising en passant, queenside castling and a run of
// checks, ending in mate.
var scriptedGame = []struct {
	move string
	typ  chess.MoveType
}{
	{"e2e4", chess.Attack},
	{"d7d5", chess.Attack},
	{"e4d5", chess.Capture},
	{"e7e5", chess.Attack},
	{"d5e6", chess.EnPassant},
	{"f7f5", chess.Attack},
	{"d1h5", chess.Attack},
	{"g7g6", chess.Attack},
	{"h5d1", chess.Attack},
	{"c8e6", chess.Capture},
	{"d2d4", chess.Attack},
	{"d8d5", chess.Attack},
	{"c2c3", chess.Attack},
	{"f8e7", chess.Attack},
	{"c1f4", chess.Attack},
	{"g6g5", chess.Attack},
	{"f4c7", chess.Capture},
	{"b7b5", chess.Attack},
	{"b1a3", chess.Attack},
	{"g8f6", chess.Attack},
	{"a3b5", chess.Capture},
	{"e7d8", chess.Attack},
	{"c7d8", chess.Capture},
	{"d5c6", chess.Attack},
	{"d8f6", chess.Capture},
	{"h8f8", chess.Attack},
	{"f6g5", chess.Capture},
	{"e6c4", chess.Attack},
	{"f1c4", chess.Capture},
	{"c6g6", chess.Attack},
	{"g1f3", chess.Attack},
	{"a7a6", chess.Attack},
	{"b5c7", chess.Attack},
	{"e8d7", chess.Attack},
	{"c7a8", chess.Capture},
	{"f5f4", chess.Attack},
	{"d1b3", chess.Attack},
	{"f8f6", chess.Attack},
	{"b3b8", chess.Capture},
	{"f6d6", chess.Attack},
	{"e1c1", chess.Castling},
	{"g6f5", chess.Attack},
	{"f3e5", chess.Attack},
	{"f5e5", chess.Capture},
	{"d4e5", chess.Capture},
	{"d6d1", chess.Capture},
	{"c1d1", chess.Capture},
	{"h7h5", chess.Attack},
	{"e5e6", chess.Attack},
	{"d7c6", chess.Attack},
	{"b8c8", chess.Attack},
	{"c6d6", chess.Attack},
	{"h1e1", chess.Attack},
	{"a6a5", chess.Attack},
	{"e6e7", chess.Attack},
	{"h5h4", chess.Attack},
	{"e1e6", chess.Attack},
}

// Positions reached after the given ply.
var scriptedStates = map[int]chess.GameState{
	7: chess.Check, 8: chess.Regular,
	33: chess.Check, 34: chess.Regular,
	43: chess.Check, 44: chess.Regular,
	46: chess.Check, 47: chess.Regular,
	49: chess.Check, 50: chess.Regular,
	51: chess.Check, 52: chess.Regular,
	57: chess.Checkmate,
}

func TestPlay_ScriptedGame(t *testing.T) {
	board := chess.NewInitialBoard()

	for i, step := range scriptedGame {
		ply := i + 1
		from, to := chess.MustSquare(step.move[:2]), chess.MustSquare(step.move[2:])

		move, err := Play(board, from, to)
		if err != nil {
			t.Fatalf("ply %d: Play(%s) error = %v", ply, step.move, err)
		}
		if move.Type != step.typ {
			t.Errorf("ply %d: Play(%s).Type = %v, want %v", ply, step.move, move.Type, step.typ)
		}
		if want, ok := scriptedStates[ply]; ok {
			if got := Status(board); got != want {
				t.Errorf("ply %d: Status() after %s = %v, want %v", ply, step.move, got, want)
			}
		}
	}

	if got := board.Ply(); got != len(scriptedGame) {
		t.Errorf("Ply() = %d, want %d", got, len(scriptedGame))
	}
}
