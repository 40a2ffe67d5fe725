package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const castlingFEN = "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1"

func TestValidateMove_Castling(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		from, to   string
		wantReason string
		wantErr    bool
	}{
		{name: "white kingside", fen: castlingFEN, from: "e1", to: "g1"},
		{name: "white queenside", fen: castlingFEN, from: "e1", to: "c1"},
		{name: "black kingside", fen: castlingFEN, from: "e8", to: "g8"},
		{name: "black queenside", fen: castlingFEN, from: "e8", to: "c8"},
		{name: "queenside with b1 attacked", fen: "1r2k2r/8/8/8/8/8/8/R3K2R w KQk - 0 1", from: "e1", to: "c1"},
		{name: "right missing from setup", fen: "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1", from: "e1", to: "c1",
			wantErr: true, wantReason: ReasonCastlingRights},
		{name: "piece between king and rook", fen: "r3k2r/8/8/8/8/8/8/RN2K2R w KQkq - 0 1", from: "e1", to: "c1",
			wantErr: true, wantReason: ReasonCastlingBlocked},
		{name: "destination occupied", fen: "r3k2r/8/8/8/8/8/8/R3K1nR w KQkq - 0 1", from: "e1", to: "g1",
			wantErr: true, wantReason: ReasonCastlingBlocked},
		{name: "rook missing", fen: "r3k2r/8/8/8/8/8/8/R3K3 w Qkq - 0 1", from: "e1", to: "g1",
			wantErr: true, wantReason: ReasonCastlingSetup},
		{name: "enemy rook on the corner", fen: "r3k2r/8/8/8/8/8/8/R3K2r w Qkq - 0 1", from: "e1", to: "g1",
			wantErr: true, wantReason: ReasonCastlingSetup},
		{name: "king off its home square", fen: "r3k2r/8/8/8/8/8/8/R2K3R w kq - 0 1", from: "d1", to: "f1",
			wantErr: true, wantReason: ReasonCastlingSetup},
		{name: "king in check", fen: "r3k2r/8/8/8/4r3/8/8/R3K2R w KQkq - 0 1", from: "e1", to: "g1",
			wantErr: true, wantReason: ReasonCastlingAttacked},
		{name: "passes through attacked square", fen: "r3kr2/8/8/8/8/8/8/R3K2R w KQq - 0 1", from: "e1", to: "g1",
			wantErr: true, wantReason: ReasonCastlingAttacked},
		{name: "lands on attacked square", fen: "r3k1r1/8/8/8/8/8/8/R3K2R w KQq - 0 1", from: "e1", to: "g1",
			wantErr: true, wantReason: ReasonCastlingAttacked},
		{name: "black passes through attacked square", fen: "r3k2r/8/8/8/8/8/8/R2QK2R b KQkq - 0 1", from: "e8", to: "c8",
			wantErr: true, wantReason: ReasonCastlingAttacked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustBoardFromFEN(tt.fen)
			from, to := chess.MustSquare(tt.from), chess.MustSquare(tt.to)

			move, err := ValidateMove(board, from, to, false)
			if tt.wantErr {
				testutil.AssertRejected(t, err, errors.ErrIllegalMove, tt.wantReason)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, move.Type, chess.Castling)
			testutil.AssertEqual(t, move.Piece.Type, chess.King)
		})
	}
}

func TestValidateMove_CastlingAfterHistory(t *testing.T) {
	tests := []struct {
		name       string
		moves      []string
		from, to   string
		wantReason string
	}{
		{
			name:       "king moved and returned",
			moves:      []string{"e1e2", "a8a7", "e2e1", "a7a8"},
			from:       "e1",
			to:         "g1",
			wantReason: ReasonCastlingRights,
		},
		{
			name:       "kingside rook moved and returned",
			moves:      []string{"h1h2", "a8a7", "h2h1", "a7a8"},
			from:       "e1",
			to:         "g1",
			wantReason: ReasonCastlingRights,
		},
		{
			name:  "other rook moved",
			moves: []string{"h1h2", "a8a7", "h2h1", "a7a8"},
			from:  "e1",
			to:    "c1",
		},
		{
			name:       "black rook moved",
			moves:      []string{"e1f1", "a8a7", "f1e1", "a7a8", "h1h2"},
			from:       "e8",
			to:         "c8",
			wantReason: ReasonCastlingRights,
		},
		{
			name:  "black kingside after its queen rook moved",
			moves: []string{"e1f1", "a8a7", "f1e1", "a7a8", "h1h2"},
			from:  "e8",
			to:    "g8",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustBoardFromFEN(castlingFEN)
			for _, m := range tt.moves {
				if _, err := Play(board, chess.MustSquare(m[:2]), chess.MustSquare(m[2:])); err != nil {
					t.Fatalf("Play(%s) error = %v", m, err)
				}
			}

			move, err := ValidateMove(board, chess.MustSquare(tt.from), chess.MustSquare(tt.to), true)
			if tt.wantReason != "" {
				testutil.AssertRejected(t, err, errors.ErrIllegalMove, tt.wantReason)
				return
			}
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, move.Type, chess.Castling)
		})
	}
}

func TestPlay_CastlingMovesRook(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		rookFrom string
		rookTo   string
		wantFEN  string
	}{
		{
			name: "white kingside", fen: castlingFEN, from: "e1", to: "g1", rookFrom: "h1", rookTo: "f1",
			wantFEN: "r3k2r/8/8/8/8/8/8/R4RK1 b kq - 1 1",
		},
		{
			name: "white queenside", fen: castlingFEN, from: "e1", to: "c1", rookFrom: "a1", rookTo: "d1",
			wantFEN: "r3k2r/8/8/8/8/8/8/2KR3R b kq - 1 1",
		},
		{
			name: "black kingside", fen: "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", from: "e8", to: "g8", rookFrom: "h8", rookTo: "f8",
			wantFEN: "r4rk1/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
		{
			name: "black queenside", fen: "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", from: "e8", to: "c8", rookFrom: "a8", rookTo: "d8",
			wantFEN: "2kr3r/8/8/8/8/8/8/R3K2R w KQ - 1 2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := MustBoardFromFEN(tt.fen)
			colour := board.SideToMove()

			move, err := Play(board, chess.MustSquare(tt.from), chess.MustSquare(tt.to))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, move.Type, chess.Castling)

			testutil.AssertEqual(t, board.Get(chess.MustSquare(tt.to)), chess.Piece{Type: chess.King, Colour: colour})
			testutil.AssertEqual(t, board.Get(chess.MustSquare(tt.rookTo)), chess.Piece{Type: chess.Rook, Colour: colour})
			testutil.AssertEqual(t, board.Get(chess.MustSquare(tt.rookFrom)), chess.Empty)
			testutil.AssertEqual(t, board.Get(chess.MustSquare(tt.from)), chess.Empty)

			if got := BoardToFEN(board); got != tt.wantFEN {
				t.Errorf("BoardToFEN() = %q, want %q", got, tt.wantFEN)
			}
		})
	}
}

func TestCastlingRookMove(t *testing.T) {
	tests := []struct {
		king     chess.Move
		wantFrom string
		wantTo   string
	}{
		{chess.Move{From: chess.MustSquare("e1"), To: chess.MustSquare("g1")}, "h1", "f1"},
		{chess.Move{From: chess.MustSquare("e1"), To: chess.MustSquare("c1")}, "a1", "d1"},
		{chess.Move{From: chess.MustSquare("e8"), To: chess.MustSquare("g8")}, "h8", "f8"},
		{chess.Move{From: chess.MustSquare("e8"), To: chess.MustSquare("c8")}, "a8", "d8"},
	}
	for _, tt := range tests {
		from, to := castlingRookMove(tt.king)
		if from.String() != tt.wantFrom || to.String() != tt.wantTo {
			t.Errorf("castlingRookMove(%v) = %v, %v, want %s, %s", tt.king, from, to, tt.wantFrom, tt.wantTo)
		}
	}
}
