package engine

import (
	stderrors "errors"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*chess.Board) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.MustSquare("e1")) == chess.W(chess.King) &&
					b.Get(chess.MustSquare("e8")) == chess.B(chess.King) &&
					b.Get(chess.MustSquare("e2")) == chess.W(chess.Pawn) &&
					b.Get(chess.MustSquare("e7")) == chess.B(chess.Pawn) &&
					b.SideToMove() == chess.White &&
					b.Castling == chess.AllCastling &&
					!b.EnPassant
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Get(chess.MustSquare("e4")) == chess.W(chess.Pawn) &&
					b.Get(chess.MustSquare("e2")) == chess.Empty &&
					b.SideToMove() == chess.Black &&
					b.EnPassant &&
					b.EPSquare == chess.MustSquare("e3")
			},
		},
		{
			name: "partial castling and clocks",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 12 40",
			checkFn: func(b *chess.Board) bool {
				return b.Castling == chess.WhiteKingside|chess.BlackQueenside &&
					b.HalfmoveClock == 12 &&
					b.MoveNumber == 40
			},
		},
		{
			name: "no castling rights",
			fen:  "8/8/8/8/8/8/8/4K2k w - - 0 1",
			checkFn: func(b *chess.Board) bool {
				return b.Castling == chess.NoCastling
			},
		},
		{
			name: "placement only",
			fen:  "8/8/8/8/8/8/8/4K2k",
			checkFn: func(b *chess.Board) bool {
				return b.SideToMove() == chess.White &&
					b.Castling == chess.AllCastling &&
					b.MoveNumber == 1
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error = %v", tt.fen, err)
			}
			if !tt.checkFn(board) {
				t.Errorf("NewBoardFromFEN(%q) produced unexpected board", tt.fen)
			}
		})
	}
}

func TestNewBoardFromFEN_Invalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty string", ""},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"rank too long", "9/8/8/8/8/8/8/8 w - - 0 1"},
		{"rank too short", "7/8/8/8/8/8/8/8 w - - 0 1"},
		{"pieces overflow rank", "rnbqkbnrp/8/8/8/8/8/8/8 w - - 0 1"},
		{"unknown piece", "rnbqkbnx/8/8/8/8/8/8/8 w - - 0 1"},
		{"bad side", "8/8/8/8/8/8/8/8 x - - 0 1"},
		{"bad castling", "8/8/8/8/8/8/8/8 w KX - 0 1"},
		{"bad en passant square", "8/8/8/8/8/8/8/8 w - z9 0 1"},
		{"en passant on wrong rank", "8/8/8/8/8/8/8/8 w - e3 0 1"},
		{"negative halfmove clock", "8/8/8/8/8/8/8/8 w - - -1 1"},
		{"zero fullmove number", "8/8/8/8/8/8/8/8 w - - 0 0"},
		{"too many fields", "8/8/8/8/8/8/8/8 w - - 0 1 extra"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewBoardFromFEN(tt.fen)
			if !stderrors.Is(err, errors.ErrInvalidFEN) {
				t.Errorf("NewBoardFromFEN(%q) error = %v, want %v", tt.fen, err, errors.ErrInvalidFEN)
			}
		})
	}
}

func TestBoardToFEN_RoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pp1ppppp/8/2p5/4P3/8/PPPP1PPP/RNBQKBNR w KQkq c6 0 2",
		"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1",
		"8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 12 57",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			board := MustBoardFromFEN(fen)
			if got := BoardToFEN(board); got != fen {
				t.Errorf("BoardToFEN() = %q, want %q", got, fen)
			}
		})
	}
}

func TestBoardToFEN_RightsNeedPieces(t *testing.T) {
	// Rights claimed by the setup are dropped when the rook is missing.
	board := MustBoardFromFEN("4k3/8/8/8/8/8/8/4K2R w KQ - 0 1")
	want := "4k3/8/8/8/8/8/8/4K2R w K - 0 1"
	if got := BoardToFEN(board); got != want {
		t.Errorf("BoardToFEN() = %q, want %q", got, want)
	}
}

func TestBoardToFEN_AfterMoves(t *testing.T) {
	board := NewInitialBoard()
	for _, m := range []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1c4", "g8f6"} {
		if _, err := Play(board, chess.MustSquare(m[:2]), chess.MustSquare(m[2:])); err != nil {
			t.Fatalf("Play(%s) error = %v", m, err)
		}
	}

	want := "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"
	if got := BoardToFEN(board); got != want {
		t.Errorf("BoardToFEN() = %q, want %q", got, want)
	}
}

func TestMustBoardFromFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustBoardFromFEN(invalid) did not panic")
		}
	}()
	MustBoardFromFEN("not a fen")
}
