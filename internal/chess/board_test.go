package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestNewBoard(t *testing.T) {
	b := NewBoard()

	t.Run("initial state", func(t *testing.T) {
		if b.SideToMove() != White {
			t.Errorf("SideToMove() = %v; want White", b.SideToMove())
		}
		if b.Ply() != 0 {
			t.Errorf("Ply() = %d; want 0", b.Ply())
		}
		if b.EnPassant {
			t.Error("EnPassant = true; want false")
		}
		if b.Castling != AllCastling {
			t.Errorf("Castling = %b; want %b", b.Castling, AllCastling)
		}
	})

	t.Run("all squares empty", func(t *testing.T) {
		for _, sq := range AllSquares() {
			if got := b.Get(sq); !got.IsEmpty() {
				t.Errorf("Get(%v) = %v; want Empty", sq, got)
			}
		}
	})
}

func TestSetupInitialPosition(t *testing.T) {
	b := NewInitialBoard()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white bishop c1", "c1", W(Bishop)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white rook h1", "h1", W(Rook)},
		{"white pawn a2", "a2", W(Pawn)},
		{"white pawn e2", "e2", W(Pawn)},
		{"black pawn h7", "h7", B(Pawn)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black knight g8", "g8", B(Knight)},
		{"empty e3", "e3", Empty},
		{"empty d4", "d4", Empty},
		{"empty c6", "c6", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := b.Get(MustSquare(tt.sq))
			if got != tt.piece {
				t.Errorf("Get(%s) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	t.Run("piece counts", func(t *testing.T) {
		if n := len(b.Occupied(White)); n != 16 {
			t.Errorf("len(Occupied(White)) = %d; want 16", n)
		}
		if n := len(b.Occupied(Black)); n != 16 {
			t.Errorf("len(Occupied(Black)) = %d; want 16", n)
		}
	})
}

func TestBoardGetSet(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		b := NewBoard()
		b.Set(Sq(4, 3), W(Knight))
		if got := b.Get(Sq(4, 3)); got != W(Knight) {
			t.Errorf("Get(e4) = %v; want White Knight", got)
		}
		b.Clear(Sq(4, 3))
		if got := b.Get(Sq(4, 3)); !got.IsEmpty() {
			t.Errorf("Get(e4) after Clear = %v; want Empty", got)
		}
	})

	t.Run("off-board coordinates", func(t *testing.T) {
		b := NewInitialBoard()
		b.Set(Sq(8, 0), W(Queen))
		b.Set(Sq(-1, 3), W(Queen))
		if got := b.Get(Sq(8, 0)); !got.IsEmpty() {
			t.Errorf("Get((8,0)) = %v; want Empty", got)
		}
		if got := b.Get(Sq(4, 0)); got != W(King) {
			t.Errorf("Get(e1) = %v after invalid Set; want White King", got)
		}
	})

	t.Run("empty piece of any colour normalises", func(t *testing.T) {
		b := NewBoard()
		b.Set(Sq(0, 0), Piece{Type: NoPiece, Colour: White})
		if got := b.Get(Sq(0, 0)); got != Empty {
			t.Errorf("Get(a1) = %#v; want Empty", got)
		}
	})
}

func TestBoardClone(t *testing.T) {
	original := NewInitialBoard()
	original.AppendMove(Move{From: Sq(4, 1), To: Sq(4, 3), Piece: W(Pawn), Type: Attack})

	clone := original.Clone()
	if diff := cmp.Diff(original.History, clone.History); diff != "" {
		t.Errorf("Clone() history mismatch (-want +got):\n%s", diff)
	}

	clone.Set(Sq(4, 0), Empty)
	clone.AppendMove(Move{From: Sq(4, 6), To: Sq(4, 4), Piece: B(Pawn), Type: Attack})
	clone.History[0].Type = Capture

	if got := original.Get(Sq(4, 0)); got != W(King) {
		t.Errorf("original e1 = %v after mutating clone; want White King", got)
	}
	if len(original.History) != 1 {
		t.Errorf("len(original.History) = %d; want 1", len(original.History))
	}
	if original.History[0].Type != Attack {
		t.Errorf("original.History[0].Type = %v; want attack", original.History[0].Type)
	}
}

func TestSideToMove(t *testing.T) {
	tests := []struct {
		name    string
		initial Colour
		plies   int
		want    Colour
	}{
		{"white start no moves", White, 0, White},
		{"white start one move", White, 1, Black},
		{"white start two moves", White, 2, White},
		{"black start no moves", Black, 0, Black},
		{"black start one move", Black, 1, White},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBoard()
			b.InitialToMove = tt.initial
			for i := 0; i < tt.plies; i++ {
				b.AppendMove(Move{})
			}
			if got := b.SideToMove(); got != tt.want {
				t.Errorf("SideToMove() = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestFindKing(t *testing.T) {
	b := NewBoard()
	if _, ok := b.FindKing(White); ok {
		t.Error("FindKing(White) on empty board: ok = true; want false")
	}
	b.Set(Sq(6, 7), B(King))
	sq, ok := b.FindKing(Black)
	if !ok || sq != Sq(6, 7) {
		t.Errorf("FindKing(Black) = %v, %v; want g8, true", sq, ok)
	}
}

func TestHistoryQueries(t *testing.T) {
	b := NewInitialBoard()
	b.AppendMove(Move{From: Sq(6, 0), To: Sq(5, 2), Piece: W(Knight), Type: Attack})
	b.AppendMove(Move{From: Sq(4, 7), To: Sq(4, 6), Piece: B(King), Type: Attack})

	if !b.PieceMoved(B(King)) {
		t.Error("PieceMoved(Black King) = false; want true")
	}
	if b.PieceMoved(W(King)) {
		t.Error("PieceMoved(White King) = true; want false")
	}
	if !b.SquareTouched(Sq(6, 0)) {
		t.Error("SquareTouched(g1) = false; want true")
	}
	if b.SquareTouched(Sq(7, 0)) {
		t.Error("SquareTouched(h1) = true; want false")
	}
	last, ok := b.LastMove()
	if !ok || last.Piece != B(King) {
		t.Errorf("LastMove() = %v, %v; want black king move", last, ok)
	}
}
