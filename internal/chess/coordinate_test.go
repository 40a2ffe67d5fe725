package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
)

func TestParseSquare(t *testing.T) {
	tests := []struct {
		in      string
		want    Coordinate
		wantErr bool
	}{
		{"a1", Sq(0, 0), false},
		{"e2", Sq(4, 1), false},
		{"H8", Sq(7, 7), false},
		{"4,1", Sq(4, 1), false},
		{" 7 , 6 ", Sq(7, 6), false},
		{"9,2", Sq(9, 2), false},
		{"i1", Coordinate{}, true},
		{"a9", Coordinate{}, true},
		{"e", Coordinate{}, true},
		{"x,1", Coordinate{}, true},
		{"", Coordinate{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSquare(tt.in)
			if tt.wantErr {
				if !errors.Is(err, chesserrors.ErrInvalidSquare) {
					t.Errorf("ParseSquare(%q) error = %v, want ErrInvalidSquare", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSquare(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseSquare(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCoordinateString(t *testing.T) {
	tests := []struct {
		c    Coordinate
		want string
	}{
		{Sq(0, 0), "a1"},
		{Sq(4, 3), "e4"},
		{Sq(7, 7), "h8"},
		{Sq(8, 0), "(8,0)"},
		{Sq(-1, 2), "(-1,2)"},
	}
	for _, tt := range tests {
		if got := tt.c.String(); got != tt.want {
			t.Errorf("%#v.String() = %q, want %q", tt.c, got, tt.want)
		}
	}
}

func TestPieceLetters(t *testing.T) {
	if got := W(Knight).FENLetter(); got != 'N' {
		t.Errorf("W(Knight).FENLetter() = %c, want N", got)
	}
	if got := B(Queen).FENLetter(); got != 'q' {
		t.Errorf("B(Queen).FENLetter() = %c, want q", got)
	}
	for _, l := range []byte("PNBRQKpnbrqk") {
		if _, ok := PieceTypeFromLetter(l); !ok {
			t.Errorf("PieceTypeFromLetter(%c) ok = false", l)
		}
	}
	if _, ok := PieceTypeFromLetter('x'); ok {
		t.Error("PieceTypeFromLetter(x) ok = true")
	}
}

func TestMoveHelpers(t *testing.T) {
	push := Move{From: Sq(4, 1), To: Sq(4, 3), Piece: W(Pawn), Type: Attack}
	if !push.IsDoublePawnPush() {
		t.Error("IsDoublePawnPush() = false for e2e4")
	}
	if push.UCI() != "e2e4" {
		t.Errorf("UCI() = %q, want e2e4", push.UCI())
	}
	ep := Move{From: Sq(4, 4), To: Sq(3, 5), Piece: W(Pawn), Type: EnPassant}
	if !ep.IsCapture() {
		t.Error("IsCapture() = false for en passant")
	}
	if ep.IsDoublePawnPush() {
		t.Error("IsDoublePawnPush() = true for a diagonal move")
	}
}
