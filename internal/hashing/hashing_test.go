package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

func mustPlay(t *testing.T, board *chess.Board, moves ...string) {
	t.Helper()
	for _, m := range moves {
		if _, err := engine.Play(board, chess.MustSquare(m[:2]), chess.MustSquare(m[2:])); err != nil {
			t.Fatalf("Play(%s) error = %v", m, err)
		}
	}
}

func TestZobristHashConsistency(t *testing.T) {
	board1 := chess.NewInitialBoard()
	board2 := engine.MustBoardFromFEN(engine.InitialFEN)

	hash1 := GenerateZobristHash(board1)
	hash2 := GenerateZobristHash(board2)

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDifferentPositions(t *testing.T) {
	board1 := chess.NewInitialBoard()

	board2 := chess.NewInitialBoard()
	board2.Clear(chess.MustSquare("e2"))
	board2.Set(chess.MustSquare("e4"), chess.W(chess.Pawn))

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Different positions produced the same hash")
	}
}

func TestZobristHashTransposition(t *testing.T) {
	board1 := chess.NewInitialBoard()
	mustPlay(t, board1, "g1f3", "g8f6", "b1c3", "b8c6")

	board2 := chess.NewInitialBoard()
	mustPlay(t, board2, "b1c3", "b8c6", "g1f3", "g8f6")

	if GenerateZobristHash(board1) != GenerateZobristHash(board2) {
		t.Error("Transposed move orders produced different hashes")
	}
}

func TestZobristHashMatchesFEN(t *testing.T) {
	board := chess.NewInitialBoard()
	mustPlay(t, board, "e2e4", "c7c5")

	fromFEN := engine.MustBoardFromFEN(engine.BoardToFEN(board))
	if GenerateZobristHash(board) != GenerateZobristHash(fromFEN) {
		t.Errorf("Played board and its FEN hash differently (%s)", engine.BoardToFEN(board))
	}
}

func TestSideToMoveAffectsHash(t *testing.T) {
	board1 := engine.MustBoardFromFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	board2 := engine.MustBoardFromFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Same position with different side to move should have different hashes")
	}
}

func TestCastlingAffectsHash(t *testing.T) {
	board1 := engine.MustBoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	board2 := engine.MustBoardFromFEN("r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1")

	if GenerateZobristHash(board1) == GenerateZobristHash(board2) {
		t.Error("Different castling rights should have different hashes")
	}
}

func TestWeakHashConsistency(t *testing.T) {
	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()

	if WeakHash(board1) != WeakHash(board2) {
		t.Errorf("Identical boards produced different weak hashes: %x != %x", WeakHash(board1), WeakHash(board2))
	}
}

func TestDuplicateDetector(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	board := chess.NewInitialBoard()

	if detector.CheckAndAdd(board) {
		t.Error("First position was marked as duplicate")
	}
	if !detector.CheckAndAdd(board) {
		t.Error("Duplicate position was not detected")
	}
	if detector.DuplicateCount() != 1 {
		t.Errorf("DuplicateCount() = %d, want 1", detector.DuplicateCount())
	}
	if detector.CheckAndAdd(nil) {
		t.Error("CheckAndAdd(nil) = true, want false")
	}
}

func TestDuplicateDetectorExactMatch(t *testing.T) {
	short := chess.NewInitialBoard()
	mustPlay(t, short, "g1f3", "g8f6")

	long := chess.NewInitialBoard()
	mustPlay(t, long, "g1f3", "g8f6", "f3g1", "f6g8", "g1f3", "g8f6")

	tests := []struct {
		name  string
		exact bool
		want  bool
	}{
		{"position only", false, true},
		{"position and ply count", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detector := NewDuplicateDetector(tt.exact, 0)
			detector.CheckAndAdd(short)
			if got := detector.CheckAndAdd(long); got != tt.want {
				t.Errorf("CheckAndAdd(long) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDuplicateDetectorDifferentGames(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)

	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()
	mustPlay(t, board2, "e2e4")

	if detector.CheckAndAdd(board1) {
		t.Error("Board 1 was incorrectly marked as duplicate")
	}
	if detector.CheckAndAdd(board2) {
		t.Error("Board 2 was incorrectly marked as duplicate")
	}
	if detector.DuplicateCount() != 0 {
		t.Errorf("DuplicateCount() = %d, want 0", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 2 {
		t.Errorf("UniqueCount() = %d, want 2", detector.UniqueCount())
	}
}

func TestDuplicateDetectorCapacity(t *testing.T) {
	detector := NewDuplicateDetector(false, 1)

	board1 := chess.NewInitialBoard()
	board2 := chess.NewInitialBoard()
	mustPlay(t, board2, "e2e4")

	detector.CheckAndAdd(board1)
	if !detector.IsFull() {
		t.Error("IsFull() = false after reaching capacity")
	}
	if detector.CheckAndAdd(board2) {
		t.Error("New position reported as duplicate when full")
	}
	if detector.CheckAndAdd(board2) {
		t.Error("Position recorded after capacity was reached")
	}
	if !detector.CheckAndAdd(board1) {
		t.Error("Stored position not detected when full")
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("UniqueCount() = %d, want 1", detector.UniqueCount())
	}
}

func TestDuplicateDetectorReset(t *testing.T) {
	detector := NewDuplicateDetector(false, 0)
	board := chess.NewInitialBoard()

	detector.CheckAndAdd(board)
	detector.CheckAndAdd(board)

	if detector.DuplicateCount() != 1 {
		t.Errorf("Expected 1 duplicate before reset, got %d", detector.DuplicateCount())
	}

	detector.Reset()

	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates after reset, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 0 {
		t.Errorf("Expected 0 unique positions after reset, got %d", detector.UniqueCount())
	}
}
