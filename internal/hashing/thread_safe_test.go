package hashing

import (
	"sync"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

func TestThreadSafeDuplicateDetector_Concurrent(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)
	board := engine.MustBoardFromFEN(engine.InitialFEN)

	const numGames = 100
	const numWorkers = 10
	gamesPerWorker := numGames / numWorkers

	boards := make([]*chess.Board, numGames)
	for i := range boards {
		boards[i] = board.Clone()
	}

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			start := workerID * gamesPerWorker
			end := start + gamesPerWorker
			for j := start; j < end; j++ {
				detector.CheckAndAdd(boards[j])
			}
		}(i)
	}
	wg.Wait()

	if detector.DuplicateCount() != 99 {
		t.Errorf("Expected 99 duplicates, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != 1 {
		t.Errorf("Expected 1 unique, got %d", detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_DifferentPositions(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 0)

	fens := []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"rnbqkbnr/pppppppp/8/8/3P4/8/PPP1PPPP/RNBQKBNR b KQkq d3 0 1",
		"rnbqkbnr/pppppppp/8/8/8/5N2/PPPPPPPP/RNBQKB1R b KQkq - 1 1",
		"rnbqkbnr/pppppppp/8/8/2P5/8/PP1PPPPP/RNBQKBNR b KQkq c3 0 1",
	}

	boards := make([]*chess.Board, len(fens))
	for i, fen := range fens {
		board, err := engine.NewBoardFromFEN(fen)
		if err != nil {
			t.Fatalf("Failed to parse FEN %s: %v", fen, err)
		}
		boards[i] = board
	}

	var wg sync.WaitGroup
	for i := range fens {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			detector.CheckAndAdd(boards[idx])
		}(i)
	}
	wg.Wait()

	if detector.DuplicateCount() != 0 {
		t.Errorf("Expected 0 duplicates, got %d", detector.DuplicateCount())
	}
	if detector.UniqueCount() != len(fens) {
		t.Errorf("Expected %d unique, got %d", len(fens), detector.UniqueCount())
	}
}

func TestThreadSafeDuplicateDetector_NoRace(t *testing.T) {
	detector := NewThreadSafeDuplicateDetector(false, 10)
	board := engine.MustBoardFromFEN(engine.InitialFEN)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			detector.CheckAndAdd(board)
			_ = detector.DuplicateCount()
			_ = detector.UniqueCount()
			_ = detector.IsFull()
		}()
	}
	wg.Wait()
}
