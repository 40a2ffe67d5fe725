// Package hashing provides position keys and duplicate detection for
// replayed games.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// DuplicateDetector tracks seen final positions for duplicate detection.
type DuplicateDetector struct {
	// hashTable stores seen signatures by Zobrist key
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same number of plies
	useExactMatch bool
	// maxCapacity limits stored signatures (0 = unlimited)
	maxCapacity int
	size        int
	// duplicateCount tracks number of duplicates found
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// Plies is the number of half-moves played to reach it
	Plies int
	// WeakHash is a fast hash for quick comparison
	WeakHash uint32
}

// NewDuplicateDetector creates a new duplicate detector.
// maxCapacity of 0 means unlimited capacity.
func NewDuplicateDetector(exactMatch bool, maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
		maxCapacity:   maxCapacity,
	}
}

// Signature computes the signature of the position on board.
func Signature(board *chess.Board) GameSignature {
	return GameSignature{
		Hash:     GenerateZobristHash(board),
		Plies:    board.Ply(),
		WeakHash: WeakHash(board),
	}
}

// CheckAndAdd checks if the board's position was seen before and records it.
// Returns true if it is a duplicate. Once full, new positions are checked
// but no longer recorded.
func (d *DuplicateDetector) CheckAndAdd(board *chess.Board) bool {
	if board == nil {
		return false
	}

	sig := Signature(board)

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true
		}
	}

	if d.IsFull() {
		return false
	}
	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	d.size++
	return false
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.WeakHash != b.WeakHash {
		return false
	}
	if d.useExactMatch && a.Plies != b.Plies {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return d.size
}

// IsFull returns true if the detector has reached its capacity limit.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && d.size >= d.maxCapacity
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.size = 0
	d.duplicateCount = 0
}
