package hashing

import (
	"hash/fnv"
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// zobristSeed fixes the key tables so keys are stable across runs.
const zobristSeed = 0x5eed_c4e5

var (
	pieceKeys    [2][chess.King + 1][chess.BoardSize * chess.BoardSize]uint64
	sideKey      uint64
	castlingKeys [4]uint64
	epFileKeys   [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed))
	for c := range pieceKeys {
		for t := range pieceKeys[c] {
			for sq := range pieceKeys[c][t] {
				pieceKeys[c][t][sq] = rng.Uint64()
			}
		}
	}
	sideKey = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range epFileKeys {
		epFileKeys[i] = rng.Uint64()
	}
}

var castlingOrder = []struct {
	colour   chess.Colour
	kingside bool
}{
	{chess.White, true},
	{chess.White, false},
	{chess.Black, true},
	{chess.Black, false},
}

// GenerateZobristHash returns the Zobrist key of the position on board:
// piece placement, side to move, castling availability and en passant
// file. Boards reached by different move orders share a key.
func GenerateZobristHash(board *chess.Board) uint64 {
	var key uint64
	for _, sq := range chess.AllSquares() {
		p := board.Get(sq)
		if p.IsEmpty() {
			continue
		}
		key ^= pieceKeys[p.Colour][p.Type][sq.Rank*chess.BoardSize+sq.File]
	}
	if board.SideToMove() == chess.Black {
		key ^= sideKey
	}
	for i, opt := range castlingOrder {
		if engine.CastlingAvailable(board, opt.colour, opt.kingside) {
			key ^= castlingKeys[i]
		}
	}
	if target, ok := engine.EnPassantTarget(board); ok {
		key ^= epFileKeys[target.File]
	}
	return key
}

// WeakHash is a cheap secondary hash of the piece placement only.
func WeakHash(board *chess.Board) uint32 {
	h := fnv.New32a()
	var buf [chess.BoardSize * chess.BoardSize]byte
	for i, sq := range chess.AllSquares() {
		if p := board.Get(sq); !p.IsEmpty() {
			buf[i] = p.FENLetter()
		}
	}
	h.Write(buf[:])
	return h.Sum32()
}
