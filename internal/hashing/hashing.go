// Package hashing provides position keys and duplicate detection for boards.
package hashing

import (
	"sync"

	"github.com/lgbarn/chesslab-go/internal/chess"
	"github.com/lgbarn/chesslab-go/internal/engine"
)

const numCells = chess.BoardSize * chess.BoardSize

var (
	zobristOnce sync.Once

	zobristPieces    [2][chess.NumPieceTypes][numCells]uint64
	zobristMoved     [numCells]uint64
	zobristEnPassant [numCells]uint64
)

func initZobrist() {
	zobristOnce.Do(func() {
		seed := uint64(0x9E3779B97F4A7C15)
		next := func() uint64 {
			seed += 0x9E3779B97F4A7C15
			z := seed
			z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
			z = (z ^ (z >> 27)) * 0x94D049BB133111EB
			return z ^ (z >> 31)
		}

		for colour := 0; colour < 2; colour++ {
			for kind := chess.Pawn; kind < chess.NumPieceTypes; kind++ {
				for sq := 0; sq < numCells; sq++ {
					zobristPieces[colour][kind][sq] = next()
				}
			}
		}
		for sq := 0; sq < numCells; sq++ {
			zobristMoved[sq] = next()
			zobristEnPassant[sq] = next()
		}
	})
}

func index(cell chess.Cell) int {
	return cell.Col*chess.BoardSize + cell.Row
}

// Position returns the Zobrist key of a board. It covers every piece's kind,
// colour and cell plus its has-moved and en passant flags, so two boards
// with the same key can be treated as the same state.
func Position(board *engine.Board) uint64 {
	initZobrist()

	var h uint64
	for _, p := range board.Pieces() {
		if !p.Cell.Valid() || p.Kind <= chess.NoPiece || p.Kind >= chess.NumPieceTypes {
			continue
		}
		sq := index(p.Cell)
		h ^= zobristPieces[p.Colour][p.Kind][sq]
		if p.HasMoved {
			h ^= zobristMoved[sq]
		}
		if p.CanEnPassant {
			h ^= zobristEnPassant[sq]
		}
	}
	return h
}

// DuplicateDetector remembers positions and reports the ones seen before.
type DuplicateDetector struct {
	// seen maps a position key to the name of the first holder
	seen map[uint64]string
	// maxCapacity bounds the number of keys kept; 0 means unlimited
	maxCapacity    int
	duplicateCount int
}

// NewDuplicateDetector creates a detector. maxCapacity of 0 means unlimited.
func NewDuplicateDetector(maxCapacity int) *DuplicateDetector {
	return &DuplicateDetector{
		seen:        make(map[uint64]string),
		maxCapacity: maxCapacity,
	}
}

// CheckAndAdd records a position under a name. If the position was already
// recorded it returns the earlier name and true.
func (d *DuplicateDetector) CheckAndAdd(key uint64, name string) (string, bool) {
	if first, ok := d.seen[key]; ok {
		d.duplicateCount++
		return first, true
	}
	if !d.IsFull() {
		d.seen[key] = name
	}
	return "", false
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of distinct positions recorded.
func (d *DuplicateDetector) UniqueCount() int {
	return len(d.seen)
}

// IsFull reports whether the capacity limit has been reached.
func (d *DuplicateDetector) IsFull() bool {
	return d.maxCapacity > 0 && len(d.seen) >= d.maxCapacity
}

// Reset forgets every position.
func (d *DuplicateDetector) Reset() {
	d.seen = make(map[uint64]string)
	d.duplicateCount = 0
}
