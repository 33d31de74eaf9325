package engine

import "github.com/lgbarn/chesslab-go/internal/chess"

// KingPair tracks the king of each colour so check can be tested after every
// candidate move without searching the board.
type KingPair struct {
	board *Board
	kings [2]*Piece
}

func newKingPair(b *Board) *KingPair {
	return &KingPair{board: b}
}

func (k *KingPair) set(king *Piece) {
	k.kings[king.Colour] = king
}

// King returns the king of the given colour, or nil if it is not on the board.
func (k *KingPair) King(colour chess.Colour) *Piece {
	king := k.kings[colour]
	if king == nil || k.board.pieces[king.Cell] != king {
		return nil
	}
	return king
}

// InCheck reports whether the king of the given colour is attacked right now.
// A side without a king is never in check.
func (k *KingPair) InCheck(colour chess.Colour) bool {
	king := k.King(colour)
	return king != nil && k.board.IsCheck(king)
}

// Check updates both kings' InCheck latches and returns the king in check,
// or nil. White is looked at first; at most one king is reported.
func (k *KingPair) Check() *Piece {
	var checked *Piece
	for _, colour := range chess.Colours {
		king := k.King(colour)
		if king == nil {
			continue
		}
		king.InCheck = false
		if checked == nil && k.board.IsCheck(king) {
			king.InCheck = true
			checked = king
		}
	}
	return checked
}
