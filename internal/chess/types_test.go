package chess

import "testing"

func TestColourOpposite(t *testing.T) {
	if White.Opposite() != Black || Black.Opposite() != White {
		t.Error("Opposite() does not swap colours")
	}
	if White.String() != "White" || Black.String() != "Black" {
		t.Errorf("String() = %q, %q", White.String(), Black.String())
	}
}

func TestPieceTypeLetters(t *testing.T) {
	for p := Pawn; p < NumPieceTypes; p++ {
		if got := PieceTypeFromLetter(p.Letter()); got != p {
			t.Errorf("PieceTypeFromLetter(%c) = %v; want %v", p.Letter(), got, p)
		}
	}
	if PieceTypeFromLetter('x') != NoPiece {
		t.Error("PieceTypeFromLetter('x') should be NoPiece")
	}
	if PieceTypeFromLetter('n') != Knight {
		t.Error("lower case letters should be accepted")
	}
}

func TestPromotable(t *testing.T) {
	want := map[PieceType]bool{Queen: true, Rook: true, Bishop: true, Knight: true}
	for p := NoPiece; p < NumPieceTypes; p++ {
		if got := p.Promotable(); got != want[p] {
			t.Errorf("%v.Promotable() = %v; want %v", p, got, want[p])
		}
	}
}

func TestLines(t *testing.T) {
	if HomeLine(White) != 0 || HomeLine(Black) != 7 {
		t.Errorf("HomeLine = %d, %d; want 0, 7", HomeLine(White), HomeLine(Black))
	}
	if PawnLine(White) != 1 || PawnLine(Black) != 6 {
		t.Errorf("PawnLine = %d, %d; want 1, 6", PawnLine(White), PawnLine(Black))
	}
	if ColourOffset(White) != 1 || ColourOffset(Black) != -1 {
		t.Error("ColourOffset should be +1 for White and -1 for Black")
	}
	if BackRank[KingRow] != King {
		t.Errorf("BackRank[%d] = %v; want King", KingRow, BackRank[KingRow])
	}
}
