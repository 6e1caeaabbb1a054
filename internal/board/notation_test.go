package board

import "testing"

func TestParseMoveShortForm(t *testing.T) {
	gen := NewGenerator()
	pos := Initial()
	mv, err := ParseMove(gen, pos, "32-28")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if mv.From != 31 || mv.To != 27 {
		t.Errorf("got from=%d to=%d, want from=31 to=27", mv.From, mv.To)
	}
}

func TestParseMoveLongFormCapture(t *testing.T) {
	gen := NewGenerator()
	pos := Empty
	pos = pos.PutPiece(26, WhiteMan)
	pos = pos.PutPiece(21, BlackMan)
	pos = pos.PutPiece(12, BlackMan)

	mv, err := ParseMove(gen, pos, "27x9x13x22")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	if mv.From != 26 || mv.To != 8 || mv.NumTaken != 2 || !mv.GoesVia(21) || !mv.GoesVia(12) {
		t.Errorf("got %+v", mv)
	}
}

func TestParseMoveRejectsUnknownShortForm(t *testing.T) {
	gen := NewGenerator()
	if _, err := ParseMove(gen, Initial(), "32-23"); err == nil {
		t.Fatal("expected an error for a move with no matching legal move")
	}
}

func TestParseMoveRejectsGarbage(t *testing.T) {
	gen := NewGenerator()
	if _, err := ParseMove(gen, Initial(), "not-a-move"); err == nil {
		t.Fatal("expected an error for unparsable input")
	}
}
