package board

import (
	"strings"
	"testing"
)

func TestFenRoundTripsInitialPosition(t *testing.T) {
	pos := Initial()
	fen := pos.Fen()

	got, err := ParseFen(fen)
	if err != nil {
		t.Fatalf("ParseFen(%q): %v", fen, err)
	}
	if got != pos {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, pos)
	}
}

func TestSFenRoundTripsInitialPosition(t *testing.T) {
	pos := Initial()
	sfen := pos.SFen()

	got, err := ParseFen(sfen)
	if err != nil {
		t.Fatalf("ParseFen(%q): %v", sfen, err)
	}
	if got != pos {
		t.Fatalf("round trip mismatch: got %+v, want %+v", got, pos)
	}
}

func TestParseFenRejectsShortInput(t *testing.T) {
	if _, err := ParseFen("w"); err == nil {
		t.Fatal("expected an error for a too-short fen string")
	}
}

func TestParseFenRejectsBadSideChar(t *testing.T) {
	bad := "x" + Initial().Fen()[1:]
	if _, err := ParseFen(bad); err == nil {
		t.Fatal("expected an error for an invalid side-to-move character")
	}
}

func TestParseFenRunLengthLetters(t *testing.T) {
	// "r" packs five consecutive white men, "k" five consecutive black men,
	// with eight "5" tokens covering the forty empty fields between them.
	fen := "w" + "r" + strings.Repeat("5", 8) + "k"
	got, err := ParseFen(fen)
	if err != nil {
		t.Fatalf("ParseFen(%q): %v", fen, err)
	}
	for f := Field(0); f < 5; f++ {
		if got.PieceAt(f) != WhiteMan {
			t.Errorf("field %d: got %v, want WhiteMan", f, got.PieceAt(f))
		}
	}
	for f := Field(45); f < 50; f++ {
		if got.PieceAt(f) != BlackMan {
			t.Errorf("field %d: got %v, want BlackMan", f, got.PieceAt(f))
		}
	}
}
