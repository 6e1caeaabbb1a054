package board

import "testing"

// perft counts the leaf nodes reachable in exactly depth plies from pos.
func perft(gen *Generator, pos Position, depth int) int64 {
	if depth == 0 {
		return 1
	}
	moves := gen.LegalMoves(pos)
	if depth == 1 {
		return int64(len(moves))
	}
	var nodes int64
	for _, mv := range moves {
		nodes += perft(gen, pos.Go(mv), depth-1)
	}
	return nodes
}

func TestPerftInitialPosition(t *testing.T) {
	gen := NewGenerator()
	pos := Initial()

	tests := []struct {
		depth    int
		expected int64
	}{
		{1, 9},
		{2, 81},
		{3, 658},
		{4, 4265},
	}

	for _, tc := range tests {
		got := perft(gen, pos, tc.depth)
		if got != tc.expected {
			t.Errorf("perft(%d) = %d, want %d", tc.depth, got, tc.expected)
		}
	}
}

func TestLegalMovesEmptyPositionIsLoss(t *testing.T) {
	gen := NewGenerator()
	if moves := gen.LegalMoves(Empty); len(moves) != 0 {
		t.Fatalf("expected no legal moves on an empty board, got %d", len(moves))
	}
}

// TestForcedMaximumCapture builds a position where a white man on 26 can
// either capture one piece (via 31, landing 37) or two in a chain (via 21
// then 12, landing 8), and asserts only the two-piece chain survives.
func TestForcedMaximumCapture(t *testing.T) {
	pos := Empty
	pos = pos.PutPiece(26, WhiteMan)
	pos = pos.PutPiece(21, BlackMan)
	pos = pos.PutPiece(12, BlackMan)
	pos = pos.PutPiece(31, BlackMan)

	gen := NewGenerator()
	moves := gen.LegalMoves(pos)
	if len(moves) == 0 {
		t.Fatal("expected at least one capture")
	}
	for _, mv := range moves {
		if mv.NumTaken != 2 {
			t.Fatalf("found move %s with %d captures, want the forced two-piece chain", mv.FullString(), mv.NumTaken)
		}
	}
	found := false
	for _, mv := range moves {
		if mv.From == 26 && mv.To == 8 && mv.GoesVia(21) && mv.GoesVia(12) {
			found = true
		}
	}
	if !found {
		t.Errorf("expected the 26x21x12 landing on 8 chain among %v", moves)
	}
}

// TestFlyingKingCaptureDistance checks a king can capture an enemy piece
// many squares away and choose among several empty landing squares beyond
// it.
func TestFlyingKingCaptureDistance(t *testing.T) {
	pos := Empty
	pos = pos.PutPiece(45, WhiteKing)
	pos = pos.PutPiece(31, BlackMan)

	gen := NewGenerator()
	moves := gen.LegalMoves(pos)
	if len(moves) == 0 {
		t.Fatal("expected the flying king to capture")
	}
	for _, mv := range moves {
		if mv.NumTaken != 1 || mv.Taken[0] != 31 {
			t.Errorf("unexpected capture move %s", mv.FullString())
		}
	}
	landings := map[Field]bool{27: true, 22: true, 18: true, 13: true, 9: true, 4: true}
	for _, mv := range moves {
		if !landings[mv.To] {
			t.Errorf("unexpected landing square %d", mv.To)
		}
	}
	if len(moves) != len(landings) {
		t.Errorf("expected one move per landing square, got %d moves for %d squares", len(moves), len(landings))
	}
}

func TestPromotionOnlyAtFinalLandingField(t *testing.T) {
	pos := Empty
	pos = pos.PutPiece(6, WhiteMan)
	mv := Shift(6, 1)
	next := pos.Go(mv)
	if next.PieceAt(1) != WhiteKing {
		t.Fatalf("expected promotion to king on reaching the back rank, got %v", next.PieceAt(1))
	}
}
