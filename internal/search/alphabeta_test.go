package search_test

import (
	"testing"

	"github.com/WiebeCnossen/draughts/internal/board"
	"github.com/WiebeCnossen/draughts/internal/eval"
	"github.com/WiebeCnossen/draughts/internal/search"
)

func TestMakesCutFindsAForcedCapture(t *testing.T) {
	pos := board.Empty
	pos = pos.PutPiece(26, board.WhiteMan)
	pos = pos.PutPiece(21, board.BlackMan)

	judge := eval.NewRandAap(board.NewGenerator())
	var meta search.Meta
	scope := search.NewDepthScope(2)

	result := search.MakesCut(judge, &meta, pos, scope, search.ZeroEval)
	if !result.HasMove {
		t.Fatal("expected a move to be found")
	}
	if result.Move.NumTaken == 0 {
		t.Errorf("expected the forced capture to be chosen, got a quiet move %+v", result.Move)
	}
	if meta.Nodes() == 0 {
		t.Error("expected at least one node to be counted")
	}
}

func TestMakesCutClampsCutOutsideEvalRange(t *testing.T) {
	judge := eval.NewRandAap(board.NewGenerator())
	var meta search.Meta
	scope := search.NewDepthScope(1)

	if got := search.MakesCut(judge, &meta, board.Initial(), scope, search.MaxEval+10).Evaluation; got != search.MaxEval {
		t.Errorf("cut above MaxEval: got %d, want %d", got, search.MaxEval)
	}
	if got := search.MakesCut(judge, &meta, board.Initial(), scope, search.MinEval).Evaluation; got != search.MinEval {
		t.Errorf("cut at or below MinEval: got %d, want %d", got, search.MinEval)
	}
}

func TestMakesCutSymmetricAtInitialPosition(t *testing.T) {
	judge := eval.NewRandAap(board.NewGenerator())
	var meta search.Meta
	scope := search.NewDepthScope(3)

	result := search.MakesCut(judge, &meta, board.Initial(), scope, search.ZeroEval+1)
	if !result.HasMove {
		t.Fatal("expected the symmetric initial position to have a move")
	}
}
