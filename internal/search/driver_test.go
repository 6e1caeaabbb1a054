package search_test

import (
	"testing"

	"github.com/WiebeCnossen/draughts/internal/board"
	"github.com/WiebeCnossen/draughts/internal/eval"
	"github.com/WiebeCnossen/draughts/internal/search"
)

func TestMTDFConvergesOnAMove(t *testing.T) {
	judge := eval.NewRandAap(board.NewGenerator())
	result := search.MTDF(judge, nil, board.Initial(), 4, search.ZeroEval, search.NewDepthScope)
	if result.Meta.Nodes() == 0 {
		t.Error("expected MTD(f) to visit at least one node")
	}
	moves := judge.Moves(board.Initial())
	found := false
	for _, mv := range moves {
		if mv == result.Move {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("MTD(f) returned a move %+v not among the legal moves", result.Move)
	}
}

func TestBestNodeSearchConvergesOnAMove(t *testing.T) {
	judge := eval.NewRandAap(board.NewGenerator())
	scope := search.NewDepthScope(3)
	result := search.BestNodeSearch(judge, nil, board.Initial(), scope, search.ZeroEval)
	if result.Meta.Nodes() == 0 {
		t.Error("expected BNS to visit at least one node")
	}

	moves := judge.Moves(board.Initial())
	found := false
	for _, mv := range moves {
		if mv == result.Move {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("BNS returned a move %+v not among the legal moves", result.Move)
	}
}

func TestParallelMakesCutMatchesSequentialOutcome(t *testing.T) {
	shared := search.NewTable()
	gen := board.NewGenerator()
	judges := make([]search.Judge, 4)
	for i := range judges {
		judges[i] = eval.NewSlonenok(gen, shared)
	}
	pool := search.NewJudgePool(judges)

	primary := eval.NewSlonenok(gen, shared)
	scope := search.NewDepthScope(7)

	var parallelMeta search.Meta
	parallelResult := search.ParallelMakesCut(pool, primary, &parallelMeta, board.Initial(), scope, search.ZeroEval+1)

	freshShared := search.NewTable()
	sequential := eval.NewSlonenok(gen, freshShared)
	var sequentialMeta search.Meta
	sequentialResult := search.MakesCut(sequential, &sequentialMeta, board.Initial(), scope, search.ZeroEval+1)

	if parallelResult.Evaluation != sequentialResult.Evaluation {
		t.Errorf("parallel evaluation %d != sequential evaluation %d", parallelResult.Evaluation, sequentialResult.Evaluation)
	}
}

func TestJudgePoolConsolidateIsRepeatable(t *testing.T) {
	shared := search.NewTable()
	gen := board.NewGenerator()
	judges := []search.Judge{eval.NewSlonenok(gen, shared), eval.NewSlonenok(gen, shared)}
	pool := search.NewJudgePool(judges)

	pool.Consolidate()
	pool.Consolidate()

	var meta search.Meta
	result := search.ParallelMakesCut(pool, judges[0], &meta, board.Initial(), search.NewDepthScope(2), search.ZeroEval+1)
	if !result.HasMove {
		t.Error("expected the pool to still be usable for a search after consolidating")
	}
}
