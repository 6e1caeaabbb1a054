package search

import (
	"github.com/WiebeCnossen/draughts/internal/board"
	"golang.org/x/sync/errgroup"
)

// BnsResult is the outcome of one Best-Node-Search root probe.
type BnsResult struct {
	Cut  Eval
	Meta Meta
	Move board.Move
}

// bnsState narrows the root's separation value toward the cut that exactly
// one move exceeds.
type bnsState struct {
	lower   Eval
	upper   Eval
	cut     Eval
	mv      board.Move
	hasMove bool
	count   uint8
}

func newBnsState(cut Eval, mv board.Move) bnsState {
	return bnsState{lower: MinEval, upper: MaxEval + 1, cut: cut, mv: mv, hasMove: true, count: 2}
}

func (s bnsState) next(betterCount uint8, result SearchResult) bnsState {
	up := betterCount > 0
	lower := s.lower
	if up {
		lower = maxEval(result.Evaluation, s.lower+1)
	}
	upper := s.upper
	if !up {
		upper = minEval(s.cut, result.Evaluation+1)
	}
	var cut Eval
	if up {
		cut = lower + 1
	} else {
		cut = upper - 1
	}
	mv, hasMove := s.mv, s.hasMove
	if up {
		mv, hasMove = result.Move, result.HasMove
	}
	var count uint8
	switch {
	case upper-lower <= 1 && hasMove:
		count = 0
	case upper-cut <= 1:
		count = 1
	default:
		count = 2
	}
	return bnsState{lower: lower, upper: upper, cut: cut, mv: mv, hasMove: hasMove, count: count}
}

// BestNodeSearch drives the root with Best-Node-Search: it repeatedly
// separates the moves into "at least as good as cut" and the rest by
// counting how many beat a trial beta, tightening the trial cut until
// exactly one move separates from the pack. A nil pool runs every root
// move sequentially on judge; a non-nil pool fans every round's root
// moves out across the pool's workers instead, the root-level parallelism
// the engine loop's top few iterative-deepening depths rely on.
func BestNodeSearch(judge Judge, pool *JudgePool, pos board.Position, scope Scope, initialCut Eval) BnsResult {
	moves := judge.Moves(pos)
	state := newBnsState(initialCut, moves[0])
	var meta Meta

	for {
		beta := state.cut - 1
		var betterCount uint8
		var best SearchResult

		if pool == nil {
			best = EvaluationResult(MinEval)
			for _, mv := range moves {
				score := -MakesCut(judge, &meta, pos.Go(mv), scope, -beta).Evaluation
				if score >= best.Evaluation {
					best = WithMove(mv, score)
				}
				if score > beta {
					betterCount++
					if betterCount >= state.count {
						break
					}
				}
			}
		} else {
			judge.Consolidate()
			best, betterCount = bnsRoundParallel(pool, &meta, pos, scope, beta, moves)
		}

		next := state.next(betterCount, best)
		if next.count == 0 {
			return BnsResult{Cut: next.lower, Meta: meta, Move: next.mv}
		}
		state = next
	}
}

// bnsRoundParallel runs one BNS round's root-move loop concurrently: every
// move is probed by a worker drawn from pool, and results are folded back
// in original move order once every worker finishes, so the chosen move
// and the count of moves beating beta are independent of completion order.
func bnsRoundParallel(pool *JudgePool, meta *Meta, pos board.Position, scope Scope, beta Eval, moves []board.Move) (SearchResult, uint8) {
	scores := make([]Eval, len(moves))
	nodes := make([]int, len(moves))
	depths := make([]uint8, len(moves))

	var g errgroup.Group
	for i, mv := range moves {
		i, mv := i, mv
		g.Go(func() error {
			worker := pool.acquire()
			defer pool.release(worker)
			var local Meta
			scores[i] = -MakesCut(worker, &local, pos.Go(mv), scope, -beta).Evaluation
			nodes[i], depths[i] = local.Nodes(), local.Depth()
			return nil
		})
	}
	g.Wait()

	best := EvaluationResult(MinEval)
	var betterCount uint8
	for i, mv := range moves {
		meta.AddNodes(nodes[i])
		meta.PutDepth(depths[i])
		if scores[i] >= best.Evaluation {
			best = WithMove(mv, scores[i])
		}
		if scores[i] > beta {
			betterCount++
		}
	}
	return best, betterCount
}
