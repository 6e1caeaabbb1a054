package search

import "github.com/WiebeCnossen/draughts/internal/board"

// mtdState narrows [lower, upper] toward the position's true minimax value
// with successive null-window probes, each placed just outside the previous
// miss.
type mtdState struct {
	lower Eval
	guess Eval
	upper Eval
}

func newMtdState(guess Eval) mtdState {
	return mtdState{lower: MinEval, guess: guess, upper: MaxEval + 1}
}

func (s mtdState) next(eval Eval) mtdState {
	if eval < s.guess {
		return mtdState{lower: s.lower, guess: eval, upper: eval + 1}
	}
	return mtdState{lower: eval, guess: eval + 1, upper: s.upper}
}

func (s mtdState) finished() bool {
	return s.guess >= s.upper
}

// MtdResult is the outcome of one MTD(f) iterative-deepening iteration.
type MtdResult struct {
	Move       board.Move
	Evaluation Eval
	Meta       Meta
}

// MTDF converges on pos's minimax value at depth by repeatedly calling
// MakesCut with a null window placed at the previous guess, per Aske
// Plaat's memory-enhanced test driver. factory builds the fresh Scope for
// every probe at this depth. A non-nil pool lets each probe fan its move
// loop out across the pool's workers wherever the node falls in the
// parallel depth band (see ParallelMakesCut); nil runs entirely on judge.
func MTDF(judge Judge, pool *JudgePool, pos board.Position, depth uint8, guess Eval, factory ScopeFactory) MtdResult {
	scope := factory(depth)
	state := newMtdState(guess)
	var meta Meta
	var mv board.Move
	hasMove := false

	for {
		var result SearchResult
		if pool == nil {
			result = MakesCut(judge, &meta, pos, scope, state.guess)
		} else {
			result = ParallelMakesCut(pool, judge, &meta, pos, scope, state.guess)
		}
		state = state.next(result.Evaluation)
		if result.HasMove {
			mv = result.Move
			hasMove = true
		}
		if state.finished() {
			if !hasMove {
				moves := judge.Moves(pos)
				if len(moves) > 0 {
					mv = moves[0]
				} else {
					mv = board.NullMove
				}
			}
			return MtdResult{Move: mv, Evaluation: state.lower, Meta: meta}
		}
	}
}
