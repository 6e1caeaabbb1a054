package search

import "github.com/WiebeCnossen/draughts/internal/board"

func minEval(a, b Eval) Eval {
	if a < b {
		return a
	}
	return b
}

func maxEval(a, b Eval) Eval {
	if a > b {
		return a
	}
	return b
}

// MakesCut is the fail-soft null-window search: it answers whether pos's
// value is at least cut, returning the actual value found (which may fall
// short of or exceed cut) together with the move that achieves it. Every
// recursive call negates and inverts the window, so the routine always
// asks the same question of the side to move.
func MakesCut(judge Judge, meta *Meta, pos board.Position, scope Scope, cut Eval) SearchResult {
	if cut <= MinEval {
		return EvaluationResult(MinEval)
	}
	if cut > MaxEval {
		return EvaluationResult(MaxEval)
	}

	memory := judge.Recall(pos)
	if memory.Depth >= scope.Depth() {
		if memory.Lower >= cut {
			return EvaluationResult(memory.Lower)
		}
		if memory.Upper < cut {
			return EvaluationResult(memory.Upper)
		}
	}

	meta.AddNodes(1)

	moves := judge.Moves(pos)
	if len(moves) == 0 {
		return EvaluationResult(MinEval)
	}

	quiet := judge.QuietPosition(pos, moves)
	if !quiet && len(moves) > 1 && memory.HasMove() {
		for i, mv := range moves {
			if mv.From == memory.From && mv.To == memory.To {
				if i > 0 {
					copy(moves[1:i+1], moves[0:i])
					moves[0] = mv
				}
				break
			}
		}
	}

	currentScore := minEval(maxEval(judge.Evaluate(pos), memory.Lower), memory.Upper)

	if _, ok := scope.Next(len(moves), quiet, cut-currentScore); !ok {
		return EvaluationResult(currentScore)
	}

	best := MinEval
	var pending board.Move
	hasPending := false
	for _, mv := range moves {
		moveQuiet := judge.QuietMove(pos, mv)
		var score Eval
		if child, ok := scope.Next(len(moves), moveQuiet, cut-currentScore); ok {
			score = -MakesCut(judge, meta, pos.Go(mv), child, -cut+1).Evaluation
		} else {
			score = currentScore
		}
		if score > best {
			best = score
			pending = mv
			hasPending = true
			if best >= cut {
				break
			}
		}
	}

	if best >= cut {
		judge.Remember(pos, scope.Depth(), best, pending, hasPending, false)
		return WithMove(pending, best)
	}

	judge.Remember(pos, scope.Depth(), best, pending, hasPending, true)
	return EvaluationResult(best)
}
