// Package engine drives iterative deepening over a search.Judge: each
// Engine is a restartable sequence of Results of strictly increasing
// depth, stopping once the node budget is spent, the depth cap is
// exceeded, or the evaluation saturates.
package engine

import (
	"github.com/WiebeCnossen/draughts/internal/board"
	"github.com/WiebeCnossen/draughts/internal/search"
)

// Result is one iterative-deepening iteration: the best move found so far,
// its evaluation, and the accumulated search metadata.
type Result struct {
	Move       board.Move
	Evaluation search.Eval
	Meta       search.Meta
}

// Engine is a lazy, restartable sequence of Results. Next returns false
// once the stop criteria are met; a subsequent SetPosition restarts the
// sequence at depth 0.
type Engine interface {
	Next() (Result, bool)
	SetPosition(pos board.Position)
	DisplayName() string
}

func saturated(r Result) bool {
	return r.Evaluation == search.MinEval || r.Evaluation == search.MaxEval
}
