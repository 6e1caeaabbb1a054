package search

import "github.com/WiebeCnossen/draughts/internal/board"

// SearchResult is the outcome of one alpha-beta probe: an evaluation, and
// optionally the move that produced it. A leaf or a fail-low result carries
// no move.
type SearchResult struct {
	Move       board.Move
	HasMove    bool
	Evaluation Eval
}

// WithMove builds a SearchResult that names the move responsible for
// evaluation.
func WithMove(mv board.Move, evaluation Eval) SearchResult {
	return SearchResult{Move: mv, HasMove: true, Evaluation: evaluation}
}

// EvaluationResult builds a moveless SearchResult, for leaves and
// window-bound short circuits.
func EvaluationResult(evaluation Eval) SearchResult {
	return SearchResult{Evaluation: evaluation}
}
