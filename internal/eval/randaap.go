// Package eval provides the three shipped evaluators (RandAap, Slonenok,
// Sherlock), each a search.Judge of increasing sophistication over the
// same material-plus-positional scoring idiom.
package eval

import (
	"github.com/WiebeCnossen/draughts/internal/board"
	"github.com/WiebeCnossen/draughts/internal/search"
)

// randAapPieces values a bare piece by kind, indexed by board.Piece.
var randAapPieces = [5]search.Eval{0, 500, 1500, -500, -1500}

// randAapFields is a flat per-field bonus for white men; black men look up
// the mirrored field 49-f with the sign flipped.
var randAapFields = [board.NumFields]search.Eval{
	0, 0, 0, 0, 0, 1, 0, 0, 0, 1,
	1, 0, 0, 0, 1, 1, 0, 0, 0, 1,
	1, 0, 0, 0, 1, 20, 20, 0, 0, 0,
	30, 10, 0, 0, 0, 15, 1, 0, 10, 0,
	1, 1, 20, 20, 0, 1, 0, 30, 50, 30,
}

// RandAap is the simplest judge: flat material values and a single
// per-field table, no positional memory. It is the cheapest evaluator per
// node, intended to pair with DepthScope and MTD(f) for a fast baseline
// opponent.
type RandAap struct {
	search.NoMemory
	generator *board.Generator
}

// NewRandAap builds a RandAap judge sharing gen, which may be shared
// across every copy of this judge in a worker pool since it holds no
// per-search state.
func NewRandAap(gen *board.Generator) *RandAap {
	return &RandAap{generator: gen}
}

func (j *RandAap) fieldValue(piece board.Piece, field board.Field) search.Eval {
	switch piece {
	case board.WhiteMan:
		return randAapFields[field]
	case board.BlackMan:
		return -randAapFields[board.NumFields-1-field]
	default:
		return search.ZeroEval
	}
}

// Evaluate implements search.Judge.
func (j *RandAap) Evaluate(pos board.Position) search.Eval {
	var white, black int
	var score search.Eval

	for f := board.Field(0); f < board.NumFields; f++ {
		piece := pos.PieceAt(f)
		switch piece {
		case board.WhiteMan, board.WhiteKing:
			white++
		case board.BlackMan, board.BlackKing:
			black++
		}
		score += randAapPieces[piece] + j.fieldValue(piece, f)
	}

	if white <= 3 && black <= 3 {
		score /= 10
	}
	if pos.SideToMove() == board.Black {
		score = -score
	}
	return score
}

// Moves implements search.Judge: a plain pass-through to the generator,
// with no transposition-based reordering since RandAap carries no memory.
func (j *RandAap) Moves(pos board.Position) []board.Move {
	return j.generator.LegalMoves(pos)
}

// QuietMove implements search.Judge: every non-capturing move is quiet.
func (j *RandAap) QuietMove(_ board.Position, mv board.Move) bool {
	return mv.NumTaken == 0
}

// QuietPosition implements search.Judge.
func (j *RandAap) QuietPosition(pos board.Position, moves []board.Move) bool {
	return search.DefaultQuietPosition(j, pos, moves)
}

// DisplayName implements search.Judge.
func (j *RandAap) DisplayName() string { return "RandAap" }
