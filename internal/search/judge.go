// Package search implements the transposition-table-backed alpha-beta core:
// fail-soft null-window search (MakesCut), the MTD(f) driver and the
// Best-Node-Search root driver, plus the pluggable Scope abstraction that
// shapes recursion depth and extensions.
package search

import "github.com/WiebeCnossen/draughts/internal/board"

// Eval is a centi-draught evaluation score from the point of view of the
// side to move: positive favors the side to move, negative its opponent.
type Eval int16

// MaxEval and MinEval bound every evaluation a Judge may return; MakesCut
// clamps cut values to this range before doing any work.
const (
	MaxEval  Eval = 15000
	MinEval  Eval = -15000
	ZeroEval Eval = 0
	DrawEval Eval = 0
)

// PositionMemory is what a Judge recalls about a previously searched
// position: the window [Lower, Upper] its evaluation is known to lie in at
// Depth, and the move that produced it. An empty PositionMemory (as
// returned by EmptyMemory) carries no information.
type PositionMemory struct {
	Depth uint8
	Lower Eval
	Upper Eval
	From  board.Field
	To    board.Field
}

// EmptyMemory is the neutral memory: depth 0 and the widest possible window,
// so any real search result is accepted and no move is remembered.
func EmptyMemory() PositionMemory {
	return PositionMemory{Depth: 0, Lower: MinEval, Upper: MaxEval, From: board.NoField, To: board.NoField}
}

// HasMove reports whether this memory carries a remembered best move.
func (m PositionMemory) HasMove() bool {
	return m.From != board.NoField || m.To != board.NoField
}

// Judge couples position evaluation and move generation with an optional
// memory of prior search results. Judges that don't maintain memory (an
// always-fresh search) can embed NoMemory to satisfy Recall/Remember with
// no-ops.
type Judge interface {
	Evaluate(pos board.Position) Eval
	Moves(pos board.Position) []board.Move
	QuietMove(pos board.Position, mv board.Move) bool
	QuietPosition(pos board.Position, moves []board.Move) bool
	Recall(pos board.Position) PositionMemory
	Remember(pos board.Position, depth uint8, evaluation Eval, mv board.Move, hasMove bool, low bool)
	// Consolidate flushes any thread-local scratch memory into shared
	// storage. Judges with no memory, or with no scratch/shared split,
	// may make this a no-op.
	Consolidate()
	DisplayName() string
}

// NoMemory is embedded by judges that do not cache search results: Recall
// always returns the neutral memory and Remember is a no-op.
type NoMemory struct{}

// Recall always reports no remembered information.
func (NoMemory) Recall(board.Position) PositionMemory { return EmptyMemory() }

// Remember discards the result; NoMemory never learns.
func (NoMemory) Remember(board.Position, uint8, Eval, board.Move, bool, bool) {}

// Consolidate is a no-op: there is no scratch memory to flush.
func (NoMemory) Consolidate() {}

// DefaultQuietPosition is the "is this node forcing" rule shared by every
// judge in this package: a position is quiet if there is more than one
// legal move and the first (highest-priority) move is itself quiet.
func DefaultQuietPosition(j Judge, pos board.Position, moves []board.Move) bool {
	return len(moves) > 1 && j.QuietMove(pos, moves[0])
}
