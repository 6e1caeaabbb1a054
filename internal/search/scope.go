package search

// Scope answers one question per recursion level: given the current local
// situation, what Scope should the search recurse with, or should it stop?
// Implementations must be cheap to copy and free of interior mutability, so
// a Scope value can be handed to every sibling subtree without aliasing.
type Scope interface {
	// Next derives the child scope for one move: movesCount is the number
	// of legal moves at the current node, quiet reports whether the move
	// being explored is quiet, and gap is the distance from the current
	// static evaluation to the search window (cut - currentScore). A false
	// second return means the recursion should stop and the node's static
	// evaluation should be returned instead.
	Next(movesCount int, quiet bool, gap Eval) (Scope, bool)
	// Depth reports this scope's nominal depth, for transposition-table
	// indexing and iterative-deepening bookkeeping.
	Depth() uint8
}

// ScopeFactory builds the initial Scope for an iterative-deepening
// iteration at the given nominal depth. Go has no static trait methods, so
// each Scope implementation is paired with a factory function value instead
// of a Rust-style associated function.
type ScopeFactory func(depth uint8) Scope
