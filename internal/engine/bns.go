package engine

import (
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/WiebeCnossen/draughts/internal/board"
	"github.com/WiebeCnossen/draughts/internal/search"
)

// BNSEngine drives iterative deepening with Best-Node-Search at every
// depth, seeding the next round's separation cut from the previous
// iteration's evaluation. It pairs naturally with a richer, memory-backed
// judge (Slonenok, Sherlock) and LogarithmicScope, where node budgets
// rather than raw ply counts bound each iteration.
type BNSEngine struct {
	judge    search.Judge
	pool     *search.JudgePool
	factory  search.ScopeFactory
	maxNodes int
	maxDepth uint8

	position board.Position
	previous Result
}

// NewBNSEngine builds a BNSEngine. pool may be nil to disable parallel
// fan-out of each round's root moves.
func NewBNSEngine(judge search.Judge, pool *search.JudgePool, factory search.ScopeFactory, maxNodes int, maxDepth uint8) *BNSEngine {
	return &BNSEngine{
		judge:    judge,
		pool:     pool,
		factory:  factory,
		maxNodes: maxNodes,
		maxDepth: maxDepth,
		position: board.Initial(),
	}
}

// SetPosition implements Engine: restarts the sequence at depth 0 for pos.
func (e *BNSEngine) SetPosition(pos board.Position) {
	e.position = pos
	e.previous = Result{}
}

// DisplayName implements Engine.
func (e *BNSEngine) DisplayName() string { return e.judge.DisplayName() }

// Next implements Engine.
func (e *BNSEngine) Next() (Result, bool) {
	if e.previous.Meta.Nodes() >= e.maxNodes || e.previous.Meta.Depth() > e.maxDepth || saturated(e.previous) {
		return Result{}, false
	}

	meta := e.previous.Meta
	depth := uint8(0)
	if meta.Nodes() != 0 {
		depth = meta.Depth() + 1
	}
	meta.PutDepth(depth)

	scope := e.factory(depth)
	bns := search.BestNodeSearch(e.judge, e.pool, e.position, scope, e.previous.Evaluation)
	meta.AddNodes(bns.Meta.Nodes())

	log.Debug().
		Str("judge", e.judge.DisplayName()).
		Uint8("depth", depth).
		Int16("cut", int16(bns.Cut)).
		Str("nodes", humanize.Comma(int64(meta.Nodes()))).
		Msg("bns-iteration")

	e.previous = Result{Move: bns.Move, Evaluation: bns.Cut, Meta: meta}
	return e.previous, true
}
