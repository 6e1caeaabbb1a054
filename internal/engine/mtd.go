package engine

import (
	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog/log"

	"github.com/WiebeCnossen/draughts/internal/board"
	"github.com/WiebeCnossen/draughts/internal/search"
)

// MTDEngine drives iterative deepening with MTD(f) at every depth, seeded
// by the previous iteration's evaluation. It pairs naturally with a
// memory-light judge (RandAap, Slonenok) and DepthScope or AdaptiveScope.
type MTDEngine struct {
	judge    search.Judge
	pool     *search.JudgePool
	factory  search.ScopeFactory
	maxNodes int
	maxDepth uint8

	position board.Position
	previous Result
}

// NewMTDEngine builds an MTDEngine. pool may be nil to disable parallel
// fan-out within MTD(f)'s probes.
func NewMTDEngine(judge search.Judge, pool *search.JudgePool, factory search.ScopeFactory, maxNodes int, maxDepth uint8) *MTDEngine {
	return &MTDEngine{
		judge:    judge,
		pool:     pool,
		factory:  factory,
		maxNodes: maxNodes,
		maxDepth: maxDepth,
		position: board.Initial(),
	}
}

// SetPosition implements Engine: restarts the sequence at depth 0 for pos.
func (e *MTDEngine) SetPosition(pos board.Position) {
	e.position = pos
	e.previous = Result{}
}

// DisplayName implements Engine.
func (e *MTDEngine) DisplayName() string { return e.judge.DisplayName() }

// Next implements Engine.
func (e *MTDEngine) Next() (Result, bool) {
	if e.previous.Meta.Nodes() >= e.maxNodes || e.previous.Meta.Depth() > e.maxDepth || saturated(e.previous) {
		return Result{}, false
	}

	meta := e.previous.Meta
	depth := uint8(0)
	if meta.Nodes() != 0 {
		depth = meta.Depth() + 1
	}
	meta.PutDepth(depth)

	mtd := search.MTDF(e.judge, e.pool, e.position, depth, e.previous.Evaluation, e.factory)
	meta.AddNodes(mtd.Meta.Nodes())

	log.Debug().
		Str("judge", e.judge.DisplayName()).
		Uint8("depth", depth).
		Int16("evaluation", int16(mtd.Evaluation)).
		Str("nodes", humanize.Comma(int64(meta.Nodes()))).
		Msg("mtdf-iteration")

	e.previous = Result{Move: mtd.Move, Evaluation: mtd.Evaluation, Meta: meta}
	return e.previous, true
}
