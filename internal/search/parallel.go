package search

import (
	"github.com/WiebeCnossen/draughts/internal/board"
	"golang.org/x/sync/errgroup"
)

// MinParallelDepth, MaxParallelDepth and MinParallelMoves bound the band in
// which ParallelMakesCut fans its move loop out across a worker pool:
// shallower nodes aren't worth the dispatch overhead, deeper ones are too
// numerous to parallelize without unbounded goroutine growth, and a node
// with too few moves has nothing worth splitting.
const (
	MinParallelDepth = 6
	MaxParallelDepth = 9
	MinParallelMoves = 6
)

// JudgePool lends out a fixed set of worker judges, one per concurrent
// subtree. Every judge in the pool shares the same transposition table
// (typically via TableMemory) but keeps its own scratch memory, so workers
// never contend on writes mid-search; Consolidate flushes every worker's
// scratch into the shared table between fan-outs.
type JudgePool struct {
	judges chan Judge
	size   int
}

// NewJudgePool builds a pool that lends out exactly the judges given.
func NewJudgePool(judges []Judge) *JudgePool {
	pool := &JudgePool{judges: make(chan Judge, len(judges)), size: len(judges)}
	for _, j := range judges {
		pool.judges <- j
	}
	return pool
}

func (p *JudgePool) acquire() Judge  { return <-p.judges }
func (p *JudgePool) release(j Judge) { p.judges <- j }

// Consolidate drains every worker out of the pool, flushes its scratch
// memory into shared storage, and returns every worker to the pool. It
// blocks until all workers are idle, so callers must not call it while a
// fan-out using this pool is in flight.
func (p *JudgePool) Consolidate() {
	judges := make([]Judge, p.size)
	for i := range judges {
		judges[i] = p.acquire()
	}
	for _, j := range judges {
		j.Consolidate()
	}
	for _, j := range judges {
		p.release(j)
	}
}

// ParallelMakesCut behaves exactly like MakesCut for a caller that cannot
// tell the difference, except that when the node's scope depth falls in
// [MinParallelDepth, MaxParallelDepth] and it has at least MinParallelMoves
// legal moves, its move loop dispatches one goroutine per move onto pool
// instead of recursing sequentially. Every dispatched goroutine recurses
// with plain, single-threaded MakesCut: only one level of the tree is ever
// fanned out per call, matching a root-level-and-near-root-only design.
// A nil pool, or a node outside the band, falls back to the sequential
// loop MakesCut itself would run.
func ParallelMakesCut(pool *JudgePool, primary Judge, meta *Meta, pos board.Position, scope Scope, cut Eval) SearchResult {
	if cut <= MinEval {
		return EvaluationResult(MinEval)
	}
	if cut > MaxEval {
		return EvaluationResult(MaxEval)
	}

	memory := primary.Recall(pos)
	if memory.Depth >= scope.Depth() {
		if memory.Lower >= cut {
			return EvaluationResult(memory.Lower)
		}
		if memory.Upper < cut {
			return EvaluationResult(memory.Upper)
		}
	}

	meta.AddNodes(1)

	moves := primary.Moves(pos)
	if len(moves) == 0 {
		return EvaluationResult(MinEval)
	}

	quiet := primary.QuietPosition(pos, moves)
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

	currentScore := minEval(maxEval(primary.Evaluate(pos), memory.Lower), memory.Upper)
	if _, ok := scope.Next(len(moves), quiet, cut-currentScore); !ok {
		return EvaluationResult(currentScore)
	}

	inBand := scope.Depth() >= MinParallelDepth && scope.Depth() <= MaxParallelDepth
	var best Eval
	var pending board.Move
	var hasPending bool

	if pool == nil || !inBand || len(moves) < MinParallelMoves {
		best, pending, hasPending = sequentialFanOut(primary, meta, pos, scope, cut, currentScore, moves)
	} else {
		primary.Consolidate()
		best, pending, hasPending = parallelFanOut(pool, meta, pos, scope, cut, currentScore, moves)
	}

	if best >= cut {
		primary.Remember(pos, scope.Depth(), best, pending, hasPending, false)
		return WithMove(pending, best)
	}
	primary.Remember(pos, scope.Depth(), best, pending, hasPending, true)
	return EvaluationResult(best)
}

func sequentialFanOut(judge Judge, meta *Meta, pos board.Position, scope Scope, cut, currentScore Eval, moves []board.Move) (Eval, board.Move, bool) {
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
			best, pending, hasPending = score, mv, true
			if best >= cut {
				break
			}
		}
	}
	return best, pending, hasPending
}

// parallelFanOut runs every move of the move loop concurrently on a worker
// drawn from pool, then folds the results back in original move order so
// the chosen move is a deterministic function of the move list and their
// scores, independent of completion order. Every worker's node count is
// merged into meta once all of them finish; no cut-off stops a straggler
// early, matching the "collected but discarded" rule for a cut reached by
// an earlier move in iteration order.
func parallelFanOut(pool *JudgePool, meta *Meta, pos board.Position, scope Scope, cut, currentScore Eval, moves []board.Move) (Eval, board.Move, bool) {
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
			moveQuiet := worker.QuietMove(pos, mv)
			if child, ok := scope.Next(len(moves), moveQuiet, cut-currentScore); ok {
				scores[i] = -MakesCut(worker, &local, pos.Go(mv), child, -cut+1).Evaluation
			} else {
				scores[i] = currentScore
			}
			nodes[i], depths[i] = local.Nodes(), local.Depth()
			return nil
		})
	}
	g.Wait()

	best := MinEval
	var pending board.Move
	hasPending := false
	for i, mv := range moves {
		meta.AddNodes(nodes[i])
		meta.PutDepth(depths[i])
		if best < cut && scores[i] > best {
			best, pending, hasPending = scores[i], mv, true
		}
	}
	return best, pending, hasPending
}
