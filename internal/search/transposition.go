package search

import (
	"sync"

	"github.com/WiebeCnossen/draughts/internal/board"
)

// ttShards is the number of independent, separately-locked maps the table
// is split into. Splitting spreads contention across the worker pool
// instead of serializing every probe and store behind one mutex, the same
// role the array-of-entries sharding plays in a single-threaded table, but
// keyed by exact board.Position equality instead of a hashed array slot so
// two positions can never collide into one memory.
const ttShards = 256

type ttEntry struct {
	depth      uint8
	lower      Eval
	upper      Eval
	from       board.Field
	to         board.Field
	hasMove    bool
	generation uint8
}

type ttShard struct {
	mu      sync.RWMutex
	entries map[board.Position]ttEntry
}

// Table is a sharded transposition table keyed on exact board positions. It
// remembers the tightest [lower, upper] window a search has proven for a
// position at a given depth, plus the move that produced it, and is safe
// for concurrent use by every goroutine of a parallel search.
type Table struct {
	shards     [ttShards]*ttShard
	generation uint8
}

// NewTable builds an empty Table.
func NewTable() *Table {
	t := &Table{}
	for i := range t.shards {
		t.shards[i] = &ttShard{entries: make(map[board.Position]ttEntry)}
	}
	return t
}

func (t *Table) shardFor(pos board.Position) *ttShard {
	return t.shards[pos.Hash()%ttShards]
}

// Probe recalls whatever this Table knows about pos. A miss reports
// EmptyMemory.
func (t *Table) Probe(pos board.Position) PositionMemory {
	shard := t.shardFor(pos)

	shard.mu.RLock()
	entry, ok := shard.entries[pos]
	shard.mu.RUnlock()

	if !ok {
		return EmptyMemory()
	}
	memory := PositionMemory{Depth: entry.depth, Lower: entry.lower, Upper: entry.upper, From: board.NoField, To: board.NoField}
	if entry.hasMove {
		memory.From, memory.To = entry.from, entry.to
	}
	return memory
}

// Store merges a search result into pos's entry: a shallower existing
// result is discarded outright, an equal-depth result is merged by
// tightening whichever bound the new result refines, and a deeper existing
// result is kept unless the new probe is itself deeper. low reports
// whether evaluation is a fail-low upper bound (true) or a fail-high lower
// bound (false), matching MakesCut's own bookkeeping.
func (t *Table) Store(pos board.Position, depth uint8, evaluation Eval, mv board.Move, hasMove bool, low bool) {
	shard := t.shardFor(pos)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	found, ok := shard.entries[pos]
	if ok && found.depth == depth {
		if !low && evaluation <= found.lower {
			return
		}
		if low && evaluation >= found.upper {
			return
		}
		entry := found
		entry.generation = t.generation
		if low {
			entry.upper = evaluation
		} else {
			entry.lower = evaluation
		}
		if hasMove {
			entry.from, entry.to, entry.hasMove = mv.From, mv.To, true
		}
		shard.entries[pos] = entry
		return
	}
	if ok && found.depth > depth {
		return // keep the deeper, more informative result
	}
	shard.entries[pos] = newTTEntry(t.generation, depth, evaluation, mv, hasMove, low)
}

// mergeEntry folds one scratch entry into t, applying the same
// deeper-wins / tighten-at-equal-depth rule as Store but over a full
// [lower, upper] pair instead of a single probe result.
func (t *Table) mergeEntry(pos board.Position, incoming ttEntry) {
	shard := t.shardFor(pos)

	shard.mu.Lock()
	defer shard.mu.Unlock()

	found, ok := shard.entries[pos]
	if !ok || found.depth < incoming.depth {
		incoming.generation = t.generation
		shard.entries[pos] = incoming
		return
	}
	if found.depth > incoming.depth {
		return
	}

	entry := found
	entry.generation = t.generation
	if incoming.lower > entry.lower {
		entry.lower = incoming.lower
	}
	if incoming.upper < entry.upper {
		entry.upper = incoming.upper
	}
	if incoming.hasMove && !entry.hasMove {
		entry.from, entry.to, entry.hasMove = incoming.from, incoming.to, true
	}
	shard.entries[pos] = entry
}

func newTTEntry(generation uint8, depth uint8, evaluation Eval, mv board.Move, hasMove bool, low bool) ttEntry {
	entry := ttEntry{depth: depth, generation: generation}
	if low {
		entry.lower, entry.upper = MinEval, evaluation
	} else {
		entry.lower, entry.upper = evaluation, MaxEval
	}
	if hasMove {
		entry.from, entry.to, entry.hasMove = mv.From, mv.To, true
	}
	return entry
}

// NewGeneration advances the table's generation, keeping the entries of the
// generation that is ending and dropping every older one, bounding memory
// growth across a long-running engine.
func (t *Table) NewGeneration() {
	generation := t.generation
	t.generation++
	for _, shard := range t.shards {
		shard.mu.Lock()
		for pos, entry := range shard.entries {
			if entry.generation != generation {
				delete(shard.entries, pos)
			}
		}
		shard.mu.Unlock()
	}
}

// Merge flushes every entry of other into t, as if each had been stored
// via Store. It is the "consolidate" operation: a worker's private scratch
// table is folded into the shared table at safe points, never while a
// recursive search holds the scratch table open.
func (t *Table) Merge(other *Table) {
	for _, shard := range other.shards {
		shard.mu.RLock()
		entries := make([]board.Position, 0, len(shard.entries))
		values := make([]ttEntry, 0, len(shard.entries))
		for pos, entry := range shard.entries {
			entries = append(entries, pos)
			values = append(values, entry)
		}
		shard.mu.RUnlock()

		for i, pos := range entries {
			t.mergeEntry(pos, values[i])
		}
	}
}

// Len reports the total number of remembered positions across every shard.
func (t *Table) Len() int {
	total := 0
	for _, shard := range t.shards {
		shard.mu.RLock()
		total += len(shard.entries)
		shard.mu.RUnlock()
	}
	return total
}

// Record is one exported table entry, independent of the internal shard
// layout, suitable for a persistence layer to serialize.
type Record struct {
	Pos     board.Position
	Depth   uint8
	Lower   Eval
	Upper   Eval
	From    board.Field
	To      board.Field
	HasMove bool
}

// Snapshot exports every entry currently held. Generation bookkeeping is
// dropped: a restored table behaves as if every record had just been
// stored at the table's current generation.
func (t *Table) Snapshot() []Record {
	records := make([]Record, 0, t.Len())
	for _, shard := range t.shards {
		shard.mu.RLock()
		for pos, entry := range shard.entries {
			records = append(records, Record{
				Pos: pos, Depth: entry.depth, Lower: entry.lower, Upper: entry.upper,
				From: entry.from, To: entry.to, HasMove: entry.hasMove,
			})
		}
		shard.mu.RUnlock()
	}
	return records
}

// Restore loads records produced by Snapshot back into the table at its
// current generation, overwriting whatever those positions previously
// held.
func (t *Table) Restore(records []Record) {
	for _, r := range records {
		shard := t.shardFor(r.Pos)
		shard.mu.Lock()
		shard.entries[r.Pos] = ttEntry{
			depth: r.Depth, lower: r.Lower, upper: r.Upper,
			from: r.From, to: r.To, hasMove: r.HasMove, generation: t.generation,
		}
		shard.mu.Unlock()
	}
}
