package search

import (
	"sync"

	"github.com/WiebeCnossen/draughts/internal/board"
)

// TableMemory implements the Recall/Remember/Consolidate third of the
// Judge interface for a judge backed by a transposition table: reads and
// writes go to a private scratch Table, which is folded into a shared
// Table only at Consolidate points, matching the "scratch per worker,
// merge on consolidate" discipline every parallel judge in this package
// follows. minDepth suppresses memory traffic for shallow nodes, where a
// lookup costs more than the recursion it would save.
type TableMemory struct {
	mu      sync.Mutex
	shared  *Table
	scratch *Table
	minDepth uint8
}

// NewTableMemory builds a TableMemory reading through to shared once
// consolidated, with its own fresh scratch table.
func NewTableMemory(shared *Table, minDepth uint8) *TableMemory {
	return &TableMemory{shared: shared, scratch: NewTable(), minDepth: minDepth}
}

// Recall implements Judge.Recall: the scratch table is checked first since
// it holds this worker's most recent writes, falling back to the shared
// table.
func (m *TableMemory) Recall(pos board.Position) PositionMemory {
	m.mu.Lock()
	scratch := m.scratch
	m.mu.Unlock()

	if memory := scratch.Probe(pos); memory.Depth > 0 {
		return memory
	}
	return m.shared.Probe(pos)
}

// Remember implements Judge.Remember, writing only to the private scratch
// table. Shallow results (depth below minDepth) are not worth the
// bookkeeping and are dropped.
func (m *TableMemory) Remember(pos board.Position, depth uint8, evaluation Eval, mv board.Move, hasMove, low bool) {
	if depth < m.minDepth {
		return
	}
	m.mu.Lock()
	scratch := m.scratch
	m.mu.Unlock()
	scratch.Store(pos, depth, evaluation, mv, hasMove, low)
}

// Consolidate implements Judge.Consolidate: flushes the scratch table into
// the shared table and starts a fresh scratch table for what follows.
func (m *TableMemory) Consolidate() {
	m.mu.Lock()
	scratch := m.scratch
	m.scratch = NewTable()
	m.mu.Unlock()

	m.shared.Merge(scratch)
}
