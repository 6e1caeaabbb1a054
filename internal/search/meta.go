package search

// Meta accumulates node count and the deepest depth reached across one
// iterative-deepening run. It is cheap to clone: every search driver passes
// it by value and merges the result back into the caller's copy.
type Meta struct {
	depth uint8
	nodes int
}

// Depth returns the deepest depth recorded so far.
func (m Meta) Depth() uint8 { return m.depth }

// Nodes returns the total node count recorded so far.
func (m Meta) Nodes() int { return m.nodes }

// AddNodes accumulates increment additional visited nodes.
func (m *Meta) AddNodes(increment int) { m.nodes += increment }

// PutDepth records depth as the new deepest depth reached, if it exceeds
// what was already recorded.
func (m *Meta) PutDepth(depth uint8) {
	if m.depth < depth {
		m.depth = depth
	}
}
