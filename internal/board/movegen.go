package board

import "sort"

// Generator enumerates legal moves for a position, enforcing forced maximum
// capture and flying kings. It holds only the immutable precomputed step
// tables, so a single Generator is shared by every judge and search thread.
type Generator struct {
	steps *Steps
}

// NewGenerator builds a generator backed by a fresh step table.
func NewGenerator() *Generator {
	return &Generator{steps: NewSteps()}
}

// trimList keeps only the moves with the maximum capture count observed; if
// the maximum is zero the quiet moves already in list stand as-is. Capture
// sequences that reached the same (from, to, taken-set) via a different
// traversal order are deduplicated by structural Move equality.
func trimList(list []Move) []Move {
	if len(list) == 0 {
		return list
	}

	maxTaken := uint8(0)
	for _, mv := range list {
		if mv.NumTaken > maxTaken {
			maxTaken = mv.NumTaken
		}
	}
	if maxTaken == 0 {
		return list
	}

	filtered := list[:0]
	for _, mv := range list {
		if mv.NumTaken == maxTaken {
			filtered = append(filtered, mv)
		}
	}
	if maxTaken < 2 {
		return filtered
	}

	sort.Slice(filtered, func(i, j int) bool {
		if filtered[i].From != filtered[j].From {
			return filtered[i].From < filtered[j].From
		}
		if filtered[i].To != filtered[j].To {
			return filtered[i].To < filtered[j].To
		}
		for k := 0; k < int(maxTaken); k++ {
			if filtered[i].Taken[k] != filtered[j].Taken[k] {
				return filtered[i].Taken[k] < filtered[j].Taken[k]
			}
		}
		return false
	})
	out := filtered[:0]
	for i, mv := range filtered {
		if i == 0 || !mv.Equal(out[len(out)-1]) {
			out = append(out, mv)
		}
	}
	return out
}

// explodeJump recursively extends a man's capture from mv.To, landing on
// any empty square (including the square the capturing man started from,
// which counts as empty once it has left it) reached by jumping an enemy
// piece not already captured in this move. A move with no further jump
// available is appended to list.
func (g *Generator) explodeJump(pos Position, mv Move, toCapture Color, list []Move) []Move {
	exploded := false
	for _, j := range g.steps.ShortJumps(mv.To) {
		if pos.PieceAt(j.Via).Is(toCapture) && pos.IsEmpty(j.To) && !mv.GoesVia(j.Via) {
			exploded = true
			list = g.explodeJump(pos, mv.TakeMore(j.Via, j.To), toCapture, list)
		}
	}
	if !exploded {
		list = append(list, mv)
	}
	return list
}

// addShortJumps enumerates every first capture hop available to the man on
// field, expanding each into its full capture sequence. Returns whether any
// capture was found.
func (g *Generator) addShortJumps(pos Position, field Field, list []Move, toCapture Color) ([]Move, bool) {
	captures := false
	for _, j := range g.steps.ShortJumps(field) {
		if pos.IsEmpty(j.To) && pos.PieceAt(j.Via).Is(toCapture) {
			captures = true
			without := pos.PutPiece(field, Empty)
			list = g.explodeJump(without, TakeOne(field, j.To, j.Via), toCapture, list)
		}
	}
	return list, captures
}

// explodeLongJump recursively extends a flying king's capture. From mv.To
// it walks each of the four rays looking for exactly one enemy piece
// followed by at least one empty landing square; every such landing spawns
// a further recursive capture. A move with no further jump is appended.
func (g *Generator) explodeLongJump(pos Position, mv Move, toCapture Color, list []Move) []Move {
	exploded := false
rays:
	for _, ray := range g.steps.Rays(mv.To) {
		var via Field
		haveVia := false
		for _, to := range ray {
			owned, present := pos.PieceAt(to).Colored()
			switch {
			case present && owned != toCapture:
				// own piece blocks the ray entirely
				continue rays
			case present && owned == toCapture:
				if haveVia {
					continue rays
				}
				via, haveVia = to, true
			case !present && haveVia:
				if mv.GoesVia(via) {
					continue rays
				}
				exploded = true
				list = g.explodeLongJump(pos, mv.TakeMore(via, to), toCapture, list)
			}
		}
	}
	if !exploded {
		list = append(list, mv)
	}
	return list
}

// addKingMoves enumerates the flying king on field's quiet flights and
// capture sequences, setting *captures once any capture is found (which
// suppresses quiet moves already collected for earlier pieces, per the
// maximum-capture rule applied later by trimList).
func (g *Generator) addKingMoves(pos Position, field Field, list []Move, captures *bool, toCapture Color) []Move {
	without := pos.PutPiece(field, Empty)
rays:
	for _, ray := range g.steps.Rays(field) {
		var via Field
		haveVia := false
		for _, to := range ray {
			owned, present := pos.PieceAt(to).Colored()
			switch {
			case present && owned != toCapture:
				continue rays
			case present && owned == toCapture:
				if haveVia {
					continue rays
				}
				via, haveVia = to, true
			case !present && haveVia:
				list = g.explodeLongJump(without, TakeOne(field, to, via), toCapture, list)
				*captures = true
			case !present && !haveVia:
				if !*captures {
					list = append(list, Shift(field, to))
				}
			}
		}
	}
	return list
}

// LegalMoves enumerates every legal move for the side to move in pos. If a
// capture exists, only captures of the maximum length are returned; if none
// exists, quiet steps are returned instead. An empty result means the side
// to move has lost (no legal move).
func (g *Generator) LegalMoves(pos Position) []Move {
	list := make([]Move, 0, 31)
	captures := false

	toMove := pos.SideToMove()
	opponent := toMove.Other()
	manOf := WhiteMan
	kingOf := WhiteKing
	steps := g.steps.WhiteSteps
	if toMove == Black {
		manOf = BlackMan
		kingOf = BlackKing
		steps = g.steps.BlackSteps
	}

	for field := Field(0); field < NumFields; field++ {
		switch pos.PieceAt(field) {
		case manOf:
			var got bool
			list, got = g.addShortJumps(pos, field, list, opponent)
			if got {
				captures = true
			}
			if !captures {
				for _, to := range steps(field) {
					if pos.IsEmpty(to) {
						list = append(list, Shift(field, to))
					}
				}
			}
		case kingOf:
			list = g.addKingMoves(pos, field, list, &captures, opponent)
		}
	}

	return trimList(list)
}
