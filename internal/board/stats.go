package board

// Stats summarizes a position's piece distribution for use by an
// evaluator: how many of each piece kind are on the board, how pieces are
// spread across files (hoffset) and ranks (voffset) per color, and how far
// each color's men have advanced (height). It is recomputed per-position
// rather than incrementally maintained, since a full board scan is cheap
// relative to move generation.
type Stats struct {
	PieceCount  [5]int
	VOffsetW    [10]int
	VOffsetB    [10]int
	HOffsetW    [10]int
	HOffsetB    [10]int
	HeightWhite int
	HeightBlack int
}

// StatsFor scans every field of pos once and derives a Stats snapshot.
func StatsFor(pos Position) Stats {
	var s Stats
	vminWhite, vmaxWhite := 9, 0
	vminBlack, vmaxBlack := 9, 0

	for field := Field(0); field < NumFields; field++ {
		piece := pos.PieceAt(field)
		s.PieceCount[piece]++

		f := int(field)
		switch piece {
		case WhiteMan:
			x := 1 + 2*(f%5) - (f/5)%2
			s.HOffsetW[x]++
			y := 9 - f/5
			s.VOffsetW[y]++
			if y < vminWhite {
				vminWhite = y
			}
			if y > vmaxWhite {
				vmaxWhite = y
			}
		case BlackMan:
			x := 8 - 2*(f%5) + (f/5)%2
			s.HOffsetB[x]++
			y := f / 5
			s.VOffsetB[y]++
			if y < vminBlack {
				vminBlack = y
			}
			if y > vmaxBlack {
				vmaxBlack = y
			}
		}
	}

	if vmaxWhite > vminWhite {
		s.HeightWhite = vmaxWhite - vminWhite
	}
	if vmaxBlack > vminBlack {
		s.HeightBlack = vmaxBlack - vminBlack
	}
	return s
}
