package eval

import (
	"github.com/WiebeCnossen/draughts/internal/board"
	"github.com/WiebeCnossen/draughts/internal/search"
)

var slonenokPieces = [5]search.Eval{0, 500, 1500, -500, -1500}
var slonenokHOffset = [10]search.Eval{0, 1, 3, 7, 15, 15, 7, 3, 1, 0}
var slonenokVOffsetFull = [10]search.Eval{8, 7, 5, 1, -7, -23, -7, 1, 5, 7}
var slonenokVOffsetEmpty = [10]search.Eval{-15, -23, -7, 1, 5, 7, 8, 9, 10, 11}
var slonenokBalance = [10]search.Eval{-6, -5, -4, -3, -2, 2, 3, 4, 5, 6}

// slonenokMinHashDepth is the shallowest depth worth remembering; shallower
// probes are cheaper to recompute than to look up.
const slonenokMinHashDepth = 3

// Slonenok is the intermediate judge: hoffset/voffset tables interpolated
// by how many men remain, plus a handful of hardcoded triangular-formation
// bonuses recognising classic draughts structures. It keeps a transposition
// memory, unlike RandAap, but without Sherlock's star-pattern table.
type Slonenok struct {
	*search.TableMemory
	generator *board.Generator
}

// NewSlonenok builds a Slonenok judge sharing gen and shared (the
// consolidated transposition table); each call gets its own scratch table.
func NewSlonenok(gen *board.Generator, shared *search.Table) *Slonenok {
	return &Slonenok{
		TableMemory: search.NewTableMemory(shared, slonenokMinHashDepth),
		generator:   gen,
	}
}

func weighted10(table [10]search.Eval, counts [10]int) search.Eval {
	var sum search.Eval
	for i, count := range counts {
		sum += table[i] * search.Eval(count)
	}
	return sum
}

func abs(e search.Eval) search.Eval {
	if e < 0 {
		return -e
	}
	return e
}

func (j *Slonenok) drawish(stats board.Stats) bool {
	whites := stats.PieceCount[board.WhiteMan] + stats.PieceCount[board.WhiteKing]
	blacks := stats.PieceCount[board.BlackMan] + stats.PieceCount[board.BlackKing]
	return stats.PieceCount[board.WhiteKing] > 0 && stats.PieceCount[board.BlackKing] > 0 &&
		whites <= 3 && blacks <= 3
}

// triangle reports whether start's triangular three-man formation (a man,
// its sibling one field to the right, a third man offset by spread, with
// the two fields behind them empty) is intact for color, per the original
// hardcoded structural bonus fields. spread distinguishes the two
// triangle shapes a ten-file board admits within one decade of rows.
func triangle(pos board.Position, start board.Field, spread int, piece board.Piece, behindA, behindB int) bool {
	third := board.Field(int(start) + spread)
	ba, bb := board.Field(int(start)+behindA), board.Field(int(start)+behindB)
	return pos.PieceAt(start) == piece &&
		pos.PieceAt(start+1) == piece &&
		pos.PieceAt(third) == piece &&
		pos.PieceAt(ba) == board.Empty &&
		pos.PieceAt(bb) == board.Empty
}

func (j *Slonenok) structure(pos board.Position) search.Eval {
	var structure search.Eval
	for start := board.Field(10); start < 14; start++ {
		if triangle(pos, start, -5, board.BlackMan, -10, -9) {
			structure += 100
		}
	}
	for start := board.Field(15); start < 19; start++ {
		if triangle(pos, start, -4, board.BlackMan, -10, -9) {
			structure += 100
		}
	}
	for start := board.Field(30); start < 34; start++ {
		if triangle(pos, start, 6, board.WhiteMan, 10, 11) {
			structure -= 100
		}
	}
	for start := board.Field(35); start < 39; start++ {
		if triangle(pos, start, 5, board.WhiteMan, 10, 11) {
			structure -= 100
		}
	}
	return structure
}

// Evaluate implements search.Judge.
func (j *Slonenok) Evaluate(pos board.Position) search.Eval {
	stats := board.StatsFor(pos)

	var beans search.Eval
	for i, count := range stats.PieceCount {
		beans += slonenokPieces[i] * search.Eval(count)
	}
	men := stats.PieceCount[board.WhiteMan] + stats.PieceCount[board.BlackMan]

	hoffsetWhite := weighted10(slonenokHOffset, stats.HOffsetW)
	hoffsetBlack := weighted10(slonenokHOffset, stats.HOffsetB)

	voffsetWhiteFull := weighted10(slonenokVOffsetFull, stats.VOffsetW)
	voffsetWhiteEmpty := weighted10(slonenokVOffsetEmpty, stats.VOffsetW)
	voffsetBlackFull := weighted10(slonenokVOffsetFull, stats.VOffsetB)
	voffsetBlackEmpty := weighted10(slonenokVOffsetEmpty, stats.VOffsetB)

	voffsetWhite := blendByMen(men, voffsetWhiteFull, voffsetWhiteEmpty)
	voffsetBlack := blendByMen(men, voffsetBlackFull, voffsetBlackEmpty)

	balanceWhite := weighted10(slonenokBalance, stats.HOffsetW)
	balanceBlack := weighted10(slonenokBalance, stats.HOffsetB)

	score := beans + j.structure(pos) +
		(hoffsetWhite - hoffsetBlack) +
		(voffsetWhite - voffsetBlack) -
		2*(abs(balanceWhite)-abs(balanceBlack))

	scaled := score
	if j.drawish(stats) {
		scaled = score / 100
	} else {
		minKings := stats.PieceCount[board.WhiteKing]
		if stats.PieceCount[board.BlackKing] < minKings {
			minKings = stats.PieceCount[board.BlackKing]
		}
		scaled = score >> uint(minKings)
	}

	if pos.SideToMove() == board.Black {
		scaled = -scaled
	}
	return scaled
}

func blendByMen(men int, full, empty search.Eval) search.Eval {
	switch {
	case men >= 30:
		return full
	case men <= 10:
		return empty
	default:
		return (search.Eval(men-10)*full + search.Eval(30-men)*empty) / 20
	}
}

// Moves implements search.Judge, hoisting a remembered best move to the
// front of the generator's output.
func (j *Slonenok) Moves(pos board.Position) []board.Move {
	moves := j.generator.LegalMoves(pos)
	memory := j.Recall(pos)
	if !memory.HasMove() {
		return moves
	}
	for i, mv := range moves {
		if mv.From == memory.From && mv.To == memory.To {
			if i > 0 {
				moves[0], moves[i] = moves[i], moves[0]
			}
			break
		}
	}
	return moves
}

// QuietMove implements search.Judge: a shift is quiet unless it is a man
// stepping onto the promotion rank or the rank just before it.
func (j *Slonenok) QuietMove(pos board.Position, mv board.Move) bool {
	if mv.NumTaken != 0 {
		return false
	}
	if pos.SideToMove() == board.White {
		return mv.To >= 10 || pos.PieceAt(mv.From) != board.WhiteMan
	}
	return mv.To <= 39 || pos.PieceAt(mv.From) != board.BlackMan
}

// QuietPosition implements search.Judge.
func (j *Slonenok) QuietPosition(pos board.Position, moves []board.Move) bool {
	return search.DefaultQuietPosition(j, pos, moves)
}

// DisplayName implements search.Judge.
func (j *Slonenok) DisplayName() string { return "Slonenok" }
