package eval

import (
	"github.com/WiebeCnossen/draughts/internal/board"
	"github.com/WiebeCnossen/draughts/internal/search"
)

var sherlockPieces = [5]search.Eval{0, 500, 1475, -500, -1475}
var sherlockBalance = [10]search.Eval{-54, -52, -48, -42, -10, 10, 42, 48, 52, 54}
var sherlockCenter = [10]search.Eval{-16, -8, 6, 8, 10, 10, 8, 6, -8, -16}

// threes holds successive powers of three, one per position within a
// star's five fields, so a star's ternary (empty/white/black) content
// packs into a single 0..242 index.
var threes = [board.StarSize]int{1, 3, 9, 27, 81}

const (
	starUp     = 0
	starRight  = 1
	starCenter = 2
	starLeft   = 3
	starDown   = 4
)

const (
	starLocked      search.Eval = -300
	starSemiLocked  search.Eval = -49
	starHanging     search.Eval = -25
	starIsolated    search.Eval = -50
	starSemiHanging search.Eval = -5
	starBirdy       search.Eval = 19
	starTail        search.Eval = 23
	starExtra       search.Eval = 8
)

// buildStarEvals precomputes the bonus for every one of the 243 ternary
// star contents: each of the five fields is empty (0), a white man (1) or
// a black man (2), and the center field's occupant decides whose
// perspective (and which neighbours count as "supporting" versus
// "locking") the bonus is evaluated from.
func buildStarEvals() [243]search.Eval {
	var evals [243]search.Eval
	for tl := 0; tl < 3; tl++ {
		for tr := 0; tr < 3; tr++ {
			for mm := 1; mm < 3; mm++ {
				sign, op := 1, 2
				if mm != 1 {
					sign, op = -1, 1
				}
				for bl := 0; bl < 3; bl++ {
					for br := 0; br < 3; br++ {
						star := tl*threes[starUp] + tr*threes[starRight] + mm*threes[starCenter] +
							bl*threes[starLeft] + br*threes[starDown]

						var supporters, blockers, lockers int
						if mm == 1 {
							supporters = boolInt(mm == bl) + boolInt(mm == br)
							blockers = boolInt(mm == tl) + boolInt(mm == tr)
							lockers = boolInt(op == bl) + boolInt(op == br)
						} else {
							supporters = boolInt(mm == tl) + boolInt(mm == tr)
							blockers = boolInt(mm == bl) + boolInt(mm == br)
							lockers = boolInt(op == tl) + boolInt(op == tr)
						}

						evals[star] = search.Eval(sign) * starBonus(supporters, blockers, lockers)
					}
				}
			}
		}
	}
	return evals
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func starBonus(supporters, blockers, lockers int) search.Eval {
	switch {
	case supporters == 2 && lockers == 2:
		return starLocked
	case lockers == 1:
		return starSemiLocked
	case supporters == 0 && blockers == 2 && lockers == 0:
		return starHanging
	case supporters == 0 && blockers == 0:
		return starIsolated
	case supporters == 1 && blockers == 2 && lockers == 0:
		return starSemiHanging
	case supporters == 2 && blockers == 0 && lockers == 0:
		return starBirdy
	case supporters == 2 && lockers == 0:
		return starTail + starExtra*search.Eval(blockers)
	case lockers == 0:
		return starExtra * search.Eval(supporters+blockers)
	default:
		return 0
	}
}

// sherlockMinHashDepth gates memory traffic the same way Slonenok's does.
const sherlockMinHashDepth = 4

// Sherlock is the richest judge: material, development, balance, centre
// control and a precomputed star-pattern table recognising hanging,
// locked and supported-piece clusters, scaled down in drawish endgames and
// shrunk as kings accumulate. It pairs with BestNodeSearch and
// LogarithmicScope in the engine loop.
type Sherlock struct {
	*search.TableMemory
	generator *board.Generator
	stars     *board.Stars
	evals     [243]search.Eval
}

// NewSherlock builds a Sherlock judge sharing gen, stars and shared (the
// consolidated transposition table) across every copy in a worker pool.
func NewSherlock(gen *board.Generator, stars *board.Stars, shared *search.Table) *Sherlock {
	return &Sherlock{
		TableMemory: search.NewTableMemory(shared, sherlockMinHashDepth),
		generator:   gen,
		stars:       stars,
		evals:       buildStarEvals(),
	}
}

func (j *Sherlock) drawish(stats board.Stats) bool {
	whites := stats.PieceCount[board.WhiteMan] + stats.PieceCount[board.WhiteKing]
	blacks := stats.PieceCount[board.BlackMan] + stats.PieceCount[board.BlackKing]
	return stats.PieceCount[board.WhiteKing] > 0 && stats.PieceCount[board.BlackKing] > 0 &&
		whites <= 3 && blacks <= 3
}

func (j *Sherlock) balance(hoffset [10]int) search.Eval {
	var sum search.Eval
	for i, count := range hoffset {
		sum += sherlockBalance[i] * search.Eval(count)
	}
	return abs(sum)
}

func (j *Sherlock) center(hoffset [10]int) search.Eval {
	var sum search.Eval
	for i, count := range hoffset {
		sum += sherlockCenter[i] * search.Eval(count)
	}
	return sum
}

func (j *Sherlock) structure(pos board.Position, men int) search.Eval {
	if men < 8 {
		return 0
	}

	var packed [32]int
	for f := board.Field(0); f < board.NumFields; f++ {
		var value int
		switch pos.PieceAt(f) {
		case board.WhiteMan:
			value = 1
		case board.BlackMan:
			value = 2
		default:
			continue
		}
		for _, ref := range j.stars.Touching(f) {
			packed[ref.Star] += threes[ref.Index] * value
		}
	}

	var sum search.Eval
	for _, star := range packed {
		sum += j.evals[star]
	}
	return sum
}

// Evaluate implements search.Judge.
func (j *Sherlock) Evaluate(pos board.Position) search.Eval {
	stats := board.StatsFor(pos)

	var beans search.Eval
	for i, count := range stats.PieceCount {
		beans += sherlockPieces[i] * search.Eval(count)
	}

	men := stats.PieceCount[board.WhiteMan] + stats.PieceCount[board.BlackMan]

	var devWhite, devBlack search.Eval
	for i := 1; i < 10; i++ {
		devWhite += search.Eval(i) * search.Eval(stats.VOffsetW[i])
		devBlack += search.Eval(i) * search.Eval(stats.VOffsetB[i])
	}

	balanceScore := j.balance(stats.HOffsetW) - j.balance(stats.HOffsetB)
	centerScore := j.center(stats.HOffsetW) - j.center(stats.HOffsetB)
	structureScore := j.structure(pos, men)

	score := beans + structureScore + search.Eval(32-men)*(devWhite-devBlack)/2 + balanceScore + centerScore

	var scaled search.Eval
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

// Moves implements search.Judge, hoisting a remembered best move to the
// front of the generator's output.
func (j *Sherlock) Moves(pos board.Position) []board.Move {
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

// QuietMove implements search.Judge.
func (j *Sherlock) QuietMove(pos board.Position, mv board.Move) bool {
	if mv.NumTaken != 0 {
		return false
	}
	if pos.SideToMove() == board.White {
		return mv.To >= 10 || pos.PieceAt(mv.From) != board.WhiteMan
	}
	return mv.To <= 39 || pos.PieceAt(mv.From) != board.BlackMan
}

// QuietPosition implements search.Judge.
func (j *Sherlock) QuietPosition(pos board.Position, moves []board.Move) bool {
	return search.DefaultQuietPosition(j, pos, moves)
}

// DisplayName implements search.Judge.
func (j *Sherlock) DisplayName() string { return "Sherlock" }
