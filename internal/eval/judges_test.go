package eval

import (
	"testing"

	"github.com/WiebeCnossen/draughts/internal/board"
	"github.com/WiebeCnossen/draughts/internal/search"
)

func TestRandAapEvaluatesInitialPositionAsSymmetric(t *testing.T) {
	judge := NewRandAap(board.NewGenerator())
	if got := judge.Evaluate(board.Initial()); got != search.ZeroEval {
		t.Errorf("expected the symmetric initial position to evaluate to 0, got %d", got)
	}
}

func TestRandAapQuietMoveClassification(t *testing.T) {
	judge := NewRandAap(board.NewGenerator())
	quiet := board.Move{From: 31, To: 26}
	capture := board.Move{From: 31, To: 22, NumTaken: 1, Taken: [12]board.Field{26}}

	if !judge.QuietMove(board.Initial(), quiet) {
		t.Error("expected a non-capturing move to be quiet")
	}
	if judge.QuietMove(board.Initial(), capture) {
		t.Error("expected a capturing move to not be quiet")
	}
}

func TestRandAapDisplayName(t *testing.T) {
	if name := NewRandAap(board.NewGenerator()).DisplayName(); name != "RandAap" {
		t.Errorf("DisplayName() = %q, want RandAap", name)
	}
}

func TestSlonenokEvaluatesInitialPositionAsSymmetric(t *testing.T) {
	judge := NewSlonenok(board.NewGenerator(), search.NewTable())
	if got := judge.Evaluate(board.Initial()); got != search.ZeroEval {
		t.Errorf("expected the symmetric initial position to evaluate to 0, got %d", got)
	}
}

func TestSlonenokRemembersAcrossProbes(t *testing.T) {
	shared := search.NewTable()
	judge := NewSlonenok(board.NewGenerator(), shared)
	pos := board.Initial()

	judge.Remember(pos, 5, search.Eval(123), board.Move{}, false, false)
	recalled := judge.Recall(pos)
	if recalled.Depth != 5 || recalled.Lower != 123 {
		t.Errorf("unexpected recall after remember: %+v", recalled)
	}
}

func TestSherlockEvaluatesInitialPositionAsSymmetric(t *testing.T) {
	judge := NewSherlock(board.NewGenerator(), board.NewStars(), search.NewTable())
	if got := judge.Evaluate(board.Initial()); got != search.ZeroEval {
		t.Errorf("expected the symmetric initial position to evaluate to 0, got %d", got)
	}
}

func TestSherlockDisplayName(t *testing.T) {
	judge := NewSherlock(board.NewGenerator(), board.NewStars(), search.NewTable())
	if name := judge.DisplayName(); name != "Sherlock" {
		t.Errorf("DisplayName() = %q, want Sherlock", name)
	}
}

func TestSherlockMovesHoistsRememberedMove(t *testing.T) {
	shared := search.NewTable()
	judge := NewSherlock(board.NewGenerator(), board.NewStars(), shared)
	pos := board.Initial()

	moves := judge.Moves(pos)
	if len(moves) == 0 {
		t.Fatal("expected legal moves from the initial position")
	}
	hinted := moves[len(moves)-1]
	judge.Remember(pos, sherlockMinHashDepth, search.Eval(0), hinted, true, false)

	reordered := judge.Moves(pos)
	if reordered[0] != hinted {
		t.Errorf("expected the remembered move %+v to be hoisted to the front, got %+v", hinted, reordered[0])
	}
}
