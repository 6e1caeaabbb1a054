package board

import "testing"

func TestMoveEqualityIgnoresTraversalOrder(t *testing.T) {
	a := Take(26, 8, []Field{21, 12})
	b := Take(26, 8, []Field{12, 21})
	if !a.Equal(b) {
		t.Fatalf("expected %s and %s to compare equal regardless of capture order", a.FullString(), b.FullString())
	}
}

func TestTakeMoreKeepsTakenSorted(t *testing.T) {
	mv := TakeOne(26, 17, 21)
	mv = mv.TakeMore(12, 8)
	want := []Field{12, 21}
	got := mv.TakenFields()
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestShiftString(t *testing.T) {
	mv := Shift(31, 26)
	if got, want := mv.String(), "32-27"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCaptureFullString(t *testing.T) {
	mv := Take(26, 8, []Field{21, 12})
	if got, want := mv.FullString(), "27x9x13x22"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestNullMoveIsNull(t *testing.T) {
	if !NullMove.IsNull() {
		t.Error("NullMove.IsNull() = false, want true")
	}
	if Shift(0, 1).IsNull() {
		t.Error("a real move reported as null")
	}
}
