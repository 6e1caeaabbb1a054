package search

import "testing"

func TestDepthScopeDecrementsOnQuietAndHoldsOnForcing(t *testing.T) {
	scope := NewDepthScope(2)
	if scope.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", scope.Depth())
	}

	child, ok := scope.Next(4, false, 0)
	if !ok || child.Depth() != 2 {
		t.Fatalf("forcing child = %v, %v; want depth 2, ok", child, ok)
	}

	child, ok = scope.Next(4, true, 0)
	if !ok || child.Depth() != 1 {
		t.Fatalf("quiet child = %v, %v; want depth 1, ok", child, ok)
	}

	leaf := NewDepthScope(0)
	if _, ok := leaf.Next(4, true, 0); ok {
		t.Fatal("expected a quiet move at depth 0 to stop the recursion")
	}
	if _, ok := leaf.Next(4, false, 0); !ok {
		t.Fatal("expected a forcing move at depth 0 to still recurse")
	}
}

func TestAdaptiveScopeExtendsThroughForcingChains(t *testing.T) {
	scope := NewAdaptiveScope(4)

	child, ok := scope.Next(4, false, 0)
	if !ok {
		t.Fatal("expected a capture to extend the adaptive scope")
	}
	if child.Depth() != 4 {
		t.Fatalf("forcing child kept a stale depth: %d", child.Depth())
	}
}

func TestLogarithmicScopeSpendsNodeBudgetAcrossMoves(t *testing.T) {
	scope := NewLogarithmicScope(6)
	initialDepth := scope.Depth()
	if initialDepth == 0 {
		t.Fatal("expected a positive initial depth for a nonzero nominal depth")
	}

	child, ok := scope.Next(5, true, 0)
	if !ok {
		t.Fatal("expected the first probe to still have budget")
	}
	if child.Depth() >= initialDepth {
		t.Fatalf("child depth %d did not shrink from parent %d", child.Depth(), initialDepth)
	}
}

func TestLogarithmicScopeClampsExcessiveDepth(t *testing.T) {
	scope := NewLogarithmicScope(200)
	if scope.Depth() == 0 {
		t.Fatal("expected a clamped but still positive depth")
	}
}
