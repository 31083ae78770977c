package ast

import "testing"

func TestArenaPointerStability(t *testing.T) {
	a := NewArena[int](2)
	p1 := a.Alloc(1)
	p2 := a.Alloc(2)
	p3 := a.Alloc(3) // forces a new chunk, minChunkSize is 2
	p4 := a.Alloc(4)

	if *p1 != 1 || *p2 != 2 || *p3 != 3 || *p4 != 4 {
		t.Fatalf("unexpected values: %d %d %d %d", *p1, *p2, *p3, *p4)
	}
	*p1 = 100
	if *p1 != 100 {
		t.Fatal("expected mutation through stable pointer to stick")
	}
	if a.Len() != 4 {
		t.Fatalf("expected length 4, got %d", a.Len())
	}
}

func TestArenaZero(t *testing.T) {
	a := NewArena[string](0)
	p := a.AllocZero()
	if *p != "" {
		t.Fatalf("expected zero value, got %q", *p)
	}
	*p = "x"
	if *p != "x" {
		t.Fatal("expected mutation to stick")
	}
}
