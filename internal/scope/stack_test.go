package scope

import "testing"

func TestPushSymbolAndLookup(t *testing.T) {
	s := New[int]()
	s.PushScope()
	if ok, _ := s.PushSymbol("x", 1); !ok {
		t.Fatal("expected first push to succeed")
	}
	v, ok := s.Lookup("x")
	if !ok || v != 1 {
		t.Fatalf("expected to find x=1, got %v %v", v, ok)
	}
}

func TestNoShadowing(t *testing.T) {
	s := New[int]()
	s.PushScope()
	s.PushSymbol("x", 1)
	s.PushScope()
	if ok, prior := s.PushSymbol("x", 2); ok || prior != 1 {
		t.Fatal("expected shadowing attempt to fail and report the prior binding")
	}
}

func TestPopScopeRestoresPriorState(t *testing.T) {
	s := New[int]()
	s.PushScope()
	s.PushSymbol("outer", 1)

	s.PushScope()
	s.PushSymbol("a", 10)
	s.PushSymbol("b", 20)
	s.PopScope()

	if s.Contains("a") || s.Contains("b") {
		t.Fatal("expected inner names to be gone after PopScope")
	}
	if !s.Contains("outer") {
		t.Fatal("expected outer name to survive PopScope")
	}
	if s.Depth() != 1 {
		t.Fatalf("expected depth 1, got %d", s.Depth())
	}
}

func TestPushSymbolWithNoFrameFails(t *testing.T) {
	s := New[int]()
	if ok, _ := s.PushSymbol("x", 1); ok {
		t.Fatal("expected push with no frame to fail")
	}
}

func TestContainsAndLookupMiss(t *testing.T) {
	s := New[string]()
	s.PushScope()
	if s.Contains("missing") {
		t.Fatal("expected missing name to be absent")
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("expected lookup miss")
	}
}
