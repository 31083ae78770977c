package token

import "testing"

func TestLookupKeyword(t *testing.T) {
	if k, ok := LookupKeyword("const"); !ok || k != KwConst {
		t.Fatalf("LookupKeyword(const) = %v, %v", k, ok)
	}
	if _, ok := LookupKeyword("Const"); ok {
		t.Fatalf("keyword lookup should be case sensitive")
	}
	if _, ok := LookupKeyword("answer"); ok {
		t.Fatalf("answer should not be a keyword")
	}
}
