package token

import "testing"

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		EOF:        "EOF",
		Identifier: "IDENTIFIER",
		KwConst:    "K_CONST",
		LGeneric:   "LGENERIC",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestKindIsKeyword(t *testing.T) {
	if !KwFn.IsKeyword() {
		t.Errorf("KwFn should be a keyword")
	}
	if Identifier.IsKeyword() {
		t.Errorf("Identifier should not be a keyword")
	}
}

func TestKindIsTerminator(t *testing.T) {
	for _, k := range []Kind{Newline, Comma, RParen, RSquare, RCurly, EOF} {
		if !k.IsTerminator() {
			t.Errorf("%v should be a terminator", k)
		}
	}
	if Identifier.IsTerminator() {
		t.Errorf("Identifier should not be a terminator")
	}
}
