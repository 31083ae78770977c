package lexer

import (
	"testing"

	"surge/internal/token"
)

func lexAll(t *testing.T, src string) []token.Token {
	t.Helper()
	file := createFile(src)
	lx := New(file, Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func assertKinds(t *testing.T, toks []token.Token, want ...token.Kind) {
	t.Helper()
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: got %v, want %v (all: %v)", i, got[i], want[i], got)
		}
	}
}

func TestLexEOFAlwaysLast(t *testing.T) {
	toks := lexAll(t, "")
	assertKinds(t, toks, token.EOF)
}

func TestLexConstDecl(t *testing.T) {
	toks := lexAll(t, "const answer: i32 = 42")
	assertKinds(t, toks,
		token.KwConst, token.Identifier, token.Colon, token.Identifier,
		token.Operator, token.IntegerLit, token.EOF)
	if toks[5].Text != "42" {
		t.Fatalf("expected literal text 42, got %q", toks[5].Text)
	}
}

func TestLexFnLiteral(t *testing.T) {
	toks := lexAll(t, "fn inc [x: i32] -> i32 (return x + 1)")
	assertKinds(t, toks,
		token.KwFn, token.Identifier, token.LSquare, token.Identifier, token.Colon,
		token.Identifier, token.RSquare, token.Operator, token.Identifier,
		token.LParen, token.KwReturn, token.Identifier, token.Operator,
		token.IntegerLit, token.RParen, token.EOF)
}

func TestLexNewlineCoalescing(t *testing.T) {
	toks := lexAll(t, "a\n\n  \nb")
	assertKinds(t, toks, token.Identifier, token.Newline, token.Identifier, token.EOF)
}

func TestLexLineContinuationSuppressesNewline(t *testing.T) {
	toks := lexAll(t, "a \\\nb")
	assertKinds(t, toks, token.Identifier, token.Identifier, token.EOF)
}

func TestLexLineCommentSwallowed(t *testing.T) {
	toks := lexAll(t, "a # comment\nb")
	assertKinds(t, toks, token.Identifier, token.Newline, token.Identifier, token.EOF)
	if len(toks[1].Leading) != 1 || toks[1].Leading[0].Kind != token.TriviaLineComment {
		t.Fatalf("expected comment attached as leading trivia, got %v", toks[1].Leading)
	}
}

func TestLexDocString(t *testing.T) {
	toks := lexAll(t, "#: hello\na")
	assertKinds(t, toks, token.DocString, token.Newline, token.Identifier, token.EOF)
	if toks[0].Text != "#: hello" {
		t.Fatalf("unexpected doc string text %q", toks[0].Text)
	}
}

func TestLexGenericBracketDisambiguation(t *testing.T) {
	toks := lexAll(t, "a`<b>c")
	assertKinds(t, toks,
		token.Identifier, token.LGeneric, token.Identifier, token.RGeneric, token.Identifier, token.EOF)
}

func TestLexComparisonNotConfusedWithGeneric(t *testing.T) {
	toks := lexAll(t, "a < b > c")
	assertKinds(t, toks,
		token.Identifier, token.Operator, token.Identifier, token.Operator, token.Identifier, token.EOF)
}

func TestLexOperatorRun(t *testing.T) {
	toks := lexAll(t, "a == b")
	assertKinds(t, toks, token.Identifier, token.Operator, token.Identifier, token.EOF)
	if toks[1].Text != "==" {
		t.Fatalf("expected '==', got %q", toks[1].Text)
	}
}

func TestLexFloatAndBadNumber(t *testing.T) {
	toks := lexAll(t, "1.5 1.2.3")
	assertKinds(t, toks, token.FloatLit, token.Unknown, token.EOF)
}

func TestLexFloatLiteral(t *testing.T) {
	toks := lexAll(t, "3.14")
	assertKinds(t, toks, token.FloatLit, token.EOF)
	if toks[0].Text != "3.14" {
		t.Fatalf("unexpected float text %q", toks[0].Text)
	}
}

func TestLexTwoDotsIsUnknown(t *testing.T) {
	toks := lexAll(t, "1.2.3")
	if toks[0].Kind != token.Unknown {
		t.Fatalf("expected UNKNOWN for malformed number, got %v (%q)", toks[0].Kind, toks[0].Text)
	}
}

func TestLexStringLiteral(t *testing.T) {
	toks := lexAll(t, `"hello\nworld"`)
	assertKinds(t, toks, token.StringLit, token.EOF)
}

func TestLexRawStringLiteral(t *testing.T) {
	toks := lexAll(t, `'"has "quotes" inside"'`)
	assertKinds(t, toks, token.RawStringLit, token.EOF)
}

func TestLexAddressOfAndDeref(t *testing.T) {
	toks := lexAll(t, "@x $y")
	assertKinds(t, toks, token.At, token.Identifier, token.Dollar, token.Identifier, token.EOF)
}

func TestLexPeekDoesNotConsume(t *testing.T) {
	file := createFile("a b")
	lx := New(file, Options{})
	p := lx.Peek()
	n := lx.Next()
	if p.Kind != n.Kind || p.Text != n.Text {
		t.Fatalf("Peek/Next mismatch: %v vs %v", p, n)
	}
	if lx.Next().Kind != token.Identifier {
		t.Fatalf("expected second identifier after peek+next")
	}
}
