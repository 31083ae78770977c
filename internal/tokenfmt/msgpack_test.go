package tokenfmt

import (
	"bytes"
	"testing"

	"surge/internal/lexer"
	"surge/internal/source"
	"surge/internal/token"
)

func tokenize(t *testing.T, src string) ([]token.Token, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.sg", []byte(src))
	lx := lexer.New(fs.Get(id), lexer.Options{})
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return tokens, fs
}

func TestEncodeDecodeRoundTrips(t *testing.T) {
	tokens, fs := tokenize(t, "const x = 1\n")

	var buf bytes.Buffer
	if err := Encode(&buf, tokens, fs); err != nil {
		t.Fatalf("unexpected encode error: %v", err)
	}

	records, err := Decode(&buf)
	if err != nil {
		t.Fatalf("unexpected decode error: %v", err)
	}
	if len(records) != len(tokens) {
		t.Fatalf("expected %d records, got %d", len(tokens), len(records))
	}
	for i, tok := range tokens {
		if records[i].TypeTag != uint8(tok.Kind) {
			t.Errorf("record %d: expected type_tag %d, got %d", i, uint8(tok.Kind), records[i].TypeTag)
		}
		if string(records[i].Text) != tok.Text {
			t.Errorf("record %d: expected text %q, got %q", i, tok.Text, records[i].Text)
		}
	}
	if records[len(records)-1].TypeTag != uint8(token.EOF) {
		t.Fatal("expected the last record to be the EOF sentinel")
	}
}

func TestEncodeRejectsStreamWithoutTrailingEOF(t *testing.T) {
	tokens, fs := tokenize(t, "const x = 1\n")
	tokens = tokens[:len(tokens)-1] // drop the EOF sentinel

	var buf bytes.Buffer
	if err := Encode(&buf, tokens, fs); err == nil {
		t.Fatal("expected an error for a stream missing its EOF sentinel")
	}
}

func TestEncodeRejectsEarlyEOF(t *testing.T) {
	tokens, fs := tokenize(t, "const x = 1\n")
	tokens = append([]token.Token{tokens[len(tokens)-1]}, tokens...) // EOF duplicated up front

	var buf bytes.Buffer
	if err := Encode(&buf, tokens, fs); err == nil {
		t.Fatal("expected an error for an EOF token appearing before the end of the stream")
	}
}
