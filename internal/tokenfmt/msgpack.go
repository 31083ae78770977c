// Package tokenfmt implements the token-stream test format spec.md §6
// names: an ordered list of (type_tag, line, column, text_bytes)
// records, encoded with msgpack so golden token streams can be
// produced and compared without hand-rolled parsing.
package tokenfmt

import (
	"fmt"
	"io"

	"fortio.org/safecast"
	"github.com/vmihailenco/msgpack/v5"

	"surge/internal/source"
	"surge/internal/token"
)

// Record is the wire shape of one token.
type Record struct {
	TypeTag uint8  `msgpack:"type_tag"`
	Line    uint32 `msgpack:"line"`
	Column  uint32 `msgpack:"column"`
	Text    []byte `msgpack:"text_bytes"`
}

// ToRecords converts a token stream to its wire Records, resolving
// each token's line and column from fs. tokens must end with exactly
// one EOF token, per spec.md §6's "EOF sentinel required."
func ToRecords(tokens []token.Token, fs *source.FileSet) ([]Record, error) {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.EOF {
		return nil, fmt.Errorf("tokenfmt: stream must end with exactly one EOF token")
	}
	for _, tok := range tokens[:len(tokens)-1] {
		if tok.Kind == token.EOF {
			return nil, fmt.Errorf("tokenfmt: EOF token appears before the end of the stream")
		}
	}

	records := make([]Record, len(tokens))
	for i, tok := range tokens {
		start, _ := fs.Resolve(tok.Span)
		textLen, err := safecast.Conv[uint32](len(tok.Text))
		if err != nil {
			return nil, fmt.Errorf("tokenfmt: token %d text too long to encode: %w", i, err)
		}
		text := make([]byte, textLen)
		copy(text, tok.Text)
		records[i] = Record{
			TypeTag: uint8(tok.Kind),
			Line:    start.Line,
			Column:  start.Col,
			Text:    text,
		}
	}
	return records, nil
}

// Encode writes tokens to w as a msgpack-encoded array of Records.
func Encode(w io.Writer, tokens []token.Token, fs *source.FileSet) error {
	records, err := ToRecords(tokens, fs)
	if err != nil {
		return err
	}
	return msgpack.NewEncoder(w).Encode(records)
}

// Decode reads a msgpack-encoded array of Records from r, the inverse
// of Encode.
func Decode(r io.Reader) ([]Record, error) {
	var records []Record
	if err := msgpack.NewDecoder(r).Decode(&records); err != nil {
		return nil, err
	}
	return records, nil
}
