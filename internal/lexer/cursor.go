package lexer

import (
	"fmt"
	"unicode/utf8"

	"surge/internal/source"

	"fortio.org/safecast"
)

// Cursor decodes source text one code point at a time and tracks the
// current byte offset, line, and column.
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32
	Line  uint32 // 1-based
	Col   uint32 // 1-based, counted in bytes
}

// NewCursor creates a cursor positioned at the start of f.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("len file content overflow: %w", err))
	}
	return Cursor{
		File:  f,
		Off:   0,
		Limit: limit,
		Line:  1,
		Col:   1,
	}
}

// EOF reports whether the cursor has consumed the whole buffer.
func (c *Cursor) EOF() bool {
	return c.Off >= c.Limit
}

// cur decodes the code point starting at Off without advancing.
// Malformed input (a continuation byte as leader, a truncated
// sequence, or a non-continuation continuation byte) decodes to an
// empty code point (size 0), which callers treat as end-of-input.
func (c *Cursor) cur() (rune, uint32) {
	if c.EOF() {
		return 0, 0
	}
	r, size := utf8.DecodeRune(c.File.Content[c.Off:c.Limit])
	if r == utf8.RuneError && size <= 1 {
		return 0, 0
	}
	sz, err := safecast.Conv[uint32](size)
	if err != nil {
		panic(fmt.Errorf("rune size overflow: %w", err))
	}
	return r, sz
}

// Peek returns the current code point without consuming it. It returns
// 0 at end of input or on malformed input; callers distinguish via EOF.
func (c *Cursor) Peek() rune {
	r, _ := c.cur()
	return r
}

// PeekAt looks ahead n code points from the current position without
// consuming anything. It returns 0 if that would read past Limit.
func (c *Cursor) PeekAt(n int) rune {
	off := c.Off
	for i := 0; i < n; i++ {
		if off >= c.Limit {
			return 0
		}
		_, size := utf8.DecodeRune(c.File.Content[off:c.Limit])
		if size == 0 {
			return 0
		}
		off += uint32(size)
	}
	if off >= c.Limit {
		return 0
	}
	r, size := utf8.DecodeRune(c.File.Content[off:c.Limit])
	if r == utf8.RuneError && size <= 1 {
		return 0
	}
	return r
}

// advance moves the cursor forward by the length of the current code
// point and updates line/column. A newline increments Line and resets
// Col to 1; any other code point adds its byte length to Col.
func (c *Cursor) advance() {
	r, size := c.cur()
	if size == 0 {
		return
	}
	if r == '\n' {
		c.Line++
		c.Col = 1
	} else {
		c.Col += size
	}
	c.Off += size
}

// Bump consumes and returns the current code point, or 0 at EOF.
func (c *Cursor) Bump() rune {
	r, size := c.cur()
	if size == 0 {
		return 0
	}
	c.advance()
	return r
}

// Eat consumes the current code point if it equals r.
func (c *Cursor) Eat(r rune) bool {
	if c.Peek() == r {
		c.advance()
		return true
	}
	return false
}

// Mark records a position to later compute a Span or restore the cursor.
type Mark struct {
	Off  uint32
	Line uint32
	Col  uint32
}

// Mark captures the current position.
func (c *Cursor) Mark() Mark {
	return Mark{Off: c.Off, Line: c.Line, Col: c.Col}
}

// SpanFrom builds the Span covering [m, current position).
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.File.ID, Start: m.Off, End: c.Off}
}

// Reset rewinds the cursor to a previously captured Mark.
func (c *Cursor) Reset(m Mark) {
	c.Off = m.Off
	c.Line = m.Line
	c.Col = m.Col
}
