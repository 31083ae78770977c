// Package token defines the lexical token kinds produced by internal/lexer.
//
// Invariants:
//   - Token.Text holds the original source bytes the token covers, as a
//     string the lexer copies out of the source buffer.
//   - Token.Span matches Text exactly (Start..End, byte offsets).
//   - Every token stream produced by the lexer ends with exactly one EOF
//     token, and the lexer never produces a token past it.
//   - Keywords are recognized case-sensitively by LookupKeyword after the
//     lexer has already scanned a maximal identifier run.
package token
