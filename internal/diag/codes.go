package diag

import "fmt"

// Code tags the kind of a diagnostic, following the five-kind error
// taxonomy: Lex, Parse, Resolution, NameClash, Type.
type Code uint16

const (
	UnknownCode Code = iota

	// LexError covers malformed UTF-8, unterminated string/raw-string
	// literals, and stray reserved characters the lexer could not
	// classify. Most instances are recoverable (emit UNKNOWN); only
	// UTF-8 corruption may be fatal.
	LexError Code = 1000

	// ParseError covers unexpected tokens, missing punctuation, a
	// const declaration without an initializer, malformed parameter
	// lists, and malformed type expressions. Always fatal for the
	// current parse call.
	ParseError Code = 2000

	// ResolutionError covers an identifier not in scope at a use
	// site, or a nominal type name that was never declared. Fatal for
	// the current AST.
	ResolutionError Code = 3000

	// NameClashError covers push_symbol refusing a redeclaration
	// already visible in some frame. Surfaced at the parse site.
	NameClashError Code = 4000

	// TypeError covers a mismatch between a declared type and its
	// initializer's type, or between the two sides of an assignment.
	TypeError Code = 5000
)

var codeNames = map[Code]string{
	UnknownCode:     "Unknown",
	LexError:        "LexError",
	ParseError:      "ParseError",
	ResolutionError: "ResolutionError",
	NameClashError:  "NameClashError",
	TypeError:       "TypeError",
}

// String renders the code's symbolic name.
func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", c)
}
