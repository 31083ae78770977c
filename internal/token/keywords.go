package token

var keywords = map[string]Kind{
	"namespace": KwNamespace,
	"pub":       KwPub,
	"unsafe":    KwUnsafe,
	"const":     KwConst,
	"val":       KwVal,
	"var":       KwVar,
	"mut":       KwMut,
	"ref":       KwRef,
	"fn":        KwFn,
	"struct":    KwStruct,
	"enum":      KwEnum,
	"union":     KwUnion,
	"trait":     KwTrait,
	"is":        KwIs,
	"if":        KwIf,
	"else":      KwElse,
	"loop":      KwLoop,
	"while":     KwWhile,
	"until":     KwUntil,
	"for":       KwFor,
	"in":        KwIn,
	"break":     KwBreak,
	"continue":  KwContinue,
	"return":    KwReturn,
	"as":        KwAs,
	"alias":     KwAlias,
	"type":      KwType,
}

// LookupKeyword reports the keyword tag for ident, if any.
// Keywords are case-sensitive; only the exact lowercase spelling matches.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
