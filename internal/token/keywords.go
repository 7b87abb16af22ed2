package token

// keywords lists the reserved words of spec.md §6. Decaf keywords are
// case-sensitive; only the lowercase spellings below are recognized.
var keywords = map[string]Kind{
	"void":        KwVoid,
	"int":         KwInt,
	"double":      KwDouble,
	"bool":        KwBool,
	"string":      KwString,
	"null":        KwNull,
	"class":       KwClass,
	"extends":     KwExtends,
	"this":        KwThis,
	"interface":   KwInterface,
	"implements":  KwImplements,
	"while":       KwWhile,
	"for":         KwFor,
	"if":          KwIf,
	"else":        KwElse,
	"return":      KwReturn,
	"break":       KwBreak,
	"new":         KwNew,
	"NewArray":    KwNewArray,
	"Print":       KwPrint,
	"ReadInteger": KwReadInteger,
	"ReadLine":    KwReadLine,
}

// LookupKeyword returns the keyword kind for ident, if it is one.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
