// Package token defines the lexical token kinds produced by internal/lexer
// and consumed by internal/parser.
package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid marks a token the lexer could not classify.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	Ident
	IntConst
	DoubleConst
	BoolConst
	StringConst

	// Keywords.
	KwVoid
	KwInt
	KwDouble
	KwBool
	KwString
	KwNull
	KwClass
	KwExtends
	KwThis
	KwInterface
	KwImplements
	KwWhile
	KwFor
	KwIf
	KwElse
	KwReturn
	KwBreak
	KwNew
	KwNewArray
	KwPrint
	KwReadInteger
	KwReadLine

	// Punctuation and operators.
	Plus
	Minus
	Star
	Slash
	Percent
	Assign
	EqEq
	BangEq
	Lt
	LtEq
	Gt
	GtEq
	AndAnd
	OrOr
	Bang
	Semicolon
	Comma
	Dot
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case EOF:
		return "eof"
	case Ident:
		return "identifier"
	case IntConst:
		return "int constant"
	case DoubleConst:
		return "double constant"
	case BoolConst:
		return "bool constant"
	case StringConst:
		return "string constant"
	case KwVoid, KwInt, KwDouble, KwBool, KwString, KwNull, KwClass, KwExtends, KwThis,
		KwInterface, KwImplements, KwWhile, KwFor, KwIf, KwElse, KwReturn, KwBreak, KwNew,
		KwNewArray, KwPrint, KwReadInteger, KwReadLine:
		return "keyword"
	default:
		return "operator"
	}
}

// IsKeyword reports whether k is one of the reserved Decaf words.
func (k Kind) IsKeyword() bool {
	return k >= KwVoid && k <= KwReadLine
}
