package token

import "github.com/hodevin/decaf/internal/source"

// Token is one lexeme produced by internal/lexer.
//
// Literal fields are populated only for the Kind that produced them; the
// rest stay zero. Text always holds the raw lexeme as it appeared in the
// source, even for literals, so diagnostics can quote it verbatim.
type Token struct {
	Kind      Kind
	Pos       source.Position
	Text      string
	IntVal    int64
	DoubleVal float64
	BoolVal   bool
	StrVal    string // string literal content with quotes stripped (Decaf has no escape sequences)
}

func (t Token) String() string {
	if t.Text != "" {
		return t.Text
	}
	return t.Kind.String()
}
