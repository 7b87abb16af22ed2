package diag

import "fmt"

// Code identifies the kind of a Diagnostic. Numeric ranges group codes by
// pipeline phase, mirroring the teacher's lexer/syntax/semantic bands.
type Code uint16

const (
	UnknownCode Code = 0

	// Lexical (1000-1999).
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004

	// Syntax (2000-2999).
	SynUnexpectedToken Code = 2001
	SynExpectSemicolon Code = 2002

	// Semantic (3000-3999) — exactly the ten kinds of spec.md §7.
	SemaConflictingDecl              Code = 3001
	SemaUndeclaredType               Code = 3002
	SemaIllegalClassInheritanceCycle Code = 3003
	SemaTypeSignature                Code = 3004
	SemaUnimplementedInterface       Code = 3005
	SemaInvalidTest                  Code = 3006
	SemaIncompatibleReturn           Code = 3007
	SemaIncompatibleArgument         Code = 3008
	SemaBreakOutsideLoop             Code = 3009
	SemaTypeError                    Code = 3010

	// Observability (6000-6999).
	ObsTimings Code = 6001
)

var codeDescription = map[Code]string{
	UnknownCode:                      "Unknown error",
	LexUnknownChar:                   "Unknown character",
	LexUnterminatedString:            "Unterminated string",
	LexUnterminatedBlockComment:      "Unterminated block comment",
	LexBadNumber:                     "Bad number",
	SynUnexpectedToken:               "Unexpected token",
	SynExpectSemicolon:               "Expected semicolon",
	SemaConflictingDecl:              "Conflicting declaration",
	SemaUndeclaredType:               "Undeclared type",
	SemaIllegalClassInheritanceCycle: "Illegal cyclic class inheritance",
	SemaTypeSignature:                "Method signature does not match inherited type",
	SemaUnimplementedInterface:       "Interface not fully implemented",
	SemaInvalidTest:                  "Test expression must have boolean type",
	SemaIncompatibleReturn:           "Incompatible return type",
	SemaIncompatibleArgument:         "Incompatible argument type",
	SemaBreakOutsideLoop:             "break outside a loop",
	SemaTypeError:                    "Type error",
	ObsTimings:                       "Pipeline timings",
}

// ID renders a stable identifier like "SEM3001" for tooling/golden output.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

// Title returns the human-readable name of the code's category.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
