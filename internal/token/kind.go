package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident

	KwAnd      // and
	KwBreak    // break
	KwDo       // do
	KwElse     // else
	KwElseif   // elseif
	KwEnd      // end
	KwFalse    // false
	KwFor      // for
	KwFunction // function
	KwIf       // if
	KwIn       // in
	KwLocal    // local
	KwNil      // nil
	KwNot      // not
	KwOr       // or
	KwRepeat   // repeat
	KwReturn   // return
	KwThen     // then
	KwTrue     // true
	KwUntil    // until
	KwWhile    // while

	// NumberLit covers decimal, hex, binary and exponent forms.
	NumberLit
	// StringLit covers quoted strings and long-bracket strings.
	StringLit
	// InterpStringLit is a Luau backtick string.
	InterpStringLit

	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	SlashSlash // //
	Percent   // %
	Caret     // ^
	Hash      // #
	EqEq      // ==
	TildeEq   // ~=
	Lt        // <
	LtEq      // <=
	Gt        // >
	GtEq      // >=
	Assign    // =
	DotDot    // ..
	DotDotDot // ...

	PlusAssign       // +=
	MinusAssign      // -=
	StarAssign       // *=
	SlashAssign      // /=
	SlashSlashAssign // //=
	PercentAssign    // %=
	CaretAssign      // ^=
	DotDotAssign     // ..=

	LParen     // (
	RParen     // )
	LBrace     // {
	RBrace     // }
	LBracket   // [
	RBracket   // ]
	Semicolon  // ;
	Colon      // :
	ColonColon // ::
	Comma      // ,
	Dot        // .
	Arrow      // ->
	Question   // ?
	Pipe       // |
	Amp        // &

	kindCount
)

var kindNames = [...]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Ident:            "Ident",
	KwAnd:            "and",
	KwBreak:          "break",
	KwDo:             "do",
	KwElse:           "else",
	KwElseif:         "elseif",
	KwEnd:            "end",
	KwFalse:          "false",
	KwFor:            "for",
	KwFunction:       "function",
	KwIf:             "if",
	KwIn:             "in",
	KwLocal:          "local",
	KwNil:            "nil",
	KwNot:            "not",
	KwOr:             "or",
	KwRepeat:         "repeat",
	KwReturn:         "return",
	KwThen:           "then",
	KwTrue:           "true",
	KwUntil:          "until",
	KwWhile:          "while",
	NumberLit:        "NumberLit",
	StringLit:        "StringLit",
	InterpStringLit:  "InterpStringLit",
	Plus:             "+",
	Minus:            "-",
	Star:             "*",
	Slash:            "/",
	SlashSlash:       "//",
	Percent:          "%",
	Caret:            "^",
	Hash:             "#",
	EqEq:             "==",
	TildeEq:          "~=",
	Lt:               "<",
	LtEq:             "<=",
	Gt:               ">",
	GtEq:             ">=",
	Assign:           "=",
	DotDot:           "..",
	DotDotDot:        "...",
	PlusAssign:       "+=",
	MinusAssign:      "-=",
	StarAssign:       "*=",
	SlashAssign:      "/=",
	SlashSlashAssign: "//=",
	PercentAssign:    "%=",
	CaretAssign:      "^=",
	DotDotAssign:     "..=",
	LParen:           "(",
	RParen:           ")",
	LBrace:           "{",
	RBrace:           "}",
	LBracket:         "[",
	RBracket:         "]",
	Semicolon:        ";",
	Colon:            ":",
	ColonColon:       "::",
	Comma:            ",",
	Dot:              ".",
	Arrow:            "->",
	Question:         "?",
	Pipe:             "|",
	Amp:              "&",
}

func (k Kind) String() string {
	if k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
