package token

import (
	"rolint/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a number, string, boolean or nil literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case NumberLit, StringLit, InterpStringLit, KwTrue, KwFalse, KwNil:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool {
	return t.Kind >= KwAnd && t.Kind <= KwWhile
}

// IsPunctOrOp reports whether the token is a punctuation or operator.
func (t Token) IsPunctOrOp() bool {
	return t.Kind >= Plus && t.Kind < kindCount
}

// IsCompoundAssign reports whether the token is a Luau compound assignment.
func (t Token) IsCompoundAssign() bool {
	return t.Kind >= PlusAssign && t.Kind <= DotDotAssign
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// IsSoft reports whether the token is the identifier word.
func (t Token) IsSoft(word string) bool { return t.Kind == Ident && t.Text == word }
