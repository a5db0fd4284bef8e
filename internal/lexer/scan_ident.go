package lexer

import (
	"rolint/internal/diag"
	"rolint/internal/dialect"
	"rolint/internal/token"
)

// scanIdentOrKeyword сканирует [A-Za-z_][A-Za-z0-9_]* и проверяет через LookupKeyword.
// Token.Text - ровно исходный срез.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	sp := lx.cursor.SpanFrom(start)
	if sp.Len() > maxTokenLength {
		return lx.tokenTooLong(start)
	}
	text := lx.text(sp)

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}

	dialect.RecordIdent(lx.opts.DialectEvidence, text, sp)
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// tokenTooLong reports the oversized token and fast-forwards to EOF:
// whatever follows is not worth parsing.
func (lx *Lexer) tokenTooLong(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexTokenTooLong, sp, "token exceeds maximum length")
	lx.cursor.SkipTo(^uint32(0))
	return token.Token{Kind: token.Invalid, Span: sp}
}

// scanForeignRune consumes one non-ASCII rune outside strings and comments.
func (lx *Lexer) scanForeignRune() token.Token {
	start := lx.cursor.Mark()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, "unexpected non-ASCII character")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
