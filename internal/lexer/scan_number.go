package lexer

import (
	"rolint/internal/diag"
	"rolint/internal/token"
)

// Поддержка: 123, 1_000, 0x1F, 0b1010, 1.5, .5, 1., 1e-3, 0x1p4.
// Неверные формы репортятся, токен по возможности завершаем.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
		switch b1 {
		case 'x', 'X':
			lx.cursor.Off += 2
			return lx.finishNumber(start, lx.scanDigits(isHex, true, 'p', 'P'))
		case 'b', 'B':
			lx.cursor.Off += 2
			ok := lx.eatDigits(func(b byte) bool { return b == '0' || b == '1' })
			return lx.finishNumber(start, ok)
		}
	}
	return lx.finishNumber(start, lx.scanDigits(isDec, true, 'e', 'E'))
}

// scanDigits reads an integer part, an optional fraction and an optional
// exponent introduced by e0/e1.
func (lx *Lexer) scanDigits(digit func(byte) bool, allowFrac bool, e0, e1 byte) bool {
	intPart := lx.eatDigits(digit)
	fracPart := false
	if allowFrac && lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) != '.' {
		lx.cursor.Bump()
		fracPart = lx.eatDigits(digit)
	}
	if !intPart && !fracPart {
		return false
	}
	if b := lx.cursor.Peek(); b == e0 || b == e1 {
		lx.cursor.Bump()
		if b := lx.cursor.Peek(); b == '+' || b == '-' {
			lx.cursor.Bump()
		}
		return lx.eatDigits(isDec)
	}
	return true
}

// eatDigits consumes digits and '_' separators; true if at least one digit was seen.
func (lx *Lexer) eatDigits(digit func(byte) bool) bool {
	seen := false
	for {
		b := lx.cursor.Peek()
		switch {
		case digit(b):
			seen = true
		case b == '_':
		default:
			return seen
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) finishNumber(start Mark, ok bool) token.Token {
	// "3abc" или "0x1g" - один плохой токен, а не число и идентификатор
	trailing := false
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
		trailing = true
	}
	sp := lx.cursor.SpanFrom(start)
	if sp.Len() > maxTokenLength {
		return lx.tokenTooLong(start)
	}
	if !ok || trailing {
		lx.errLex(diag.LexBadNumber, sp, "malformed number")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	return token.Token{Kind: token.NumberLit, Span: sp, Text: lx.text(sp)}
}
