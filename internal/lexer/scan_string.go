package lexer

import (
	"rolint/internal/diag"
	"rolint/internal/source"
	"rolint/internal/token"
)

// scanString сканирует "..." или '...'. Escape-последовательности
// валидируются, но не декодируются: декодирование делает ast.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch b {
		case quote:
			lx.cursor.Bump()
			return lx.emit(token.StringLit, start)
		case '\\':
			lx.scanEscape()
			continue
		case '\n':
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedString, sp, "newline in string literal")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanEscape consumes a backslash sequence and reports unknown escapes.
func (lx *Lexer) scanEscape() {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\'
	if lx.cursor.EOF() {
		return
	}
	b := lx.cursor.Bump()
	switch {
	case b == 'a' || b == 'b' || b == 'f' || b == 'n' || b == 'r' || b == 't' || b == 'v',
		b == '\\' || b == '"' || b == '\'' || b == '`' || b == '{' || b == '\n':
		return
	case b == 'z':
		// \z пропускает последующие пробелы и переводы строк
		for isSpace(lx.cursor.Peek()) || lx.cursor.Peek() == '\n' {
			lx.cursor.Bump()
		}
		return
	case isDec(b):
		for i := 0; i < 2 && isDec(lx.cursor.Peek()); i++ {
			lx.cursor.Bump()
		}
		return
	case b == 'x':
		if isHex(lx.cursor.Peek()) && isHex(lx.cursor.PeekAt(1)) {
			lx.cursor.Off += 2
			return
		}
	case b == 'u':
		if lx.cursor.Eat('{') {
			n := 0
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
				n++
			}
			if lx.cursor.Eat('}') && n > 0 {
				return
			}
		}
	}
	lx.badEscape(lx.cursor.SpanFrom(start))
}

func (lx *Lexer) badEscape(sp source.Span) {
	lx.errLex(diag.LexBadEscape, sp, "invalid escape sequence")
}

// scanLongString сканирует [[...]] и [==[...]==].
func (lx *Lexer) scanLongString() token.Token {
	start := lx.cursor.Mark()
	if lx.skipLongBracketBody(lx.longBracketLevel()) {
		return lx.emit(token.StringLit, start)
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedLongString, sp, "unterminated long string")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// scanInterpString сканирует `...{expr}...` целиком. Внутри фигурных скобок
// учитываются вложенные скобки и строки, чтобы `}` в строке не закрывал выражение.
func (lx *Lexer) scanInterpString() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '`'
	depth := 0
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '\\' && depth == 0:
			lx.scanEscape()
			continue
		case b == '`' && depth == 0:
			lx.cursor.Bump()
			return lx.emit(token.InterpStringLit, start)
		case b == '\n' && depth == 0:
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedInterpString, sp, "newline in interpolated string")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		case b == '{':
			depth++
		case b == '}' && depth > 0:
			depth--
		case (b == '"' || b == '\'') && depth > 0:
			inner := lx.scanString(b)
			if inner.Kind == token.Invalid {
				return inner
			}
			continue
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedInterpString, sp, "unterminated interpolated string")
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
