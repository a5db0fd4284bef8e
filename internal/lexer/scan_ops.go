package lexer

import (
	"rolint/internal/diag"
	"rolint/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
// `--` сюда не доходит: это комментарий и его съедает collectLeadingTrivia.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	switch {
	case lx.try3('.', '.', '.'):
		return lx.emit(token.DotDotDot, start)
	case lx.try3('.', '.', '='):
		return lx.emit(token.DotDotAssign, start)
	case lx.try3('/', '/', '='):
		return lx.emit(token.SlashSlashAssign, start)
	case lx.try2('.', '.'):
		return lx.emit(token.DotDot, start)
	case lx.try2('/', '/'):
		return lx.emit(token.SlashSlash, start)
	case lx.try2('=', '='):
		return lx.emit(token.EqEq, start)
	case lx.try2('~', '='):
		return lx.emit(token.TildeEq, start)
	case lx.try2('<', '='):
		return lx.emit(token.LtEq, start)
	case lx.try2('>', '='):
		return lx.emit(token.GtEq, start)
	case lx.try2(':', ':'):
		return lx.emit(token.ColonColon, start)
	case lx.try2('-', '>'):
		return lx.emit(token.Arrow, start)
	case lx.try2('+', '='):
		return lx.emit(token.PlusAssign, start)
	case lx.try2('-', '='):
		return lx.emit(token.MinusAssign, start)
	case lx.try2('*', '='):
		return lx.emit(token.StarAssign, start)
	case lx.try2('/', '='):
		return lx.emit(token.SlashAssign, start)
	case lx.try2('%', '='):
		return lx.emit(token.PercentAssign, start)
	case lx.try2('^', '='):
		return lx.emit(token.CaretAssign, start)
	}

	var k token.Kind
	switch lx.cursor.Bump() {
	case '+':
		k = token.Plus
	case '-':
		k = token.Minus
	case '*':
		k = token.Star
	case '/':
		k = token.Slash
	case '%':
		k = token.Percent
	case '^':
		k = token.Caret
	case '#':
		k = token.Hash
	case '=':
		k = token.Assign
	case '<':
		k = token.Lt
	case '>':
		k = token.Gt
	case '(':
		k = token.LParen
	case ')':
		k = token.RParen
	case '{':
		k = token.LBrace
	case '}':
		k = token.RBrace
	case '[':
		k = token.LBracket
	case ']':
		k = token.RBracket
	case ';':
		k = token.Semicolon
	case ':':
		k = token.Colon
	case ',':
		k = token.Comma
	case '.':
		k = token.Dot
	case '?':
		k = token.Question
	case '|':
		k = token.Pipe
	case '&':
		k = token.Amp
	default:
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnknownChar, sp, "unknown character")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	return lx.emit(k, start)
}
