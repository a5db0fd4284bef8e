package lexer

import (
	"rolint/internal/diag"
	"rolint/internal/source"
	"rolint/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
//   - ' ', '\t', '\r', '\f', '\v' коалесцируются в один TriviaSpace
//   - последовательные '\n' коалесцируются в один TriviaNewline
//   - --... до \n -> TriviaLineComment
//   - --[[ ... ]] и --[==[ ... ]==] -> TriviaBlockComment
//   - #! в самом начале файла -> TriviaShebang
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		switch {
		case isSpace(b):
			for isSpace(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)

		case b == '\n':
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)

		case b == '-' && lx.cursor.PeekAt(1) == '-':
			lx.scanComment(start)

		case b == '#' && start == 0 && lx.cursor.PeekAt(1) == '!':
			lx.skipLine()
			lx.pushTrivia(token.TriviaShebang, start)

		default:
			return
		}
	}
}

func (lx *Lexer) scanComment(start Mark) {
	lx.cursor.Off += 2 // --
	if level := lx.longBracketLevel(); level >= 0 {
		closed := lx.skipLongBracketBody(level)
		sp := lx.pushTrivia(token.TriviaBlockComment, start)
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		return
	}
	lx.skipLine()
	lx.pushTrivia(token.TriviaLineComment, start)
}

func (lx *Lexer) skipLine() {
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) source.Span {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
	return sp
}
