package parser

import (
	"rolint/internal/diag"
	"rolint/internal/source"
	"rolint/internal/token"
)

// advance - съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan - возвращает лучший span для диагностики.
// На EOF указываем сразу за последним съеденным токеном, а не в конец файла.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{
			File:  p.lastSpan.File,
			Start: p.lastSpan.End,
			End:   p.lastSpan.End,
		}
	}
	return peek.Span
}

// expect - ожидаем конкретный токен. Если нет - репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg, nil)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

// expectClose - как expect, но с заметкой о парном открывающем токене.
func (p *Parser) expectClose(k token.Kind, code diag.Code, msg string, open token.Token) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	notes := []diag.Note{{Span: open.Span, Msg: "to close '" + open.Text + "' here"}}
	p.report(code, diag.SevError, diagSpan, msg, notes)
	return token.Token{Kind: token.Invalid, Span: diagSpan}, false
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg, nil)
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) bool {
	return p.report(code, diag.SevError, sp, msg, nil)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string, notes []diag.Note) bool {
	if p.opts.Reporter == nil {
		return false // нет reporter - ничего не записали
	}
	if p.opts.Enough() {
		if !p.capped {
			p.capped = true
			p.opts.Reporter.Report(diag.SynTooManyErrors, diag.SevError, sp, "too many syntax errors, giving up on reporting", nil)
		}
		return false // достигли максимального количества ошибок
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	p.opts.Reporter.Report(code, sev, sp, msg, notes)
	return true
}

// resyncStatement прокручивает до начала следующего statement:
// ключевого слова-стартера, конца блока, `;` или идентификатора с новой строки.
func (p *Parser) resyncStatement() {
	for {
		tok := p.lx.Peek()
		if blockEnd(tok.Kind) || tok.Kind == token.Semicolon || isStmtStarter(tok.Kind) {
			return
		}
		if tok.Kind == token.Ident && startsLine(tok) {
			return
		}
		p.advance()
	}
}

func isStmtStarter(k token.Kind) bool {
	switch k {
	case token.KwLocal, token.KwFunction, token.KwIf, token.KwWhile, token.KwFor,
		token.KwRepeat, token.KwDo, token.KwReturn, token.KwBreak:
		return true
	}
	return false
}

func startsLine(tok token.Token) bool {
	for _, tr := range tok.Leading {
		if tr.Kind == token.TriviaNewline {
			return true
		}
	}
	return false
}
