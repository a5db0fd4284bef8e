package parser

import (
	"rolint/internal/diag"
	"rolint/internal/source"
	"rolint/internal/token"
)

// Luau-аннотации типов не попадают в дерево: мы их только пропускаем,
// сохраняя span для TypeAssert.

// skipType - union/intersection простых типов с опциональными `?`.
func (p *Parser) skipType() (source.Span, bool) {
	start := p.lx.Peek().Span
	// допускается ведущий `|` / `&`
	if p.atAny(token.Pipe, token.Amp) {
		p.advance()
	}
	ok := p.skipSimpleType()
	for ok {
		switch {
		case p.at(token.Question):
			p.advance()
		case p.atAny(token.Pipe, token.Amp):
			p.advance()
			ok = p.skipSimpleType()
		default:
			return start.Cover(p.lastSpan), true
		}
	}
	return start.Cover(p.lastSpan), false
}

func (p *Parser) skipSimpleType() bool {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Ident:
		p.advance()
		if tok.Text == "typeof" && p.at(token.LParen) {
			return p.skipBalanced(token.LParen, token.RParen)
		}
		// Module.Type
		for p.at(token.Dot) {
			p.advance()
			if _, ok := p.parseIdent(); !ok {
				return false
			}
		}
		if p.at(token.Lt) {
			return p.skipBalanced(token.Lt, token.Gt)
		}
		// generic pack `T...`
		if p.at(token.DotDotDot) {
			p.advance()
		}
		return true
	case token.KwNil, token.KwTrue, token.KwFalse, token.StringLit:
		p.advance()
		return true
	case token.DotDotDot:
		p.advance()
		if typeStarter(p.lx.Peek().Kind) {
			return p.skipSimpleType()
		}
		return true
	case token.LBrace:
		return p.skipBalanced(token.LBrace, token.RBrace)
	case token.LParen:
		if !p.skipBalanced(token.LParen, token.RParen) {
			return false
		}
		if p.at(token.Arrow) {
			p.advance()
			_, ok := p.skipType()
			return ok
		}
		return true
	case token.Lt:
		// <T>(x: T) -> T
		if !p.skipBalanced(token.Lt, token.Gt) {
			return false
		}
		return p.skipSimpleType()
	default:
		p.err(diag.SynBadTypeAnnotation, "expected type, got "+describe(tok))
		return false
	}
}

func typeStarter(k token.Kind) bool {
	switch k {
	case token.Ident, token.KwNil, token.KwTrue, token.KwFalse, token.StringLit,
		token.LBrace, token.LParen, token.Lt:
		return true
	}
	return false
}

// skipBalanced съедает open ... close с учётом вложенности.
func (p *Parser) skipBalanced(open, closeKind token.Kind) bool {
	openTok := p.advance()
	if openTok.Kind != open {
		return false
	}
	depth := 1
	for depth > 0 {
		if p.at(token.EOF) {
			p.report(diag.SynBadTypeAnnotation, diag.SevError, p.getDiagnosticSpan(),
				"unclosed '"+openTok.Text+"' in type annotation",
				[]diag.Note{{Span: openTok.Span, Msg: "opened here"}})
			return false
		}
		switch p.advance().Kind {
		case open:
			depth++
		case closeKind:
			depth--
		}
	}
	return true
}
