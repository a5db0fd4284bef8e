package parser

import (
	"rolint/internal/ast"
	"rolint/internal/diag"
	"rolint/internal/token"
)

// parseFuncBody - `<T>(params): R block end`; ключевое слово `function` уже съедено.
func (p *Parser) parseFuncBody(fnTok token.Token) (ast.ExprID, bool) {
	if p.at(token.Lt) {
		if !p.skipBalanced(token.Lt, token.Gt) {
			return p.arenas.Exprs.NewError(fnTok.Span.Cover(p.lastSpan)), false
		}
	}

	open, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "expected '(' to start parameter list")
	if !ok {
		return p.arenas.Exprs.NewError(fnTok.Span.Cover(p.lastSpan)), false
	}
	params, vararg, ok := p.parseParams()
	if ok {
		_, ok = p.expectClose(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list", open)
	}
	if !ok {
		return p.arenas.Exprs.NewError(fnTok.Span.Cover(p.lastSpan)), false
	}

	if p.at(token.Colon) {
		p.advance()
		p.skipType()
	}

	p.varargs = append(p.varargs, vararg)
	body := p.parseBlock()
	p.varargs = p.varargs[:len(p.varargs)-1]

	// незакрытая функция всё равно попадает в дерево
	p.expectClose(token.KwEnd, diag.SynExpectEnd, "expected 'end' to close function", fnTok)

	id := p.arenas.Exprs.NewFunction(fnTok.Span.Cover(p.lastSpan), ast.FunctionData{
		Params: params,
		Vararg: vararg,
		Body:   body,
	})
	return id, true
}

// parseParams - `a: T, b, ...: U`; `...` обязан быть последним.
func (p *Parser) parseParams() (params []ast.Param, vararg, ok bool) {
	if p.at(token.RParen) {
		return nil, false, true
	}
	for {
		if p.at(token.DotDotDot) {
			p.advance()
			vararg = true
			if p.at(token.Colon) {
				p.advance()
				if _, ok := p.skipType(); !ok {
					return params, vararg, false
				}
			}
			return params, vararg, true
		}

		name, ok := p.parseIdent()
		if !ok {
			return params, vararg, false
		}
		params = append(params, ast.Param{Name: name.Name, Span: name.Span})
		if p.at(token.Colon) {
			p.advance()
			if _, ok := p.skipType(); !ok {
				return params, vararg, false
			}
		}
		if !p.at(token.Comma) {
			return params, vararg, true
		}
		p.advance()
	}
}
