package parser

import (
	"rolint/internal/ast"
	"rolint/internal/diag"
	"rolint/internal/token"
)

// parseTable - конструктор таблицы `{ [k] = v, name = v, v; ... }`.
// Ошибку в одном поле переживаем: прокручиваем до следующего разделителя.
func (p *Parser) parseTable() (ast.ExprID, bool) {
	open := p.advance()
	var fields []ast.TableField
	ok := true

	for !p.at(token.RBrace) && !p.at(token.EOF) {
		field, fieldOK := p.parseTableField()
		if field.Value.IsValid() {
			fields = append(fields, field)
		}
		if !fieldOK {
			ok = false
			p.resyncTableField()
		}
		if !p.atAny(token.Comma, token.Semicolon) {
			break
		}
		p.advance()
	}

	if _, closed := p.expectClose(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close table", open); !closed {
		ok = false
	}
	span := open.Span.Cover(p.lastSpan)
	for _, f := range fields {
		span = span.Cover(f.Span)
	}
	return p.arenas.Exprs.NewTable(span, fields), ok
}

func (p *Parser) parseTableField() (ast.TableField, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.LBracket:
		p.advance()
		key, ok := p.parseExpr()
		if !ok {
			return ast.TableField{}, false
		}
		if _, ok = p.expectClose(token.RBracket, diag.SynUnclosedBracket, "expected ']' after table key", tok); !ok {
			return ast.TableField{}, false
		}
		brackets := tok.Span.Cover(p.lastSpan)
		if _, ok = p.expect(token.Assign, diag.SynExpectEquals, "expected '=' after table key"); !ok {
			return ast.TableField{}, false
		}
		value, ok := p.parseExpr()
		return ast.TableField{
			Kind:     ast.FieldExprKey,
			Span:     tok.Span.Cover(p.exprSpan(value)),
			Key:      key,
			Brackets: brackets,
			Value:    value,
		}, ok

	case token.Ident:
		p.advance()
		if !p.at(token.Assign) {
			value, ok := p.parseExprFromName(tok)
			return ast.TableField{Kind: ast.FieldPositional, Span: p.exprSpan(value), Value: value}, ok
		}
		p.advance()
		value, ok := p.parseExpr()
		return ast.TableField{
			Kind:     ast.FieldNameKey,
			Span:     tok.Span.Cover(p.exprSpan(value)),
			Name:     p.intern(tok.Text),
			NameSpan: tok.Span,
			Value:    value,
		}, ok

	default:
		value, ok := p.parseExpr()
		return ast.TableField{Kind: ast.FieldPositional, Span: p.exprSpan(value), Value: value}, ok
	}
}

// resyncTableField пропускает токены до `,` `;` или `}` на текущем уровне вложенности.
func (p *Parser) resyncTableField() {
	depth := 0
	for {
		switch p.lx.Peek().Kind {
		case token.EOF:
			return
		case token.Comma, token.Semicolon:
			if depth == 0 {
				return
			}
		case token.RBrace, token.RParen, token.RBracket:
			if depth == 0 {
				return
			}
			depth--
		case token.LBrace, token.LParen, token.LBracket:
			depth++
		}
		p.advance()
	}
}
