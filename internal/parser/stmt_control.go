package parser

import (
	"rolint/internal/ast"
	"rolint/internal/diag"
	"rolint/internal/token"
)

// Управляющие конструкции всегда возвращают узел: пропущенный `then`/`do`/`end`
// репортим, но тело остаётся в дереве.

func (p *Parser) parseIfStmt() (ast.StmtID, bool) {
	ifTok := p.advance()
	var data ast.IfData

	branch := func() {
		cond, _ := p.parseExpr()
		p.expect(token.KwThen, diag.SynExpectThen, "expected 'then' after condition")
		body := p.parseBlock()
		data.Branches = append(data.Branches, ast.IfBranch{Cond: cond, Body: body})
	}

	branch()
	for p.at(token.KwElseif) {
		p.advance()
		branch()
	}
	if p.at(token.KwElse) {
		p.advance()
		data.Else = p.parseBlock()
	}
	_, ok := p.expectClose(token.KwEnd, diag.SynExpectEnd, "expected 'end' to close 'if'", ifTok)
	return p.arenas.Stmts.NewIf(ifTok.Span.Cover(p.lastSpan), data), ok
}

func (p *Parser) parseWhileStmt() (ast.StmtID, bool) {
	whileTok := p.advance()
	cond, _ := p.parseExpr()
	p.expect(token.KwDo, diag.SynExpectDo, "expected 'do' after while condition")
	body := p.parseBlock()
	_, ok := p.expectClose(token.KwEnd, diag.SynExpectEnd, "expected 'end' to close 'while'", whileTok)
	return p.arenas.Stmts.NewWhile(whileTok.Span.Cover(p.lastSpan), ast.WhileData{Cond: cond, Body: body}), ok
}

func (p *Parser) parseDoStmt() (ast.StmtID, bool) {
	doTok := p.advance()
	body := p.parseBlock()
	_, ok := p.expectClose(token.KwEnd, diag.SynExpectEnd, "expected 'end' to close 'do'", doTok)
	return p.arenas.Stmts.NewDo(doTok.Span.Cover(p.lastSpan), body), ok
}

func (p *Parser) parseRepeatStmt() (ast.StmtID, bool) {
	repeatTok := p.advance()
	body := p.parseBlock()
	if _, ok := p.expectClose(token.KwUntil, diag.SynExpectUntil, "expected 'until' to close 'repeat'", repeatTok); !ok {
		return p.arenas.Stmts.NewRepeat(repeatTok.Span.Cover(p.lastSpan), ast.RepeatData{Body: body}), false
	}
	cond, ok := p.parseExpr()
	return p.arenas.Stmts.NewRepeat(repeatTok.Span.Cover(p.lastSpan), ast.RepeatData{Body: body, Cond: cond}), ok
}

// parseForStmt - числовой `for i = a, b[, c] do` или общий `for k, v in e do`.
func (p *Parser) parseForStmt() (ast.StmtID, bool) {
	forTok := p.advance()

	first, ok := p.parseForVar()
	if !ok {
		return ast.NoStmtID, false
	}

	if p.at(token.Assign) {
		p.advance()
		data := ast.NumericForData{Var: first}
		data.Start, _ = p.parseExpr()
		if _, ok := p.expect(token.Comma, diag.SynForBadHeader, "expected ',' in numeric for"); !ok {
			return ast.NoStmtID, false
		}
		data.Limit, _ = p.parseExpr()
		if p.at(token.Comma) {
			p.advance()
			data.Step, _ = p.parseExpr()
		}
		data.Body, ok = p.parseLoopBody(forTok)
		return p.arenas.Stmts.NewNumericFor(forTok.Span.Cover(p.lastSpan), data), ok
	}

	data := ast.GenericForData{Vars: []ast.Binding{first}}
	for p.at(token.Comma) {
		p.advance()
		v, ok := p.parseForVar()
		if !ok {
			return ast.NoStmtID, false
		}
		data.Vars = append(data.Vars, v)
	}
	if _, ok := p.expect(token.KwIn, diag.SynForBadHeader, "expected '=' or 'in' after for variables"); !ok {
		return ast.NoStmtID, false
	}
	data.Exprs, _ = p.parseExprList()
	data.Body, ok = p.parseLoopBody(forTok)
	return p.arenas.Stmts.NewGenericFor(forTok.Span.Cover(p.lastSpan), data), ok
}

// parseForVar - имя переменной цикла с опциональной аннотацией типа.
func (p *Parser) parseForVar() (ast.Binding, bool) {
	v, ok := p.parseIdent()
	if !ok {
		return v, false
	}
	if p.at(token.Colon) {
		p.advance()
		if _, ok := p.skipType(); !ok {
			return v, false
		}
	}
	return v, true
}

func (p *Parser) parseLoopBody(forTok token.Token) (ast.BlockID, bool) {
	p.expect(token.KwDo, diag.SynExpectDo, "expected 'do' in for loop")
	body := p.parseBlock()
	_, ok := p.expectClose(token.KwEnd, diag.SynExpectEnd, "expected 'end' to close 'for'", forTok)
	return body, ok
}
