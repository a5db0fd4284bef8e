package parser

import (
	"slices"

	"rolint/internal/ast"
	"rolint/internal/diag"
	"rolint/internal/dialect"
	"rolint/internal/lexer"
	"rolint/internal/source"
	"rolint/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
	// DialectEvidence получает сигналы, которые видит только парсер
	// (`continue`, объявления типов). Обычно тот же, что у лексера.
	DialectEvidence *dialect.Evidence
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser - состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer    // поток токенов (Peek/Next)
	arenas   *ast.Builder    // построитель аренных узлов
	file     ast.FileID      // текущий FileID (в AST)
	fs       *source.FileSet // нужен только для спанов/путей при надобности
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	capped   bool        // SynTooManyErrors уже выдан
	// varargs[i] - разрешён ли `...` в i-й вложенной функции
	varargs []bool
}

// ParseFile - входная точка для разбора одного файла.
// Главный чанк Lua всегда vararg.
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	first := lx.Peek().Span
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.NewFile(source.Span{File: first.File}),
		fs:       fs,
		opts:     opts,
		lastSpan: source.Span{File: first.File},
		varargs:  []bool{true},
	}

	stmts := p.parseStmtList()
	for !p.at(token.EOF) {
		// лишний `end`/`until`/... на верхнем уровне
		p.err(diag.SynUnexpectedToken, "unexpected "+describe(p.lx.Peek())+" at top level")
		p.advance()
		stmts = append(stmts, p.parseStmtList()...)
	}

	eof := p.lx.Peek().Span
	f := p.arenas.Files.Get(p.file)
	f.Span = source.Span{File: eof.File, Start: 0, End: eof.End}
	f.Body = p.arenas.Blocks.New(f.Span, stmts)
	f.DialectEvidence = opts.DialectEvidence

	return Result{
		File: p.file,
		Bag:  bagOf(opts.Reporter),
	}
}

func bagOf(r diag.Reporter) *diag.Bag {
	switch br := r.(type) {
	case diag.BagReporter:
		return br.Bag
	case *diag.BagReporter:
		return br.Bag
	}
	return nil
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) atAny(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// IsError - были ли ошибки при разборе
func (p *Parser) IsError() bool {
	return p.opts.CurrentErrors != 0
}

// blockEnd - токены, которые закрывают блок
func blockEnd(k token.Kind) bool {
	switch k {
	case token.EOF, token.KwEnd, token.KwElse, token.KwElseif, token.KwUntil:
		return true
	}
	return false
}

// parseBlock разбирает statements до терминатора блока; сам терминатор не съедает.
func (p *Parser) parseBlock() ast.BlockID {
	start := p.lx.Peek().Span
	stmts := p.parseStmtList()
	span := source.Span{File: start.File, Start: start.Start, End: start.Start}
	if len(stmts) > 0 {
		span = start.Cover(p.lastSpan)
	}
	return p.arenas.Blocks.New(span, stmts)
}

func (p *Parser) parseStmtList() []ast.StmtID {
	var stmts []ast.StmtID
	for !blockEnd(p.lx.Peek().Kind) {
		if p.at(token.Semicolon) {
			p.advance()
			continue
		}
		if p.at(token.KwReturn) {
			stmts = append(stmts, p.parseReturnStmt())
			// return обязан быть последним в блоке
			if !blockEnd(p.lx.Peek().Kind) {
				p.err(diag.SynExpectEnd, "'return' must be the last statement in a block")
				p.resyncStatement()
			}
			continue
		}

		before := p.lx.Peek().Span
		stmtID, ok := p.parseStmt()
		if stmtID.IsValid() {
			stmts = append(stmts, stmtID)
		}
		if ok {
			continue
		}
		// ошибка при разборе statement - восстанавливаемся до следующего statement
		p.resyncStatement()
		if p.lx.Peek().Span == before && !blockEnd(p.lx.Peek().Kind) {
			p.advance()
		}
	}
	return stmts
}

// parseIdent - утилита: ожидает Ident и интернирует его.
// На ошибке - репорт SynExpectIdentifier.
func (p *Parser) parseIdent() (ast.Binding, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		return p.binding(tok), true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got "+describe(p.lx.Peek()))
	return ast.Binding{}, false
}

func (p *Parser) binding(tok token.Token) ast.Binding {
	return ast.Binding{
		Name: p.arenas.StringsInterner.Intern(tok.Text),
		Span: tok.Span,
	}
}

func (p *Parser) varargAllowed() bool {
	return p.varargs[len(p.varargs)-1]
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Ident:
		return "identifier '" + tok.Text + "'"
	case token.NumberLit, token.StringLit, token.InterpStringLit:
		return tok.Kind.String()
	}
	return "'" + tok.Text + "'"
}
