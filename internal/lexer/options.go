package lexer

import (
	"rolint/internal/diag"
	"rolint/internal/dialect"
	"rolint/internal/source"
)

type Options struct {
	// Reporter может быть nil: ошибки игнорируем, но продолжаем лексить.
	Reporter diag.Reporter
	// DialectEvidence, если задан, получает сигналы Lua 5.1 / Luau.
	DialectEvidence *dialect.Evidence
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
