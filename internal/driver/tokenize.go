package driver

import (
	"context"
	"fmt"
	"io"

	"rolint/internal/diag"
	"rolint/internal/dialect"
	"rolint/internal/lexer"
	"rolint/internal/source"
	"rolint/internal/token"
	"rolint/internal/trace"
)

// TokenizeResult holds the token stream of one file plus what the lexer
// alone can tell about its dialect.
type TokenizeResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Tokens   []token.Token // всегда заканчивается EOF
	Bag      *diag.Bag
	Evidence *dialect.Evidence
}

// Stats summarizes the stream for `rolint tokenize --stats`.
func (r *TokenizeResult) Stats() string {
	comments := 0
	for _, tok := range r.Tokens {
		for _, tr := range tok.Leading {
			if tr.Kind == token.TriviaLineComment || tr.Kind == token.TriviaBlockComment {
				comments++
			}
		}
	}
	return fmt.Sprintf("%s: %d tokens, %d comments, %d lines, %d dialect hints",
		r.File.Path, len(r.Tokens), comments, r.File.LineCount(), r.Evidence.Len())
}

// Tokenize lexes a file from disk. path "-" reads stdin.
func Tokenize(ctx context.Context, path string, stdin io.Reader, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	var (
		fileID source.FileID
		err    error
	)
	if path == "-" {
		fileID, err = fs.LoadReader("stdin.lua", stdin)
	} else {
		fileID, err = fs.Load(path)
	}
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	span, _ := trace.StartSpan(trace.WithFile(ctx, file.Path), trace.ScopePass, "tokenize")
	res := &TokenizeResult{
		FileSet:  fs,
		File:     file,
		Bag:      diag.NewBag(maxDiagnostics),
		Evidence: dialect.NewEvidence(),
	}
	dialect.ObserveFile(res.Evidence, file)
	res.Tokens = lexer.Tokenize(file, lexer.Options{
		Reporter:        diag.BagReporter{Bag: res.Bag},
		DialectEvidence: res.Evidence,
	})
	span.End(fmt.Sprintf("%d tokens", len(res.Tokens)))
	return res, nil
}
