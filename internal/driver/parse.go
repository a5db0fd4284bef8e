package driver

import (
	"fortio.org/safecast"

	"rolint/internal/ast"
	"rolint/internal/diag"
	"rolint/internal/dialect"
	"rolint/internal/lexer"
	"rolint/internal/parser"
	"rolint/internal/source"
)

type ParseResult struct {
	FileSet  *source.FileSet
	File     *source.File
	Builder  *ast.Builder
	FileID   ast.FileID
	Bag      *diag.Bag
	Evidence *dialect.Evidence
	Dialect  dialect.Classification
}

// Parse builds the syntax tree of one file and classifies its dialect.
func Parse(filePath string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(filePath)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, err
	}

	bag := diag.NewBag(maxDiagnostics)
	rep := diag.BagReporter{Bag: bag}
	ev := dialect.NewEvidence()
	dialect.ObserveFile(ev, file)
	lx := lexer.New(file, lexer.Options{Reporter: rep, DialectEvidence: ev})
	builder := ast.NewBuilder(ast.Hints{}, nil)

	result := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter:        rep,
		MaxErrors:       maxErrors,
		DialectEvidence: ev,
	})

	return &ParseResult{
		FileSet:  fs,
		File:     file,
		Builder:  builder,
		FileID:   result.File,
		Bag:      bag,
		Evidence: ev,
		Dialect:  autoClassifier.Classify(ev),
	}, nil
}
