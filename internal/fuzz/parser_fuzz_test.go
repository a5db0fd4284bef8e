package fuzztests

import (
	"context"
	"testing"
	"time"

	"rolint/internal/ast"
	"rolint/internal/config"
	"rolint/internal/diag"
	"rolint/internal/driver"
	"rolint/internal/lexer"
	"rolint/internal/parser"
	"rolint/internal/source"
	"rolint/internal/testkit"
)

// parseTimeout is the maximum time allowed for one input; more means a loop
// in error recovery.
const parseTimeout = 5 * time.Second

func parseBytes(input []byte) (*ast.Builder, ast.FileID, *source.File, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("fuzz.lua", input)
	file := fs.Get(fileID)

	bag := diag.NewBag(128)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	builder := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(fs, lx, builder, parser.Options{Reporter: reporter, MaxErrors: 128})
	return builder, res.File, file, bag
}

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		builder, fileID, file, bag := parseBytes(clampInput(input))
		if bag.Len() > 0 {
			return
		}
		// без ошибок дерево обязано быть целым
		if err := testkit.CheckSpanInvariants(builder, fileID, file); err != nil {
			t.Fatalf("span invariants: %v\ninput: %q", err, truncateForLog(input, 200))
		}
	})
}

// FuzzParserNoHang runs the parser under a timeout to catch recovery loops.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("local = = = 1"))
	f.Add([]byte("if if if then then end"))
	f.Add([]byte("f(((((((((("))
	f.Add([]byte("local t = {{{{{{"))
	f.Add([]byte("function a.b:c:d() end"))
	f.Add([]byte("type T = <"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			parseBytes(input)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// FuzzLintSource runs the whole lint pipeline; rules must cope with any tree.
func FuzzLintSource(f *testing.F) {
	addCorpusSeeds(f)
	env, err := driver.NewEnv(config.Default(f.TempDir()), nil)
	if err != nil {
		f.Fatal(err)
	}
	f.Fuzz(func(t *testing.T, input []byte) {
		res, err := driver.LintSource(context.Background(), "fuzz.lua", clampInput(input), driver.Options{Env: env})
		if err != nil {
			t.Fatalf("lint: %v", err)
		}
		for _, d := range res.Bag.Items() {
			if d.Primary.End > uint32(len(res.File.Content)) {
				t.Fatalf("diagnostic %s past end of file: %v", d.Code.ID(), d.Primary)
			}
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(append([]byte(nil), input[:maxLen]...), "..."...)
}
