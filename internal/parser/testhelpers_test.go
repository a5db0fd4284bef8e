package parser

import (
	"fmt"
	"strings"
	"testing"

	"rolint/internal/ast"
	"rolint/internal/diag"
	"rolint/internal/dialect"
	"rolint/internal/lexer"
	"rolint/internal/source"
	"rolint/internal/testkit"
)

type parsed struct {
	b       *ast.Builder
	file    ast.FileID
	src     *source.File
	bag     *diag.Bag
	content string
}

func parseWith(t *testing.T, input string, opts Options, ev *dialect.Evidence) parsed {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.lua", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: rep})
	b := ast.NewBuilder(ast.Hints{}, nil)

	opts.Reporter = rep
	opts.DialectEvidence = ev
	res := ParseFile(fs, lx, b, opts)
	if res.Bag != bag {
		t.Fatalf("result bag is not the reporter bag")
	}
	if err := testkit.CheckSpanInvariants(b, res.File, file); err != nil {
		t.Fatalf("span invariants for %q: %v", input, err)
	}
	return parsed{b: b, file: res.File, src: file, bag: bag, content: string(file.Content)}
}

func parseSource(t *testing.T, input string) parsed {
	t.Helper()
	return parseWith(t, input, Options{MaxErrors: 50}, nil)
}

// mustParse fails the test on any diagnostic.
func mustParse(t *testing.T, input string) parsed {
	t.Helper()
	p := parseSource(t, input)
	if p.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics for %q: %s", input, diagnosticsSummary(p.bag))
	}
	return p
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func hasCode(bag *diag.Bag, code diag.Code) bool {
	for _, d := range bag.Items() {
		if d.Code == code {
			return true
		}
	}
	return false
}

func (p parsed) stmts() []ast.StmtID {
	f := p.b.Files.Get(p.file)
	return p.b.Blocks.Get(f.Body).Stmts
}

func (p parsed) stmt(i int) *ast.Stmt {
	return p.b.Stmts.Get(p.stmts()[i])
}

func (p parsed) text(sp source.Span) string {
	return p.content[sp.Start:sp.End]
}

// firstLocalValue returns the first value of the first statement, which must be a local.
func (p parsed) firstLocalValue(t *testing.T) ast.ExprID {
	t.Helper()
	local, ok := p.b.Stmts.Local(p.stmts()[0])
	if !ok || len(local.Exprs) == 0 {
		t.Fatalf("first statement is not a local with a value")
	}
	return local.Exprs[0]
}

// render prints an expression as an s-expression for precedence checks.
func (p parsed) render(id ast.ExprID) string {
	e := p.b.Exprs
	ex := e.Get(id)
	if ex == nil {
		return "<nil>"
	}
	switch ex.Kind {
	case ast.ExprBinary:
		d, _ := e.Binary(id)
		return "(" + d.Op.String() + " " + p.render(d.Left) + " " + p.render(d.Right) + ")"
	case ast.ExprUnary:
		d, _ := e.Unary(id)
		return "(" + d.Op.String() + " " + p.render(d.Operand) + ")"
	case ast.ExprParen:
		d, _ := e.Paren(id)
		return "[" + p.render(d.Inner) + "]"
	case ast.ExprName:
		d, _ := e.Name(id)
		return p.b.Name(d.Name)
	case ast.ExprNumber, ast.ExprString, ast.ExprBool, ast.ExprNil:
		d, _ := e.Literal(id)
		return p.b.Name(d.Raw)
	}
	return p.text(ex.Span)
}
