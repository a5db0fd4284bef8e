package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"rolint/internal/ast"
	"rolint/internal/diag"
	"rolint/internal/lexer"
	"rolint/internal/parser"
	"rolint/internal/source"
	"rolint/internal/token"
)

func parseForDump(t *testing.T, src string) (*source.FileSet, *ast.Builder, ast.FileID) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("dump.lua", []byte(src))
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	b := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(fs, lexer.New(fs.Get(id), lexer.Options{Reporter: rep}), b, parser.Options{Reporter: rep})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	return fs, b, res.File
}

func TestASTPretty(t *testing.T) {
	fs, b, file := parseForDump(t, `local e = Roact.createElement("Frame", { Size = 1 })`)
	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, b, file, fs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"File dump.lua (span: 1:1-1:",
		"└─ Stmt Local (span: 1:1-1:",
		"├─ Name e",
		"Expr Name Roact",
		"Suffix Dot createElement",
		"Args Parens",
		`Expr String "Frame"`,
		"Field NameKey Size",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("missing %q in:\n%s", want, out)
		}
	}
}

func TestASTJSON(t *testing.T) {
	_, b, file := parseForDump(t, "if a then f() else g() end")
	var buf bytes.Buffer
	if err := FormatASTJSON(&buf, b, file); err != nil {
		t.Fatal(err)
	}
	var root ASTNodeOutput
	if err := json.Unmarshal(buf.Bytes(), &root); err != nil {
		t.Fatal(err)
	}
	if root.Type != "File" || len(root.Children) != 1 {
		t.Fatalf("root = %+v", root)
	}
	stmt := root.Children[0]
	if stmt.Kind != "If" || len(stmt.Children) != 2 || stmt.Children[1].Type != "Else" {
		t.Errorf("if node = %+v", stmt)
	}
}

func TestASTMissingFile(t *testing.T) {
	b := ast.NewBuilder(ast.Hints{}, nil)
	if err := FormatASTJSON(&bytes.Buffer{}, b, ast.FileID(7)); err == nil {
		t.Errorf("expected error for unknown file")
	}
}

func TestTokenDumps(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.lua", []byte("-- hi\nlocal x"))
	toks := lexer.Tokenize(fs.Get(id), lexer.Options{})

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(toks) || !strings.Contains(lines[0], "at 2:1-2:6") || !strings.Contains(lines[0], "leading:") {
		t.Errorf("pretty tokens:\n%s", buf.String())
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != len(toks) || out[len(out)-1].Kind != token.EOF.String() || out[1].Text != "x" || out[1].Line != 2 {
		t.Errorf("json tokens = %+v", out)
	}
}
