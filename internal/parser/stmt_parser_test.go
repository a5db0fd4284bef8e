package parser

import (
	"strings"
	"testing"

	"rolint/internal/ast"
	"rolint/internal/diag"
	"rolint/internal/dialect"
)

func TestStatementKinds(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.StmtKind
	}{
		{"local a, b = 1, 'x'", ast.StmtLocal},
		{"local a", ast.StmtLocal},
		{"x = 1", ast.StmtAssign},
		{"a.b, c[1] = 1, 2", ast.StmtAssign},
		{"x += 1", ast.StmtCompoundAssign},
		{"s ..= 'tail'", ast.StmtCompoundAssign},
		{"f()", ast.StmtCall},
		{"do end", ast.StmtDo},
		{"while true do break end", ast.StmtWhile},
		{"repeat local z = 1 until z", ast.StmtRepeat},
		{"if a then elseif b then else end", ast.StmtIf},
		{"for i = 1, 10, 2 do end", ast.StmtNumericFor},
		{"for k, v in pairs(t) do end", ast.StmtGenericFor},
		{"function a.b:c() end", ast.StmtFunction},
		{"local function f(...) return ... end", ast.StmtLocalFunction},
		{"return 1, 2;", ast.StmtReturn},
		{"for _, v in t do continue end", ast.StmtGenericFor},
		{"type Foo = number", ast.StmtTypeAlias},
		{"export type Foo<T> = {T}", ast.StmtTypeAlias},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := mustParse(t, tt.input)
			if len(p.stmts()) != 1 {
				t.Fatalf("got %d statements, want 1", len(p.stmts()))
			}
			if got := p.stmt(0).Kind; got != tt.kind {
				t.Errorf("kind = %s, want %s", got, tt.kind)
			}
			if got := p.text(p.stmt(0).Span); got != tt.input {
				t.Errorf("span text = %q, want whole input", got)
			}
		})
	}
}

func TestLocalBindings(t *testing.T) {
	p := mustParse(t, "local a, b = 1, 'x'")
	local, ok := p.b.Stmts.Local(p.stmts()[0])
	if !ok {
		t.Fatal("not a local")
	}
	if len(local.Names) != 2 || len(local.Exprs) != 2 {
		t.Fatalf("names = %d, exprs = %d", len(local.Names), len(local.Exprs))
	}
	if p.b.Name(local.Names[0].Name) != "a" || p.text(local.Names[1].Span) != "b" {
		t.Errorf("unexpected names %+v", local.Names)
	}
}

func TestFunctionStatementPath(t *testing.T) {
	p := mustParse(t, "function a.b:c(x) end")
	fn, ok := p.b.Stmts.Function(p.stmts()[0])
	if !ok {
		t.Fatal("not a function statement")
	}
	var parts []string
	for _, part := range fn.Path {
		parts = append(parts, p.b.Name(part.Name))
	}
	if strings.Join(parts, ".") != "a.b" || p.b.Name(fn.Method.Name) != "c" {
		t.Errorf("path = %v, method = %q", parts, p.b.Name(fn.Method.Name))
	}
}

func TestContinueInsideLoop(t *testing.T) {
	p := mustParse(t, "for _, v in t do continue end")
	loop, _ := p.b.Stmts.GenericFor(p.stmts()[0])
	body := p.b.Blocks.Get(loop.Body)
	if len(body.Stmts) != 1 || p.b.Stmts.Get(body.Stmts[0]).Kind != ast.StmtContinue {
		t.Errorf("loop body does not hold a continue statement")
	}
}

func TestSoftKeywordsStayIdentifiers(t *testing.T) {
	tests := []struct {
		input string
		kind  ast.StmtKind
	}{
		{"type(x)", ast.StmtCall},
		{"continue = 1", ast.StmtAssign},
		{"continue()", ast.StmtCall},
		{"export.x = 1", ast.StmtAssign},
		{"type.field = 2", ast.StmtAssign},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := mustParse(t, tt.input)
			if got := p.stmt(0).Kind; got != tt.kind {
				t.Errorf("kind = %s, want %s", got, tt.kind)
			}
		})
	}
}

func TestTypeAnnotationsAreSkipped(t *testing.T) {
	inputs := []string{
		"local x: number? = 1",
		"local function f(a: string, b: {[string]: number}, ...: any): (number, string) return 1, '' end",
		"local g: <T>(T) -> T = nil",
		"type U = 'a' | 'b' | typeof(x)",
		"local m: Module.Type<string> = v",
		"for i: number = 1, 2 do end",
		"local cb: (Instance) -> () = nil",
		"export type Props = { text: string, onClick: ((rbx: GuiButton) -> ())? }",
		"function f<T>(x: T): T return x end",
		"type Pack<T...> = (T...) -> ()",
	}
	for _, src := range inputs {
		t.Run(src, func(t *testing.T) {
			mustParse(t, src)
		})
	}
}

func TestMultipleStatementsAndSemicolons(t *testing.T) {
	p := mustParse(t, "local a = 1; a = a + 1;; print(a)\nreturn a")
	kinds := []ast.StmtKind{ast.StmtLocal, ast.StmtAssign, ast.StmtCall, ast.StmtReturn}
	if len(p.stmts()) != len(kinds) {
		t.Fatalf("got %d statements, want %d", len(p.stmts()), len(kinds))
	}
	for i, k := range kinds {
		if p.stmt(i).Kind != k {
			t.Errorf("stmt %d = %s, want %s", i, p.stmt(i).Kind, k)
		}
	}
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
	}{
		{"if x then", diag.SynExpectEnd},
		{"while x end", diag.SynExpectDo},
		{"repeat x()", diag.SynExpectUntil},
		{"f(1, 2", diag.SynUnclosedParen},
		{"local t = {1, 2", diag.SynUnclosedBrace},
		{"local t = {[1 = 2}", diag.SynUnclosedBracket},
		{"x", diag.SynUnexpectedToken},
		{"f() = 1", diag.SynBadAssignTarget},
		{"local = 1", diag.SynExpectIdentifier},
		{"for i do end", diag.SynForBadHeader},
		{"local x = 1 +", diag.SynExpectExpression},
		{"local x: = 1", diag.SynBadTypeAnnotation},
		{"end", diag.SynUnexpectedToken},
		{"type X number", diag.SynExpectEquals},
		{"return 1 x = 2", diag.SynExpectEnd},
		{"if a b() end", diag.SynExpectThen},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			p := parseSource(t, tt.input)
			if !hasCode(p.bag, tt.code) {
				t.Errorf("expected %s, got %s", tt.code.ID(), diagnosticsSummary(p.bag))
			}
		})
	}
}

func TestMissingEndNotePointsAtOpener(t *testing.T) {
	p := parseSource(t, "while true do\n  f()\n")
	for _, d := range p.bag.Items() {
		if d.Code != diag.SynExpectEnd {
			continue
		}
		if len(d.Notes) != 1 || p.text(d.Notes[0].Span) != "while" {
			t.Errorf("note = %+v", d.Notes)
		}
		return
	}
	t.Fatalf("no %s diagnostic: %s", diag.SynExpectEnd.ID(), diagnosticsSummary(p.bag))
}

func TestRecoveryKeepsFollowingStatements(t *testing.T) {
	p := parseSource(t, "local = 1\nfoo()\nlocal ok = true")
	if p.bag.Len() == 0 {
		t.Fatal("expected a syntax error")
	}
	var kinds []ast.StmtKind
	for i := range p.stmts() {
		kinds = append(kinds, p.stmt(i).Kind)
	}
	if len(kinds) != 2 || kinds[0] != ast.StmtCall || kinds[1] != ast.StmtLocal {
		t.Errorf("statements after recovery = %v", kinds)
	}
}

func TestUnclosedBlockStillInTree(t *testing.T) {
	p := parseSource(t, "if x then\n  Roact.createElement('Frame')\n")
	if !hasCode(p.bag, diag.SynExpectEnd) {
		t.Fatalf("expected missing end, got %s", diagnosticsSummary(p.bag))
	}
	data, ok := p.b.Stmts.If(p.stmts()[0])
	if !ok {
		t.Fatal("if statement dropped")
	}
	if n := len(p.b.Blocks.Get(data.Branches[0].Body).Stmts); n != 1 {
		t.Errorf("if body has %d statements, want 1", n)
	}
}

func TestMaxErrorsCap(t *testing.T) {
	p := parseWith(t, "x\ny\nz\nw", Options{MaxErrors: 2}, nil)
	items := p.bag.Items()
	if len(items) != 3 {
		t.Fatalf("got %d diagnostics, want 3: %s", len(items), diagnosticsSummary(p.bag))
	}
	if items[2].Code != diag.SynTooManyErrors {
		t.Errorf("last diagnostic = %s, want %s", items[2].Code.ID(), diag.SynTooManyErrors.ID())
	}
}

func TestParserDialectEvidence(t *testing.T) {
	ev := dialect.NewEvidence()
	p := parseWith(t, "continue\ntype A = number", Options{}, ev)
	if p.bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %s", diagnosticsSummary(p.bag))
	}
	if ev.Len() != 2 {
		t.Fatalf("hints = %d, want 2", ev.Len())
	}
	if !strings.Contains(ev.Hints()[0].Reason, "continue") {
		t.Errorf("first hint = %q", ev.Hints()[0].Reason)
	}
	if p.b.Files.Get(p.file).DialectEvidence != ev {
		t.Errorf("file does not keep the evidence")
	}
}

type callCounter struct {
	ast.BaseVisitor
	calls, locals int
}

func (c *callCounter) VisitCall(ast.ExprID, *ast.SuffixedData) { c.calls++ }
func (c *callCounter) VisitLocal(ast.StmtID, *ast.LocalData)   { c.locals++ }

func TestWalkParsedTree(t *testing.T) {
	src := `local e = Roact.createElement("Frame", {
	child = Roact.createElement("TextLabel"),
})
if e then print(e) end`
	p := mustParse(t, src)
	var c callCounter
	ast.Walk(p.b, p.file, &c)
	if c.calls != 3 || c.locals != 1 {
		t.Errorf("calls = %d, locals = %d", c.calls, c.locals)
	}
}

func TestEmptyFile(t *testing.T) {
	p := mustParse(t, "")
	if len(p.stmts()) != 0 {
		t.Errorf("empty file has %d statements", len(p.stmts()))
	}
}
