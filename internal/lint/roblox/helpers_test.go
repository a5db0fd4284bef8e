package roblox

import (
	"fmt"
	"strings"
	"testing"

	"rolint/internal/ast"
	"rolint/internal/diag"
	"rolint/internal/dialect"
	"rolint/internal/lexer"
	"rolint/internal/lint"
	"rolint/internal/parser"
	"rolint/internal/source"
)

// fakeClass is a flat class without inheritance.
type fakeClass struct {
	props  map[string]bool
	events map[string]bool
}

func (c fakeClass) HasProperty(name string) bool { return c.props[name] }
func (c fakeClass) HasEvent(name string) bool    { return c.events[name] }

type fakeSchema map[string]fakeClass

func (s fakeSchema) Class(name string) (lint.ClassDescriptor, bool) {
	c, ok := s[name]
	if !ok {
		return nil, false
	}
	return c, true
}

func (s fakeSchema) Len() int { return len(s) }

func set(names ...string) map[string]bool {
	m := make(map[string]bool, len(names))
	for _, n := range names {
		m[n] = true
	}
	return m
}

func testSchema() fakeSchema {
	return fakeSchema{
		"Frame": {
			props:  set("Name", "Size", "Position", "BackgroundColor3", "Visible"),
			events: set("InputBegan", "MouseEnter"),
		},
		"TextButton": {
			props:  set("Name", "Size", "Text"),
			events: set("Activated", "MouseButton1Click"),
		},
	}
}

func robloxContext() *lint.Context {
	return &lint.Context{Dialect: dialect.Roblox, Schema: testSchema()}
}

type linted struct {
	src   string
	diags []lint.Diagnostic
}

func (l linted) text(d lint.Diagnostic) string {
	return l.src[d.Primary.Start:d.Primary.End]
}

func (l linted) summary() string {
	if len(l.diags) == 0 {
		return "<none>"
	}
	parts := make([]string, len(l.diags))
	for i, d := range l.diags {
		parts[i] = fmt.Sprintf("%s @ %q", d.Message, l.text(d))
	}
	return strings.Join(parts, "; ")
}

func parseTree(t *testing.T, src string) *lint.Tree {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.luau", []byte(src))
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag}
	lx := lexer.New(fs.Get(fileID), lexer.Options{Reporter: rep})
	b := ast.NewBuilder(ast.Hints{}, nil)
	res := parser.ParseFile(fs, lx, b, parser.Options{Reporter: rep})
	if bag.Len() != 0 {
		for _, d := range bag.Items() {
			t.Logf("[%s] %s", d.Code.ID(), d.Message)
		}
		t.Fatalf("unexpected syntax errors in %q", src)
	}
	return &lint.Tree{AST: b, Root: res.File, Source: fileID}
}

func lintWith(t *testing.T, src string, ctx *lint.Context) linted {
	t.Helper()
	tree := parseTree(t, src)
	return linted{src: src, diags: NewIncorrectRoactUsage().Pass(tree, ctx)}
}

func lintRoblox(t *testing.T, src string) linted {
	t.Helper()
	return lintWith(t, src, robloxContext())
}
