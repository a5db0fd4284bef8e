package lint

import (
	"rolint/internal/ast"
	"rolint/internal/dialect"
	"rolint/internal/source"
)

// Context is what a rule may know besides the tree itself.
type Context struct {
	Dialect dialect.Kind
	Schema  ClassSchema
}

// IsRoblox reports whether the file is linted as Roblox-flavored Luau.
func (c *Context) IsRoblox() bool {
	return c != nil && c.Dialect == dialect.Roblox
}

// ClassCount is the size of the schema, zero when none is configured.
func (c *Context) ClassCount() int {
	if c == nil || c.Schema == nil {
		return 0
	}
	return c.Schema.Len()
}

// Tree is one parsed file handed to rules.
type Tree struct {
	AST    *ast.Builder
	Root   ast.FileID
	Source source.FileID
}

// Name returns the text of an interned identifier.
func (t *Tree) Name(id source.StringID) string {
	return t.AST.Name(id)
}
