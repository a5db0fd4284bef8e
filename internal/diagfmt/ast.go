package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"rolint/internal/ast"
	"rolint/internal/source"
)

// ASTNodeOutput is the JSON shape of one tree node.
type ASTNodeOutput struct {
	Type     string          `json:"type"`
	Kind     string          `json:"kind,omitempty"`
	Span     source.Span     `json:"span"`
	Text     string          `json:"text,omitempty"`
	Children []ASTNodeOutput `json:"children,omitempty"`
}

// treeNode - общий промежуточный вид для pretty и JSON
type treeNode struct {
	typ      string
	kind     string
	text     string
	span     source.Span
	children []*treeNode
}

func (n *treeNode) add(children ...*treeNode) {
	for _, c := range children {
		if c != nil {
			n.children = append(n.children, c)
		}
	}
}

// FormatASTPretty prints the tree with box-drawing guides.
func FormatASTPretty(w io.Writer, builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) error {
	root, err := buildFileTree(builder, fileID, fs)
	if err != nil {
		return err
	}
	var sb strings.Builder
	sb.WriteString(nodeLabel(root, fs) + "\n")
	writeChildren(&sb, root, "", fs)
	_, err = io.WriteString(w, sb.String())
	return err
}

// FormatASTJSON prints the tree as nested JSON nodes.
func FormatASTJSON(w io.Writer, builder *ast.Builder, fileID ast.FileID) error {
	root, err := buildFileTree(builder, fileID, nil)
	if err != nil {
		return err
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toJSON(root))
}

func writeChildren(sb *strings.Builder, n *treeNode, prefix string, fs *source.FileSet) {
	for i, c := range n.children {
		last := i == len(n.children)-1
		branch, next := "├─ ", "│  "
		if last {
			branch, next = "└─ ", "   "
		}
		sb.WriteString(prefix + branch + nodeLabel(c, fs) + "\n")
		writeChildren(sb, c, prefix+next, fs)
	}
}

func nodeLabel(n *treeNode, fs *source.FileSet) string {
	label := n.typ
	if n.kind != "" {
		label += " " + n.kind
	}
	if n.text != "" {
		label += " " + n.text
	}
	return fmt.Sprintf("%s (span: %s)", label, formatSpan(n.span, fs))
}

func toJSON(n *treeNode) ASTNodeOutput {
	out := ASTNodeOutput{Type: n.typ, Kind: n.kind, Span: n.span, Text: n.text}
	for _, c := range n.children {
		out.Children = append(out.Children, toJSON(c))
	}
	return out
}

// formatSpan - line:col-line:col, если есть FileSet, иначе байтовые смещения
func formatSpan(span source.Span, fs *source.FileSet) string {
	if fs == nil {
		return fmt.Sprintf("%d..%d", span.Start, span.End)
	}
	start, end := fs.Resolve(span)
	return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
}

func buildFileTree(builder *ast.Builder, fileID ast.FileID, fs *source.FileSet) (*treeNode, error) {
	file := builder.Files.Get(fileID)
	if file == nil {
		return nil, fmt.Errorf("file not found")
	}
	root := &treeNode{typ: "File", span: file.Span}
	if fs != nil {
		if src, ok := fs.Lookup(file.Span.File); ok {
			root.text = src.FormatPath("auto", fs.BaseDir())
		}
	}
	tb := treeBuilder{b: builder}
	root.add(tb.blockStmts(file.Body)...)
	return root, nil
}

type treeBuilder struct {
	b *ast.Builder
}

func (tb treeBuilder) name(id source.StringID) string {
	if id == source.NoStringID {
		return ""
	}
	return tb.b.Name(id)
}

func (tb treeBuilder) exprSpan(id ast.ExprID) source.Span {
	if ex := tb.b.Exprs.Get(id); ex != nil {
		return ex.Span
	}
	return source.Span{}
}

func (tb treeBuilder) blockStmts(id ast.BlockID) []*treeNode {
	blk := tb.b.Blocks.Get(id)
	if blk == nil {
		return nil
	}
	out := make([]*treeNode, 0, len(blk.Stmts))
	for _, st := range blk.Stmts {
		out = append(out, tb.stmt(st))
	}
	return out
}

func (tb treeBuilder) block(label string, id ast.BlockID) *treeNode {
	blk := tb.b.Blocks.Get(id)
	if blk == nil {
		return nil
	}
	n := &treeNode{typ: label, span: blk.Span}
	n.add(tb.blockStmts(id)...)
	return n
}

func (tb treeBuilder) group(label string, span source.Span, ids []ast.ExprID) *treeNode {
	if len(ids) == 0 {
		return nil
	}
	n := &treeNode{typ: label, span: span}
	for _, id := range ids {
		n.add(tb.expr(id))
	}
	return n
}

func (tb treeBuilder) binding(label string, b ast.Binding) *treeNode {
	return &treeNode{typ: label, text: tb.name(b.Name), span: b.Span}
}

func (tb treeBuilder) stmt(id ast.StmtID) *treeNode {
	st := tb.b.Stmts.Get(id)
	if st == nil {
		return &treeNode{typ: "Stmt", kind: "<nil>"}
	}
	n := &treeNode{typ: "Stmt", kind: st.Kind.String(), span: st.Span}
	s := tb.b.Stmts
	switch st.Kind {
	case ast.StmtLocal:
		data, _ := s.Local(id)
		for _, b := range data.Names {
			n.add(tb.binding("Name", b))
		}
		n.add(tb.group("Values", st.Span, data.Exprs))
	case ast.StmtAssign:
		data, _ := s.Assign(id)
		n.add(tb.group("Targets", st.Span, data.Targets), tb.group("Values", st.Span, data.Exprs))
	case ast.StmtCompoundAssign:
		data, _ := s.CompoundAssign(id)
		n.text = data.Op.String() + "="
		n.add(tb.expr(data.Target), tb.expr(data.Value))
	case ast.StmtCall:
		data, _ := s.Call(id)
		n.add(tb.expr(data.Call))
	case ast.StmtDo:
		data, _ := s.Do(id)
		n.add(tb.block("Body", data.Body))
	case ast.StmtWhile:
		data, _ := s.While(id)
		n.add(tb.expr(data.Cond), tb.block("Body", data.Body))
	case ast.StmtRepeat:
		data, _ := s.Repeat(id)
		n.add(tb.block("Body", data.Body), tb.expr(data.Cond))
	case ast.StmtIf:
		data, _ := s.If(id)
		for i, br := range data.Branches {
			branch := &treeNode{typ: "Branch", text: fmt.Sprint(i), span: tb.exprSpan(br.Cond)}
			branch.add(tb.expr(br.Cond), tb.block("Body", br.Body))
			n.add(branch)
		}
		n.add(tb.block("Else", data.Else))
	case ast.StmtNumericFor:
		data, _ := s.NumericFor(id)
		n.add(tb.binding("Var", data.Var), tb.expr(data.Start), tb.expr(data.Limit), tb.expr(data.Step), tb.block("Body", data.Body))
	case ast.StmtGenericFor:
		data, _ := s.GenericFor(id)
		for _, v := range data.Vars {
			n.add(tb.binding("Var", v))
		}
		n.add(tb.group("In", st.Span, data.Exprs), tb.block("Body", data.Body))
	case ast.StmtFunction:
		data, _ := s.Function(id)
		parts := make([]string, 0, len(data.Path))
		for _, p := range data.Path {
			parts = append(parts, tb.name(p.Name))
		}
		n.text = strings.Join(parts, ".")
		if data.Method.Name != source.NoStringID {
			n.text += ":" + tb.name(data.Method.Name)
		}
		n.add(tb.expr(data.Func))
	case ast.StmtLocalFunction:
		data, _ := s.LocalFunction(id)
		n.text = tb.name(data.Name.Name)
		n.add(tb.expr(data.Func))
	case ast.StmtReturn:
		data, _ := s.Return(id)
		for _, e := range data.Exprs {
			n.add(tb.expr(e))
		}
	case ast.StmtTypeAlias:
		data, _ := s.TypeAlias(id)
		n.text = tb.name(data.Name.Name)
		if data.Export {
			n.text = "export " + n.text
		}
	}
	return n
}

func (tb treeBuilder) expr(id ast.ExprID) *treeNode {
	ex := tb.b.Exprs.Get(id)
	if ex == nil {
		return nil
	}
	n := &treeNode{typ: "Expr", kind: ex.Kind.String(), span: ex.Span}
	e := tb.b.Exprs
	switch ex.Kind {
	case ast.ExprNil, ast.ExprBool, ast.ExprNumber, ast.ExprString:
		data, _ := e.Literal(id)
		n.text = tb.name(data.Raw)
	case ast.ExprName:
		data, _ := e.Name(id)
		n.text = tb.name(data.Name)
	case ast.ExprParen:
		data, _ := e.Paren(id)
		n.add(tb.expr(data.Inner))
	case ast.ExprSuffixed:
		data, _ := e.Suffixed(id)
		n.add(tb.expr(data.Prefix))
		for i := range data.Suffixes {
			n.add(tb.suffix(&data.Suffixes[i]))
		}
	case ast.ExprTable:
		data, _ := e.Table(id)
		for _, f := range data.Fields {
			field := &treeNode{typ: "Field", kind: f.Kind.String(), span: f.Span}
			switch f.Kind {
			case ast.FieldNameKey:
				field.text = tb.name(f.Name)
			case ast.FieldExprKey:
				field.add(tb.expr(f.Key))
			}
			field.add(tb.expr(f.Value))
			n.add(field)
		}
	case ast.ExprFunction:
		data, _ := e.Function(id)
		params := make([]string, 0, len(data.Params)+1)
		for _, p := range data.Params {
			params = append(params, tb.name(p.Name))
		}
		if data.Vararg {
			params = append(params, "...")
		}
		n.text = "(" + strings.Join(params, ", ") + ")"
		n.add(tb.block("Body", data.Body))
	case ast.ExprBinary:
		data, _ := e.Binary(id)
		n.text = data.Op.String()
		n.add(tb.expr(data.Left), tb.expr(data.Right))
	case ast.ExprUnary:
		data, _ := e.Unary(id)
		n.text = data.Op.String()
		n.add(tb.expr(data.Operand))
	case ast.ExprIfElse:
		data, _ := e.IfElse(id)
		for _, br := range data.Branches {
			n.add(tb.expr(br.Cond), tb.expr(br.Value))
		}
		n.add(tb.expr(data.Else))
	case ast.ExprInterp:
		data, _ := e.Interp(id)
		n.text = tb.name(data.Raw)
	case ast.ExprTypeAssert:
		data, _ := e.TypeAssert(id)
		n.add(tb.expr(data.Expr))
	}
	return n
}

func (tb treeBuilder) suffix(s *ast.Suffix) *treeNode {
	n := &treeNode{typ: "Suffix", kind: s.Kind.String(), span: s.Span}
	switch s.Kind {
	case ast.SuffixDot:
		n.text = tb.name(s.Name)
	case ast.SuffixBracket:
		n.add(tb.expr(s.Index))
	case ast.SuffixMethod:
		n.text = tb.name(s.Name)
		n.add(tb.args(s.Args))
	case ast.SuffixCall:
		n.add(tb.args(s.Args))
	}
	return n
}

func (tb treeBuilder) args(a ast.CallArgs) *treeNode {
	n := &treeNode{typ: "Args", kind: a.Kind.String(), span: a.Span}
	for _, id := range a.List {
		n.add(tb.expr(id))
	}
	return n
}
