package ast

// Visitor receives callbacks from Walk. Embed BaseVisitor to implement only
// the hooks you need.
type Visitor interface {
	// VisitCall fires for every suffixed expression that ends in a call,
	// whether it is used as a statement or as a value. It fires before the
	// callee and arguments are walked.
	VisitCall(id ExprID, call *SuffixedData)
	// VisitLocal fires for every `local` declaration before its values are walked.
	VisitLocal(id StmtID, local *LocalData)
	EnterBlock(id BlockID)
	LeaveBlock(id BlockID)
}

// BaseVisitor implements Visitor with no-ops.
type BaseVisitor struct{}

func (BaseVisitor) VisitCall(ExprID, *SuffixedData) {}
func (BaseVisitor) VisitLocal(StmtID, *LocalData)   {}
func (BaseVisitor) EnterBlock(BlockID)              {}
func (BaseVisitor) LeaveBlock(BlockID)              {}

// Walk traverses the file once, depth-first, in source order.
func Walk(b *Builder, file FileID, v Visitor) {
	f := b.Files.Get(file)
	if f == nil {
		return
	}
	w := walker{b: b, v: v}
	w.block(f.Body)
}

type walker struct {
	b *Builder
	v Visitor
}

func (w *walker) block(id BlockID) {
	blk := w.b.Blocks.Get(id)
	if blk == nil {
		return
	}
	w.v.EnterBlock(id)
	for _, st := range blk.Stmts {
		w.stmt(st)
	}
	w.v.LeaveBlock(id)
}

func (w *walker) exprs(ids []ExprID) {
	for _, id := range ids {
		w.expr(id)
	}
}

func (w *walker) stmt(id StmtID) {
	st := w.b.Stmts.Get(id)
	if st == nil {
		return
	}
	s := w.b.Stmts
	switch st.Kind {
	case StmtLocal:
		data, _ := s.Local(id)
		w.v.VisitLocal(id, data)
		w.exprs(data.Exprs)
	case StmtAssign:
		data, _ := s.Assign(id)
		w.exprs(data.Targets)
		w.exprs(data.Exprs)
	case StmtCompoundAssign:
		data, _ := s.CompoundAssign(id)
		w.expr(data.Target)
		w.expr(data.Value)
	case StmtCall:
		data, _ := s.Call(id)
		w.expr(data.Call)
	case StmtDo:
		data, _ := s.Do(id)
		w.block(data.Body)
	case StmtWhile:
		data, _ := s.While(id)
		w.expr(data.Cond)
		w.block(data.Body)
	case StmtRepeat:
		data, _ := s.Repeat(id)
		// условие until видит локальные переменные тела, но обходится после него
		w.block(data.Body)
		w.expr(data.Cond)
	case StmtIf:
		data, _ := s.If(id)
		for _, br := range data.Branches {
			w.expr(br.Cond)
			w.block(br.Body)
		}
		w.block(data.Else)
	case StmtNumericFor:
		data, _ := s.NumericFor(id)
		w.expr(data.Start)
		w.expr(data.Limit)
		w.expr(data.Step)
		w.block(data.Body)
	case StmtGenericFor:
		data, _ := s.GenericFor(id)
		w.exprs(data.Exprs)
		w.block(data.Body)
	case StmtFunction:
		data, _ := s.Function(id)
		w.expr(data.Func)
	case StmtLocalFunction:
		data, _ := s.LocalFunction(id)
		w.expr(data.Func)
	case StmtReturn:
		data, _ := s.Return(id)
		w.exprs(data.Exprs)
	}
}

func (w *walker) expr(id ExprID) {
	ex := w.b.Exprs.Get(id)
	if ex == nil {
		return
	}
	e := w.b.Exprs
	switch ex.Kind {
	case ExprSuffixed:
		data, _ := e.Suffixed(id)
		if data.IsCall() {
			w.v.VisitCall(id, data)
		}
		w.expr(data.Prefix)
		for i := range data.Suffixes {
			w.suffix(&data.Suffixes[i])
		}
	case ExprParen:
		data, _ := e.Paren(id)
		w.expr(data.Inner)
	case ExprTable:
		data, _ := e.Table(id)
		for _, f := range data.Fields {
			w.expr(f.Key)
			w.expr(f.Value)
		}
	case ExprFunction:
		data, _ := e.Function(id)
		w.block(data.Body)
	case ExprBinary:
		data, _ := e.Binary(id)
		w.expr(data.Left)
		w.expr(data.Right)
	case ExprUnary:
		data, _ := e.Unary(id)
		w.expr(data.Operand)
	case ExprIfElse:
		data, _ := e.IfElse(id)
		for _, br := range data.Branches {
			w.expr(br.Cond)
			w.expr(br.Value)
		}
		w.expr(data.Else)
	case ExprTypeAssert:
		data, _ := e.TypeAssert(id)
		w.expr(data.Expr)
	}
}

func (w *walker) suffix(s *Suffix) {
	switch s.Kind {
	case SuffixBracket:
		w.expr(s.Index)
	case SuffixCall, SuffixMethod:
		w.exprs(s.Args.List)
	}
}
