package ast

import (
	"rolint/internal/source"
)

// Stmts manages allocation of statements and their per-kind payloads.
type Stmts struct {
	Arena           *Arena[Stmt]
	Locals          *Arena[LocalData]
	Assigns         *Arena[AssignData]
	CompoundAssigns *Arena[CompoundAssignData]
	Calls           *Arena[CallStmtData]
	Dos             *Arena[DoData]
	Whiles          *Arena[WhileData]
	Repeats         *Arena[RepeatData]
	Ifs             *Arena[IfData]
	NumericFors     *Arena[NumericForData]
	GenericFors     *Arena[GenericForData]
	Functions       *Arena[FunctionStmtData]
	LocalFunctions  *Arena[LocalFunctionData]
	Returns         *Arena[ReturnData]
	TypeAliases     *Arena[TypeAliasData]
}

func NewStmts(capHint uint) *Stmts {
	if capHint == 0 {
		capHint = 1 << 8
	}
	small := capHint/4 + 1
	return &Stmts{
		Arena:           NewArena[Stmt](capHint),
		Locals:          NewArena[LocalData](small),
		Assigns:         NewArena[AssignData](small),
		CompoundAssigns: NewArena[CompoundAssignData](small),
		Calls:           NewArena[CallStmtData](small),
		Dos:             NewArena[DoData](small),
		Whiles:          NewArena[WhileData](small),
		Repeats:         NewArena[RepeatData](small),
		Ifs:             NewArena[IfData](small),
		NumericFors:     NewArena[NumericForData](small),
		GenericFors:     NewArena[GenericForData](small),
		Functions:       NewArena[FunctionStmtData](small),
		LocalFunctions:  NewArena[LocalFunctionData](small),
		Returns:         NewArena[ReturnData](small),
		TypeAliases:     NewArena[TypeAliasData](small),
	}
}

func (s *Stmts) New(kind StmtKind, span source.Span, payload PayloadID) StmtID {
	return StmtID(s.Arena.Allocate(Stmt{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (s *Stmts) Get(id StmtID) *Stmt {
	return s.Arena.Get(uint32(id))
}

func (s *Stmts) payloadOf(id StmtID, kind StmtKind) (uint32, bool) {
	st := s.Get(id)
	if st == nil || st.Kind != kind {
		return 0, false
	}
	return uint32(st.Payload), true
}

func (s *Stmts) NewError(span source.Span) StmtID {
	return s.New(StmtError, span, NoPayloadID)
}

func (s *Stmts) NewBreak(span source.Span) StmtID {
	return s.New(StmtBreak, span, NoPayloadID)
}

func (s *Stmts) NewContinue(span source.Span) StmtID {
	return s.New(StmtContinue, span, NoPayloadID)
}

func (s *Stmts) NewLocal(span source.Span, data LocalData) StmtID {
	return s.New(StmtLocal, span, PayloadID(s.Locals.Allocate(data)))
}

func (s *Stmts) Local(id StmtID) (*LocalData, bool) {
	p, ok := s.payloadOf(id, StmtLocal)
	if !ok {
		return nil, false
	}
	return s.Locals.Get(p), true
}

func (s *Stmts) NewAssign(span source.Span, data AssignData) StmtID {
	return s.New(StmtAssign, span, PayloadID(s.Assigns.Allocate(data)))
}

func (s *Stmts) Assign(id StmtID) (*AssignData, bool) {
	p, ok := s.payloadOf(id, StmtAssign)
	if !ok {
		return nil, false
	}
	return s.Assigns.Get(p), true
}

func (s *Stmts) NewCompoundAssign(span source.Span, data CompoundAssignData) StmtID {
	return s.New(StmtCompoundAssign, span, PayloadID(s.CompoundAssigns.Allocate(data)))
}

func (s *Stmts) CompoundAssign(id StmtID) (*CompoundAssignData, bool) {
	p, ok := s.payloadOf(id, StmtCompoundAssign)
	if !ok {
		return nil, false
	}
	return s.CompoundAssigns.Get(p), true
}

func (s *Stmts) NewCall(span source.Span, call ExprID) StmtID {
	return s.New(StmtCall, span, PayloadID(s.Calls.Allocate(CallStmtData{Call: call})))
}

func (s *Stmts) Call(id StmtID) (*CallStmtData, bool) {
	p, ok := s.payloadOf(id, StmtCall)
	if !ok {
		return nil, false
	}
	return s.Calls.Get(p), true
}

func (s *Stmts) NewDo(span source.Span, body BlockID) StmtID {
	return s.New(StmtDo, span, PayloadID(s.Dos.Allocate(DoData{Body: body})))
}

func (s *Stmts) Do(id StmtID) (*DoData, bool) {
	p, ok := s.payloadOf(id, StmtDo)
	if !ok {
		return nil, false
	}
	return s.Dos.Get(p), true
}

func (s *Stmts) NewWhile(span source.Span, data WhileData) StmtID {
	return s.New(StmtWhile, span, PayloadID(s.Whiles.Allocate(data)))
}

func (s *Stmts) While(id StmtID) (*WhileData, bool) {
	p, ok := s.payloadOf(id, StmtWhile)
	if !ok {
		return nil, false
	}
	return s.Whiles.Get(p), true
}

func (s *Stmts) NewRepeat(span source.Span, data RepeatData) StmtID {
	return s.New(StmtRepeat, span, PayloadID(s.Repeats.Allocate(data)))
}

func (s *Stmts) Repeat(id StmtID) (*RepeatData, bool) {
	p, ok := s.payloadOf(id, StmtRepeat)
	if !ok {
		return nil, false
	}
	return s.Repeats.Get(p), true
}

func (s *Stmts) NewIf(span source.Span, data IfData) StmtID {
	return s.New(StmtIf, span, PayloadID(s.Ifs.Allocate(data)))
}

func (s *Stmts) If(id StmtID) (*IfData, bool) {
	p, ok := s.payloadOf(id, StmtIf)
	if !ok {
		return nil, false
	}
	return s.Ifs.Get(p), true
}

func (s *Stmts) NewNumericFor(span source.Span, data NumericForData) StmtID {
	return s.New(StmtNumericFor, span, PayloadID(s.NumericFors.Allocate(data)))
}

func (s *Stmts) NumericFor(id StmtID) (*NumericForData, bool) {
	p, ok := s.payloadOf(id, StmtNumericFor)
	if !ok {
		return nil, false
	}
	return s.NumericFors.Get(p), true
}

func (s *Stmts) NewGenericFor(span source.Span, data GenericForData) StmtID {
	return s.New(StmtGenericFor, span, PayloadID(s.GenericFors.Allocate(data)))
}

func (s *Stmts) GenericFor(id StmtID) (*GenericForData, bool) {
	p, ok := s.payloadOf(id, StmtGenericFor)
	if !ok {
		return nil, false
	}
	return s.GenericFors.Get(p), true
}

func (s *Stmts) NewFunction(span source.Span, data FunctionStmtData) StmtID {
	return s.New(StmtFunction, span, PayloadID(s.Functions.Allocate(data)))
}

func (s *Stmts) Function(id StmtID) (*FunctionStmtData, bool) {
	p, ok := s.payloadOf(id, StmtFunction)
	if !ok {
		return nil, false
	}
	return s.Functions.Get(p), true
}

func (s *Stmts) NewLocalFunction(span source.Span, data LocalFunctionData) StmtID {
	return s.New(StmtLocalFunction, span, PayloadID(s.LocalFunctions.Allocate(data)))
}

func (s *Stmts) LocalFunction(id StmtID) (*LocalFunctionData, bool) {
	p, ok := s.payloadOf(id, StmtLocalFunction)
	if !ok {
		return nil, false
	}
	return s.LocalFunctions.Get(p), true
}

func (s *Stmts) NewReturn(span source.Span, exprs []ExprID) StmtID {
	return s.New(StmtReturn, span, PayloadID(s.Returns.Allocate(ReturnData{Exprs: exprs})))
}

func (s *Stmts) Return(id StmtID) (*ReturnData, bool) {
	p, ok := s.payloadOf(id, StmtReturn)
	if !ok {
		return nil, false
	}
	return s.Returns.Get(p), true
}

func (s *Stmts) NewTypeAlias(span source.Span, data TypeAliasData) StmtID {
	return s.New(StmtTypeAlias, span, PayloadID(s.TypeAliases.Allocate(data)))
}

func (s *Stmts) TypeAlias(id StmtID) (*TypeAliasData, bool) {
	p, ok := s.payloadOf(id, StmtTypeAlias)
	if !ok {
		return nil, false
	}
	return s.TypeAliases.Get(p), true
}
