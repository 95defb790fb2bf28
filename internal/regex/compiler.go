package regex

import "math"

// MaxProgramLen bounds the number of instructions Compile will emit; beyond
// it, PC addresses would no longer fit the int range this package promises
// to preserve across a 32-bit Program encoding, so Compile fails closed with
// a *CodeGenError instead of wrapping silently.
const MaxProgramLen = math.MaxInt32

// Compile turns an AST into a Program whose final instruction is OpMatch.
//
// Each AST constructor has a fixed code template (relative labels, pc is a
// monotonically-incremented position counter as instructions are emitted):
//
//	Char(c)    -> Char(c)
//	AnyChar    -> AnyChar
//	AssertHead -> AssertHead
//	AssertTail -> AssertTail
//	Seq(es)    -> emit each e in es, in order
//	Plus(e)    -> L1: <e>; Split(L1, L3); L3:
//	Star(e)    -> L1: Split(L2, L4); L2: <e>; Jump(L1); L4:
//	Question(e)-> L1: Split(L2, L3); L2: <e>; L3:
//	Or(e1, e2) -> L1: Split(L2, L4); L2: <e1>; L3: Jump(L5); L4: <e2>; L5:
//
// Split's "take the body" branch is always placed first (as A), so the
// depth-first evaluator's try-A-before-B order realizes greedy semantics.
// Star/Question/Or each emit a placeholder Split or Jump with a zero target
// address, remember its index, then backpatch that target once the
// following code's length is known -- if the backpatch doesn't find the
// opcode it expects, that is an internal compiler bug (FailStar/FailOr/
// FailQuestion), not a user-facing error.
func Compile(ast AST) (Program, error) {
	var g generator
	if err := g.genCode(ast); err != nil {
		return nil, err
	}
	return g.insts, nil
}

type generator struct {
	insts Program
}

func (g *generator) pc() int { return len(g.insts) }

func (g *generator) emit(inst Instruction) error {
	if len(g.insts) >= MaxProgramLen {
		return &CodeGenError{Kind: ErrPCOverflow}
	}
	g.insts = append(g.insts, inst)
	return nil
}

func (g *generator) genCode(ast AST) error {
	if err := g.genExpr(ast); err != nil {
		return err
	}
	return g.emit(Instruction{Op: OpMatch})
}

func (g *generator) genExpr(ast AST) error {
	switch e := ast.(type) {
	case Char:
		return g.emit(Instruction{Op: OpChar, C: e.C})
	case AnyChar:
		return g.emit(Instruction{Op: OpAnyChar})
	case AssertHead:
		return g.emit(Instruction{Op: OpAssertHead})
	case AssertTail:
		return g.emit(Instruction{Op: OpAssertTail})
	case Seq:
		for _, sub := range e.Es {
			if err := g.genExpr(sub); err != nil {
				return err
			}
		}
		return nil
	case Plus:
		return g.genPlus(e.E)
	case Star:
		return g.genStar(e.E)
	case Question:
		return g.genQuestion(e.E)
	case Or:
		return g.genOr(e.E1, e.E2)
	default:
		panic("regex: unknown AST node")
	}
}

// genPlus: L1: <e>; Split(L1, L3); L3:
func (g *generator) genPlus(e AST) error {
	l1 := g.pc()
	if err := g.genExpr(e); err != nil {
		return err
	}
	l3 := g.pc() + 1
	return g.emit(Instruction{Op: OpSplit, A: l1, B: l3})
}

// genStar: L1: Split(L2, L4); L2: <e>; Jump(L1); L4:
func (g *generator) genStar(e AST) error {
	l1 := g.pc()
	if err := g.emit(Instruction{Op: OpSplit}); err != nil { // placeholder, backpatched below
		return err
	}
	l2 := g.pc()
	if err := g.genExpr(e); err != nil {
		return err
	}
	if err := g.emit(Instruction{Op: OpJump, A: l1}); err != nil {
		return err
	}
	l4 := g.pc()
	if g.insts[l1].Op != OpSplit {
		return &CodeGenError{Kind: ErrFailStar}
	}
	g.insts[l1].A, g.insts[l1].B = l2, l4
	return nil
}

// genQuestion: L1: Split(L2, L3); L2: <e>; L3:
func (g *generator) genQuestion(e AST) error {
	l1 := g.pc()
	if err := g.emit(Instruction{Op: OpSplit}); err != nil {
		return err
	}
	l2 := g.pc()
	if err := g.genExpr(e); err != nil {
		return err
	}
	l3 := g.pc()
	if g.insts[l1].Op != OpSplit {
		return &CodeGenError{Kind: ErrFailQuestion}
	}
	g.insts[l1].A, g.insts[l1].B = l2, l3
	return nil
}

// genOr: L1: Split(L2, L4); L2: <e1>; L3: Jump(L5); L4: <e2>; L5:
func (g *generator) genOr(e1, e2 AST) error {
	l1 := g.pc()
	if err := g.emit(Instruction{Op: OpSplit}); err != nil {
		return err
	}
	l2 := g.pc()
	if err := g.genExpr(e1); err != nil {
		return err
	}
	l3 := g.pc()
	if err := g.emit(Instruction{Op: OpJump}); err != nil {
		return err
	}
	l4 := g.pc()
	if g.insts[l1].Op != OpSplit {
		return &CodeGenError{Kind: ErrFailOr}
	}
	g.insts[l1].A, g.insts[l1].B = l2, l4

	if err := g.genExpr(e2); err != nil {
		return err
	}
	l5 := g.pc()
	if g.insts[l3].Op != OpJump {
		return &CodeGenError{Kind: ErrFailOr}
	}
	g.insts[l3].A = l5
	return nil
}
