package regex

import "math"

// Strategy selects which of the two evaluator walks Eval uses.
type Strategy int

const (
	// StrategyDepth walks the state frontier depth-first (a LIFO frontier),
	// exploring a Split's first branch and everything reachable from it
	// before the second. It shares StrategyBreadth's (pc, sp) dedup set, so
	// it explores each state at most once and does not revisit states the
	// way a naive recursive backtracker does.
	StrategyDepth Strategy = iota
	// StrategyBreadth walks the state frontier breadth-first (a FIFO
	// frontier) with deduplication by (pc, sp), so its total work is
	// bounded by len(program) * len(input).
	StrategyBreadth
)

// registerContext is a VM register pair: PC into the Program, SP into the
// input. It packs into a single uint64 key for the breadth-first dedup set.
type registerContext struct {
	pc, sp int
}

func (ctx registerContext) hash() uint64 {
	return uint64(ctx.sp)<<32 | uint64(ctx.pc)
}

// matchStatus is the outcome of evaluating one instruction against one
// register context.
type matchStatus int

const (
	statusFailed matchStatus = iota
	statusSuccess
	statusContinue
)

// step evaluates the instruction at ctx.pc against line, mutating ctx for
// single-successor opcodes (Char, AnyChar, AssertHead, AssertTail, Jump) and
// returning the two successor contexts for Split. Returns statusSuccess on
// Match, statusFailed when the opcode's precondition isn't met (Char
// mismatch/EOF, AnyChar EOF, assertion violated), and statusContinue
// otherwise -- with split set to non-nil only for OpSplit.
func step(inst Instruction, line []rune, ctx *registerContext) (status matchStatus, split *[2]registerContext, err error) {
	switch inst.Op {
	case OpChar:
		if ctx.sp >= len(line) || line[ctx.sp] != inst.C {
			return statusFailed, nil, nil
		}
		if ctx.pc, err = incrPC(ctx.pc); err != nil {
			return 0, nil, err
		}
		if ctx.sp, err = incrSP(ctx.sp); err != nil {
			return 0, nil, err
		}
		return statusContinue, nil, nil

	case OpAnyChar:
		if ctx.sp >= len(line) {
			return statusFailed, nil, nil
		}
		if ctx.pc, err = incrPC(ctx.pc); err != nil {
			return 0, nil, err
		}
		if ctx.sp, err = incrSP(ctx.sp); err != nil {
			return 0, nil, err
		}
		return statusContinue, nil, nil

	case OpMatch:
		return statusSuccess, nil, nil

	case OpJump:
		ctx.pc = inst.A
		return statusContinue, nil, nil

	case OpSplit:
		return statusContinue, &[2]registerContext{
			{pc: inst.A, sp: ctx.sp},
			{pc: inst.B, sp: ctx.sp},
		}, nil

	case OpAssertHead:
		if ctx.sp != 0 {
			return statusFailed, nil, nil
		}
		if ctx.pc, err = incrPC(ctx.pc); err != nil {
			return 0, nil, err
		}
		return statusContinue, nil, nil

	case OpAssertTail:
		if ctx.sp != len(line) {
			return statusFailed, nil, nil
		}
		if ctx.pc, err = incrPC(ctx.pc); err != nil {
			return 0, nil, err
		}
		return statusContinue, nil, nil

	default:
		panic("regex: unknown opcode")
	}
}

func incrPC(pc int) (int, error) {
	if pc == math.MaxInt32 {
		return 0, &EvalError{Kind: ErrPCOverflowEval}
	}
	return pc + 1, nil
}

func incrSP(sp int) (int, error) {
	if sp == math.MaxInt32 {
		return 0, &EvalError{Kind: ErrSPOverflow}
	}
	return sp + 1, nil
}

// exactEval runs one strategy from one fixed start position initSP, per
// §4.3: a frontier of pending contexts (a LIFO stack for StrategyDepth, a
// FIFO queue for StrategyBreadth) plus a dedup set keyed by the packed
// (sp, pc) hash. StrategyDepth dedupes too -- each (pc, sp) is pushed at
// most once, matching the original's ctx_set membership check -- so both
// strategies explore at most len(prog) * (len(line)+1) states and differ
// only in the order they visit them.
func exactEval(prog Program, line []rune, initSP int, strategy Strategy) (bool, error) {
	init := registerContext{pc: 0, sp: initSP}
	frontier := []registerContext{init}
	seen := map[uint64]struct{}{init.hash(): {}}

	for {
		if len(frontier) == 0 {
			return false, nil
		}

		ctx := frontier[0]
		frontier = frontier[1:]

		if ctx.pc < 0 || ctx.pc >= len(prog) {
			return false, &EvalError{Kind: ErrInvalidPC}
		}

		status, split, err := step(prog[ctx.pc], line, &ctx)
		if err != nil {
			return false, err
		}

		switch status {
		case statusSuccess:
			return true, nil
		case statusFailed:
			continue
		case statusContinue:
			if split != nil {
				a, b := split[0], split[1]
				if strategy == StrategyDepth {
					// Push b then a to the front, so a is popped first --
					// realizing "try a before b" (greedy: the compiler
					// places the body branch as a).
					frontier = pushFront(frontier, b, seen)
					frontier = pushFront(frontier, a, seen)
				} else {
					frontier = pushBack(frontier, a, seen)
					frontier = pushBack(frontier, b, seen)
				}
			} else {
				if strategy == StrategyDepth {
					frontier = pushFront(frontier, ctx, seen)
				} else {
					frontier = pushBack(frontier, ctx, seen)
				}
			}
		}
	}
}

func pushFront(frontier []registerContext, ctx registerContext, seen map[uint64]struct{}) []registerContext {
	h := ctx.hash()
	if _, dup := seen[h]; dup {
		return frontier
	}
	seen[h] = struct{}{}
	return append([]registerContext{ctx}, frontier...)
}

func pushBack(frontier []registerContext, ctx registerContext, seen map[uint64]struct{}) []registerContext {
	h := ctx.hash()
	if _, dup := seen[h]; dup {
		return frontier
	}
	seen[h] = struct{}{}
	return append(frontier, ctx)
}

// Eval tries every start position i in [0, len(input)) with SP = i,
// returning success on the first hit (so e.g. ".+" against "" is false: the
// loop body never runs). It does not try i == len(input), matching the
// original's behavior of ranging only over existing input positions.
func Eval(prog Program, input []rune, strategy Strategy) (bool, error) {
	for i := range input {
		ok, err := exactEval(prog, input, i, strategy)
		if err != nil {
			return false, err
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
