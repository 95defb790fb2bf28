package regex

import (
	"fmt"
	"io"

	"github.com/jcorbin/zerosh/internal/runeio"
)

// Disassemble writes a human-readable listing of a compiled program, one
// instruction per line, addresses in square brackets -- the regex-side
// analogue of the teacher's VM memory dumper, adapted from printing cells of
// FIRST/THIRD memory to printing instructions of a regex Program.
func (cp *CompiledProgram) Disassemble(w io.Writer) error {
	for pc, inst := range cp.Prog {
		line, err := formatInst(pc, inst)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, line); err != nil {
			return err
		}
	}
	return nil
}

func formatInst(pc int, inst Instruction) (string, error) {
	switch inst.Op {
	case OpChar:
		return fmt.Sprintf("[%03d] char %s\n", pc, quoteRune(inst.C)), nil
	case OpAnyChar:
		return fmt.Sprintf("[%03d] any\n", pc), nil
	case OpAssertHead:
		return fmt.Sprintf("[%03d] assert_head\n", pc), nil
	case OpAssertTail:
		return fmt.Sprintf("[%03d] assert_tail\n", pc), nil
	case OpJump:
		return fmt.Sprintf("[%03d] jump %03d\n", pc, inst.A), nil
	case OpSplit:
		return fmt.Sprintf("[%03d] split %03d, %03d\n", pc, inst.A, inst.B), nil
	case OpMatch:
		return fmt.Sprintf("[%03d] match\n", pc), nil
	default:
		return "", fmt.Errorf("regex: cannot disassemble opcode %d", inst.Op)
	}
}

// quoteRune renders r the way a trace log would: control runes (C0, DEL,
// C1) by their caret-escaped form, printable ASCII as 'x', and any other
// rune Go-quoted with %q.
func quoteRune(r rune) string {
	if caret := runeio.CaretForm(r); caret != "" {
		return caret
	}
	if r >= 0x20 && r < 0x7f {
		return fmt.Sprintf("'%c'", r)
	}
	return fmt.Sprintf("%q", r)
}
