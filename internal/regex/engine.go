package regex

// Program compilation is exposed as a distinct step (CompilePattern) from
// Match so callers like cmd/zerosh's "match --dump" can disassemble the
// compiled form, and so tests can exercise the evaluator against a known
// program without re-parsing on every call.

// CompiledProgram pairs a compiled Program with the pattern it was compiled
// from, for diagnostics (see Disassemble in dump.go).
type CompiledProgram struct {
	Pattern string
	Prog    Program
}

// CompilePattern parses and compiles pattern into a CompiledProgram.
func CompilePattern(pattern string) (*CompiledProgram, error) {
	ast, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	prog, err := Compile(ast)
	if err != nil {
		return nil, err
	}
	return &CompiledProgram{Pattern: pattern, Prog: prog}, nil
}

// Match is the engine's single external entry point: it reports whether any
// substring of input, anchored at some start position, matches pattern
// under the given Strategy.
//
// Empty-expression policy: if pattern parses to the Empty error, matching
// against an empty input succeeds; against a non-empty input, the Empty
// parse error propagates to the caller. Every other parse or compile error
// always propagates.
func Match(pattern, input string, strategy Strategy) (bool, error) {
	cp, err := CompilePattern(pattern)
	if err != nil {
		if IsEmpty(err) {
			if len(input) == 0 {
				return true, nil
			}
			return false, err
		}
		return false, err
	}
	return Eval(cp.Prog, []rune(input), strategy)
}
