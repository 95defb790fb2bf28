/*
Package regex implements a small backtracking/BFS regular-expression engine.

The pipeline has three stages, each its own file: parser.go turns surface
syntax into an AST, compiler.go turns the AST into a flat Program of VM
instructions, and evaluator.go runs that Program against an input two
different ways.

Supported syntax is deliberately small: literal characters, '.' (any
character), '^'/'$' (head/tail assertions), '(' ')' for grouping, '|' for
alternation, and the postfix quantifiers '+' '*' '?'. There are no character
classes, no backreferences, and no capture groups beyond grouping for
precedence -- see engine.go for the full contract.

The interesting part of this package is that matching can be done two ways
against the exact same compiled Program: a depth-first walk (LIFO frontier)
and a breadth-first walk (FIFO frontier). Both dedupe (pc, sp) states, so
each explores a state at most once and is bounded by roughly
len(program) * len(input); they differ only in visiting order. Both
implement the same language; TestMatchAgreement in engine_test.go checks
that they agree on a set of accepting and rejecting cases.
*/
package regex
