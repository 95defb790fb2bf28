package regex

// AST is a parsed regular expression. It is a recursive sum type: each node
// owns its children outright, there are no cycles and no shared subtrees.
type AST interface {
	astNode()
}

// Char matches one code point equal to C.
type Char struct{ C rune }

// AnyChar matches any single code point.
type AnyChar struct{}

// AssertHead succeeds iff the string pointer is at the start of the input.
type AssertHead struct{}

// AssertTail succeeds iff the string pointer is at the end of the input.
type AssertTail struct{}

// Plus matches E one or more times, greedily.
type Plus struct{ E AST }

// Star matches E zero or more times, greedily.
type Star struct{ E AST }

// Question matches E zero or one times, greedily.
type Question struct{ E AST }

// Or matches E1 or, failing that, E2.
type Or struct{ E1, E2 AST }

// Seq matches each element of Es in order.
type Seq struct{ Es []AST }

func (Char) astNode()       {}
func (AnyChar) astNode()    {}
func (AssertHead) astNode() {}
func (AssertTail) astNode() {}
func (Plus) astNode()       {}
func (Star) astNode()       {}
func (Question) astNode()   {}
func (Or) astNode()         {}
func (Seq) astNode()        {}
