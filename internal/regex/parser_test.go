package regex

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseErrors(t *testing.T) {
	cases := []struct {
		pattern string
		kind    ParseErrorKind
	}{
		{"+b", ErrNoPrev},
		{"|b", ErrNoPrev},
		{"?b", ErrNoPrev},
		{"*b", ErrNoPrev},
		{"a\\q", ErrInvalidEscape},
		{")", ErrInvalidRightParen},
		{"(a", ErrNoRightParen},
		{"", ErrEmpty},
		{"()", ErrEmpty},
	}
	for _, c := range cases {
		t.Run(c.pattern, func(t *testing.T) {
			_, err := Parse(c.pattern)
			require.Error(t, err)
			pe, ok := err.(*ParseError)
			require.True(t, ok, "expected *ParseError, got %T", err)
			require.Equal(t, c.kind, pe.Kind)
		})
	}
}

func TestParseShapes(t *testing.T) {
	cases := []struct {
		pattern string
		want    AST
	}{
		{"abc", Seq{Es: []AST{Char{'a'}, Char{'b'}, Char{'c'}}}},
		{"a.c", Seq{Es: []AST{Char{'a'}, AnyChar{}, Char{'c'}}}},
		{"^abc$", Seq{Es: []AST{AssertHead{}, Char{'a'}, Char{'b'}, Char{'c'}, AssertTail{}}}},
		{"a|b", Or{E1: Seq{Es: []AST{Char{'a'}}}, E2: Seq{Es: []AST{Char{'b'}}}}},
		{"a*", Seq{Es: []AST{Star{E: Char{'a'}}}}},
		{"a+", Seq{Es: []AST{Plus{E: Char{'a'}}}}},
		{"a?", Seq{Es: []AST{Question{E: Char{'a'}}}}},
		{"(ab)+", Seq{Es: []AST{Plus{E: Seq{Es: []AST{Char{'a'}, Char{'b'}}}}}}},
	}
	for _, c := range cases {
		t.Run(c.pattern, func(t *testing.T) {
			got, err := Parse(c.pattern)
			require.NoError(t, err)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("Parse(%q) mismatch (-want +got):\n%s", c.pattern, diff)
			}
		})
	}
}

func TestParseEscapes(t *testing.T) {
	got, err := Parse(`\(\)\|\+\*\?\\`)
	require.NoError(t, err)
	want := Seq{Es: []AST{Char{'('}, Char{')'}, Char{'|'}, Char{'+'}, Char{'*'}, Char{'?'}, Char{'\\'}}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}
