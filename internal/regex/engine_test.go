package regex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

var strategies = []Strategy{StrategyDepth, StrategyBreadth}

func TestMatchScenarios(t *testing.T) {
	cases := []struct {
		pattern, input string
		want           bool
	}{
		{"abc", "abc", true},
		{"abc", "dabc", true},
		{"abc|def", "def", true},
		{"(abc)*", "abcabcabc", true},
		{"(ab|cd)+", "abcdcd", true},
		{"a(bc)?", "a", true},
		{"a.c", "abc", true},
		{"^abc$", "abc", true},
		{"^ab.*c$", "abababccccabc", true},
		{"b^", "bbb", false},
		{"abc?", "ac", false},
		{".+", "", false},
	}
	for _, c := range cases {
		for _, strategy := range strategies {
			t.Run(c.pattern+"/"+c.input, func(t *testing.T) {
				got, err := Match(c.pattern, c.input, strategy)
				require.NoError(t, err)
				require.Equal(t, c.want, got)
			})
		}
	}
}

func TestMatchAgreement(t *testing.T) {
	// Property 1: depth and breadth strategies agree on every pattern/input
	// pair, for both accepting and rejecting cases.
	cases := []struct{ pattern, input string }{
		{"abc", "abc"},
		{"abc", "acb"},
		{"abc|def", "bcd"},
		{"(abc)*", "aaaaaabcabcabc"},
		{"(ab|cd)+", "aaacbcbdcd"},
		{"a(bc)?", "a"},
		{"a.*", "abc"},
		{".+", "abc"},
		{"bc|(d$)|((^a))", "abdc"},
		{"abc", "abcdef"},
		{"abc|def", "abdef"},
	}
	for _, c := range cases {
		depth, err := Match(c.pattern, c.input, StrategyDepth)
		require.NoError(t, err)
		breadth, err := Match(c.pattern, c.input, StrategyBreadth)
		require.NoError(t, err)
		require.Equalf(t, depth, breadth, "pattern=%q input=%q", c.pattern, c.input)
	}
}

func TestEmptyPatternPolicy(t *testing.T) {
	for _, strategy := range strategies {
		ok, err := Match("", "", strategy)
		require.NoError(t, err)
		require.True(t, ok)

		_, err = Match("", "abc", strategy)
		require.Error(t, err)
		require.True(t, IsEmpty(err))
	}
}

func TestLeadingOperatorsAreParseErrors(t *testing.T) {
	for _, pattern := range []string{"+b", "*b", "?b", "|b"} {
		for _, strategy := range strategies {
			_, err := Match(pattern, "bbb", strategy)
			require.Error(t, err)
		}
	}
}

func TestPathologicalInputStaysBounded(t *testing.T) {
	// Property 5: breadth-first terminates quickly on a pattern that would
	// make a naive backtracker without state dedup explode: 25 optional a's followed by
	// 25 mandatory a's, against only 24 a's of input -- one short of the
	// minimum the mandatory tail requires at every start position, forcing
	// a naive backtracker to try all 2^25 optional-match combinations
	// before concluding failure.
	const n = 25
	pattern := ""
	for i := 0; i < n; i++ {
		pattern += "a?"
	}
	for i := 0; i < n; i++ {
		pattern += "a"
	}
	input := ""
	for i := 0; i < n-1; i++ {
		input += "a"
	}

	ok, err := Match(pattern, input, StrategyBreadth)
	require.NoError(t, err)
	require.False(t, ok)
}
