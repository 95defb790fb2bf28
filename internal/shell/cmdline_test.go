package shell

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseCmdLine(t *testing.T) {
	cases := []struct {
		name string
		line string
		want []Stage
	}{
		{"single", "echo hello world", []Stage{{Name: "echo", Args: []string{"hello", "world"}}}},
		{"pipeline", "echo hi\ncat", []Stage{
			{Name: "echo", Args: []string{"hi"}},
			{Name: "cat", Args: []string{}},
		}},
		{"blank lines dropped", "echo hi\n\n   \ncat", []Stage{
			{Name: "echo", Args: []string{"hi"}},
			{Name: "cat", Args: []string{}},
		}},
		{"empty", "", nil},
		{"whitespace only", "   \t  ", nil},
		{"extra whitespace collapses", "  echo    hi  ", []Stage{{Name: "echo", Args: []string{"hi"}}}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := parseCmdLine(c.line)
			if diff := cmp.Diff(c.want, got); diff != "" {
				t.Errorf("parseCmdLine(%q) mismatch (-want +got):\n%s", c.line, diff)
			}
		})
	}
}
