package shell

import "strings"

// Stage is one whitespace-tokenized pipeline stage: a command name and its
// arguments. No quoting, globbing, or redirection is recognized -- tokens
// are exactly what strings.Fields produces.
type Stage struct {
	Name string
	Args []string
}

// parseCmdLine splits line into pipeline stages, one per newline, discarding
// any stage whose first token is empty (a blank line). Grounded on
// worker.rs's parse_cmd: split_ascii_whitespace per line, filter empty
// heads.
func parseCmdLine(line string) []Stage {
	var stages []Stage
	for _, l := range strings.Split(line, "\n") {
		fields := strings.Fields(l)
		if len(fields) == 0 {
			continue
		}
		stages = append(stages, Stage{Name: fields[0], Args: fields[1:]})
	}
	return stages
}
