// Command zerosh is a small job-control shell, bundled with the regex
// engine it's built to exercise via the "match" subcommand.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcorbin/zerosh/internal/logio"
	"github.com/jcorbin/zerosh/internal/regex"
	"github.com/jcorbin/zerosh/internal/shell"
)

func main() {
	log := logio.Logger{}
	log.SetOutput(os.Stderr)
	defer os.Exit(log.ExitCode())

	root := newRootCmd(&log)
	if err := root.Execute(); err != nil {
		log.Errorf("%v", err)
	}
}

func newRootCmd(log *logio.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "zerosh",
		Short:         "A job-control shell with a built-in regex matcher",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(log)
		},
	}
	root.AddCommand(newShellCmd(log))
	root.AddCommand(newMatchCmd(log))
	return root
}

func newShellCmd(log *logio.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Run the interactive job-control shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShell(log)
		},
	}
}

func runShell(log *logio.Logger) error {
	sh := shell.New(shell.HistoryPath(), log)
	code, err := sh.Run()
	if err != nil {
		return err
	}
	if code != 0 {
		os.Exit(code)
	}
	return nil
}

func newMatchCmd(log *logio.Logger) *cobra.Command {
	var strategyName string
	var dump bool

	cmd := &cobra.Command{
		Use:   "match PATTERN INPUT",
		Short: "Match a regex pattern against an input string",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy, err := parseStrategy(strategyName)
			if err != nil {
				return err
			}

			pattern, input := args[0], args[1]

			if dump {
				cp, err := regex.CompilePattern(pattern)
				if err != nil {
					return err
				}
				if err := cp.Disassemble(cmd.OutOrStdout()); err != nil {
					return err
				}
			}

			ok, err := regex.Match(pattern, input, strategy)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			if !ok {
				os.Exit(1)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&strategyName, "strategy", "depth", `evaluator strategy: "depth" or "breadth"`)
	cmd.Flags().BoolVar(&dump, "dump", false, "print the compiled program before matching")
	return cmd
}

func parseStrategy(name string) (regex.Strategy, error) {
	switch name {
	case "depth":
		return regex.StrategyDepth, nil
	case "breadth":
		return regex.StrategyBreadth, nil
	default:
		return 0, fmt.Errorf("zerosh: unknown strategy %q (want \"depth\" or \"breadth\")", name)
	}
}
