package shell

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/jcorbin/zerosh/internal/flushio"
	"github.com/jcorbin/zerosh/internal/logio"
	"github.com/jcorbin/zerosh/internal/runeio"
)

const historyFileName = ".zerosh_history"

// HistoryPath resolves the history file the same way launcher.rs's
// launch_shell does: $HOME/.zerosh_history, or the bare file name if HOME
// can't be resolved.
func HistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return historyFileName
	}
	return filepath.Join(home, historyFileName)
}

// Shell is the interactive REPL: it owns the line editor and drives the
// worker/signal-relay goroutines via channels, with no shared locks between
// them. Grounded on shell_main.rs's Shell.
type Shell struct {
	HistoryFile string
	Log         *logio.Logger

	// out is flushed immediately before every blocking Readline call, the
	// same discipline the teacher's Core applies to its own output stream
	// before blocking on the next input rune (see internal/flushio).
	out flushio.WriteFlusher
}

// New returns a Shell whose history is read from and written to path.
func New(path string, log *logio.Logger) *Shell {
	return &Shell{
		HistoryFile: path,
		Log:         log,
		out:         flushio.NewWriteFlusher(os.Stderr),
	}
}

// Run drives the REPL until the "exit" built-in or EOF terminates it,
// returning the process exit code. Grounded on shell_main.rs's Shell::run.
func (sh *Shell) Run() (int, error) {
	if !term.IsTerminal(stdinFd) {
		sh.logf("ERROR", "stdin is not a controlling terminal, job control is unavailable")
		return 1, errors.New("shell: stdin is not a terminal")
	}

	ignoreSIGTTOU()

	worker, err := NewWorker(sh.Log)
	if err != nil {
		return 1, err
	}

	workerCh := make(chan WorkerMsg)
	replyCh := make(chan ShellMsg)
	spawnSignalRelay(workerCh)
	worker.Spawn(workerCh, replyCh)

	rl, err := readline.NewEx(&readline.Config{
		HistoryFile:       sh.HistoryFile,
		HistoryLimit:      10000,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		sh.logf("ERROR", "could not start line editor: %v", err)
		return 1, err
	}
	defer rl.Close()

	prev := 0
	for {
		rl.SetPrompt(promptFor(prev))

		if err := sh.out.Flush(); err != nil {
			sh.logf("ERROR", "flushing output: %v", err)
		}
		line, err := rl.Readline()
		switch {
		case err == nil:
			trimmed := strings.TrimSpace(line)
			if trimmed == "" {
				continue
			}

			workerCh <- CmdMsg(line)
			msg := <-replyCh
			switch msg.Kind {
			case ShellContinue:
				prev = msg.Code
			case ShellQuit:
				return msg.Code, nil
			}

		case errors.Is(err, readline.ErrInterrupt):
			runeio.WriteANSIString(sh.out, "zerosh: to exit, use Ctrl-D\n")

		case errors.Is(err, io.EOF):
			workerCh <- CmdMsg("exit")
			msg := <-replyCh
			if msg.Kind != ShellQuit {
				return 1, errors.New("shell: exit built-in did not quit on EOF")
			}
			return msg.Code, nil

		default:
			sh.logf("ERROR", "reading input: %v", err)
			return 1, err
		}
	}
}

func (sh *Shell) logf(level, mess string, args ...interface{}) {
	if sh.Log == nil {
		return
	}
	sh.Log.Printf(level, mess, args...)
}

// promptFor alternates the prompt glyph depending on whether the last
// command's exit status was zero.
func promptFor(lastExit int) string {
	if lastExit == 0 {
		return "zerosh :) %> "
	}
	return "zerosh :( %> "
}
