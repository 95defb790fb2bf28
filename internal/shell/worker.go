package shell

import (
	"strconv"

	"github.com/jcorbin/zerosh/internal/logio"
	"github.com/jcorbin/zerosh/internal/panicerr"
)

// WorkerMsg is what the reader and signal-relay goroutines send to the
// worker: either a line of input to run, or a relayed signal number.
type WorkerMsg struct {
	Cmd    string
	Signal int
	isCmd  bool
}

// CmdMsg builds a WorkerMsg carrying a command line.
func CmdMsg(line string) WorkerMsg { return WorkerMsg{Cmd: line, isCmd: true} }

// SignalMsg builds a WorkerMsg carrying a relayed signal number.
func SignalMsg(sig int) WorkerMsg { return WorkerMsg{Signal: sig} }

// ShellMsgKind distinguishes the two replies the worker ever sends back to
// the reader.
type ShellMsgKind int

const (
	ShellContinue ShellMsgKind = iota
	ShellQuit
)

// ShellMsg is the worker's reply to the reader: either "keep reading, the
// last exit status was Code" or "stop the REPL with exit code Code".
type ShellMsg struct {
	Kind ShellMsgKind
	Code int
}

// Worker owns all job-control state and is the sole writer of it; every
// field below is touched only from the goroutine started by spawn.
// Grounded on worker.rs's Worker struct.
type Worker struct {
	exitVal    int
	fg         *int
	jobs       map[int]jobRecord
	pgidToPids map[int]pgidEntry
	pidToInfo  map[int]ProcInfo
	shellPgid  int
	maxJobs    int

	log *logio.Logger
}

// NewWorker constructs a worker whose shell process group is read from the
// controlling terminal (stdin). log receives every diagnostic the worker
// would otherwise print directly to stderr.
func NewWorker(log *logio.Logger) (*Worker, error) {
	pgid, err := tcgetpgrp(stdinFd)
	if err != nil {
		return nil, err
	}
	return &Worker{
		jobs:       make(map[int]jobRecord),
		pgidToPids: make(map[int]pgidEntry),
		pidToInfo:  make(map[int]ProcInfo),
		shellPgid:  pgid,
		maxJobs:    defaultMaxJobs,
		log:        log,
	}, nil
}

func (w *Worker) logf(level, mess string, args ...interface{}) {
	if w.log == nil {
		return
	}
	w.log.Printf(level, mess, args...)
}

// Spawn starts the worker's single message loop in its own goroutine and
// returns immediately, mirroring worker.rs's Worker::spawn. The loop is
// wrapped in panicerr.Recover: a panic or stray runtime.Goexit inside it is
// turned into a terminal ShellMsg (exit code 70, in the spirit of
// EX_SOFTWARE) delivered to reply, so the reader is guaranteed to make
// progress even if the worker crashes -- the original Rust thread has no
// equivalent, since a panicking std::thread just leaves the reader's
// sync_channel recv blocked forever.
func (w *Worker) Spawn(in <-chan WorkerMsg, reply chan<- ShellMsg) {
	go func() {
		err := panicerr.Recover("shell worker", func() error {
			w.run(in, reply)
			return nil
		})
		if err != nil {
			w.logf("ERROR", "worker crashed: %v", err)
			reply <- ShellMsg{Kind: ShellQuit, Code: 70}
		}
	}()
}

func (w *Worker) run(in <-chan WorkerMsg, reply chan<- ShellMsg) {
	for msg := range in {
		if msg.isCmd {
			w.handleCmd(msg.Cmd, reply)
			continue
		}
		if msg.Signal == sigchld {
			if fatal := w.reapChildren(reply); fatal {
				return
			}
		}
	}
}

func (w *Worker) handleCmd(line string, reply chan<- ShellMsg) {
	stages := parseCmdLine(line)
	if len(stages) == 0 {
		reply <- ShellMsg{Kind: ShellContinue, Code: w.exitVal}
		return
	}

	if handled := w.dispatchBuiltin(stages, reply); handled {
		return
	}

	if err := w.spawnChild(line, stages); err != nil {
		w.logf("ERROR", "%v", err)
		reply <- ShellMsg{Kind: ShellContinue, Code: w.exitVal}
	}
}

// parseIntArg is a small shared helper for the built-ins' numeric argument
// parsing (exit code, job id).
func parseIntArg(s string) (int, bool) {
	n, err := strconv.Atoi(s)
	return n, err == nil
}
