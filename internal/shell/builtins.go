package shell

import "golang.org/x/sys/unix"

// dispatchBuiltin runs a built-in if stages[0] names one, reporting whether
// it was handled at all. A multi-stage pipeline never names a built-in
// (built-ins only ever run as a single stage). Grounded on
// built_in_cmd.rs's built_in_cmd.
func (w *Worker) dispatchBuiltin(stages []Stage, reply chan<- ShellMsg) bool {
	if len(stages) > 1 {
		return false
	}
	stage := stages[0]
	switch stage.Name {
	case "exit":
		w.runExit(stage.Args, reply)
		return true
	case "fg":
		w.runFg(stage.Args, reply)
		return true
	case "jobs":
		w.logf("ERROR", "jobs: not implemented")
		w.exitVal = 1
		reply <- ShellMsg{Kind: ShellContinue, Code: w.exitVal}
		return true
	case "cd":
		w.logf("ERROR", "cd: not implemented")
		w.exitVal = 1
		reply <- ShellMsg{Kind: ShellContinue, Code: w.exitVal}
		return true
	default:
		return false
	}
}

// runExit refuses to exit while any job is outstanding. Otherwise it quits
// with the given argument (an integer exit code) or, absent an argument,
// the last command's exit status.
func (w *Worker) runExit(args []string, reply chan<- ShellMsg) {
	if len(w.jobs) != 0 {
		w.logf("ERROR", "cannot exit while jobs are running")
		w.exitVal = 1
		reply <- ShellMsg{Kind: ShellContinue, Code: w.exitVal}
		return
	}

	exitVal := w.exitVal
	if len(args) > 0 {
		n, ok := parseIntArg(args[0])
		if !ok {
			w.logf("ERROR", "%s is not a valid argument", args[0])
			w.exitVal = 1
			reply <- ShellMsg{Kind: ShellContinue, Code: w.exitVal}
			return
		}
		exitVal = n
	}

	reply <- ShellMsg{Kind: ShellQuit, Code: exitVal}
}

// runFg looks up job n, transfers it to the foreground, and sends it
// SIGCONT. It never replies itself on success -- the eventual reap (job
// exits) or stop (job re-suspends) will.
func (w *Worker) runFg(args []string, reply chan<- ShellMsg) {
	w.exitVal = 1

	if len(args) < 1 {
		w.logf("ERROR", "usage: fg <job id>")
		reply <- ShellMsg{Kind: ShellContinue, Code: w.exitVal}
		return
	}

	n, ok := parseIntArg(args[0])
	if ok {
		if rec, exists := w.jobs[n]; exists {
			w.logf("", "[%d] resumed\t%s", n, rec.Line)

			pgid := rec.Pgid
			w.fg = &pgid
			if err := tcsetpgrp(stdinFd, pgid); err != nil {
				w.logf("ERROR", "transferring terminal to pgid %d: %v", pgid, err)
			}
			if err := unix.Kill(-pgid, unix.SIGCONT); err != nil {
				w.logf("ERROR", "resuming job %d: %v", n, err)
			}
			return
		}
	}

	w.logf("ERROR", "no such job: %s", args[0])
	reply <- ShellMsg{Kind: ShellContinue, Code: w.exitVal}
}
