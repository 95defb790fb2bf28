package shell

import (
	"io"
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"

	"github.com/jcorbin/zerosh/internal/logio"
)

// stdinFd is the fd the shell's controlling terminal is opened on -- always
// 0 for an interactive shell reading from stdin.
const stdinFd = 0

// tcsetpgrp transfers foreground process group ownership of the controlling
// terminal to pgid. Go's standard library has no equivalent of nix's
// tcsetpgrp, so we reach for golang.org/x/sys/unix's ioctl wrapper around
// TIOCSPGRP -- the same ioctl tcsetpgrp(3) itself is built on.
func tcsetpgrp(fd, pgid int) error {
	return unix.IoctlSetPointerInt(fd, unix.TIOCSPGRP, pgid)
}

// tcgetpgrp reads the controlling terminal's current foreground pgid.
func tcgetpgrp(fd int) (int, error) {
	return unix.IoctlGetInt(fd, unix.TIOCGPGRP)
}

// spawnChild assigns a job id, wires up a pipe for a two-stage pipeline (if
// any), forks+execs each stage into pgid, installs the job, and transfers
// the terminal to it. Grounded on child_handler.rs's spawn_child.
func (w *Worker) spawnChild(line string, stages []Stage) error {
	if len(stages) == 0 {
		return &PipelineShapeError{Stages: 0}
	}
	if len(stages) > 2 {
		return &PipelineShapeError{Stages: len(stages)}
	}

	jobID, err := w.newJobID()
	if err != nil {
		return err
	}

	var pipeR, pipeW *os.File
	if len(stages) == 2 {
		pipeR, pipeW, err = os.Pipe()
		if err != nil {
			return &SpawnError{Stage: stages[1].Name, Err: err}
		}
		defer func() {
			pipeR.Close()
			pipeW.Close()
		}()
	}

	cmd0, err := forkExec(0, stages[0], nil, pipeW, w.stageStderr(stages[0].Name))
	if err != nil {
		return &SpawnError{Stage: stages[0].Name, Err: err}
	}
	pgid := cmd0.Process.Pid

	pids := map[int]ProcInfo{
		pgid: {State: ProcRun, Pgid: pgid},
	}

	if len(stages) == 2 {
		cmd1, err := forkExec(pgid, stages[1], pipeR, nil, w.stageStderr(stages[1].Name))
		if err != nil {
			return &SpawnError{Stage: stages[1].Name, Err: err}
		}
		pids[cmd1.Process.Pid] = ProcInfo{State: ProcRun, Pgid: pgid}
	}

	w.fg = &pgid
	w.insertJob(jobID, pgid, pids, line)
	if err := tcsetpgrp(stdinFd, pgid); err != nil {
		w.logf("ERROR", "transferring terminal to pgid %d: %v", pgid, err)
	}
	return nil
}

// stageStderr returns the io.Writer a pipeline stage's stderr should be
// wired to: when the worker has a logger, child stderr is line-buffered and
// tagged through internal/logio.Writer so it interleaves with the shell's
// own diagnostics under the same "level: message" convention instead of
// racing raw bytes onto the terminal; with no logger it falls back to a
// direct os.Stderr passthrough.
func (w *Worker) stageStderr(name string) io.Writer {
	if w.log == nil {
		return os.Stderr
	}
	return &logio.Writer{
		Logf: func(mess string, args ...interface{}) {
			w.log.Printf(name, mess, args...)
		},
	}
}

// forkExec starts one pipeline stage in process group pgid (0 meaning "make
// a new group from this process's own pid"), wiring stdin/stdout from the
// given pipe ends when non-nil. Using os/exec.Cmd with SysProcAttr is the
// idiomatic Go substitute for the original's raw fork+setpgid+dup2+execvp:
// Go cannot safely fork a multi-threaded runtime without exec'ing
// immediately, so os/exec's internal fork+exec machinery (which already
// marks every other open fd close-on-exec) stands in for both the manual
// dup2 dance and the original's fixed fd-closing loop.
func forkExec(pgid int, stage Stage, stdin, stdout *os.File, stderr io.Writer) (*exec.Cmd, error) {
	cmd := exec.Command(stage.Name, stage.Args...)
	cmd.Stderr = stderr
	if stdin != nil {
		cmd.Stdin = stdin
	} else {
		cmd.Stdin = os.Stdin
	}
	if stdout != nil {
		cmd.Stdout = stdout
	} else {
		cmd.Stdout = os.Stdout
	}
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
		Pgid:    pgid,
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// reapChildren drains every pending child state change with a non-blocking
// wait4, dispatching each to the matching process/job transition. Returns
// true if wait4 failed unrecoverably, in which case it has already sent a
// terminal ShellMsg and the caller must stop the worker loop -- per spec,
// an unrecoverable wait error is fatal to the whole shell, matching
// child_handler.rs's wait_child calling exit(1) directly.
func (w *Worker) reapChildren(reply chan<- ShellMsg) bool {
	for {
		var status unix.WaitStatus
		pid, err := unix.Wait4(-1, &status, unix.WUNTRACED|unix.WNOHANG|unix.WCONTINUED, nil)
		if err == unix.EINTR {
			continue
		}
		if err == unix.ECHILD {
			return false
		}
		if err != nil {
			w.logf("ERROR", "%v", &WaitError{Err: err})
			reply <- ShellMsg{Kind: ShellQuit, Code: 1}
			return true
		}
		if pid <= 0 {
			return false
		}

		switch {
		case status.Exited():
			w.exitVal = status.ExitStatus()
			w.processTerm(pid, reply)
		case status.Signaled():
			w.logf("", "child terminated by signal: pid = %d, signal = %s", pid, status.Signal())
			w.exitVal = int(status.Signal()) + 128
			w.processTerm(pid, reply)
		case status.Stopped():
			w.processStop(pid, reply)
		case status.Continued():
			w.processContinue(pid)
		}
	}
}

func (w *Worker) processTerm(pid int, reply chan<- ShellMsg) {
	jobID, pgid, ok := w.removePid(pid)
	if !ok {
		return
	}
	w.manageJob(jobID, pgid, reply)
}

func (w *Worker) processStop(pid int, reply chan<- ShellMsg) {
	w.setPidState(pid, ProcStop)
	info, ok := w.pidToInfo[pid]
	if !ok {
		return
	}
	entry, ok := w.pgidToPids[info.Pgid]
	if !ok {
		return
	}
	w.manageJob(entry.JobID, info.Pgid, reply)
}

func (w *Worker) processContinue(pid int) {
	w.setPidState(pid, ProcRun)
}

// manageJob is the after-reap state machine: if pgid is the foreground
// group, a now-empty group means the job finished (report + return the
// terminal), an all-stopped group means the job was suspended (report +
// return the terminal but keep the job). A background group (reserved for
// future use) is only ever removed, never reported as stopped. Grounded on
// child_handler.rs's manage_job.
func (w *Worker) manageJob(jobID, pgid int, reply chan<- ShellMsg) {
	isFg := w.fg != nil && *w.fg == pgid
	rec, ok := w.jobs[jobID]
	if !ok {
		return
	}

	switch {
	case isFg && w.isGroupEmpty(pgid):
		w.logf("", "[%d] terminated\t%s", jobID, rec.Line)
		w.removeJob(jobID)
		w.setShellFg(reply)
	case isFg && w.isGroupStopped(pgid):
		w.logf("", "[%d] stopped\t%s", jobID, rec.Line)
		w.setShellFg(reply)
	case !isFg && w.isGroupEmpty(pgid):
		w.logf("", "[%d] terminated\t%s", jobID, rec.Line)
		w.removeJob(jobID)
	}
}

// setShellFg returns the terminal to the shell's own process group, clears
// fg, and sends the deferred Continue reply for the job that just
// terminated or stopped.
func (w *Worker) setShellFg(reply chan<- ShellMsg) {
	w.fg = nil
	if err := tcsetpgrp(stdinFd, w.shellPgid); err != nil {
		w.logf("ERROR", "returning terminal to shell: %v", err)
	}
	reply <- ShellMsg{Kind: ShellContinue, Code: w.exitVal}
}
