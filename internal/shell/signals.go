package shell

import (
	"os"
	"os/signal"
	"syscall"
)

const (
	sigint  = int(syscall.SIGINT)
	sigtstp = int(syscall.SIGTSTP)
	sigchld = int(syscall.SIGCHLD)
)

// ignoreSIGTTOU ignores SIGTTOU process-wide. The shell repeatedly calls
// tcsetpgrp on its own pgid's behalf; without ignoring SIGTTOU first, doing
// so from a background process group would stop the shell itself. Must run
// before any tcsetpgrp call. Grounded on shell_main.rs's
// signal(Signal::SIGTTOU, SigHandler::SigIgn).
func ignoreSIGTTOU() {
	signal.Ignore(syscall.SIGTTOU)
}

// spawnSignalRelay forwards SIGINT, SIGTSTP, and SIGCHLD to the worker as
// WorkerMsg values, for as long as the process runs. Go delivers signals to
// an ordinary goroutine through os/signal.Notify already, so -- unlike the
// original's need for the signal_hook crate's async-signal-safety shims --
// no third-party signal library is needed here; this is the idiomatic Go
// realization of signal_handler.rs's spawn_sig_handler.
func spawnSignalRelay(out chan<- WorkerMsg) {
	sigs := make(chan os.Signal, 16)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTSTP, syscall.SIGCHLD)
	go func() {
		for sig := range sigs {
			out <- SignalMsg(int(sig.(syscall.Signal)))
		}
	}()
}
