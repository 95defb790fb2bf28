package shell

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestWorkerRunsForegroundPipelineToCompletion drives the worker's full
// message loop (minus the real signal-relay goroutine, whose job here is
// played by hand) through spawning "echo", then manually delivering the
// SIGCHLD the OS would otherwise raise, and checks that the deferred
// Continue reply carries the child's real exit status.
func TestWorkerRunsForegroundPipelineToCompletion(t *testing.T) {
	w := newTestWorker()
	in := make(chan WorkerMsg)
	reply := make(chan ShellMsg)
	w.Spawn(in, reply)

	in <- CmdMsg("echo hi")

	require.Eventually(t, func() bool {
		in <- SignalMsg(sigchld)
		select {
		case msg := <-reply:
			require.Equal(t, ShellContinue, msg.Kind)
			require.Equal(t, 0, msg.Code)
			return true
		case <-time.After(20 * time.Millisecond):
			return false
		}
	}, 2*time.Second, 20*time.Millisecond)

	close(in)
}

func TestWorkerBlankLineRepliesContinueImmediately(t *testing.T) {
	w := newTestWorker()
	in := make(chan WorkerMsg)
	reply := make(chan ShellMsg)
	w.Spawn(in, reply)

	w.exitVal = 5
	in <- CmdMsg("   ")

	select {
	case msg := <-reply:
		require.Equal(t, ShellContinue, msg.Kind)
		require.Equal(t, 5, msg.Code)
	case <-time.After(time.Second):
		t.Fatal("expected an immediate Continue reply for a blank line")
	}

	close(in)
}
