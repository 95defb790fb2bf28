package shell

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunExitRefusesWhileJobsOutstanding(t *testing.T) {
	w := newTestWorker()
	w.insertJob(0, 1001, map[int]ProcInfo{1001: {State: ProcRun, Pgid: 1001}}, "sleep 100")

	reply := make(chan ShellMsg, 1)
	w.runExit(nil, reply)

	msg := <-reply
	require.Equal(t, ShellContinue, msg.Kind)
	require.Equal(t, 1, w.exitVal)
}

func TestRunExitDefaultsToLastStatus(t *testing.T) {
	w := newTestWorker()
	w.exitVal = 7

	reply := make(chan ShellMsg, 1)
	w.runExit(nil, reply)

	msg := <-reply
	require.Equal(t, ShellQuit, msg.Kind)
	require.Equal(t, 7, msg.Code)
}

func TestRunExitWithExplicitCode(t *testing.T) {
	w := newTestWorker()
	reply := make(chan ShellMsg, 1)
	w.runExit([]string{"3"}, reply)

	msg := <-reply
	require.Equal(t, ShellQuit, msg.Kind)
	require.Equal(t, 3, msg.Code)
}

func TestRunExitWithBadArgument(t *testing.T) {
	w := newTestWorker()
	reply := make(chan ShellMsg, 1)
	w.runExit([]string{"nope"}, reply)

	msg := <-reply
	require.Equal(t, ShellContinue, msg.Kind)
	require.Equal(t, 1, w.exitVal)
}

func TestRunFgUsageError(t *testing.T) {
	w := newTestWorker()
	reply := make(chan ShellMsg, 1)
	w.runFg(nil, reply)

	msg := <-reply
	require.Equal(t, ShellContinue, msg.Kind)
	require.Equal(t, 1, w.exitVal)
}

func TestRunFgUnknownJob(t *testing.T) {
	w := newTestWorker()
	reply := make(chan ShellMsg, 1)
	w.runFg([]string{"9"}, reply)

	msg := <-reply
	require.Equal(t, ShellContinue, msg.Kind)
	require.Equal(t, 1, w.exitVal)
}

func TestDispatchBuiltinSkipsMultiStage(t *testing.T) {
	w := newTestWorker()
	stages := []Stage{{Name: "exit"}, {Name: "cat"}}
	require.False(t, w.dispatchBuiltin(stages, nil))
}

func TestDispatchBuiltinJobsAndCdAreNotImplemented(t *testing.T) {
	for _, name := range []string{"jobs", "cd"} {
		w := newTestWorker()
		reply := make(chan ShellMsg, 1)
		handled := w.dispatchBuiltin([]Stage{{Name: name}}, reply)
		require.True(t, handled)
		msg := <-reply
		require.Equal(t, ShellContinue, msg.Kind)
		require.Equal(t, 1, w.exitVal)
	}
}
