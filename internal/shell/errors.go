package shell

import "fmt"

// SpawnError reports that a pipeline stage could not be forked/exec'd.
// Grounded on child_handler.rs's "プロセス生成エラー" diagnostic.
type SpawnError struct {
	Stage string
	Err   error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("shell: spawning %q: %v", e.Stage, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }

// PipelineShapeError reports an unsupported pipeline shape: zero stages, or
// more than the two this shell supports.
type PipelineShapeError struct {
	Stages int
}

func (e *PipelineShapeError) Error() string {
	if e.Stages == 0 {
		return "shell: empty command"
	}
	return fmt.Sprintf("shell: pipes of %d or more commands are not supported", e.Stages)
}

// WaitError reports an unrecoverable failure from the child reaper's wait4
// loop. Per spec, this is fatal: the shell process exits.
type WaitError struct {
	Err error
}

func (e *WaitError) Error() string { return fmt.Sprintf("shell: wait failed: %v", e.Err) }

func (e *WaitError) Unwrap() error { return e.Err }

// BuiltinUsageError reports a built-in invoked with the wrong shape of
// arguments (e.g. "fg" with no job number).
type BuiltinUsageError struct {
	Name  string
	Usage string
}

func (e *BuiltinUsageError) Error() string {
	return fmt.Sprintf("shell: usage: %s %s", e.Name, e.Usage)
}
