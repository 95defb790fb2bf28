/*
Package shell implements a small interactive job-control shell: one
pipeline per line, at most two stages, built-ins for exit and fg, and
SIGCHLD-driven asynchronous reaping of background process groups.

Three goroutines cooperate with no shared locks: a reader (shell.go) drives
the line editor and owns the terminal prompt; a signal relay (signals.go)
forwards SIGINT/SIGTSTP/SIGCHLD as WorkerMsg values; and a worker (worker.go)
is the single owner of all job-control state (job.go), consuming both
command lines and relayed signals off one channel and replying to the
reader over another. Process spawning and reaping (child.go) and the two
built-ins (builtins.go) are only ever called from the worker goroutine.
*/
package shell
