package starlark

import (
	"log/slog"

	"go.starlark.net/starlark"
)

// maxExecutionSteps bounds a single script run.
const maxExecutionSteps = 10_000_000

// newThread creates a thread whose print() goes to the debug log.
func newThread(name string, logger *slog.Logger) *starlark.Thread {
	thread := &starlark.Thread{
		Name: name,
		Print: func(t *starlark.Thread, msg string) {
			logger.Debug(msg, slog.String("script", t.Name))
		},
	}
	thread.SetMaxExecutionSteps(maxExecutionSteps)
	return thread
}
