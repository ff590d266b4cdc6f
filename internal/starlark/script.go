package starlark

import (
	"context"
	"fmt"
	"log/slog"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// ScriptError represents an error while running a preset script.
type ScriptError struct {
	File    string
	Message string
}

func (e *ScriptError) Error() string {
	return fmt.Sprintf("%s: %s", e.File, e.Message)
}

type options struct {
	logger   *slog.Logger
	defaults map[string]any
}

// Option configures Exec.
type Option func(*options)

// WithLogger routes script print() output to logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithDefaults replaces the values exposed as the `defaults` global.
func WithDefaults(d map[string]any) Option {
	return func(o *options) {
		o.defaults = d
	}
}

// Exec runs a preset script and returns the engine document recorded by
// its engine() call. The script is cancelled when ctx is done.
func Exec(ctx context.Context, filename string, src []byte, opts ...Option) (map[string]any, error) {
	o := options{
		logger:   slog.New(slog.DiscardHandler),
		defaults: Defaults(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	predeclared, err := Predeclared(o.defaults)
	if err != nil {
		return nil, &ScriptError{File: filename, Message: err.Error()}
	}

	thread := newThread(filename, o.logger)
	stop := context.AfterFunc(ctx, func() {
		thread.Cancel(context.Cause(ctx).Error())
	})
	defer stop()

	if _, err := starlark.ExecFileOptions(&syntax.FileOptions{}, thread, filename, src, predeclared); err != nil {
		msg := err.Error()
		if evalErr, ok := err.(*starlark.EvalError); ok {
			msg = evalErr.Backtrace()
		}
		return nil, &ScriptError{File: filename, Message: msg}
	}

	doc, _ := thread.Local(resultKey).(map[string]any)
	if doc == nil {
		return nil, &ScriptError{File: filename, Message: "script never called engine()"}
	}
	o.logger.Debug("executed preset script", slog.String("file", filename))
	return doc, nil
}
