package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/askiada/go-chain/pkg/pipeline/model"
)

// DebugSink receives every lifecycle message of a pipeline.
type DebugSink func(msg string)

// Wrapper turns a plugin into its executable form. It is applied once, at registration.
type Wrapper func(plugin Plugin, opts *Options) Func

// Options holds the configuration of a pipeline.
type Options struct {
	// EnsureName rejects anonymous steps at registration.
	EnsureName bool
	// Wrapper is applied to every Func and Plugin. Defaults to BasicWrapper.
	Wrapper Wrapper
	// Inject is appended to the arguments of every step.
	Inject []any
	// Debug receives the lifecycle messages. Defaults to an info level slog logger on stdout.
	Debug DebugSink
	// Exit handles unrecoverable errors. Defaults to Exit.
	Exit ExitFunc
	// Hooks observe registration and execution.
	Hooks []model.PipelineOption

	steps []Step
}

// Debugf formats and sends a message to the debug sink.
func (o *Options) Debugf(format string, args ...any) {
	if o.Debug == nil {
		return
	}

	o.Debug(fmt.Sprintf(format, args...))
}

// Fail hands err to the exit handler. An error that already went through an exit handler is
// returned untouched, so the handler is called once per failure. The returned error is only
// seen when the handler does not terminate the process.
func (o *Options) Fail(err error) error {
	if err == nil || IsHalted(err) {
		return err
	}

	exit := o.Exit
	if exit == nil {
		exit = Exit
	}

	exit(err)

	return &haltedError{err: err}
}

func defaultOptions() *Options {
	return &Options{
		Wrapper: BasicWrapper,
		Debug:   SlogSink(slog.New(slog.NewTextHandler(os.Stdout, nil)), slog.LevelInfo),
		Exit:    Exit,
	}
}

// SlogSink sends the debug messages to logger at level.
func SlogSink(logger *slog.Logger, level slog.Level) DebugSink {
	return func(msg string) {
		logger.Log(context.Background(), level, msg)
	}
}

type Option func(o *Options)

// WithEnsureName rejects anonymous steps.
func WithEnsureName() Option {
	return func(o *Options) {
		o.EnsureName = true
	}
}

func WithWrapper(wrapper Wrapper) Option {
	return func(o *Options) {
		o.Wrapper = wrapper
	}
}

// WithInject appends deps to the dependencies given to every step.
func WithInject(deps ...any) Option {
	return func(o *Options) {
		o.Inject = append(o.Inject, deps...)
	}
}

func WithDebug(sink DebugSink) Option {
	return func(o *Options) {
		o.Debug = sink
	}
}

func WithExit(exit ExitFunc) Option {
	return func(o *Options) {
		o.Exit = exit
	}
}

func WithHooks(hooks ...model.PipelineOption) Option {
	return func(o *Options) {
		o.Hooks = append(o.Hooks, hooks...)
	}
}

// WithSteps registers steps once every other option has been applied.
func WithSteps(steps ...Step) Option {
	return func(o *Options) {
		o.steps = append(o.steps, steps...)
	}
}
