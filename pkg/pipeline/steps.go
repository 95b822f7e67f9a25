package pipeline

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
)

// Step is anything that can be registered in a pipeline: a Func, a Plugin, a *Pipeline or a
// Runner made a step with Runnable.
type Step interface {
	fmt.Stringer

	isStep()
}

// Func is a plain step. args holds the output of the previous step followed by the injected
// dependencies. Returning a nil Result is the same as returning Empty.
type Func func(ctx context.Context, args ...any) (Result, error)

func (Func) isStep() {}

func (f Func) String() string {
	return describe(f)
}

// Plugin is a plain step with an explicit name.
type Plugin struct {
	Name string
	Fn   Func
}

// Named gives fn a name used in logs and history.
func Named(name string, fn Func) Plugin {
	return Plugin{Name: name, Fn: fn}
}

func (Plugin) isStep() {}

func (p Plugin) String() string {
	if p.Name != "" {
		return p.Name
	}

	return describe(p.Fn)
}

func (p Plugin) anonymous() bool {
	return p.Name == "" && funcName(p.Fn) == ""
}

// Runner is a step that knows how to run itself. It is registered as is, without wrapper.
type Runner interface {
	Run(ctx context.Context, args ...any) (Result, error)
	String() string
}

type runnerStep struct {
	Runner
}

// Runnable makes r a step. A *Pipeline given to Runnable is nested like any other pipeline.
func Runnable(r Runner) Step {
	return runnerStep{Runner: r}
}

func (runnerStep) isStep() {}

func (r runnerStep) String() string {
	if r.Runner == nil {
		return "<nil>"
	}

	return r.Runner.String()
}

// safeCall runs fn and turns a panic into an error.
func safeCall(ctx context.Context, fn Func, args []any) (res Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if rErr, ok := r.(error); ok {
				err = errors.Wrap(rErr, "panic")

				return
			}

			err = errors.Errorf("panic: %v", r)
		}
	}()

	res, err = fn(ctx, args...)
	if err != nil {
		return nil, err
	}

	if args, ok := res.(*Arguments); res == nil || ok && args == nil {
		res = Empty()
	}

	return res, nil
}
