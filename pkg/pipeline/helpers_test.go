package pipeline_test

import (
	"context"
	"sync"
	"testing"

	"github.com/askiada/go-chain/pkg/pipeline"
)

type recorder struct {
	mu   sync.Mutex
	msgs []string
	errs []error
}

func (r *recorder) debug(msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, msg)
}

func (r *recorder) exit(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *recorder) messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.msgs...)
}

func (r *recorder) exits() []error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]error(nil), r.errs...)
}

func newPipeline(t *testing.T, rec *recorder, name string, opts ...pipeline.Option) *pipeline.Pipeline {
	t.Helper()

	all := append([]pipeline.Option{pipeline.WithDebug(rec.debug), pipeline.WithExit(rec.exit)}, opts...)

	return pipeline.New(name, all...)
}

func addOne(_ context.Context, args ...any) (pipeline.Result, error) {
	return pipeline.Single(args[0].(int) + 1), nil
}

func double(_ context.Context, args ...any) (pipeline.Result, error) {
	return pipeline.Single(args[0].(int) * 2), nil
}

// recordArgs returns a step storing the arguments of every call in got and returning ret.
func recordArgs(got *[][]any, ret pipeline.Result) pipeline.Func {
	return func(_ context.Context, args ...any) (pipeline.Result, error) {
		*got = append(*got, args)

		return ret, nil
	}
}

type echoRunner struct {
	name string
	got  [][]any
}

func (e *echoRunner) Run(_ context.Context, args ...any) (pipeline.Result, error) {
	e.got = append(e.got, args)

	return pipeline.Multiple(args...), nil
}

func (e *echoRunner) String() string {
	return e.name
}
