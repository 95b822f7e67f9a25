package pipeline

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/askiada/go-chain/pkg/pipeline/model"
)

type stage struct {
	info  *model.StepInfo
	run   Func
	child *Pipeline
}

// Pipeline is a named sequence of steps.
type Pipeline struct {
	name    string
	opts    *Options
	parent  *Pipeline
	steps   []*stage
	history []HistoryEntry
}

// New creates a new pipeline. An empty name, or a failing hook, is reported to the exit
// handler; New returns nil when the handler does not terminate the process.
func New(name string, opts ...Option) *Pipeline {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}

	if strings.TrimSpace(name) == "" {
		_ = options.Fail(errors.WithStack(ErrNameRequired))

		return nil
	}

	pipe := &Pipeline{
		name: name,
		opts: options,
	}

	for _, hook := range options.Hooks {
		err := hook.New()
		if err != nil {
			_ = options.Fail(errors.Wrapf(err, "unable to apply option of pipeline %s", name))

			return nil
		}
	}

	for _, step := range options.steps {
		pipe.Use(step)
	}

	return pipe
}

func (p *Pipeline) Name() string {
	return p.name
}

func (p *Pipeline) String() string {
	return p.name
}

func (*Pipeline) isStep() {}

// Inject returns the dependencies given to every step: those of the enclosing pipelines
// first, then the pipeline's own.
func (p *Pipeline) Inject() []any {
	var deps []any
	if p.parent != nil {
		deps = p.parent.Inject()
	}

	return append(deps, p.opts.Inject...)
}

// Steps describes the registered steps in execution order.
func (p *Pipeline) Steps() []model.StepInfo {
	res := make([]model.StepInfo, len(p.steps))
	for i, st := range p.steps {
		res[i] = *st.info
	}

	return res
}

// History returns a copy of every entry recorded since the pipeline was created.
func (p *Pipeline) History() []HistoryEntry {
	return append([]HistoryEntry(nil), p.history...)
}

// Use registers a step at the end of the pipeline. Registration errors are reported to the
// exit handler and leave the pipeline unchanged.
func (p *Pipeline) Use(step Step) *Pipeline {
	st, err := p.prepare(step, len(p.steps)+1)
	if err != nil {
		_ = p.opts.Fail(errors.Wrapf(err, "unable to register step in pipeline %s", p.name))

		return p
	}

	parent := model.StartStep
	if n := len(p.steps); n > 0 {
		parent = p.steps[n-1].info
	}

	for _, hook := range p.opts.Hooks {
		err := hook.PrepareStep(parent, st.info)
		if err != nil {
			_ = p.opts.Fail(errors.Wrapf(err, "unable to prepare step %s in pipeline %s", st.info.Name, p.name))

			return p
		}
	}

	if st.child != nil {
		st.child.parent = p
	}

	p.steps = append(p.steps, st)

	return p
}

func (p *Pipeline) prepare(step Step, index int) (*stage, error) {
	switch stp := step.(type) {
	case nil:
		return nil, errors.WithStack(ErrStepMustBeSet)
	case *Pipeline:
		return p.nest(stp, index)
	case runnerStep:
		if child, ok := stp.Runner.(*Pipeline); ok {
			return p.nest(child, index)
		}

		return p.runner(stp, index)
	case Func:
		return p.wrap(Plugin{Fn: stp}, index)
	case Plugin:
		return p.wrap(stp, index)
	default:
		return nil, errors.Errorf("unsupported step %T", step)
	}
}

func (p *Pipeline) nest(child *Pipeline, index int) (*stage, error) {
	if child == nil {
		return nil, errors.WithStack(ErrStepMustBeSet)
	}

	for ancestor := p; ancestor != nil; ancestor = ancestor.parent {
		if ancestor == child {
			return nil, errors.Wrapf(ErrSelfNesting, "pipeline %s", child.name)
		}
	}

	if child.parent != nil {
		return nil, errors.Wrapf(ErrAlreadyNested, "pipeline %s belongs to %s", child.name, child.parent.name)
	}

	return &stage{
		info:  &model.StepInfo{Type: model.ChainStepType, Name: child.name, Index: index},
		run:   child.Run,
		child: child,
	}, nil
}

func (p *Pipeline) runner(stp runnerStep, index int) (*stage, error) {
	if stp.Runner == nil {
		return nil, errors.WithStack(ErrStepMustBeSet)
	}

	name := stp.String()
	if p.opts.EnsureName && name == "" {
		return nil, errors.Wrapf(ErrAnonymousStep, "reported runner is %T", stp.Runner)
	}

	return &stage{
		info: &model.StepInfo{Type: model.RunnerStepType, Name: name, Index: index},
		run:  stp.Run,
	}, nil
}

func (p *Pipeline) wrap(plugin Plugin, index int) (*stage, error) {
	if plugin.Fn == nil {
		return nil, errors.WithStack(ErrStepMustBeSet)
	}

	if p.opts.EnsureName && plugin.anonymous() {
		return nil, errors.Wrapf(ErrAnonymousStep, "reported plugin is %s", plugin)
	}

	wrapper := p.opts.Wrapper
	if wrapper == nil {
		wrapper = BasicWrapper
	}

	wrapped := wrapper(plugin, p.opts)
	if wrapped == nil {
		return nil, errors.Wrapf(ErrWrapperNoFunc, "plugin wrapper %s", describe(wrapper))
	}

	return &stage{
		info: &model.StepInfo{Type: model.PluginStepType, Name: plugin.String(), Index: index},
		run:  wrapped,
	}, nil
}

// Run calls every step in order and returns the result of the last one, Empty when the
// pipeline has no step. The first step receives args followed by the dependencies.
//
// A failing step is reported to the exit handler. The error is only returned when the handler
// does not terminate the process.
func (p *Pipeline) Run(ctx context.Context, args ...any) (Result, error) {
	start := time.Now()
	runID := uuid.New()
	initial := NewArguments(args...)

	p.history = append(p.history, HistoryEntry{Type: RunEntry, RunID: runID, Args: initial.Values()})
	p.opts.Debugf("Pipeline %s has started", p.name)

	deps := p.Inject()
	parent := model.StartStep

	var (
		previous Result = initial
		last            = Empty()
	)

	for i, st := range p.steps {
		// a nested pipeline injects the dependencies itself.
		stepDeps := deps
		if st.child != nil {
			stepDeps = nil
		}

		res, err := p.runStep(ctx, st, previous.Inject(stepDeps), parent)
		if err != nil {
			p.opts.Debugf("%s has failed on step %d (%s)", p.name, i+1, st.info.Name)

			return nil, p.opts.Fail(errors.Wrapf(err, "%s has failed on step %d (%s)", p.name, i+1, st.info.Name))
		}

		p.history = append(p.history, HistoryEntry{Type: StepEntry, RunID: runID, Step: st.info.Name, Result: res})
		previous, last = res, res
		parent = st.info
	}

	for _, hook := range p.opts.Hooks {
		err := hook.Finish(time.Since(start))
		if err != nil {
			p.opts.Debugf("%s has failed to finish", p.name)

			return nil, p.opts.Fail(errors.Wrapf(err, "unable to finish pipeline %s", p.name))
		}
	}

	p.opts.Debugf("Pipeline %s has succeeded", p.name)

	return last, nil
}

func (p *Pipeline) runStep(ctx context.Context, st *stage, args []any, parent *model.StepInfo) (Result, error) {
	err := ctx.Err()
	if err != nil {
		return nil, errors.Wrap(err, "context is done")
	}

	start := time.Now()

	res, err := safeCall(ctx, st.run, args)
	if err != nil {
		return nil, err
	}

	elapsed := time.Since(start)

	for _, hook := range p.opts.Hooks {
		err := hook.OnStepOutput(parent, st.info, elapsed)
		if err != nil {
			return nil, errors.Wrap(err, "unable to run step output option")
		}
	}

	return res, nil
}

var _ Runner = (*Pipeline)(nil)
