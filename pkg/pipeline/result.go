package pipeline

// Kind is the shape of a Result.
type Kind int

const (
	KindEmpty Kind = iota
	KindSingle
	KindMultiple
)

func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindSingle:
		return "single"
	case KindMultiple:
		return "multiple"
	default:
		return "unknown"
	}
}

// Result is the output of a step, spread as arguments into the next one.
type Result interface {
	Kind() Kind
	// Values returns a copy of the values carried by the result.
	Values() []any
	// Inject returns the arguments of the next call: the values of the result followed by deps.
	Inject(deps []any) []any

	sealed()
}

type emptyResult struct{}

// Empty is the result of a step with nothing to hand over. The next step only receives the
// dependencies.
func Empty() Result {
	return emptyResult{}
}

func (emptyResult) Kind() Kind { return KindEmpty }

func (emptyResult) Values() []any { return []any{} }

func (emptyResult) Inject(deps []any) []any {
	return append(make([]any, 0, len(deps)), deps...)
}

func (emptyResult) sealed() {}

func (emptyResult) String() string { return "<empty>" }

type singleResult struct {
	value any
}

// Single hands value to the next step as its first argument.
func Single(value any) Result {
	return singleResult{value: value}
}

func (singleResult) Kind() Kind { return KindSingle }

func (r singleResult) Values() []any { return []any{r.value} }

func (r singleResult) Inject(deps []any) []any {
	res := make([]any, 0, len(deps)+1)
	res = append(res, r.value)

	return append(res, deps...)
}

func (singleResult) sealed() {}

// Arguments is an immutable ordered list of values spread as separate arguments.
type Arguments struct {
	values []any
}

// NewArguments captures values. Later changes to the caller slice are not seen.
func NewArguments(values ...any) *Arguments {
	return &Arguments{values: append(make([]any, 0, len(values)), values...)}
}

// Multiple hands every value to the next step, in order, as separate arguments.
func Multiple(values ...any) *Arguments {
	return NewArguments(values...)
}

func (*Arguments) Kind() Kind { return KindMultiple }

func (a *Arguments) Len() int {
	return len(a.values)
}

func (a *Arguments) Values() []any {
	return append(make([]any, 0, len(a.values)), a.values...)
}

func (a *Arguments) Inject(deps []any) []any {
	res := make([]any, 0, len(a.values)+len(deps))
	res = append(res, a.values...)

	return append(res, deps...)
}

func (*Arguments) sealed() {}

// As returns the value of a result carrying exactly one value of type T.
func As[T any](r Result) (T, bool) {
	var zero T
	if r == nil {
		return zero, false
	}

	values := r.Values()
	if len(values) != 1 {
		return zero, false
	}

	v, ok := values[0].(T)

	return v, ok
}

var (
	_ Result = emptyResult{}
	_ Result = singleResult{}
	_ Result = (*Arguments)(nil)
)
