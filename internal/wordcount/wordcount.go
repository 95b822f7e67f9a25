// Package wordcount counts the words of a text file with a pipeline:
// read, then the nested analyse pipeline (tokenize, count), then rank.
package wordcount

import (
	"context"
	"os"
	"sort"
	"strings"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/text/cases"

	"github.com/askiada/go-chain/internal/config"
	"github.com/askiada/go-chain/pkg/pipeline"
	"github.com/askiada/go-chain/pkg/pipeline/model"
)

var ErrUnexpectedArgument = errors.New("unexpected argument")

// Settings is injected in every step.
type Settings struct {
	MinLength int
	Top       int
	StopWords map[string]struct{}
}

// NewSettings builds the settings of the pipeline from cfg.
func NewSettings(cfg *config.Config) *Settings {
	folder := cases.Fold()
	stopWords := make(map[string]struct{}, len(cfg.StopWords))

	for _, w := range cfg.StopWords {
		stopWords[folder.String(w)] = struct{}{}
	}

	return &Settings{
		MinLength: cfg.MinLength,
		Top:       cfg.Top,
		StopWords: stopWords,
	}
}

type WordCount struct {
	Word  string
	Count int
}

type Report struct {
	Total    int
	Distinct int
	Top      []WordCount
}

// New builds the wordcount pipeline. hooks are only given to the outer pipeline; opts are
// given to both the outer and the nested pipeline.
func New(settings *Settings, hooks []model.PipelineOption, opts ...pipeline.Option) *pipeline.Pipeline {
	analyse := pipeline.New("analyse", opts...).
		Use(pipeline.Func(tokenize)).
		Use(pipeline.Func(count))

	outer := append([]pipeline.Option{}, opts...)
	outer = append(outer, pipeline.WithInject(settings), pipeline.WithHooks(hooks...))

	return pipeline.New("wordcount", outer...).
		Use(pipeline.Func(read)).
		Use(analyse).
		Use(pipeline.Func(rank))
}

// Count runs the pipeline on the file at path.
func Count(ctx context.Context, pipe *pipeline.Pipeline, path string) (Report, error) {
	res, err := pipe.Run(ctx, path)
	if err != nil {
		return Report{}, err
	}

	report, ok := pipeline.As[Report](res)
	if !ok {
		return Report{}, errors.Wrapf(ErrUnexpectedArgument, "pipeline returned %s", res.Kind())
	}

	return report, nil
}

func arg[T any](args []any, i int) (T, error) {
	var zero T
	if i >= len(args) {
		return zero, errors.Wrapf(ErrUnexpectedArgument, "missing argument %d", i)
	}

	v, ok := args[i].(T)
	if !ok {
		return zero, errors.Wrapf(ErrUnexpectedArgument, "argument %d is %T, not %T", i, args[i], zero)
	}

	return v, nil
}

// settings is always the last argument.
func settings(args []any) (*Settings, error) {
	if len(args) == 0 {
		return nil, errors.Wrap(ErrUnexpectedArgument, "missing settings")
	}

	return arg[*Settings](args, len(args)-1)
}

func read(_ context.Context, args ...any) (pipeline.Result, error) {
	path, err := arg[string](args, 0)
	if err != nil {
		return nil, err
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}

	return pipeline.Single(string(content)), nil
}

func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsNumber(r) && r != '\''
}

func tokenize(_ context.Context, args ...any) (pipeline.Result, error) {
	text, err := arg[string](args, 0)
	if err != nil {
		return nil, err
	}

	set, err := settings(args)
	if err != nil {
		return nil, err
	}

	words := []string{}

	for _, field := range strings.FieldsFunc(cases.Fold().String(text), isSeparator) {
		word := strings.Trim(field, "'")
		if len([]rune(word)) < set.MinLength {
			continue
		}

		if _, stop := set.StopWords[word]; stop {
			continue
		}

		words = append(words, word)
	}

	return pipeline.Single(words), nil
}

func count(_ context.Context, args ...any) (pipeline.Result, error) {
	words, err := arg[[]string](args, 0)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, w := range words {
		counts[w]++
	}

	return pipeline.Multiple(counts, len(words)), nil
}

func rank(_ context.Context, args ...any) (pipeline.Result, error) {
	counts, err := arg[map[string]int](args, 0)
	if err != nil {
		return nil, err
	}

	total, err := arg[int](args, 1)
	if err != nil {
		return nil, err
	}

	set, err := settings(args)
	if err != nil {
		return nil, err
	}

	top := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		top = append(top, WordCount{Word: w, Count: c})
	}

	sort.Slice(top, func(i, j int) bool {
		if top[i].Count == top[j].Count {
			return top[i].Word < top[j].Word
		}

		return top[i].Count > top[j].Count
	})

	if set.Top > 0 && set.Top < len(top) {
		top = top[:set.Top]
	}

	return pipeline.Single(Report{Total: total, Distinct: len(counts), Top: top}), nil
}
