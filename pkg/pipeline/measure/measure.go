package measure

import (
	"sort"
	"sync"
	"time"
)

type DefaultMeasure struct {
	mu    *sync.Mutex
	Steps map[string]Metric
}

func NewDefaultMeasure() *DefaultMeasure {
	return &DefaultMeasure{
		mu:    &sync.Mutex{},
		Steps: make(map[string]Metric),
	}
}

// AddMetric returns the metric registered under name, creating it when missing.
func (m *DefaultMeasure) AddMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	if mt, ok := m.Steps[name]; ok {
		return mt
	}

	mt := &DefaultMetric{mu: &sync.Mutex{}}
	m.Steps[name] = mt

	return mt
}

func (m *DefaultMeasure) GetMetric(name string) Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.Steps[name]
}

func (m *DefaultMeasure) AllMetrics() map[string]Metric {
	m.mu.Lock()
	defer m.mu.Unlock()

	res := make(map[string]Metric, len(m.Steps))
	for name, mt := range m.Steps {
		res[name] = mt
	}

	return res
}

// StepDuration is the average duration of one step.
type StepDuration struct {
	Name    string
	Average time.Duration
	Count   int64
}

// Slowest returns at most n steps ordered from the slowest average duration to the fastest.
// A negative n returns every step.
func Slowest(msr Measure, n int) []StepDuration {
	all := msr.AllMetrics()
	res := make([]StepDuration, 0, len(all))

	for name, mt := range all {
		if mt.Count() == 0 {
			continue
		}

		res = append(res, StepDuration{Name: name, Average: mt.AVGDuration(), Count: mt.Count()})
	}

	sort.Slice(res, func(i, j int) bool {
		if res[i].Average == res[j].Average {
			return res[i].Name < res[j].Name
		}

		return res[i].Average > res[j].Average
	})

	if n >= 0 && n < len(res) {
		res = res[:n]
	}

	return res
}

var _ Measure = (*DefaultMeasure)(nil)
