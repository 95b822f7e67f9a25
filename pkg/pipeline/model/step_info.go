package model

import "fmt"

type stepType string

const (
	RootStepType   stepType = "root"
	PluginStepType stepType = "plugin"
	RunnerStepType stepType = "runner"
	ChainStepType  stepType = "chain"
	EndStepType    stepType = "end"
)

// StepInfo describes a registered step.
type StepInfo struct {
	Type stepType
	Name string
	// Index is the 1-based position of the step in its pipeline. Zero for start and end.
	Index int
}

// Key identifies the step inside its pipeline, even when the same name is used twice.
func (s *StepInfo) Key() string {
	if s.Index == 0 {
		return s.Name
	}

	return fmt.Sprintf("#%d %s", s.Index, s.Name)
}

var (
	StartStep = &StepInfo{Type: RootStepType, Name: "start"}
	EndStep   = &StepInfo{Type: EndStepType, Name: "end"}
)
