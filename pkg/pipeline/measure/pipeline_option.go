package measure

import (
	"time"

	"github.com/askiada/go-chain/pkg/pipeline/model"
)

type pipelineMeasure struct {
	Measure
}

func (pm *pipelineMeasure) New() error {
	pm.AddMetric(model.StartStep.Key())
	pm.AddMetric(model.EndStep.Key())

	return nil
}

func (pm *pipelineMeasure) PrepareStep(_, step *model.StepInfo) error {
	pm.AddMetric(step.Key())

	return nil
}

func (pm *pipelineMeasure) OnStepOutput(_, step *model.StepInfo, computationDuration time.Duration) error {
	pm.AddMetric(step.Key()).AddDuration(computationDuration)

	return nil
}

func (pm *pipelineMeasure) Finish(totalDuration time.Duration) error {
	pm.AddMetric(model.EndStep.Key()).SetTotalDuration(totalDuration)

	return nil
}

// PipelineMeasure records the duration of every step of a pipeline in measure.
func PipelineMeasure(measure Measure) model.PipelineOption {
	return &pipelineMeasure{measure}
}
