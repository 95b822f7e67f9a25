package drawer

import (
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-chain/pkg/pipeline/measure"
	"github.com/askiada/go-chain/pkg/pipeline/model"
)

type pipelineDrawer struct {
	Drawer
	m    measure.Measure
	last *model.StepInfo
}

func (pd *pipelineDrawer) New() error {
	err := pd.AddStep(model.StartStep.Key())
	if err != nil {
		return errors.Wrap(err, "unable to add start step to drawer")
	}

	pd.last = model.StartStep

	return nil
}

func (pd *pipelineDrawer) PrepareStep(parentStep, step *model.StepInfo) error {
	err := pd.AddStep(step.Key())
	if err != nil {
		return err
	}

	err = pd.AddLink(parentStep.Key(), step.Key())
	if err != nil {
		return err
	}

	return nil
}

func (pd *pipelineDrawer) OnStepOutput(_, step *model.StepInfo, _ time.Duration) error {
	pd.last = step

	return nil
}

func (pd *pipelineDrawer) Finish(totalDuration time.Duration) error {
	err := pd.AddStep(model.EndStep.Key())
	if err != nil {
		return errors.Wrap(err, "unable to add end step to drawer")
	}

	err = pd.AddLink(pd.last.Key(), model.EndStep.Key())
	if err != nil {
		return errors.Wrap(err, "unable to link last step to end step")
	}

	err = pd.SetTotalTime(model.EndStep.Key(), totalDuration)
	if err != nil {
		return errors.Wrap(err, "unable to set total time")
	}

	if pd.m != nil {
		err = pd.AddMeasure(pd.m)
		if err != nil {
			return errors.Wrap(err, "unable to add measure")
		}
	}

	err = pd.Draw()
	if err != nil {
		return errors.Wrap(err, "unable to draw pipeline")
	}

	return nil
}

// PipelineDrawer draws the pipeline every time it succeeds. When measure is not nil, the
// drawing carries the average duration of every step.
func PipelineDrawer(drawer Drawer, measure measure.Measure) model.PipelineOption {
	return &pipelineDrawer{Drawer: drawer, m: measure}
}
