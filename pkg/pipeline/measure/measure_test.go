package measure_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-chain/pkg/pipeline/measure"
	"github.com/askiada/go-chain/pkg/pipeline/model"
)

func TestDefaultMetric(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	mt := msr.AddMetric("step")
	assert.Same(t, mt, msr.AddMetric("step"))
	assert.Equal(t, time.Duration(0), mt.AVGDuration())

	mt.AddDuration(2 * time.Second)
	mt.AddDuration(4 * time.Second)
	assert.Equal(t, int64(2), mt.Count())
	assert.Equal(t, 3*time.Second, mt.AVGDuration())

	mt.SetTotalDuration(time.Minute)
	assert.Equal(t, time.Minute, mt.GetTotalDuration())
	assert.Nil(t, msr.GetMetric("unknown"))
}

func TestSlowest(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	msr.AddMetric("fast").AddDuration(time.Millisecond)
	msr.AddMetric("slow").AddDuration(time.Second)
	msr.AddMetric("medium").AddDuration(10 * time.Millisecond)
	msr.AddMetric("unused")

	got := measure.Slowest(msr, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "slow", got[0].Name)
	assert.Equal(t, "medium", got[1].Name)

	assert.Len(t, measure.Slowest(msr, -1), 3)
}

func TestPipelineMeasure(t *testing.T) {
	t.Parallel()

	msr := measure.NewDefaultMeasure()
	opt := measure.PipelineMeasure(msr)
	step := &model.StepInfo{Type: model.PluginStepType, Name: "read", Index: 1}

	require.NoError(t, opt.New())
	require.NoError(t, opt.PrepareStep(model.StartStep, step))
	require.NoError(t, opt.OnStepOutput(model.StartStep, step, 5*time.Millisecond))
	require.NoError(t, opt.Finish(time.Second))

	assert.Len(t, msr.AllMetrics(), 3)
	assert.Equal(t, 5*time.Millisecond, msr.GetMetric("#1 read").AVGDuration())
	assert.Equal(t, time.Second, msr.GetMetric("end").GetTotalDuration())
}
