package drawer_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-chain/pkg/pipeline/drawer"
	"github.com/askiada/go-chain/pkg/pipeline/measure"
	"github.com/askiada/go-chain/pkg/pipeline/model"
)

func TestDOTDrawerRender(t *testing.T) {
	t.Parallel()

	d := drawer.NewDOTDrawer("")
	require.NoError(t, d.AddStep("start"))
	require.NoError(t, d.AddStep("#1 read"))
	require.NoError(t, d.AddStep("#1 read"))
	require.NoError(t, d.AddStep("end"))
	require.NoError(t, d.AddLink("start", "#1 read"))
	require.NoError(t, d.AddLink("start", "#1 read"))
	require.NoError(t, d.AddLink("#1 read", "end"))
	require.Error(t, d.AddLink("#1 read", "missing"))

	var first, second bytes.Buffer
	require.NoError(t, d.Render(&first))
	require.NoError(t, d.Render(&second))

	out := first.String()
	assert.Equal(t, out, second.String())
	assert.True(t, strings.HasPrefix(out, "strict digraph {"))
	assert.Contains(t, out, `"start" -> "#1 read"`)
	assert.Contains(t, out, `"#1 read" -> "end"`)
	assert.Less(t, strings.Index(out, `"start" [`), strings.Index(out, `"#1 read" [`))
}

func TestDOTDrawerMeasure(t *testing.T) {
	t.Parallel()

	d := drawer.NewDOTDrawer("")
	for _, name := range []string{"start", "#1 fast", "#2 slow"} {
		require.NoError(t, d.AddStep(name))
	}
	require.NoError(t, d.AddLink("start", "#1 fast"))
	require.NoError(t, d.AddLink("#1 fast", "#2 slow"))

	msr := measure.NewDefaultMeasure()
	msr.AddMetric("start")
	msr.AddMetric("#1 fast").AddDuration(time.Millisecond)
	msr.AddMetric("#2 slow").AddDuration(time.Second)

	require.NoError(t, d.AddMeasure(msr))
	require.NoError(t, d.SetTotalTime("start", 2*time.Second))
	require.Error(t, d.SetTotalTime("missing", time.Second))

	var buf bytes.Buffer
	require.NoError(t, d.Render(&buf))

	out := buf.String()
	assert.Contains(t, out, `color="#0000f0"`)
	assert.Contains(t, out, `color="#f00000"`)
	assert.Contains(t, out, `label="1s"`)
	assert.Contains(t, out, `<FONT POINT-SIZE="12">2s</FONT>`)
}

func TestPipelineDrawer(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "pipeline.dot")
	msr := measure.NewDefaultMeasure()
	opt := drawer.PipelineDrawer(drawer.NewDOTDrawer(fileName), msr)
	measureOpt := measure.PipelineMeasure(msr)

	first := &model.StepInfo{Type: model.PluginStepType, Name: "read", Index: 1}
	second := &model.StepInfo{Type: model.ChainStepType, Name: "analyse", Index: 2}

	for _, o := range []model.PipelineOption{opt, measureOpt} {
		require.NoError(t, o.New())
		require.NoError(t, o.PrepareStep(model.StartStep, first))
		require.NoError(t, o.PrepareStep(first, second))
		require.NoError(t, o.OnStepOutput(first, second, time.Millisecond))
	}

	require.NoError(t, measureOpt.Finish(time.Second))
	require.NoError(t, opt.Finish(time.Second))

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"start" -> "#1 read"`)
	assert.Contains(t, string(content), `"#1 read" -> "#2 analyse"`)
	assert.Contains(t, string(content), `"#2 analyse" -> "end"`)
}

func TestPipelineDrawerUnknownDirectory(t *testing.T) {
	t.Parallel()

	opt := drawer.PipelineDrawer(drawer.NewDOTDrawer(filepath.Join(t.TempDir(), "missing", "pipeline.dot")), nil)
	require.NoError(t, opt.New())
	assert.Error(t, opt.Finish(time.Second))
}

func TestPipelineDrawerLinksLastRunStep(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "pipeline.dot")
	opt := drawer.PipelineDrawer(drawer.NewDOTDrawer(fileName), nil)

	first := &model.StepInfo{Type: model.PluginStepType, Name: "read", Index: 1}
	rejected := &model.StepInfo{Type: model.PluginStepType, Name: "rejected", Index: 2}

	require.NoError(t, opt.New())
	require.NoError(t, opt.PrepareStep(model.StartStep, first))
	require.NoError(t, opt.PrepareStep(first, rejected))
	require.NoError(t, opt.OnStepOutput(model.StartStep, first, time.Millisecond))
	require.NoError(t, opt.Finish(time.Second))

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"#1 read" -> "end"`)
	assert.NotContains(t, string(content), `"#2 rejected" -> "end"`)
}

func TestPipelineDrawerNoStep(t *testing.T) {
	t.Parallel()

	fileName := filepath.Join(t.TempDir(), "pipeline.dot")
	opt := drawer.PipelineDrawer(drawer.NewDOTDrawer(fileName), nil)

	require.NoError(t, opt.New())
	require.NoError(t, opt.Finish(time.Second))

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), `"start" -> "end"`)
}
