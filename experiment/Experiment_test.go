package experiment

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gonum.org/v1/gonum/stat"

	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/environment"
	"github.com/samuelfneumann/gobandit/errs"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// constant is an environment whose rewards are the expected rewards
type constant struct {
	means []float64
	calls int
}

func (c *constant) ActionSet() []int {
	actions := make([]int, len(c.means))
	for i := range actions {
		actions[i] = i + 1
	}
	return actions
}

func (c *constant) ExecuteAction(action int) float64 {
	c.calls++
	return c.means[action-1]
}

func (c *constant) Parameters() environment.Params {
	return environment.Params{Distribution: environment.Normal, Mean: c.means}
}

type counter int

func (c *counter) Increment() { *c++ }

func TestRunShapes(t *testing.T) {
	c := DefaultConfig()
	c.K = 3
	c.Distribution = environment.Normal

	e, err := New(2, 1000, c, WithSeed(7))
	require.NoError(t, err)
	assert.Nil(t, e.Curves())

	e.Run()
	curves := e.Curves()
	require.Len(t, curves, 4)
	for _, curve := range curves {
		assert.Len(t, curve, 1000)
	}

	assert.Equal(t, []string{
		"greedy",
		"ε-greedy ε=0.1",
		"decaying ε-greedy ε=0.1, α=0.1",
		"UCB c=2",
	}, e.Names())

	means := e.Environment().Parameters().Mean
	require.Len(t, means, 3)
	assert.LessOrEqual(t, stat.Mean(means, nil), e.Optimal())
	for _, m := range means {
		assert.LessOrEqual(t, m, e.Optimal())
	}
}

func TestRunDeterministic(t *testing.T) {
	c := DefaultConfig()
	c.K = 5

	run := func() [][]float64 {
		e, err := New(3, 50, c, WithSeed(11))
		require.NoError(t, err)
		e.Run()
		return e.Curves()
	}

	assert.Empty(t, cmp.Diff(run(), run()))
}

func TestRunSmoothing(t *testing.T) {
	c := DefaultConfig()
	c.K = 4
	c.Distribution = environment.Normal

	raw, err := New(1, 200, c, WithSeed(3))
	require.NoError(t, err)
	raw.Run()

	c.Smooth = true
	smooth, err := New(1, 200, c, WithSeed(3))
	require.NoError(t, err)
	smooth.Run()

	rawCurves, smoothCurves := raw.Curves(), smooth.Curves()
	for i := range rawCurves {
		// Smoothing does not change the rewards seen, only how they
		// are reported
		assert.Equal(t, rawCurves[i][0], smoothCurves[i][0])

		for step := range rawCurves[i] {
			want := stat.Mean(rawCurves[i][:step+1], nil)
			assert.InDelta(t, want, smoothCurves[i][step], 1e-9)
		}
	}
}

func TestRunWithEnvironment(t *testing.T) {
	env := &constant{means: []float64{0.5, 2, -1}}
	progress := new(counter)

	c := DefaultConfig()
	c.K = 3
	c.Agents = []agent.Config{{Algorithm: agent.UCB, C: 2}}

	e, err := New(4, 30, c, WithEnvironment(env), WithProgress(progress))
	require.NoError(t, err)
	assert.Equal(t, 2.0, e.Optimal())

	e.Run()
	assert.Equal(t, 4, int(*progress))
	assert.Equal(t, 4*30, env.calls)

	// Each action is tried once at the start of every trial
	curve := e.Curves()[0]
	assert.InDelta(t, (0.5+2-1)/3, stat.Mean(curve[:3], nil), 1e-12)
	for _, v := range curve {
		assert.LessOrEqual(t, v, 2.0)
	}
}

func TestRunLogs(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)

	c := DefaultConfig()
	e, err := New(3, 10, c, WithLogger(zap.New(core)))
	require.NoError(t, err)
	e.Run()

	assert.Equal(t, len(c.Agents), logs.FilterMessage("finished agent").Len())
	assert.Equal(t, 3*len(c.Agents),
		logs.FilterMessage("finished trial").Len())
}

func TestNewErrors(t *testing.T) {
	c := DefaultConfig()

	_, err := New(0, 10, c)
	assert.True(t, errs.IsInvalidArgument(err))

	_, err = New(10, -1, c)
	assert.True(t, errs.IsInvalidArgument(err))

	bad := DefaultConfig()
	bad.K = 0
	_, err = New(10, 10, bad)
	assert.True(t, errs.IsInvalidArgument(err))

	bad = DefaultConfig()
	bad.Distribution = "poisson"
	_, err = New(10, 10, bad)
	assert.True(t, errs.IsInvalidArgument(err))

	bad = DefaultConfig()
	bad.Agents = append(bad.Agents, agent.Config{Algorithm: "softmax"})
	_, err = New(10, 10, bad)
	assert.True(t, errs.IsInvalidArgument(err))

	bad = DefaultConfig()
	bad.Agents = nil
	_, err = New(10, 10, bad)
	assert.True(t, errs.IsInvalidArgument(err))
}

func TestSaveLoad(t *testing.T) {
	c := DefaultConfig()
	c.Smooth = true
	e, err := New(2, 20, c, WithSeed(1))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "results.gob")
	assert.Error(t, e.Save(path))

	e.Run()
	require.NoError(t, e.Save(path))

	r, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(e.Results(), r))
	assert.Equal(t, 2, r.K)
	assert.Equal(t, environment.Uniform, r.Distribution)
	assert.NotEmpty(t, r.ID)

	_, err = Load(filepath.Join(t.TempDir(), "missing.gob"))
	assert.Error(t, err)
}

func TestPlot(t *testing.T) {
	c := DefaultConfig()
	e, err := New(2, 20, c)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "experiment.svg")
	assert.Error(t, e.Plot(path))

	e.Run()
	require.NoError(t, e.Plot(path))
	require.NoError(t, e.Plot(filepath.Join(t.TempDir(), "experiment.html")))

	fig := e.Results().figure()
	assert.Equal(t, "Probability distribution: uniform, k = 2", fig.Title)
	assert.Equal(t, "Reward", fig.YLabel)
	assert.Equal(t, "v*", fig.ReferenceLabel)
	assert.Equal(t, e.Optimal(), fig.Reference)
	assert.Len(t, fig.Series, 4)
}
