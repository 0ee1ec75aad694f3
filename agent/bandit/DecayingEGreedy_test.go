package bandit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/environment"
	"github.com/samuelfneumann/gobandit/environment/wrappers"
	"github.com/samuelfneumann/gobandit/errs"
)

func TestNewDecayingEGreedy(t *testing.T) {
	actions := actionSet(2)

	tests := []struct {
		epsilon, alpha float64
		valid          bool
	}{
		{0.1, 0.0, false},
		{0.1, 1.1, false},
		{0.1, -0.5, false},
		{-0.1, 0.5, false},
		{1.5, 0.5, false},
		{0.1, 1.0, true},
		{0.0, 0.01, true},
	}

	for _, test := range tests {
		d, err := NewDecayingEGreedy(actions, test.epsilon, test.alpha, 0)
		if !test.valid {
			assert.True(t, errs.IsInvalidArgument(err), "%+v", test)
			continue
		}
		require.NoError(t, err)
		assert.Equal(t, test.epsilon, d.Epsilon())
		assert.Equal(t, test.alpha, d.Alpha())
	}
}

func TestDecayingEGreedyWeight(t *testing.T) {
	alpha := 0.1
	d, err := NewDecayingEGreedy(actionSet(3), 0.1, alpha, 1)
	require.NoError(t, err)

	d.Observe(2, 1.0)
	for n := 1; n < 20; n++ {
		assert.Equal(t, alpha, d.weight(1))

		e, _ := d.Estimate(2)
		r := float64(n % 3)
		d.Observe(2, r)

		v, _ := d.Estimate(2)
		assert.InDelta(t, (1-alpha)*e+alpha*r, v, 1e-12)
	}
}

// TestDecayingEGreedyTracksChange ensures that after the best action
// of a bandit changes, a decaying ε-greedy agent switches to the new
// best action sooner than a sample mean ε-greedy agent
func TestDecayingEGreedyTracksChange(t *testing.T) {
	k := 3
	for seed := uint64(0); seed < seeds; seed++ {
		phaseTwo := make(map[string]int)

		for _, c := range []agent.Config{
			{Algorithm: agent.DecayingEGreedy, Epsilon: 0.1, Alpha: 0.1},
			{Algorithm: agent.EGreedy, Epsilon: 0.1},
		} {
			env, err := environment.NewFromLocations(environment.Uniform,
				[]float64{1, 0, -1}, seed+100)
			require.NoError(t, err)
			shift := wrappers.NewShift(env)

			a, err := c.CreateAgent(actionSet(k), seed)
			require.NoError(t, err)

			counts := run(a, shift, 300)
			require.Equal(t, 1, mostVisited(counts))

			// Make the second action best and the first action worst
			shift.SetOffset(1, -2.0)
			shift.SetOffset(2, 0.5)
			counts = run(a, shift, 200)
			phaseTwo[string(c.Algorithm)] = counts[2]
		}

		decaying := phaseTwo[string(agent.DecayingEGreedy)]
		sampleMean := phaseTwo[string(agent.EGreedy)]
		assert.GreaterOrEqual(t, decaying, 120, "seed %d", seed)
		assert.Greater(t, decaying, sampleMean, "seed %d", seed)
	}
}

func TestDecayingEGreedyConverges(t *testing.T) {
	k := 3
	switched := 0

	for seed := uint64(0); seed < seeds; seed++ {
		env, err := environment.NewFromLocations(environment.Uniform,
			[]float64{1, 0, 0}, seed+100)
		require.NoError(t, err)
		shift := wrappers.NewShift(env)

		d, err := NewDecayingEGreedy(actionSet(k), 0.1, 0.1, seed)
		require.NoError(t, err)

		run(d, shift, 30*k)
		shift.SetOffset(1, -1.0)
		shift.SetOffset(2, 2.0)
		run(d, shift, 150*k)

		// Visit counts accumulate over both phases
		if d.MostVisited() == 2 {
			switched++
		}
	}
	assert.GreaterOrEqual(t, switched, seeds-2)
}
