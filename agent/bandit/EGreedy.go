package bandit

import (
	"fmt"

	"github.com/samuelfneumann/gobandit/errs"
)

// EGreedy implements an ε-greedy agent. On each step, with
// probability ε a uniformly random action is taken, otherwise the
// action with the highest sample mean reward is taken. Unlike Greedy,
// exploration is never confined to the start of a trial.
type EGreedy struct {
	base
	epsilon float64
}

// NewEGreedy returns a new EGreedy agent acting over actions, where
// e=epsilon is the probability with which a random action is selected
func NewEGreedy(actions []int, e float64, seed uint64) (*EGreedy, error) {
	if e < 0.0 || e > 1.0 {
		return nil, errs.InvalidArgument("newEGreedy",
			"epsilon must be within [0.0, 1.0], have(%v)", e)
	}

	b, err := newBase("newEGreedy", actions, GreedyWindow, seed)
	if err != nil {
		return nil, err
	}

	g := &EGreedy{base: b, epsilon: e}
	g.hooks = g
	return g, nil
}

func (g *EGreedy) needsExploration() bool {
	return explore(g.rng, g.epsilon)
}

// Epsilon returns the probability of taking a random action
func (g *EGreedy) Epsilon() float64 {
	return g.epsilon
}

// Name returns the name of the agent
func (g *EGreedy) Name() string {
	return fmt.Sprintf("ε-greedy ε=%v", g.epsilon)
}
