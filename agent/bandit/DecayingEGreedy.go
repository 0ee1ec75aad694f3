package bandit

import (
	"fmt"

	"github.com/samuelfneumann/gobandit/errs"
)

// DecayingEGreedy implements an ε-greedy agent whose action values
// are exponential recency-weighted averages of rewards. A constant step
// size α discounts old rewards geometrically, so action values track
// reward distributions that change over time instead of converging to
// the mean of all rewards seen.
type DecayingEGreedy struct {
	base
	epsilon float64
	alpha   float64
}

// NewDecayingEGreedy returns a new DecayingEGreedy agent acting over
// actions, where e=epsilon is the probability with which a random
// action is selected and alpha is the step size of action value
// updates
func NewDecayingEGreedy(actions []int, e, alpha float64,
	seed uint64) (*DecayingEGreedy, error) {
	if e < 0.0 || e > 1.0 {
		return nil, errs.InvalidArgument("newDecayingEGreedy",
			"epsilon must be within [0.0, 1.0], have(%v)", e)
	}
	if alpha <= 0.0 || alpha > 1.0 {
		return nil, errs.InvalidArgument("newDecayingEGreedy",
			"alpha must be within (0.0, 1.0], have(%v)", alpha)
	}

	b, err := newBase("newDecayingEGreedy", actions, GreedyWindow, seed)
	if err != nil {
		return nil, err
	}

	g := &DecayingEGreedy{base: b, epsilon: e, alpha: alpha}
	g.hooks = g
	return g, nil
}

func (g *DecayingEGreedy) needsExploration() bool {
	return explore(g.rng, g.epsilon)
}

func (g *DecayingEGreedy) weight(int) float64 {
	return g.alpha
}

// Epsilon returns the probability of taking a random action
func (g *DecayingEGreedy) Epsilon() float64 {
	return g.epsilon
}

// Alpha returns the step size of action value updates
func (g *DecayingEGreedy) Alpha() float64 {
	return g.alpha
}

// Name returns the name of the agent
func (g *DecayingEGreedy) Name() string {
	return fmt.Sprintf("decaying ε-greedy ε=%v, α=%v", g.epsilon, g.alpha)
}
