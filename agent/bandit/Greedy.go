package bandit

// GreedyWindow is the number of exploratory steps per action that a
// Greedy agent takes at the start of each trial
const GreedyWindow = 15

// Greedy is an agent that explores uniformly at random for the first
// 15 * k steps of a trial, after which it always takes the action with
// the highest sample mean reward.
type Greedy struct {
	base
}

// NewGreedy returns a new Greedy agent acting over actions
func NewGreedy(actions []int, seed uint64) (*Greedy, error) {
	b, err := newBase("newGreedy", actions, GreedyWindow, seed)
	if err != nil {
		return nil, err
	}

	g := &Greedy{base: b}
	g.hooks = g
	return g, nil
}

// Name returns the name of the agent
func (g *Greedy) Name() string {
	return "greedy"
}
