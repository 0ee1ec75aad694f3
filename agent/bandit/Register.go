package bandit

import (
	"github.com/samuelfneumann/gobandit/agent"
)

func init() {
	// Register each agent Type so that agent.Config's of that Type can
	// construct agents from this package
	agent.Register(agent.Greedy, func(c agent.Config, actions []int,
		seed uint64) (agent.Agent, error) {
		a, err := NewGreedy(actions, seed)
		if err != nil {
			return nil, err
		}
		return a, nil
	})

	agent.Register(agent.EGreedy, func(c agent.Config, actions []int,
		seed uint64) (agent.Agent, error) {
		a, err := NewEGreedy(actions, c.Epsilon, seed)
		if err != nil {
			return nil, err
		}
		return a, nil
	})

	agent.Register(agent.DecayingEGreedy, func(c agent.Config, actions []int,
		seed uint64) (agent.Agent, error) {
		a, err := NewDecayingEGreedy(actions, c.Epsilon, c.Alpha, seed)
		if err != nil {
			return nil, err
		}
		return a, nil
	})

	agent.Register(agent.UCB, func(c agent.Config, actions []int,
		seed uint64) (agent.Agent, error) {
		a, err := NewUCB(actions, c.C, seed)
		if err != nil {
			return nil, err
		}
		return a, nil
	})
}
