package experiment

import (
	"github.com/samuelfneumann/gobandit/agent"
	"github.com/samuelfneumann/gobandit/environment"
	"github.com/samuelfneumann/gobandit/errs"
)

// Config represents a configuration of an experiment
type Config struct {
	K            int                      `json:"k" mapstructure:"k" yaml:"k"`
	Distribution environment.Distribution `json:"distribution" mapstructure:"distribution" yaml:"distribution"`
	Smooth       bool                     `json:"smooth" mapstructure:"smooth" yaml:"smooth"`
	Agents       []agent.Config           `json:"agents" mapstructure:"agents" yaml:"agents"`
}

// DefaultConfig returns the default experiment configuration: a
// 2-armed uniform bandit on which a greedy, an ε-greedy, a decaying
// ε-greedy, and a UCB agent are run
func DefaultConfig() Config {
	return Config{
		K:            2,
		Distribution: environment.Uniform,
		Smooth:       false,
		Agents:       DefaultAgents(),
	}
}

// DefaultAgents returns the configurations of the default agents
func DefaultAgents() []agent.Config {
	return []agent.Config{
		{Algorithm: agent.Greedy},
		{Algorithm: agent.EGreedy, Epsilon: 0.1},
		{Algorithm: agent.DecayingEGreedy, Epsilon: 0.1, Alpha: 0.1},
		{Algorithm: agent.UCB, C: 2},
	}
}

// Validate returns an error describing whether or not the
// configuration is valid
func (c Config) Validate() error {
	if c.K <= 0 {
		return errs.InvalidArgument("validate",
			"k must be positive, have(%v)", c.K)
	}
	if !c.Distribution.Valid() {
		return errs.InvalidArgument("validate",
			"no such distribution %q", c.Distribution)
	}
	if len(c.Agents) == 0 {
		return errs.InvalidArgument("validate", "no agents configured")
	}

	for i, a := range c.Agents {
		if err := a.Validate(); err != nil {
			return errs.InvalidArgument("validate", "agent %d: %v", i, err)
		}
	}
	return nil
}
