package agent

import (
	"github.com/samuelfneumann/gobandit/errs"
)

// Config represents a configuration for creating an agent. Only the
// hyperparameters used by the Algorithm are consulted:
//
//	Algorithm			Hyperparameters
//	greedy				-
//	epsilon-greedy		Epsilon
//	decaying			Epsilon, Alpha
//	UCB					C
type Config struct {
	Algorithm Type    `json:"algorithm" mapstructure:"algorithm" yaml:"algorithm"`
	Epsilon   float64 `json:"epsilon,omitempty" mapstructure:"epsilon" yaml:"epsilon,omitempty"`
	Alpha     float64 `json:"alpha,omitempty" mapstructure:"alpha" yaml:"alpha,omitempty"`
	C         float64 `json:"c,omitempty" mapstructure:"c" yaml:"c,omitempty"`
}

// CreateAgent creates the agent that the config describes over the
// argument actions
func (c Config) CreateAgent(actions []int, seed uint64) (Agent, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	f, _ := factory(c.Algorithm)
	return f(c, actions, seed)
}

// Validate returns an error describing whether or not the
// configuration is valid
func (c Config) Validate() error {
	if !Registered(c.Algorithm) {
		return errs.InvalidArgument("validate",
			"no such algorithm %q, want one of %v", c.Algorithm,
			RegisteredTypes())
	}

	switch c.Algorithm {
	case EGreedy, DecayingEGreedy:
		if c.Epsilon < 0.0 || c.Epsilon > 1.0 {
			return errs.InvalidArgument("validate",
				"epsilon must be within [0.0, 1.0], have(%v)", c.Epsilon)
		}
	}

	if c.Algorithm == DecayingEGreedy && (c.Alpha <= 0.0 || c.Alpha > 1.0) {
		return errs.InvalidArgument("validate",
			"alpha must be within (0.0, 1.0], have(%v)", c.Alpha)
	}

	return nil
}
