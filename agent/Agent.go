// Package agent defines an agent interface
package agent

// Agent determines the implementation details of a bandit algorithm
//
// An Agent is composed of a Learner, which learns action values from
// observed rewards, and a Policy, which chooses actions from those
// action values. Agents keep their state across calls until Reset is
// called, so that the same Agent can be used for many trials.
type Agent interface {
	Learner
	Policy

	// Reset resets the Agent to the state it had at construction
	Reset()

	// Name returns a human-readable description of the Agent and its
	// hyperparameters
	Name() string
}

// Learner implements a learning algorithm that defines how action
// values are updated.
//
// Observe must be called exactly once after each call to
// Policy.TakeAction, with the action returned by TakeAction.
type Learner interface {
	// Observe records that action lead to reward
	Observe(action int, reward float64)

	// ObserveLabel records that action lead to reward and records a
	// descriptive label alongside the observation. Labels are purely
	// informational and do not affect action values.
	ObserveLabel(action int, reward float64, label string)
}

// Policy represents a policy that an agent can have.
//
// Policies determine how agents select actions. Selecting an action
// has no side effects on the agent's action values.
type Policy interface {
	TakeAction() int
}

// Inspector is an Agent whose internal estimates can be read without
// modifying them
type Inspector interface {
	Agent
	Estimate(action int) (value float64, ok bool)
	Visits(action int) int
	Steps() int
}
