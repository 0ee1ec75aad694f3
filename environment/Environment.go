// Package environment outlines the interface a bandit environment
// must satisfy and implements a stationary k-armed bandit
package environment

import (
	"strings"

	"github.com/samuelfneumann/gobandit/errs"
)

// Distribution names a family of reward distributions that a Bandit
// can sample from
type Distribution string

const (
	Uniform Distribution = "uniform"
	Normal  Distribution = "normal"
	Beta    Distribution = "beta"
)

// Valid returns whether the Distribution is supported
func (d Distribution) Valid() bool {
	switch d {
	case Uniform, Normal, Beta:
		return true
	}
	return false
}

// ParseDistribution returns the Distribution named by s. Names are
// case insensitive.
func ParseDistribution(s string) (Distribution, error) {
	d := Distribution(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", errs.InvalidArgument("parseDistribution",
			"distribution %q is not supported", s)
	}
	return d, nil
}

// Params describes an environment for reporting. Agents never consult
// Params.
type Params struct {
	Distribution Distribution
	Mean         []float64 // Expected reward of each action, in action order
}

// Environment is a reward oracle. Each call to ExecuteAction draws an
// independent reward for the argument action.
type Environment interface {
	ActionSet() []int // Sorted action identifiers {1, ..., k}
	ExecuteAction(action int) float64
	Parameters() Params
}
