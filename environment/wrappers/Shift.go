// Package wrappers implements wrappers around environments
package wrappers

import (
	"fmt"

	"github.com/samuelfneumann/gobandit/environment"
)

// Shift wraps an environment and adds a per-action offset to each
// reward. Offsets can be changed at any time, which turns a stationary
// environment into a non-stationary one: an agent that has settled on
// some best action will have to notice that another action has
// become better.
//
// Shift itself implements the environment.Environment interface, and
// is therefore itself an Environment.
type Shift struct {
	environment.Environment
	offsets map[int]float64
}

// NewShift returns a new Shift wrapping env with all offsets zero
func NewShift(env environment.Environment) *Shift {
	return &Shift{env, make(map[int]float64)}
}

// SetOffset sets the offset added to rewards of action
func (s *Shift) SetOffset(action int, offset float64) {
	s.offsets[action] = offset
}

// Offset returns the offset added to rewards of action
func (s *Shift) Offset(action int) float64 {
	return s.offsets[action]
}

// ExecuteAction draws a reward from the wrapped environment and adds
// the offset of the action
func (s *Shift) ExecuteAction(action int) float64 {
	return s.Environment.ExecuteAction(action) + s.offsets[action]
}

// Parameters returns the parameters of the wrapped environment with
// offsets added to the means
func (s *Shift) Parameters() environment.Params {
	params := s.Environment.Parameters()

	actions := s.ActionSet()
	mean := make([]float64, len(params.Mean))
	for i := range mean {
		mean[i] = params.Mean[i] + s.offsets[actions[i]]
	}
	params.Mean = mean

	return params
}

// String returns a string representation of the Shift environment
func (s *Shift) String() string {
	return fmt.Sprintf("Shift: %v", s.Environment)
}
