package bandit

import (
	"fmt"
	"math"
)

// UCB implements the upper confidence bound agent. Actions are chosen
// greedily with respect to their estimated value plus an exploration
// bonus:
//
//	bonus(a) = c * sqrt(ln(t) / n(a))
//
// where t is the number of steps taken and n(a) the number of times
// action a was taken. Actions never taken have an infinite bonus. The
// bonus of an action shrinks as it is taken and grows slowly with time,
// so that rarely taken actions are eventually retried.
//
// Each trial starts by taking every action exactly once, in a random
// order.
type UCB struct {
	base
	c     float64
	bonus []float64
	order []int // Action indices taken during the first k steps
}

// NewUCB returns a new UCB agent acting over actions with exploration
// coefficient c
func NewUCB(actions []int, c float64, seed uint64) (*UCB, error) {
	b, err := newBase("newUCB", actions, 1, seed)
	if err != nil {
		return nil, err
	}

	u := &UCB{base: b, c: c, bonus: make([]float64, b.k)}
	u.hooks = u
	u.Reset()
	return u, nil
}

// randomAction returns the next action in the shuffled order of
// actions taken at the start of the trial
func (u *UCB) randomAction() int {
	return u.order[u.t]
}

// value returns the estimated value plus the exploration bonus of the
// action at index i. Actions not yet taken have an infinite value.
func (u *UCB) value(i int) float64 {
	if !u.visited[i] {
		return math.Inf(1)
	}
	return u.estimates[i] + u.bonus[i]
}

// Observe records that action lead to reward
func (u *UCB) Observe(action int, reward float64) {
	u.base.Observe(action, reward)
	u.updateBonus()
}

// ObserveLabel records that action lead to reward, and that the
// observation carried label
func (u *UCB) ObserveLabel(action int, reward float64, label string) {
	u.base.ObserveLabel(action, reward, label)
	u.updateBonus()
}

func (u *UCB) updateBonus() {
	logT := math.Log(float64(u.t))
	for i := range u.bonus {
		if u.visits[i] == 0 {
			u.bonus[i] = math.Inf(1)
		} else {
			u.bonus[i] = u.c * math.Sqrt(logT/float64(u.visits[i]))
		}
	}
}

// Reset resets the agent to the state it had at construction and
// draws a new order in which actions are taken at the start of the
// next trial
func (u *UCB) Reset() {
	u.base.Reset()

	for i := range u.bonus {
		u.bonus[i] = math.Inf(1)
	}
	u.order = u.rng.Perm(u.k)
}

// Bonus returns the current exploration bonus of action
func (u *UCB) Bonus(action int) float64 {
	i, ok := u.index[action]
	if !ok {
		return math.NaN()
	}
	return u.bonus[i]
}

// C returns the exploration coefficient
func (u *UCB) C() float64 {
	return u.c
}

// Name returns the name of the agent
func (u *UCB) Name() string {
	return fmt.Sprintf("UCB c=%v", u.c)
}
