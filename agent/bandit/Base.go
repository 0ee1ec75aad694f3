// Package bandit implements agents for the k-armed bandit problem.
//
// All agents share a single learning and action selection algorithm,
// implemented by base. Each agent customizes the algorithm through a
// small set of hooks:
//
//	needsExploration()	whether the next action is exploratory
//	randomAction()		the exploratory action to take
//	weight(i)			the step size of the action value update
//	value(i)			the value that greedy actions maximize
//
// Action values are updated incrementally. The first reward r seen for
// an action becomes its value. Afterwards, the value Q of the action
// is updated as:
//
//	Q <- (1 - w) * Q + w * r
//
// where w is the step size returned by the weight hook. With
// w = 1/n, for n the number of times the action was taken, Q is the
// sample mean of the rewards for that action.
package bandit

import (
	"fmt"
	"math"
	"sort"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/gobandit/errs"
)

// InitialLabel is the label of an agent that has not yet observed a
// labelled reward
const InitialLabel = "s0"

// hooks are the points at which agents customize base. Action
// indices i are in [0, k).
type hooks interface {
	needsExploration() bool
	randomAction() int
	weight(i int) float64
	value(i int) float64
}

// base implements the learning and action selection algorithm shared
// by all bandit agents. By default, base explores uniformly at random
// for a fixed number of steps and then acts greedily with respect to
// sample mean action values.
type base struct {
	hooks hooks

	actions []int       // Sorted action identifiers
	index   map[int]int // Action identifier -> index into actions
	k       int

	// window * k is the number of steps explored at the start of
	// each trial by the default needsExploration hook
	window int
	fixed  int

	t          int
	estimates  []float64
	visited    []bool
	visits     []int
	lastReward float64
	label      string

	rng *rand.Rand
}

// newBase returns a new base acting over actions. The hooks field of
// the returned base must be set by the caller before use.
func newBase(op string, actions []int, window int, seed uint64) (base,
	error) {
	if len(actions) == 0 {
		return base{}, errs.InvalidArgument(op,
			"actions should not be an empty set")
	}

	sorted := make([]int, len(actions))
	copy(sorted, actions)
	sort.Ints(sorted)

	index := make(map[int]int, len(sorted))
	for i, a := range sorted {
		if _, ok := index[a]; ok {
			return base{}, errs.InvalidArgument(op,
				"action %d appears more than once", a)
		}
		index[a] = i
	}

	k := len(sorted)
	b := base{
		actions:   sorted,
		index:     index,
		k:         k,
		window:    window,
		estimates: make([]float64, k),
		visited:   make([]bool, k),
		visits:    make([]int, k),
		rng:       rand.New(rand.NewSource(seed)),
	}
	b.Reset()

	return b, nil
}

// TakeAction selects an action. If the agent needs to explore, a
// random action is returned. Otherwise, the action with the highest
// value is returned, with ties broken by the lowest action identifier.
func (b *base) TakeAction() int {
	if b.hooks.needsExploration() {
		return b.actions[b.hooks.randomAction()]
	}
	return b.actions[b.greedy()]
}

// greedy returns the index of the action with the highest value.
// Ties are broken by the lowest index.
func (b *base) greedy() int {
	values := make([]float64, b.k)
	for i := range values {
		values[i] = b.hooks.value(i)
	}
	return floats.MaxIdx(values)
}

// Observe records that action lead to reward
func (b *base) Observe(action int, reward float64) {
	b.observe(action, reward)
}

// ObserveLabel records that action lead to reward, and that the
// observation carried label
func (b *base) ObserveLabel(action int, reward float64, label string) {
	b.label = label
	b.observe(action, reward)
}

func (b *base) observe(action int, outcome float64) {
	i, ok := b.index[action]
	if !ok {
		panic(fmt.Sprintf("observe: action %d not in action set %v", action,
			b.actions))
	}

	b.visits[i]++
	b.lastReward = b.reward(outcome, b.label)

	if !b.visited[i] {
		b.estimates[i] = b.lastReward
		b.visited[i] = true
	} else {
		w := b.hooks.weight(i)
		b.estimates[i] = (1-w)*b.estimates[i] + w*b.lastReward
	}

	b.t++
}

// reward returns the reward the agent learns from when observing
// outcome. Rewards are currently the outcomes themselves, regardless
// of the label.
func (b *base) reward(outcome float64, label string) float64 {
	return outcome
}

// Reset resets the agent to the state it had at construction
func (b *base) Reset() {
	b.t = 0
	b.fixed = b.window * b.k
	b.label = InitialLabel
	b.lastReward = 0

	for i := 0; i < b.k; i++ {
		b.estimates[i] = 0
		b.visited[i] = false
		b.visits[i] = 0
	}
}

// needsExploration returns true during the first window * k steps
func (b *base) needsExploration() bool {
	return b.t < b.fixed
}

// randomAction returns an action index uniformly at random
func (b *base) randomAction() int {
	return b.rng.Intn(b.k)
}

// weight returns the sample average step size for the action at
// index i
func (b *base) weight(i int) float64 {
	return 1.0 / float64(b.visits[i])
}

// value returns the estimated value of the action at index i. Actions
// not yet taken have the lowest possible value.
func (b *base) value(i int) float64 {
	if !b.visited[i] {
		return math.Inf(-1)
	}
	return b.estimates[i]
}

// Estimate returns the estimated value of action and whether or not
// the action has been taken since the last Reset
func (b *base) Estimate(action int) (float64, bool) {
	i, ok := b.index[action]
	if !ok || !b.visited[i] {
		return 0, false
	}
	return b.estimates[i], true
}

// Visits returns the number of times action was taken since the last
// Reset
func (b *base) Visits(action int) int {
	i, ok := b.index[action]
	if !ok {
		return 0
	}
	return b.visits[i]
}

// MostVisited returns the action taken most often since the last
// Reset, with ties broken by the lowest action identifier
func (b *base) MostVisited() int {
	best := 0
	for i, n := range b.visits {
		if n > b.visits[best] {
			best = i
		}
	}
	return b.actions[best]
}

// Steps returns the number of observations since the last Reset
func (b *base) Steps() int {
	return b.t
}

// LastReward returns the most recently observed reward
func (b *base) LastReward() float64 {
	return b.lastReward
}

// Label returns the most recently observed label
func (b *base) Label() string {
	return b.label
}

// Actions returns the actions the agent chooses between, in sorted
// order
func (b *base) Actions() []int {
	actions := make([]int, b.k)
	copy(actions, b.actions)
	return actions
}

// explore returns true with probability epsilon
func explore(rng *rand.Rand, epsilon float64) bool {
	return rng.Float64() < epsilon
}
