package environment

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/samuelfneumann/gobandit/errs"
)

const (
	// Arm locations of uniform and normal bandits are drawn from
	// U[LocationMin, LocationMax)
	LocationMin = -2.0
	LocationMax = 2.0

	// Scale of every uniform and normal arm
	Scale = 1.0

	// Beta arms have shapes a and BetaConcentration - a
	BetaConcentration = 100
)

// arm is a reward distribution for a single action
type arm interface {
	Rand() float64
	Mean() float64
}

// Bandit implements a stationary k-armed bandit. Each action is tied
// to a fixed reward distribution from a single Distribution family,
// with parameters drawn once at construction.
//
// For the Uniform family, arm i returns rewards ~ U[loc_i, loc_i + 1);
// for the Normal family, rewards ~ N(loc_i, 1). In both cases loc_i is
// drawn from U[-2, 2). For the Beta family, arm i returns rewards
// ~ Beta(a_i, 100 - a_i), where a_i is a uniform integer in [1, 99].
type Bandit struct {
	dist    Distribution
	arms    []arm
	actions []int
}

// New creates a new k-armed Bandit whose arms sample from the argument
// Distribution family
func New(k int, d Distribution, seed uint64) (*Bandit, error) {
	if k <= 0 {
		return nil, errs.InvalidArgument("newBandit",
			"k must be greater than 0, have(%d)", k)
	}
	if !d.Valid() {
		return nil, errs.InvalidArgument("newBandit",
			"distribution %q is not supported", d)
	}

	source := rand.NewSource(seed)
	loc := distuv.Uniform{Min: LocationMin, Max: LocationMax, Src: source}
	unit := distuv.Uniform{Min: 0, Max: 1, Src: source}

	arms := make([]arm, k)
	for i := range arms {
		switch d {
		case Beta:
			// Both shape parameters must stay positive
			a := math.Floor(unit.Rand() * BetaConcentration)
			a = math.Min(math.Max(a, 1), BetaConcentration-1)
			arms[i] = distuv.Beta{
				Alpha: a,
				Beta:  BetaConcentration - a,
				Src:   source,
			}

		default:
			arms[i] = newArm(d, loc.Rand(), source)
		}
	}

	return &Bandit{d, arms, actionSet(k)}, nil
}

// NewFromLocations creates a new Bandit with one arm per location.
// Only the Uniform and Normal families are parameterized by location.
func NewFromLocations(d Distribution, locations []float64,
	seed uint64) (*Bandit, error) {
	if len(locations) == 0 {
		return nil, errs.InvalidArgument("newBanditFromLocations",
			"k must be greater than 0, have(0)")
	}
	if d != Uniform && d != Normal {
		return nil, errs.InvalidArgument("newBanditFromLocations",
			"distribution %q is not parameterized by location", d)
	}

	source := rand.NewSource(seed)
	arms := make([]arm, len(locations))
	for i, l := range locations {
		arms[i] = newArm(d, l, source)
	}

	return &Bandit{d, arms, actionSet(len(locations))}, nil
}

// newArm returns the Uniform or Normal arm at location l
func newArm(d Distribution, l float64, source rand.Source) arm {
	if d == Normal {
		return distuv.Normal{Mu: l, Sigma: Scale, Src: source}
	}
	return distuv.Uniform{Min: l, Max: l + Scale, Src: source}
}

// actionSet returns the actions {1, ..., k}
func actionSet(k int) []int {
	actions := make([]int, k)
	for i := range actions {
		actions[i] = i + 1
	}
	return actions
}

// ActionSet returns the identifiers of the actions in the environment
func (b *Bandit) ActionSet() []int {
	actions := make([]int, len(b.actions))
	copy(actions, b.actions)
	return actions
}

// ExecuteAction draws a reward for the argument action. The action
// must be in the environment's action set.
func (b *Bandit) ExecuteAction(action int) float64 {
	if action < 1 || action > len(b.arms) {
		panic(fmt.Sprintf("executeAction: action %d not in [1, %d]", action,
			len(b.arms)))
	}
	return b.arms[action-1].Rand()
}

// Parameters returns the distribution family and the mean reward of
// each action
func (b *Bandit) Parameters() Params {
	mean := make([]float64, len(b.arms))
	for i, a := range b.arms {
		mean[i] = a.Mean()
	}
	return Params{Distribution: b.dist, Mean: mean}
}

// String returns a string representation of the Bandit
func (b *Bandit) String() string {
	return fmt.Sprintf("Bandit | Distribution: %v  |  k: %d", b.dist,
		len(b.arms))
}
