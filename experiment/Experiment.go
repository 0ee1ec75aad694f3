// Package experiment implements functionality for running an
// experiment: every configured agent is run for a number of
// independent trials on a single shared bandit environment, and the
// per-step rewards of each agent are averaged over trials into a
// learning curve.
package experiment

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/floats"

	"github.com/samuelfneumann/gobandit/agent"
	_ "github.com/samuelfneumann/gobandit/agent/bandit"
	"github.com/samuelfneumann/gobandit/environment"
	"github.com/samuelfneumann/gobandit/errs"
)

// Incrementer is notified once after every trial of every agent
type Incrementer interface {
	Increment()
}

// Experiment runs a number of agents on a single bandit environment.
//
// Each agent is run for trials independent trials of steps steps
// each. The environment is shared between all agents and all trials
// and is never reset, only the agents are reset after each trial.
type Experiment struct {
	id     uuid.UUID
	trials int
	steps  int
	smooth bool
	seed   uint64
	env    environment.Environment
	agents []agent.Agent

	logger   *zap.Logger
	progress Incrementer

	curves [][]float64
	ran    bool
}

// Option configures an Experiment
type Option func(*Experiment)

// WithSeed sets the seed of the experiment. The environment is seeded
// with seed and the agent at index i with seed + i + 1.
func WithSeed(seed uint64) Option {
	return func(e *Experiment) {
		e.seed = seed
	}
}

// WithLogger sets the logger that the experiment logs to
func WithLogger(l *zap.Logger) Option {
	return func(e *Experiment) {
		e.logger = l
	}
}

// WithProgress sets an Incrementer that is incremented after each
// trial
func WithProgress(p Incrementer) Option {
	return func(e *Experiment) {
		e.progress = p
	}
}

// WithEnvironment runs the experiment on env rather than on a bandit
// constructed from the Config. The Config's K and Distribution are
// then only used for reporting.
func WithEnvironment(env environment.Environment) Option {
	return func(e *Experiment) {
		e.env = env
	}
}

// New creates a new Experiment which runs each agent described by c
// for trials trials of steps steps each.
func New(trials, steps int, c Config, opts ...Option) (*Experiment, error) {
	if trials <= 0 {
		return nil, errs.InvalidArgument("new",
			"trials must be positive, have(%v)", trials)
	}
	if steps <= 0 {
		return nil, errs.InvalidArgument("new",
			"steps must be positive, have(%v)", steps)
	}

	e := &Experiment{
		id:     uuid.New(),
		trials: trials,
		steps:  steps,
		smooth: c.Smooth,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	if e.env == nil {
		env, err := environment.New(c.K, c.Distribution, e.seed)
		if err != nil {
			return nil, fmt.Errorf("new: could not create environment: %w",
				err)
		}
		e.env = env
	}

	actions := e.env.ActionSet()
	e.agents = make([]agent.Agent, len(c.Agents))
	for i, conf := range c.Agents {
		a, err := conf.CreateAgent(actions, e.seed+uint64(i)+1)
		if err != nil {
			return nil, fmt.Errorf("new: could not create agent %d: %w", i,
				err)
		}
		e.agents[i] = a
	}

	e.logger = e.logger.With(zap.String("experiment", e.id.String()))
	e.logger.Debug("created experiment",
		zap.Int("trials", trials),
		zap.Int("steps", steps),
		zap.Int("agents", len(e.agents)),
		zap.Uint64("seed", e.seed),
		zap.Stringer("environment", stringer(e.env)),
	)

	return e, nil
}

// Run runs the experiment. Running an experiment a second time
// continues from the agents' and environment's current random state
// and replaces the previously computed curves.
func (e *Experiment) Run() {
	curves := make([][]float64, len(e.agents))
	trial := make([]float64, e.steps)

	for i, a := range e.agents {
		curve := newCurveMean(e.steps)
		log := e.logger.With(zap.String("agent", a.Name()))
		start := time.Now()

		for n := 0; n < e.trials; n++ {
			var avg runningMean
			for t := 0; t < e.steps; t++ {
				action := a.TakeAction()
				reward := e.env.ExecuteAction(action)
				a.Observe(action, reward)

				if e.smooth {
					trial[t] = avg.Add(reward)
				} else {
					trial[t] = reward
				}
			}
			curve.Add(trial)

			if v, ok := a.(interface{ MostVisited() int }); ok {
				log.Debug("finished trial", zap.Int("trial", n),
					zap.Int("mostVisited", v.MostVisited()))
			}

			a.Reset()
			if e.progress != nil {
				e.progress.Increment()
			}
		}

		curves[i] = curve.Mean()
		log.Info("finished agent",
			zap.Int("trials", e.trials),
			zap.Float64("finalValue", curves[i][e.steps-1]),
			zap.Duration("elapsed", time.Since(start)),
		)
	}

	e.curves = curves
	e.ran = true
}

// Curves returns the learning curve of each agent, in the order the
// agents were configured. Curves returns nil if the experiment has
// not been run.
func (e *Experiment) Curves() [][]float64 {
	if !e.ran {
		return nil
	}

	curves := make([][]float64, len(e.curves))
	for i := range e.curves {
		curves[i] = make([]float64, len(e.curves[i]))
		copy(curves[i], e.curves[i])
	}
	return curves
}

// Names returns the display name of each agent
func (e *Experiment) Names() []string {
	names := make([]string, len(e.agents))
	for i, a := range e.agents {
		names[i] = a.Name()
	}
	return names
}

// Optimal returns the largest expected reward over all actions of the
// environment
func (e *Experiment) Optimal() float64 {
	return floats.Max(e.env.Parameters().Mean)
}

// Environment returns the environment the experiment runs on
func (e *Experiment) Environment() environment.Environment {
	return e.env
}

// Results returns the results of the experiment
func (e *Experiment) Results() Results {
	params := e.env.Parameters()
	return Results{
		ID:           e.id.String(),
		Names:        e.Names(),
		Curves:       e.Curves(),
		Optimal:      e.Optimal(),
		Distribution: params.Distribution,
		K:            len(params.Mean),
		Smooth:       e.smooth,
		Trials:       e.trials,
		Steps:        e.steps,
	}
}

// Plot plots the learning curve of each agent along with the optimal
// expected reward to the file at path
func (e *Experiment) Plot(path string) error {
	if !e.ran {
		return fmt.Errorf("plot: experiment has not been run")
	}
	return e.Results().Plot(path)
}

// Save saves the results of the experiment to the file at path
func (e *Experiment) Save(path string) error {
	if !e.ran {
		return fmt.Errorf("save: experiment has not been run")
	}
	return e.Results().Save(path)
}

type stringerFunc func() string

func (s stringerFunc) String() string { return s() }

func stringer(v interface{}) fmt.Stringer {
	if s, ok := v.(fmt.Stringer); ok {
		return s
	}
	return stringerFunc(func() string { return fmt.Sprintf("%T", v) })
}
