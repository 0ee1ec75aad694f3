package experiment

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// runningMean is an expanding-window mean of a stream of values. It
// is used to smooth rewards over the steps of a single trial.
type runningMean struct {
	n    int
	mean float64
}

// Add adds x to the window and returns the updated mean. With n the
// number of values added so far, including x:
//
//	mean <- (1 - 1/n) * mean + (1/n) * x
func (r *runningMean) Add(x float64) float64 {
	r.n++
	w := 1.0 / float64(r.n)
	r.mean = (1-w)*r.mean + w*x
	return r.mean
}

// curveMean is an element-wise expanding-window mean of equal length
// curves. It is used to average the curves of many trials without
// storing every trial.
type curveMean struct {
	n    int
	mean []float64
}

// newCurveMean returns a new curveMean of curves with length steps
func newCurveMean(steps int) *curveMean {
	return &curveMean{mean: make([]float64, steps)}
}

// Add folds curve into the mean. Add panics if the curve length
// differs from the length the curveMean was constructed with.
func (c *curveMean) Add(curve []float64) {
	if len(curve) != len(c.mean) {
		panic(fmt.Sprintf("add: cannot add curve of length %v to mean "+
			"of length %v", len(curve), len(c.mean)))
	}

	c.n++
	w := 1.0 / float64(c.n)

	floats.Scale(1-w, c.mean)
	floats.AddScaled(c.mean, w, curve)
}

// Mean returns a copy of the current mean curve
func (c *curveMean) Mean() []float64 {
	mean := make([]float64, len(c.mean))
	copy(mean, c.mean)
	return mean
}
