package experiment

import (
	"encoding/gob"
	"fmt"
	"io"
	"os"

	"github.com/samuelfneumann/gobandit/environment"
	"github.com/samuelfneumann/gobandit/report"
)

// Results are the learning curves produced by an experiment, along
// with enough of the experiment's description to plot them
type Results struct {
	ID           string
	Names        []string
	Curves       [][]float64
	Optimal      float64
	Distribution environment.Distribution
	K            int
	Smooth       bool
	Trials       int
	Steps        int
}

// Plot plots the learning curves to the file at path. The file format
// is chosen by the extension of path.
func (r Results) Plot(path string) error {
	return report.Save(r.figure(), path)
}

// Save saves the results to the file at path
func (r Results) Save(path string) error {
	return report.WriteFile(path, func(w io.Writer) error {
		if err := gob.NewEncoder(w).Encode(r); err != nil {
			return fmt.Errorf("save: could not encode results: %w", err)
		}
		return nil
	})
}

// Load loads results saved with Save from the file at path
func Load(path string) (Results, error) {
	file, err := os.Open(path)
	if err != nil {
		return Results{}, fmt.Errorf("load: could not open data file: %w",
			err)
	}
	defer file.Close()

	var r Results
	dec := gob.NewDecoder(file)
	if err := dec.Decode(&r); err != nil {
		return Results{}, fmt.Errorf("load: could not decode data: %w", err)
	}
	return r, nil
}

// figure returns the report.Figure of the results
func (r Results) figure() report.Figure {
	yLabel := "Reward"
	if r.Smooth {
		yLabel = "Average reward"
	}

	series := make([]report.Series, len(r.Curves))
	for i := range r.Curves {
		series[i] = report.Series{Name: r.Names[i], Values: r.Curves[i]}
	}

	return report.Figure{
		Title: fmt.Sprintf("Probability distribution: %s, k = %d",
			r.Distribution, r.K),
		XLabel:         "Steps",
		YLabel:         yLabel,
		Series:         series,
		Reference:      r.Optimal,
		ReferenceLabel: "v*",
	}
}
