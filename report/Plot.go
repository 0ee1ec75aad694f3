package report

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	// Image formats
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"
)

// Size of saved images
var (
	Width  = 10 * vg.Inch
	Height = 6 * vg.Inch
)

// savePlot draws the Figure with gonum/plot
func savePlot(f Figure, path string) error {
	p := plot.New()
	p.Title.Text = f.Title
	p.X.Label.Text = f.XLabel
	p.Y.Label.Text = f.YLabel
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	steps := f.Steps()

	// Reference line
	ref := make(plotter.XYs, steps)
	for i := range ref {
		ref[i].X = float64(i)
		ref[i].Y = f.Reference
	}
	refLine, err := plotter.NewLine(ref)
	if err != nil {
		return err
	}
	refLine.LineStyle.Color = color.Black
	refLine.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
	p.Add(refLine)
	p.Legend.Add(f.ReferenceLabel, refLine)

	// Learning curves
	for i, s := range f.Series {
		xys := make(plotter.XYs, len(s.Values))
		for step, v := range s.Values {
			xys[step].X = float64(step)
			xys[step].Y = v
		}

		line, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		line.LineStyle.Color = plotutil.Color(i)
		line.LineStyle.Width = vg.Points(1)

		p.Add(line)
		p.Legend.Add(s.Name, line)
	}

	return p.Save(Width, Height, path)
}
